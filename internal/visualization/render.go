package visualization

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"sensorbot-sim/internal/config"
	"sensorbot-sim/internal/scene"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer implements ebiten.Game: it feeds input into the scene and paints it.
type Renderer struct {
	doc       *scene.Document
	projector Projector

	repeat     config.KeyRepeat
	scrollStep float64

	screenWidth  int
	screenHeight int

	cursor      r2.Vec
	cursorKnown bool
	pressed     []ebiten.Key

	colors   map[string]color.Color
	vertices []ebiten.Vertex
	indices  []uint16

	status string
}

// NewRenderer creates a renderer for doc. Input reaches whatever listeners
// are registered on doc; with none the scene is drawn but inert.
func NewRenderer(doc *scene.Document, projector Projector, cfg config.Config) *Renderer {
	return &Renderer{
		doc:          doc,
		projector:    projector,
		repeat:       cfg.KeyRepeat,
		scrollStep:   cfg.Window.ScrollStep,
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
		colors:       make(map[string]color.Color),
	}
}

// SetStatus sets a line shown at the bottom of the window.
func (r *Renderer) SetStatus(msg string) {
	r.status = msg
}

// Update is called every tick.
func (r *Renderer) Update() error {
	r.handlePointer()
	r.handleKeys()
	return nil
}

// Draw paints the visible scene back to front.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, el := range r.doc.PaintOrder() {
		r.drawElement(screen, el)
	}

	msg := fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS())
	if r.status != "" {
		msg += "  " + r.status
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, r.screenHeight-debugGlyphHeight-2)
}

func (r *Renderer) drawElement(screen *ebiten.Image, el *scene.Element) {
	quad := r.projector.Project(el)
	st := r.styleFor(el)

	if st.hasFill || st.hasLine {
		var path vector.Path
		path.MoveTo(float32(quad[0].X), float32(quad[0].Y))
		for _, c := range quad[1:] {
			path.LineTo(float32(c.X), float32(c.Y))
		}
		path.Close()

		if st.hasFill {
			r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
			r.drawTriangles(screen, st.fill)
		}
		if st.hasLine {
			r.vertices, r.indices = path.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], &vector.StrokeOptions{
				Width: st.strokeWidth,
			})
			r.drawTriangles(screen, st.stroke)
		}
	}

	if el.Text != "" {
		r.drawText(screen, el, quad)
	}
}

func (r *Renderer) drawTriangles(dst *ebiten.Image, clr color.Color) {
	c := color.NRGBA64Model.Convert(clr).(color.NRGBA64)
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = float32(c.R) / 0xffff
		r.vertices[i].ColorG = float32(c.G) / 0xffff
		r.vertices[i].ColorB = float32(c.B) / 0xffff
		r.vertices[i].ColorA = float32(c.A) / 0xffff
	}
	dst.DrawTriangles(r.vertices, r.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawText centres labels on filled elements and left-aligns bare text.
func (r *Renderer) drawText(screen *ebiten.Image, el *scene.Element, quad [4]r2.Vec) {
	if el.Fill == "" {
		ebitenutil.DebugPrintAt(screen, el.Text, int(quad[0].X), int(quad[0].Y))
		return
	}
	centre := r2.Scale(0.5, r2.Add(quad[0], quad[2]))
	x := int(centre.X) - len(el.Text)*debugGlyphWidth/2
	y := int(centre.Y) - debugGlyphHeight/2
	ebitenutil.DebugPrintAt(screen, el.Text, x, y)
}

// Layout is called when the window size changes.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	r.screenWidth = outsideWidth
	r.screenHeight = outsideHeight
	r.doc.SetViewport(r2.Vec{X: float64(outsideWidth), Y: float64(outsideHeight)})
	return r.screenWidth, r.screenHeight
}
