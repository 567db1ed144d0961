package visualization

import (
	"fmt"
	"image/color"
	"log"

	"sensorbot-sim/internal/scene"
	"sensorbot-sim/internal/simulation"
)

var (
	backgroundColor = color.RGBA{230, 230, 230, 255}
	attachedStroke  = color.RGBA{46, 160, 67, 255}
	focusStroke     = color.RGBA{255, 196, 0, 255}
)

const (
	strokeWidth      = 1.5
	highlightWidth   = 3.0
	draggingAlpha    = 0.65
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// parseHex decodes "#rrggbb" or "#rrggbbaa".
func parseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("invalid colour %q", s)
	}
	return c, err
}

// elementStyle resolves the fill and stroke of el, applying the
// dragging and attached marks.
type elementStyle struct {
	fill, stroke     color.Color
	strokeWidth      float32
	hasFill, hasLine bool
}

func (r *Renderer) styleFor(el *scene.Element) elementStyle {
	var st elementStyle
	if c, ok := r.color(el.Fill); ok {
		st.fill, st.hasFill = c, true
	}
	if c, ok := r.color(el.Stroke); ok {
		st.stroke, st.hasLine, st.strokeWidth = c, true, strokeWidth
	}
	if el.HasClass(simulation.ClassAttached) {
		st.stroke, st.hasLine, st.strokeWidth = attachedStroke, true, highlightWidth
	}
	if el.Focusable && r.doc.Focused() == el {
		st.stroke, st.hasLine, st.strokeWidth = focusStroke, true, strokeWidth
	}
	if el.HasClass(simulation.ClassDragging) && st.hasFill {
		st.fill = fade(st.fill, draggingAlpha)
	}
	return st
}

// color caches parsed colours; unparsable values are logged once and skipped.
func (r *Renderer) color(s string) (color.Color, bool) {
	if s == "" {
		return nil, false
	}
	if c, ok := r.colors[s]; ok {
		return c, c != nil
	}
	c, err := parseHex(s)
	if err != nil {
		log.Printf("Renderer: %v", err)
		r.colors[s] = nil
		return nil, false
	}
	r.colors[s] = c
	return c, true
}

func fade(c color.Color, alpha float64) color.Color {
	rr, gg, bb, aa := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(rr) * alpha),
		G: uint16(float64(gg) * alpha),
		B: uint16(float64(bb) * alpha),
		A: uint16(float64(aa) * alpha),
	}
}
