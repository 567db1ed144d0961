package visualization

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gonum.org/v1/gonum/spatial/r2"

	"sensorbot-sim/internal/scene"
)

// handlePointer turns cursor motion and left-button edges into pointer events.
func (r *Renderer) handlePointer() {
	x, y := ebiten.CursorPosition()
	p := r2.Vec{X: float64(x), Y: float64(y)}

	if !r.cursorKnown || p != r.cursor {
		r.cursor, r.cursorKnown = p, true
		r.doc.PointerMove(p)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		r.doc.PointerDown(p)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		r.doc.PointerUp(p)
	}
}

// handleKeys dispatches a key-down for each press and for auto-repeats
// while the key is held.
func (r *Renderer) handleKeys() {
	r.pressed = inpututil.AppendPressedKeys(r.pressed[:0])
	for _, k := range r.pressed {
		if !r.repeats(inpututil.KeyPressDuration(k)) {
			continue
		}
		key := keyName(k)
		if r.doc.KeyDown(key) {
			r.defaultAction(key)
		}
	}
}

// repeats reports whether a key held for d ticks fires this tick.
func (r *Renderer) repeats(d int) bool {
	if d == 1 {
		return true
	}
	return d > r.repeat.Delay && (d-r.repeat.Delay)%r.repeat.Interval == 0
}

// defaultAction scrolls the page for vertical arrows nobody handled.
func (r *Renderer) defaultAction(k scene.Key) {
	switch k {
	case scene.KeyArrowUp:
		r.doc.ScrollTo(r2.Add(r.doc.Scroll(), r2.Vec{Y: -r.scrollStep}))
	case scene.KeyArrowDown:
		r.doc.ScrollTo(r2.Add(r.doc.Scroll(), r2.Vec{Y: r.scrollStep}))
	}
}

// keyName maps an ebiten key to its web-style key name: letters are
// lower-case, everything else keeps ebiten's name ("ArrowUp", "Space").
func keyName(k ebiten.Key) scene.Key {
	name := k.String()
	if len(name) == 1 {
		name = strings.ToLower(name)
	}
	return scene.Key(name)
}
