package scene

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"sensorbot-sim/internal/common"
)

// Positioning selects how an element's offset is interpreted.
type Positioning int

const (
	// Static elements take part in their parent's flow and ignore Left/Top.
	Static Positioning = iota
	// Relative elements take part in flow and are shifted by Left/Top.
	Relative
	// Absolute elements are placed at Left/Top from the parent's origin, out of flow.
	Absolute
	// Fixed elements are placed at Left/Top in viewport coordinates.
	Fixed
)

var positioningNames = map[Positioning]string{
	Static:   "static",
	Relative: "relative",
	Absolute: "absolute",
	Fixed:    "fixed",
}

func (p Positioning) String() string {
	if name, ok := positioningNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Positioning(%d)", int(p))
}

// ParsePositioning maps a CSS-like keyword to a Positioning.
func ParsePositioning(s string) (Positioning, error) {
	if s == "" {
		return Static, nil
	}
	for p, name := range positioningNames {
		if name == s {
			return p, nil
		}
	}
	return Static, fmt.Errorf("unknown position %q", s)
}

// Element is a node of the scene graph.
type Element struct {
	ID   string
	Text string
	Data map[string]string

	Hidden    bool
	Position  Positioning
	Left, Top float64
	Width     float64
	Height    float64
	Rotation  float64 // degrees, clockwise, about the element centre
	ZIndex    int

	Focusable   bool
	PassThrough bool // pointer-events: none

	// Flow lays out in-flow children left to right.
	Flow    bool
	Padding float64
	Gap     float64

	Fill   string
	Stroke string

	classes  []string
	parent   *Element
	children []*Element
	doc      *Document
}

// Parent returns the containing element, nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element { return slices.Clone(e.children) }

// Classes returns a copy of the class list.
func (e *Element) Classes() []string { return slices.Clone(e.classes) }

// HasClass reports class membership.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

// AddClass adds class if it is not already present.
func (e *Element) AddClass(class string) {
	if !e.HasClass(class) {
		e.classes = append(e.classes, class)
	}
}

// RemoveClass removes every given class.
func (e *Element) RemoveClass(classes ...string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool {
		return slices.Contains(classes, c)
	})
}

// DataValue returns a data attribute, or fallback if it is unset or empty.
func (e *Element) DataValue(key, fallback string) string {
	if v := e.Data[key]; v != "" {
		return v
	}
	return fallback
}

// AppendChild moves child to the end of e's children, detaching it from
// its previous parent first. Appending an ancestor of e is a no-op.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child.Contains(e) {
		return
	}
	if old := child.parent; old != nil {
		old.children = slices.DeleteFunc(old.children, func(c *Element) bool { return c == child })
	}
	child.parent = e
	e.children = append(e.children, child)
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Closest returns the nearest element, starting at e and walking up, whose
// ID is id.
func (e *Element) Closest(id string) *Element {
	for n := e; n != nil; n = n.parent {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Visible reports whether neither e nor any ancestor is hidden.
func (e *Element) Visible() bool {
	for n := e; n != nil; n = n.parent {
		if n.Hidden {
			return false
		}
	}
	return true
}

// Size returns width and height as a vector.
func (e *Element) Size() r2.Vec {
	return r2.Vec{X: e.Width, Y: e.Height}
}

// SetOffset sets Left/Top from a vector.
func (e *Element) SetOffset(p r2.Vec) {
	e.Left, e.Top = p.X, p.Y
}

// Offset returns Left/Top as a vector.
func (e *Element) Offset() r2.Vec {
	return r2.Vec{X: e.Left, Y: e.Top}
}

func (e *Element) inFlow() bool {
	return e.Position == Static || e.Position == Relative
}

// flowSlot returns the offset of e inside its parent's flow.
func (e *Element) flowSlot() r2.Vec {
	p := e.parent
	slot := r2.Vec{X: p.Padding, Y: p.Padding}
	for _, sib := range p.children {
		if sib == e {
			break
		}
		if sib.inFlow() {
			slot.X += sib.Width + p.Gap
		}
	}
	return slot
}

// PageRect returns the element's rectangle in document coordinates.
func (e *Element) PageRect() common.Rect {
	if e.Position == Fixed {
		var scroll r2.Vec
		if e.doc != nil {
			scroll = e.doc.scroll
		}
		return common.Rect{Min: r2.Add(e.Offset(), scroll), Size: e.Size()}
	}
	if e.parent == nil {
		return common.Rect{Min: e.Offset(), Size: e.Size()}
	}

	origin := e.parent.PageRect().Min
	switch e.Position {
	case Static:
		if e.parent.Flow {
			origin = r2.Add(origin, e.flowSlot())
		}
	case Relative:
		if e.parent.Flow {
			origin = r2.Add(origin, e.flowSlot())
		}
		origin = r2.Add(origin, e.Offset())
	default:
		origin = r2.Add(origin, e.Offset())
	}
	return common.Rect{Min: origin, Size: e.Size()}
}

// ClientRect returns the element's rectangle in viewport coordinates.
func (e *Element) ClientRect() common.Rect {
	r := e.PageRect()
	if e.doc != nil {
		r = r.Translate(r2.Scale(-1, e.doc.scroll))
	}
	return r
}

func (e *Element) String() string {
	return fmt.Sprintf("#%s%v", e.ID, e.classes)
}
