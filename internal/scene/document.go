package scene

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"sensorbot-sim/internal/common"
)

// MissingElementsError reports scene elements that could not be resolved.
type MissingElementsError struct {
	IDs []string
}

func (e *MissingElementsError) Error() string {
	return fmt.Sprintf("missing required scene elements: %s", strings.Join(e.IDs, ", "))
}

// Document owns an element tree and routes input events through it.
type Document struct {
	root     *Element
	byID     map[string]*Element
	focused  *Element
	pressed  *Element
	scroll   r2.Vec
	viewport r2.Vec

	listeners map[*Element]map[EventType][]Listener
}

// NewDocument indexes the tree under root. IDs must be unique.
func NewDocument(root *Element) (*Document, error) {
	if root == nil {
		return nil, fmt.Errorf("scene has no root element")
	}
	d := &Document{
		root:      root,
		byID:      make(map[string]*Element),
		listeners: make(map[*Element]map[EventType][]Listener),
		viewport:  root.Size(),
	}
	var err error
	d.walk(root, func(e *Element) {
		e.doc = d
		if e.ID == "" || err != nil {
			return
		}
		if _, exists := d.byID[e.ID]; exists {
			err = fmt.Errorf("duplicate element id %q", e.ID)
			return
		}
		d.byID[e.ID] = e
	})
	if err != nil {
		return nil, err
	}
	d.focused = root
	return d, nil
}

func (d *Document) walk(e *Element, fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		d.walk(c, fn)
	}
}

// Root returns the document's root element (the page body).
func (d *Document) Root() *Element { return d.root }

// GetElementByID returns the element with the given ID, or nil.
func (d *Document) GetElementByID(id string) *Element { return d.byID[id] }

// ElementsByClass returns every element in tree order carrying class.
func (d *Document) ElementsByClass(class string) []*Element {
	return d.root.ElementsByClass(class)
}

// ElementsByClass returns the descendants of e in tree order carrying class.
func (e *Element) ElementsByClass(class string) []*Element {
	var out []*Element
	for _, c := range e.children {
		if c.HasClass(class) {
			out = append(out, c)
		}
		out = append(out, c.ElementsByClass(class)...)
	}
	return out
}

// Focused returns the element receiving key events.
func (d *Document) Focused() *Element { return d.focused }

// Focus moves keyboard focus. A nil element focuses the root.
func (d *Document) Focus(e *Element) {
	if e == nil {
		e = d.root
	}
	d.focused = e
}

// Scroll returns the current scroll offset.
func (d *Document) Scroll() r2.Vec { return d.scroll }

// SetViewport records the visible area size and re-clamps the scroll.
func (d *Document) SetViewport(size r2.Vec) {
	d.viewport = size
	d.ScrollTo(d.scroll)
}

// ScrollTo sets the scroll offset, clamped to the document extent.
func (d *Document) ScrollTo(p r2.Vec) {
	max := r2.Sub(d.root.Size(), d.viewport)
	d.scroll = common.ClampVec(p, r2.Vec{}, max)
}

// PaintOrder returns visible elements back to front: ascending z-index,
// ties broken by tree order.
func (d *Document) PaintOrder() []*Element {
	var out []*Element
	d.walk(d.root, func(e *Element) {
		if e.Visible() {
			out = append(out, e)
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}

// ElementFromPoint returns the topmost visible element under the client
// point p that receives pointer events, or nil.
func (d *Document) ElementFromPoint(p r2.Vec) *Element {
	order := d.PaintOrder()
	for _, e := range slices.Backward(order) {
		if e.PassThrough {
			continue
		}
		if e.ClientRect().Contains(p) {
			return e
		}
	}
	return nil
}
