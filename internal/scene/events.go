package scene

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// EventType identifies an input event.
type EventType int

const (
	PointerDown EventType = iota
	PointerMove
	PointerUp
	Click
	KeyDown
)

func (t EventType) String() string {
	switch t {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case Click:
		return "click"
	case KeyDown:
		return "keydown"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Key names a keyboard key, e.g. "ArrowUp".
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// Event is delivered to listeners along the bubbling path.
type Event struct {
	Type          EventType
	Point         r2.Vec // client coordinates, pointer events only
	Key           Key
	Target        *Element
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
}

// PreventDefault suppresses the host's default action for the event.
func (ev *Event) PreventDefault() { ev.defaultPrevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// StopPropagation ends bubbling after the current element's listeners.
func (ev *Event) StopPropagation() { ev.stopped = true }

// Listener handles an event.
type Listener func(ev *Event)

// AddEventListener registers fn for events of type t reaching el.
// Listeners on the root see every event that bubbles.
func (d *Document) AddEventListener(el *Element, t EventType, fn Listener) {
	byType, ok := d.listeners[el]
	if !ok {
		byType = make(map[EventType][]Listener)
		d.listeners[el] = byType
	}
	byType[t] = append(byType[t], fn)
}

// ListenerCount returns the number of registered listeners.
func (d *Document) ListenerCount() int {
	n := 0
	for _, byType := range d.listeners {
		for _, fns := range byType {
			n += len(fns)
		}
	}
	return n
}

// dispatch delivers ev to its target and then to each ancestor.
func (d *Document) dispatch(ev *Event) *Event {
	if ev.Target == nil {
		ev.Target = d.root
	}
	for n := ev.Target; n != nil; n = n.parent {
		ev.CurrentTarget = n
		for _, fn := range d.listeners[n][ev.Type] {
			fn(ev)
		}
		if ev.stopped {
			break
		}
	}
	ev.CurrentTarget = nil
	return ev
}

// PointerDown dispatches a press at client point p and moves focus.
func (d *Document) PointerDown(p r2.Vec) {
	target := d.ElementFromPoint(p)
	d.pressed = target
	d.Focus(focusableAncestor(target))
	d.dispatch(&Event{Type: PointerDown, Point: p, Target: target})
}

// PointerMove dispatches a pointer motion to client point p.
func (d *Document) PointerMove(p r2.Vec) {
	d.dispatch(&Event{Type: PointerMove, Point: p, Target: d.ElementFromPoint(p)})
}

// PointerUp dispatches a release at client point p, followed by a click
// when the release lands within the element that was pressed.
func (d *Document) PointerUp(p r2.Vec) {
	target := d.ElementFromPoint(p)
	pressed := d.pressed
	d.pressed = nil
	d.dispatch(&Event{Type: PointerUp, Point: p, Target: target})

	if pressed != nil && target != nil && pressed.Contains(target) {
		d.dispatch(&Event{Type: Click, Point: p, Target: target})
	}
}

// KeyDown dispatches a key press to the focused element. It reports
// whether the host should perform the key's default action.
func (d *Document) KeyDown(k Key) bool {
	ev := d.dispatch(&Event{Type: KeyDown, Key: k, Target: d.focused})
	return !ev.defaultPrevented
}

// Click dispatches a click directly to el, as a keyboard activation would.
func (d *Document) Click(el *Element) {
	d.dispatch(&Event{Type: Click, Target: el, Point: el.ClientRect().Center()})
}

func focusableAncestor(e *Element) *Element {
	for n := e; n != nil; n = n.parent {
		if n.Focusable {
			return n
		}
	}
	return nil
}
