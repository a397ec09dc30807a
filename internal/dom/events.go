package dom

import "golang.org/x/net/html"

// EventType names a dispatchable event
type EventType string

// Supported events
const (
	Click   EventType = "click"
	KeyDown EventType = "keydown"
)

// Event is delivered to handlers from the target up to the root
type Event struct {
	Type          EventType
	Key           string // keydown only
	Target        *html.Node
	CurrentTarget *html.Node

	stopped          bool
	defaultPrevented bool
}

// StopPropagation keeps the event from reaching ancestors of the current target
func (e *Event) StopPropagation() {
	e.stopped = true
}

// PreventDefault marks the default action as cancelled
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler called PreventDefault
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Handler reacts to an event
type Handler func(*Event)

// On registers a handler for events of type t reaching n
func (d *Document) On(n *html.Node, t EventType, h Handler) {
	byType, ok := d.handlers[n]
	if !ok {
		byType = make(map[EventType][]Handler)
		d.handlers[n] = byType
	}
	byType[t] = append(byType[t], h)
}

// HasHandler reports whether n has a handler for t
func (d *Document) HasHandler(n *html.Node, t EventType) bool {
	return len(d.handlers[n][t]) > 0
}

// Dispatch delivers ev to target and then to each ancestor until a
// handler stops propagation.
func (d *Document) Dispatch(target *html.Node, ev *Event) *Event {
	ev.Target = target
	for n := target; n != nil; n = n.Parent {
		hs := d.handlers[n][ev.Type]
		if len(hs) == 0 {
			continue
		}
		ev.CurrentTarget = n
		for _, h := range hs {
			h(ev)
		}
		if ev.stopped {
			break
		}
	}
	ev.CurrentTarget = nil
	return ev
}

// Clear detaches the children of n and forgets their handlers
func (d *Document) Clear(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
	ClearChildren(n)
}

func (d *Document) forget(n *html.Node) {
	delete(d.handlers, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}
