package click

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Point is a tap location in the host coordinate space.
type Point struct {
	X, Y float64
}

// Handler receives the attribute value of the tapped element and the tap
// location. The value is nil when the listener names no attribute or the
// element does not carry it.
type Handler func(value *string, p Point)

// Listener binds a scheme name to the elements matched by a selector.
// A Listener is immutable once created.
type Listener struct {
	scheme    string
	selector  string
	attribute string
	selectAll bool
	onClick   Handler
}

type ListenerOption func(*Listener)

// FirstMatchOnly attaches the listener to the first element matched by the
// selector instead of to all of them.
func FirstMatchOnly() ListenerOption {
	return func(l *Listener) {
		l.selectAll = false
	}
}

// NewListener creates a listener. The scheme name is case-folded here so that
// dispatch only compares strings. Neither the scheme nor the selector is
// validated; a listener that can never match simply never fires.
func NewListener(scheme, selector, attribute string, onClick Handler, opts ...ListenerOption) Listener {
	l := Listener{
		scheme:    strings.ToLower(scheme),
		selector:  selector,
		attribute: attribute,
		selectAll: true,
		onClick:   onClick,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

func (l Listener) Scheme() string    { return l.scheme }
func (l Listener) Selector() string  { return l.selector }
func (l Listener) Attribute() string { return l.attribute }
func (l Listener) SelectAll() bool   { return l.selectAll }

func (l Listener) invoke(value *string, p Point) {
	if l.onClick != nil {
		l.onClick(value, p)
	}
}

// Script returns the bridge call that asks the rendering surface to attach
// this listener to the loaded document.
func (l Listener) Script() string {
	return fmt.Sprintf("addClassBasedOnClickListener(%s, %s, %s, %t);",
		jsString(l.scheme), jsString(l.selector), jsString(l.attribute), l.selectAll)
}

func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
