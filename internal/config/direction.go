package config

import (
	"fmt"
	"strings"
)

// Direction is the axis along which chapters and their content scroll.
type Direction int

const (
	// DefaultVertical is a vertical layout the user has not chosen explicitly.
	DefaultVertical Direction = iota
	Vertical
	Horizontal
	// HorizontalWithVerticalContent pages chapters horizontally and scrolls
	// inside each chapter vertically.
	HorizontalWithVerticalContent
)

var directionNames = map[Direction]string{
	DefaultVertical:               "default_vertical",
	Vertical:                      "vertical",
	Horizontal:                    "horizontal",
	HorizontalWithVerticalContent: "horizontal_with_vertical_content",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if strings.EqualFold(s, name) {
			return d, nil
		}
	}
	return DefaultVertical, fmt.Errorf("unknown layout direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Is reports whether d is one of ds.
func (d Direction) Is(ds ...Direction) bool {
	for _, v := range ds {
		if d == v {
			return true
		}
	}
	return false
}

type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// Axis returns the axis along which chapters follow each other.
func (d Direction) Axis() Axis {
	return Resolve(d, AxisVertical, AxisHorizontal, AxisHorizontal)
}

// Resolve picks the candidate matching d: vertical for Vertical and
// DefaultVertical, horizontal for Horizontal and the third candidate for
// HorizontalWithVerticalContent. Without a third candidate the vertical one
// is used. Unknown directions resolve as DefaultVertical.
func Resolve[T any](d Direction, vertical, horizontal T, horizontalWithVerticalContent ...T) T {
	switch d {
	case Horizontal:
		return horizontal
	case HorizontalWithVerticalContent:
		if len(horizontalWithVerticalContent) > 0 {
			return horizontalWithVerticalContent[0]
		}
		return vertical
	default:
		return vertical
	}
}
