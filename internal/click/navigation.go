package click

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	ErrNotIntercepted = errors.New("navigation is not a click interception")
	ErrBadPosition    = errors.New("malformed tap position")
)

const positionPrefix = "/clientX="

// Navigation is a click interception raised by the rendering surface as
//
//	scheme:///clientX=<x>,clientY=<y>?value=<query-escaped attribute value>
//
// The value parameter is left out when the element has no such attribute.
// A percent-encoded value in the path segment before the position is also
// accepted.
type Navigation struct {
	Scheme string
	Value  *string
	Point  Point
}

// ParseNavigation decodes a click interception URL. Value is nil unless the
// URL carries a value parameter or a non-empty value segment.
func ParseNavigation(rawURL string) (Navigation, error) {
	scheme, rest, ok := strings.Cut(rawURL, "://")
	if !ok || scheme == "" {
		return Navigation{}, ErrNotIntercepted
	}
	rest, query, hasQuery := strings.Cut(rest, "?")
	i := strings.LastIndex(rest, positionPrefix)
	if i < 0 {
		return Navigation{}, ErrNotIntercepted
	}

	p, err := parsePosition(rest[i+1:])
	if err != nil {
		return Navigation{}, err
	}

	nav := Navigation{Scheme: strings.ToLower(scheme), Point: p}
	if encoded := rest[:i]; encoded != "" {
		value, err := url.PathUnescape(encoded)
		if err != nil {
			return Navigation{}, fmt.Errorf("attribute value: %w", err)
		}
		nav.Value = &value
	}
	if hasQuery {
		params, err := url.ParseQuery(query)
		if err != nil {
			return Navigation{}, fmt.Errorf("attribute value: %w", err)
		}
		if values, ok := params["value"]; ok && len(values) > 0 {
			value := values[0]
			nav.Value = &value
		}
	}
	return nav, nil
}

// parsePosition parses "clientX=<x>,clientY=<y>".
func parsePosition(s string) (Point, error) {
	xPart, yPart, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, ErrBadPosition
	}
	x, err := parseCoordinate(xPart, "clientX=")
	if err != nil {
		return Point{}, err
	}
	y, err := parseCoordinate(yPart, "clientY=")
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func parseCoordinate(s, prefix string) (float64, error) {
	num, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return 0, ErrBadPosition
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadPosition, err)
	}
	return v, nil
}

// String encodes the navigation in the form accepted by ParseNavigation.
func (n Navigation) String() string {
	s := fmt.Sprintf("%s://%s%s,clientY=%s", n.Scheme, positionPrefix,
		strconv.FormatFloat(n.Point.X, 'f', -1, 64), strconv.FormatFloat(n.Point.Y, 'f', -1, 64))
	if n.Value != nil {
		s += "?" + url.Values{"value": {*n.Value}}.Encode()
	}
	return s
}
