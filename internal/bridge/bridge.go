// Package bridge evaluates click listeners against rendered HTML the way the
// rendering surface does, so listeners can be checked without a web view.
package bridge

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kvark128/FolioCore/internal/click"
)

// Attachment is a listener attached to one matched element.
type Attachment struct {
	Listener click.Listener
	// Index of the element among the selector matches.
	Index int
	// Value of the listener attribute on the element, nil when absent.
	Value *string
	// Element is the matched node.
	Element *goquery.Selection
}

// Tap returns the navigation the rendering surface raises when the element
// is tapped at p.
func (a Attachment) Tap(p click.Point) string {
	return click.Navigation{Scheme: a.Listener.Scheme(), Value: a.Value, Point: p}.String()
}

func Load(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	return doc, nil
}

// Bind attaches listeners in order. A listener whose selector matches no
// element, or is not a valid selector, gets no attachment.
func Bind(doc *goquery.Document, listeners []click.Listener) []Attachment {
	var attachments []Attachment
	for _, l := range listeners {
		matches := doc.Find(l.Selector())
		if !l.SelectAll() {
			matches = matches.First()
		}
		matches.Each(func(i int, s *goquery.Selection) {
			attachments = append(attachments, Attachment{
				Listener: l,
				Index:    i,
				Value:    attribute(s, l.Attribute()),
				Element:  s,
			})
		})
	}
	return attachments
}

func attribute(s *goquery.Selection, name string) *string {
	if name == "" {
		return nil
	}
	v, ok := s.Attr(name)
	if !ok {
		return nil
	}
	return &v
}

// Script returns the bridge calls attaching every listener, one per line.
func Script(listeners []click.Listener) string {
	var sb strings.Builder
	for _, l := range listeners {
		sb.WriteString(l.Script())
		sb.WriteByte('\n')
	}
	return sb.String()
}
