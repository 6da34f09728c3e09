// Package background defines the GNOME background slideshow XML document.
package background

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrInvalidText is returned when a value cannot be stored in XML 1.0 unchanged.
var ErrInvalidText = errors.New("text is not representable in XML")

// Header is the XML declaration written ahead of the document.
const Header = `<?xml version="1.0" ?>` + "\n"

// Indent is the per-level indentation of encoded documents.
const Indent = "    "

// Entry is one step of a slideshow: a *Static or a *Transition.
type Entry interface {
	entry()
}

// Background is the root element of a slideshow document.
type Background struct {
	XMLName xml.Name `xml:"background"`

	// Entries holds the steps in playback order
	Entries []Entry
}

// Static shows a single image for a fixed duration.
type Static struct {
	XMLName xml.Name `xml:"static"`

	// Duration is the display time in seconds, e.g. "3600.0"
	Duration string `xml:"duration"`

	// File is the absolute image path
	File string `xml:"file"`
}

// Transition cross-fades from one image to the next.
type Transition struct {
	XMLName xml.Name `xml:"transition"`

	// Duration is the fade time in seconds, e.g. "2.0"
	Duration string `xml:"duration"`

	// From is the image being faded out
	From string `xml:"from"`

	// To is the image being faded in
	To string `xml:"to"`
}

func (*Static) entry()     {}
func (*Transition) entry() {}

// Statics returns the static entries in order.
func (b *Background) Statics() []*Static {
	var out []*Static
	for _, e := range b.Entries {
		if s, ok := e.(*Static); ok {
			out = append(out, s)
		}
	}
	return out
}

// Transitions returns the transition entries in order.
func (b *Background) Transitions() []*Transition {
	var out []*Transition
	for _, e := range b.Entries {
		if t, ok := e.(*Transition); ok {
			out = append(out, t)
		}
	}
	return out
}

// UnmarshalXML decodes the children of <background> keeping their order.
// Elements other than <static> and <transition> are skipped.
func (b *Background) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if start.Name.Local != "background" {
		return fmt.Errorf("unexpected root element <%s>", start.Name.Local)
	}
	b.XMLName = start.Name
	b.Entries = nil

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "static":
				s := &Static{}
				if err := d.DecodeElement(s, &t); err != nil {
					return fmt.Errorf("decode static entry: %w", err)
				}
				b.Entries = append(b.Entries, s)
			case "transition":
				tr := &Transition{}
				if err := d.DecodeElement(tr, &t); err != nil {
					return fmt.Errorf("decode transition entry: %w", err)
				}
				b.Entries = append(b.Entries, tr)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// ValidText reports whether s is valid UTF-8 made only of XML 1.0 characters,
// so it survives an encode/decode round trip byte for byte.
func ValidText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == 0x09 || r == 0x0A || r == 0x0D:
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}

// validate checks every text value of b with ValidText.
func (b *Background) validate() error {
	for i, e := range b.Entries {
		var values []string
		switch t := e.(type) {
		case *Static:
			values = []string{t.Duration, t.File}
		case *Transition:
			values = []string{t.Duration, t.From, t.To}
		}
		for _, v := range values {
			if !ValidText(v) {
				return fmt.Errorf("%w: entry %d: %q", ErrInvalidText, i, v)
			}
		}
	}
	return nil
}

// Encode writes b as an indented XML document. Nothing is written when a
// value would not survive encoding unchanged.
func Encode(w io.Writer, b *Background) error {
	if err := b.validate(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", Indent)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode background: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// Decode reads a slideshow document.
func Decode(r io.Reader) (*Background, error) {
	var b Background
	if err := xml.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode background: %w", err)
	}
	return &b, nil
}
