package ooxml

import (
	"strings"

	"github.com/tsawler/ooxml/dml"
	"github.com/tsawler/ooxml/oxml"
	"github.com/tsawler/ooxml/pml"
)

// Presentation is a presentation view over an opened file.
type Presentation struct {
	file *File
	main *pml.PresentationPart
}

// OpenPresentation opens a presentation package. Packages of any other kind
// fail, spreadsheets with opc.UnsupportedFormatError.
func OpenPresentation(filename string, opts ...Option) (*Presentation, error) {
	f, err := Open(filename, opts...)
	if err != nil {
		return nil, err
	}
	pres, err := f.Presentation()
	if err != nil {
		f.Close()
		return nil, err
	}
	return pres, nil
}

// Close releases the underlying package.
func (p *Presentation) Close() error { return p.file.Close() }

// File returns the file view, for access to package metadata.
func (p *Presentation) File() *File { return p.file }

// Main returns the typed presentation part.
func (p *Presentation) Main() *pml.PresentationPart { return p.main }

// SlideCount returns the number of slides without parsing any of them.
func (p *Presentation) SlideCount() (int, error) { return p.main.SlideCount() }

// Slide returns the i-th slide (0-based) in presentation order.
func (p *Presentation) Slide(i int) (*pml.SlidePart, error) { return p.main.Slide(i) }

// Slides returns all slides in presentation order.
func (p *Presentation) Slides() ([]*pml.SlidePart, error) { return p.main.Slides() }

// SlideSize returns the slide dimensions in EMU.
func (p *Presentation) SlideSize() (cx, cy oxml.EMU, err error) { return p.main.SlideSize() }

// Theme returns the presentation's theme part, nil when absent.
func (p *Presentation) Theme() (*dml.ThemePart, error) { return p.main.Theme() }

// Text extracts all slide text in presentation order, slides separated by
// blank lines.
func (p *Presentation) Text() (string, error) {
	slides, err := p.Slides()
	if err != nil {
		return "", err
	}
	var parts []string
	for _, slide := range slides {
		text, err := slide.Text()
		if err != nil {
			return "", err
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}
