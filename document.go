package ooxml

import (
	"strings"

	"github.com/tsawler/ooxml/dml"
	"github.com/tsawler/ooxml/wml"
)

// Document is a word-processing view over an opened file.
type Document struct {
	file *File
	main *wml.DocumentPart
}

// OpenDocument opens a word-processing package. Packages of any other kind
// fail, spreadsheets with opc.UnsupportedFormatError.
func OpenDocument(filename string, opts ...Option) (*Document, error) {
	f, err := Open(filename, opts...)
	if err != nil {
		return nil, err
	}
	doc, err := f.Document()
	if err != nil {
		f.Close()
		return nil, err
	}
	return doc, nil
}

// Close releases the underlying package.
func (d *Document) Close() error { return d.file.Close() }

// File returns the file view, for access to package metadata.
func (d *Document) File() *File { return d.file }

// Main returns the typed main document part.
func (d *Document) Main() *wml.DocumentPart { return d.main }

// Body returns the document body.
func (d *Document) Body() (*wml.Body, error) { return d.main.Body() }

// Styles returns the document's styles part, nil when absent.
func (d *Document) Styles() (*wml.StylesPart, error) { return d.main.Styles() }

// Numbering returns the document's numbering part, nil when absent.
func (d *Document) Numbering() (*wml.NumberingPart, error) { return d.main.Numbering() }

// Settings returns the document's settings part, nil when absent.
func (d *Document) Settings() (*wml.SettingsPart, error) { return d.main.Settings() }

// Theme returns the document's theme part, nil when absent.
func (d *Document) Theme() (*dml.ThemePart, error) { return d.main.Theme() }

// Paragraphs returns the body's top-level paragraphs in document order.
func (d *Document) Paragraphs() ([]*wml.Paragraph, error) {
	body, err := d.Body()
	if err != nil || body == nil {
		return nil, err
	}
	return body.Paragraphs()
}

// Tables returns the body's top-level tables in document order.
func (d *Document) Tables() ([]*wml.Table, error) {
	body, err := d.Body()
	if err != nil || body == nil {
		return nil, err
	}
	return body.Tables()
}

// Text extracts the document's visible text: one line per paragraph,
// table cells joined with tabs, in document order.
func (d *Document) Text() (string, error) {
	body, err := d.Body()
	if err != nil || body == nil {
		return "", err
	}
	blocks, err := body.Blocks()
	if err != nil {
		return "", err
	}

	var lines []string
	for _, block := range blocks {
		switch b := block.(type) {
		case *wml.Paragraph:
			text, err := b.Text()
			if err != nil {
				return "", err
			}
			lines = append(lines, text)
		case *wml.Table:
			tl, err := tableLines(b)
			if err != nil {
				return "", err
			}
			lines = append(lines, tl...)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func tableLines(t *wml.Table) ([]string, error) {
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, row := range rows {
		cells, err := row.Cells()
		if err != nil {
			return nil, err
		}
		var texts []string
		for _, cell := range cells {
			text, err := cell.Text()
			if err != nil {
				return nil, err
			}
			texts = append(texts, text)
		}
		lines = append(lines, strings.Join(texts, "\t"))
	}
	return lines, nil
}
