package wml

import (
	"strings"

	"github.com/tsawler/ooxml/oxml"
)

// Table is one w:tbl element.
type Table struct {
	node *oxml.Node
	part *DocumentPart
}

// Node exposes the underlying bound node.
func (t *Table) Node() *oxml.Node { return t.node }

// StyleID returns the table style identifier, empty when unstyled.
func (t *Table) StyleID() (string, error) {
	pr, err := t.node.Child("tblPr")
	if err != nil || pr == nil {
		return "", err
	}
	st, err := pr.Child("tblStyle")
	if err != nil || st == nil {
		return "", err
	}
	return st.String("val")
}

// ColumnWidths returns the declared grid column widths, nil when the table
// has no grid.
func (t *Table) ColumnWidths() ([]oxml.Twips, error) {
	grid, err := t.node.Child("tblGrid")
	if err != nil || grid == nil {
		return nil, err
	}
	cols, err := grid.Children("gridCol")
	if err != nil {
		return nil, err
	}
	out := make([]oxml.Twips, cols.Len())
	for i := range out {
		if out[i], err = cols.At(i).Twips("w"); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Rows returns the table rows in document order.
func (t *Table) Rows() ([]*Row, error) {
	list, err := t.node.Children("tr")
	if err != nil {
		return nil, err
	}
	out := make([]*Row, list.Len())
	for i := range out {
		out[i] = &Row{node: list.At(i), part: t.part}
	}
	return out, nil
}

// Row is one w:tr element.
type Row struct {
	node *oxml.Node
	part *DocumentPart
}

// IsHeader reports whether the row repeats as a header on every page.
func (r *Row) IsHeader() (bool, error) {
	pr, err := r.node.Child("trPr")
	if err != nil || pr == nil {
		return false, err
	}
	h, err := pr.Child("tblHeader")
	if err != nil || h == nil {
		return false, err
	}
	return h.Bool("val")
}

// Cells returns the row's cells in document order.
func (r *Row) Cells() ([]*Cell, error) {
	list, err := r.node.Children("tc")
	if err != nil {
		return nil, err
	}
	out := make([]*Cell, list.Len())
	for i := range out {
		out[i] = &Cell{node: list.At(i), part: r.part}
	}
	return out, nil
}

// Cell is one w:tc element.
type Cell struct {
	node *oxml.Node
	part *DocumentPart
}

// Paragraphs returns the cell's paragraphs in document order.
func (c *Cell) Paragraphs() ([]*Paragraph, error) {
	list, err := c.node.Children("p")
	if err != nil {
		return nil, err
	}
	out := make([]*Paragraph, list.Len())
	for i := range out {
		out[i] = &Paragraph{node: list.At(i), part: c.part}
	}
	return out, nil
}

// Tables returns tables nested inside the cell.
func (c *Cell) Tables() ([]*Table, error) {
	list, err := c.node.Children("tbl")
	if err != nil {
		return nil, err
	}
	out := make([]*Table, list.Len())
	for i := range out {
		out[i] = &Table{node: list.At(i), part: c.part}
	}
	return out, nil
}

// GridSpan returns the number of grid columns the cell spans, at least 1.
func (c *Cell) GridSpan() (int64, error) {
	pr, err := c.node.Child("tcPr")
	if err != nil || pr == nil {
		return 1, err
	}
	span, err := pr.Child("gridSpan")
	if err != nil || span == nil {
		return 1, err
	}
	v, err := span.Int("val")
	if err != nil {
		return 1, err
	}
	if v < 1 {
		v = 1
	}
	return v, nil
}

// MergedVertically reports whether the cell continues a vertical merge
// started in a row above.
func (c *Cell) MergedVertically() (bool, error) {
	pr, err := c.node.Child("tcPr")
	if err != nil || pr == nil {
		return false, err
	}
	m, err := pr.Child("vMerge")
	if err != nil || m == nil {
		return false, err
	}
	v, err := m.EnumVal("val")
	if err != nil {
		return false, err
	}
	return v != "restart", nil
}

// Text joins the cell's paragraph text with newlines.
func (c *Cell) Text() (string, error) {
	paras, err := c.Paragraphs()
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(paras))
	for _, p := range paras {
		t, err := p.Text()
		if err != nil {
			return "", err
		}
		parts = append(parts, t)
	}
	return strings.Join(parts, "\n"), nil
}
