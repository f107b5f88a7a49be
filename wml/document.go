package wml

import (
	"strings"

	"github.com/tsawler/ooxml/opc"
	"github.com/tsawler/ooxml/oxml"
)

// Body is the w:body element of the main document part.
type Body struct {
	node *oxml.Node
	part *DocumentPart
}

// Block is a top-level content element of the body: a paragraph or a table,
// in document order.
type Block interface {
	block()
}

func (*Paragraph) block() {}
func (*Table) block()     {}

// Blocks returns the body's paragraphs and tables interleaved in document
// order.
func (b *Body) Blocks() ([]Block, error) {
	list := b.node.ChoiceChildren("p", "tbl")
	out := make([]Block, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		n := list.At(i)
		switch n.Local() {
		case "p":
			out = append(out, &Paragraph{node: n, part: b.part})
		case "tbl":
			out = append(out, &Table{node: n, part: b.part})
		}
	}
	return out, nil
}

// Paragraphs returns the body's top-level paragraphs in document order.
// Paragraphs inside tables are reached through the table wrappers.
func (b *Body) Paragraphs() ([]*Paragraph, error) {
	list, err := b.node.Children("p")
	if err != nil {
		return nil, err
	}
	out := make([]*Paragraph, list.Len())
	for i := range out {
		out[i] = &Paragraph{node: list.At(i), part: b.part}
	}
	return out, nil
}

// Tables returns the body's top-level tables in document order.
func (b *Body) Tables() ([]*Table, error) {
	list, err := b.node.Children("tbl")
	if err != nil {
		return nil, err
	}
	out := make([]*Table, list.Len())
	for i := range out {
		out[i] = &Table{node: list.At(i), part: b.part}
	}
	return out, nil
}

// Section returns the body-level section properties, nil when absent.
func (b *Body) Section() (*Section, error) {
	node, err := b.node.Child("sectPr")
	if err != nil || node == nil {
		return nil, err
	}
	return &Section{node: node}, nil
}

// Paragraph is one w:p element.
type Paragraph struct {
	node *oxml.Node
	part *DocumentPart
}

// Node exposes the underlying bound node for callers that need markup the
// wrapper does not surface.
func (p *Paragraph) Node() *oxml.Node { return p.node }

// StyleID returns the paragraph style identifier, empty when unstyled.
func (p *Paragraph) StyleID() (string, error) {
	pr, err := p.node.Child("pPr")
	if err != nil || pr == nil {
		return "", err
	}
	st, err := pr.Child("pStyle")
	if err != nil || st == nil {
		return "", err
	}
	return st.String("val")
}

// NumberingRef returns the paragraph's numbering reference (numId, ilvl).
// ok is false for unnumbered paragraphs.
func (p *Paragraph) NumberingRef() (numID, level int64, ok bool, err error) {
	pr, err := p.node.Child("pPr")
	if err != nil || pr == nil {
		return 0, 0, false, err
	}
	numPr, err := pr.Child("numPr")
	if err != nil || numPr == nil {
		return 0, 0, false, err
	}
	idNode, err := numPr.Child("numId")
	if err != nil || idNode == nil {
		return 0, 0, false, err
	}
	numID, err = idNode.Int("val")
	if err != nil {
		return 0, 0, false, err
	}
	if lvlNode, lerr := numPr.Child("ilvl"); lerr == nil && lvlNode != nil {
		if level, err = lvlNode.Int("val"); err != nil {
			return 0, 0, false, err
		}
	}
	return numID, level, true, nil
}

// OutlineLevel returns the paragraph's direct outline level (0-8), with ok
// false when none is set directly on the paragraph.
func (p *Paragraph) OutlineLevel() (int64, bool, error) {
	pr, err := p.node.Child("pPr")
	if err != nil || pr == nil {
		return 0, false, err
	}
	n, err := pr.Child("outlineLvl")
	if err != nil || n == nil {
		return 0, false, err
	}
	v, err := n.Int("val")
	return v, err == nil, err
}

// Runs returns the paragraph's runs in document order, including runs
// nested inside hyperlinks.
func (p *Paragraph) Runs() ([]*Run, error) {
	mixed := p.node.ChoiceChildren("r", "hyperlink")
	var out []*Run
	for i := 0; i < mixed.Len(); i++ {
		n := mixed.At(i)
		switch n.Local() {
		case "r":
			out = append(out, &Run{node: n, part: p.part})
		case "hyperlink":
			inner, err := n.Children("r")
			if err != nil {
				return nil, err
			}
			for j := 0; j < inner.Len(); j++ {
				out = append(out, &Run{node: inner.At(j), part: p.part})
			}
		}
	}
	return out, nil
}

// Hyperlinks returns the paragraph's hyperlinks in document order.
func (p *Paragraph) Hyperlinks() ([]*Hyperlink, error) {
	list, err := p.node.Children("hyperlink")
	if err != nil {
		return nil, err
	}
	out := make([]*Hyperlink, list.Len())
	for i := range out {
		out[i] = &Hyperlink{node: list.At(i), part: p.part}
	}
	return out, nil
}

// Text concatenates the paragraph's run text in document order. Tabs and
// breaks contribute "\t" and "\n".
func (p *Paragraph) Text() (string, error) {
	runs, err := p.Runs()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, r := range runs {
		t, err := r.Text()
		if err != nil {
			return "", err
		}
		sb.WriteString(t)
	}
	return sb.String(), nil
}

// Run is one w:r element: a span of text with uniform properties.
type Run struct {
	node *oxml.Node
	part *DocumentPart
}

// Node exposes the underlying bound node.
func (r *Run) Node() *oxml.Node { return r.node }

// Text returns the run's text content. Tab elements contribute "\t"; break
// elements contribute "\n" ("\n\n" for page breaks), in document order.
func (r *Run) Text() (string, error) {
	content := r.node.ChoiceChildren("t", "tab", "br", "cr")
	var sb strings.Builder
	for i := 0; i < content.Len(); i++ {
		n := content.At(i)
		switch n.Local() {
		case "t":
			sb.WriteString(n.Text())
		case "tab":
			sb.WriteString("\t")
		case "cr":
			sb.WriteString("\n")
		case "br":
			kind, err := n.EnumVal("type")
			if err != nil {
				return "", err
			}
			if kind == "page" {
				sb.WriteString("\n\n")
			} else {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String(), nil
}

// Bold reports whether the run carries a direct bold property.
func (r *Run) Bold() (bool, error) { return r.toggleProp("b") }

// Italic reports whether the run carries a direct italic property.
func (r *Run) Italic() (bool, error) { return r.toggleProp("i") }

// Strike reports whether the run carries a direct strikethrough property.
func (r *Run) Strike() (bool, error) { return r.toggleProp("strike") }

func (r *Run) toggleProp(local string) (bool, error) {
	pr, err := r.node.Child("rPr")
	if err != nil || pr == nil {
		return false, err
	}
	n, err := pr.Child(local)
	if err != nil || n == nil {
		return false, err
	}
	return n.Bool("val")
}

// FontSize returns the run's direct font size, zero when inherited.
func (r *Run) FontSize() (oxml.HalfPoints, error) {
	pr, err := r.node.Child("rPr")
	if err != nil || pr == nil {
		return 0, err
	}
	sz, err := pr.Child("sz")
	if err != nil || sz == nil {
		return 0, err
	}
	return sz.HalfPoints("val")
}

// Color returns the run's direct color value (a hex string or "auto"),
// empty when inherited.
func (r *Run) Color() (string, error) {
	pr, err := r.node.Child("rPr")
	if err != nil || pr == nil {
		return "", err
	}
	c, err := pr.Child("color")
	if err != nil || c == nil {
		return "", err
	}
	return c.String("val")
}

// StyleID returns the run's character style identifier, empty when unstyled.
func (r *Run) StyleID() (string, error) {
	pr, err := r.node.Child("rPr")
	if err != nil || pr == nil {
		return "", err
	}
	st, err := pr.Child("rStyle")
	if err != nil || st == nil {
		return "", err
	}
	return st.String("val")
}

// Hyperlink is one w:hyperlink element.
type Hyperlink struct {
	node *oxml.Node
	part *DocumentPart
}

// Text concatenates the hyperlink's run text.
func (h *Hyperlink) Text() (string, error) {
	list, err := h.node.Children("r")
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i := 0; i < list.Len(); i++ {
		t, err := (&Run{node: list.At(i), part: h.part}).Text()
		if err != nil {
			return "", err
		}
		sb.WriteString(t)
	}
	return sb.String(), nil
}

// TargetURL resolves the hyperlink's external target through the owning
// part's relationships. Anchored links within the document return an empty
// URL; URL resolution follows the relationship recorded against the part
// that owns the markup.
func (h *Hyperlink) TargetURL() (string, error) {
	relID, err := h.node.RelIDVal("id")
	if err != nil || relID == "" {
		return "", err
	}
	rel, ok, err := h.part.Package().Relationship(h.part.Name(), relID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &opc.DanglingRelationshipError{Source: h.part.Name(), ID: relID}
	}
	if !rel.External {
		return "", nil
	}
	return rel.Target, nil
}

// Anchor returns the in-document anchor name, empty for external links.
func (h *Hyperlink) Anchor() (string, error) {
	return h.node.String("anchor")
}

// Section wraps w:sectPr.
type Section struct {
	node *oxml.Node
}

// PageSize returns the section's page width and height.
func (s *Section) PageSize() (w, h oxml.Twips, err error) {
	sz, err := s.node.Child("pgSz")
	if err != nil || sz == nil {
		return 0, 0, err
	}
	if w, err = sz.Twips("w"); err != nil {
		return 0, 0, err
	}
	if h, err = sz.Twips("h"); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// Landscape reports whether the section is in landscape orientation.
func (s *Section) Landscape() (bool, error) {
	sz, err := s.node.Child("pgSz")
	if err != nil || sz == nil {
		return false, err
	}
	orient, err := sz.EnumVal("orient")
	if err != nil {
		return false, err
	}
	return orient == "landscape", nil
}
