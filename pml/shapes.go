package pml

import (
	"strings"

	"github.com/tsawler/ooxml/dml"
	"github.com/tsawler/ooxml/opc"
	"github.com/tsawler/ooxml/oxml"
)

// Shape is one entry of a slide's shape tree: a shape, picture, graphic
// frame, group, or connector.
type Shape struct {
	part opc.Part
	node *oxml.Node
}

// Node exposes the underlying bound node.
func (s *Shape) Node() *oxml.Node { return s.node }

// Kind returns the shape element's local name: sp, pic, graphicFrame,
// grpSp, or cxnSp.
func (s *Shape) Kind() string { return s.node.Local() }

// ID returns the shape's drawing identifier from its non-visual properties.
func (s *Shape) ID() (uint64, error) {
	cNvPr, err := s.nonVisual()
	if err != nil || cNvPr == nil {
		return 0, err
	}
	return cNvPr.Uint("id")
}

// ShapeName returns the shape's display name, empty when it has no
// non-visual properties.
func (s *Shape) ShapeName() (string, error) {
	cNvPr, err := s.nonVisual()
	if err != nil || cNvPr == nil {
		return "", err
	}
	return cNvPr.String("name")
}

// Placeholder returns the shape's placeholder type (title, body, ctrTitle,
// subTitle, ...) and whether the shape is a placeholder at all.
func (s *Shape) Placeholder() (string, bool, error) {
	nv, err := s.node.Child("nv" + upperFirst(s.Kind()) + "Pr")
	if err != nil || nv == nil {
		return "", false, err
	}
	nvPr, err := nv.Child("nvPr")
	if err != nil || nvPr == nil {
		return "", false, err
	}
	ph, err := nvPr.Child("ph")
	if err != nil || ph == nil {
		return "", false, err
	}
	typ, err := ph.EnumVal("type")
	if err != nil {
		return "", false, err
	}
	return typ, true, nil
}

// TextBody returns the shape's text body, nil when the shape carries no
// text.
func (s *Shape) TextBody() (*dml.TextBody, error) {
	tb, err := s.node.Child("txBody")
	if err != nil || tb == nil {
		return nil, err
	}
	return dml.NewTextBody(tb), nil
}

// Text returns the shape's text, empty when the shape carries none.
func (s *Shape) Text() (string, error) {
	tb, err := s.TextBody()
	if err != nil || tb == nil {
		return "", err
	}
	return tb.Text()
}

// ImageRelID returns the relationship identifier of a picture shape's
// embedded image, empty when the shape is not a picture or the fill has no
// embedded blip.
func (s *Shape) ImageRelID() (string, error) {
	if s.Kind() != "pic" {
		return "", nil
	}
	fill, err := s.node.Child("blipFill")
	if err != nil || fill == nil {
		return "", err
	}
	blip, err := fill.Child("blip")
	if err != nil || blip == nil {
		return "", err
	}
	relID, err := blip.RelIDVal("embed")
	if err != nil {
		return "", err
	}
	return relID, nil
}

// ImagePart dereferences a picture shape's embedded image against the
// owning slide's relationships, nil for non-picture shapes.
func (s *Shape) ImagePart() (opc.Part, error) {
	relID, err := s.ImageRelID()
	if err != nil || relID == "" {
		return nil, err
	}
	rel, ok, err := s.part.Package().Relationship(s.part.Name(), relID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &opc.DanglingRelationshipError{Source: s.part.Name(), ID: relID}
	}
	return s.part.Package().PartByRelationship(s.part.Name(), rel)
}

// nonVisual returns the shape's cNvPr node, nil for shape kinds without a
// recognized non-visual wrapper.
func (s *Shape) nonVisual() (*oxml.Node, error) {
	nv, err := s.node.Child("nv" + upperFirst(s.Kind()) + "Pr")
	if err != nil || nv == nil {
		return nil, err
	}
	return nv.Child("cNvPr")
}

// upperFirst maps a shape kind to its non-visual wrapper infix: sp to Sp,
// pic to Pic, graphicFrame to GraphicFrame.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// shapesOf walks a part's common slide data and wraps each shape-tree entry.
func shapesOf(p *opc.XMLPart) ([]*Shape, error) {
	root, err := p.Root()
	if err != nil {
		return nil, err
	}
	cSld, err := root.Child("cSld")
	if err != nil || cSld == nil {
		return nil, err
	}
	spTree, err := cSld.Child("spTree")
	if err != nil || spTree == nil {
		return nil, err
	}
	entries := spTree.ChoiceChildren("sp", "pic", "graphicFrame", "grpSp", "cxnSp")
	out := make([]*Shape, 0, entries.Len())
	for i := 0; i < entries.Len(); i++ {
		out = append(out, &Shape{part: p, node: entries.At(i)})
	}
	return out, nil
}

// shapeTreeText joins the text of every text-bearing shape with blank
// lines, in shape-tree order.
func shapeTreeText(p *opc.XMLPart) (string, error) {
	shapes, err := shapesOf(p)
	if err != nil {
		return "", err
	}
	var parts []string
	for _, s := range shapes {
		text, err := s.Text()
		if err != nil {
			return "", err
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}
