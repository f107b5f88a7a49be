package wml

import (
	"github.com/tsawler/ooxml/dml"
	"github.com/tsawler/ooxml/opc"
	"github.com/tsawler/ooxml/oxml"
)

func init() {
	opc.RegisterPartType(opc.CTWordDocumentMain, newDocumentPart)
	opc.RegisterPartType(opc.CTWordTemplateMain, newDocumentPart)
	opc.RegisterPartType(opc.CTWordStyles, newStylesPart)
	opc.RegisterPartType(opc.CTWordNumbering, newNumberingPart)
	opc.RegisterPartType(opc.CTWordSettings, newSettingsPart)
}

// DocumentPart is the main document part of a wordprocessing package. Its
// root element is w:document.
type DocumentPart struct {
	*opc.XMLPart
}

func newDocumentPart(b *opc.BasePart) opc.Part {
	return &DocumentPart{XMLPart: opc.NewXMLPart(b)}
}

// Body returns the document body, or nil for an empty document.
func (p *DocumentPart) Body() (*Body, error) {
	root, err := p.Root()
	if err != nil {
		return nil, err
	}
	node, err := root.Child("body")
	if err != nil || node == nil {
		return nil, err
	}
	return &Body{node: node, part: p}, nil
}

// Styles returns the document's styles part, following the styles
// relationship recorded against this part. Nil when the document has none.
func (p *DocumentPart) Styles() (*StylesPart, error) {
	part, err := relatedByType(p, opc.RelTypeStyles)
	if err != nil || part == nil {
		return nil, err
	}
	sp, _ := part.(*StylesPart)
	return sp, nil
}

// Numbering returns the document's numbering part, nil when absent.
func (p *DocumentPart) Numbering() (*NumberingPart, error) {
	part, err := relatedByType(p, opc.RelTypeNumbering)
	if err != nil || part == nil {
		return nil, err
	}
	np, _ := part.(*NumberingPart)
	return np, nil
}

// Settings returns the document's settings part, nil when absent.
func (p *DocumentPart) Settings() (*SettingsPart, error) {
	part, err := relatedByType(p, opc.RelTypeSettings)
	if err != nil || part == nil {
		return nil, err
	}
	sp, _ := part.(*SettingsPart)
	return sp, nil
}

// Theme returns the document's theme part, nil when absent.
func (p *DocumentPart) Theme() (*dml.ThemePart, error) {
	part, err := relatedByType(p, opc.RelTypeTheme)
	if err != nil || part == nil {
		return nil, err
	}
	tp, _ := part.(*dml.ThemePart)
	return tp, nil
}

// relatedByType dereferences the first relationship of the given type
// recorded against a part. A part with no such relationship yields nil
// without error; relationship scope is always local to the source part.
func relatedByType(p opc.Part, relType string) (opc.Part, error) {
	pkg := p.Package()
	rel, ok, err := pkg.RelationshipByType(p.Name(), relType)
	if err != nil || !ok {
		return nil, err
	}
	return pkg.PartByRelationship(p.Name(), rel)
}

// SettingsPart is the document settings part (w:settings).
type SettingsPart struct {
	*opc.XMLPart
}

func newSettingsPart(b *opc.BasePart) opc.Part {
	return &SettingsPart{XMLPart: opc.NewXMLPart(b)}
}

// DefaultTabStop returns the default tab stop width, zero when undeclared.
func (p *SettingsPart) DefaultTabStop() (oxml.Twips, error) {
	root, err := p.Root()
	if err != nil {
		return 0, err
	}
	node, err := root.Child("defaultTabStop")
	if err != nil || node == nil {
		return 0, err
	}
	return node.Twips("val")
}
