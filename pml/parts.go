package pml

import (
	"github.com/tsawler/ooxml/dml"
	"github.com/tsawler/ooxml/opc"
	"github.com/tsawler/ooxml/oxml"
)

func init() {
	opc.RegisterPartType(opc.CTPresentationMain, newPresentationPart)
	opc.RegisterPartType(opc.CTSlideshowMain, newPresentationPart)
	opc.RegisterPartType(opc.CTPresTemplateMain, newPresentationPart)
	opc.RegisterPartType(opc.CTSlide, newSlidePart)
	opc.RegisterPartType(opc.CTSlideLayout, newSlideLayoutPart)
	opc.RegisterPartType(opc.CTSlideMaster, newSlideMasterPart)
	opc.RegisterPartType(opc.CTNotesSlide, newNotesSlidePart)
	opc.RegisterPartType(opc.CTNotesMaster, newNotesMasterPart)
}

// PresentationPart is the main part of a presentation package (p:presentation).
type PresentationPart struct {
	*opc.XMLPart
}

func newPresentationPart(b *opc.BasePart) opc.Part {
	return &PresentationPart{XMLPart: opc.NewXMLPart(b)}
}

// SlideSize returns the slide dimensions, zero when undeclared.
func (p *PresentationPart) SlideSize() (cx, cy oxml.EMU, err error) {
	root, err := p.Root()
	if err != nil {
		return 0, 0, err
	}
	sz, err := root.Child("sldSz")
	if err != nil || sz == nil {
		return 0, 0, err
	}
	if cx, err = sz.EMU("cx"); err != nil {
		return 0, 0, err
	}
	if cy, err = sz.EMU("cy"); err != nil {
		return 0, 0, err
	}
	return cx, cy, nil
}

// SlideCount returns the number of slides in presentation order without
// binding any slide part.
func (p *PresentationPart) SlideCount() (int, error) {
	ids, err := p.slideIDs()
	if err != nil || ids == nil {
		return 0, err
	}
	return ids.Len(), nil
}

// Slide returns the i-th slide (0-based) in presentation order. Only the
// requested slide part is parsed.
func (p *PresentationPart) Slide(i int) (*SlidePart, error) {
	ids, err := p.slideIDs()
	if err != nil {
		return nil, err
	}
	relID, err := ids.At(i).RelIDVal("id")
	if err != nil {
		return nil, err
	}
	part, err := p.RelatedPart(relID)
	if err != nil {
		return nil, err
	}
	sp, _ := part.(*SlidePart)
	return sp, nil
}

// Slides returns all slides in presentation order, as declared by the slide
// id list — never by slide file naming.
func (p *PresentationPart) Slides() ([]*SlidePart, error) {
	n, err := p.SlideCount()
	if err != nil {
		return nil, err
	}
	out := make([]*SlidePart, 0, n)
	for i := 0; i < n; i++ {
		s, err := p.Slide(i)
		if err != nil {
			return nil, err
		}
		if s != nil {
			out = append(out, s)
		}
	}
	return out, nil
}

// Masters returns the presentation's slide masters in declared order.
func (p *PresentationPart) Masters() ([]*SlideMasterPart, error) {
	root, err := p.Root()
	if err != nil {
		return nil, err
	}
	lst, err := root.Child("sldMasterIdLst")
	if err != nil || lst == nil {
		return nil, err
	}
	ids, err := lst.Children("sldMasterId")
	if err != nil {
		return nil, err
	}
	out := make([]*SlideMasterPart, 0, ids.Len())
	for i := 0; i < ids.Len(); i++ {
		relID, err := ids.At(i).RelIDVal("id")
		if err != nil {
			return nil, err
		}
		part, err := p.RelatedPart(relID)
		if err != nil {
			return nil, err
		}
		if mp, ok := part.(*SlideMasterPart); ok {
			out = append(out, mp)
		}
	}
	return out, nil
}

// Theme returns the presentation-level theme part, nil when absent.
func (p *PresentationPart) Theme() (*dml.ThemePart, error) {
	part, err := relatedByType(p, opc.RelTypeTheme)
	if err != nil || part == nil {
		return nil, err
	}
	tp, _ := part.(*dml.ThemePart)
	return tp, nil
}

func (p *PresentationPart) slideIDs() (*oxml.NodeList, error) {
	root, err := p.Root()
	if err != nil {
		return nil, err
	}
	lst, err := root.Child("sldIdLst")
	if err != nil || lst == nil {
		return nil, err
	}
	return lst.Children("sldId")
}

// SlidePart is one slide part (p:sld).
type SlidePart struct {
	*opc.XMLPart
}

func newSlidePart(b *opc.BasePart) opc.Part {
	return &SlidePart{XMLPart: opc.NewXMLPart(b)}
}

// Name returns the slide's common-data name attribute, usually empty.
func (p *SlidePart) SlideName() (string, error) {
	cSld, err := p.commonSlideData()
	if err != nil || cSld == nil {
		return "", err
	}
	return cSld.String("name")
}

// Shapes returns the slide's shape tree entries in document order.
func (p *SlidePart) Shapes() ([]*Shape, error) {
	return shapesOf(p.XMLPart)
}

// Text joins the text of all text-bearing shapes with blank lines, in
// shape-tree order.
func (p *SlidePart) Text() (string, error) {
	return shapeTreeText(p.XMLPart)
}

// Layout returns the slide's layout, following the slideLayout relationship
// recorded against this slide part.
func (p *SlidePart) Layout() (*SlideLayoutPart, error) {
	part, err := relatedByType(p, opc.RelTypeSlideLayout)
	if err != nil || part == nil {
		return nil, err
	}
	lp, _ := part.(*SlideLayoutPart)
	return lp, nil
}

// NotesSlide returns the slide's notes, nil when it has none.
func (p *SlidePart) NotesSlide() (*NotesSlidePart, error) {
	part, err := relatedByType(p, opc.RelTypeNotesSlide)
	if err != nil || part == nil {
		return nil, err
	}
	np, _ := part.(*NotesSlidePart)
	return np, nil
}

func (p *SlidePart) commonSlideData() (*oxml.Node, error) {
	root, err := p.Root()
	if err != nil {
		return nil, err
	}
	return root.Child("cSld")
}

// SlideLayoutPart is one slide layout part (p:sldLayout).
type SlideLayoutPart struct {
	*opc.XMLPart
}

func newSlideLayoutPart(b *opc.BasePart) opc.Part {
	return &SlideLayoutPart{XMLPart: opc.NewXMLPart(b)}
}

// Type returns the layout's type token, "cust" when undeclared.
func (p *SlideLayoutPart) Type() (string, error) {
	root, err := p.Root()
	if err != nil {
		return "", err
	}
	return root.EnumVal("type")
}

// Master returns the layout's slide master, following the slideMaster
// relationship recorded against this layout part.
func (p *SlideLayoutPart) Master() (*SlideMasterPart, error) {
	part, err := relatedByType(p, opc.RelTypeSlideMaster)
	if err != nil || part == nil {
		return nil, err
	}
	mp, _ := part.(*SlideMasterPart)
	return mp, nil
}

// Shapes returns the layout's shape tree entries.
func (p *SlideLayoutPart) Shapes() ([]*Shape, error) {
	return shapesOf(p.XMLPart)
}

// SlideMasterPart is one slide master part (p:sldMaster).
type SlideMasterPart struct {
	*opc.XMLPart
}

func newSlideMasterPart(b *opc.BasePart) opc.Part {
	return &SlideMasterPart{XMLPart: opc.NewXMLPart(b)}
}

// Theme returns the master's theme part, nil when absent.
func (p *SlideMasterPart) Theme() (*dml.ThemePart, error) {
	part, err := relatedByType(p, opc.RelTypeTheme)
	if err != nil || part == nil {
		return nil, err
	}
	tp, _ := part.(*dml.ThemePart)
	return tp, nil
}

// Shapes returns the master's shape tree entries.
func (p *SlideMasterPart) Shapes() ([]*Shape, error) {
	return shapesOf(p.XMLPart)
}

// NotesSlidePart is one notes slide part (p:notes).
type NotesSlidePart struct {
	*opc.XMLPart
}

func newNotesSlidePart(b *opc.BasePart) opc.Part {
	return &NotesSlidePart{XMLPart: opc.NewXMLPart(b)}
}

// Text returns the notes text.
func (p *NotesSlidePart) Text() (string, error) {
	return shapeTreeText(p.XMLPart)
}

// NotesMasterPart is the shared formatting part for notes slides.
type NotesMasterPart struct {
	*opc.XMLPart
}

func newNotesMasterPart(b *opc.BasePart) opc.Part {
	return &NotesMasterPart{XMLPart: opc.NewXMLPart(b)}
}

// Theme returns the notes master's theme part, nil when absent.
func (p *NotesMasterPart) Theme() (*dml.ThemePart, error) {
	part, err := relatedByType(p, opc.RelTypeTheme)
	if err != nil || part == nil {
		return nil, err
	}
	tp, _ := part.(*dml.ThemePart)
	return tp, nil
}

// relatedByType dereferences the first relationship of the given type
// recorded against a part, nil when the part has no such relationship.
func relatedByType(p opc.Part, relType string) (opc.Part, error) {
	pkg := p.Package()
	rel, ok, err := pkg.RelationshipByType(p.Name(), relType)
	if err != nil || !ok {
		return nil, err
	}
	return pkg.PartByRelationship(p.Name(), rel)
}
