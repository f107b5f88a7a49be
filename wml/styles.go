package wml

import (
	"strconv"
	"strings"

	"github.com/tsawler/ooxml/opc"
	"github.com/tsawler/ooxml/oxml"
)

// StylesPart is the styles definition part (w:styles).
type StylesPart struct {
	*opc.XMLPart

	byID     map[string]*Style
	resolved map[string]*ResolvedStyle
}

func newStylesPart(b *opc.BasePart) opc.Part {
	return &StylesPart{XMLPart: opc.NewXMLPart(b)}
}

// Style is one w:style definition.
type Style struct {
	node *oxml.Node
}

// ID returns the style identifier.
func (s *Style) ID() (string, error) { return s.node.String("styleId") }

// Type returns the style type: paragraph, character, table or numbering.
func (s *Style) Type() (string, error) { return s.node.EnumVal("type") }

// Name returns the style's display name, empty when undeclared.
func (s *Style) Name() (string, error) {
	n, err := s.node.Child("name")
	if err != nil || n == nil {
		return "", err
	}
	return n.String("val")
}

// BasedOn returns the parent style identifier, empty for root styles.
func (s *Style) BasedOn() (string, error) {
	n, err := s.node.Child("basedOn")
	if err != nil || n == nil {
		return "", err
	}
	return n.String("val")
}

// ResolvedStyle is a style with its inheritance chain applied: properties
// from the base style up, each level overriding the one below.
type ResolvedStyle struct {
	ID           string
	Name         string
	Type         string
	IsHeading    bool
	HeadingLevel int // 1-9, 0 when not a heading

	Bold      bool
	Italic    bool
	FontSize  oxml.HalfPoints // 0 when inherited from document defaults
	Alignment string          // empty when unset
}

// Style returns the style with the given identifier, nil when undefined.
func (p *StylesPart) Style(id string) (*Style, error) {
	if err := p.index(); err != nil {
		return nil, err
	}
	return p.byID[id], nil
}

// index builds the style map on first use.
func (p *StylesPart) index() error {
	if p.byID != nil {
		return nil
	}
	root, err := p.Root()
	if err != nil {
		return err
	}
	list, err := root.Children("style")
	if err != nil {
		return err
	}
	p.byID = make(map[string]*Style, list.Len())
	for i := 0; i < list.Len(); i++ {
		s := &Style{node: list.At(i)}
		id, err := s.ID()
		if err != nil {
			return err
		}
		p.byID[id] = s
	}
	return nil
}

// Resolve returns the fully resolved style for an identifier, walking the
// basedOn chain from root to leaf. Results are memoized. Unknown
// identifiers resolve to a bare style carrying only built-in heading
// detection.
func (p *StylesPart) Resolve(id string) (*ResolvedStyle, error) {
	if err := p.index(); err != nil {
		return nil, err
	}
	if p.resolved == nil {
		p.resolved = make(map[string]*ResolvedStyle)
	}
	if rs, ok := p.resolved[id]; ok {
		return rs, nil
	}

	rs := &ResolvedStyle{ID: id}
	rs.IsHeading, rs.HeadingLevel = builtInHeading(id)

	chain, err := p.inheritanceChain(id)
	if err != nil {
		return nil, err
	}
	for _, sid := range chain {
		s := p.byID[sid]
		if s == nil {
			continue
		}
		if err := p.applyStyle(rs, s); err != nil {
			return nil, err
		}
	}

	if s := p.byID[id]; s != nil {
		if rs.Name, err = s.Name(); err != nil {
			return nil, err
		}
		if rs.Type, err = s.Type(); err != nil {
			return nil, err
		}
		if !rs.IsHeading {
			if err := p.detectHeading(rs, s); err != nil {
				return nil, err
			}
		}
	}

	p.resolved[id] = rs
	return rs, nil
}

// inheritanceChain lists style IDs from the base of the basedOn chain to
// the requested style. Cycles terminate at the first repeated identifier.
func (p *StylesPart) inheritanceChain(id string) ([]string, error) {
	var chain []string
	seen := make(map[string]bool)
	for cur := id; cur != "" && !seen[cur]; {
		seen[cur] = true
		chain = append([]string{cur}, chain...)
		s := p.byID[cur]
		if s == nil {
			break
		}
		base, err := s.BasedOn()
		if err != nil {
			return nil, err
		}
		cur = base
	}
	return chain, nil
}

// applyStyle overlays one style definition's properties onto the resolved
// result.
func (p *StylesPart) applyStyle(rs *ResolvedStyle, s *Style) error {
	if rPr, err := s.node.Child("rPr"); err != nil {
		return err
	} else if rPr != nil {
		if b, err := rPr.Child("b"); err != nil {
			return err
		} else if b != nil {
			v, err := b.Bool("val")
			if err != nil {
				return err
			}
			rs.Bold = v
		}
		if i, err := rPr.Child("i"); err != nil {
			return err
		} else if i != nil {
			v, err := i.Bool("val")
			if err != nil {
				return err
			}
			rs.Italic = v
		}
		if sz, err := rPr.Child("sz"); err != nil {
			return err
		} else if sz != nil {
			v, err := sz.HalfPoints("val")
			if err != nil {
				return err
			}
			rs.FontSize = v
		}
	}

	pPr, err := s.node.Child("pPr")
	if err != nil {
		return err
	}
	if pPr != nil {
		if jc, err := pPr.Child("jc"); err != nil {
			return err
		} else if jc != nil {
			v, err := jc.EnumVal("val")
			if err != nil {
				return err
			}
			rs.Alignment = v
		}
	}
	return nil
}

// detectHeading marks styles that behave as headings: an outline level in
// their paragraph properties, or a name containing "heading".
func (p *StylesPart) detectHeading(rs *ResolvedStyle, s *Style) error {
	pPr, err := s.node.Child("pPr")
	if err != nil {
		return err
	}
	if pPr != nil {
		lvl, err := pPr.Child("outlineLvl")
		if err != nil {
			return err
		}
		if lvl != nil {
			v, err := lvl.Int("val")
			if err != nil {
				return err
			}
			if v >= 0 && v <= 8 {
				rs.IsHeading = true
				rs.HeadingLevel = int(v) + 1 // outline levels are 0-based
				return nil
			}
		}
	}

	name, err := s.Name()
	if err != nil {
		return err
	}
	if strings.Contains(strings.ToLower(name), "heading") {
		rs.IsHeading = true
		if rs.HeadingLevel == 0 {
			rs.HeadingLevel = 1
		}
	}
	return nil
}

// builtInHeading recognizes the standard built-in heading style IDs,
// which documents use without defining.
func builtInHeading(id string) (bool, int) {
	lower := strings.ToLower(id)
	if lower == "title" {
		return true, 1
	}
	if rest, ok := cutPrefix(lower, "heading"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n >= 1 && n <= 9 {
			return true, n
		}
	}
	return false, 0
}

func cutPrefix(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		return s[len(prefix):], true
	}
	return "", false
}
