package wml

import (
	"github.com/tsawler/ooxml/opc"
	"github.com/tsawler/ooxml/oxml"
)

// NumberingPart is the numbering definitions part (w:numbering). Concrete
// numbering instances (w:num) indirect through abstract definitions
// (w:abstractNum); LevelFor follows that indirection.
type NumberingPart struct {
	*opc.XMLPart

	numToAbstract map[int64]int64
	abstracts     map[int64]*oxml.Node
	overrides     map[int64]map[int64]*oxml.Node // numId -> ilvl -> lvlOverride
}

func newNumberingPart(b *opc.BasePart) opc.Part {
	return &NumberingPart{XMLPart: opc.NewXMLPart(b)}
}

// Level is one resolved numbering level.
type Level struct {
	node     *oxml.Node
	override *oxml.Node // matching lvlOverride, nil when none
}

// Format returns the level's number format token, "decimal" when
// undeclared.
func (l *Level) Format() (string, error) {
	if l.node == nil {
		return "decimal", nil
	}
	n, err := l.node.Child("numFmt")
	if err != nil || n == nil {
		return "decimal", err
	}
	return n.EnumVal("val")
}

// IsBullet reports whether the level renders as a bullet rather than a
// number.
func (l *Level) IsBullet() (bool, error) {
	f, err := l.Format()
	return f == "bullet", err
}

// LevelText returns the level's text template, such as "%1." or a bullet
// glyph.
func (l *Level) LevelText() (string, error) {
	if l.node == nil {
		return "", nil
	}
	n, err := l.node.Child("lvlText")
	if err != nil || n == nil {
		return "", err
	}
	return n.String("val")
}

// Start returns the level's start value, honoring a startOverride from the
// concrete numbering instance. Defaults to 1.
func (l *Level) Start() (int64, error) {
	if l.override != nil {
		if so, err := l.override.Child("startOverride"); err != nil {
			return 0, err
		} else if so != nil {
			return so.Int("val")
		}
	}
	if l.node != nil {
		if st, err := l.node.Child("start"); err != nil {
			return 0, err
		} else if st != nil {
			return st.Int("val")
		}
	}
	return 1, nil
}

// LevelFor resolves the numbering level for a paragraph's (numId, ilvl)
// reference. Nil when the numbering instance or level is undefined, which
// real documents do produce.
func (p *NumberingPart) LevelFor(numID, ilvl int64) (*Level, error) {
	if err := p.index(); err != nil {
		return nil, err
	}

	abstractID, ok := p.numToAbstract[numID]
	if !ok {
		return nil, nil
	}

	var override *oxml.Node
	if m := p.overrides[numID]; m != nil {
		override = m[ilvl]
	}

	abstract := p.abstracts[abstractID]
	if abstract == nil {
		if override != nil {
			return &Level{override: override}, nil
		}
		return nil, nil
	}

	levels, err := abstract.Children("lvl")
	if err != nil {
		return nil, err
	}
	for i := 0; i < levels.Len(); i++ {
		lvl := levels.At(i)
		v, err := lvl.Int("ilvl")
		if err != nil {
			return nil, err
		}
		if v == ilvl {
			return &Level{node: lvl, override: override}, nil
		}
	}
	if override != nil {
		return &Level{override: override}, nil
	}
	return nil, nil
}

// index builds the num -> abstractNum maps on first use.
func (p *NumberingPart) index() error {
	if p.numToAbstract != nil {
		return nil
	}
	root, err := p.Root()
	if err != nil {
		return err
	}

	p.numToAbstract = make(map[int64]int64)
	p.abstracts = make(map[int64]*oxml.Node)
	p.overrides = make(map[int64]map[int64]*oxml.Node)

	abstracts, err := root.Children("abstractNum")
	if err != nil {
		return err
	}
	for i := 0; i < abstracts.Len(); i++ {
		n := abstracts.At(i)
		id, err := n.Int("abstractNumId")
		if err != nil {
			return err
		}
		p.abstracts[id] = n
	}

	nums, err := root.Children("num")
	if err != nil {
		return err
	}
	for i := 0; i < nums.Len(); i++ {
		n := nums.At(i)
		numID, err := n.Int("numId")
		if err != nil {
			return err
		}
		ref, err := n.Child("abstractNumId")
		if err != nil {
			return err
		}
		if ref == nil {
			continue
		}
		abstractID, err := ref.Int("val")
		if err != nil {
			return err
		}
		p.numToAbstract[numID] = abstractID

		ovr, err := n.Children("lvlOverride")
		if err != nil {
			return err
		}
		for j := 0; j < ovr.Len(); j++ {
			o := ovr.At(j)
			lvl, err := o.Int("ilvl")
			if err != nil {
				return err
			}
			if p.overrides[numID] == nil {
				p.overrides[numID] = make(map[int64]*oxml.Node)
			}
			p.overrides[numID][lvl] = o
		}
	}
	return nil
}
