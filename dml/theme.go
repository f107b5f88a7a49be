package dml

import (
	"github.com/tsawler/ooxml/opc"
	"github.com/tsawler/ooxml/oxml"
)

func init() {
	opc.RegisterPartType(opc.CTTheme, newThemePart)
}

// ThemePart is a theme part (a:theme): the shared color and font schemes a
// document or presentation references.
type ThemePart struct {
	*opc.XMLPart
}

func newThemePart(b *opc.BasePart) opc.Part {
	return &ThemePart{XMLPart: opc.NewXMLPart(b)}
}

// colorSlots are the scheme's named color slots in declared order.
var colorSlots = []string{
	"dk1", "lt1", "dk2", "lt2",
	"accent1", "accent2", "accent3", "accent4", "accent5", "accent6",
	"hlink", "folHlink",
}

// ThemeName returns the theme's display name.
func (p *ThemePart) ThemeName() (string, error) {
	root, err := p.Root()
	if err != nil {
		return "", err
	}
	return root.String("name")
}

// ColorScheme returns the theme's colors as a map from slot name (dk1,
// lt1, accent1..accent6, hlink, folHlink) to hex RGB. System colors
// contribute their lastClr capture when present.
func (p *ThemePart) ColorScheme() (map[string]string, error) {
	scheme, err := p.schemeNode("clrScheme")
	if err != nil || scheme == nil {
		return nil, err
	}

	colors := make(map[string]string, len(colorSlots))
	for _, slot := range colorSlots {
		node, err := scheme.Child(slot)
		if err != nil {
			return nil, err
		}
		if node == nil {
			continue
		}
		hex, err := colorValue(node)
		if err != nil {
			return nil, err
		}
		if hex != "" {
			colors[slot] = hex
		}
	}
	return colors, nil
}

// colorValue extracts the hex value from a scheme color slot.
func colorValue(slot *oxml.Node) (string, error) {
	if srgb, err := slot.Child("srgbClr"); err != nil {
		return "", err
	} else if srgb != nil {
		return srgb.String("val")
	}
	if sys, err := slot.Child("sysClr"); err != nil {
		return "", err
	} else if sys != nil {
		if last, err := sys.String("lastClr"); err != nil {
			return "", err
		} else if last != "" {
			return last, nil
		}
		return sys.String("val")
	}
	return "", nil
}

// MajorFont returns the major (heading) latin typeface.
func (p *ThemePart) MajorFont() (string, error) { return p.font("majorFont") }

// MinorFont returns the minor (body) latin typeface.
func (p *ThemePart) MinorFont() (string, error) { return p.font("minorFont") }

func (p *ThemePart) font(slot string) (string, error) {
	scheme, err := p.schemeNode("fontScheme")
	if err != nil || scheme == nil {
		return "", err
	}
	group, err := scheme.Child(slot)
	if err != nil || group == nil {
		return "", err
	}
	latin, err := group.Child("latin")
	if err != nil || latin == nil {
		return "", err
	}
	return latin.String("typeface")
}

func (p *ThemePart) schemeNode(local string) (*oxml.Node, error) {
	root, err := p.Root()
	if err != nil {
		return nil, err
	}
	elements, err := root.Child("themeElements")
	if err != nil || elements == nil {
		return nil, err
	}
	return elements.Child(local)
}

// TextBody wraps an a:txBody element embedded in a shape.
type TextBody struct {
	node *oxml.Node
}

// NewTextBody wraps a bound a:txBody node.
func NewTextBody(node *oxml.Node) *TextBody { return &TextBody{node: node} }

// Node exposes the underlying bound node.
func (tb *TextBody) Node() *oxml.Node { return tb.node }

// Paragraphs returns the text body's paragraph nodes in document order.
func (tb *TextBody) Paragraphs() (*oxml.NodeList, error) {
	return tb.node.Children("p")
}

// Text joins the text body's paragraph text with newlines. Runs and fields
// contribute their character data; breaks contribute newlines.
func (tb *TextBody) Text() (string, error) {
	paras, err := tb.Paragraphs()
	if err != nil {
		return "", err
	}

	out := ""
	for i := 0; i < paras.Len(); i++ {
		if i > 0 {
			out += "\n"
		}
		line, err := paragraphText(paras.At(i))
		if err != nil {
			return "", err
		}
		out += line
	}
	return out, nil
}

// paragraphText extracts one a:p paragraph's text.
func paragraphText(p *oxml.Node) (string, error) {
	content := p.ChoiceChildren("r", "br", "fld")
	out := ""
	for i := 0; i < content.Len(); i++ {
		n := content.At(i)
		switch n.Local() {
		case "br":
			out += "\n"
		case "r", "fld":
			t, err := n.Child("t")
			if err != nil {
				return "", err
			}
			if t != nil {
				out += t.Text()
			}
		}
	}
	return out, nil
}
