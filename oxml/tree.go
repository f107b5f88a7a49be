package oxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Tree is the parsed markup of one package part. The tree is immutable once
// built; element pointers are stable and serve as identity keys for the
// binding cache.
type Tree struct {
	// PartName is the package part the tree was parsed from. It is carried
	// into binding errors so malformed documents can be diagnosed.
	PartName string

	// Root is the document element.
	Root *Element
}

// Element is one markup element with its namespace resolved. Children are
// kept in document order. Elements hold no parent pointer; an element's
// location is recorded in its Path instead.
type Element struct {
	// Space is the resolved namespace URI, empty for elements in no
	// namespace.
	Space string

	// Local is the local element name without prefix.
	Local string

	// Attrs are the element's attributes with namespace prefixes resolved.
	// Namespace declarations (xmlns) are omitted.
	Attrs []Attr

	// Children are the child elements in document order.
	Children []*Element

	// Text is the concatenated character data directly inside the element,
	// excluding text inside child elements.
	Text string

	// Path is a human-readable location of the element within its part,
	// such as "/document/body/p[2]/r[1]". Used in error messages only.
	Path string
}

// Attr is a single attribute with its namespace resolved. Unprefixed
// attributes have an empty Space.
type Attr struct {
	Space string
	Local string
	Value string
}

// Attr returns the value of the attribute with the given namespace and local
// name. An empty space matches only unprefixed attributes.
func (e *Element) Attr(space, local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Local == local && a.Space == space {
			return a.Value, true
		}
	}
	return "", false
}

// AttrByLocal returns the value of the first attribute with the given local
// name regardless of namespace. Most OOXML attributes are unambiguous by
// local name within their element.
func (e *Element) AttrByLocal(local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Parse builds an element tree from the raw bytes of a part. The part name
// is retained for error reporting. Input in legacy encodings is decoded via
// the document's declared charset; a leading byte-order mark is honoured and
// stripped.
func Parse(partName string, data []byte) (*Tree, error) {
	// BOMOverride lets a UTF-8/UTF-16 BOM take precedence over whatever the
	// XML declaration claims.
	src := transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(transform.Nop))

	dec := xml.NewDecoder(src)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parsing %s: %w", partName, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Space: t.Name.Space,
				Local: t.Name.Local,
			}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{
					Space: a.Name.Space,
					Local: a.Name.Local,
					Value: a.Value,
				})
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parsing %s: multiple root elements", partName)
				}
				el.Path = "/" + el.Local
				root = el
			} else {
				parent := stack[len(stack)-1]
				el.Path = childPath(parent, el.Local)
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("parsing %s: unbalanced end element", partName)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parsing %s: no root element", partName)
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("parsing %s: unterminated element %s", partName, stack[len(stack)-1].Path)
	}

	return &Tree{PartName: partName, Root: root}, nil
}

// childPath builds the path for a new child, numbering repeated siblings
// with the same local name.
func childPath(parent *Element, local string) string {
	n := 1
	for _, c := range parent.Children {
		if c.Local == local {
			n++
		}
	}
	if n == 1 {
		// Most elements occur once; keep their paths short.
		return parent.Path + "/" + local
	}
	return fmt.Sprintf("%s/%s[%d]", parent.Path, local, n)
}
