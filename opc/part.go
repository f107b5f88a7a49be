package opc

import (
	"strings"

	"github.com/tsawler/ooxml/oxml"
)

// Part is one named entry of an opened package with its resolved content
// type. Concrete part types (document, slide, styles, image, ...) wrap
// BasePart and add typed accessors over their markup or media.
type Part interface {
	// Name is the part's path-like identifier within the package.
	Name() string

	// ContentType is the resolved content type.
	ContentType() string

	// Package is the owning package, used to follow the part's own
	// relationships.
	Package() *Package

	// Bytes returns the part's raw bytes. Raw access is always available,
	// whatever the part's model surface.
	Bytes() ([]byte, error)
}

// Constructor builds a concrete part from its base. Schema packages
// register one per content type in their init functions.
type Constructor func(base *BasePart) Part

// partTypes maps content types to part constructors. Populated at init time
// only, read-only afterwards.
var partTypes = make(map[string]Constructor)

// RegisterPartType maps a content type to a part constructor. Intended for
// init functions of the schema packages; registering a content type twice
// keeps the later constructor.
func RegisterPartType(contentType string, fn Constructor) {
	partTypes[contentType] = fn
}

// BasePart carries the identity and raw-byte access every part shares.
type BasePart struct {
	pkg         *Package
	name        string
	contentType string
	raw         []byte
}

// Name returns the part's path-like identifier within the package.
func (b *BasePart) Name() string { return b.name }

// ContentType returns the part's resolved content type.
func (b *BasePart) ContentType() string { return b.contentType }

// Package returns the package owning the part.
func (b *BasePart) Package() *Package { return b.pkg }

// Bytes returns the part's raw bytes, read once and cached.
func (b *BasePart) Bytes() ([]byte, error) {
	if b.raw == nil {
		data, err := b.pkg.container.ReadPart(b.name)
		if err != nil {
			return nil, err
		}
		b.raw = data
	}
	return b.raw, nil
}

// Relationships returns the relationships whose source is this part.
func (b *BasePart) Relationships() ([]Relationship, error) {
	return b.pkg.RelationshipsFor(b.name)
}

// RelatedPart dereferences a relationship identifier recorded against this
// part, such as the value of an r:id attribute in its markup.
func (b *BasePart) RelatedPart(relID string) (Part, error) {
	return b.pkg.partByRelID(b.name, relID)
}

// XMLPart is a part whose bytes are markup bound through the schema
// registry. It is also the fallback for XML content types with no
// registered constructor, exposing raw element navigation only.
type XMLPart struct {
	*BasePart
	tree *oxml.Tree
	root *oxml.Node
}

// NewXMLPart wraps a base in an XMLPart. Concrete markup parts embed the
// result.
func NewXMLPart(base *BasePart) *XMLPart {
	return &XMLPart{BasePart: base}
}

// Root parses the markup on first access and returns the bound root node.
// The tree and binding cache are retained, so repeated navigation works on
// stable node identities.
func (p *XMLPart) Root() (*oxml.Node, error) {
	if p.root == nil {
		data, err := p.Bytes()
		if err != nil {
			return nil, err
		}
		tree, err := oxml.Parse(p.name, data)
		if err != nil {
			return nil, err
		}
		p.tree = tree
		p.root = tree.Bind(p.pkg.bindOpts)
	}
	return p.root, nil
}

// BinaryPart is the fallback for non-XML content types with no registered
// constructor: raw bytes only.
type BinaryPart struct {
	*BasePart
}

// newPart dispatches a content type to its registered constructor, falling
// back to XMLPart for XML media and BinaryPart otherwise. Dispatch never
// fails; unanticipated part types remain accessible.
func newPart(base *BasePart) Part {
	if fn, ok := partTypes[base.contentType]; ok {
		return fn(base)
	}
	if isXMLContentType(base.contentType) {
		return NewXMLPart(base)
	}
	return &BinaryPart{BasePart: base}
}

func isXMLContentType(ct string) bool {
	return strings.HasSuffix(ct, "+xml") ||
		ct == "application/xml" ||
		ct == "text/xml"
}
