package opc

import (
	"io"

	"github.com/tsawler/ooxml/oxml"
)

// Package is an opened OPC container together with its content-type
// manifest. Content-type resolution, relationship parsing and part models
// are memoized per key; entries are written once and never invalidated for
// the lifetime of the package. Concurrent first-access population is not
// supported without external synchronization.
type Package struct {
	container *Container
	types     *ContentTypes
	bindOpts  oxml.Options

	rels  map[string][]Relationship // source part name ("" = root) -> parsed set
	parts map[string]Part           // part name -> model
}

// Option configures an opened package.
type Option func(*Package)

// WithLenientValues makes enumeration and measurement coercion failures
// non-fatal: raw attribute text passes through unmapped instead of raising
// a value error. Structural errors stay fatal in both modes.
func WithLenientValues() Option {
	return func(p *Package) {
		p.bindOpts.Lenient = true
	}
}

// OpenPackage opens a package from a file. The underlying handle is
// released on every failure path and by Close.
func OpenPackage(filename string, opts ...Option) (*Package, error) {
	c, err := OpenContainer(filename)
	if err != nil {
		return nil, err
	}

	p, err := newPackage(c, opts...)
	if err != nil {
		c.Close()
		return nil, err
	}
	return p, nil
}

// NewPackage opens a package from a caller-managed byte source, such as a
// stream already in memory.
func NewPackage(r io.ReaderAt, size int64, opts ...Option) (*Package, error) {
	c, err := NewContainer(r, size)
	if err != nil {
		return nil, err
	}
	return newPackage(c, opts...)
}

func newPackage(c *Container, opts ...Option) (*Package, error) {
	data, err := c.readWellKnown(contentTypesFile)
	if err != nil {
		return nil, err
	}
	types, err := parseContentTypes(data)
	if err != nil {
		return nil, err
	}

	p := &Package{
		container: c,
		types:     types,
		rels:      make(map[string][]Relationship),
		parts:     make(map[string]Part),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Close releases the underlying container.
func (p *Package) Close() error {
	return p.container.Close()
}

// PartNames lists the package's part names.
func (p *Package) PartNames() []string {
	return p.container.Parts()
}

// ContentType resolves the content type of a part through the manifest.
func (p *Package) ContentType(partName string) (string, error) {
	return p.types.ResolveFor(partName)
}

// RelationshipsFor returns the ordered relationship set whose source is the
// given part, or the package root for the empty name. A missing relationship
// file yields an empty set, not an error. Parsed sets are memoized.
func (p *Package) RelationshipsFor(sourcePart string) ([]Relationship, error) {
	if rels, ok := p.rels[sourcePart]; ok {
		return rels, nil
	}

	relsName := relsNameFor(sourcePart)
	var data []byte
	var err error
	if sourcePart == "" {
		data, err = p.container.readWellKnown(relsName)
	} else {
		data, err = p.container.ReadPart(relsName)
	}
	if err != nil {
		// A part may legitimately have no relationships.
		if _, ok := err.(*PartNotFoundError); ok {
			p.rels[sourcePart] = nil
			return nil, nil
		}
		return nil, err
	}

	rels, err := parseRelationships(sourcePart, data)
	if err != nil {
		return nil, err
	}
	p.rels[sourcePart] = rels
	return rels, nil
}

// Relationship finds one relationship of a source by identifier.
func (p *Package) Relationship(sourcePart, id string) (Relationship, bool, error) {
	rels, err := p.RelationshipsFor(sourcePart)
	if err != nil {
		return Relationship{}, false, err
	}
	for _, r := range rels {
		if r.ID == id {
			return r, true, nil
		}
	}
	return Relationship{}, false, nil
}

// RelationshipByType finds the first relationship of a source with the given
// type URI, in file order.
func (p *Package) RelationshipByType(sourcePart, relType string) (Relationship, bool, error) {
	rels, err := p.RelationshipsFor(sourcePart)
	if err != nil {
		return Relationship{}, false, err
	}
	for _, r := range rels {
		if r.Type == relType {
			return r, true, nil
		}
	}
	return Relationship{}, false, nil
}

// PartByName resolves a part's content type, dispatches it to its model
// type, and memoizes the result: navigating to the same part twice yields
// the same Part value.
func (p *Package) PartByName(name string) (Part, error) {
	if part, ok := p.parts[name]; ok {
		return part, nil
	}

	if !p.container.Has(name) {
		return nil, &PartNotFoundError{PartName: name}
	}

	ct, err := p.types.ResolveFor(name)
	if err != nil {
		return nil, err
	}

	part := newPart(&BasePart{pkg: p, name: name, contentType: ct})
	p.parts[name] = part
	return part, nil
}

// PartByRelationship dereferences an internal relationship. A target absent
// from the package is a DanglingRelationshipError, raised here at
// dereference time and never during relationship parsing.
func (p *Package) PartByRelationship(sourcePart string, rel Relationship) (Part, error) {
	if rel.External {
		return nil, &DanglingRelationshipError{Source: sourcePart, ID: rel.ID, Target: rel.Target}
	}
	if !p.container.Has(rel.Target) {
		return nil, &DanglingRelationshipError{Source: sourcePart, ID: rel.ID, Target: rel.Target}
	}
	return p.PartByName(rel.Target)
}

// partByRelID dereferences a relationship of a source by identifier.
func (p *Package) partByRelID(sourcePart, relID string) (Part, error) {
	rel, ok, err := p.Relationship(sourcePart, relID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &DanglingRelationshipError{Source: sourcePart, ID: relID}
	}
	return p.PartByRelationship(sourcePart, rel)
}

// MainPart locates the package's main part through the officeDocument
// relationship type on the package root, never through a hardcoded path.
// A main part resolving to a spreadsheet content type is rejected with
// UnsupportedFormatError before its markup is touched.
func (p *Package) MainPart() (Part, error) {
	rel, ok, err := p.RelationshipByType("", RelTypeOfficeDocument)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &MalformedRelationshipsError{
			Source: relsNameFor(""),
			Reason: "no officeDocument relationship",
		}
	}

	if !p.container.Has(rel.Target) {
		return nil, &DanglingRelationshipError{Source: "", ID: rel.ID, Target: rel.Target}
	}

	ct, err := p.types.ResolveFor(rel.Target)
	if err != nil {
		return nil, err
	}
	if spreadsheetContentTypes[ct] {
		return nil, &UnsupportedFormatError{ContentType: ct}
	}

	return p.PartByName(rel.Target)
}
