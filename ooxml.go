// Package ooxml reads ECMA-376 office documents: Word documents and
// PowerPoint presentations packaged in the Open Packaging Conventions (OPC)
// ZIP container.
//
// Basic usage:
//
//	doc, err := ooxml.OpenDocument("report.docx")
//	if err != nil {
//	    // handle error
//	}
//	defer doc.Close()
//	text, err := doc.Text()
//
// Presentations work the same way:
//
//	pres, err := ooxml.OpenPresentation("deck.pptx")
//	if err != nil {
//	    // handle error
//	}
//	defer pres.Close()
//	slides, err := pres.Slides()
//
// Open inspects the package and reports its kind when the caller does not
// know it in advance. Spreadsheet packages are recognized and rejected.
//
// For advanced use cases, the lower-level opc and oxml packages are also
// available.
package ooxml

import (
	"fmt"
	"io"

	"github.com/tsawler/ooxml/format"
	"github.com/tsawler/ooxml/opc"
	"github.com/tsawler/ooxml/pml"
	"github.com/tsawler/ooxml/shared"
	"github.com/tsawler/ooxml/wml"
)

// File is an opened office package of any supported kind. It owns the
// underlying package; Close releases it.
type File struct {
	pkg  *opc.Package
	kind format.Kind
	main opc.Part
}

// Open opens an office package and determines its kind from the main part's
// content type, never from file naming. Spreadsheet packages are rejected
// with opc.UnsupportedFormatError.
func Open(filename string, opts ...Option) (*File, error) {
	pkg, err := opc.OpenPackage(filename, opcOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return newFile(pkg)
}

// New opens an office package from an in-memory or otherwise seekable
// source.
func New(r io.ReaderAt, size int64, opts ...Option) (*File, error) {
	pkg, err := opc.NewPackage(r, size, opcOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return newFile(pkg)
}

func newFile(pkg *opc.Package) (*File, error) {
	main, err := pkg.MainPart()
	if err != nil {
		pkg.Close()
		return nil, err
	}

	kind := format.Unknown
	switch main.(type) {
	case *wml.DocumentPart:
		kind = format.WordprocessingML
	case *pml.PresentationPart:
		kind = format.PresentationML
	}
	return &File{pkg: pkg, kind: kind, main: main}, nil
}

// Close releases the underlying package.
func (f *File) Close() error { return f.pkg.Close() }

// Package exposes the underlying package for low-level part access.
func (f *File) Package() *opc.Package { return f.pkg }

// Kind returns the detected document kind.
func (f *File) Kind() format.Kind { return f.kind }

// MainPart returns the package's main part, whatever its kind.
func (f *File) MainPart() opc.Part { return f.main }

// Document views the file as a word-processing document. It fails when the
// main part is not one.
func (f *File) Document() (*Document, error) {
	main, ok := f.main.(*wml.DocumentPart)
	if !ok {
		return nil, fmt.Errorf("not a word-processing document: main part is %s", f.main.ContentType())
	}
	return &Document{file: f, main: main}, nil
}

// Presentation views the file as a presentation. It fails when the main
// part is not one.
func (f *File) Presentation() (*Presentation, error) {
	main, ok := f.main.(*pml.PresentationPart)
	if !ok {
		return nil, fmt.Errorf("not a presentation: main part is %s", f.main.ContentType())
	}
	return &Presentation{file: f, main: main}, nil
}

// CoreProperties returns the package metadata part, nil when the package
// carries none.
func (f *File) CoreProperties() (*shared.CorePropertiesPart, error) {
	part, err := f.rootRelated(opc.RelTypeCoreProperties)
	if err != nil || part == nil {
		return nil, err
	}
	cp, _ := part.(*shared.CorePropertiesPart)
	return cp, nil
}

// AppProperties returns the application metadata part, nil when absent.
func (f *File) AppProperties() (*shared.AppPropertiesPart, error) {
	part, err := f.rootRelated(opc.RelTypeExtendedProperties)
	if err != nil || part == nil {
		return nil, err
	}
	ap, _ := part.(*shared.AppPropertiesPart)
	return ap, nil
}

// Thumbnail returns the package thumbnail part, nil when absent. The part
// is a shared.ImagePart for raster thumbnails.
func (f *File) Thumbnail() (opc.Part, error) {
	return f.rootRelated(opc.RelTypeThumbnail)
}

// rootRelated dereferences the first package-level relationship of the
// given type, nil when there is none.
func (f *File) rootRelated(relType string) (opc.Part, error) {
	rel, ok, err := f.pkg.RelationshipByType("", relType)
	if err != nil || !ok {
		return nil, err
	}
	return f.pkg.PartByRelationship("", rel)
}
