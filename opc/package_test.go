package opc

import (
	"bytes"
	"errors"
	"os"
	"testing"
)

func TestOpenPackage(t *testing.T) {
	pkg, err := OpenPackage(minimalPackage(t))
	if err != nil {
		t.Fatalf("OpenPackage failed: %v", err)
	}
	defer pkg.Close()

	ct, err := pkg.ContentType("word/document.xml")
	if err != nil {
		t.Fatalf("ContentType failed: %v", err)
	}
	if ct != CTWordDocumentMain {
		t.Errorf("ContentType = %q, want %q", ct, CTWordDocumentMain)
	}
}

func TestOpenPackageFromReader(t *testing.T) {
	path := minimalPackage(t)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	pkg, err := NewPackage(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewPackage failed: %v", err)
	}
	defer pkg.Close()

	if _, err := pkg.MainPart(); err != nil {
		t.Errorf("MainPart failed: %v", err)
	}
}

func TestMainPart(t *testing.T) {
	pkg, err := OpenPackage(minimalPackage(t))
	if err != nil {
		t.Fatalf("OpenPackage failed: %v", err)
	}
	defer pkg.Close()

	main, err := pkg.MainPart()
	if err != nil {
		t.Fatalf("MainPart failed: %v", err)
	}
	if main.Name() != "word/document.xml" {
		t.Errorf("main part = %q, want word/document.xml", main.Name())
	}
	if main.ContentType() != CTWordDocumentMain {
		t.Errorf("main content type = %q", main.ContentType())
	}
}

func TestPartIdentityStable(t *testing.T) {
	pkg, err := OpenPackage(minimalPackage(t))
	if err != nil {
		t.Fatalf("OpenPackage failed: %v", err)
	}
	defer pkg.Close()

	p1, err := pkg.PartByName("word/document.xml")
	if err != nil {
		t.Fatalf("PartByName failed: %v", err)
	}
	p2, err := pkg.PartByName("word/document.xml")
	if err != nil {
		t.Fatalf("PartByName failed: %v", err)
	}
	if p1 != p2 {
		t.Error("navigating to the same part twice must yield the same model")
	}
}

func TestSpreadsheetRejected(t *testing.T) {
	// A structurally valid package whose main part is a workbook. The
	// deliberately broken workbook markup proves rejection happens before
	// any markup parsing.
	path := writePackage(t, []fixtureFile{
		{"[Content_Types].xml", `<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
</Types>`},
		{"_rels/.rels", `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
</Relationships>`},
		{"xl/workbook.xml", `<<< not even xml >>>`},
	})

	pkg, err := OpenPackage(path)
	if err != nil {
		t.Fatalf("OpenPackage failed: %v", err)
	}
	defer pkg.Close()

	_, err = pkg.MainPart()
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want UnsupportedFormatError", err)
	}
	if unsupported.ContentType != CTWorkbookMain {
		t.Errorf("rejected content type = %q", unsupported.ContentType)
	}
}

func TestDanglingRelationshipLazy(t *testing.T) {
	// The root relationships reference a styles part that is absent. The
	// package must open fine; the error surfaces only on dereference.
	path := writePackage(t, []fixtureFile{
		{"[Content_Types].xml", minimalContentTypes},
		{"_rels/.rels", `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="word/styles.xml"/>
</Relationships>`},
		{"word/document.xml", minimalDocument},
	})

	pkg, err := OpenPackage(path)
	if err != nil {
		t.Fatalf("OpenPackage failed: %v", err)
	}
	defer pkg.Close()

	rels, err := pkg.RelationshipsFor("")
	if err != nil {
		t.Fatalf("RelationshipsFor failed: %v", err)
	}
	if len(rels) != 2 {
		t.Fatalf("got %d relationships, want 2", len(rels))
	}

	// Dereferencing the dangling one fails, with details.
	_, err = pkg.PartByRelationship("", rels[1])
	var dangling *DanglingRelationshipError
	if !errors.As(err, &dangling) {
		t.Fatalf("error = %v, want DanglingRelationshipError", err)
	}
	if dangling.Target != "word/styles.xml" || dangling.ID != "rId2" {
		t.Errorf("error details = %+v", dangling)
	}
}

func TestMissingContentTypesManifest(t *testing.T) {
	path := writePackage(t, []fixtureFile{
		{"word/document.xml", minimalDocument},
	})

	_, err := OpenPackage(path)
	if err == nil {
		t.Fatal("expected error for package without content-type manifest")
	}
}

func TestUnmappedContentTypeFallback(t *testing.T) {
	path := writePackage(t, []fixtureFile{
		{"[Content_Types].xml", `<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Override PartName="/custom/data.xml" ContentType="application/vnd.example.custom+xml"/>
  <Override PartName="/custom/blob.bin" ContentType="application/octet-stream"/>
</Types>`},
		{"custom/data.xml", `<custom><entry/></custom>`},
		{"custom/blob.bin", "\x00\x01\x02"},
	})

	pkg, err := OpenPackage(path)
	if err != nil {
		t.Fatalf("OpenPackage failed: %v", err)
	}
	defer pkg.Close()

	xmlPart, err := pkg.PartByName("custom/data.xml")
	if err != nil {
		t.Fatalf("PartByName failed: %v", err)
	}
	xp, ok := xmlPart.(*XMLPart)
	if !ok {
		t.Fatalf("unmapped XML content type dispatched to %T, want *XMLPart", xmlPart)
	}
	root, err := xp.Root()
	if err != nil {
		t.Fatalf("Root failed: %v", err)
	}
	if root.Local() != "custom" {
		t.Errorf("root = %q, want custom", root.Local())
	}

	binPart, err := pkg.PartByName("custom/blob.bin")
	if err != nil {
		t.Fatalf("PartByName failed: %v", err)
	}
	if _, ok := binPart.(*BinaryPart); !ok {
		t.Fatalf("binary content type dispatched to %T, want *BinaryPart", binPart)
	}
	data, err := binPart.Bytes()
	if err != nil || len(data) != 3 {
		t.Errorf("Bytes = %v, %v", data, err)
	}
}
