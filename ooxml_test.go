package ooxml

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/ooxml/format"
	"github.com/tsawler/ooxml/opc"
	"github.com/tsawler/ooxml/shared"
)

// fixtureFile is one entry of a test package.
type fixtureFile struct {
	name string
	data []byte
}

func buildPackage(t *testing.T, files []fixtureFile) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, ff := range files {
		w, err := zw.Create(ff.name)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", ff.name, err)
		}
		if _, err := w.Write(ff.data); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", ff.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip writer: %v", err)
	}
	return buf.Bytes()
}

func writePackage(t *testing.T, name string, files []fixtureFile) string {
	t.Helper()

	pkgPath := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(pkgPath, buildPackage(t, files), 0o644); err != nil {
		t.Fatalf("failed to write package: %v", err)
	}
	return pkgPath
}

const docContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Default Extension="png" ContentType="image/png"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
  <Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>
</Types>`

const docRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
  <Relationship Id="rId4" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/thumbnail" Target="docProps/thumbnail.png"/>
</Relationships>`

const docXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>a</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>b</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
    <w:p><w:r><w:t>Last paragraph</w:t></w:r></w:p>
  </w:body>
</w:document>`

const docCoreXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:title>Fixture Document</dc:title>
</cp:coreProperties>`

const docAppXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">
  <Application>FixtureWriter</Application>
</Properties>`

// pngPixel is a valid 1x1 PNG.
var pngPixel = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89, 0x00, 0x00, 0x00,
	0x0D, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9C, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82,
}

func wordFixture(t *testing.T) string {
	t.Helper()
	return writePackage(t, "fixture.docx", []fixtureFile{
		{"[Content_Types].xml", []byte(docContentTypes)},
		{"_rels/.rels", []byte(docRootRels)},
		{"word/document.xml", []byte(docXML)},
		{"docProps/core.xml", []byte(docCoreXML)},
		{"docProps/app.xml", []byte(docAppXML)},
		{"docProps/thumbnail.png", pngPixel},
	})
}

func TestOpenDocument(t *testing.T) {
	doc, err := OpenDocument(wordFixture(t))
	if err != nil {
		t.Fatalf("OpenDocument: %v", err)
	}
	defer doc.Close()

	text, err := doc.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := "First paragraph\na\tb\nLast paragraph"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestOpen_Kind(t *testing.T) {
	f, err := Open(wordFixture(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	if f.Kind() != format.WordprocessingML {
		t.Errorf("kind = %v", f.Kind())
	}
	if _, err := f.Document(); err != nil {
		t.Errorf("Document: %v", err)
	}
	if _, err := f.Presentation(); err == nil {
		t.Error("Presentation view of a word document should fail")
	}
}

func TestFile_Metadata(t *testing.T) {
	f, err := Open(wordFixture(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	core, err := f.CoreProperties()
	if err != nil {
		t.Fatalf("CoreProperties: %v", err)
	}
	if core == nil {
		t.Fatal("package should have core properties")
	}
	title, err := core.Title()
	if err != nil {
		t.Fatalf("Title: %v", err)
	}
	if title != "Fixture Document" {
		t.Errorf("title = %q", title)
	}

	app, err := f.AppProperties()
	if err != nil {
		t.Fatalf("AppProperties: %v", err)
	}
	if app == nil {
		t.Fatal("package should have app properties")
	}
	application, err := app.Application()
	if err != nil {
		t.Fatalf("Application: %v", err)
	}
	if application != "FixtureWriter" {
		t.Errorf("application = %q", application)
	}

	thumb, err := f.Thumbnail()
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	img, ok := thumb.(*shared.ImagePart)
	if !ok {
		t.Fatalf("thumbnail is %T, want *shared.ImagePart", thumb)
	}
	w, h, err := img.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if w != 1 || h != 1 {
		t.Errorf("thumbnail size = %dx%d", w, h)
	}
}

func TestOpen_MainPartAtNonConventionalPath(t *testing.T) {
	// The main part is found through the officeDocument relationship, so
	// placing it outside word/ must still work.
	path := writePackage(t, "odd.docx", []fixtureFile{
		{"[Content_Types].xml", []byte(`<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Override PartName="/main.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`)},
		{"_rels/.rels", []byte(`<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="main.xml"/>
</Relationships>`)},
		{"main.xml", []byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>relocated</w:t></w:r></w:p></w:body></w:document>`)},
	})

	doc, err := OpenDocument(path)
	if err != nil {
		t.Fatalf("OpenDocument: %v", err)
	}
	defer doc.Close()

	text, err := doc.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if text != "relocated" {
		t.Errorf("text = %q", text)
	}
}

func TestOpen_RejectsSpreadsheet(t *testing.T) {
	// The workbook markup is deliberately broken: rejection must happen on
	// the content type, before any markup parsing.
	path := writePackage(t, "book.xlsx", []fixtureFile{
		{"[Content_Types].xml", []byte(`<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
</Types>`)},
		{"_rels/.rels", []byte(`<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
</Relationships>`)},
		{"xl/workbook.xml", []byte(`<workbook><unclosed`)},
	})

	_, err := Open(path)
	if err == nil {
		t.Fatal("spreadsheet package should be rejected")
	}
	var unsupported *opc.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Errorf("error = %v, want UnsupportedFormatError", err)
	}

	if _, err := OpenDocument(path); err == nil {
		t.Error("OpenDocument should reject a spreadsheet")
	}
}

func TestNew_FromMemory(t *testing.T) {
	data := buildPackage(t, []fixtureFile{
		{"[Content_Types].xml", []byte(docContentTypes)},
		{"_rels/.rels", []byte(docRootRels)},
		{"word/document.xml", []byte(docXML)},
		{"docProps/core.xml", []byte(docCoreXML)},
		{"docProps/app.xml", []byte(docAppXML)},
		{"docProps/thumbnail.png", pngPixel},
	})

	f, err := New(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer f.Close()

	if f.Kind() != format.WordprocessingML {
		t.Errorf("kind = %v", f.Kind())
	}
}

func TestLenientValues(t *testing.T) {
	// A bogus page orientation fails strict opening but passes through in
	// lenient mode.
	files := []fixtureFile{
		{"[Content_Types].xml", []byte(`<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`)},
		{"_rels/.rels", []byte(docRootRels)},
		{"word/document.xml", []byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:sectPr><w:pgSz w:w="100" w:h="200" w:orient="sideways"/></w:sectPr></w:body></w:document>`)},
	}

	strict, err := OpenDocument(writePackage(t, "strict.docx", files))
	if err != nil {
		t.Fatalf("OpenDocument: %v", err)
	}
	defer strict.Close()
	body, err := strict.Body()
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	sec, err := body.Section()
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	if _, err := sec.Landscape(); err == nil {
		t.Error("unknown orientation should fail in strict mode")
	}

	lenient, err := OpenDocument(writePackage(t, "lenient.docx", files), LenientValues())
	if err != nil {
		t.Fatalf("OpenDocument: %v", err)
	}
	defer lenient.Close()
	body, err = lenient.Body()
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	sec, err = body.Section()
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	landscape, err := sec.Landscape()
	if err != nil {
		t.Fatalf("Landscape in lenient mode: %v", err)
	}
	if landscape {
		t.Error("unknown orientation should not read as landscape")
	}
}
