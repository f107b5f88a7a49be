package opc

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// fixtureFile is one entry of a test package.
type fixtureFile struct {
	name string
	data string
}

// writePackage writes a ZIP package with the given entries to a temp file
// and returns its path.
func writePackage(t *testing.T, files []fixtureFile) string {
	t.Helper()

	pkgPath := filepath.Join(t.TempDir(), "test.docx")
	f, err := os.Create(pkgPath)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	zw := zip.NewWriter(f)
	for _, ff := range files {
		w, err := zw.Create(ff.name)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", ff.name, err)
		}
		if _, err := w.Write([]byte(ff.data)); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", ff.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close temp file: %v", err)
	}

	return pkgPath
}

const minimalContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const minimalRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const minimalDocument = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>Hello</w:t></w:r></w:p></w:body>
</w:document>`

// minimalPackage is a valid wordprocessing package fixture.
func minimalPackage(t *testing.T) string {
	t.Helper()
	return writePackage(t, []fixtureFile{
		{"[Content_Types].xml", minimalContentTypes},
		{"_rels/.rels", minimalRootRels},
		{"word/document.xml", minimalDocument},
	})
}
