package dml

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/ooxml/opc"
)

const themeContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Override PartName="/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>
</Types>`

const themeXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme">
  <a:themeElements>
    <a:clrScheme name="Office">
      <a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>
      <a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>
      <a:dk2><a:srgbClr val="44546A"/></a:dk2>
      <a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>
      <a:accent1><a:srgbClr val="4472C4"/></a:accent1>
      <a:accent2><a:srgbClr val="ED7D31"/></a:accent2>
      <a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>
      <a:accent4><a:srgbClr val="FFC000"/></a:accent4>
      <a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>
      <a:accent6><a:srgbClr val="70AD47"/></a:accent6>
      <a:hlink><a:srgbClr val="0563C1"/></a:hlink>
      <a:folHlink><a:srgbClr val="954F72"/></a:folHlink>
    </a:clrScheme>
    <a:fontScheme name="Office">
      <a:majorFont><a:latin typeface="Calibri Light"/></a:majorFont>
      <a:minorFont><a:latin typeface="Calibri"/></a:minorFont>
    </a:fontScheme>
  </a:themeElements>
</a:theme>`

// openThemePackage writes a single-part theme fixture and returns the
// typed theme part.
func openThemePackage(t *testing.T) *ThemePart {
	t.Helper()

	pkgPath := filepath.Join(t.TempDir(), "theme.zip")
	f, err := os.Create(pkgPath)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	zw := zip.NewWriter(f)
	for _, entry := range []struct{ name, data string }{
		{"[Content_Types].xml", themeContentTypes},
		{"theme/theme1.xml", themeXML},
	} {
		w, err := zw.Create(entry.name)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", entry.name, err)
		}
		if _, err := w.Write([]byte(entry.data)); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", entry.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close temp file: %v", err)
	}

	pkg, err := opc.OpenPackage(pkgPath)
	if err != nil {
		t.Fatalf("OpenPackage: %v", err)
	}
	t.Cleanup(func() { pkg.Close() })

	part, err := pkg.PartByName("theme/theme1.xml")
	if err != nil {
		t.Fatalf("PartByName: %v", err)
	}
	theme, ok := part.(*ThemePart)
	if !ok {
		t.Fatalf("part is %T, want *ThemePart", part)
	}
	return theme
}

func TestThemePart_ThemeName(t *testing.T) {
	theme := openThemePackage(t)
	name, err := theme.ThemeName()
	if err != nil {
		t.Fatalf("ThemeName: %v", err)
	}
	if name != "Office Theme" {
		t.Errorf("name = %q", name)
	}
}

func TestThemePart_ColorScheme(t *testing.T) {
	theme := openThemePackage(t)
	colors, err := theme.ColorScheme()
	if err != nil {
		t.Fatalf("ColorScheme: %v", err)
	}
	if len(colors) != 12 {
		t.Fatalf("got %d colors, want 12", len(colors))
	}
	if colors["accent1"] != "4472C4" {
		t.Errorf("accent1 = %q", colors["accent1"])
	}
	// System colors contribute their lastClr capture.
	if colors["dk1"] != "000000" {
		t.Errorf("dk1 = %q, want the lastClr value", colors["dk1"])
	}
}

func TestThemePart_Fonts(t *testing.T) {
	theme := openThemePackage(t)

	major, err := theme.MajorFont()
	if err != nil {
		t.Fatalf("MajorFont: %v", err)
	}
	if major != "Calibri Light" {
		t.Errorf("major font = %q", major)
	}

	minor, err := theme.MinorFont()
	if err != nil {
		t.Fatalf("MinorFont: %v", err)
	}
	if minor != "Calibri" {
		t.Errorf("minor font = %q", minor)
	}
}
