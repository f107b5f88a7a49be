// Package format provides document kind detection for ECMA-376 packages.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Kind represents a recognized office document kind.
type Kind int

const (
	// Unknown indicates an unrecognized document kind.
	Unknown Kind = iota
	// WordprocessingML indicates a word-processing (.docx family) package.
	WordprocessingML
	// PresentationML indicates a presentation (.pptx family) package.
	PresentationML
	// SpreadsheetML indicates a spreadsheet (.xlsx family) package. This
	// module detects spreadsheets but does not open them.
	SpreadsheetML
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case WordprocessingML:
		return "WordprocessingML"
	case PresentationML:
		return "PresentationML"
	case SpreadsheetML:
		return "SpreadsheetML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the kind.
func (k Kind) Extension() string {
	switch k {
	case WordprocessingML:
		return ".docx"
	case PresentationML:
		return ".pptx"
	case SpreadsheetML:
		return ".xlsx"
	default:
		return ""
	}
}

// Detect determines the document kind from the filename extension.
func Detect(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx", ".docm", ".dotx", ".dotm":
		return WordprocessingML
	case ".pptx", ".pptm", ".ppsx", ".ppsm", ".potx", ".potm":
		return PresentationML
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return SpreadsheetML
	default:
		return Unknown
	}
}

// IsZIP reports whether the data starts with the ZIP local-file-header
// magic. Every ECMA-376 package is a ZIP archive; legacy binary formats
// (.doc, .ppt, .xls) fail this check.
func IsZIP(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04
}

// DetectFromReader inspects the content to determine the document kind.
// This is more reliable than extension-based detection: it checks the ZIP
// magic, then the archive's entry names for the conventional main-part
// directories.
func DetectFromReader(r io.ReaderAt, size int64) (Kind, error) {
	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	if !IsZIP(magic[:n]) {
		return Unknown, nil
	}
	return detectZIPKind(r, size)
}

// detectZIPKind inspects a ZIP archive's entry names. Entry-prefix
// detection is a convention, not a guarantee; packages that relocate their
// main part still open correctly through relationship navigation.
func detectZIPKind(r io.ReaderAt, size int64) (Kind, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "word/"):
			return WordprocessingML, nil
		case strings.HasPrefix(f.Name, "ppt/"):
			return PresentationML, nil
		case strings.HasPrefix(f.Name, "xl/"):
			return SpreadsheetML, nil
		}
	}
	return Unknown, nil
}
