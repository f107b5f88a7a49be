package opc

import "fmt"

// ContainerError reports input that could not be opened as a ZIP container:
// bad signature, truncated central directory, unsupported compression.
type ContainerError struct {
	Err error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("opc: not a valid package container: %v", e.Err)
}

func (e *ContainerError) Unwrap() error { return e.Err }

// PartNotFoundError reports a part name absent from the package.
type PartNotFoundError struct {
	PartName string
}

func (e *PartNotFoundError) Error() string {
	return fmt.Sprintf("opc: part not found: %s", e.PartName)
}

// UnresolvedContentTypeError reports a part matched by neither a content-type
// override nor an extension default. Every part must resolve to exactly one
// content type.
type UnresolvedContentTypeError struct {
	PartName string
}

func (e *UnresolvedContentTypeError) Error() string {
	return fmt.Sprintf("opc: no content type declared for part %s", e.PartName)
}

// UnsupportedFormatError reports a structurally valid package whose main
// part identifies an out-of-scope format, such as a spreadsheet workbook.
type UnsupportedFormatError struct {
	ContentType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("opc: unsupported package format: %s", e.ContentType)
}

// MalformedRelationshipsError reports an invalid relationship file, such as
// duplicate relationship identifiers within one source.
type MalformedRelationshipsError struct {
	Source string // the .rels part name
	Reason string
}

func (e *MalformedRelationshipsError) Error() string {
	return fmt.Sprintf("opc: malformed relationships in %s: %s", e.Source, e.Reason)
}

// DanglingRelationshipError reports dereferencing a relationship whose
// internal target is absent from the package. It is raised at dereference
// time, never while parsing the relationship file.
type DanglingRelationshipError struct {
	Source string // source part name, empty for the package root
	ID     string // relationship identifier
	Target string // resolved target part name
}

func (e *DanglingRelationshipError) Error() string {
	src := e.Source
	if src == "" {
		src = "package root"
	}
	return fmt.Sprintf("opc: relationship %s of %s targets missing part %s", e.ID, src, e.Target)
}
