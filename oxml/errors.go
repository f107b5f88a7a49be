package oxml

import "fmt"

// MissingAttributeError reports a required attribute absent from an element.
type MissingAttributeError struct {
	Part string // owning part name
	Path string // element path within the part
	Attr string // attribute local name
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%s: element %s: missing required attribute %q", e.Part, e.Path, e.Attr)
}

// MissingChildError reports a required child slot with no matching element.
type MissingChildError struct {
	Part  string
	Path  string
	Child string // missing child local name, or choice alternatives joined with "|"
}

func (e *MissingChildError) Error() string {
	return fmt.Sprintf("%s: element %s: missing required child %q", e.Part, e.Path, e.Child)
}

// ConflictingChoiceError reports two alternatives of the same choice group
// both present under one element.
type ConflictingChoiceError struct {
	Part   string
	Path   string
	First  string
	Second string
}

func (e *ConflictingChoiceError) Error() string {
	return fmt.Sprintf("%s: element %s: conflicting choice: both %q and %q present",
		e.Part, e.Path, e.First, e.Second)
}

// ValueError reports attribute text that does not conform to its declared
// value type: an unknown enumeration token or unparseable measurement.
// In lenient mode these are not raised; the raw text is preserved instead.
type ValueError struct {
	Part  string
	Path  string
	Attr  string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: element %s: attribute %q: %v", e.Part, e.Path, e.Attr, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }
