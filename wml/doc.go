// Package wml models WordprocessingML: the markup of the main document part
// of a word-processing package, plus its styles, numbering and settings
// parts.
//
// The package registers its node definitions and part constructors with the
// oxml and opc registries at init time. Importing it (directly or through
// the root ooxml package) is what teaches the binding engine the
// wordprocessing vocabulary.
//
// Typed wrappers (Document, Body, Paragraph, Run, Table) are thin views
// over bound oxml nodes: they add domain accessors but never copy or
// re-parse markup, so node identity and laziness carry through.
package wml
