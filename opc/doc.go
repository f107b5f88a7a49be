// Package opc implements the Open Packaging Conventions container layer:
// the ZIP-backed package, the content-type manifest, the per-part
// relationship graph, and the dispatch from content types to typed parts.
//
// # Packages and Parts
//
// A Package is an opened OPC container. Every file inside it is a part,
// identified by a path-like name and carrying exactly one content type
// resolved through the [Content_Types].xml manifest (a per-part override
// wins over the extension default):
//
//	pkg, err := opc.OpenPackage("report.docx")
//	if err != nil {
//	    // handle error
//	}
//	defer pkg.Close()
//	main, err := pkg.MainPart()
//
// # Relationships
//
// Parts reference each other through relationship files, not raw paths.
// Each part's relationships live in a _rels sibling folder; the package
// root's live in _rels/.rels. Relationship targets resolve against the
// source part's directory, and a relationship marked external carries its
// URI through unresolved. A part with no relationship file simply has no
// relationships. Targets pointing at missing parts are only reported when
// dereferenced, so packages referencing parts a caller never visits still
// open cleanly.
//
// # Part Dispatch
//
// Schema packages (wml, pml, dml, shared) register part constructors per
// content type in their init functions. Content types with no registered
// constructor fall back to XMLPart for XML media and BinaryPart otherwise,
// so unanticipated part types stay accessible.
//
// Spreadsheet packages are recognized and rejected before any markup is
// parsed; SpreadsheetML is out of scope by design.
package opc
