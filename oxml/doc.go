// Package oxml provides the schema-driven XML binding layer shared by all
// document formats in this module.
//
// Office Open XML markup is namespaced XML whose vocabulary is defined by a
// large, static schema. Rather than hand-writing struct mappings for every
// element, this package keeps a process-wide registry of node definitions
// keyed by (namespace, local name) and binds raw elements to typed nodes on
// demand.
//
// # Parsing
//
// Parse builds an immutable element tree from a part's bytes. Namespace
// prefixes are resolved during parsing, so two documents that spell the same
// namespace with different prefixes produce identical trees:
//
//	tree, err := oxml.Parse("word/document.xml", data)
//
// # Node Definitions
//
// A Definition describes one element type: its qualified name, attribute
// specs (value type, required flag, default), and a child-content grammar
// built from Sequence, Choice, and element particles with occurrence bounds.
// Definitions are registered once at init time by the schema packages (wml,
// pml, dml, shared):
//
//	oxml.Register(
//	    oxml.NewDefinition(ns, "document", nil, oxml.Seq(oxml.Opt(oxml.El(ns, "body")))),
//	)
//
// # Binding
//
// Bind wraps the tree's root in a Node. Nodes are created lazily and
// memoized per underlying element, so re-accessing the same child returns
// the same *Node. Attribute accessors coerce text to the declared value
// type; child accessors interpret the definition's grammar against the
// element's actual children in document order. Elements with no registered
// definition are still exposed as untyped generic nodes, so documents
// containing vendor extensions or future schema versions remain navigable.
package oxml
