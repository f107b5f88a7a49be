package oxml

type qname struct {
	space string
	local string
}

// registry is the process-wide schema catalog. It is populated from static
// tables in the schema packages' init functions and never mutated afterwards,
// so lookups need no locking.
var registry = make(map[qname]*Definition)

// Register adds definitions to the catalog. Intended to be called from init
// functions only; registering the same qualified name twice keeps the later
// definition.
func Register(defs ...*Definition) {
	for _, d := range defs {
		registry[qname{d.Space, d.Local}] = d
	}
}

// Lookup returns the definition for (namespace, local name), or nil when the
// element is not part of the catalog. Callers must treat a nil result as "an
// unrecognized but tolerated element", not as an error: real-world documents
// carry vendor extensions and future-version markup.
func Lookup(space, local string) *Definition {
	return registry[qname{space, local}]
}
