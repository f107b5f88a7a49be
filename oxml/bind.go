package oxml

import "fmt"

// Options configures binding behavior.
type Options struct {
	// Lenient suppresses ValueError for unrecognized enumeration tokens and
	// unparseable measurements: enum accessors return the raw text unmapped
	// and measurement accessors return zero. Structural errors (missing
	// required attributes or children) are raised in both modes.
	Lenient bool
}

// binder owns the node cache for one tree. Nodes are memoized per element,
// so the same underlying element always yields the same *Node. The cache is
// populated lazily and entries are never replaced; concurrent first-access
// population requires external synchronization.
type binder struct {
	tree  *Tree
	opts  Options
	nodes map[*Element]*Node
}

// Bind wraps the tree's root element in a typed node. Elements without a
// registered definition are still bound, as untyped generic nodes.
func (t *Tree) Bind(opts Options) *Node {
	b := &binder{tree: t, opts: opts, nodes: make(map[*Element]*Node)}
	return b.node(t.Root)
}

func (b *binder) node(el *Element) *Node {
	if n, ok := b.nodes[el]; ok {
		return n
	}
	n := &Node{b: b, el: el, def: Lookup(el.Space, el.Local)}
	b.nodes[el] = n
	return n
}

// Node is a typed proxy over one markup element. Attribute accessors coerce
// text per the definition's attribute specs; child accessors interpret the
// definition's grammar against the element's actual children in document
// order. A Node holds no reference to its parent.
type Node struct {
	b   *binder
	el  *Element
	def *Definition

	slots *slotTable // grammar classification, built on first child access
}

// slotTable is the result of classifying an element's children against its
// definition's grammar: each element particle maps to its matching children
// in document order.
type slotTable struct {
	byParticle map[*Particle][]*Element
	particles  []*Particle             // element particles in declared order
	byName     map[qname]*Particle     // first particle per qualified name
	choiceOf   map[*Particle]*Particle // element particle -> innermost enclosing choice
}

// Space returns the element's namespace URI.
func (n *Node) Space() string { return n.el.Space }

// Local returns the element's local name.
func (n *Node) Local() string { return n.el.Local }

// Path returns the element's location within its part, for diagnostics.
func (n *Node) Path() string { return n.el.Path }

// Part returns the name of the part the node was parsed from.
func (n *Node) Part() string { return n.b.tree.PartName }

// Text returns the character data directly inside the element.
func (n *Node) Text() string { return n.el.Text }

// IsKnown reports whether the element has a registered definition. Unknown
// elements expose raw attribute and child access only.
func (n *Node) IsKnown() bool { return n.def != nil }

// Attr returns the raw attribute text by local name, without coercion or
// defaults. It works on known and unknown elements alike.
func (n *Node) Attr(local string) (string, bool) {
	return n.el.AttrByLocal(local)
}

// attrText resolves the attribute text for a typed accessor: spec lookup,
// required check, declared default. ok is false when the attribute is absent
// and has no default.
func (n *Node) attrText(local string, want ValueType) (text string, spec *AttrSpec, ok bool, err error) {
	if n.def != nil {
		if s, found := n.def.attr(local, want); found {
			spec = s
		}
	}

	var present bool
	if spec != nil {
		text, present = n.el.Attr(spec.Space, spec.Local)
		if !present && spec.Space == "" {
			// An unqualified spec also matches the element's own namespace:
			// WordprocessingML prefixes its attributes (w:val), DrawingML
			// leaves them bare.
			text, present = n.el.Attr(n.el.Space, spec.Local)
		}
	} else {
		text, present = n.el.AttrByLocal(local)
	}
	if present {
		return text, spec, true, nil
	}

	if spec != nil {
		if spec.Required {
			return "", spec, false, &MissingAttributeError{Part: n.Part(), Path: n.Path(), Attr: local}
		}
		if spec.Default != "" {
			return spec.Default, spec, true, nil
		}
	}
	return "", spec, false, nil
}

// String returns the attribute coerced as a string. Required-attribute and
// default handling follow the definition; absent optional attributes yield
// the empty string.
func (n *Node) String(local string) (string, error) {
	text, _, _, err := n.attrText(local, TypeString)
	return text, err
}

// Bool returns a tri-state boolean attribute. A bare attribute (present with
// an empty value) is true; an absent optional attribute is false unless the
// spec declares a default.
func (n *Node) Bool(local string) (bool, error) {
	text, _, ok, err := n.attrText(local, TypeBool)
	if err != nil || !ok {
		return false, err
	}
	v, perr := parseBool(text)
	if perr != nil {
		return false, n.valueError(local, text, perr)
	}
	return v, nil
}

// Int returns a signed integer attribute.
func (n *Node) Int(local string) (int64, error) {
	text, _, ok, err := n.attrText(local, TypeInt)
	if err != nil || !ok {
		return 0, err
	}
	v, perr := parseInt(text)
	if perr != nil {
		return 0, n.valueError(local, text, perr)
	}
	return v, nil
}

// Uint returns an unsigned integer attribute.
func (n *Node) Uint(local string) (uint64, error) {
	text, _, ok, err := n.attrText(local, TypeUnsigned)
	if err != nil || !ok {
		return 0, err
	}
	v, perr := parseUnsigned(text)
	if perr != nil {
		return 0, n.valueError(local, text, perr)
	}
	return v, nil
}

// Twips returns a twentieths-of-a-point measurement attribute. In lenient
// mode unparseable text yields zero without error; the raw text remains
// available through Attr.
func (n *Node) Twips(local string) (Twips, error) {
	v, err := n.measure(local, TypeTwips)
	return Twips(v), err
}

// HalfPoints returns a half-point measurement attribute.
func (n *Node) HalfPoints(local string) (HalfPoints, error) {
	v, err := n.measure(local, TypeHalfPoints)
	return HalfPoints(v), err
}

// EMU returns an EMU measurement attribute.
func (n *Node) EMU(local string) (EMU, error) {
	v, err := n.measure(local, TypeEMU)
	return EMU(v), err
}

func (n *Node) measure(local string, unit ValueType) (int64, error) {
	text, _, ok, err := n.attrText(local, unit)
	if err != nil || !ok {
		return 0, err
	}
	v, perr := parseMeasure(text, unit)
	if perr != nil {
		if n.b.opts.Lenient {
			return 0, nil
		}
		return 0, n.valueError(local, text, perr)
	}
	return v, nil
}

// EnumVal returns a closed-enumeration attribute. Unrecognized tokens are a
// ValueError in strict mode; in lenient mode the raw token is returned
// unmapped.
func (n *Node) EnumVal(local string) (string, error) {
	text, spec, ok, err := n.attrText(local, TypeEnum)
	if err != nil || !ok {
		return "", err
	}
	if spec != nil && spec.Type == TypeEnum && !validEnum(text, spec.Enum) {
		if !n.b.opts.Lenient {
			return "", n.valueError(local, text, fmt.Errorf("unknown enumeration value %q", text))
		}
	}
	return text, nil
}

// RelIDVal returns a relationship-identifier attribute, such as r:id or
// r:embed. The identifier resolves against the relationship set of the part
// that owns this markup.
func (n *Node) RelIDVal(local string) (string, error) {
	text, _, _, err := n.attrText(local, TypeRelID)
	return text, err
}

func (n *Node) valueError(attr, value string, err error) error {
	return &ValueError{Part: n.Part(), Path: n.Path(), Attr: attr, Value: value, Err: err}
}

// Child resolves a single child slot through the definition's grammar.
// It returns nil with no error when an optional slot is empty. A required
// slot with no matching child is a MissingChildError; a slot inside a choice
// group whose sibling alternative is also present is a
// ConflictingChoiceError. For elements without a registered definition, or
// slots outside the grammar, the first child with the given local name is
// returned untyped.
func (n *Node) Child(local string) (*Node, error) {
	st := n.slotTable()
	p := st.lookup(n.el.Space, local)
	if p == nil {
		// Untyped fallback: document-order lookup by local name.
		for _, c := range n.el.Children {
			if c.Local == local {
				return n.b.node(c), nil
			}
		}
		return nil, nil
	}

	if err := n.checkChoice(st, p); err != nil {
		return nil, err
	}

	matches := st.byParticle[p]
	if len(matches) == 0 {
		if n.slotRequired(st, p) {
			return nil, &MissingChildError{Part: n.Part(), Path: n.Path(), Child: local}
		}
		return nil, nil
	}
	return n.b.node(matches[0]), nil
}

// Children resolves a repeated child slot into an ordered, lazily-bound
// list. All matching children are listed in document order; each element is
// bound on first index access.
func (n *Node) Children(local string) (*NodeList, error) {
	st := n.slotTable()
	p := st.lookup(n.el.Space, local)
	if p == nil {
		var elems []*Element
		for _, c := range n.el.Children {
			if c.Local == local {
				elems = append(elems, c)
			}
		}
		return &NodeList{b: n.b, elems: elems}, nil
	}

	if err := n.checkChoice(st, p); err != nil {
		return nil, err
	}

	matches := st.byParticle[p]
	if len(matches) == 0 && n.slotRequired(st, p) {
		return nil, &MissingChildError{Part: n.Part(), Path: n.Path(), Child: local}
	}
	return &NodeList{b: n.b, elems: matches}, nil
}

// ChoiceChildren resolves a choice group of repeatable alternatives into one
// ordered list, preserving document order across the alternatives. This is
// the access path for mixed-content grammars such as a body that interleaves
// paragraphs and tables.
func (n *Node) ChoiceChildren(locals ...string) *NodeList {
	want := make(map[string]bool, len(locals))
	for _, l := range locals {
		want[l] = true
	}
	var elems []*Element
	for _, c := range n.el.Children {
		if want[c.Local] {
			elems = append(elems, c)
		}
	}
	return &NodeList{b: n.b, elems: elems}
}

// AllChildren returns every child element in document order, including
// unrecognized ones. This is the raw access surface generic XML parts
// expose.
func (n *Node) AllChildren() *NodeList {
	return &NodeList{b: n.b, elems: n.el.Children}
}

// slotRequired reports whether the particle's absence is an error: the slot
// itself must be required and every enclosing group on its path must be
// required too. Particles inside choices are handled by checkChoice.
func (n *Node) slotRequired(st *slotTable, p *Particle) bool {
	if p.Min == 0 {
		return false
	}
	if ch := st.choiceOf[p]; ch != nil {
		// A required choice raises MissingChildError only when no
		// alternative at all is present.
		if ch.Min == 0 {
			return false
		}
		for _, alt := range ch.Items {
			if len(st.byParticle[alt]) > 0 {
				return false
			}
		}
		return true
	}
	return true
}

// checkChoice raises ConflictingChoiceError when the particle belongs to a
// choice group and more than one distinct alternative is present. Repetition
// of a single chosen alternative is not a conflict.
func (n *Node) checkChoice(st *slotTable, p *Particle) error {
	ch := st.choiceOf[p]
	if ch == nil {
		return nil
	}
	if ch.Max != 1 {
		// A repeatable choice group admits any mix of alternatives.
		return nil
	}
	var first *Particle
	for _, alt := range ch.Items {
		if len(st.byParticle[alt]) == 0 {
			continue
		}
		if first == nil {
			first = alt
			continue
		}
		return &ConflictingChoiceError{
			Part:   n.Part(),
			Path:   n.Path(),
			First:  first.Local,
			Second: alt.Local,
		}
	}
	return nil
}

// slotTable classifies the element's children against the grammar once and
// memoizes the result. Children matching no particle are skipped: unknown
// elements must not fail the document.
func (n *Node) slotTable() *slotTable {
	if n.slots != nil {
		return n.slots
	}

	st := &slotTable{
		byParticle: make(map[*Particle][]*Element),
		byName:     make(map[qname]*Particle),
		choiceOf:   make(map[*Particle]*Particle),
	}
	if n.def != nil && n.def.Content != nil {
		collectParticles(n.def.Content, nil, st)
		for _, c := range n.el.Children {
			if p, ok := st.byName[qname{c.Space, c.Local}]; ok {
				st.byParticle[p] = append(st.byParticle[p], c)
			}
		}
	}
	n.slots = st
	return st
}

// lookup finds the element particle for a child local name, preferring a
// particle in the parent's own namespace when two namespaces declare the
// same local name.
func (st *slotTable) lookup(parentSpace, local string) *Particle {
	if p, ok := st.byName[qname{parentSpace, local}]; ok {
		return p
	}
	for _, p := range st.particles {
		if p.Local == local {
			return p
		}
	}
	return nil
}

// collectParticles flattens a grammar into its element particles in declared
// order, recording each particle's innermost enclosing choice.
func collectParticles(p *Particle, choice *Particle, st *slotTable) {
	switch p.Kind {
	case KindElement:
		key := qname{p.Space, p.Local}
		if _, dup := st.byName[key]; !dup {
			st.byName[key] = p
		}
		st.particles = append(st.particles, p)
		if choice != nil {
			st.choiceOf[p] = choice
		}
	case KindSequence:
		for _, item := range p.Items {
			collectParticles(item, choice, st)
		}
	case KindChoice:
		for _, item := range p.Items {
			collectParticles(item, p, st)
		}
	}
}

// NodeList is an ordered sequence of child nodes resolved from one slot.
// Elements are bound lazily: At binds on first access, so inspecting only
// the head of a long list (the first slide of a large deck) stays cheap.
type NodeList struct {
	b     *binder
	elems []*Element
}

// Len returns the number of entries.
func (l *NodeList) Len() int { return len(l.elems) }

// At returns the i-th node in document order, binding it on first access.
func (l *NodeList) At(i int) *Node { return l.b.node(l.elems[i]) }

// All binds and returns every entry. Convenient for small lists; prefer
// Len/At when only part of a large list is needed.
func (l *NodeList) All() []*Node {
	out := make([]*Node, len(l.elems))
	for i := range l.elems {
		out[i] = l.b.node(l.elems[i])
	}
	return out
}
