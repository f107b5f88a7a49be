package oxml

// ValueType identifies the coercion applied to an attribute's text.
type ValueType int

const (
	// TypeString leaves the attribute text untouched.
	TypeString ValueType = iota
	// TypeBool accepts "true", "false", "1", "0". A bare attribute with an
	// empty value is treated as true, as writers emit for toggle properties.
	TypeBool
	// TypeInt is a signed decimal integer.
	TypeInt
	// TypeUnsigned is an unsigned decimal integer (xsd:unsignedInt range).
	TypeUnsigned
	// TypeTwips is a length in twentieths of a point.
	TypeTwips
	// TypeHalfPoints is a font size in half-points.
	TypeHalfPoints
	// TypeEMU is a length in English Metric Units (914400 per inch).
	TypeEMU
	// TypeEnum is a closed token set listed in AttrSpec.Enum.
	TypeEnum
	// TypeRelID is a relationship identifier resolvable against the
	// relationship set of the part that owns the markup.
	TypeRelID
)

// AttrSpec describes one attribute of a node definition.
type AttrSpec struct {
	// Space is the attribute's namespace URI, empty for unprefixed
	// attributes.
	Space string

	// Local is the attribute's local name.
	Local string

	// Type selects the value coercion.
	Type ValueType

	// Required marks attributes whose absence is a binding error.
	Required bool

	// Default is the declared default text, applied when an optional
	// attribute is absent. Empty means no default.
	Default string

	// Enum lists the legal tokens for TypeEnum attributes.
	Enum []string
}

// ParticleKind tags the nodes of a child-content grammar.
type ParticleKind int

const (
	// KindElement is a single named element slot.
	KindElement ParticleKind = iota
	// KindSequence requires its items in declared order.
	KindSequence
	// KindChoice allows exactly one of its items.
	KindChoice
)

// Unbounded marks a particle with no upper occurrence limit.
const Unbounded = -1

// Particle is one node of a child-content grammar. Element particles name a
// child slot; Sequence and Choice particles group other particles. Min and
// Max are occurrence bounds, with Max == Unbounded for unlimited repetition.
type Particle struct {
	Kind  ParticleKind
	Space string // element particles only
	Local string // element particles only
	Min   int
	Max   int
	Items []*Particle // group particles only
}

// Definition is the static descriptor for one element type: its qualified
// name, attribute specs, and child grammar. Definitions are immutable after
// registration.
type Definition struct {
	Space   string
	Local   string
	Attrs   []AttrSpec
	Content *Particle // nil when the element has no element content
}

// NewDefinition builds a definition. Content may be nil for text-only or
// empty elements.
func NewDefinition(space, local string, attrs []AttrSpec, content *Particle) *Definition {
	return &Definition{Space: space, Local: local, Attrs: attrs, Content: content}
}

// attr finds the spec for a local attribute name. When two specs share a
// local name across namespaces (sldId carries both id and r:id), the one
// matching the accessor's value type wins.
func (d *Definition) attr(local string, want ValueType) (*AttrSpec, bool) {
	var first *AttrSpec
	for i := range d.Attrs {
		if d.Attrs[i].Local != local {
			continue
		}
		if d.Attrs[i].Type == want {
			return &d.Attrs[i], true
		}
		if first == nil {
			first = &d.Attrs[i]
		}
	}
	return first, first != nil
}

// Grammar constructors. Descriptor tables in the schema packages compose
// these to stay readable; see package wml for typical usage.

// El is a required, single-occurrence element particle.
func El(space, local string) *Particle {
	return &Particle{Kind: KindElement, Space: space, Local: local, Min: 1, Max: 1}
}

// Opt makes a copy of p with a minimum occurrence of zero.
func Opt(p *Particle) *Particle {
	q := *p
	q.Min = 0
	return &q
}

// Rep makes a copy of p repeatable without bound. The minimum occurrence is
// preserved, so Rep(El(...)) requires at least one occurrence while
// Rep(Opt(El(...))) and Opt(Rep(El(...))) allow zero.
func Rep(p *Particle) *Particle {
	q := *p
	q.Max = Unbounded
	return &q
}

// Seq groups particles into an ordered sequence.
func Seq(items ...*Particle) *Particle {
	return &Particle{Kind: KindSequence, Min: 1, Max: 1, Items: items}
}

// Ch groups particles into a choice: exactly one alternative may appear.
func Ch(items ...*Particle) *Particle {
	return &Particle{Kind: KindChoice, Min: 1, Max: 1, Items: items}
}

// Attribute spec constructors.

// Str is an optional string attribute.
func Str(local string) AttrSpec { return AttrSpec{Local: local, Type: TypeString} }

// ReqStr is a required string attribute.
func ReqStr(local string) AttrSpec {
	return AttrSpec{Local: local, Type: TypeString, Required: true}
}

// Bool is an optional boolean attribute.
func Bool(local string) AttrSpec { return AttrSpec{Local: local, Type: TypeBool} }

// Int is an optional signed integer attribute.
func Int(local string) AttrSpec { return AttrSpec{Local: local, Type: TypeInt} }

// Uint is an optional unsigned integer attribute.
func Uint(local string) AttrSpec { return AttrSpec{Local: local, Type: TypeUnsigned} }

// ReqUint is a required unsigned integer attribute.
func ReqUint(local string) AttrSpec {
	return AttrSpec{Local: local, Type: TypeUnsigned, Required: true}
}

// TwipsAttr is an optional twentieths-of-a-point measurement attribute.
func TwipsAttr(local string) AttrSpec { return AttrSpec{Local: local, Type: TypeTwips} }

// HalfPtAttr is an optional half-point measurement attribute.
func HalfPtAttr(local string) AttrSpec { return AttrSpec{Local: local, Type: TypeHalfPoints} }

// EMUAttr is an optional EMU measurement attribute.
func EMUAttr(local string) AttrSpec { return AttrSpec{Local: local, Type: TypeEMU} }

// Enum is an optional closed-enumeration attribute.
func Enum(local string, tokens ...string) AttrSpec {
	return AttrSpec{Local: local, Type: TypeEnum, Enum: tokens}
}

// RelID is an optional relationship-identifier attribute in the given
// namespace (conventionally the officeDocument relationships namespace).
func RelID(space, local string) AttrSpec {
	return AttrSpec{Space: space, Local: local, Type: TypeRelID}
}

// ReqRelID is a required relationship-identifier attribute.
func ReqRelID(space, local string) AttrSpec {
	return AttrSpec{Space: space, Local: local, Type: TypeRelID, Required: true}
}

// WithDefault returns a copy of the spec with a declared default value.
func WithDefault(a AttrSpec, def string) AttrSpec {
	a.Default = def
	return a
}
