package dml

import "github.com/tsawler/ooxml/oxml"

// Namespace URIs of the drawing vocabulary.
const (
	NS    = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NSRel = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

func el(local string) *oxml.Particle  { return oxml.El(NS, local) }
func opt(local string) *oxml.Particle { return oxml.Opt(oxml.El(NS, local)) }
func rep(local string) *oxml.Particle { return oxml.Rep(oxml.Opt(oxml.El(NS, local))) }

// colorChoice is the recurring scheme-color shape: exactly one concrete
// color representation.
func colorChoice() *oxml.Particle {
	return oxml.Ch(el("srgbClr"), el("sysClr"), el("scrgbClr"), el("prstClr"))
}

func schemeColor(local string) *oxml.Definition {
	return oxml.NewDefinition(NS, local, nil, colorChoice())
}

func init() {
	oxml.Register(
		// Theme part.
		oxml.NewDefinition(NS, "theme",
			[]oxml.AttrSpec{oxml.Str("name")},
			oxml.Seq(el("themeElements"), opt("objectDefaults"), opt("extraClrSchemeLst")),
		),
		oxml.NewDefinition(NS, "themeElements", nil,
			oxml.Seq(el("clrScheme"), el("fontScheme"), opt("fmtScheme")),
		),

		// Color scheme: twelve named slots, each one concrete color.
		oxml.NewDefinition(NS, "clrScheme",
			[]oxml.AttrSpec{oxml.ReqStr("name")},
			oxml.Seq(
				el("dk1"), el("lt1"), el("dk2"), el("lt2"),
				el("accent1"), el("accent2"), el("accent3"), el("accent4"),
				el("accent5"), el("accent6"), el("hlink"), el("folHlink"),
			),
		),
		schemeColor("dk1"), schemeColor("lt1"), schemeColor("dk2"), schemeColor("lt2"),
		schemeColor("accent1"), schemeColor("accent2"), schemeColor("accent3"),
		schemeColor("accent4"), schemeColor("accent5"), schemeColor("accent6"),
		schemeColor("hlink"), schemeColor("folHlink"),
		oxml.NewDefinition(NS, "srgbClr",
			[]oxml.AttrSpec{oxml.ReqStr("val")},
			nil,
		),
		oxml.NewDefinition(NS, "sysClr",
			[]oxml.AttrSpec{oxml.ReqStr("val"), oxml.Str("lastClr")},
			nil,
		),

		// Font scheme.
		oxml.NewDefinition(NS, "fontScheme",
			[]oxml.AttrSpec{oxml.ReqStr("name")},
			oxml.Seq(el("majorFont"), el("minorFont")),
		),
		oxml.NewDefinition(NS, "majorFont", nil,
			oxml.Seq(el("latin"), opt("ea"), opt("cs")),
		),
		oxml.NewDefinition(NS, "minorFont", nil,
			oxml.Seq(el("latin"), opt("ea"), opt("cs")),
		),
		oxml.NewDefinition(NS, "latin",
			[]oxml.AttrSpec{oxml.ReqStr("typeface")},
			nil,
		),
		oxml.NewDefinition(NS, "ea",
			[]oxml.AttrSpec{oxml.Str("typeface")},
			nil,
		),
		oxml.NewDefinition(NS, "cs",
			[]oxml.AttrSpec{oxml.Str("typeface")},
			nil,
		),

		// Text body, as embedded in presentation shapes.
		oxml.NewDefinition(NS, "txBody", nil,
			oxml.Seq(el("bodyPr"), opt("lstStyle"), oxml.Rep(el("p"))),
		),
		oxml.NewDefinition(NS, "bodyPr",
			[]oxml.AttrSpec{
				oxml.Enum("wrap", "none", "square"),
				oxml.EMUAttr("lIns"), oxml.EMUAttr("tIns"),
				oxml.EMUAttr("rIns"), oxml.EMUAttr("bIns"),
				oxml.Enum("anchor", "t", "ctr", "b", "just", "dist"),
			},
			nil,
		),
		oxml.NewDefinition(NS, "p", nil,
			oxml.Seq(
				opt("pPr"),
				oxml.Opt(oxml.Rep(oxml.Ch(el("r"), el("br"), el("fld")))),
				opt("endParaRPr"),
			),
		),
		oxml.NewDefinition(NS, "pPr",
			[]oxml.AttrSpec{
				oxml.Int("lvl"),
				oxml.Enum("algn", "l", "ctr", "r", "just", "justLow", "dist", "thaiDist"),
			},
			oxml.Seq(opt("buNone"), opt("buChar"), opt("buAutoNum")),
		),
		oxml.NewDefinition(NS, "buNone", nil, nil),
		oxml.NewDefinition(NS, "buChar",
			[]oxml.AttrSpec{oxml.ReqStr("char")},
			nil,
		),
		oxml.NewDefinition(NS, "buAutoNum",
			[]oxml.AttrSpec{oxml.ReqStr("type"), oxml.Int("startAt")},
			nil,
		),
		oxml.NewDefinition(NS, "r", nil,
			oxml.Seq(opt("rPr"), el("t")),
		),
		oxml.NewDefinition(NS, "rPr",
			[]oxml.AttrSpec{
				// DrawingML sizes are hundredths of a point.
				oxml.Int("sz"),
				oxml.Bool("b"), oxml.Bool("i"),
				oxml.Enum("u", "none", "sng", "dbl", "heavy", "dotted", "wavy"),
				oxml.Str("lang"),
			},
			nil,
		),
		oxml.NewDefinition(NS, "t", nil, nil),
		oxml.NewDefinition(NS, "br", nil, nil),
		oxml.NewDefinition(NS, "fld",
			[]oxml.AttrSpec{oxml.ReqStr("id"), oxml.Str("type")},
			oxml.Seq(opt("rPr"), opt("t")),
		),
		oxml.NewDefinition(NS, "endParaRPr",
			[]oxml.AttrSpec{oxml.Int("sz"), oxml.Str("lang")},
			nil,
		),

		// Picture fill reference, used by pml pictures.
		oxml.NewDefinition(NS, "blip",
			[]oxml.AttrSpec{oxml.RelID(NSRel, "embed"), oxml.RelID(NSRel, "link")},
			nil,
		),
	)
}
