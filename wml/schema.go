package wml

import "github.com/tsawler/ooxml/oxml"

// Namespace URIs of the wordprocessing vocabulary.
const (
	NS    = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NSRel = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

func el(local string) *oxml.Particle  { return oxml.El(NS, local) }
func opt(local string) *oxml.Particle { return oxml.Opt(oxml.El(NS, local)) }
func rep(local string) *oxml.Particle { return oxml.Rep(oxml.Opt(oxml.El(NS, local))) }

// val is the ubiquitous single-attribute element shape (w:val).
func val(local string, attr oxml.AttrSpec) *oxml.Definition {
	return oxml.NewDefinition(NS, local, []oxml.AttrSpec{attr}, nil)
}

// toggle is an on/off run or paragraph property: w:b, w:i and friends,
// where a bare element means "on".
func toggle(local string) *oxml.Definition {
	return oxml.NewDefinition(NS, local,
		[]oxml.AttrSpec{oxml.WithDefault(oxml.Bool("val"), "true")}, nil)
}

func init() {
	oxml.Register(
		// Document structure.
		oxml.NewDefinition(NS, "document", nil,
			oxml.Seq(opt("background"), opt("body")),
		),
		oxml.NewDefinition(NS, "body", nil,
			oxml.Seq(
				oxml.Opt(oxml.Rep(oxml.Ch(el("p"), el("tbl"), el("sdt")))),
				opt("sectPr"),
			),
		),

		// Paragraphs and runs.
		oxml.NewDefinition(NS, "p", nil,
			oxml.Seq(
				opt("pPr"),
				oxml.Opt(oxml.Rep(oxml.Ch(
					el("r"), el("hyperlink"), el("bookmarkStart"), el("bookmarkEnd"),
				))),
			),
		),
		oxml.NewDefinition(NS, "pPr", nil,
			oxml.Seq(
				opt("pStyle"), opt("keepNext"), opt("keepLines"), opt("pageBreakBefore"),
				opt("numPr"), opt("spacing"), opt("ind"), opt("jc"),
				opt("outlineLvl"), opt("rPr"),
			),
		),
		val("pStyle", oxml.ReqStr("val")),
		oxml.NewDefinition(NS, "numPr", nil,
			oxml.Seq(opt("ilvl"), opt("numId")),
		),
		val("ilvl", oxml.Int("val")),
		val("numId", oxml.Int("val")),
		oxml.NewDefinition(NS, "spacing",
			[]oxml.AttrSpec{
				oxml.TwipsAttr("before"), oxml.TwipsAttr("after"), oxml.TwipsAttr("line"),
				oxml.Enum("lineRule", "auto", "exact", "atLeast"),
			},
			nil,
		),
		oxml.NewDefinition(NS, "ind",
			[]oxml.AttrSpec{
				oxml.TwipsAttr("left"), oxml.TwipsAttr("right"),
				oxml.TwipsAttr("firstLine"), oxml.TwipsAttr("hanging"),
				oxml.TwipsAttr("start"), oxml.TwipsAttr("end"),
			},
			nil,
		),
		val("jc", oxml.Enum("val",
			"left", "center", "right", "both", "start", "end", "distribute",
			"highKashida", "lowKashida", "mediumKashida", "thaiDistribute")),
		val("outlineLvl", oxml.Int("val")),
		toggle("keepNext"), toggle("keepLines"), toggle("pageBreakBefore"),

		oxml.NewDefinition(NS, "r", nil,
			oxml.Seq(
				opt("rPr"),
				oxml.Opt(oxml.Rep(oxml.Ch(
					el("t"), el("tab"), el("br"), el("cr"), el("sym"), el("drawing"),
				))),
			),
		),
		oxml.NewDefinition(NS, "rPr", nil,
			oxml.Seq(
				opt("rStyle"), opt("rFonts"), opt("b"), opt("i"), opt("caps"),
				opt("smallCaps"), opt("strike"), opt("dstrike"), opt("color"),
				opt("highlight"), opt("u"), opt("vertAlign"), opt("sz"), opt("szCs"),
			),
		),
		val("rStyle", oxml.ReqStr("val")),
		oxml.NewDefinition(NS, "rFonts",
			[]oxml.AttrSpec{
				oxml.Str("ascii"), oxml.Str("hAnsi"), oxml.Str("eastAsia"), oxml.Str("cs"),
			},
			nil,
		),
		toggle("b"), toggle("i"), toggle("caps"), toggle("smallCaps"),
		toggle("strike"), toggle("dstrike"),
		val("color", oxml.ReqStr("val")),
		val("highlight", oxml.Enum("val",
			"black", "blue", "cyan", "darkBlue", "darkCyan", "darkGray", "darkGreen",
			"darkMagenta", "darkRed", "darkYellow", "green", "lightGray", "magenta",
			"none", "red", "white", "yellow")),
		val("u", oxml.Enum("val",
			"single", "double", "thick", "dotted", "dash", "dotDash", "dotDotDash",
			"wave", "wavyDouble", "wavyHeavy", "words", "none")),
		val("vertAlign", oxml.Enum("val", "baseline", "superscript", "subscript")),
		val("sz", oxml.HalfPtAttr("val")),
		val("szCs", oxml.HalfPtAttr("val")),

		oxml.NewDefinition(NS, "t",
			[]oxml.AttrSpec{{Space: "http://www.w3.org/XML/1998/namespace", Local: "space", Type: oxml.TypeString}},
			nil,
		),
		oxml.NewDefinition(NS, "tab", nil, nil),
		oxml.NewDefinition(NS, "cr", nil, nil),
		oxml.NewDefinition(NS, "br",
			[]oxml.AttrSpec{
				oxml.WithDefault(oxml.Enum("type", "page", "column", "textWrapping"), "textWrapping"),
				oxml.Enum("clear", "none", "left", "right", "all"),
			},
			nil,
		),
		oxml.NewDefinition(NS, "sym",
			[]oxml.AttrSpec{oxml.Str("font"), oxml.Str("char")},
			nil,
		),

		oxml.NewDefinition(NS, "hyperlink",
			[]oxml.AttrSpec{oxml.RelID(NSRel, "id"), oxml.Str("anchor"), oxml.Str("tooltip")},
			oxml.Seq(rep("r")),
		),
		oxml.NewDefinition(NS, "bookmarkStart",
			[]oxml.AttrSpec{oxml.ReqUint("id"), oxml.ReqStr("name")},
			nil,
		),
		oxml.NewDefinition(NS, "bookmarkEnd",
			[]oxml.AttrSpec{oxml.ReqUint("id")},
			nil,
		),

		// Tables.
		oxml.NewDefinition(NS, "tbl", nil,
			oxml.Seq(opt("tblPr"), opt("tblGrid"), rep("tr")),
		),
		oxml.NewDefinition(NS, "tblPr", nil,
			oxml.Seq(opt("tblStyle"), opt("tblW"), opt("jc"), opt("tblBorders"), opt("tblLayout")),
		),
		val("tblStyle", oxml.ReqStr("val")),
		oxml.NewDefinition(NS, "tblW",
			[]oxml.AttrSpec{oxml.TwipsAttr("w"), oxml.Enum("type", "auto", "dxa", "nil", "pct")},
			nil,
		),
		oxml.NewDefinition(NS, "tblLayout",
			[]oxml.AttrSpec{oxml.Enum("type", "fixed", "autofit")},
			nil,
		),
		oxml.NewDefinition(NS, "tblBorders", nil,
			oxml.Seq(opt("top"), opt("start"), opt("left"), opt("bottom"), opt("end"), opt("right"), opt("insideH"), opt("insideV")),
		),
		oxml.NewDefinition(NS, "tblGrid", nil, oxml.Seq(rep("gridCol"))),
		oxml.NewDefinition(NS, "gridCol",
			[]oxml.AttrSpec{oxml.TwipsAttr("w")},
			nil,
		),
		oxml.NewDefinition(NS, "tr", nil,
			oxml.Seq(opt("trPr"), rep("tc")),
		),
		oxml.NewDefinition(NS, "trPr", nil,
			oxml.Seq(opt("trHeight"), opt("tblHeader")),
		),
		oxml.NewDefinition(NS, "trHeight",
			[]oxml.AttrSpec{oxml.TwipsAttr("val"), oxml.Enum("hRule", "auto", "exact", "atLeast")},
			nil,
		),
		toggle("tblHeader"),
		oxml.NewDefinition(NS, "tc", nil,
			oxml.Seq(opt("tcPr"), oxml.Opt(oxml.Rep(oxml.Ch(el("p"), el("tbl"))))),
		),
		oxml.NewDefinition(NS, "tcPr", nil,
			oxml.Seq(opt("tcW"), opt("gridSpan"), opt("vMerge"), opt("vAlign")),
		),
		oxml.NewDefinition(NS, "tcW",
			[]oxml.AttrSpec{oxml.TwipsAttr("w"), oxml.Enum("type", "auto", "dxa", "nil", "pct")},
			nil,
		),
		val("gridSpan", oxml.Int("val")),
		oxml.NewDefinition(NS, "vMerge",
			[]oxml.AttrSpec{oxml.WithDefault(oxml.Enum("val", "restart", "continue"), "continue")},
			nil,
		),
		val("vAlign", oxml.Enum("val", "top", "center", "bottom")),

		// Section properties.
		oxml.NewDefinition(NS, "sectPr", nil,
			oxml.Seq(opt("pgSz"), opt("pgMar"), opt("cols"), opt("titlePg")),
		),
		oxml.NewDefinition(NS, "pgSz",
			[]oxml.AttrSpec{
				oxml.TwipsAttr("w"), oxml.TwipsAttr("h"),
				oxml.WithDefault(oxml.Enum("orient", "portrait", "landscape"), "portrait"),
			},
			nil,
		),
		oxml.NewDefinition(NS, "pgMar",
			[]oxml.AttrSpec{
				oxml.TwipsAttr("top"), oxml.TwipsAttr("right"), oxml.TwipsAttr("bottom"),
				oxml.TwipsAttr("left"), oxml.TwipsAttr("header"), oxml.TwipsAttr("footer"),
				oxml.TwipsAttr("gutter"),
			},
			nil,
		),
		oxml.NewDefinition(NS, "cols",
			[]oxml.AttrSpec{oxml.Int("num"), oxml.TwipsAttr("space")},
			nil,
		),
		toggle("titlePg"),

		// Styles part.
		oxml.NewDefinition(NS, "styles", nil,
			oxml.Seq(opt("docDefaults"), opt("latentStyles"), rep("style")),
		),
		oxml.NewDefinition(NS, "docDefaults", nil,
			oxml.Seq(opt("rPrDefault"), opt("pPrDefault")),
		),
		oxml.NewDefinition(NS, "rPrDefault", nil, oxml.Seq(opt("rPr"))),
		oxml.NewDefinition(NS, "pPrDefault", nil, oxml.Seq(opt("pPr"))),
		oxml.NewDefinition(NS, "style",
			[]oxml.AttrSpec{
				oxml.Enum("type", "paragraph", "character", "table", "numbering"),
				oxml.ReqStr("styleId"),
				oxml.Bool("default"),
				oxml.Bool("customStyle"),
			},
			oxml.Seq(
				opt("name"), opt("basedOn"), opt("next"), opt("link"),
				opt("uiPriority"), opt("qFormat"), opt("pPr"), opt("rPr"),
			),
		),
		val("name", oxml.ReqStr("val")),
		val("basedOn", oxml.ReqStr("val")),
		val("next", oxml.ReqStr("val")),
		val("link", oxml.ReqStr("val")),
		val("uiPriority", oxml.Int("val")),
		toggle("qFormat"),

		// Numbering part.
		oxml.NewDefinition(NS, "numbering", nil,
			oxml.Seq(rep("abstractNum"), rep("num")),
		),
		oxml.NewDefinition(NS, "abstractNum",
			[]oxml.AttrSpec{{Local: "abstractNumId", Type: oxml.TypeInt, Required: true}},
			oxml.Seq(opt("multiLevelType"), rep("lvl")),
		),
		val("multiLevelType", oxml.Enum("val", "singleLevel", "multilevel", "hybridMultilevel")),
		oxml.NewDefinition(NS, "lvl",
			[]oxml.AttrSpec{{Local: "ilvl", Type: oxml.TypeInt, Required: true}},
			oxml.Seq(
				opt("start"), opt("numFmt"), opt("lvlText"), opt("lvlJc"),
				opt("pPr"), opt("rPr"),
			),
		),
		val("start", oxml.Int("val")),
		val("numFmt", oxml.Enum("val",
			"decimal", "upperRoman", "lowerRoman", "upperLetter", "lowerLetter",
			"ordinal", "cardinalText", "ordinalText", "bullet", "chicago",
			"decimalZero", "none")),
		val("lvlText", oxml.ReqStr("val")),
		val("lvlJc", oxml.Enum("val", "left", "center", "right", "start", "end")),
		oxml.NewDefinition(NS, "num",
			[]oxml.AttrSpec{{Local: "numId", Type: oxml.TypeInt, Required: true}},
			oxml.Seq(el("abstractNumId"), rep("lvlOverride")),
		),
		val("abstractNumId", oxml.Int("val")),
		oxml.NewDefinition(NS, "lvlOverride",
			[]oxml.AttrSpec{{Local: "ilvl", Type: oxml.TypeInt, Required: true}},
			oxml.Seq(opt("startOverride"), opt("lvl")),
		),
		val("startOverride", oxml.Int("val")),

		// Settings part (a small useful subset).
		oxml.NewDefinition(NS, "settings", nil,
			oxml.Seq(opt("zoom"), opt("defaultTabStop"), opt("evenAndOddHeaders"), opt("updateFields")),
		),
		oxml.NewDefinition(NS, "zoom",
			[]oxml.AttrSpec{oxml.Int("percent"), oxml.Enum("val", "none", "fullPage", "bestFit", "textFit")},
			nil,
		),
		val("defaultTabStop", oxml.TwipsAttr("val")),
		toggle("evenAndOddHeaders"), toggle("updateFields"),
	)
}
