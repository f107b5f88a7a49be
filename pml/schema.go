package pml

import (
	"github.com/tsawler/ooxml/dml"
	"github.com/tsawler/ooxml/oxml"
)

// Namespace URIs of the presentation vocabulary.
const (
	NS    = "http://schemas.openxmlformats.org/presentationml/2006/main"
	NSRel = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

func el(local string) *oxml.Particle  { return oxml.El(NS, local) }
func opt(local string) *oxml.Particle { return oxml.Opt(oxml.El(NS, local)) }
func rep(local string) *oxml.Particle { return oxml.Rep(oxml.Opt(oxml.El(NS, local))) }

func init() {
	oxml.Register(
		// Presentation part.
		oxml.NewDefinition(NS, "presentation",
			[]oxml.AttrSpec{oxml.Bool("autoCompressPictures"), oxml.Bool("saveSubsetFonts")},
			oxml.Seq(
				opt("sldMasterIdLst"), opt("notesMasterIdLst"), opt("handoutMasterIdLst"),
				opt("sldIdLst"), opt("sldSz"), opt("notesSz"), opt("defaultTextStyle"),
			),
		),
		oxml.NewDefinition(NS, "sldIdLst", nil, oxml.Seq(rep("sldId"))),
		oxml.NewDefinition(NS, "sldId",
			[]oxml.AttrSpec{oxml.ReqUint("id"), oxml.ReqRelID(NSRel, "id")},
			nil,
		),
		oxml.NewDefinition(NS, "sldMasterIdLst", nil, oxml.Seq(rep("sldMasterId"))),
		oxml.NewDefinition(NS, "sldMasterId",
			[]oxml.AttrSpec{oxml.Uint("id"), oxml.ReqRelID(NSRel, "id")},
			nil,
		),
		oxml.NewDefinition(NS, "notesMasterIdLst", nil, oxml.Seq(rep("notesMasterId"))),
		oxml.NewDefinition(NS, "notesMasterId",
			[]oxml.AttrSpec{oxml.ReqRelID(NSRel, "id")},
			nil,
		),
		oxml.NewDefinition(NS, "sldSz",
			[]oxml.AttrSpec{
				oxml.EMUAttr("cx"), oxml.EMUAttr("cy"),
				oxml.Enum("type",
					"screen4x3", "screen16x9", "screen16x10", "letter", "ledger",
					"A3", "A4", "B4ISO", "B5ISO", "35mm", "overhead", "banner", "custom"),
			},
			nil,
		),
		oxml.NewDefinition(NS, "notesSz",
			[]oxml.AttrSpec{oxml.EMUAttr("cx"), oxml.EMUAttr("cy")},
			nil,
		),

		// Slide family. Slides, layouts and masters share the common slide
		// data element.
		oxml.NewDefinition(NS, "sld",
			[]oxml.AttrSpec{
				oxml.WithDefault(oxml.Bool("show"), "true"),
				oxml.Bool("showMasterSp"),
			},
			oxml.Seq(el("cSld"), opt("clrMapOvr"), opt("transition"), opt("timing")),
		),
		oxml.NewDefinition(NS, "sldLayout",
			[]oxml.AttrSpec{
				oxml.Bool("showMasterSp"),
				oxml.WithDefault(oxml.Enum("type",
					"title", "tx", "twoColTx", "tbl", "txAndChart", "chartAndTx",
					"dgm", "chart", "txAndClipArt", "clipArtAndTx", "titleOnly",
					"blank", "txAndObj", "objAndTx", "objOnly", "obj", "txAndMedia",
					"mediaAndTx", "objOverTx", "txOverObj", "txAndTwoObj",
					"twoObjAndTx", "twoObjOverTx", "fourObj", "vertTx", "clipArtAndVertTx",
					"vertTitleAndTx", "vertTitleAndTxOverChart", "twoObj",
					"objAndTwoObj", "twoObjAndObj", "cust", "secHead", "twoTxTwoObj",
					"objTx", "picTx"), "cust"),
			},
			oxml.Seq(el("cSld"), opt("clrMapOvr")),
		),
		oxml.NewDefinition(NS, "sldMaster",
			[]oxml.AttrSpec{oxml.Bool("preserve")},
			oxml.Seq(el("cSld"), opt("clrMap"), opt("sldLayoutIdLst"), opt("txStyles")),
		),
		oxml.NewDefinition(NS, "sldLayoutIdLst", nil, oxml.Seq(rep("sldLayoutId"))),
		oxml.NewDefinition(NS, "sldLayoutId",
			[]oxml.AttrSpec{oxml.Uint("id"), oxml.ReqRelID(NSRel, "id")},
			nil,
		),
		oxml.NewDefinition(NS, "notes",
			[]oxml.AttrSpec{oxml.Bool("showMasterSp")},
			oxml.Seq(el("cSld"), opt("clrMapOvr")),
		),

		oxml.NewDefinition(NS, "cSld",
			[]oxml.AttrSpec{oxml.Str("name")},
			oxml.Seq(opt("bg"), el("spTree")),
		),
		oxml.NewDefinition(NS, "spTree", nil,
			oxml.Seq(
				opt("nvGrpSpPr"), opt("grpSpPr"),
				oxml.Opt(oxml.Rep(oxml.Ch(
					el("sp"), el("pic"), el("graphicFrame"), el("grpSp"), el("cxnSp"),
				))),
			),
		),

		// Shapes.
		oxml.NewDefinition(NS, "sp", nil,
			oxml.Seq(opt("nvSpPr"), opt("spPr"), opt("style"), opt("txBody")),
		),
		oxml.NewDefinition(NS, "nvSpPr", nil,
			oxml.Seq(el("cNvPr"), opt("cNvSpPr"), opt("nvPr")),
		),
		oxml.NewDefinition(NS, "cNvPr",
			[]oxml.AttrSpec{
				oxml.ReqUint("id"), oxml.ReqStr("name"),
				oxml.Str("descr"), oxml.Bool("hidden"),
			},
			nil,
		),
		oxml.NewDefinition(NS, "nvPr", nil, oxml.Seq(opt("ph"))),
		oxml.NewDefinition(NS, "ph",
			[]oxml.AttrSpec{
				oxml.WithDefault(oxml.Enum("type",
					"title", "body", "ctrTitle", "subTitle", "dt", "ftr", "sldNum",
					"obj", "chart", "tbl", "clipArt", "dgm", "media", "sldImg", "pic"), "obj"),
				oxml.Uint("idx"),
			},
			nil,
		),
		// p:txBody wraps DrawingML text content.
		oxml.NewDefinition(NS, "txBody", nil,
			oxml.Seq(
				oxml.El(dml.NS, "bodyPr"),
				oxml.Opt(oxml.El(dml.NS, "lstStyle")),
				oxml.Rep(oxml.El(dml.NS, "p")),
			),
		),
		oxml.NewDefinition(NS, "pic", nil,
			oxml.Seq(opt("nvPicPr"), el("blipFill"), opt("spPr")),
		),
		oxml.NewDefinition(NS, "nvPicPr", nil,
			oxml.Seq(el("cNvPr"), opt("cNvPicPr"), opt("nvPr")),
		),
		oxml.NewDefinition(NS, "blipFill", nil,
			oxml.Seq(oxml.Opt(oxml.El(dml.NS, "blip")), oxml.Opt(oxml.El(dml.NS, "stretch"))),
		),
		oxml.NewDefinition(NS, "grpSp", nil,
			oxml.Seq(
				opt("nvGrpSpPr"), opt("grpSpPr"),
				oxml.Opt(oxml.Rep(oxml.Ch(el("sp"), el("pic"), el("graphicFrame"), el("grpSp"), el("cxnSp")))),
			),
		),
		oxml.NewDefinition(NS, "graphicFrame", nil,
			oxml.Seq(opt("nvGraphicFramePr"), opt("xfrm"), oxml.Opt(oxml.El(dml.NS, "graphic"))),
		),
		oxml.NewDefinition(NS, "cxnSp", nil,
			oxml.Seq(opt("nvCxnSpPr"), opt("spPr"), opt("style")),
		),
	)
}
