package shared

import "github.com/tsawler/ooxml/oxml"

// Namespace URIs of the package metadata vocabularies.
const (
	NSCoreProps = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	NSDC        = "http://purl.org/dc/elements/1.1/"
	NSDCTerms   = "http://purl.org/dc/terms/"
	NSExtProps  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
)

func init() {
	oxml.Register(
		// docProps/core.xml. Values are element text; the ordering below is
		// the one the ECMA-376 schema declares, every slot optional.
		oxml.NewDefinition(NSCoreProps, "coreProperties", nil,
			oxml.Seq(
				oxml.Opt(oxml.El(NSCoreProps, "category")),
				oxml.Opt(oxml.El(NSCoreProps, "contentStatus")),
				oxml.Opt(oxml.El(NSDCTerms, "created")),
				oxml.Opt(oxml.El(NSDC, "creator")),
				oxml.Opt(oxml.El(NSDC, "description")),
				oxml.Opt(oxml.El(NSDC, "identifier")),
				oxml.Opt(oxml.El(NSCoreProps, "keywords")),
				oxml.Opt(oxml.El(NSDC, "language")),
				oxml.Opt(oxml.El(NSCoreProps, "lastModifiedBy")),
				oxml.Opt(oxml.El(NSCoreProps, "lastPrinted")),
				oxml.Opt(oxml.El(NSDCTerms, "modified")),
				oxml.Opt(oxml.El(NSCoreProps, "revision")),
				oxml.Opt(oxml.El(NSDC, "subject")),
				oxml.Opt(oxml.El(NSDC, "title")),
				oxml.Opt(oxml.El(NSCoreProps, "version")),
			),
		),

		// docProps/app.xml. Only the slots this module reads are declared;
		// the rest pass through as unknown children.
		oxml.NewDefinition(NSExtProps, "Properties", nil,
			oxml.Seq(
				oxml.Opt(oxml.El(NSExtProps, "Template")),
				oxml.Opt(oxml.El(NSExtProps, "TotalTime")),
				oxml.Opt(oxml.El(NSExtProps, "Pages")),
				oxml.Opt(oxml.El(NSExtProps, "Words")),
				oxml.Opt(oxml.El(NSExtProps, "Characters")),
				oxml.Opt(oxml.El(NSExtProps, "Application")),
				oxml.Opt(oxml.El(NSExtProps, "Lines")),
				oxml.Opt(oxml.El(NSExtProps, "Paragraphs")),
				oxml.Opt(oxml.El(NSExtProps, "Slides")),
				oxml.Opt(oxml.El(NSExtProps, "Notes")),
				oxml.Opt(oxml.El(NSExtProps, "Company")),
				oxml.Opt(oxml.El(NSExtProps, "Manager")),
				oxml.Opt(oxml.El(NSExtProps, "AppVersion")),
			),
		),
	)
}
