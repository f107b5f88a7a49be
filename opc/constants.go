package opc

// Relationship type URIs from the ECMA-376 and OPC namespaces. Navigation
// always goes by relationship type, never by hardcoded part paths.
const (
	RelTypeOfficeDocument     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeStyles             = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelTypeNumbering          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	RelTypeSettings           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	RelTypeFontTable          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/fontTable"
	RelTypeTheme              = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RelTypeImage              = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RelTypeHyperlink          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	RelTypeSlide              = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RelTypeSlideLayout        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	RelTypeSlideMaster        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	RelTypeNotesSlide         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
	RelTypeNotesMaster        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster"
	RelTypeHeader             = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	RelTypeFooter             = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
	RelTypeFootnotes          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footnotes"
	RelTypeEndnotes           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/endnotes"
	RelTypeCoreProperties     = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelTypeExtendedProperties = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	RelTypeThumbnail          = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/thumbnail"
)

// Content types for the well-known part kinds this module models.
const (
	// WordprocessingML
	CTWordDocumentMain = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	CTWordTemplateMain = "application/vnd.openxmlformats-officedocument.wordprocessingml.template.main+xml"
	CTWordStyles       = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	CTWordNumbering    = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	CTWordSettings     = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	CTWordFontTable    = "application/vnd.openxmlformats-officedocument.wordprocessingml.fontTable+xml"
	CTWordHeader       = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	CTWordFooter       = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
	CTWordFootnotes    = "application/vnd.openxmlformats-officedocument.wordprocessingml.footnotes+xml"
	CTWordEndnotes     = "application/vnd.openxmlformats-officedocument.wordprocessingml.endnotes+xml"

	// PresentationML
	CTPresentationMain = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	CTSlideshowMain    = "application/vnd.openxmlformats-officedocument.presentationml.slideshow.main+xml"
	CTPresTemplateMain = "application/vnd.openxmlformats-officedocument.presentationml.template.main+xml"
	CTSlide            = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	CTSlideLayout      = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	CTSlideMaster      = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	CTNotesSlide       = "application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"
	CTNotesMaster      = "application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"

	// SpreadsheetML, recognized only to reject it.
	CTWorkbookMain      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	CTWorkbookTemplate  = "application/vnd.openxmlformats-officedocument.spreadsheetml.template.main+xml"
	CTWorksheet         = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"

	// Shared
	CTTheme              = "application/vnd.openxmlformats-officedocument.theme+xml"
	CTCoreProperties     = "application/vnd.openxmlformats-package.core-properties+xml"
	CTExtendedProperties = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	CTRelationships      = "application/vnd.openxmlformats-package.relationships+xml"

	// Image media
	CTPNG  = "image/png"
	CTJPEG = "image/jpeg"
	CTJPG  = "image/jpg" // nonstandard but seen in the wild
	CTGIF  = "image/gif"
	CTTIFF = "image/tiff"
	CTBMP  = "image/bmp"
	CTWebP = "image/webp"
	CTEMF  = "image/x-emf"
	CTWMF  = "image/x-wmf"
)

// spreadsheetContentTypes are the main-part content types that identify a
// spreadsheet package. Resolution to one of these aborts opening with
// UnsupportedFormatError before any markup parsing.
var spreadsheetContentTypes = map[string]bool{
	CTWorkbookMain:     true,
	CTWorkbookTemplate: true,
	CTWorksheet:        true,
}
