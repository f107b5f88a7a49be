package opc

import (
	"encoding/xml"
	"fmt"
	"path"
	"strings"
)

// contentTypesFile is the name of the package-wide content-type manifest.
const contentTypesFile = "[Content_Types].xml"

// typesXML maps the Types element of [Content_Types].xml.
type typesXML struct {
	XMLName   xml.Name      `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []defaultXML  `xml:"Default"`
	Overrides []overrideXML `xml:"Override"`
}

type defaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypes answers "what content type does part P have" from the parsed
// manifest. Extension defaults are keyed lowercase; overrides are keyed by
// exact part name with a leading slash, as the manifest stores them.
type ContentTypes struct {
	defaults  map[string]string // lowercase extension -> content type
	overrides map[string]string // "/word/document.xml" -> content type
}

// parseContentTypes parses the manifest bytes once per opened package.
func parseContentTypes(data []byte) (*ContentTypes, error) {
	var raw typesXML
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", contentTypesFile, err)
	}

	ct := &ContentTypes{
		defaults:  make(map[string]string, len(raw.Defaults)),
		overrides: make(map[string]string, len(raw.Overrides)),
	}
	for _, d := range raw.Defaults {
		ct.defaults[strings.ToLower(d.Extension)] = d.ContentType
	}
	for _, o := range raw.Overrides {
		name := o.PartName
		if !strings.HasPrefix(name, "/") {
			name = "/" + name
		}
		ct.overrides[name] = o.ContentType
	}
	return ct, nil
}

// ResolveFor resolves the content type of a part. The part name may be given
// with or without the leading slash. An exact override wins over the
// extension default; the extension comparison is case-insensitive. A part
// matching neither is an UnresolvedContentTypeError.
func (ct *ContentTypes) ResolveFor(partName string) (string, error) {
	name := partName
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}

	if t, ok := ct.overrides[name]; ok {
		return t, nil
	}

	ext := strings.TrimPrefix(path.Ext(name), ".")
	if t, ok := ct.defaults[strings.ToLower(ext)]; ok {
		return t, nil
	}

	return "", &UnresolvedContentTypeError{PartName: partName}
}
