package shared

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/ooxml/opc"
)

func init() {
	opc.RegisterPartType(opc.CTCoreProperties, newCorePropertiesPart)
	opc.RegisterPartType(opc.CTExtendedProperties, newAppPropertiesPart)
}

// CorePropertiesPart is the package metadata part (docProps/core.xml):
// Dublin Core fields plus the OPC core-property extensions.
type CorePropertiesPart struct {
	*opc.XMLPart
}

func newCorePropertiesPart(b *opc.BasePart) opc.Part {
	return &CorePropertiesPart{XMLPart: opc.NewXMLPart(b)}
}

// Title returns the dc:title text, empty when absent.
func (p *CorePropertiesPart) Title() (string, error) { return p.text("title") }

// Subject returns the dc:subject text.
func (p *CorePropertiesPart) Subject() (string, error) { return p.text("subject") }

// Creator returns the dc:creator text.
func (p *CorePropertiesPart) Creator() (string, error) { return p.text("creator") }

// Description returns the dc:description text.
func (p *CorePropertiesPart) Description() (string, error) { return p.text("description") }

// Keywords returns the cp:keywords text.
func (p *CorePropertiesPart) Keywords() (string, error) { return p.text("keywords") }

// Category returns the cp:category text.
func (p *CorePropertiesPart) Category() (string, error) { return p.text("category") }

// LastModifiedBy returns the cp:lastModifiedBy text.
func (p *CorePropertiesPart) LastModifiedBy() (string, error) { return p.text("lastModifiedBy") }

// Language returns the dc:language text.
func (p *CorePropertiesPart) Language() (string, error) { return p.text("language") }

// Revision returns the cp:revision counter, zero when absent or non-numeric.
func (p *CorePropertiesPart) Revision() (int, error) {
	text, err := p.text("revision")
	if err != nil || text == "" {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// Created returns the dcterms:created timestamp. The second result is false
// when the property is absent or unparseable.
func (p *CorePropertiesPart) Created() (time.Time, bool, error) {
	return p.timestamp("created")
}

// Modified returns the dcterms:modified timestamp.
func (p *CorePropertiesPart) Modified() (time.Time, bool, error) {
	return p.timestamp("modified")
}

func (p *CorePropertiesPart) text(local string) (string, error) {
	root, err := p.Root()
	if err != nil {
		return "", err
	}
	node, err := root.Child(local)
	if err != nil || node == nil {
		return "", err
	}
	return node.Text(), nil
}

func (p *CorePropertiesPart) timestamp(local string) (time.Time, bool, error) {
	text, err := p.text(local)
	if err != nil || text == "" {
		return time.Time{}, false, err
	}
	t, ok := parseW3CDTF(strings.TrimSpace(text))
	return t, ok, nil
}

// w3cdtfLayouts are the W3C date-time profiles dcterms timestamps use, from
// most to least precise.
var w3cdtfLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02",
	"2006-01",
	"2006",
}

func parseW3CDTF(text string) (time.Time, bool) {
	for _, layout := range w3cdtfLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AppPropertiesPart is the application-defined metadata part
// (docProps/app.xml): producing application, statistics, company.
type AppPropertiesPart struct {
	*opc.XMLPart
}

func newAppPropertiesPart(b *opc.BasePart) opc.Part {
	return &AppPropertiesPart{XMLPart: opc.NewXMLPart(b)}
}

// Application returns the producing application's name.
func (p *AppPropertiesPart) Application() (string, error) { return p.text("Application") }

// AppVersion returns the producing application's version string.
func (p *AppPropertiesPart) AppVersion() (string, error) { return p.text("AppVersion") }

// Company returns the Company text.
func (p *AppPropertiesPart) Company() (string, error) { return p.text("Company") }

// Manager returns the Manager text.
func (p *AppPropertiesPart) Manager() (string, error) { return p.text("Manager") }

// Template returns the Template text.
func (p *AppPropertiesPart) Template() (string, error) { return p.text("Template") }

// Pages returns the page count statistic, zero when absent.
func (p *AppPropertiesPart) Pages() (int, error) { return p.counter("Pages") }

// Words returns the word count statistic.
func (p *AppPropertiesPart) Words() (int, error) { return p.counter("Words") }

// Slides returns the slide count statistic.
func (p *AppPropertiesPart) Slides() (int, error) { return p.counter("Slides") }

func (p *AppPropertiesPart) text(local string) (string, error) {
	root, err := p.Root()
	if err != nil {
		return "", err
	}
	node, err := root.Child(local)
	if err != nil || node == nil {
		return "", err
	}
	return node.Text(), nil
}

func (p *AppPropertiesPart) counter(local string) (int, error) {
	text, err := p.text(local)
	if err != nil || text == "" {
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(text))
	if convErr != nil {
		return 0, fmt.Errorf("property %s: %w", local, convErr)
	}
	return n, nil
}
