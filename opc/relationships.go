package opc

import (
	"encoding/xml"
	"path"
	"strings"
)

// Relationship is one typed, identified link from a source part (or the
// package root) to a target. Relationships are immutable once parsed.
type Relationship struct {
	// ID is the relationship identifier, unique within its source.
	ID string

	// Type is the URI identifying the semantic role of the link, such as
	// RelTypeOfficeDocument or RelTypeImage.
	Type string

	// Target is the resolved part name for internal relationships, or the
	// raw unresolved URI for external ones.
	Target string

	// External marks relationships whose target lives outside the package.
	// External targets must never be treated as part references.
	External bool
}

// relationshipsXML maps a .rels file.
type relationshipsXML struct {
	XMLName xml.Name          `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Rels    []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// relsNameFor returns the conventional relationship file name for a source
// part: a _rels sibling folder plus a .rels suffix. The empty source names
// the package root's relationship file.
func relsNameFor(sourcePart string) string {
	if sourcePart == "" {
		return "_rels/.rels"
	}
	dir, base := path.Split(sourcePart)
	return dir + "_rels/" + base + ".rels"
}

// parseRelationships parses one .rels file, resolving internal targets
// against the source part's directory. Duplicate identifiers are a
// MalformedRelationshipsError. Ordering follows the file.
func parseRelationships(sourcePart string, data []byte) ([]Relationship, error) {
	relsName := relsNameFor(sourcePart)

	var raw relationshipsXML
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedRelationshipsError{Source: relsName, Reason: err.Error()}
	}

	sourceDir := path.Dir(sourcePart)
	if sourcePart == "" || sourceDir == "." {
		sourceDir = ""
	}

	seen := make(map[string]bool, len(raw.Rels))
	rels := make([]Relationship, 0, len(raw.Rels))
	for _, r := range raw.Rels {
		if r.ID == "" {
			return nil, &MalformedRelationshipsError{Source: relsName, Reason: "relationship with empty Id"}
		}
		if seen[r.ID] {
			return nil, &MalformedRelationshipsError{
				Source: relsName,
				Reason: "duplicate relationship Id " + r.ID,
			}
		}
		seen[r.ID] = true

		rel := Relationship{ID: r.ID, Type: r.Type}
		if strings.EqualFold(r.TargetMode, "External") {
			rel.External = true
			rel.Target = r.Target
		} else {
			rel.Target = resolveTarget(sourceDir, r.Target)
		}
		rels = append(rels, rel)
	}
	return rels, nil
}

// resolveTarget resolves a relationship target to a part name. Targets with
// a leading slash resolve against the package root; others against the
// source part's directory.
func resolveTarget(sourceDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(target)[1:]
	}
	return strings.TrimPrefix(path.Join(sourceDir, target), "/")
}
