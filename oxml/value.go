package oxml

import (
	"fmt"
	"strconv"
)

// Twips is a length in twentieths of a point, the unit WordprocessingML
// uses for page metrics, indents and spacing.
type Twips int64

// Points converts the length to typographic points.
func (t Twips) Points() float64 { return float64(t) / 20 }

// Inches converts the length to inches (1440 twips per inch).
func (t Twips) Inches() float64 { return float64(t) / 1440 }

// HalfPoints is a font size in half-points, as used by w:sz.
type HalfPoints int64

// Points converts the size to typographic points.
func (h HalfPoints) Points() float64 { return float64(h) / 2 }

// EMU is a length in English Metric Units, the unit DrawingML uses for
// shape and slide geometry. There are 914400 EMU per inch.
type EMU int64

// Inches converts the length to inches.
func (e EMU) Inches() float64 { return float64(e) / 914400 }

// Points converts the length to typographic points (12700 EMU per point).
func (e EMU) Points() float64 { return float64(e) / 12700 }

// Centimeters converts the length to centimeters (360000 EMU per cm).
func (e EMU) Centimeters() float64 { return float64(e) / 360000 }

// parseBool interprets the xsd:boolean lexical space plus the bare-attribute
// form toggle properties use: an attribute present with an empty value means
// true.
func parseBool(s string) (bool, error) {
	switch s {
	case "1", "true", "on", "":
		return true, nil
	case "0", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return v, nil
}

func parseUnsigned(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not an unsigned integer: %q", s)
	}
	return v, nil
}

// parseMeasure parses the integer magnitude of a measurement attribute.
// The universal-measure forms ("12.5pt", "1in") some writers emit are
// accepted and converted to the declared unit.
func parseMeasure(s string, unit ValueType) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}

	// Universal measure: decimal number followed by a two-letter unit.
	if len(s) > 2 {
		num, unitTag := s[:len(s)-2], s[len(s)-2:]
		if f, err := strconv.ParseFloat(num, 64); err == nil {
			var points float64
			switch unitTag {
			case "pt":
				points = f
			case "in":
				points = f * 72
			case "cm":
				points = f * 72 / 2.54
			case "mm":
				points = f * 72 / 25.4
			case "pc":
				points = f * 12
			case "pi":
				points = f * 12
			default:
				return 0, fmt.Errorf("not a measurement: %q", s)
			}
			switch unit {
			case TypeTwips:
				return int64(points * 20), nil
			case TypeHalfPoints:
				return int64(points * 2), nil
			case TypeEMU:
				return int64(points * 12700), nil
			}
		}
	}

	return 0, fmt.Errorf("not a measurement: %q", s)
}

// validEnum reports whether s is one of the listed tokens.
func validEnum(s string, tokens []string) bool {
	for _, t := range tokens {
		if s == t {
			return true
		}
	}
	return false
}
