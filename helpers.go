package main

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/beevik/etree"
)

// --- Text Dimension Estimation Helpers ---

// estimateTextWidth provides a very rough estimate of rendered text width.
// Accurate SVG text measurement needs real font metrics; an average
// character width of charWidthRatio em is close enough for the
// Times-family labels Gephi emits.
func estimateTextWidth(text string, fontSize float64) float64 {
	if fontSize <= 0 || text == "" {
		return 0
	}
	return float64(len([]rune(text))) * fontSize * charWidthRatio
}

// lineHeight estimates the vertical space one text line occupies.
func lineHeight(fontSize float64) float64 {
	return fontSize * lineHeightRatio
}

// --- Attribute Parsing Helpers ---

// parseFloatAttr reads a float attribute, falling back to def when the
// attribute is missing or not numeric.
func parseFloatAttr(e *etree.Element, key string, def float64) float64 {
	raw := strings.TrimSpace(e.SelectAttrValue(key, ""))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// parseIntAttr reads an integer attribute, falling back to def when the
// attribute is missing or not an integer.
func parseIntAttr(e *etree.Element, key string, def int) int {
	raw := strings.TrimSpace(e.SelectAttrValue(key, ""))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// stripUnit drops a trailing unit marker ("px", "pt", "%") from an SVG
// length attribute, leaving the numeric part.
func stripUnit(s string) string {
	return strings.TrimRightFunc(strings.TrimSpace(s), func(r rune) bool {
		return unicode.IsLetter(r) || r == '%'
	})
}

// --- Formatting Helpers ---

// formatCoord renders a coordinate without trailing zeros, so integral
// geometry stays integral in the output.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// truncateForLog shortens long label content for progress messages.
func truncateForLog(s string) string {
	r := []rune(s)
	if len(r) <= 30 {
		return s
	}
	return string(r[:30]) + "..."
}
