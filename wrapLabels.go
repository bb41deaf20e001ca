// wrapLabels.go
package main

import (
	"log"
	"strings"

	"github.com/beevik/etree"
)

// Text fit policy. The ratios are tuned for the Times-family labels Gephi
// exports; recalibrate here, not inside the wrap algorithm.
const (
	charWidthRatio   = 0.6  // average glyph width as a fraction of font size
	wrapSafetyFactor = 0.95 // margin kept inside the circle
	lineHeightRatio  = 1.2

	defaultLabelFontSize = 12.0

	minAutoFontSize = 4.0
	maxAutoFontSize = 100.0
	autoFontStep    = 0.5
)

// adjustNodeLabels pairs each circle in the nodes group with the label of
// the same class and reflows labels that overflow their circle into tspan
// lines centered on the node. With autoFontSize set, each label is first
// resized to the largest font that fits its circle. Returns the number of
// labels changed.
//
// Glyphs without labels and labels without glyphs are skipped; missing
// groups skip the whole pass with a warning.
func adjustNodeLabels(root *etree.Element, autoFontSize bool) int {
	nodesGroup := root.FindElement(".//g[@id='nodes']")
	labelsGroup := root.FindElement(".//g[@id='node-labels']")
	if nodesGroup == nil || labelsGroup == nil {
		log.Println("Warning: nodes or labels group not found, skipping text wrapping")
		return 0
	}

	glyphs := collectNodeGlyphs(nodesGroup)

	modified := 0
	for _, label := range collectLabelTexts(labelsGroup) {
		glyph, ok := glyphs[label.ID]
		if !ok {
			continue
		}
		if rewriteLabel(label, glyph, autoFontSize) {
			modified++
		}
	}
	return modified
}

// collectNodeGlyphs indexes the node circles by their class attribute.
func collectNodeGlyphs(group *etree.Element) map[string]NodeGlyph {
	glyphs := make(map[string]NodeGlyph)
	for _, circle := range group.FindElements(".//circle") {
		id := circle.SelectAttrValue("class", "")
		if id == "" {
			continue
		}
		glyphs[id] = NodeGlyph{
			ID: id,
			CX: parseFloatAttr(circle, "cx", 0),
			CY: parseFloatAttr(circle, "cy", 0),
			R:  parseFloatAttr(circle, "r", 0),
		}
	}
	return glyphs
}

// collectLabelTexts gathers the label text elements carrying both an id
// and visible content, in document order.
func collectLabelTexts(group *etree.Element) []LabelText {
	var labels []LabelText
	for _, text := range group.FindElements(".//text") {
		id := text.SelectAttrValue("class", "")
		content := strings.TrimSpace(text.Text())
		if id == "" || content == "" {
			continue
		}
		labels = append(labels, LabelText{
			ID:       id,
			Content:  content,
			FontSize: parseFloatAttr(text, "font-size", defaultLabelFontSize),
			elem:     text,
		})
	}
	return labels
}

// rewriteLabel applies the optional font-size pass and the wrap pass to
// one glyph/label pair. Reports whether the element changed.
func rewriteLabel(label LabelText, glyph NodeGlyph, autoFontSize bool) bool {
	diameter := glyph.R * 2
	fontSize := label.FontSize
	lines := wrapLabel(label.Content, maxCharsPerLine(fontSize, diameter))

	changed := false
	if autoFontSize {
		optimal := optimalFontSizeForLines(lines, diameter)
		if optimal != fontSize {
			label.elem.CreateAttr("font-size", formatCoord(optimal))
			fontSize = optimal
			lines = wrapLabel(label.Content, maxCharsPerLine(fontSize, diameter))
			changed = true
			log.Printf("  Auto-adjusted font size for node '%s': %s -> %spt", label.ID, truncateForLog(label.Content), formatCoord(optimal))
		}
	}

	if len(lines) < 2 {
		return changed
	}

	height := lineHeight(fontSize)
	anchorX := label.elem.SelectAttrValue("x", formatCoord(glyph.CX))
	anchorY := parseFloatAttr(label.elem, "y", glyph.CY)
	startY := anchorY - float64(len(lines)-1)*height/2

	label.elem.SetText("")
	for i, line := range lines {
		tspan := label.elem.CreateElement("tspan")
		tspan.CreateAttr("x", anchorX)
		tspan.CreateAttr("y", formatCoord(startY+float64(i)*height))
		tspan.CreateAttr("text-anchor", "middle")
		tspan.CreateAttr("dominant-baseline", "central")
		tspan.SetText(line)
	}
	log.Printf("  Wrapped node '%s': %s", label.ID, truncateForLog(label.Content))
	return true
}

// maxCharsPerLine is how many characters of fontSize text fit across the
// circle once the safety margin is applied. Zero or negative means the
// glyph is too small to wrap into.
func maxCharsPerLine(fontSize, diameter float64) int {
	charWidth := fontSize * charWidthRatio
	if charWidth <= 0 {
		return 0
	}
	return int(diameter * wrapSafetyFactor / charWidth)
}

// wrapLabel greedily fills lines up to maxChars runes, counting one rune
// for each separating space. A single word longer than maxChars is not
// split; it overflows its line. Content that already fits, an empty word
// list, or a non-positive maxChars all come back as a single line.
func wrapLabel(text string, maxChars int) []string {
	if maxChars <= 0 || len([]rune(text)) <= maxChars {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := words[0]
	currentLen := len([]rune(words[0]))
	for _, word := range words[1:] {
		wordLen := len([]rune(word))
		if currentLen+1+wordLen > maxChars {
			lines = append(lines, current)
			current = word
			currentLen = wordLen
		} else {
			current += " " + word
			currentLen += 1 + wordLen
		}
	}
	return append(lines, current)
}

// optimalFontSize binary-searches the largest font size whose estimated
// text width and line height both fit the circle with the safety margin
// applied. The search moves in half-point steps between minAutoFontSize
// and maxAutoFontSize.
func optimalFontSize(text string, diameter float64) float64 {
	available := diameter * wrapSafetyFactor
	low, high := minAutoFontSize, maxAutoFontSize
	best := minAutoFontSize
	for low <= high {
		mid := (low + high) / 2
		if estimateTextWidth(text, mid) <= available && lineHeight(mid) <= available {
			best = mid
			low = mid + autoFontStep
		} else {
			high = mid - autoFontStep
		}
	}
	return best
}

// optimalFontSizeForLines sizes a whole label: multi-line labels take the
// smallest per-line optimum so every line fits.
func optimalFontSizeForLines(lines []string, diameter float64) float64 {
	best := optimalFontSize(lines[0], diameter)
	for _, line := range lines[1:] {
		if size := optimalFontSize(line, diameter); size < best {
			best = size
		}
	}
	return best
}
