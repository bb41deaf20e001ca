package main

import (
	"math"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

func TestWrapLabel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		want     []string
	}{
		{"FitsUnchanged", "Short", 10, []string{"Short"}},
		{"ExactFit", "abcde", 5, []string{"abcde"}},
		{"SimpleWrap", "alpha beta gamma", 10, []string{"alpha beta", "gamma"}},
		{"WordPerLine", "a b c", 2, []string{"a", "b", "c"}},
		{"OverlongWordUnsplit", "extraordinary", 5, []string{"extraordinary"}},
		{"OverlongWordMidText", "an extraordinary day", 5, []string{"an", "extraordinary", "day"}},
		{"NonPositiveLimit", "anything at all", 0, []string{"anything at all"}},
		{"OnlySpaces", "   ", 1, []string{"   "}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := wrapLabel(tc.text, tc.maxChars)
			if len(got) != len(tc.want) {
				t.Fatalf("Expected %d lines, got %d: %q", len(tc.want), len(got), got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("Line %d mismatch: got %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestMaxCharsPerLine(t *testing.T) {
	tests := []struct {
		name     string
		fontSize float64
		diameter float64
		want     int
	}{
		{"TypicalNode", 12, 80, 10},
		{"SmallNode", 12, 20, 2},
		{"ZeroDiameter", 12, 0, 0},
		{"ZeroFontSize", 0, 80, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := maxCharsPerLine(tc.fontSize, tc.diameter); got != tc.want {
				t.Errorf("maxCharsPerLine(%g, %g) = %d, want %d", tc.fontSize, tc.diameter, got, tc.want)
			}
		})
	}
}

func TestWrapBoundarySmallGlyph(t *testing.T) {
	const diameter = 20.0 // radius 10
	maxChars := maxCharsPerLine(defaultLabelFontSize, diameter)
	if maxChars <= 0 {
		t.Fatalf("Expected a positive character budget, got %d", maxChars)
	}
	lines := wrapLabel("a b c", maxChars)
	if len(lines) < 2 {
		t.Fatalf("Expected the label to wrap into at least 2 lines, got %q", lines)
	}
	limit := diameter * wrapSafetyFactor
	for i, line := range lines {
		if w := estimateTextWidth(line, defaultLabelFontSize); w > limit {
			t.Errorf("Line %d %q estimated at %g, over the %g limit", i, line, w, limit)
		}
	}
}

const wrapFixture = `<?xml version="1.0" encoding="utf-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500">
  <g id="nodes">
    <circle class="n1" cx="100" cy="100" r="40" fill="#ff0000"/>
    <circle class="n2" cx="300" cy="300" r="40" fill="#00ff00"/>
    <circle class="n3" cx="400" cy="100" r="2" fill="#0000ff"/>
  </g>
  <g id="node-labels">
    <text class="n1" x="100" y="100" font-size="12" fill="#000000">alpha beta gamma delta</text>
    <text class="n2" x="300" y="300" font-size="12" fill="#000000">Fits</text>
    <text class="n3" x="400" y="100" font-size="12" fill="#000000">tiny circle label text</text>
    <text class="orphan" x="50" y="50" font-size="12" fill="#000000">orphan label text here</text>
  </g>
</svg>
`

func labelByClass(t *testing.T, root *etree.Element, class string) *etree.Element {
	t.Helper()
	label := root.FindElement(".//text[@class='" + class + "']")
	if label == nil {
		t.Fatalf("Label %q not found", class)
	}
	return label
}

func TestAdjustNodeLabels(t *testing.T) {
	root := svgRoot(t, wrapFixture)
	modified := adjustNodeLabels(root, false)
	if modified != 1 {
		t.Errorf("Expected 1 adjusted label, got %d", modified)
	}

	t.Run("WrapsLongLabel", func(t *testing.T) {
		label := labelByClass(t, root, "n1")
		if rest := strings.TrimSpace(label.Text()); rest != "" {
			t.Errorf("Expected the direct text to be cleared, got %q", rest)
		}
		tspans := label.SelectElements("tspan")
		wantLines := []string{"alpha beta", "gamma", "delta"}
		if len(tspans) != len(wantLines) {
			t.Fatalf("Expected %d tspans, got %d", len(wantLines), len(tspans))
		}
		height := 12 * lineHeightRatio
		for i, span := range tspans {
			if span.Text() != wantLines[i] {
				t.Errorf("Line %d mismatch: got %q, want %q", i, span.Text(), wantLines[i])
			}
			if x := span.SelectAttrValue("x", ""); x != "100" {
				t.Errorf("Line %d: expected x=100, got %q", i, x)
			}
			wantY := 100 - height + float64(i)*height
			if y := attrFloat(t, span, "y"); math.Abs(y-wantY) > 1e-9 {
				t.Errorf("Line %d: expected y near %g, got %g", i, wantY, y)
			}
			if a := span.SelectAttrValue("text-anchor", ""); a != "middle" {
				t.Errorf("Line %d: expected text-anchor=middle, got %q", i, a)
			}
			if b := span.SelectAttrValue("dominant-baseline", ""); b != "central" {
				t.Errorf("Line %d: expected dominant-baseline=central, got %q", i, b)
			}
		}
	})

	t.Run("LeavesShortLabelAlone", func(t *testing.T) {
		label := labelByClass(t, root, "n2")
		if label.Text() != "Fits" || len(label.SelectElements("tspan")) != 0 {
			t.Errorf("Expected the short label untouched, got %q with %d tspans",
				label.Text(), len(label.SelectElements("tspan")))
		}
	})

	t.Run("SkipsDegenerateRadius", func(t *testing.T) {
		label := labelByClass(t, root, "n3")
		if len(label.SelectElements("tspan")) != 0 {
			t.Error("Expected no wrapping when the circle cannot hold a single character")
		}
	})

	t.Run("SkipsLabelWithoutGlyph", func(t *testing.T) {
		label := labelByClass(t, root, "orphan")
		if label.Text() != "orphan label text here" {
			t.Errorf("Expected the orphan label untouched, got %q", label.Text())
		}
	})
}

func TestAdjustNodeLabelsMissingGroups(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"NoLabelGroup", `<svg xmlns="http://www.w3.org/2000/svg"><g id="nodes"></g></svg>`},
		{"NoNodeGroup", `<svg xmlns="http://www.w3.org/2000/svg"><g id="node-labels"></g></svg>`},
		{"NeitherGroup", `<svg xmlns="http://www.w3.org/2000/svg"></svg>`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := adjustNodeLabels(svgRoot(t, tc.markup), false); got != 0 {
				t.Errorf("Expected no adjustments, got %d", got)
			}
		})
	}
}

func TestAdjustNodeLabelsAutoFontSize(t *testing.T) {
	t.Run("GrowsUnderfilledLabel", func(t *testing.T) {
		const markup = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500">
  <g id="nodes">
    <circle class="n1" cx="250" cy="250" r="100" fill="#ff0000"/>
  </g>
  <g id="node-labels">
    <text class="n1" x="250" y="250" font-size="12" fill="#000000">Hi</text>
  </g>
</svg>`
		root := svgRoot(t, markup)
		if modified := adjustNodeLabels(root, true); modified != 1 {
			t.Errorf("Expected 1 adjusted label, got %d", modified)
		}
		label := labelByClass(t, root, "n1")
		size := attrFloat(t, label, "font-size")
		available := 200 * wrapSafetyFactor
		if size <= 12 {
			t.Errorf("Expected the font to grow beyond 12, got %g", size)
		}
		if size <= 99 || size > maxAutoFontSize {
			t.Errorf("Expected a size just under the search ceiling, got %g", size)
		}
		if w := estimateTextWidth("Hi", size); w > available+1e-9 {
			t.Errorf("Grown label no longer fits: width %g exceeds %g", w, available)
		}
		if h := lineHeight(size); h > available+1e-9 {
			t.Errorf("Grown label no longer fits: height %g exceeds %g", h, available)
		}
		if label.Text() != "Hi" || len(label.SelectElements("tspan")) != 0 {
			t.Error("Expected the grown label to stay on a single line")
		}
	})

	t.Run("ShrinksOverfilledLabel", func(t *testing.T) {
		const markup = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500">
  <g id="nodes">
    <circle class="n1" cx="250" cy="250" r="10" fill="#ff0000"/>
  </g>
  <g id="node-labels">
    <text class="n1" x="250" y="250" font-size="12" fill="#000000">tiny circle label text</text>
  </g>
</svg>`
		root := svgRoot(t, markup)
		if modified := adjustNodeLabels(root, true); modified != 1 {
			t.Errorf("Expected 1 adjusted label, got %d", modified)
		}
		label := labelByClass(t, root, "n1")
		size := attrFloat(t, label, "font-size")
		if size >= 12 {
			t.Errorf("Expected the font to shrink below 12, got %g", size)
		}
		if size < minAutoFontSize {
			t.Errorf("Expected the floor of %g to hold, got %g", minAutoFontSize, size)
		}
		tspans := label.SelectElements("tspan")
		if len(tspans) != 4 {
			t.Fatalf("Expected 4 wrapped lines, got %d", len(tspans))
		}
		for i, span := range tspans {
			if x := span.SelectAttrValue("x", ""); x != "250" {
				t.Errorf("Line %d: expected x=250, got %q", i, x)
			}
		}
	})
}
