// generateLegend.go
package main

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo/float"
)

// Legend policy. Position and sizing are fixed, not configurable.
const (
	legendMargin        = 50.0 // gap from the frame's top and right edges
	legendWidth         = 300.0
	legendTitleFontSize = 20.0
	legendItemFontSize  = 16.0
	legendSwatchSize    = 24.0
	legendItemSpacing   = 40.0 // row pitch
	legendPadding       = 15.0

	legendSwatchRowOffset = 3.0  // swatch top relative to the row anchor
	legendLabelRowOffset  = 20.0 // label baseline relative to the row anchor
)

const legendFontFamily = "'Times New Roman', serif"

// buildLegendSpec pins the legend box to the frame's top-right corner.
// The box may stick out of a frame narrower than the legend; it is not
// clamped back inside.
func buildLegendSpec(entries []LayerColor, frame CanvasFrame) LegendSpec {
	return LegendSpec{
		X:       frame.MinX + frame.Width - legendWidth - legendMargin,
		Y:       frame.MinY + legendMargin,
		Width:   legendWidth,
		Height:  float64(len(entries))*legendItemSpacing + 2*legendPadding + legendTitleFontSize + 10,
		Entries: entries,
	}
}

// rowY is the vertical anchor of entry row i inside the legend box.
func (s LegendSpec) rowY(i int) float64 {
	return s.Y + legendPadding + legendTitleFontSize + 15 + float64(i)*legendItemSpacing
}

// generateLegendSVG emits the legend as one standalone <g> fragment:
// background box, title, then a color swatch and text label per layer. An
// empty entry list still produces the box and title.
func generateLegendSVG(spec LegendSpec) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	canvas.Group(`id="legend"`, `class="legend"`)
	canvas.Rect(spec.X, spec.Y, spec.Width, spec.Height,
		"fill:white;fill-opacity:0.9;stroke:black;stroke-width:2")
	canvas.Text(spec.X+legendPadding, spec.Y+legendPadding+legendTitleFontSize, "Layer",
		fmt.Sprintf("font-size:%gpx;font-weight:bold;fill:#000000;font-family:%s", legendTitleFontSize, legendFontFamily))

	for i, entry := range spec.Entries {
		rowY := spec.rowY(i)
		canvas.Rect(spec.X+legendPadding, rowY+legendSwatchRowOffset, legendSwatchSize, legendSwatchSize,
			fmt.Sprintf("fill:%s;stroke:#000000;stroke-width:1", entry.Color))
		canvas.Text(spec.X+legendPadding+legendSwatchSize+10, rowY+legendLabelRowOffset, entry.Layer,
			fmt.Sprintf("font-size:%gpx;fill:#000000;font-family:%s", legendItemFontSize, legendFontFamily))
	}

	canvas.Gend()
	return buf.Bytes()
}
