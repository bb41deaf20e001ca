package main

import (
	"fmt"

	"github.com/beevik/etree"
)

// --- Graph Attribute Model ---

// RGB is a 0-255 color triple read from a viz color annotation.
type RGB struct {
	R, G, B int
}

// String renders the color the way the SVG output consumes it.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// NodeObservation is a single node's (layer, color) reading. Many
// observations reduce into one LayerColor per distinct layer.
type NodeObservation struct {
	Layer string
	Color RGB
}

// LayerColor is a distinct layer label with its reconciled color. The
// first color observed for a layer is the one that sticks.
type LayerColor struct {
	Layer string
	Color RGB
}

// ColorConflict records a node that reported a different color for an
// already-seen layer. The kept color stays; the run continues.
type ColorConflict struct {
	Layer       string
	Kept        RGB
	Conflicting RGB
}

// --- SVG Canvas Model ---

// CanvasFrame is the resolved coordinate rectangle of the target SVG.
type CanvasFrame struct {
	MinX, MinY    float64
	Width, Height float64
}

// LegendSpec pins the legend's bounding box and entry rows for one frame
// and one ordered layer list. Coordinates are absolute document units.
type LegendSpec struct {
	X, Y    float64 // top-left corner of the background box
	Width   float64
	Height  float64
	Entries []LayerColor
}

// NodeGlyph is a circular node shape from the nodes group.
type NodeGlyph struct {
	ID     string // class attribute shared with the matching label
	CX, CY float64
	R      float64
}

// LabelText is a node label, paired with its glyph by matching id. It
// keeps a handle on the underlying text element so the wrap pass can
// rewrite it in place.
type LabelText struct {
	ID       string
	Content  string
	FontSize float64
	elem     *etree.Element
}

// --- Run Options ---

// ProcessOptions carries the SVG processing knobs from the CLI.
type ProcessOptions struct {
	OutputPath   string // empty derives "<input>_with_legend.svg"
	AutoFontSize bool
}
