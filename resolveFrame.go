// resolveFrame.go
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// errCanvasGeometry marks an SVG whose coordinate frame cannot be
// resolved. Legend placement is impossible without a frame; label
// wrapping is not, so callers keep that pass alive.
var errCanvasGeometry = errors.New("cannot determine canvas size")

// resolveCanvasFrame reads the SVG root's coordinate frame. A well-formed
// viewBox wins; otherwise explicit width/height attributes (unit suffixes
// stripped) with the origin at (0,0); otherwise the geometry error.
func resolveCanvasFrame(root *etree.Element) (CanvasFrame, error) {
	if frame, ok := frameFromViewBox(root.SelectAttrValue("viewBox", "")); ok {
		return frame, nil
	}
	if frame, ok := frameFromSize(root.SelectAttrValue("width", ""), root.SelectAttrValue("height", "")); ok {
		return frame, nil
	}
	return CanvasFrame{}, fmt.Errorf("%w: the SVG root has no usable viewBox or width/height attributes", errCanvasGeometry)
}

// frameFromViewBox parses "minX minY width height". All four numbers must
// parse and width/height must be positive.
func frameFromViewBox(viewBox string) (CanvasFrame, bool) {
	fields := strings.Fields(viewBox)
	if len(fields) != 4 {
		return CanvasFrame{}, false
	}
	nums := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return CanvasFrame{}, false
		}
		nums[i] = v
	}
	if nums[2] <= 0 || nums[3] <= 0 {
		return CanvasFrame{}, false
	}
	return CanvasFrame{MinX: nums[0], MinY: nums[1], Width: nums[2], Height: nums[3]}, true
}

// frameFromSize parses the width/height attribute fallback, e.g.
// width="800px" height="600".
func frameFromSize(width, height string) (CanvasFrame, bool) {
	w, errW := strconv.ParseFloat(stripUnit(width), 64)
	h, errH := strconv.ParseFloat(stripUnit(height), 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return CanvasFrame{}, false
	}
	return CanvasFrame{Width: w, Height: h}, true
}
