// processSVG.go
package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// ProcessSVG rewrites one Gephi SVG export: node labels are wrapped to
// their circles, the layer legend is placed in the top-right corner, and
// the result is written next to the input, never over it.
//
// A frame that cannot be resolved skips only the legend. The wrapped,
// legendless document is still written and the geometry error comes back
// together with the output path, so the caller sees both.
func ProcessSVG(layers []LayerColor, svgPath string, opts ProcessOptions) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(svgPath); err != nil {
		return "", fmt.Errorf("parsing SVG file '%s': %w", svgPath, err)
	}
	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("parsing SVG file '%s': no root element", svgPath)
	}

	if opts.AutoFontSize {
		log.Println("Auto-adjusting node label font sizes and checking text wrapping...")
	} else {
		log.Println("Checking and adjusting node label text...")
	}
	modified := adjustNodeLabels(root, opts.AutoFontSize)
	if modified > 0 {
		log.Printf("Adjusted %d node labels", modified)
	} else {
		log.Println("All node labels already fit, no adjustment needed")
	}

	frame, geoErr := resolveCanvasFrame(root)
	if geoErr == nil {
		spec := buildLegendSpec(layers, frame)
		if err := appendLegendGroup(root, generateLegendSVG(spec)); err != nil {
			return "", err
		}
		log.Printf("Placed legend with %d entries at (%s, %s)", len(spec.Entries), formatCoord(spec.X), formatCoord(spec.Y))
	} else {
		log.Println("Skipping legend placement, canvas frame unresolved")
	}

	outPath := resolveOutputPath(svgPath, opts.OutputPath)
	ensureXMLDeclaration(doc)
	doc.Indent(2)
	if err := doc.WriteToFile(outPath); err != nil {
		return "", fmt.Errorf("writing output file '%s': %w", outPath, err)
	}
	log.Printf("Saved SVG file: %s", outPath)

	return outPath, geoErr
}

// appendLegendGroup parses the composer's markup fragment and attaches its
// root group as the document root's last child.
func appendLegendGroup(root *etree.Element, markup []byte) error {
	frag := etree.NewDocument()
	if err := frag.ReadFromBytes(markup); err != nil {
		return fmt.Errorf("parsing legend markup: %w", err)
	}
	group := frag.Root()
	if group == nil {
		return fmt.Errorf("parsing legend markup: empty fragment")
	}
	root.AddChild(group)
	return nil
}

// ensureXMLDeclaration keeps an xml declaration at the top of the
// document, adding one when the source file had none.
func ensureXMLDeclaration(doc *etree.Document) {
	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	pi := doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.RemoveChild(pi)
	doc.InsertChildAt(0, pi)
}

// resolveOutputPath picks the output file location. An explicit path that
// would overwrite the source is redirected to the derived name instead.
func resolveOutputPath(svgPath, requested string) string {
	out := requested
	if out == "" {
		out = defaultOutputPath(svgPath)
	}
	absOut, errOut := filepath.Abs(out)
	absSrc, errSrc := filepath.Abs(svgPath)
	if errOut == nil && errSrc == nil && absOut == absSrc {
		out = defaultOutputPath(svgPath)
		log.Printf("Warning: output file cannot be the same as the source file, renamed to: %s", out)
	}
	return out
}

// defaultOutputPath derives "<name>_with_legend.svg" beside the input.
func defaultOutputPath(svgPath string) string {
	return strings.TrimSuffix(svgPath, filepath.Ext(svgPath)) + "_with_legend.svg"
}
