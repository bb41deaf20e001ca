// main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
)

// --- Main Program Logic ---

func main() {
	// --- Argument Parsing using flag package ---
	outputFile := flag.String("o", "", "Output SVG file path (default: \"<svg>_with_legend.svg\" next to the input)")
	pngConvert := flag.Bool("png", false, "Convert the output SVG to PNG")
	pngOutput := flag.String("png-output", "", "PNG output file path (default: output SVG path with .png)")
	dpi := flag.Int("dpi", 300, "PNG output resolution")
	autoFontSize := flag.Bool("auto-font-size", false, "Auto-adjust node label font sizes to fit within node diameter")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <graph.gexf> <image.svg>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nArguments:")
		fmt.Fprintln(os.Stderr, "  <graph.gexf>   Path to the GEXF graph description.")
		fmt.Fprintln(os.Stderr, "  <image.svg>    Path to the Gephi SVG export to annotate.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	gexfFile := args[0]
	svgFile := args[1]

	// --- Layer Extraction ---
	log.Printf("Parsing GEXF file: %s", gexfFile)
	layers, conflicts, err := ParseGexf(gexfFile)
	if err != nil {
		log.Fatalf("Error parsing GEXF: %v", err)
	}
	for _, layer := range layers {
		log.Printf("Layer: %s  Color: %s", layer.Layer, layer.Color)
	}
	log.Printf("Found %d different layers (%d color conflicts)", len(layers), len(conflicts))

	// --- SVG Processing ---
	log.Printf("Processing SVG file: %s", svgFile)
	outputPath, err := ProcessSVG(layers, svgFile, ProcessOptions{
		OutputPath:   *outputFile,
		AutoFontSize: *autoFontSize,
	})
	if err != nil {
		if errors.Is(err, errCanvasGeometry) && outputPath != "" {
			// The wrapped, legendless document is already on disk.
			log.Printf("Error: %v", err)
			log.Printf("Wrote output without legend: %s", outputPath)
			os.Exit(1)
		}
		log.Fatalf("Error processing SVG: %v", err)
	}

	// --- Optional PNG Conversion ---
	if *pngConvert {
		log.Println("Converting SVG to PNG...")
		pngPath, err := convertToPNG(chromeRasterizer{}, outputPath, *pngOutput, *dpi)
		if err != nil {
			if errors.Is(err, errRendererUnavailable) {
				log.Printf("Error: %v", err)
				log.Println("Install Google Chrome or Chromium to enable PNG conversion")
			} else {
				log.Printf("Error: SVG to PNG conversion failed - %v", err)
			}
		} else {
			log.Printf("Output saved to: %s", pngPath)
		}
	}
}
