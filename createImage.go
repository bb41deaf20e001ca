// createImage.go
package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/chromedp/chromedp"
)

// Browsers report screenshots at CSS pixel density; the requested dpi
// scales against this baseline.
const defaultScreenDPI = 96.0

// errRendererUnavailable marks a PNG request with no browser to render
// it. The SVG output is already on disk when this surfaces, so callers
// treat it as a skipped step, not a failed run.
var errRendererUnavailable = errors.New("no Chrome or Chromium browser found")

// Rasterizer turns an assembled SVG document into raster image bytes.
type Rasterizer interface {
	Rasterize(ctx context.Context, svgContent []byte, dpi int) ([]byte, error)
}

// chromeRasterizer renders through a headless Chrome screenshot of the
// svg element, scaled to the requested density.
type chromeRasterizer struct{}

func (chromeRasterizer) Rasterize(ctx context.Context, svgContent []byte, dpi int) ([]byte, error) {
	if _, err := findBrowser(); err != nil {
		return nil, err
	}

	// A base64 data URI loads the SVG directly without a temp file.
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svgContent)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	runCtx, cancelRun := chromedp.NewContext(allocCtx)
	defer cancelRun()

	var screenshotBuf []byte
	scale := float64(dpi) / defaultScreenDPI
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.ScreenshotScale(`svg`, scale, &screenshotBuf, chromedp.ByQuery),
	}

	log.Println("Running chromedp tasks (navigate and screenshot)...")
	if err := chromedp.Run(runCtx, tasks); err != nil {
		return nil, fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(screenshotBuf) == 0 {
		return nil, fmt.Errorf("screenshot buffer is empty, screenshot failed")
	}
	return screenshotBuf, nil
}

// findBrowser checks for a Chrome-family binary before chromedp spends a
// startup attempt on one that is not there. The candidate set tracks
// chromedp's own executable lookup across platforms.
func findBrowser() (string, error) {
	candidates := []string{
		"headless_shell",
		"headless-shell",
		"chromium",
		"chromium-browser",
		"google-chrome",
		"google-chrome-stable",
		"google-chrome-beta",
		"google-chrome-unstable",
		"/usr/bin/google-chrome",
		"chrome",
		"chrome.exe",
		`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
		`C:\Program Files\Google\Chrome\Application\chrome.exe`,
		filepath.Join(os.Getenv("USERPROFILE"), `AppData\Local\Google\Chrome\Application\chrome.exe`),
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", errRendererUnavailable
}

// convertToPNG rasterizes the written SVG file at the requested dpi. The
// PNG lands next to the SVG unless pngPath says otherwise.
func convertToPNG(r Rasterizer, svgPath, pngPath string, dpi int) (string, error) {
	if pngPath == "" {
		pngPath = strings.TrimSuffix(svgPath, filepath.Ext(svgPath)) + ".png"
	}

	content, err := os.ReadFile(svgPath)
	if err != nil {
		return "", fmt.Errorf("reading SVG for conversion '%s': %w", svgPath, err)
	}

	data, err := r.Rasterize(context.Background(), content, dpi)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(pngPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing PNG file '%s': %w", pngPath, err)
	}
	log.Printf("SVG converted to PNG: %s (DPI: %d)", pngPath, dpi)
	return pngPath, nil
}
