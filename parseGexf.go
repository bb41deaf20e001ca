// parseGexf.go
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/beevik/etree"
)

// ParseGexf reads a GEXF graph file and reduces the per-node layer/color
// observations into an ordered layer list. The first color seen for a
// layer is kept; later divergent colors are reported as conflicts and
// logged, but never fail the run.
func ParseGexf(path string) ([]LayerColor, []ColorConflict, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, nil, fmt.Errorf("parsing GEXF file '%s': %w", path, err)
	}
	if doc.Root() == nil {
		return nil, nil, fmt.Errorf("parsing GEXF file '%s': no root element", path)
	}

	layers, conflicts := extractLayerColors(doc.Root())
	for _, c := range conflicts {
		log.Printf("Warning: layer '%s' has different color values!", c.Layer)
		log.Printf("  Existing color: %s", c.Kept)
		log.Printf("  New color: %s", c.Conflicting)
	}
	return layers, conflicts, nil
}

// extractLayerColors walks every node element, reading the layer attvalue
// and the viz color annotation. Nodes missing either contribute nothing.
// Output order is the document order in which distinct layers first
// appear.
func extractLayerColors(root *etree.Element) ([]LayerColor, []ColorConflict) {
	layerID := resolveLayerAttrID(root)
	vizPrefix := resolveVizPrefix(root)

	nodes := root.FindElements(".//node")
	log.Printf("Found %d nodes", len(nodes))

	var layers []LayerColor
	var conflicts []ColorConflict
	index := make(map[string]int)

	for _, node := range nodes {
		obs, ok := observeNode(node, layerID, vizPrefix)
		if !ok {
			continue
		}
		at, seen := index[obs.Layer]
		if !seen {
			index[obs.Layer] = len(layers)
			layers = append(layers, LayerColor{Layer: obs.Layer, Color: obs.Color})
			continue
		}
		if layers[at].Color != obs.Color {
			conflicts = append(conflicts, ColorConflict{
				Layer:       obs.Layer,
				Kept:        layers[at].Color,
				Conflicting: obs.Color,
			})
		}
	}
	return layers, conflicts
}

// observeNode extracts one node's layer label and color. ok is false when
// either is missing, matching the skip policy for partially tagged nodes.
func observeNode(node *etree.Element, layerID, vizPrefix string) (NodeObservation, bool) {
	att := findAttValue(node, layerID)
	if att == nil && layerID != "layer" {
		att = findAttValue(node, "layer")
	}
	if att == nil {
		return NodeObservation{}, false
	}
	layer := att.SelectAttrValue("value", "")
	if layer == "" {
		return NodeObservation{}, false
	}

	colorElem := node.FindElement(".//" + vizPrefix + ":color")
	if colorElem == nil {
		return NodeObservation{}, false
	}
	return NodeObservation{
		Layer: layer,
		Color: RGB{
			R: parseIntAttr(colorElem, "r", 0),
			G: parseIntAttr(colorElem, "g", 0),
			B: parseIntAttr(colorElem, "b", 0),
		},
	}, true
}

// findAttValue returns the node's attvalue child whose for attribute
// equals key. Declared ids are document data and can hold characters a
// path filter cannot, so the match stays in Go.
func findAttValue(node *etree.Element, key string) *etree.Element {
	for _, att := range node.FindElements(".//attvalue") {
		if att.SelectAttrValue("for", "") == key {
			return att
		}
	}
	return nil
}

// resolveLayerAttrID maps the declared node attribute titled "layer" to
// the id its attvalues reference. Files that reference the attribute by
// the literal key "layer" need no declaration.
func resolveLayerAttrID(root *etree.Element) string {
	for _, path := range []string{".//attributes[@class='node']/attribute", ".//attributes/attribute"} {
		for _, attr := range root.FindElements(path) {
			if !strings.EqualFold(attr.SelectAttrValue("title", ""), "layer") {
				continue
			}
			if id := attr.SelectAttrValue("id", ""); id != "" {
				return id
			}
		}
	}
	return "layer"
}

// resolveVizPrefix finds the prefix bound to the GEXF viz namespace on the
// root element. Gephi emits xmlns:viz="http://gexf.net/1.3/viz".
func resolveVizPrefix(root *etree.Element) string {
	for _, a := range root.Attr {
		if a.Space == "xmlns" && strings.HasSuffix(a.Value, "/viz") {
			return a.Key
		}
	}
	return "viz"
}
