package visualization

import (
	"fmt"
	"os"
	"strings"

	"github.com/dd0wney/lognet/pkg/network"
)

// Node styling per kind, mirroring the conventional report colors:
// depot red, customers green, crossings light blue.
var kindStyles = map[network.Kind]struct {
	Fill   string
	Radius float64
}{
	network.KindDepot:    {Fill: "#d62728", Radius: 28},
	network.KindCustomer: {Fill: "#2ca02c", Radius: 24},
	network.KindCrossing: {Fill: "#add8e6", Radius: 20},
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// ExportSVG renders the visualization as a static SVG image: every node
// colored by kind, every edge labeled with its travel time, and the
// highlighted route drawn thick and red on top of the base edges.
// Iteration follows the network's sorted order, so output is
// deterministic for a given layout.
func (v *Visualization) ExportSVG(width, height float64) []byte {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n", width, height, width, height))
	b.WriteString(`  <rect width="100%" height="100%" fill="white"/>` + "\n")
	b.WriteString(fmt.Sprintf(`  <text x="%g" y="28" font-family="sans-serif" font-size="20" font-weight="bold" text-anchor="middle">Logistics Distribution Network</text>`+"\n", width/2))

	highlighted := routeEdgeSet(v.Highlight)

	// Base edges first so highlights and nodes draw over them
	for _, e := range v.Network.Edges() {
		from, to := v.Positions[e.From], v.Positions[e.To]
		b.WriteString(fmt.Sprintf(`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999999" stroke-width="2" stroke-opacity="0.5"/>`+"\n",
			from.X, from.Y, to.X, to.Y))
	}
	for _, e := range v.Network.Edges() {
		if !highlighted[network.EndpointPair{A: e.From, B: e.To}] {
			continue
		}
		from, to := v.Positions[e.From], v.Positions[e.To]
		b.WriteString(fmt.Sprintf(`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#d62728" stroke-width="4" stroke-opacity="0.8"/>`+"\n",
			from.X, from.Y, to.X, to.Y))
	}

	// Edge weight labels at midpoints
	for _, e := range v.Network.Edges() {
		from, to := v.Positions[e.From], v.Positions[e.To]
		midX, midY := (from.X+to.X)/2, (from.Y+to.Y)/2
		b.WriteString(fmt.Sprintf(`  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="#555555" text-anchor="middle">%g min</text>`+"\n",
			midX, midY-4, e.Weight))
	}

	// Nodes with labels
	for _, node := range v.Network.Nodes() {
		pos := v.Positions[node.Name]
		style := kindStyles[node.Kind]
		b.WriteString(fmt.Sprintf(`  <circle cx="%.1f" cy="%.1f" r="%g" fill="%s" fill-opacity="0.9" stroke="#333333"/>`+"\n",
			pos.X, pos.Y, style.Radius, style.Fill))
		b.WriteString(fmt.Sprintf(`  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12" font-weight="bold" text-anchor="middle">%s</text>`+"\n",
			pos.X, pos.Y+style.Radius+14, xmlEscaper.Replace(node.Name)))
	}

	writeLegend(&b)

	b.WriteString("</svg>\n")
	return []byte(b.String())
}

// routeEdgeSet converts a route node sequence into the set of edges it
// traverses, endpoints in canonical order.
func routeEdgeSet(route []string) map[network.EndpointPair]bool {
	set := make(map[network.EndpointPair]bool)
	for i := 0; i+1 < len(route); i++ {
		a, b := route[i], route[i+1]
		if b < a {
			a, b = b, a
		}
		set[network.EndpointPair{A: a, B: b}] = true
	}
	return set
}

// writeLegend emits the fixed kind legend in the upper-left corner
func writeLegend(b *strings.Builder) {
	entries := []struct {
		label string
		kind  network.Kind
	}{
		{"Depot", network.KindDepot},
		{"Customer", network.KindCustomer},
		{"Crossing", network.KindCrossing},
	}
	for i, entry := range entries {
		y := 52.0 + float64(i)*22
		style := kindStyles[entry.kind]
		b.WriteString(fmt.Sprintf(`  <circle cx="24" cy="%.1f" r="7" fill="%s" stroke="#333333"/>`+"\n", y, style.Fill))
		b.WriteString(fmt.Sprintf(`  <text x="38" y="%.1f" font-family="sans-serif" font-size="13">%s</text>`+"\n", y+4, entry.label))
	}
}

// WriteFile writes a rendered artifact to disk.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write visualization %s: %w", path, err)
	}
	return nil
}
