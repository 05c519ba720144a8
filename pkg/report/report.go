// Package report assembles the four network analyses into a fixed textual
// report. Rendering is deterministic: the same network always produces
// byte-identical output.
package report

import (
	"fmt"
	"strings"

	"github.com/dd0wney/lognet/pkg/algorithms"
	"github.com/dd0wney/lognet/pkg/network"
)

const (
	ruleWidth = 70
	heavyRule = "="
	lightRule = "-"
)

// Report captures the analysis results for one network.
type Report struct {
	Stats              network.Statistics
	Routes             []algorithms.CustomerRoute
	ArticulationPoints []string
	Bridges            []network.EndpointPair
	Centrality         []algorithms.RankedNode
}

// Build runs the full analysis battery against a network.
func Build(n *network.Network) (*Report, error) {
	routes, err := algorithms.DeliveryRoutes(n)
	if err != nil {
		return nil, fmt.Errorf("optimize delivery routes: %w", err)
	}

	return &Report{
		Stats:              n.Statistics(),
		Routes:             routes,
		ArticulationPoints: algorithms.ArticulationPoints(n),
		Bridges:            algorithms.Bridges(n),
		Centrality:         algorithms.RankCentrality(algorithms.BetweennessCentrality(n)),
	}, nil
}

// Render formats the report. Section order is fixed: counts, optimized
// routes, critical points, centrality ranking (descending).
func (r *Report) Render() string {
	var b strings.Builder

	heavy := strings.Repeat(heavyRule, ruleWidth)
	light := strings.Repeat(lightRule, ruleWidth)

	b.WriteString(heavy + "\n")
	b.WriteString("LOGISTICS NETWORK ANALYSIS REPORT\n")
	b.WriteString(heavy + "\n\n")

	b.WriteString(fmt.Sprintf("Number of nodes: %d\n", r.Stats.NodeCount))
	b.WriteString(fmt.Sprintf("Number of edges: %d\n\n", r.Stats.EdgeCount))

	b.WriteString(light + "\n")
	b.WriteString("OPTIMIZED DELIVERY ROUTES\n")
	b.WriteString(light + "\n")
	for _, cr := range r.Routes {
		b.WriteString(fmt.Sprintf("\n%s:\n", cr.Customer))
		b.WriteString(fmt.Sprintf("  Route: %s\n", strings.Join(cr.Route.Path, " → ")))
		b.WriteString(fmt.Sprintf("  Total time: %g minutes\n", cr.Route.TotalWeight))
	}
	b.WriteString("\n")

	b.WriteString(light + "\n")
	b.WriteString("CRITICAL NETWORK POINTS\n")
	b.WriteString(light + "\n")
	b.WriteString("\nArticulation points (critical nodes):\n")
	if len(r.ArticulationPoints) > 0 {
		for _, point := range r.ArticulationPoints {
			b.WriteString(fmt.Sprintf("  - %s\n", point))
		}
	} else {
		b.WriteString("  No articulation points found\n")
	}
	b.WriteString("\nBridges (critical edges):\n")
	if len(r.Bridges) > 0 {
		for _, bridge := range r.Bridges {
			b.WriteString(fmt.Sprintf("  - %s ↔ %s\n", bridge.A, bridge.B))
		}
	} else {
		b.WriteString("  No bridges found\n")
	}
	b.WriteString("\n")

	b.WriteString(light + "\n")
	b.WriteString("NODE CENTRALITY (importance to network flow)\n")
	b.WriteString(light + "\n")
	for _, rn := range r.Centrality {
		b.WriteString(fmt.Sprintf("  %s: %.4f\n", rn.Name, rn.Score))
	}
	b.WriteString("\n")

	b.WriteString(heavy + "\n")

	return b.String()
}
