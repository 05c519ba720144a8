package visualization

import "encoding/json"

// ExportJSON exports the visualization for external renderers: nodes with
// kind and position, edges with weight, and the highlighted route.
func (v *Visualization) ExportJSON() ([]byte, error) {
	type NodeViz struct {
		Name string  `json:"name"`
		Kind string  `json:"kind"`
		X    float64 `json:"x"`
		Y    float64 `json:"y"`
	}

	type EdgeViz struct {
		From   string  `json:"from"`
		To     string  `json:"to"`
		Weight float64 `json:"weight"`
	}

	type VizData struct {
		Nodes     []NodeViz `json:"nodes"`
		Edges     []EdgeViz `json:"edges"`
		Highlight []string  `json:"highlight,omitempty"`
	}

	data := VizData{Highlight: v.Highlight}

	for _, node := range v.Network.Nodes() {
		pos := v.Positions[node.Name]
		data.Nodes = append(data.Nodes, NodeViz{
			Name: node.Name,
			Kind: node.Kind.String(),
			X:    pos.X,
			Y:    pos.Y,
		})
	}

	for _, edge := range v.Network.Edges() {
		data.Edges = append(data.Edges, EdgeViz{
			From:   edge.From,
			To:     edge.To,
			Weight: edge.Weight,
		})
	}

	return json.MarshalIndent(data, "", "  ")
}
