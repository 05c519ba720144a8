package visualization

import (
	"github.com/dd0wney/lognet/pkg/network"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
	Seed       int64   // Seed for iterative algorithms; equal seeds give equal layouts
}

// Layout interface for different layout algorithms
type Layout interface {
	ComputeLayout(n *network.Network) (map[string]Position, error)
}

// Visualization is a network together with computed node positions and an
// optional route whose edges are drawn with emphasis.
type Visualization struct {
	Network   *network.Network
	Positions map[string]Position
	Highlight []string // route node sequence, or nil
}
