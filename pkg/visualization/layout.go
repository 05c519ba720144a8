// Package visualization computes node positions for a logistics network
// and renders the result as a static artifact (SVG, or JSON for external
// renderers). Layouts are seeded so repeat runs produce identical images.
package visualization

import (
	"math"
	"math/rand"

	"github.com/dd0wney/lognet/pkg/network"
)

// ForceDirectedLayout implements force-directed graph layout
// (Fruchterman-Reingold style: pairwise repulsion, spring attraction along
// edges, linear cooling).
type ForceDirectedLayout struct {
	config *LayoutConfig
}

// NewForceDirectedLayout creates a new force-directed layout
func NewForceDirectedLayout(config *LayoutConfig) *ForceDirectedLayout {
	if config.Iterations == 0 {
		config.Iterations = 50
	}
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &ForceDirectedLayout{config: config}
}

// ComputeLayout computes positions using the force-directed algorithm.
// Initial positions come from the configured seed, and nodes are iterated
// in sorted order, so the layout is a pure function of network and config.
func (fdl *ForceDirectedLayout) ComputeLayout(n *network.Network) (map[string]Position, error) {
	names := n.NodeNames()
	if len(names) == 0 {
		return make(map[string]Position), nil
	}
	if len(names) == 1 {
		return map[string]Position{
			names[0]: {X: fdl.config.Width / 2, Y: fdl.config.Height / 2},
		}, nil
	}

	rng := rand.New(rand.NewSource(fdl.config.Seed))

	positions := make(map[string]Position, len(names))
	for _, name := range names {
		positions[name] = Position{
			X: rng.Float64()*(fdl.config.Width-2*fdl.config.Padding) + fdl.config.Padding,
			Y: rng.Float64()*(fdl.config.Height-2*fdl.config.Padding) + fdl.config.Padding,
		}
	}

	k := math.Sqrt((fdl.config.Width * fdl.config.Height) / float64(len(names))) // optimal distance
	temperature := fdl.config.Width / 10.0

	for iter := 0; iter < fdl.config.Iterations; iter++ {
		forces := make(map[string]Position, len(names))

		// Repulsion between all node pairs
		for i, a := range names {
			for j := i + 1; j < len(names); j++ {
				b := names[j]
				dx := positions[a].X - positions[b].X
				dy := positions[a].Y - positions[b].Y
				dist := math.Sqrt(dx*dx + dy*dy)
				if dist < 0.01 {
					dist = 0.01
				}

				force := (k * k) / dist
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[a] = Position{X: forces[a].X + fx, Y: forces[a].Y + fy}
				forces[b] = Position{X: forces[b].X - fx, Y: forces[b].Y - fy}
			}
		}

		// Attraction along edges, applied to both endpoints
		for _, e := range n.Edges() {
			dx := positions[e.From].X - positions[e.To].X
			dy := positions[e.From].Y - positions[e.To].Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < 0.01 {
				continue
			}

			force := (dist * dist) / k
			fx := (dx / dist) * force
			fy := (dy / dist) * force

			forces[e.From] = Position{X: forces[e.From].X - fx, Y: forces[e.From].Y - fy}
			forces[e.To] = Position{X: forces[e.To].X + fx, Y: forces[e.To].Y + fy}
		}

		// Apply forces with cooling
		cool := 1.0 - float64(iter)/float64(fdl.config.Iterations)
		for _, name := range names {
			fx := forces[name].X
			fy := forces[name].Y
			force := math.Sqrt(fx*fx + fy*fy)

			if force > 0 {
				dx := (fx / force) * math.Min(force, temperature) * cool
				dy := (fy / force) * math.Min(force, temperature) * cool
				positions[name] = Position{X: positions[name].X + dx, Y: positions[name].Y + dy}
			}
		}

		temperature *= 0.95
	}

	return normalizePositions(positions, fdl.config.Width, fdl.config.Height, fdl.config.Padding), nil
}

// CircularLayout arranges nodes in a circle, in name order
type CircularLayout struct {
	config *LayoutConfig
}

// NewCircularLayout creates a new circular layout
func NewCircularLayout(config *LayoutConfig) *CircularLayout {
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &CircularLayout{config: config}
}

// ComputeLayout arranges nodes in a circle
func (cl *CircularLayout) ComputeLayout(n *network.Network) (map[string]Position, error) {
	names := n.NodeNames()
	positions := make(map[string]Position, len(names))
	if len(names) == 0 {
		return positions, nil
	}

	centerX := cl.config.Width / 2
	centerY := cl.config.Height / 2
	radius := math.Min(centerX, centerY) - cl.config.Padding

	angleStep := 2 * math.Pi / float64(len(names))
	for i, name := range names {
		angle := float64(i) * angleStep
		positions[name] = Position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}

	return positions, nil
}
