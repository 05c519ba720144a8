package algorithms

import (
	"sort"

	"github.com/dd0wney/lognet/pkg/network"
)

// lowlinkState carries the shared DFS bookkeeping for articulation point
// and bridge detection (Tarjan low-link computation). One pass finds both.
type lowlinkState struct {
	n            *network.Network
	index        map[string]int
	low          map[string]int
	counter      int
	articulation map[string]bool
	bridges      []network.EndpointPair
}

func newLowlinkState(n *network.Network) *lowlinkState {
	return &lowlinkState{
		n:            n,
		index:        make(map[string]int),
		low:          make(map[string]int),
		articulation: make(map[string]bool),
	}
}

// run performs the low-link DFS over every component, visiting roots in
// sorted order for deterministic output.
func (s *lowlinkState) run() {
	for _, name := range s.n.NodeNames() {
		if s.index[name] == 0 {
			s.dfs(name, "")
		}
	}
}

// dfs visits v, recording discovery index and low-link value. parent is ""
// for component roots. The graph is simple, so skipping the parent name
// skips exactly the tree edge.
func (s *lowlinkState) dfs(v, parent string) {
	s.counter++
	s.index[v] = s.counter
	s.low[v] = s.counter

	children := 0
	for _, nbr := range s.n.Neighbors(v) {
		w := nbr.Name
		if w == parent {
			continue
		}
		if s.index[w] == 0 {
			children++
			s.dfs(w, v)
			if s.low[w] < s.low[v] {
				s.low[v] = s.low[w]
			}
			// Non-root v cuts the graph when no back edge from w's
			// subtree climbs above v.
			if parent != "" && s.low[w] >= s.index[v] {
				s.articulation[v] = true
			}
			// Tree edge v-w is a bridge when w's subtree cannot reach v
			// or above without it.
			if s.low[w] > s.index[v] {
				a, b := v, w
				if b < a {
					a, b = b, a
				}
				s.bridges = append(s.bridges, network.EndpointPair{A: a, B: b})
			}
		} else if s.index[w] < s.low[v] {
			s.low[v] = s.index[w]
		}
	}

	// A root cuts the graph when it has more than one DFS child.
	if parent == "" && children > 1 {
		s.articulation[v] = true
	}
}

// ArticulationPoints returns the nodes whose removal increases the number
// of connected components, sorted by name.
func ArticulationPoints(n *network.Network) []string {
	s := newLowlinkState(n)
	s.run()

	points := make([]string, 0, len(s.articulation))
	for name := range s.articulation {
		points = append(points, name)
	}
	sort.Strings(points)
	return points
}

// Bridges returns the edges whose removal increases the number of
// connected components, endpoints in canonical order, sorted.
func Bridges(n *network.Network) []network.EndpointPair {
	s := newLowlinkState(n)
	s.run()

	sort.Slice(s.bridges, func(i, j int) bool {
		if s.bridges[i].A != s.bridges[j].A {
			return s.bridges[i].A < s.bridges[j].A
		}
		return s.bridges[i].B < s.bridges[j].B
	})
	return s.bridges
}
