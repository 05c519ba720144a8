package algorithms

import (
	"container/heap"
	"sort"

	"github.com/dd0wney/lognet/pkg/network"
)

// BetweennessCentrality computes weighted betweenness centrality for every
// node: the fraction of all-pairs shortest paths that pass through it.
// One Brandes pass per source, with Dijkstra ordering because travel times
// weight the paths. When several shortest paths tie, credit is split
// proportionally across them.
//
// Scores are normalised by 1/((n-1)(n-2)) over the double-counted
// undirected accumulation, the standard normalisation for undirected
// graphs. Recomputation on the same network returns identical values.
func BetweennessCentrality(n *network.Network) map[string]float64 {
	names := n.NodeNames()
	betweenness := make(map[string]float64, len(names))
	for _, name := range names {
		betweenness[name] = 0.0
	}

	for _, source := range names {
		stack, sigma, predecessors := shortestPathDAG(n, source)

		// Back-propagation: accumulate pair dependencies onto
		// intermediate nodes in reverse settlement order.
		delta := make(map[string]float64, len(names))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, pred := range predecessors[w] {
				delta[pred] += (sigma[pred] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	// Each unordered pair was counted from both endpoints.
	if len(names) > 2 {
		normFactor := 1.0 / float64((len(names)-1)*(len(names)-2))
		for name := range betweenness {
			betweenness[name] *= normFactor
		}
	}

	return betweenness
}

// shortestPathDAG runs weighted Dijkstra from source, returning nodes in
// settlement order, shortest-path counts, and the predecessor lists of the
// shortest-path DAG.
func shortestPathDAG(n *network.Network, source string) (stack []string, sigma map[string]float64, predecessors map[string][]string) {
	sigma = map[string]float64{source: 1.0}
	predecessors = make(map[string][]string)
	dist := map[string]float64{source: 0}
	settled := make(map[string]bool)

	pq := &routeQueue{{name: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(queueItem)
		v := current.name
		if settled[v] {
			continue
		}
		settled[v] = true
		stack = append(stack, v)

		for _, nbr := range n.Neighbors(v) {
			w := nbr.Name
			if settled[w] {
				continue
			}
			candidate := dist[v] + nbr.Weight
			old, seen := dist[w]
			switch {
			case !seen || candidate < old:
				dist[w] = candidate
				sigma[w] = sigma[v]
				predecessors[w] = []string{v}
				heap.Push(pq, queueItem{name: w, dist: candidate})
			case candidate == old:
				sigma[w] += sigma[v]
				predecessors[w] = append(predecessors[w], v)
			}
		}
	}

	return stack, sigma, predecessors
}

// RankedNode holds a node with its centrality score.
type RankedNode struct {
	Name  string
	Score float64
}

// RankCentrality orders centrality scores descending, breaking ties by
// node name so the ranking is deterministic.
func RankCentrality(scores map[string]float64) []RankedNode {
	ranked := make([]RankedNode, 0, len(scores))
	for name, score := range scores {
		ranked = append(ranked, RankedNode{Name: name, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}
