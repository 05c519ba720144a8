// Package algorithms provides the graph analyses run against a logistics
// network: shortest-route computation, articulation point and bridge
// detection, betweenness centrality and connectivity counting. All
// functions are pure; they never mutate the network they analyse.
package algorithms

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/dd0wney/lognet/pkg/network"
)

// Common sentinel errors
var (
	ErrUnknownNode = errors.New("unknown node")
	ErrNoRoute     = errors.New("no route between nodes")
)

// Route is an ordered node sequence with its total travel time.
type Route struct {
	Path        []string
	TotalWeight float64
}

// CustomerRoute pairs a customer with its optimized route from the depot.
type CustomerRoute struct {
	Customer string
	Route    *Route
}

// queueItem is one priority-queue entry during Dijkstra traversal
type queueItem struct {
	name string
	dist float64
}

// routeQueue implements a min-heap over tentative distances
type routeQueue []queueItem

func (q routeQueue) Len() int           { return len(q) }
func (q routeQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q routeQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *routeQueue) Push(x any) {
	*q = append(*q, x.(queueItem))
}

func (q *routeQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// ShortestRoute computes the minimum-total-weight path between two nodes
// using Dijkstra's algorithm. Weights are guaranteed positive by network
// construction. Returns ErrNoRoute if the target is unreachable; a partial
// path is never returned.
func ShortestRoute(n *network.Network, source, target string) (*Route, error) {
	if !n.HasNode(source) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, source)
	}
	if !n.HasNode(target) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, target)
	}
	if source == target {
		return &Route{Path: []string{source}}, nil
	}

	dist := map[string]float64{source: 0}
	parent := map[string]string{source: source}
	settled := make(map[string]bool)

	pq := &routeQueue{{name: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(queueItem)
		if settled[current.name] {
			continue
		}
		settled[current.name] = true

		if current.name == target {
			return &Route{
				Path:        reconstructPath(parent, source, target),
				TotalWeight: current.dist,
			}, nil
		}

		for _, nbr := range n.Neighbors(current.name) {
			if settled[nbr.Name] {
				continue
			}
			candidate := current.dist + nbr.Weight
			if old, seen := dist[nbr.Name]; !seen || candidate < old {
				dist[nbr.Name] = candidate
				parent[nbr.Name] = current.name
				heap.Push(pq, queueItem{name: nbr.Name, dist: candidate})
			}
		}
	}

	return nil, fmt.Errorf("%w: %s -> %s", ErrNoRoute, source, target)
}

// reconstructPath builds the node sequence from source to target by
// walking the parent map backwards.
func reconstructPath(parent map[string]string, source, target string) []string {
	path := []string{target}
	for node := target; node != source; node = parent[node] {
		path = append(path, parent[node])
	}
	// Reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// DeliveryRoutes computes the optimized route from the depot to every
// customer, customers in sorted order.
func DeliveryRoutes(n *network.Network) ([]CustomerRoute, error) {
	depot := n.Depot()
	customers := n.Customers()

	routes := make([]CustomerRoute, 0, len(customers))
	for _, customer := range customers {
		route, err := ShortestRoute(n, depot, customer)
		if err != nil {
			return nil, fmt.Errorf("route to %s: %w", customer, err)
		}
		routes = append(routes, CustomerRoute{Customer: customer, Route: route})
	}
	return routes, nil
}
