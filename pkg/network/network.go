// Package network models a logistics distribution network as an immutable
// weighted undirected graph. The graph is built once from a declarative
// definition table, validated at build time, and never mutated afterwards.
package network

import (
	"fmt"
	"sort"
)

// Network is an immutable weighted undirected graph of depot, customer and
// crossing nodes. All accessors return data in deterministic (sorted)
// order so that every downstream analysis and report is reproducible.
type Network struct {
	nodes map[string]Node
	adj   map[string][]Neighbor
	names []string // sorted node names
	edges []Edge   // canonical endpoint order, sorted
}

// Statistics summarises the size of a network
type Statistics struct {
	NodeCount int
	EdgeCount int
}

// Build validates a definition and constructs the network. It fails fast
// on the first inconsistency in the table: duplicate node, unknown or
// repeated edge endpoint, self-loop, non-positive weight, missing depot or
// customers, or a disconnected result.
func Build(def *Definition) (*Network, error) {
	if def == nil {
		return nil, buildErr("Build", "", fmt.Errorf("nil definition"))
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	n := &Network{
		nodes: make(map[string]Node, len(def.Nodes)),
		adj:   make(map[string][]Neighbor, len(def.Nodes)),
	}

	depots := 0
	customers := 0
	for _, nd := range def.Nodes {
		if _, exists := n.nodes[nd.Name]; exists {
			return nil, buildErr("AddNode", nd.Name, ErrDuplicateNode)
		}
		kind, err := ParseKind(nd.Kind)
		if err != nil {
			return nil, buildErr("AddNode", nd.Name, err)
		}
		switch kind {
		case KindDepot:
			depots++
		case KindCustomer:
			customers++
		}
		n.nodes[nd.Name] = Node{Name: nd.Name, Kind: kind}
		n.names = append(n.names, nd.Name)
	}
	if depots != 1 {
		return nil, buildErr("Validate", "", ErrNoDepot)
	}
	if customers == 0 {
		return nil, buildErr("Validate", "", ErrNoCustomers)
	}

	seen := make(map[EndpointPair]bool, len(def.Edges))
	for _, ed := range def.Edges {
		label := ed.From + " - " + ed.To
		if ed.From == ed.To {
			return nil, buildErr("AddEdge", label, ErrSelfLoop)
		}
		if ed.Weight <= 0 {
			return nil, buildErr("AddEdge", label, ErrNonPositiveWeight)
		}
		if _, ok := n.nodes[ed.From]; !ok {
			return nil, buildErr("AddEdge", label, fmt.Errorf("%w: %s", ErrUnknownEndpoint, ed.From))
		}
		if _, ok := n.nodes[ed.To]; !ok {
			return nil, buildErr("AddEdge", label, fmt.Errorf("%w: %s", ErrUnknownEndpoint, ed.To))
		}

		a, b := canonicalPair(ed.From, ed.To)
		pair := EndpointPair{A: a, B: b}
		if seen[pair] {
			return nil, buildErr("AddEdge", label, ErrDuplicateEdge)
		}
		seen[pair] = true

		n.edges = append(n.edges, Edge{From: a, To: b, Weight: ed.Weight})
		n.adj[ed.From] = append(n.adj[ed.From], Neighbor{Name: ed.To, Weight: ed.Weight})
		n.adj[ed.To] = append(n.adj[ed.To], Neighbor{Name: ed.From, Weight: ed.Weight})
	}

	n.normalize()

	if !n.connected() {
		return nil, buildErr("Validate", "", ErrDisconnected)
	}
	return n, nil
}

// normalize sorts node, edge and adjacency slices for deterministic
// iteration order.
func (n *Network) normalize() {
	sort.Strings(n.names)
	sort.Slice(n.edges, func(i, j int) bool {
		if n.edges[i].From != n.edges[j].From {
			return n.edges[i].From < n.edges[j].From
		}
		return n.edges[i].To < n.edges[j].To
	})
	for name := range n.adj {
		nbrs := n.adj[name]
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].Name < nbrs[j].Name })
	}
}

// connected reports whether every node is reachable from every other.
// BFS from an arbitrary node suffices on an undirected graph.
func (n *Network) connected() bool {
	if len(n.names) == 0 {
		return true
	}
	visited := make(map[string]bool, len(n.names))
	queue := []string{n.names[0]}
	visited[n.names[0]] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, nbr := range n.adj[current] {
			if !visited[nbr.Name] {
				visited[nbr.Name] = true
				queue = append(queue, nbr.Name)
			}
		}
	}
	return len(visited) == len(n.names)
}

// Node returns the node with the given name.
func (n *Network) Node(name string) (Node, error) {
	node, ok := n.nodes[name]
	if !ok {
		return Node{}, fmt.Errorf("%w: %s", ErrNodeNotFound, name)
	}
	return node, nil
}

// HasNode reports whether a node exists.
func (n *Network) HasNode(name string) bool {
	_, ok := n.nodes[name]
	return ok
}

// Nodes returns all nodes sorted by name.
func (n *Network) Nodes() []Node {
	nodes := make([]Node, 0, len(n.names))
	for _, name := range n.names {
		nodes = append(nodes, n.nodes[name])
	}
	return nodes
}

// NodeNames returns all node names in sorted order.
func (n *Network) NodeNames() []string {
	names := make([]string, len(n.names))
	copy(names, n.names)
	return names
}

// Edges returns all undirected edges, each listed once with endpoints in
// canonical order, sorted.
func (n *Network) Edges() []Edge {
	edges := make([]Edge, len(n.edges))
	copy(edges, n.edges)
	return edges
}

// Neighbors returns the adjacency list of a node, sorted by neighbor name.
func (n *Network) Neighbors(name string) []Neighbor {
	nbrs := n.adj[name]
	out := make([]Neighbor, len(nbrs))
	copy(out, nbrs)
	return out
}

// Weight returns the weight of the edge between a and b.
func (n *Network) Weight(a, b string) (float64, bool) {
	for _, nbr := range n.adj[a] {
		if nbr.Name == b {
			return nbr.Weight, true
		}
	}
	return 0, false
}

// HasEdge reports whether an edge exists between a and b.
func (n *Network) HasEdge(a, b string) bool {
	_, ok := n.Weight(a, b)
	return ok
}

// Statistics returns node and edge counts.
func (n *Network) Statistics() Statistics {
	return Statistics{NodeCount: len(n.names), EdgeCount: len(n.edges)}
}

// Depot returns the name of the depot node.
func (n *Network) Depot() string {
	for _, name := range n.names {
		if n.nodes[name].Kind == KindDepot {
			return name
		}
	}
	return ""
}

// Customers returns the names of all customer nodes in sorted order.
func (n *Network) Customers() []string {
	var out []string
	for _, name := range n.names {
		if n.nodes[name].Kind == KindCustomer {
			out = append(out, name)
		}
	}
	return out
}

// WithoutNode returns a copy of the network with one node and all of its
// incident edges removed. The receiver is unchanged. Used as the
// verification oracle for articulation points; the result may legitimately
// be disconnected, so no connectivity validation is applied.
func (n *Network) WithoutNode(name string) *Network {
	out := &Network{
		nodes: make(map[string]Node, len(n.nodes)),
		adj:   make(map[string][]Neighbor, len(n.adj)),
	}
	for _, nm := range n.names {
		if nm == name {
			continue
		}
		out.nodes[nm] = n.nodes[nm]
		out.names = append(out.names, nm)
	}
	for _, e := range n.edges {
		if e.From == name || e.To == name {
			continue
		}
		out.edges = append(out.edges, e)
		out.adj[e.From] = append(out.adj[e.From], Neighbor{Name: e.To, Weight: e.Weight})
		out.adj[e.To] = append(out.adj[e.To], Neighbor{Name: e.From, Weight: e.Weight})
	}
	out.normalize()
	return out
}

// WithoutEdge returns a copy of the network with the edge between a and b
// removed. The receiver is unchanged. Used as the verification oracle for
// bridges.
func (n *Network) WithoutEdge(a, b string) *Network {
	ca, cb := canonicalPair(a, b)
	out := &Network{
		nodes: make(map[string]Node, len(n.nodes)),
		adj:   make(map[string][]Neighbor, len(n.adj)),
	}
	for _, nm := range n.names {
		out.nodes[nm] = n.nodes[nm]
		out.names = append(out.names, nm)
	}
	for _, e := range n.edges {
		if e.From == ca && e.To == cb {
			continue
		}
		out.edges = append(out.edges, e)
		out.adj[e.From] = append(out.adj[e.From], Neighbor{Name: e.To, Weight: e.Weight})
		out.adj[e.To] = append(out.adj[e.To], Neighbor{Name: e.From, Weight: e.Weight})
	}
	out.normalize()
	return out
}
