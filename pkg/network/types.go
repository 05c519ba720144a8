package network

import "fmt"

// Kind classifies a node in the distribution network. The kind drives
// visualization coloring and customer enumeration; it has no effect on
// routing or criticality analysis.
type Kind int

const (
	// KindDepot is the central distribution point
	KindDepot Kind = iota
	// KindCustomer is a delivery destination
	KindCustomer
	// KindCrossing is a road intersection
	KindCrossing
)

// String returns the string representation of a node kind
func (k Kind) String() string {
	switch k {
	case KindDepot:
		return "depot"
	case KindCustomer:
		return "customer"
	case KindCrossing:
		return "crossing"
	default:
		return "unknown"
	}
}

// ParseKind converts a string to a Kind
func ParseKind(s string) (Kind, error) {
	switch s {
	case "depot":
		return KindDepot, nil
	case "customer":
		return KindCustomer, nil
	case "crossing":
		return KindCrossing, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Node is a location in the network
type Node struct {
	Name string
	Kind Kind
}

// Edge is an undirected road segment. Endpoints are stored in canonical
// order (From < To) so that edge identity is independent of declaration
// order.
type Edge struct {
	From   string
	To     string
	Weight float64 // travel time in minutes, always > 0
}

// Other returns the endpoint opposite to name, or "" if name is not an
// endpoint of the edge.
func (e Edge) Other(name string) string {
	switch name {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// Neighbor is one adjacency entry: the node reached and the weight of the
// connecting edge.
type Neighbor struct {
	Name   string
	Weight float64
}

// EndpointPair identifies an undirected edge by its endpoints in canonical
// order. Used for bridge reporting.
type EndpointPair struct {
	A string
	B string
}

// canonicalPair orders two endpoint names
func canonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}
