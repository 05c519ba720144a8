package algorithms

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dd0wney/lognet/pkg/network"
)

// buildTestNetwork builds the shipped distribution network
func buildTestNetwork(t *testing.T) *network.Network {
	t.Helper()
	n, err := network.Build(network.DefaultDefinition())
	if err != nil {
		t.Fatalf("Failed to build network: %v", err)
	}
	return n
}

// TestShortestRoute_FixedInstance asserts the exact optimized routes of
// the shipped network, derived from its edge-weight table.
func TestShortestRoute_FixedInstance(t *testing.T) {
	n := buildTestNetwork(t)

	tests := []struct {
		target string
		path   []string
		weight float64
	}{
		{"Customer_A", []string{"Depot", "Crossing_1", "Customer_A"}, 9},
		{"Customer_B", []string{"Depot", "Crossing_1", "Crossing_3", "Customer_B"}, 11},
		{"Customer_C", []string{"Depot", "Crossing_1", "Crossing_3", "Customer_C"}, 13},
	}

	for _, tc := range tests {
		route, err := ShortestRoute(n, "Depot", tc.target)
		if err != nil {
			t.Fatalf("ShortestRoute(Depot, %s) failed: %v", tc.target, err)
		}
		if !reflect.DeepEqual(route.Path, tc.path) {
			t.Errorf("Route to %s: expected %v, got %v", tc.target, tc.path, route.Path)
		}
		if route.TotalWeight != tc.weight {
			t.Errorf("Route to %s: expected weight %v, got %v", tc.target, tc.weight, route.TotalWeight)
		}
	}
}

// TestShortestRoute_SameNode tests the degenerate source == target case
func TestShortestRoute_SameNode(t *testing.T) {
	n := buildTestNetwork(t)

	route, err := ShortestRoute(n, "Depot", "Depot")
	if err != nil {
		t.Fatalf("ShortestRoute failed: %v", err)
	}
	if len(route.Path) != 1 || route.Path[0] != "Depot" {
		t.Errorf("Expected single-node path, got %v", route.Path)
	}
	if route.TotalWeight != 0 {
		t.Errorf("Expected weight 0, got %v", route.TotalWeight)
	}
}

// TestShortestRoute_UnknownNode tests endpoint validation
func TestShortestRoute_UnknownNode(t *testing.T) {
	n := buildTestNetwork(t)

	if _, err := ShortestRoute(n, "Warehouse", "Customer_A"); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Expected ErrUnknownNode for source, got %v", err)
	}
	if _, err := ShortestRoute(n, "Depot", "Customer_D"); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Expected ErrUnknownNode for target, got %v", err)
	}
}

// TestShortestRoute_Unreachable tests that an unreachable target is an
// explicit failure, never a partial path
func TestShortestRoute_Unreachable(t *testing.T) {
	n := buildTestNetwork(t)

	// Removing the only bridge isolates Customer_C
	cut := n.WithoutEdge("Crossing_3", "Customer_C")

	route, err := ShortestRoute(cut, "Depot", "Customer_C")
	if !errors.Is(err, ErrNoRoute) {
		t.Errorf("Expected ErrNoRoute, got %v", err)
	}
	if route != nil {
		t.Errorf("Expected nil route, got %v", route)
	}
}

// TestShortestRoute_PrefersLighterDetour checks that weight, not hop
// count, decides the route: Customer_A to Customer_B has a direct edge of
// weight 8, but the detour through Crossing_3 costs only 5.
func TestShortestRoute_PrefersLighterDetour(t *testing.T) {
	n := buildTestNetwork(t)

	route, err := ShortestRoute(n, "Customer_A", "Customer_B")
	if err != nil {
		t.Fatalf("ShortestRoute failed: %v", err)
	}

	expected := []string{"Customer_A", "Crossing_3", "Customer_B"}
	if !reflect.DeepEqual(route.Path, expected) {
		t.Errorf("Expected %v, got %v", expected, route.Path)
	}
	if route.TotalWeight != 5 {
		t.Errorf("Expected weight 5, got %v", route.TotalWeight)
	}
}

// TestDeliveryRoutes covers the depot-to-every-customer enumeration
func TestDeliveryRoutes(t *testing.T) {
	n := buildTestNetwork(t)

	routes, err := DeliveryRoutes(n)
	if err != nil {
		t.Fatalf("DeliveryRoutes failed: %v", err)
	}

	if len(routes) != 3 {
		t.Fatalf("Expected 3 routes, got %d", len(routes))
	}

	expectedOrder := []string{"Customer_A", "Customer_B", "Customer_C"}
	expectedWeights := []float64{9, 11, 13}
	for i, cr := range routes {
		if cr.Customer != expectedOrder[i] {
			t.Errorf("Route %d: expected customer %s, got %s", i, expectedOrder[i], cr.Customer)
		}
		if cr.Route.TotalWeight != expectedWeights[i] {
			t.Errorf("Route to %s: expected weight %v, got %v", cr.Customer, expectedWeights[i], cr.Route.TotalWeight)
		}
		if cr.Route.Path[0] != "Depot" {
			t.Errorf("Route to %s does not start at Depot: %v", cr.Customer, cr.Route.Path)
		}
	}
}
