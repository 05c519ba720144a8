package algorithms

import "github.com/dd0wney/lognet/pkg/network"

// ConnectedComponents counts the connected components of the network.
// A freshly built network always has exactly one; the count is the
// verification oracle for articulation points and bridges, applied to
// derived networks with a node or edge removed.
func ConnectedComponents(n *network.Network) int {
	visited := make(map[string]bool)
	components := 0

	for _, name := range n.NodeNames() {
		if visited[name] {
			continue
		}
		components++

		queue := []string{name}
		visited[name] = true
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, nbr := range n.Neighbors(current) {
				if !visited[nbr.Name] {
					visited[nbr.Name] = true
					queue = append(queue, nbr.Name)
				}
			}
		}
	}
	return components
}
