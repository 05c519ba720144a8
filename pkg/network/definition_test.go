package network

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
nodes:
  - name: Depot
    kind: depot
  - name: Customer_A
    kind: customer
  - name: Crossing_1
    kind: crossing
edges:
  - from: Depot
    to: Crossing_1
    weight: 5
  - from: Crossing_1
    to: Customer_A
    weight: 4
`

func writeTempDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefinition(t *testing.T) {
	path := writeTempDefinition(t, sampleYAML)

	def, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Len(t, def.Nodes, 3)
	assert.Len(t, def.Edges, 2)

	n, err := Build(def)
	require.NoError(t, err)
	assert.Equal(t, "Depot", n.Depot())
	assert.Equal(t, []string{"Customer_A"}, n.Customers())
}

func TestLoadDefinitionMissingFile(t *testing.T) {
	_, err := LoadDefinition(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadDefinitionMalformedYAML(t *testing.T) {
	path := writeTempDefinition(t, "nodes: [not: {valid")
	_, err := LoadDefinition(path)
	assert.Error(t, err)
}

func TestLoadDefinitionRejectsUnknownKind(t *testing.T) {
	path := writeTempDefinition(t, `
nodes:
  - name: Depot
    kind: warehouse
  - name: Customer_A
    kind: customer
edges:
  - from: Depot
    to: Customer_A
    weight: 5
`)
	_, err := LoadDefinition(path)
	assert.Error(t, err)
}

func TestLoadDefinitionRejectsNonPositiveWeight(t *testing.T) {
	path := writeTempDefinition(t, `
nodes:
  - name: Depot
    kind: depot
  - name: Customer_A
    kind: customer
edges:
  - from: Depot
    to: Customer_A
    weight: -3
`)
	_, err := LoadDefinition(path)
	assert.Error(t, err)
}

func TestDefaultDefinitionIsValid(t *testing.T) {
	def := DefaultDefinition()
	require.NoError(t, def.Validate())

	assert.Len(t, def.Nodes, 7)
	assert.Len(t, def.Edges, 10)
	for _, e := range def.Edges {
		assert.Greater(t, e.Weight, 0.0)
	}
}
