package network

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate = validator.New()

// Definition is the declarative form of a network: the literal node/edge
// table the graph is built from. Definitions arrive either from the
// embedded default table or from a YAML file.
type Definition struct {
	Nodes []NodeDef `yaml:"nodes" validate:"required,min=2,dive"`
	Edges []EdgeDef `yaml:"edges" validate:"required,min=1,dive"`
}

// NodeDef declares one node
type NodeDef struct {
	Name string `yaml:"name" validate:"required,max=50"`
	Kind string `yaml:"kind" validate:"required,oneof=depot customer crossing"`
}

// EdgeDef declares one undirected weighted edge
type EdgeDef struct {
	From   string  `yaml:"from" validate:"required"`
	To     string  `yaml:"to" validate:"required,nefield=From"`
	Weight float64 `yaml:"weight" validate:"required,gt=0"`
}

// DefaultDefinition returns the shipped distribution network: one depot,
// three customers, three crossings, ten road segments weighted by travel
// time in minutes.
func DefaultDefinition() *Definition {
	return &Definition{
		Nodes: []NodeDef{
			{Name: "Depot", Kind: "depot"},
			{Name: "Customer_A", Kind: "customer"},
			{Name: "Customer_B", Kind: "customer"},
			{Name: "Customer_C", Kind: "customer"},
			{Name: "Crossing_1", Kind: "crossing"},
			{Name: "Crossing_2", Kind: "crossing"},
			{Name: "Crossing_3", Kind: "crossing"},
		},
		Edges: []EdgeDef{
			{From: "Depot", To: "Crossing_1", Weight: 5},
			{From: "Depot", To: "Crossing_2", Weight: 7},
			{From: "Crossing_1", To: "Crossing_3", Weight: 3},
			{From: "Crossing_1", To: "Customer_A", Weight: 4},
			{From: "Crossing_2", To: "Crossing_3", Weight: 4},
			{From: "Crossing_2", To: "Customer_B", Weight: 6},
			{From: "Crossing_3", To: "Customer_A", Weight: 2},
			{From: "Crossing_3", To: "Customer_B", Weight: 3},
			{From: "Crossing_3", To: "Customer_C", Weight: 5},
			{From: "Customer_A", To: "Customer_B", Weight: 8},
		},
	}
}

// LoadDefinition reads and validates a YAML network definition file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network definition: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse network definition %s: %w", path, err)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate runs struct-tag validation over the definition. Structural
// checks that need the whole table (duplicates, connectivity) happen in
// Build.
func (d *Definition) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid network definition: %w", err)
	}
	return nil
}
