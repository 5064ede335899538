package spec

import (
	"fmt"

	"github.com/ChicagoDave/relcoords/pkg/geo"
)

// ChunkSize is the number of blocks along one side of a chunk. A view
// distance given in chunks is multiplied by it to get a radius in blocks.
const ChunkSize = 16

// Scenario describes one event seen from a set of observers.
type Scenario struct {
	SpecVersion  string      `yaml:"spec_version" json:"spec_version"`
	Description  string      `yaml:"description,omitempty" json:"description,omitempty"`
	Event        geo.Point2D `yaml:"event" json:"event"`
	RadiusBlocks *float64    `yaml:"radius,omitempty" json:"radius,omitempty"`
	ViewDistance *float64    `yaml:"view_distance,omitempty" json:"view_distance,omitempty"`
	Cases        []Case      `yaml:"cases" json:"cases"`
}

// Case is a single observer position with an optional expected result.
type Case struct {
	Name     string        `yaml:"name,omitempty" json:"name,omitempty"`
	Observer geo.Point2D   `yaml:"observer" json:"observer"`
	Expect   *geo.BlockPos `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Radius returns the view radius in blocks. An explicit radius takes
// precedence over view_distance. Returns 0 if neither is set.
func (s *Scenario) Radius() float64 {
	if s.RadiusBlocks != nil {
		return *s.RadiusBlocks
	}
	if s.ViewDistance != nil {
		return *s.ViewDistance * ChunkSize
	}
	return 0
}

// HasRadius reports whether the scenario sets radius or view_distance.
func (s *Scenario) HasRadius() bool {
	return s.RadiusBlocks != nil || s.ViewDistance != nil
}

// Label returns the case name, or its 1-based position when unnamed.
func (c Case) Label(i int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("#%d", i+1)
}

