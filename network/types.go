package network

import (
	"maps"
	"slices"

	"github.com/paulmach/orb"
)

// NodeID identifies a node in the transit network
type NodeID int

// Coordinates maps a TAP id to its position in network units
type Coordinates map[NodeID]orb.Point

// SortedIDs returns the TAP ids in ascending order
func (c Coordinates) SortedIDs() []NodeID {
	return slices.Sorted(maps.Keys(c))
}

// StopSet is the set of stops connected to one TAP
type StopSet map[NodeID]struct{}

// Add inserts a stop; duplicates collapse
func (s StopSet) Add(stop NodeID) {
	s[stop] = struct{}{}
}

// Sorted returns the stops in ascending order
func (s StopSet) Sorted() []NodeID {
	return slices.Sorted(maps.Keys(s))
}

// Connectors maps a TAP id to the stops it serves
type Connectors map[NodeID]StopSet

// Add records the stop under tap
func (c Connectors) Add(tap, stop NodeID) {
	set, ok := c[tap]
	if !ok {
		set = StopSet{}
		c[tap] = set
	}
	set.Add(stop)
}

// TAPs returns the connected TAP ids in ascending order
func (c Connectors) TAPs() []NodeID {
	return slices.Sorted(maps.Keys(c))
}

// Pairs counts the distinct TAP-stop pairs
func (c Connectors) Pairs() int {
	n := 0
	for _, set := range c {
		n += len(set)
	}
	return n
}
