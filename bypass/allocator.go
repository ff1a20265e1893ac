package bypass

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/theoremus-urban-solutions/walk-transfer-bypass/network"
)

var (
	// ErrCapacityExceeded is returned when there are more TAPs than band slots
	ErrCapacityExceeded = errors.New("pseudo-TAP band exhausted")
	// ErrUnmappedTAP is returned when a TAP id has no pseudo-TAP, usually
	// because it is missing from the node file
	ErrUnmappedTAP = errors.New("TAP has no pseudo-TAP")
)

// Band is the id range and placement of pseudo-TAPs
type Band struct {
	Start    network.NodeID
	Capacity int
	Offset   float64
}

// PseudoTAP is a synthetic node placed next to a real TAP
type PseudoTAP struct {
	ID    network.NodeID
	TAP   network.NodeID
	Point orb.Point
}

// Assignment holds the pseudo-TAPs of one run and the original id lookup
type Assignment struct {
	Nodes  []PseudoTAP // ascending by TAP id
	pseudo map[network.NodeID]network.NodeID
}

// Allocate gives every TAP a pseudo-TAP id, counting up from Start in
// ascending order of TAP id. The pseudo-TAP sits at the TAP position shifted
// by Offset on both axes. Nothing is allocated when the TAPs do not fit.
func (b Band) Allocate(taps network.Coordinates) (*Assignment, error) {
	if b.Capacity > 0 && len(taps) > b.Capacity {
		return nil, errors.Wrapf(ErrCapacityExceeded, "%d TAPs, %d slots from %d", len(taps), b.Capacity, b.Start)
	}
	a := &Assignment{
		Nodes:  make([]PseudoTAP, 0, len(taps)),
		pseudo: make(map[network.NodeID]network.NodeID, len(taps)),
	}
	next := b.Start
	for _, tap := range taps.SortedIDs() {
		p := taps[tap]
		a.Nodes = append(a.Nodes, PseudoTAP{
			ID:    next,
			TAP:   tap,
			Point: orb.Point{p.X() + b.Offset, p.Y() + b.Offset},
		})
		a.pseudo[tap] = next
		next++
	}
	return a, nil
}

// Lookup returns the pseudo-TAP id assigned to tap
func (a *Assignment) Lookup(tap network.NodeID) (network.NodeID, error) {
	id, ok := a.pseudo[tap]
	if !ok {
		return 0, errors.Wrapf(ErrUnmappedTAP, "TAP %d", tap)
	}
	return id, nil
}

// Len returns the number of pseudo-TAPs
func (a *Assignment) Len() int {
	return len(a.Nodes)
}

// Bound is the extent of the pseudo-TAP positions
func (a *Assignment) Bound() orb.Bound {
	if len(a.Nodes) == 0 {
		return orb.Bound{}
	}
	mp := make(orb.MultiPoint, len(a.Nodes))
	for i, n := range a.Nodes {
		mp[i] = n.Point
	}
	return mp.Bound()
}
