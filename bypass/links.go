package bypass

import (
	"github.com/theoremus-urban-solutions/walk-transfer-bypass/network"
)

// WalkLink is one direction of a pseudo-TAP/stop walk connection
type WalkLink struct {
	From network.NodeID
	To   network.NodeID
}

// WalkLinks builds both directions of every pseudo-TAP/stop pair. TAPs and
// stops are visited in ascending order so the result is stable.
func (a *Assignment) WalkLinks(conns network.Connectors) ([]WalkLink, error) {
	links := make([]WalkLink, 0, 2*conns.Pairs())
	for _, tap := range conns.TAPs() {
		pseudo, err := a.Lookup(tap)
		if err != nil {
			return nil, err
		}
		for _, stop := range conns[tap].Sorted() {
			links = append(links,
				WalkLink{From: pseudo, To: stop},
				WalkLink{From: stop, To: pseudo},
			)
		}
	}
	return links, nil
}
