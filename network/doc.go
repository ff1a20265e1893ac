/*
Package network reads the transit network files consumed by the bypass link
builder.

It knows the node numbering convention used by the network: inside every
100,000-wide block below 900,000, ids 90001-99999 are transit access points
(TAPs). Everything else (stops, zones, externals, pseudo-TAPs) is a plain node.

# Files

Node coordinates, one node per line, whitespace separated:

	190001 6012345 2134567
	55 6012001 2134002

TAP to stop connectors, one pair per line in either order:

	190001 55
	56 190001

Blank lines are skipped. Any other line that does not parse is a fatal
ErrMalformedLine carrying the file name and line number.

# Usage

	coords, err := network.DefaultClassifier.LoadTAPCoordinates(f, "node_xy.txt")
	conns, dropped, err := network.DefaultClassifier.LoadTAPConnectors(g, "tap_to_stop.txt")
*/
package network
