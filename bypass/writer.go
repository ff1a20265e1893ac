package bypass

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/theoremus-urban-solutions/walk-transfer-bypass/network"
)

// LinkStyle holds the mode tag and weight written on walk links
type LinkStyle struct {
	Mode   string
	Weight float64
}

// FormatCoord prints a coordinate without a fractional part when it has none
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatWeight prints a weight the way the link files expect: 1 is "1.0",
// 2.5 stays "2.5"
func FormatWeight(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}

func formatID(id network.NodeID) string {
	return strconv.Itoa(int(id))
}

func writeRow(bw *bufio.Writer, fields ...string) error {
	if _, err := bw.WriteString(strings.Join(fields, ",")); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}

// WriteNodes writes one "id,x,y" row per pseudo-TAP
func WriteNodes(w io.Writer, nodes []PseudoTAP) error {
	bw := bufio.NewWriter(w)
	for _, n := range nodes {
		if err := writeRow(bw, formatID(n.ID), FormatCoord(n.Point.X()), FormatCoord(n.Point.Y())); err != nil {
			return errors.Wrap(err, "write node")
		}
	}
	return errors.Wrap(bw.Flush(), "flush nodes")
}

// WriteWalkLinks writes one "from,to,mode,weight" row per link
func WriteWalkLinks(w io.Writer, links []WalkLink, style LinkStyle) error {
	bw := bufio.NewWriter(w)
	weight := FormatWeight(style.Weight)
	for _, l := range links {
		if err := writeRow(bw, formatID(l.From), formatID(l.To), style.Mode, weight); err != nil {
			return errors.Wrap(err, "write walk link")
		}
	}
	return errors.Wrap(bw.Flush(), "flush walk links")
}

// RemapDirectConnectors copies the comma separated TAP-to-TAP records from r
// to w with the first two fields replaced by their pseudo-TAP ids. The other
// fields pass through untouched and blank lines are skipped. It returns the
// number of records written.
func RemapDirectConnectors(w io.Writer, r io.Reader, name string, a *Assignment) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	err := network.ScanLines(r, func(lineNo int, line string) error {
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return errors.Wrapf(network.ErrMalformedLine, "%s:%d: expected at least 2 fields, got %d", name, lineNo, len(fields))
		}
		for i := 0; i < 2; i++ {
			tap, err := network.ParseID(fields[i])
			if err != nil {
				return errors.Wrapf(err, "%s:%d", name, lineNo)
			}
			pseudo, err := a.Lookup(tap)
			if err != nil {
				return errors.Wrapf(err, "%s:%d", name, lineNo)
			}
			fields[i] = formatID(pseudo)
		}
		if err := writeRow(bw, fields...); err != nil {
			return errors.Wrap(err, "write direct connector")
		}
		n++
		return nil
	})
	if err != nil {
		// rows before the bad line stay in the output
		bw.Flush()
		return n, errors.Wrapf(err, "remap direct connectors %s", name)
	}
	return n, errors.Wrap(bw.Flush(), "flush direct connectors")
}
