package network

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrMalformedLine is returned for a line with the wrong number of fields or
// a token that is not an integer
var ErrMalformedLine = errors.New("malformed line")

const maxLineBytes = 1024 * 1024

// ScanLines calls fn with every non-blank line of r, trimmed of surrounding
// whitespace. Line numbers start at 1 and count blank lines.
func ScanLines(r io.Reader, fn func(lineNo int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// ParseID parses a single node id token, tolerating surrounding whitespace
func ParseID(tok string) (NodeID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedLine, "%q is not an integer", tok)
	}
	return NodeID(n), nil
}

// parseInts splits a whitespace separated line into exactly want integers
func parseInts(line string, want int) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) != want {
		return nil, errors.Wrapf(ErrMalformedLine, "expected %d fields, got %d", want, len(fields))
	}
	out := make([]int, want)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedLine, "field %d: %q is not an integer", i+1, f)
		}
		out[i] = n
	}
	return out, nil
}

// LoadTAPCoordinates reads "<id> <x> <y>" lines and keeps the TAP nodes.
// name is only used in error messages.
func (c Classifier) LoadTAPCoordinates(r io.Reader, name string) (Coordinates, error) {
	coords := Coordinates{}
	err := ScanLines(r, func(lineNo int, line string) error {
		v, err := parseInts(line, 3)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", name, lineNo)
		}
		id := NodeID(v[0])
		if c.IsTAP(id) {
			coords[id] = orb.Point{float64(v[1]), float64(v[2])}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "read nodes %s", name)
	}
	return coords, nil
}

// LoadTAPConnectors reads "<a> <b>" lines and groups the stops by TAP. When a
// is a TAP, b is its stop; otherwise when b is a TAP, a is its stop. Lines
// where neither end is a TAP are dropped and counted.
func (c Classifier) LoadTAPConnectors(r io.Reader, name string) (Connectors, int, error) {
	conns := Connectors{}
	dropped := 0
	err := ScanLines(r, func(lineNo int, line string) error {
		v, err := parseInts(line, 2)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", name, lineNo)
		}
		a, b := NodeID(v[0]), NodeID(v[1])
		switch {
		case c.IsTAP(a):
			conns.Add(a, b)
		case c.IsTAP(b):
			conns.Add(b, a)
		default:
			dropped++
		}
		return nil
	})
	if err != nil {
		return nil, 0, errors.Wrapf(err, "read connectors %s", name)
	}
	return conns, dropped, nil
}
