package bypass

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/theoremus-urban-solutions/walk-transfer-bypass/config"
	"github.com/theoremus-urban-solutions/walk-transfer-bypass/internal"
	"github.com/theoremus-urban-solutions/walk-transfer-bypass/internal/fsutil"
	"github.com/theoremus-urban-solutions/walk-transfer-bypass/network"
)

// Options controls classification, numbering and link tags
type Options struct {
	Classifier network.Classifier
	Band       Band
	Style      LinkStyle
}

// NewOptions converts a validated configuration
func NewOptions(cfg config.AppConfig) Options {
	return Options{
		Classifier: network.Classifier{
			Ceiling:    cfg.TAP.Ceiling,
			BlockSize:  cfg.TAP.BlockSize,
			BlockFloor: cfg.TAP.BlockFloor,
		},
		Band: Band{
			Start:    network.NodeID(cfg.PseudoTAP.Start),
			Capacity: cfg.PseudoTAP.Capacity,
			Offset:   cfg.PseudoTAP.Offset,
		},
		Style: LinkStyle{
			Mode:   cfg.WalkLink.Mode,
			Weight: cfg.WalkLink.Weight,
		},
	}
}

// DefaultOptions uses the standard network numbering
func DefaultOptions() Options {
	return NewOptions(config.Default())
}

// Paths names the three inputs and two outputs of a run
type Paths struct {
	DirectConnectors string
	StopConnectors   string
	NodeXY           string
	OutputNodes      string
	OutputLinks      string
}

// Summary describes what a run produced
type Summary struct {
	TAPs              int
	StopConnectors    int // distinct TAP-stop pairs
	DroppedConnectors int // connector lines with no TAP end
	WalkLinks         int
	DirectConnectors  int
	Bound             orb.Bound // extent of the pseudo-TAPs
}

// Pipeline builds the bypass node and link files
type Pipeline struct {
	fs   fsutil.FileSystem
	opts Options
}

// NewPipeline creates a pipeline reading and writing through fsys
func NewPipeline(fsys fsutil.FileSystem, opts Options) *Pipeline {
	return &Pipeline{fs: fsys, opts: opts}
}

// Run reads the node file, then the stop connectors, allocates pseudo-TAPs and
// writes the node file followed by the link file. Direct connectors are
// streamed into the link file after the walk links. Outputs are truncated and
// written in place; a failure part way leaves a partial file.
func (p *Pipeline) Run(paths Paths) (Summary, error) {
	var sum Summary

	var taps network.Coordinates
	err := p.read(paths.NodeXY, func(r io.Reader) error {
		var err error
		taps, err = p.opts.Classifier.LoadTAPCoordinates(r, paths.NodeXY)
		return err
	})
	if err != nil {
		return sum, err
	}
	internal.Logf("loaded %d TAPs from %s", len(taps), paths.NodeXY)

	var conns network.Connectors
	err = p.read(paths.StopConnectors, func(r io.Reader) error {
		var err error
		conns, sum.DroppedConnectors, err = p.opts.Classifier.LoadTAPConnectors(r, paths.StopConnectors)
		return err
	})
	if err != nil {
		return sum, err
	}
	sum.StopConnectors = conns.Pairs()
	if sum.DroppedConnectors > 0 {
		internal.Logf("dropped %d connector lines without a TAP in %s", sum.DroppedConnectors, paths.StopConnectors)
	}

	assign, err := p.opts.Band.Allocate(taps)
	if err != nil {
		return sum, err
	}
	sum.TAPs = assign.Len()
	sum.Bound = assign.Bound()

	walk, err := assign.WalkLinks(conns)
	if err != nil {
		return sum, errors.Wrapf(err, "walk links from %s", paths.StopConnectors)
	}

	err = p.write(paths.OutputNodes, func(w io.Writer) error {
		return WriteNodes(w, assign.Nodes)
	})
	if err != nil {
		return sum, err
	}

	err = p.write(paths.OutputLinks, func(w io.Writer) error {
		if err := WriteWalkLinks(w, walk, p.opts.Style); err != nil {
			return err
		}
		sum.WalkLinks = len(walk)
		return p.read(paths.DirectConnectors, func(r io.Reader) error {
			var err error
			sum.DirectConnectors, err = RemapDirectConnectors(w, r, paths.DirectConnectors, assign)
			return err
		})
	})
	if err != nil {
		return sum, err
	}
	internal.Logf("wrote %d pseudo-TAPs to %s and %d walk links plus %d direct connectors to %s",
		sum.TAPs, paths.OutputNodes, sum.WalkLinks, sum.DirectConnectors, paths.OutputLinks)
	return sum, nil
}

func (p *Pipeline) read(path string, fn func(io.Reader) error) error {
	f, err := p.fs.Open(path)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer f.Close()
	return fn(f)
}

func (p *Pipeline) write(path string, fn func(io.Writer) error) (err error) {
	f, err := p.fs.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return fn(f)
}
