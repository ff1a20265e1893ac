package network

// Numbering convention defaults
const (
	DefaultTAPCeiling = 900000 // ids at or above are externals and pseudo-TAPs
	DefaultBlockSize  = 100000
	DefaultBlockFloor = 90000 // TAPs sit strictly above this offset within a block
)

// Classifier decides which node ids designate transit access points
type Classifier struct {
	Ceiling    int
	BlockSize  int
	BlockFloor int
}

// DefaultClassifier follows the network's standard numbering
var DefaultClassifier = Classifier{
	Ceiling:    DefaultTAPCeiling,
	BlockSize:  DefaultBlockSize,
	BlockFloor: DefaultBlockFloor,
}

// IsTAP reports whether id is below the ceiling and its offset within its
// block is above the floor. The offset is the floored modulus, so it is
// never negative.
func (c Classifier) IsTAP(id NodeID) bool {
	n := int(id)
	if n >= c.Ceiling {
		return false
	}
	off := n % c.BlockSize
	if off < 0 {
		off += c.BlockSize
	}
	return off > c.BlockFloor
}

// IsTAP classifies id with DefaultClassifier
func IsTAP(id NodeID) bool {
	return DefaultClassifier.IsTAP(id)
}
