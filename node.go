package ruuid

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"net"
	"sync"
)

// multicastBit is the least significant bit of the first node id octet.
// IEEE 802 reserves it for multicast addresses, so a randomly generated
// node id sets it to signal "not a real hardware address" (RFC 4122 §4.5).
const multicastBit = 0x01

// clockSeqMask keeps the clock sequence within its 14-bit field.
const clockSeqMask = 0x3FFF

// NodeIdentity pairs the 48-bit node id with the 14-bit clock sequence
// used by time-based UUIDs. Both are fixed for the lifetime of the value;
// there is no re-roll API.
type NodeIdentity struct {
	id  [6]byte
	seq uint16
}

// NewNodeIdentity derives a node identity, drawing randomness from r.
// The node id comes from the first usable hardware address on the host;
// when none is available, 48 random bits are used with the multicast bit
// forced on. The clock sequence is always 14 random bits.
func NewNodeIdentity(r io.Reader) (*NodeIdentity, error) {
	n := &NodeIdentity{}
	if !hardwareNodeID(&n.id) {
		if err := randomNodeID(r, &n.id); err != nil {
			return nil, err
		}
	}
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	n.seq = binary.BigEndian.Uint16(buf[:]) & clockSeqMask
	return n, nil
}

// hardwareNodeID copies the first hardware address of at least 48 bits
// into dst, reporting whether one was found.
func hardwareNodeID(dst *[6]byte) bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, ifc := range ifaces {
		if len(ifc.HardwareAddr) >= 6 {
			copy(dst[:], ifc.HardwareAddr)
			return true
		}
	}
	return false
}

// randomNodeID fills dst with random bits and sets the multicast bit.
func randomNodeID(r io.Reader, dst *[6]byte) error {
	if _, err := io.ReadFull(r, dst[:]); err != nil {
		return err
	}
	dst[0] |= multicastBit
	return nil
}

// ID returns a copy of the 48-bit node id.
func (n *NodeIdentity) ID() []byte {
	out := make([]byte, 6)
	copy(out, n.id[:])
	return out
}

// ClockSequence returns the 14-bit clock sequence.
func (n *NodeIdentity) ClockSequence() int {
	return int(n.seq)
}

// id48 returns the node id packed into the low 48 bits of a word.
func (n *NodeIdentity) id48() uint64 {
	return wordFromBytes(n.id[:])
}

var (
	nodeOnce    sync.Once
	processNode *NodeIdentity
	nodeErr     error
)

// defaultNodeIdentity returns the process-wide node identity, creating it
// on first access. Concurrent first callers all observe the same value.
func defaultNodeIdentity() (*NodeIdentity, error) {
	nodeOnce.Do(func() {
		processNode, nodeErr = NewNodeIdentity(rand.Reader)
	})
	return processNode, nodeErr
}
