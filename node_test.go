package ruuid

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func TestNewNodeIdentity(t *testing.T) {
	n, err := NewNodeIdentity(rand.Reader)
	if err != nil {
		t.Fatalf("NewNodeIdentity() error = %v", err)
	}

	if len(n.ID()) != 6 {
		t.Errorf("ID() length = %d, want 6", len(n.ID()))
	}
	if seq := n.ClockSequence(); seq < 0 || seq > clockSeqMask {
		t.Errorf("ClockSequence() = %d, outside 14 bits", seq)
	}

	// Values are fixed after creation.
	if !bytes.Equal(n.ID(), n.ID()) || n.ClockSequence() != n.ClockSequence() {
		t.Error("node identity not stable across reads")
	}
}

func TestRandomNodeID_MulticastBit(t *testing.T) {
	var id [6]byte
	src := bytes.NewReader([]byte{0xFE, 0x02, 0x03, 0x04, 0x05, 0x06})
	if err := randomNodeID(src, &id); err != nil {
		t.Fatalf("randomNodeID() error = %v", err)
	}
	if id[0]&multicastBit == 0 {
		t.Error("random node id missing multicast bit")
	}
	want := [6]byte{0xFF, 0x02, 0x03, 0x04, 0x05, 0x06}
	if id != want {
		t.Errorf("randomNodeID = % x, want % x", id, want)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestNewNodeIdentity_RandFailure(t *testing.T) {
	// The clock sequence always needs randomness, so a dead source must
	// surface as an error rather than a weaker identity.
	if _, err := NewNodeIdentity(failingReader{}); err == nil {
		t.Error("NewNodeIdentity() with failing reader did not error")
	}
}

func TestDefaultNodeIdentity_Singleton(t *testing.T) {
	a, err := defaultNodeIdentity()
	if err != nil {
		t.Fatalf("defaultNodeIdentity() error = %v", err)
	}
	b, err := defaultNodeIdentity()
	if err != nil {
		t.Fatalf("defaultNodeIdentity() error = %v", err)
	}
	if a != b {
		t.Error("defaultNodeIdentity() returned different instances")
	}
}

func TestNodeIdentity_Words(t *testing.T) {
	n := &NodeIdentity{id: [6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}}
	if got := n.id48(); got != 0x010203040506 {
		t.Errorf("id48() = %#x, want 0x010203040506", got)
	}
}
