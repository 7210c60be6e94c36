package ruuid

import (
	"crypto/rand"
	"io"
	"os"
	"time"
)

// Generator bundles every dependency of the stateful constructors: the
// node identity, the monotonic clock cell, the randomness source, the
// wall clock and the posix uid/gid used by DCE security UUIDs. All
// methods are safe for concurrent use.
//
// Most callers can use the package-level NewV1, NewV2, NewV4 and
// NewSQUUID functions, which share a single process-wide generator. A
// dedicated Generator is useful for deterministic tests (inject the
// randomness source or node identity) or for persisting generator state
// across restarts (see NewGeneratorWithStore).
type Generator struct {
	clock      monotonicClock
	randReader io.Reader
	now        func() time.Time

	// node is resolved lazily against the process-wide identity when nil.
	node *NodeIdentity

	store StateStore

	uid uint32
	gid uint32
}

// NewGenerator creates a generator with crypto/rand as the random source
// and the process-wide node identity.
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
		now:        time.Now,
		uid:        uint32(os.Getuid()),
		gid:        uint32(os.Getgid()),
	}
}

// NewGeneratorWithReader creates a generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	g := NewGenerator()
	g.randReader = r
	return g
}

// NewGeneratorWithNode creates a generator bound to an explicit node
// identity instead of the process-wide one.
func NewGeneratorWithNode(node *NodeIdentity) *Generator {
	g := NewGenerator()
	g.node = node
	return g
}

// NewGeneratorWithStore creates a generator whose clock sequence and last
// issued timestamp survive process restarts through s. When s holds state
// for the same node id, the stored clock sequence is reused incremented
// by one (the wall clock may have been set back since the stored run) and
// the monotonic clock is seeded from the stored timestamp. The resulting
// state is saved back before the generator is returned; call SaveState to
// checkpoint again later.
func NewGeneratorWithStore(s StateStore) (*Generator, error) {
	g := NewGenerator()
	node, err := defaultNodeIdentity()
	if err != nil {
		return nil, err
	}

	st, ok, err := s.Load()
	if err != nil {
		return nil, err
	}
	if ok && st.NodeID == node.id {
		node = &NodeIdentity{
			id:  node.id,
			seq: (st.ClockSequence + 1) & clockSeqMask,
		}
		g.clock.seed(st.LastTicks)
	}

	g.node = node
	g.store = s
	if err := g.SaveState(); err != nil {
		return nil, err
	}
	return g, nil
}

// SaveState writes the generator's current durable state to its store.
// It fails with ErrNoStateStore when the generator has none.
func (g *Generator) SaveState() error {
	if g.store == nil {
		return ErrNoStateStore
	}
	node, err := g.nodeIdentity()
	if err != nil {
		return err
	}
	return g.store.Save(State{
		NodeID:        node.id,
		ClockSequence: node.seq,
		LastTicks:     g.clock.current(),
	})
}

// nodeIdentity resolves the generator's node identity, falling back to
// the process-wide singleton.
func (g *Generator) nodeIdentity() (*NodeIdentity, error) {
	if g.node != nil {
		return g.node, nil
	}
	return defaultNodeIdentity()
}

// defaultGenerator backs the package-level constructor functions.
var defaultGenerator = NewGenerator()

// NewV1 generates a time-based UUID using the default generator.
func NewV1() (UUID, error) {
	return defaultGenerator.NewV1()
}

// NewV2 generates a DCE security UUID using the default generator.
func NewV2(domain Domain) (UUID, error) {
	return defaultGenerator.NewV2(domain)
}

// NewV4 generates a random UUID using the default generator.
func NewV4() (UUID, error) {
	return defaultGenerator.NewV4()
}

// NewSQUUID generates a sequential random UUID using the default
// generator.
func NewSQUUID() (UUID, error) {
	return defaultGenerator.NewSQUUID()
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = ruuid.Must(ruuid.NewV4())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}
