package ruuid

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "ruuid.state")}

	if _, ok, err := store.Load(); err != nil || ok {
		t.Fatalf("Load() on empty store = (ok=%v, err=%v), want (false, nil)", ok, err)
	}

	want := State{
		NodeID:        [6]byte{1, 2, 3, 4, 5, 6},
		ClockSequence: 0x1234,
		LastTicks:     0x0FEDCBA987654321,
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("Load() reported no state after Save()")
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruuid.state")
	store := &FileStore{Path: path}

	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := store.Load(); err == nil {
		t.Error("Load() on corrupt file did not error")
	}
}

func TestNewGeneratorWithStore_BumpsClockSequence(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "ruuid.state")}

	first, err := NewGeneratorWithStore(store)
	if err != nil {
		t.Fatalf("NewGeneratorWithStore() error = %v", err)
	}
	if _, err := first.NewV1(); err != nil {
		t.Fatalf("NewV1() error = %v", err)
	}
	if err := first.SaveState(); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	st, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("Load() = (ok=%v, err=%v)", ok, err)
	}

	// A second run against the same store must not reuse the clock
	// sequence, and must resume past the stored timestamp.
	second, err := NewGeneratorWithStore(store)
	if err != nil {
		t.Fatalf("NewGeneratorWithStore() error = %v", err)
	}
	secondNode, err := second.nodeIdentity()
	if err != nil {
		t.Fatal(err)
	}
	if want := int(st.ClockSequence+1) & clockSeqMask; secondNode.ClockSequence() != want {
		t.Errorf("ClockSequence() = %d, want %d", secondNode.ClockSequence(), want)
	}

	u, err := second.NewV1WithTime(time.Unix(0, 0))
	if err != nil {
		t.Fatalf("NewV1WithTime() error = %v", err)
	}
	if u.Timestamp() <= st.LastTicks {
		t.Errorf("timestamp %d did not advance past stored %d", u.Timestamp(), st.LastTicks)
	}
}

func TestSaveState_WithoutStore(t *testing.T) {
	gen := NewGenerator()
	if err := gen.SaveState(); err != ErrNoStateStore {
		t.Errorf("SaveState() error = %v, want ErrNoStateStore", err)
	}
}
