package ruuid

import "io"

// NewV4 generates a random (version 4) UUID from 128 bits of the
// generator's randomness source. A failure of the source is returned,
// never papered over with weaker bits.
func (g *Generator) NewV4() (UUID, error) {
	var u UUID
	if _, err := io.ReadFull(g.randReader, u[:]); err != nil {
		return Nil, err
	}
	return stampV4(u), nil
}

// NewSQUUID generates a sequential random UUID: a fresh version 4 value
// whose top 32 bits are overwritten with the current Unix epoch seconds.
// Values from different seconds sort in generation order under Compare;
// values from the same second share the embedded second count and are
// otherwise unordered. Version and variant still read as a V4.
func (g *Generator) NewSQUUID() (UUID, error) {
	u, err := g.NewV4()
	if err != nil {
		return Nil, err
	}
	msb, lsb := u.Words()
	msb = writeField(msb, 32, 32, uint64(g.now().Unix()))
	return FromWords(msb, lsb), nil
}

// NewV4FromWords applies the version 4 and RFC 4122 variant stamps to
// caller-supplied words, enabling deterministic tests or external entropy
// sources. Unlike FromWords, the six stamp bits of the input are lost.
func NewV4FromWords(msb, lsb uint64) UUID {
	return stampV4(FromWords(msb, lsb))
}

// UnixSeconds extracts the embedded second count from the top 32 bits of
// a SQUUID. Calling it on a plain V4 returns 32 random bits; the layout
// does not distinguish the two.
func (u UUID) UnixSeconds() int64 {
	msb, _ := u.Words()
	return int64(readField(msb, 32, 32))
}

func stampV4(u UUID) UUID {
	msb, lsb := u.Words()
	return FromWords(withVersion(msb, VersionRandom), withVariant(lsb))
}
