package ruuid

import "time"

// Field geometry of the RFC 4122 layout, as (width, offset) pairs inside
// the two 64-bit words. The version nibble sits in the low half of the
// msb; the variant bits top the lsb.
const (
	timeLowWidth, timeLowOffset   uint = 32, 32 // msb
	timeMidWidth, timeMidOffset   uint = 16, 16 // msb
	timeHighWidth, timeHighOffset uint = 12, 0  // msb
	versionWidth, versionOffset   uint = 4, 12  // msb

	variantWidth, variantOffset       uint = 2, 62 // lsb
	clockSeqHiWidth, clockSeqHiOffset uint = 6, 56 // lsb
	clockSeqLoWidth, clockSeqLoOffset uint = 8, 48 // lsb
	nodeWidth, nodeOffset             uint = 48, 0 // lsb
)

// rfc4122Variant is the 0b10 bit pattern written into the variant field.
const rfc4122Variant = 0b10

// withVersion stamps the version nibble into an msb word.
func withVersion(msb uint64, v Version) uint64 {
	return writeField(msb, versionWidth, versionOffset, uint64(v))
}

// withVariant stamps the RFC 4122 variant bits into an lsb word.
func withVariant(lsb uint64) uint64 {
	return writeField(lsb, variantWidth, variantOffset, rfc4122Variant)
}

// NewV1 generates a time-based (version 1) UUID. Every call within a
// process yields a distinct value: the timestamp field is strictly
// monotonic and the node id and clock sequence are stable.
func (g *Generator) NewV1() (UUID, error) {
	return g.NewV1WithTime(g.now())
}

// NewV1WithTime generates a time-based UUID anchored at t. The monotonic
// clock still advances, so calls with a repeated t remain distinct.
func (g *Generator) NewV1WithTime(t time.Time) (UUID, error) {
	node, err := g.nodeIdentity()
	if err != nil {
		return Nil, err
	}
	return buildTimeBased(g.clock.next(t), node), nil
}

// buildTimeBased lays out a 60-bit timestamp, clock sequence and node id
// as a version 1 UUID.
func buildTimeBased(ticks uint64, node *NodeIdentity) UUID {
	var msb, lsb uint64

	msb = writeField(msb, timeLowWidth, timeLowOffset, readField(ticks, 32, 0))
	msb = writeField(msb, timeMidWidth, timeMidOffset, readField(ticks, 16, 32))
	msb = writeField(msb, timeHighWidth, timeHighOffset, readField(ticks, 12, 48))
	msb = withVersion(msb, VersionTimeBased)

	seq := uint64(node.seq)
	lsb = withVariant(lsb)
	lsb = writeField(lsb, clockSeqHiWidth, clockSeqHiOffset, seq>>8)
	lsb = writeField(lsb, clockSeqLoWidth, clockSeqLoOffset, seq)
	lsb = writeField(lsb, nodeWidth, nodeOffset, node.id48())

	return FromWords(msb, lsb)
}

// Domain is the DCE security domain embedded in a version 2 UUID.
type Domain byte

const (
	DomainPerson Domain = iota
	DomainGroup
	DomainOrg
)

// NewV2 generates a DCE security (version 2) UUID for the given domain,
// using the process uid for DomainPerson and the process gid for
// DomainGroup. DomainOrg has no ambient id; use NewV2WithID for it.
func (g *Generator) NewV2(domain Domain) (UUID, error) {
	switch domain {
	case DomainPerson:
		return g.NewV2WithID(domain, g.uid)
	case DomainGroup:
		return g.NewV2WithID(domain, g.gid)
	}
	return Nil, ErrInvalidDomain
}

// NewV2WithID generates a DCE security UUID with an explicit 32-bit local
// id. The layout is the version 1 layout with time_low replaced by the id
// and clock_seq_low replaced by the domain.
func (g *Generator) NewV2WithID(domain Domain, id uint32) (UUID, error) {
	u, err := g.NewV1()
	if err != nil {
		return Nil, err
	}
	msb, lsb := u.Words()
	msb = writeField(msb, timeLowWidth, timeLowOffset, uint64(id))
	msb = withVersion(msb, VersionDCESecurity)
	lsb = writeField(lsb, clockSeqLoWidth, clockSeqLoOffset, uint64(domain))
	return FromWords(msb, lsb), nil
}

// Timestamp extracts the 60-bit Gregorian tick count from a version 1 or
// version 2 UUID. For a version 2 value the low 32 bits belong to the
// embedded local id, not the clock. Other versions report 0.
func (u UUID) Timestamp() uint64 {
	if v := u.Version(); v != VersionTimeBased && v != VersionDCESecurity {
		return 0
	}
	msb, _ := u.Words()
	return readField(msb, timeHighWidth, timeHighOffset)<<48 |
		readField(msb, timeMidWidth, timeMidOffset)<<32 |
		readField(msb, timeLowWidth, timeLowOffset)
}

// Time returns the embedded timestamp of a version 1 UUID as a time.Time.
// Non-time-based versions report the zero time.
func (u UUID) Time() time.Time {
	if u.Version() != VersionTimeBased {
		return time.Time{}
	}
	ns := (int64(u.Timestamp()) - gregorianToUnix) * 100
	return time.Unix(0, ns)
}

// ClockSequence extracts the 14-bit clock sequence from a version 1 UUID.
// For a version 2 value only the high 6 bits are meaningful. Other
// versions report 0.
func (u UUID) ClockSequence() int {
	if v := u.Version(); v != VersionTimeBased && v != VersionDCESecurity {
		return 0
	}
	_, lsb := u.Words()
	return int(readField(lsb, clockSeqHiWidth, clockSeqHiOffset)<<8 |
		readField(lsb, clockSeqLoWidth, clockSeqLoOffset))
}

// NodeID extracts the 48-bit node id from a version 1 or version 2 UUID.
// Other versions report nil.
func (u UUID) NodeID() []byte {
	if v := u.Version(); v != VersionTimeBased && v != VersionDCESecurity {
		return nil
	}
	out := make([]byte, 6)
	copy(out, u[10:16])
	return out
}

// Domain extracts the DCE security domain from a version 2 UUID.
func (u UUID) Domain() Domain {
	return Domain(u[9])
}

// ID extracts the 32-bit local id from a version 2 UUID.
func (u UUID) ID() uint32 {
	msb, _ := u.Words()
	return uint32(readField(msb, timeLowWidth, timeLowOffset))
}
