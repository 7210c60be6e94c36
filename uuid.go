package ruuid

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122.
// The 16 bytes are stored big-endian: bytes 0-7 are the most significant
// 64-bit word, bytes 8-15 the least significant.
type UUID [16]byte

// Version identifies which of the standard generation algorithms produced
// a UUID. It is the raw 4-bit version nibble.
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
)

// Variant identifies the layout family a UUID follows, derived from the
// top bits of byte 8.
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Kind classifies a UUID by the constructor that could have produced it.
// Unlike Version it accounts for the nil value and for values whose
// stored bits match none of the five standard algorithms (for example a
// UUID parsed from text with an unassigned version nibble).
type Kind byte

const (
	KindNil Kind = iota
	KindV1
	KindV2
	KindV3
	KindV4
	KindV5
	KindUnknown
)

// Nil is the nil UUID (all zeros).
var Nil UUID

// FromWords builds a UUID from its two 64-bit words. No masking is
// applied: the caller owns the layout. Use NewV4FromWords to stamp raw
// words with a valid version and variant.
func FromWords(msb, lsb uint64) UUID {
	var u UUID
	wordToBytes(u[0:8], msb)
	wordToBytes(u[8:16], lsb)
	return u
}

// Words returns the most- and least-significant 64-bit words of the UUID.
func (u UUID) Words() (msb, lsb uint64) {
	return wordFromBytes(u[0:8]), wordFromBytes(u[8:16])
}

// Version returns the 4-bit version nibble of the UUID.
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID.
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// Kind classifies the UUID. The nil value reports KindNil; a value whose
// variant is not RFC 4122 or whose version nibble is outside 1-5 reports
// KindUnknown.
func (u UUID) Kind() Kind {
	if u == Nil {
		return KindNil
	}
	if u.Variant() != VariantRFC4122 {
		return KindUnknown
	}
	switch u.Version() {
	case VersionTimeBased:
		return KindV1
	case VersionDCESecurity:
		return KindV2
	case VersionNameBasedMD5:
		return KindV3
	case VersionRandom:
		return KindV4
	case VersionNameBasedSHA1:
		return KindV5
	default:
		return KindUnknown
	}
}

// Compare orders two UUIDs as unsigned 128-bit integers: the msb words
// are compared first, then the lsb words, both unsigned. The result is 0
// if u == other, -1 if u < other, and +1 if u > other. Because the bytes
// are stored big-endian this is the same order as a lexicographic byte
// compare.
func (u UUID) Compare(other UUID) int {
	msb, lsb := u.Words()
	omsb, olsb := other.Words()
	switch {
	case msb < omsb:
		return -1
	case msb > omsb:
		return 1
	case lsb < olsb:
		return -1
	case lsb > olsb:
		return 1
	}
	return 0
}

// Equal returns true if u and other represent the same UUID.
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeCanonical(buf[:], u)
	return string(buf[:])
}

// canonicalGroups describes the five hyphen-separated groups of the
// canonical form as (uuid byte range, text range) pairs.
var canonicalGroups = [5]struct{ lo, hi, tlo, thi int }{
	{0, 4, 0, 8},
	{4, 6, 9, 13},
	{6, 8, 14, 18},
	{8, 10, 19, 23},
	{10, 16, 24, 36},
}

func encodeCanonical(dst []byte, u UUID) {
	for _, g := range canonicalGroups {
		hex.Encode(dst[g.tlo:g.thi], u[g.lo:g.hi])
		if g.thi < 36 {
			dst[g.thi] = '-'
		}
	}
}

// Parse parses a UUID from its string representation.
// It accepts the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
func Parse(s string) (UUID, error) {
	var uuid UUID

	s = strings.TrimPrefix(s, "urn:uuid:")
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")

	switch len(s) {
	case 36:
		for _, g := range canonicalGroups {
			if g.thi < 36 && s[g.thi] != '-' {
				return Nil, ErrInvalidFormat
			}
			if _, err := hex.Decode(uuid[g.lo:g.hi], []byte(s[g.tlo:g.thi])); err != nil {
				return Nil, ErrInvalidFormat
			}
		}
		return uuid, nil
	case 32:
		if _, err := hex.Decode(uuid[:], []byte(s)); err != nil {
			return Nil, ErrInvalidFormat
		}
		return uuid, nil
	}

	return Nil, ErrInvalidFormat
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("ruuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// Bytes returns the UUID as a byte slice.
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros).
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeCanonical(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("ruuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility.
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}
