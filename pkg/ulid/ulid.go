package ulid

import (
	"encoding/binary"
	"time"
)

const (
	// MaxTimestamp is the last representable millisecond (year 10889).
	MaxTimestamp uint64 = 1<<48 - 1

	// EntropySize is the number of random bytes in a ULID.
	EntropySize = 10

	randomHiMask uint64 = 0xFFFF
)

// ULID is a 128-bit identifier: a 48-bit millisecond timestamp in the most
// significant bits followed by 80 bits of randomness. It is a comparable
// value type; the zero value encodes as 00000000000000000000000000.
type ULID struct {
	hi, lo uint64
}

var (
	// Nil is the smallest ULID.
	Nil = ULID{}

	// Max is the largest ULID, 7ZZZZZZZZZZZZZZZZZZZZZZZZZ.
	Max = ULID{hi: ^uint64(0), lo: ^uint64(0)}
)

// Endian selects the byte order of the 16-byte form.
type Endian int

const (
	// BigEndian puts the most significant timestamp byte first. This is the
	// sortable layout.
	BigEndian Endian = iota
	// LittleEndian reverses all 16 bytes.
	LittleEndian
)

// FromParts builds a ULID from its most and least significant 64-bit words.
func FromParts(hi, lo uint64) ULID {
	return ULID{hi: hi, lo: lo}
}

// Compose builds a ULID from a millisecond timestamp and 10 bytes of
// randomness. Timestamps beyond MaxTimestamp return ErrTimestampOverflow.
func Compose(ms uint64, entropy [EntropySize]byte) (ULID, error) {
	if ms > MaxTimestamp {
		return ULID{}, ErrTimestampOverflow
	}
	hi := ms<<16 | uint64(binary.BigEndian.Uint16(entropy[0:2]))
	lo := binary.BigEndian.Uint64(entropy[2:])
	return ULID{hi: hi, lo: lo}, nil
}

// Parse decodes the canonical text form. Lowercase is accepted and the
// look-alikes I and L read as 1, O as 0.
func Parse(s string) (ULID, error) {
	hi, lo, err := parseCrockford(s, false)
	if err != nil {
		return ULID{}, err
	}
	return ULID{hi: hi, lo: lo}, nil
}

// ParseStrict is like Parse but rejects I, L and O with an
// *InvalidCharError. Lowercase alphabet symbols are still accepted.
func ParseStrict(s string) (ULID, error) {
	hi, lo, err := parseCrockford(s, true)
	if err != nil {
		return ULID{}, err
	}
	return ULID{hi: hi, lo: lo}, nil
}

// MustParse is like Parse but panics on error. For tests and constants.
func MustParse(s string) ULID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// FromBytes decodes exactly 16 bytes in the given order.
func FromBytes(b []byte, order Endian) (ULID, error) {
	if len(b) != BinarySize {
		return ULID{}, ErrInvalidByteArray
	}
	if order == LittleEndian {
		return ULID{
			hi: binary.LittleEndian.Uint64(b[8:16]),
			lo: binary.LittleEndian.Uint64(b[0:8]),
		}, nil
	}
	return ULID{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}, nil
}

// Hi returns the most significant 64 bits: timestamp and the top 16 random bits.
func (u ULID) Hi() uint64 { return u.hi }

// Lo returns the least significant 64 bits of randomness.
func (u ULID) Lo() uint64 { return u.lo }

// Timestamp returns the millisecond Unix timestamp held in bits 127..80.
func (u ULID) Timestamp() uint64 {
	return u.hi >> 16
}

// Time returns the timestamp as a time.Time in the local zone.
func (u ULID) Time() time.Time {
	return time.UnixMilli(int64(u.Timestamp()))
}

// Entropy returns the 80 random bits, big-endian.
func (u ULID) Entropy() [EntropySize]byte {
	var e [EntropySize]byte
	binary.BigEndian.PutUint16(e[0:2], uint16(u.hi))
	binary.BigEndian.PutUint64(e[2:], u.lo)
	return e
}

// Bytes returns the 16-byte form in the given order.
func (u ULID) Bytes(order Endian) [BinarySize]byte {
	var b [BinarySize]byte
	if order == LittleEndian {
		binary.LittleEndian.PutUint64(b[0:8], u.lo)
		binary.LittleEndian.PutUint64(b[8:16], u.hi)
		return b
	}
	binary.BigEndian.PutUint64(b[0:8], u.hi)
	binary.BigEndian.PutUint64(b[8:16], u.lo)
	return b
}

// String returns the canonical 26-character uppercase form.
func (u ULID) String() string {
	var buf [EncodedSize]byte
	return string(appendCrockford(buf[:0], u.hi, u.lo))
}

// AppendText appends the canonical text form to b. It never fails.
func (u ULID) AppendText(b []byte) ([]byte, error) {
	return appendCrockford(b, u.hi, u.lo), nil
}

// Increment returns u with its randomness increased by one. The carry out of
// the low word goes into the 16 random bits of the high word; it never
// reaches the timestamp; ErrRandomnessOverflow is returned instead.
func (u ULID) Increment() (ULID, error) {
	if u.lo != ^uint64(0) {
		return ULID{hi: u.hi, lo: u.lo + 1}, nil
	}
	if u.hi&randomHiMask == randomHiMask {
		return ULID{}, ErrRandomnessOverflow
	}
	return ULID{hi: u.hi + 1, lo: 0}, nil
}

// Compare returns -1, 0 or +1 ordering u and v by 128-bit magnitude.
func (u ULID) Compare(v ULID) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	}
	return 0
}

// Less reports whether u sorts before v.
func (u ULID) Less(v ULID) bool {
	return u.Compare(v) < 0
}

// IsZero reports whether u is Nil.
func (u ULID) IsZero() bool {
	return u == Nil
}
