package ulid

import "unicode/utf8"

const (
	// EncodedSize is the length of the canonical text form.
	EncodedSize = 26

	// BinarySize is the length of the byte form.
	BinarySize = 16

	// Alphabet is Crockford's Base32 (excludes I, L, O, U to avoid ambiguity).
	Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	mask5   = 0x1F
	invalid = 0xFF
)

// decoding maps a byte to its 5-bit value, or invalid. Lowercase letters are
// accepted, and I/L decode as 1, O as 0. U has no value.
var decoding = [256]byte{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0x00
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0x10
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0x20
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0x30
	0xFF, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10, 0x11, 0x01, 0x12, 0x13, 0x01, 0x14, 0x15, 0x00, // 0x40
	0x16, 0x17, 0x18, 0x19, 0x1A, 0xFF, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0x50
	0xFF, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10, 0x11, 0x01, 0x12, 0x13, 0x01, 0x14, 0x15, 0x00, // 0x60
	0x16, 0x17, 0x18, 0x19, 0x1A, 0xFF, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0x70
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0x80
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0x90
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0xA0
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0xB0
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0xC0
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0xD0
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0xE0
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0xF0
}

// isAlias reports whether c is one of the lenient look-alikes I, L or O.
func isAlias(c byte) bool {
	switch c | 0x20 {
	case 'i', 'l', 'o':
		return true
	}
	return false
}

// appendCrockford appends the 26-character encoding of the pair (hi, lo).
// The first character carries the top 3 bits of hi; character 13 straddles
// the word boundary.
func appendCrockford(dst []byte, hi, lo uint64) []byte {
	return append(dst,
		Alphabet[hi>>61],
		Alphabet[(hi>>56)&mask5],
		Alphabet[(hi>>51)&mask5],
		Alphabet[(hi>>46)&mask5],
		Alphabet[(hi>>41)&mask5],
		Alphabet[(hi>>36)&mask5],
		Alphabet[(hi>>31)&mask5],
		Alphabet[(hi>>26)&mask5],
		Alphabet[(hi>>21)&mask5],
		Alphabet[(hi>>16)&mask5],
		Alphabet[(hi>>11)&mask5],
		Alphabet[(hi>>6)&mask5],
		Alphabet[(hi>>1)&mask5],
		Alphabet[((hi<<4)&mask5)|(lo>>60)],
		Alphabet[(lo>>55)&mask5],
		Alphabet[(lo>>50)&mask5],
		Alphabet[(lo>>45)&mask5],
		Alphabet[(lo>>40)&mask5],
		Alphabet[(lo>>35)&mask5],
		Alphabet[(lo>>30)&mask5],
		Alphabet[(lo>>25)&mask5],
		Alphabet[(lo>>20)&mask5],
		Alphabet[(lo>>15)&mask5],
		Alphabet[(lo>>10)&mask5],
		Alphabet[(lo>>5)&mask5],
		Alphabet[lo&mask5],
	)
}

// parseCrockford decodes s into the pair (hi, lo). With strict set, the
// look-alike letters are rejected instead of aliased.
func parseCrockford(s string, strict bool) (hi, lo uint64, err error) {
	if len(s) != EncodedSize {
		return 0, 0, ErrInvalidLength
	}

	var v [EncodedSize]uint64
	for i := 0; i < EncodedSize; i++ {
		c := s[i]
		d := decoding[c]
		if d == invalid || (strict && isAlias(c)) {
			return 0, 0, invalidChar(s, i)
		}
		if i == 0 && d > 7 {
			return 0, 0, ErrDataTypeOverflow
		}
		v[i] = uint64(d)
	}

	hi = v[0]<<61 | v[1]<<56 | v[2]<<51 | v[3]<<46 | v[4]<<41 |
		v[5]<<36 | v[6]<<31 | v[7]<<26 | v[8]<<21 | v[9]<<16 |
		v[10]<<11 | v[11]<<6 | v[12]<<1 | v[13]>>4
	lo = v[13]<<60 | v[14]<<55 | v[15]<<50 | v[16]<<45 | v[17]<<40 |
		v[18]<<35 | v[19]<<30 | v[20]<<25 | v[21]<<20 | v[22]<<15 |
		v[23]<<10 | v[24]<<5 | v[25]
	return hi, lo, nil
}

func invalidChar(s string, pos int) error {
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return &InvalidCharError{Char: r, Pos: pos}
}
