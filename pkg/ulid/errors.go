package ulid

import (
	"errors"
	"fmt"
)

// Decoding, construction and generation errors. Every failure is returned,
// never panicked, except by the Must* and Make helpers.
var (
	ErrInvalidLength      = errors.New("ulid: invalid length")
	ErrInvalidChar        = errors.New("ulid: invalid character")
	ErrDataTypeOverflow   = errors.New("ulid: value must not exceed '7ZZZZZZZZZZZZZZZZZZZZZZZZZ'")
	ErrInvalidByteArray   = errors.New("ulid: data must be 16 bytes in length")
	ErrTimestampOverflow  = errors.New("ulid: timestamp does not fit in 48 bits")
	ErrGenerateRandom     = errors.New("ulid: generate random")
	ErrRandomnessOverflow = errors.New("ulid: randomness overflow")
)

// InvalidCharError reports a character outside the decode table, or a
// look-alike letter rejected by strict parsing. It matches ErrInvalidChar.
type InvalidCharError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("ulid: invalid character %q at position %d", e.Char, e.Pos)
}

// Is reports whether target is ErrInvalidChar.
func (e *InvalidCharError) Is(target error) bool {
	return target == ErrInvalidChar
}

// GenerateRandomError wraps a failure of the randomness source. It matches
// ErrGenerateRandom; callers may retry.
type GenerateRandomError struct {
	Err error
}

func (e *GenerateRandomError) Error() string {
	return "ulid: generate random: " + e.Err.Error()
}

// Unwrap returns the underlying randomness source error.
func (e *GenerateRandomError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrGenerateRandom.
func (e *GenerateRandomError) Is(target error) bool {
	return target == ErrGenerateRandom
}
