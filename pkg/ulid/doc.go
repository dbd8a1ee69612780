// Package ulid generates and encodes Universally Unique Lexicographically
// Sortable Identifiers.
//
// A ULID is 128 bits: a 48-bit millisecond Unix timestamp followed by 80
// bits of randomness. Its canonical text form is 26 characters of Crockford
// Base32, which sorts the same way as the binary value:
//
//	01ETGRM6448X1HM0PYWG2KT648
//	|--------||--------------|
//	 timestamp   randomness
//
// # Generation
//
// A Generator owns a clock and a randomness source and is used by a single
// goroutine:
//
//	g := ulid.NewGenerator()
//	id, err := g.Generate()
//
// GenerateMonotonic takes the previously emitted ULID and, within the same
// millisecond, returns it incremented by one instead of drawing new
// randomness. GenerateStrictlyMonotonic additionally reports ok=false when
// the clock has moved backwards and the result would not sort after the
// previous ULID.
//
// # Decoding
//
// Parse accepts lowercase and reads the look-alikes I and L as 1 and O as 0.
// ParseStrict rejects those look-alikes. Both reject U, any other character
// and any string that is not exactly 26 bytes long.
//
// # Serialization
//
// ULID implements encoding.TextMarshaler, encoding.BinaryMarshaler,
// json.Marshaler, yaml.Marshaler, sql.Scanner and driver.Valuer, always using
// the canonical text (or 16 big-endian bytes for binary). Wrap a value in
// Integer or UUIDString to serialize it as a 128-bit decimal or as a UUID.
package ulid
