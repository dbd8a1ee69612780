package ulid

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// UUID reinterprets the 128 bits of u as a UUID, big-endian. No version or
// variant bits are set; the conversion is lossless both ways.
func (u ULID) UUID() uuid.UUID {
	return uuid.UUID(u.Bytes(BigEndian))
}

// FromUUID reinterprets the 128 bits of id as a ULID.
func FromUUID(id uuid.UUID) ULID {
	return ULID{
		hi: binary.BigEndian.Uint64(id[0:8]),
		lo: binary.BigEndian.Uint64(id[8:16]),
	}
}
