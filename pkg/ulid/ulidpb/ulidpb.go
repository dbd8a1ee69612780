// Package ulidpb converts ULIDs to and from protobuf well-known wrapper
// messages, for services that carry identifiers in google.protobuf.BytesValue
// or google.protobuf.StringValue fields.
package ulidpb

import (
	"errors"
	"fmt"

	"github.com/getmockd/ulidgen/pkg/ulid"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ErrNilMessage is returned when a nil wrapper message is converted.
var ErrNilMessage = errors.New("ulidpb: nil message")

// ToBytesValue wraps the 16 big-endian bytes of u.
func ToBytesValue(u ulid.ULID) *wrapperspb.BytesValue {
	b := u.Bytes(ulid.BigEndian)
	return wrapperspb.Bytes(b[:])
}

// FromBytesValue decodes a BytesValue holding 16 big-endian bytes.
func FromBytesValue(m *wrapperspb.BytesValue) (ulid.ULID, error) {
	if m == nil {
		return ulid.Nil, ErrNilMessage
	}
	u, err := ulid.FromBytes(m.GetValue(), ulid.BigEndian)
	if err != nil {
		return ulid.Nil, fmt.Errorf("ulidpb: %w", err)
	}
	return u, nil
}

// ToStringValue wraps the canonical text of u.
func ToStringValue(u ulid.ULID) *wrapperspb.StringValue {
	return wrapperspb.String(u.String())
}

// FromStringValue parses a StringValue leniently.
func FromStringValue(m *wrapperspb.StringValue) (ulid.ULID, error) {
	if m == nil {
		return ulid.Nil, ErrNilMessage
	}
	u, err := ulid.Parse(m.GetValue())
	if err != nil {
		return ulid.Nil, fmt.Errorf("ulidpb: %w", err)
	}
	return u, nil
}
