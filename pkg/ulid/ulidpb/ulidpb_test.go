package ulidpb

import (
	"encoding/hex"
	"testing"

	"github.com/getmockd/ulidgen/pkg/ulid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const known = "01ETGRM6448X1HM0PYWG2KT648"

func TestBytesValue(t *testing.T) {
	u := ulid.MustParse(known)

	m := ToBytesValue(u)
	assert.Equal(t, "0176a18a188447431a02dee4053d1888", hex.EncodeToString(m.GetValue()))

	got, err := FromBytesValue(m)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestBytesValue_WireRoundTrip(t *testing.T) {
	u := ulid.MustParse(known)

	data, err := proto.Marshal(ToBytesValue(u))
	require.NoError(t, err)

	var m wrapperspb.BytesValue
	require.NoError(t, proto.Unmarshal(data, &m))

	got, err := FromBytesValue(&m)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestFromBytesValue_Errors(t *testing.T) {
	_, err := FromBytesValue(nil)
	assert.ErrorIs(t, err, ErrNilMessage)

	_, err = FromBytesValue(wrapperspb.Bytes([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, ulid.ErrInvalidByteArray)

	_, err = FromBytesValue(&wrapperspb.BytesValue{})
	assert.ErrorIs(t, err, ulid.ErrInvalidByteArray)
}

func TestStringValue(t *testing.T) {
	u := ulid.MustParse(known)

	m := ToStringValue(u)
	assert.Equal(t, known, m.GetValue())

	got, err := FromStringValue(m)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = FromStringValue(wrapperspb.String("01etgrm6448x1hm0pywg2kt648"))
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestStringValue_JSONRoundTrip(t *testing.T) {
	u := ulid.MustParse(known)

	data, err := protojson.Marshal(ToStringValue(u))
	require.NoError(t, err)
	assert.JSONEq(t, `"`+known+`"`, string(data))

	var m wrapperspb.StringValue
	require.NoError(t, protojson.Unmarshal(data, &m))

	got, err := FromStringValue(&m)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestFromStringValue_Errors(t *testing.T) {
	_, err := FromStringValue(nil)
	assert.ErrorIs(t, err, ErrNilMessage)

	_, err = FromStringValue(wrapperspb.String("short"))
	assert.ErrorIs(t, err, ulid.ErrInvalidLength)

	_, err = FromStringValue(wrapperspb.String("01ETGRM6448X1HM0PYWG2KTU48"))
	assert.ErrorIs(t, err, ulid.ErrInvalidChar)
}
