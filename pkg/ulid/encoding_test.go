package ulid

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	knownUUID    = "0176a18a-1884-4743-1a02-dee4053d1888"
	knownDecimal = "1945195434112195390215103893317949576"
	maxDecimal   = "340282366920938463463374607431768211455"
)

var (
	_ encoding.TextMarshaler     = ULID{}
	_ encoding.TextUnmarshaler   = (*ULID)(nil)
	_ encoding.BinaryMarshaler   = ULID{}
	_ encoding.BinaryUnmarshaler = (*ULID)(nil)
	_ json.Marshaler             = ULID{}
	_ json.Unmarshaler           = (*ULID)(nil)
	_ yaml.Marshaler             = ULID{}
	_ yaml.Unmarshaler           = (*ULID)(nil)
	_ driver.Valuer              = ULID{}
	_ sql.Scanner                = (*ULID)(nil)
)

type record struct {
	ID   ULID   `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func TestJSON(t *testing.T) {
	in := record{ID: MustParse(knownULID), Name: "alpha"}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+knownULID+`","name":"alpha"}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSON_Decode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ULID
		wantErr error
	}{
		{"lowercase", `{"id":"01etgrm6448x1hm0pywg2kt648"}`, MustParse(knownULID), nil},
		{"null keeps zero value", `{"id":null}`, Nil, nil},
		{"missing", `{}`, Nil, nil},
		{"too short", `{"id":"01ETGRM"}`, Nil, ErrInvalidLength},
		{"invalid char", `{"id":"01ETGRM6448X1HM0PYWG2KTU48"}`, Nil, ErrInvalidChar},
		{"overflow", `{"id":"81ETGRM6448X1HM0PYWG2KT648"}`, Nil, ErrDataTypeOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out record
			err := json.Unmarshal([]byte(tt.input), &out)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.ID)
		})
	}
}

func TestJSON_RejectsNonString(t *testing.T) {
	var out record
	err := json.Unmarshal([]byte(`{"id":12345}`), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected JSON string")
}

func TestYAML(t *testing.T) {
	in := record{ID: MustParse(knownULID), Name: "alpha"}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "id: "+knownULID+"\nname: alpha\n", string(data))

	var out record
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestYAML_NilRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(record{ID: Nil})
	require.NoError(t, err)

	var out record
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, Nil, out.ID)
}

func TestYAML_Decode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ULID
		wantErr string
	}{
		{"quoted", "id: \"" + knownULID + "\"", MustParse(knownULID), ""},
		{"null", "id: null", Nil, ""},
		{"tilde", "id: ~", Nil, ""},
		{"sequence", "id: [1, 2]", Nil, "expected scalar, got sequence"},
		{"mapping", "id: {a: b}", Nil, "expected scalar, got mapping"},
		{"invalid", "id: nope", Nil, "invalid length"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out record
			err := yaml.Unmarshal([]byte(tt.input), &out)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.ID)
		})
	}
}

func TestBinary(t *testing.T) {
	u := MustParse(knownULID)

	data, err := u.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, "0176a18a188447431a02dee4053d1888", hex.EncodeToString(data))

	var out ULID
	require.NoError(t, out.UnmarshalBinary(data))
	assert.Equal(t, u, out)

	assert.ErrorIs(t, out.UnmarshalBinary(data[:15]), ErrInvalidByteArray)
}

func TestText(t *testing.T) {
	u := MustParse(knownULID)

	data, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, knownULID, string(data))

	var out ULID
	require.NoError(t, out.UnmarshalText([]byte("01etgrm6448x1hm0pywg2kt648")))
	assert.Equal(t, u, out)
}

func TestSQL_Value(t *testing.T) {
	v, err := MustParse(knownULID).Value()
	require.NoError(t, err)
	assert.Equal(t, knownULID, v)
}

func TestSQL_Scan(t *testing.T) {
	u := MustParse(knownULID)
	raw := u.Bytes(BigEndian)

	tests := []struct {
		name    string
		src     any
		want    ULID
		wantErr bool
	}{
		{"string", knownULID, u, false},
		{"text bytes", []byte(knownULID), u, false},
		{"binary bytes", raw[:], u, false},
		{"null", nil, Nil, false},
		{"bad string", "nope", Nil, true},
		{"bad bytes", []byte{1, 2, 3}, Nil, true},
		{"unsupported type", int64(42), Nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := MustParse("01ARYZ6S410000000000000000")
			err := out.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

type integerRecord struct {
	ID Integer `json:"id" yaml:"id"`
}

func TestInteger(t *testing.T) {
	u := MustParse(knownULID)
	assert.Equal(t, knownDecimal, Integer(u).String())
	assert.Equal(t, "0", Integer(Nil).String())
	assert.Equal(t, maxDecimal, Integer(Max).String())

	got, err := ParseInteger(knownDecimal)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = ParseInteger(maxDecimal)
	require.NoError(t, err)
	assert.Equal(t, Max, got)
}

func TestParseInteger_Errors(t *testing.T) {
	for _, input := range []string{
		"",
		"-1",
		"abc",
		"1.5",
		"340282366920938463463374607431768211456",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseInteger(input)
			assert.ErrorIs(t, err, errNotInteger)
		})
	}
}

func TestInteger_JSON(t *testing.T) {
	in := integerRecord{ID: Integer(MustParse(knownULID))}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"id":`+knownDecimal+`}`, string(data))

	var out integerRecord
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	var quoted integerRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id":"`+knownDecimal+`"}`), &quoted))
	assert.Equal(t, in, quoted)

	var bad integerRecord
	assert.Error(t, json.Unmarshal([]byte(`{"id":-5}`), &bad))
}

func TestInteger_YAML(t *testing.T) {
	in := integerRecord{ID: Integer(MustParse(knownULID))}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "id: "+knownDecimal+"\n", string(data))

	var out integerRecord
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

type uuidRecord struct {
	ID UUIDString `json:"id" yaml:"id"`
}

func TestUUIDString_JSON(t *testing.T) {
	in := uuidRecord{ID: UUIDString(MustParse(knownULID))}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"`+knownUUID+`"}`, string(data))

	var out uuidRecord
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	var braced uuidRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id":"{`+knownUUID+`}"}`), &braced))
	assert.Equal(t, in, braced)

	var bad uuidRecord
	assert.Error(t, json.Unmarshal([]byte(`{"id":"`+knownULID+`"}`), &bad))
}

func TestUUIDString_YAML(t *testing.T) {
	in := uuidRecord{ID: UUIDString(MustParse(knownULID))}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "id: "+knownUUID+"\n", string(data))

	var out uuidRecord
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
