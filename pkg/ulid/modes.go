package ulid

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Integer serializes a ULID as its unsigned 128-bit decimal value instead
// of the canonical text. Convert with ulid.Integer(u) and ulid.ULID(i).
//
//	type Row struct {
//	    ID ulid.Integer `json:"id"`
//	}
type Integer ULID

// UUIDString serializes a ULID as a canonical UUID string.
type UUIDString ULID

var errNotInteger = errors.New("ulid: not an unsigned 128-bit integer")

func (i Integer) bigInt() *big.Int {
	n := new(big.Int).SetUint64(i.hi)
	n.Lsh(n, 64)
	return n.Or(n, new(big.Int).SetUint64(i.lo))
}

// String returns the decimal form.
func (i Integer) String() string {
	return i.bigInt().String()
}

// ParseInteger parses the decimal form of a 128-bit unsigned integer.
func ParseInteger(s string) (ULID, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 || n.BitLen() > 128 {
		return ULID{}, fmt.Errorf("%w: %q", errNotInteger, s)
	}
	var b [BinarySize]byte
	n.FillBytes(b[:])
	return FromBytes(b[:], BigEndian)
}

// MarshalText implements encoding.TextMarshaler.
func (i Integer) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Integer) UnmarshalText(text []byte) error {
	u, err := ParseInteger(string(text))
	if err != nil {
		return err
	}
	*i = Integer(u)
	return nil
}

// MarshalJSON encodes i as a bare JSON number.
func (i Integer) MarshalJSON() ([]byte, error) {
	return i.MarshalText()
}

// UnmarshalJSON accepts a JSON number, or a JSON string holding one for
// clients that cannot represent 128-bit numbers. null leaves i unchanged.
func (i *Integer) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return i.UnmarshalText([]byte(s))
	}
	return i.UnmarshalText(data)
}

// MarshalYAML emits a plain, untagged scalar. Returning a string would be
// quoted because it resolves as a number.
func (i Integer) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: i.String()}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Integer) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("ulid: line %d: expected scalar, got %s", node.Line, kindName(node.Kind))
	}
	return i.UnmarshalText([]byte(node.Value))
}

// String returns the UUID form.
func (s UUIDString) String() string {
	return ULID(s).UUID().String()
}

// MarshalText implements encoding.TextMarshaler.
func (s UUIDString) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any form accepted by
// uuid.ParseBytes is allowed.
func (s *UUIDString) UnmarshalText(text []byte) error {
	id, err := uuid.ParseBytes(text)
	if err != nil {
		return fmt.Errorf("ulid: %w", err)
	}
	*s = UUIDString(FromUUID(id))
	return nil
}

// MarshalJSON encodes s as a JSON string.
func (s UUIDString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string. null leaves s unchanged.
func (s *UUIDString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("ulid: expected JSON string: %w", err)
	}
	return s.UnmarshalText([]byte(str))
}

// MarshalYAML implements yaml.Marshaler.
func (s UUIDString) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *UUIDString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("ulid: line %d: expected scalar, got %s", node.Line, kindName(node.Kind))
	}
	return s.UnmarshalText([]byte(node.Value))
}
