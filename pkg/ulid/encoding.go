package ulid

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
func (u ULID) MarshalText() ([]byte, error) {
	return appendCrockford(make([]byte, 0, EncodedSize), u.hi, u.lo), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using lenient parsing.
func (u *ULID) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler as 16 big-endian bytes.
func (u ULID) MarshalBinary() ([]byte, error) {
	b := u.Bytes(BigEndian)
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *ULID) UnmarshalBinary(data []byte) error {
	v, err := FromBytes(data, BigEndian)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalJSON encodes u as its canonical text in a JSON string.
func (u ULID) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, EncodedSize+2)
	b = append(b, '"')
	b = appendCrockford(b, u.hi, u.lo)
	return append(b, '"'), nil
}

// UnmarshalJSON decodes a JSON string. null leaves u unchanged.
func (u *ULID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("ulid: expected JSON string: %w", err)
	}
	return u.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (u ULID) MarshalYAML() (any, error) {
	return u.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar nodes.
func (u *ULID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("ulid: line %d: expected scalar, got %s", node.Line, kindName(node.Kind))
	}
	if node.Tag == "!!null" {
		return nil
	}
	return u.UnmarshalText([]byte(node.Value))
}

// Value implements driver.Valuer. ULIDs are stored as canonical text.
func (u ULID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan implements sql.Scanner. It accepts canonical text as string or
// []byte, or the 16-byte binary form. NULL scans as Nil.
func (u *ULID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*u = Nil
		return nil
	case string:
		return u.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == BinarySize {
			return u.UnmarshalBinary(v)
		}
		return u.UnmarshalText(v)
	default:
		return fmt.Errorf("ulid: cannot scan %T", src)
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "scalar"
	}
}
