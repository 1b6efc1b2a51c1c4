package sqids

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Compile-time interface checks for ID
var (
	_ fmt.Stringer               = ID(0)
	_ driver.Valuer              = ID(0)
	_ sql.Scanner                = (*ID)(nil)
	_ encoding.TextMarshaler     = ID(0)
	_ encoding.TextUnmarshaler   = (*ID)(nil)
	_ encoding.BinaryMarshaler   = ID(0)
	_ encoding.BinaryUnmarshaler = (*ID)(nil)
	_ json.Marshaler             = ID(0)
	_ json.Unmarshaler           = (*ID)(nil)
)

// ID is a row identifier that is stored as a number and shown as a sqid.
// Its external form is DefaultCodec's encoding of the single number.
type ID uint64

func (id ID) Uint64() uint64 {
	return uint64(id)
}

// String returns the sqid of id, or "" if DefaultCodec cannot encode it.
func (id ID) String() string {
	s, _ := id.EncodeWith(DefaultCodec)
	return s
}

// EncodeWith returns the sqid of id under codec c.
func (id ID) EncodeWith(c *Sqids) (string, error) {
	return c.Encode([]uint64{uint64(id)})
}

// Parse parses a sqid into an ID using DefaultCodec.
func Parse(s string) (ID, error) {
	return ParseWith(DefaultCodec, s)
}

// ParseWith parses a sqid into an ID using codec c. The string must be the
// canonical encoding of exactly one number.
func ParseWith(c *Sqids, s string) (ID, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidID)
	}
	numbers := c.Decode(s)
	if len(numbers) != 1 {
		return 0, fmt.Errorf("%w: %q holds %d numbers", ErrInvalidID, s, len(numbers))
	}
	if enc, err := c.Encode(numbers); err != nil || enc != s {
		return 0, fmt.Errorf("%w: %q is not canonical", ErrInvalidID, s)
	}
	return ID(numbers[0]), nil
}

// FromStringOrZero returns an ID parsed from s, or 0 on error.
func FromStringOrZero(s string) ID {
	id, err := Parse(s)
	if err != nil {
		return 0
	}
	return id
}

// MarshalText implements encoding.TextMarshaler
func (id ID) MarshalText() ([]byte, error) {
	s, err := id.EncodeWith(DefaultCodec)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (id ID) MarshalJSON() ([]byte, error) {
	b, err := id.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(b))
}

// UnmarshalJSON implements json.Unmarshaler. Both the quoted sqid and a bare
// JSON number are accepted.
func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = 0
		return nil
	}
	if len(b) > 0 && b[0] != '"' {
		n, err := strconv.ParseUint(string(b), 10, 64)
		if err != nil {
			return errors.New("sqids: invalid JSON value")
		}
		*id = ID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.New("sqids: invalid JSON string")
	}
	return id.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer. Databases store the raw number.
func (id ID) Value() (driver.Value, error) {
	if uint64(id) > math.MaxInt64 {
		return nil, fmt.Errorf("sqids: id %d overflows int64", uint64(id))
	}
	return int64(id), nil
}

// Scan implements sql.Scanner. Text columns are parsed as sqids.
func (id *ID) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*id = 0
		return nil
	case ID:
		*id = v
		return nil
	case int64:
		if v < 0 {
			return ErrNegativeNumber
		}
		*id = ID(v)
		return nil
	case []byte:
		return id.UnmarshalText(v)
	case string:
		return id.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("sqids: cannot scan %T", src)
	}
}

// MarshalBinary implements encoding.BinaryMarshaler as 8 big-endian bytes.
func (id ID) MarshalBinary() ([]byte, error) {
	return binary.BigEndian.AppendUint64(nil, uint64(id)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("sqids: ID must be exactly 8 bytes, got %d", len(data))
	}
	*id = ID(binary.BigEndian.Uint64(data))
	return nil
}
