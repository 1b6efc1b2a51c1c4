package sqids

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
)

var (
	_ driver.Valuer            = NullID{}
	_ sql.Scanner              = (*NullID)(nil)
	_ encoding.TextMarshaler   = NullID{}
	_ encoding.TextUnmarshaler = (*NullID)(nil)
	_ json.Marshaler           = NullID{}
	_ json.Unmarshaler         = (*NullID)(nil)
)

// NullID represents an ID column that may be NULL.
type NullID struct {
	ID    ID
	Valid bool
}

// NullIDFrom returns a valid NullID holding id.
func NullIDFrom(id ID) NullID {
	return NullID{ID: id, Valid: true}
}

// Ptr returns nil for NULL, or a pointer to a copy of the ID.
func (n NullID) Ptr() *ID {
	if !n.Valid {
		return nil
	}
	id := n.ID
	return &id
}

// Value implements the driver.Valuer interface.
func (n NullID) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.ID.Value()
}

// Scan implements the sql.Scanner interface. Valid is only set when the
// source holds a usable id.
func (n *NullID) Scan(src interface{}) error {
	n.ID, n.Valid = 0, false
	if src == nil {
		return nil
	}
	if err := n.ID.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalText encodes NULL as empty text.
func (n NullID) MarshalText() ([]byte, error) {
	if !n.Valid {
		return []byte{}, nil
	}
	return n.ID.MarshalText()
}

// UnmarshalText treats empty text as NULL.
func (n *NullID) UnmarshalText(text []byte) error {
	n.ID, n.Valid = 0, false
	if len(text) == 0 {
		return nil
	}
	if err := n.ID.UnmarshalText(text); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON encodes NULL as null and anything else as the sqid string.
func (n NullID) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.ID.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullID) UnmarshalJSON(b []byte) error {
	n.ID, n.Valid = 0, false
	if string(b) == "null" {
		return nil
	}
	if err := n.ID.UnmarshalJSON(b); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
