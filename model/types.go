package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a fresh entity identifier. Ids are opaque uuid strings,
// assigned once at creation.
func NewID() string {
	return uuid.NewString()
}

// StringList is a []string stored as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
}

// Location is a shared location document stored as a JSON column.
type Location struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	Address   string  `json:"address,omitempty"`
	IsShared  bool    `json:"is_shared"`
}

func (loc Location) Value() (driver.Value, error) {
	b, err := json.Marshal(loc)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (loc *Location) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, loc)
	case string:
		return json.Unmarshal([]byte(v), loc)
	default:
		return fmt.Errorf("unsupported type %T for Location", src)
	}
}

// NullLocation wraps an optional Location so a NULL column and a JSON null
// both map to a nil document.
type NullLocation struct {
	Location *Location
}

func (n NullLocation) Value() (driver.Value, error) {
	if n.Location == nil {
		return nil, nil
	}
	return n.Location.Value()
}

func (n *NullLocation) Scan(src interface{}) error {
	if src == nil {
		n.Location = nil
		return nil
	}
	loc := &Location{}
	if err := loc.Scan(src); err != nil {
		return err
	}
	n.Location = loc
	return nil
}

func (n NullLocation) MarshalJSON() ([]byte, error) {
	if n.Location == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Location)
}

func (n *NullLocation) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		n.Location = nil
		return nil
	}
	loc := &Location{}
	if err := json.Unmarshal(b, loc); err != nil {
		return err
	}
	n.Location = loc
	return nil
}

