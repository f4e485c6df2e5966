// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice is a JSON column holding an ordered list of strings. Ordering
// is preserved across round trips; the member team list relies on that.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Scan unmarshals a JSON column into the slice.
func (s *StringSlice) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("StringSlice: expected []byte, got %T", src)
	}
}

// Contains reports whether name is an element of the slice (exact match).
func (s StringSlice) Contains(name string) bool {
	for _, v := range s {
		if v == name {
			return true
		}
	}
	return false
}

// ContactDetails is the JSONB column for a record's contact channels.
type ContactDetails struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

func (c ContactDetails) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan unmarshals JSONB bytes into the struct.
func (c *ContactDetails) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("ContactDetails: expected []byte, got %T", src)
	}
}
