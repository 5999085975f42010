package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Key is the opaque ordering key of a customer. The server decides the order;
// clients only store and forward it.
type Key string

// IsZero reports whether the key is absent.
func (k Key) IsZero() bool {
	return k == ""
}

func (k Key) String() string {
	return string(k)
}

// UnmarshalJSON accepts both string and numeric ids.
func (k *Key) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*k = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode key: %w", err)
		}
		*k = Key(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("failed to decode key: %w", err)
	}
	*k = Key(n.String())
	return nil
}

type Customer struct {
	ID          Key    `json:"id" yaml:"id"`
	FirstName   string `json:"firstName" yaml:"firstName"`
	LastName    string `json:"lastName" yaml:"lastName"`
	PhoneNumber string `json:"phoneNumber" yaml:"phoneNumber"`
}
