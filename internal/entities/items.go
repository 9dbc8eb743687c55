package entities

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

var emptyItems = []byte("[]")

// Items is the order item list kept as raw JSON. Its structure is owned by
// the client; only JSON well-formedness is required.
type Items []byte

// Value writes missing items as NULL.
func (i Items) Value() (driver.Value, error) {
	if len(i) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, i); err != nil {
		return nil, fmt.Errorf("cannot serialize items: %w", err)
	}

	return buf.String(), nil
}

func (i *Items) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*i = nil
	case []byte:
		*i = append(Items(nil), value...)
	case string:
		*i = Items(value)
	default:
		return fmt.Errorf("cannot scan items from %T", src)
	}

	return nil
}

func (i Items) MarshalJSON() ([]byte, error) {
	if len(i) == 0 {
		return emptyItems, nil
	}

	return i, nil
}

func (i *Items) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*i = nil
		return nil
	}

	*i = append(Items(nil), data...)

	return nil
}
