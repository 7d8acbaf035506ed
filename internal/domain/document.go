package domain

import (
	"database/sql/driver"
	"errors"
)

// Document is an opaque JSON document (user preferences, event properties).
// It round-trips losslessly between the API and the JSONB column: nil means
// "no document" and serializes as JSON null.
type Document []byte

func (d Document) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	if d == nil {
		return errors.New("domain.Document: UnmarshalJSON on nil pointer")
	}
	if string(data) == "null" {
		*d = nil
		return nil
	}
	*d = append((*d)[0:0], data...)
	return nil
}

func (d Document) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return []byte(d), nil
}

func (d *Document) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		*d = append((*d)[0:0], v...)
		return nil
	case string:
		*d = Document(v)
		return nil
	default:
		return errors.New("domain.Document: unsupported scan type")
	}
}
