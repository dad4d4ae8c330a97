package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// MetaType is the declared type of a metadata value
type MetaType string

const (
	MetaTypeString  MetaType = "string"
	MetaTypeNumber  MetaType = "number"
	MetaTypeBoolean MetaType = "boolean"
	MetaTypeJSON    MetaType = "json"
)

// Metadata is a key-value site setting; MetaKey is its natural identifier
type Metadata struct {
	ID          int64     `json:"id"`
	MetaKey     string    `json:"metaKey"`
	MetaValue   string    `json:"metaValue"`
	MetaType    MetaType  `json:"metaType"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	IsEditable  bool      `json:"isEditable"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Value decodes MetaValue according to MetaType: string, float64, bool or the
// decoded JSON document.
func (m Metadata) Value() (interface{}, error) {
	switch m.MetaType {
	case MetaTypeString, "":
		return m.MetaValue, nil
	case MetaTypeNumber:
		n, err := strconv.ParseFloat(m.MetaValue, 64)
		if err != nil {
			return nil, fmt.Errorf("metadata %s: invalid number %q: %w", m.MetaKey, m.MetaValue, err)
		}
		return n, nil
	case MetaTypeBoolean:
		b, err := strconv.ParseBool(m.MetaValue)
		if err != nil {
			return nil, fmt.Errorf("metadata %s: invalid boolean %q: %w", m.MetaKey, m.MetaValue, err)
		}
		return b, nil
	case MetaTypeJSON:
		var v interface{}
		if err := json.Unmarshal([]byte(m.MetaValue), &v); err != nil {
			return nil, fmt.Errorf("metadata %s: invalid json: %w", m.MetaKey, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("metadata %s: unknown type %q", m.MetaKey, m.MetaType)
	}
}
