package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Options holds the answer choices of a question in one of two shapes: an
// ordered list of option texts, or a mapping from a single-letter label to
// the option text. PDF ingestion always produces the labeled form; the admin
// API accepts either. Exactly one of the two fields is set.
type Options struct {
	List    []string
	Labeled map[string]string
}

func (o Options) Empty() bool {
	return len(o.List) == 0 && len(o.Labeled) == 0
}

func (o Options) MarshalJSON() ([]byte, error) {
	if o.Labeled != nil {
		return json.Marshal(o.Labeled)
	}
	if o.List != nil {
		return json.Marshal(o.List)
	}
	return []byte("null"), nil
}

func (o *Options) UnmarshalJSON(data []byte) error {
	*o = Options{}
	if string(data) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		o.List = list
		return nil
	}

	var labeled map[string]string
	if err := json.Unmarshal(data, &labeled); err == nil {
		o.Labeled = labeled
		return nil
	}

	return fmt.Errorf("options must be a list of strings or a label-to-text map")
}

// Value and Scan let GORM persist Options as a JSON column.
func (o Options) Value() (driver.Value, error) {
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *Options) Scan(src interface{}) error {
	if src == nil {
		*o = Options{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return o.UnmarshalJSON(v)
	case string:
		return o.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into Options", src)
	}
}
