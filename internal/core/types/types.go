// Package types holds small column types shared by the domain models.
package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as a JSON text column, so
// the same model works on both postgres and the sqlite used in tests.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// Int64List is an ordered list of ids stored as a JSON text column.
type Int64List []int64

func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		l = Int64List{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *Int64List) Scan(value interface{}) error {
	if value == nil {
		*l = Int64List{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into Int64List", value)
	}
}
