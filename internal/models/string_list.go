package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is a list of strings stored as a native text[] on postgres and as
// the postgres array literal in a text column elsewhere.
type StringList pq.StringArray

// Value encodes the list as an array literal. A nil list is stored as {}.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return pq.StringArray(l).Value()
}

// Scan decodes an array literal, NULL included, into a non-nil list.
func (l *StringList) Scan(src interface{}) error {
	if err := (*pq.StringArray)(l).Scan(src); err != nil {
		return err
	}
	if *l == nil {
		*l = StringList{}
	}
	return nil
}

// MarshalJSON writes an empty list as [].
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// GormDataType keeps schema parsing from treating the slice as a relation.
func (StringList) GormDataType() string {
	return "text"
}

// GormDBDataType picks text[] for postgres.
func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "TEXT[]"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	}
	return "TEXT"
}
