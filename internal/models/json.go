package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSON holds a structured payload whose shape the schema does not fix:
// template field schemas, generated document form data and legal aid
// financial status.
type JSON struct {
	datatypes.JSON
}

// NewJSON wraps raw JSON bytes.
func NewJSON(raw []byte) JSON {
	return JSON{JSON: datatypes.JSON(raw)}
}

// ParseJSON accepts raw only if it is a well formed JSON value other than null.
func ParseJSON(raw []byte) (JSON, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || !json.Valid(trimmed) {
		return JSON{}, false
	}
	return NewJSON(trimmed), true
}

func (j JSON) Value() (driver.Value, error) {
	return j.JSON.Value()
}

func (j *JSON) Scan(value interface{}) error {
	return j.JSON.Scan(value)
}

// MarshalJSON emits the raw payload.
func (j JSON) MarshalJSON() ([]byte, error) {
	return j.JSON.MarshalJSON()
}

// UnmarshalJSON stores the raw payload.
func (j *JSON) UnmarshalJSON(b []byte) error {
	return j.JSON.UnmarshalJSON(b)
}

// GormDBDataType picks the column type per dialect. SQL Server has no json
// type, so payloads are stored as NVARCHAR(MAX) there.
func (JSON) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	case "mysql", "sqlite":
		return "JSON"
	case "sqlserver":
		return "NVARCHAR(MAX)"
	default:
		return "TEXT"
	}
}
