package entities

import "time"

// TableRecord backs the local record store: one row per record, the
// suffixed field map serialized as JSON. Ids are assigned by sqlite
// autoincrement, shared across tables like the hosted platform does.
type TableRecord struct {
	ID        uint           `gorm:"primaryKey"`
	Table     string         `gorm:"column:table_name;index"`
	Fields    map[string]any `gorm:"serializer:json"`
	CreatedOn time.Time
	UpdatedOn time.Time
}

func (TableRecord) TableName() string { return "table_records" }
