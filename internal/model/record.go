// Package model contains the application's data model definitions.
package model

// YearUnknown is the sentinel year assigned when the source carries no year
// column at all.
const YearUnknown = "NA"

// Record is one normalized row of the groundwater dataset. District and
// state are upper-cased and trimmed; the four metrics are always finite,
// non-negative numbers (unparseable source values become zero). Records are
// immutable after normalization.
type Record struct {
	District   string  `json:"district"`
	State      string  `json:"state"`
	Year       string  `json:"year"`
	Recharge   float64 `json:"recharge"`
	Available  float64 `json:"available"`
	Extraction float64 `json:"extraction"`
	StagePct   float64 `json:"stagePct"`
}

// ExtractedEntities is the transient result of entity extraction over one
// query. Empty strings mean the entity was absent from the query.
type ExtractedEntities struct {
	Year     string
	District string
}

// GroundwaterRecord is the gorm model backing the "mysql" dataset source.
// Values are stored as text so the normalizer applies the same coercion
// rules to every source.
type GroundwaterRecord struct {
	ID         uint   `gorm:"primaryKey"`
	District   string `gorm:"size:128;index"`
	State      string `gorm:"size:128"`
	Year       string `gorm:"size:16"`
	Recharge   string `gorm:"size:32"`
	Available  string `gorm:"size:32"`
	Extraction string `gorm:"size:32"`
	StagePct   string `gorm:"size:32;column:stage_pct"`
}

func (GroundwaterRecord) TableName() string {
	return "groundwater_records"
}
