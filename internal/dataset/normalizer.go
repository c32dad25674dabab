package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/hardeep652/sihhackathon/internal/model"
)

// Canonical column names after header normalization (trim + upper-case).
const (
	ColumnDistrict   = "DISTRICT"
	ColumnState      = "STATE"
	ColumnYear       = "YEAR"
	ColumnRecharge   = "RECHARGE"
	ColumnAvailable  = "AVAILABLE"
	ColumnExtraction = "EXTRACTION"
	ColumnStage      = "STAGE (%)"
)

// Normalize turns raw source rows into the immutable Record table.
//
// Column names are matched case- and whitespace-insensitively. District and
// state values are trimmed and upper-cased so downstream matching never has
// to care about source casing. The four metric columns are coerced to
// numbers; anything unparseable becomes 0 rather than an error. A missing
// year column yields the "NA" sentinel. Normalizing an already-normalized
// table is a no-op.
func Normalize(rows []RawRow) []model.Record {
	records := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		cols := canonicalize(row)
		year, ok := cols[ColumnYear]
		if !ok {
			year = model.YearUnknown
		} else {
			year = strings.TrimSpace(year)
		}
		records = append(records, model.Record{
			District:   normalizeName(cols[ColumnDistrict]),
			State:      normalizeName(cols[ColumnState]),
			Year:       year,
			Recharge:   coerceNumeric(cols[ColumnRecharge]),
			Available:  coerceNumeric(cols[ColumnAvailable]),
			Extraction: coerceNumeric(cols[ColumnExtraction]),
			StagePct:   coerceNumeric(cols[ColumnStage]),
		})
	}
	return records
}

// DistinctDistricts returns the distinct district names in first-seen table
// order. The order is load-bearing: entity extraction takes the first
// substring match, so a reordering would change which district shadows
// another.
func DistinctDistricts(records []model.Record) []string {
	seen := make(map[string]struct{}, len(records))
	var districts []string
	for _, r := range records {
		if r.District == "" {
			continue
		}
		if _, ok := seen[r.District]; ok {
			continue
		}
		seen[r.District] = struct{}{}
		districts = append(districts, r.District)
	}
	return districts
}

// canonicalize re-keys a raw row by trimmed, upper-cased column names.
func canonicalize(row RawRow) map[string]string {
	cols := make(map[string]string, len(row))
	for k, v := range row {
		cols[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	return cols
}

func normalizeName(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}

// coerceNumeric parses a metric value. Empty, non-numeric and non-finite
// values all become 0; absent data is modeled as zero, not as missing.
// Metrics are volumes and percentages, so negatives are clamped to 0 too.
func coerceNumeric(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
