package service

import (
	"strings"

	"github.com/hardeep652/sihhackathon/internal/model"
)

// SelectRow picks exactly one record for a district that was matched in the
// query. The caller guarantees the district came from the record table, so
// the district filter is never empty.
//
// With a year token, rows whose year field contains the token as a
// substring win (so "2020" matches a stored "2020-21"); when no row of the
// district carries the year, the first district row is returned as a
// best-effort answer rather than a hard miss. Without a year token, the row
// with the greatest year string is taken as the most recent; this is a
// plain string comparison, stable for "YYYY" and an accepted approximation
// for mixed "YYYY-NN" forms.
func SelectRow(records []model.Record, district, year string) model.Record {
	var rows []model.Record
	for _, r := range records {
		if r.District == district {
			rows = append(rows, r)
		}
	}

	if year != "" {
		for _, r := range rows {
			if strings.Contains(r.Year, year) {
				return r
			}
		}
		return rows[0]
	}

	latest := rows[0]
	for _, r := range rows[1:] {
		if r.Year > latest.Year {
			latest = r
		}
	}
	return latest
}
