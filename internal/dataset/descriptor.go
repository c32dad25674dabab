package dataset

import (
	"fmt"
	"strconv"

	"github.com/hardeep652/sihhackathon/internal/model"
)

// Descriptor renders one record as the text summary fed to the embedding
// model. Descriptors are built once per snapshot and are positionally
// aligned with the record table: descriptor i describes record i.
func Descriptor(r model.Record) string {
	return fmt.Sprintf("%s, %s, Year %s: Recharge %s, Available %s, Extraction %s, Stage %s",
		r.District, r.State, r.Year,
		FormatMetric(r.Recharge), FormatMetric(r.Available),
		FormatMetric(r.Extraction), FormatMetric(r.StagePct))
}

// BuildDescriptors builds the descriptor list for a record table.
func BuildDescriptors(records []model.Record) []string {
	descriptors := make([]string, len(records))
	for i, r := range records {
		descriptors[i] = Descriptor(r)
	}
	return descriptors
}

// FormatMetric renders a metric with the shortest exact decimal form, so
// 120.5 stays "120.5" and 300 stays "300".
func FormatMetric(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
