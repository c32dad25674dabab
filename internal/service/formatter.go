package service

import (
	"fmt"

	"github.com/hardeep652/sihhackathon/internal/dataset"
	"github.com/hardeep652/sihhackathon/internal/model"
)

// FormatStructured renders an exactly matched record as the user-facing
// answer: district and state, year, the three volumetric metrics in MCM and
// the stage percentage with its severity category.
func FormatStructured(r model.Record) string {
	return fmt.Sprintf("Here’s what I found for %s (%s):\n\n%s", r.District, r.State, formatMetrics(r))
}

// FormatClosest renders a nearest-neighbor fallback record. The disclaimer
// prefix marks the match as approximate.
func FormatClosest(r model.Record) string {
	return fmt.Sprintf("I couldn’t find an exact match, but the closest data I have is:\n\n- District: %s (%s)\n%s",
		r.District, r.State, formatMetrics(r))
}

func formatMetrics(r model.Record) string {
	return fmt.Sprintf("- Year: %s\n- Recharge: %s MCM\n- Available: %s MCM\n- Extraction: %s MCM\n- Stage: %s%% (%s)",
		r.Year,
		dataset.FormatMetric(r.Recharge),
		dataset.FormatMetric(r.Available),
		dataset.FormatMetric(r.Extraction),
		dataset.FormatMetric(r.StagePct),
		ClassifyStageValue(r.StagePct))
}
