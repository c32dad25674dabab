package service

import (
	"strconv"
	"strings"

	"github.com/hardeep652/sihhackathon/internal/model"
)

// ClassifyStageValue maps a stage percentage to its severity category.
// Thresholds are half-open: [0,70) Safe, [70,90) Semi-Critical,
// [90,100) Critical, [100,∞) Over-Exploited.
func ClassifyStageValue(stage float64) model.StageCategory {
	switch {
	case stage < 70:
		return model.StageSafe
	case stage < 90:
		return model.StageSemiCritical
	case stage < 100:
		return model.StageCritical
	default:
		return model.StageOverExploited
	}
}

// ClassifyStage classifies a stage value that may arrive as text. A value
// that does not parse as a number is Unknown, never an error.
func ClassifyStage(raw string) model.StageCategory {
	stage, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return model.StageUnknown
	}
	return ClassifyStageValue(stage)
}
