package service

import (
	"testing"

	"github.com/hardeep652/sihhackathon/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStageValueBoundaries(t *testing.T) {
	tests := []struct {
		stage float64
		want  model.StageCategory
	}{
		{0, model.StageSafe},
		{69.9, model.StageSafe},
		{70.0, model.StageSemiCritical},
		{89.9, model.StageSemiCritical},
		{90.0, model.StageCritical},
		{99.9, model.StageCritical},
		{100.0, model.StageOverExploited},
		{250.0, model.StageOverExploited},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyStageValue(tt.stage), "stage %v", tt.stage)
	}
}

func TestClassifyStageText(t *testing.T) {
	assert.Equal(t, model.StageSemiCritical, ClassifyStage("85.5"))
	assert.Equal(t, model.StageSafe, ClassifyStage(" 12 "))
	assert.Equal(t, model.StageUnknown, ClassifyStage("not a number"))
	assert.Equal(t, model.StageUnknown, ClassifyStage(""))
}
