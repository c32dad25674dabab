package model

// StageCategory is the severity bucket of a stage-of-development
// percentage.
type StageCategory string

const (
	StageSafe          StageCategory = "Safe"
	StageSemiCritical  StageCategory = "Semi-Critical"
	StageCritical      StageCategory = "Critical"
	StageOverExploited StageCategory = "Over-Exploited"
	StageUnknown       StageCategory = "Unknown"
)
