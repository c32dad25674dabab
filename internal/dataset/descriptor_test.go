package dataset

import (
	"testing"

	"github.com/hardeep652/sihhackathon/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDescriptor(t *testing.T) {
	r := model.Record{
		District:   "GUNTUR",
		State:      "ANDHRA PRADESH",
		Year:       "2020-21",
		Recharge:   120.5,
		Available:  98.2,
		Extraction: 75.4,
		StagePct:   76.8,
	}

	assert.Equal(t,
		"GUNTUR, ANDHRA PRADESH, Year 2020-21: Recharge 120.5, Available 98.2, Extraction 75.4, Stage 76.8",
		Descriptor(r))
}

func TestBuildDescriptorsAlignment(t *testing.T) {
	records := []model.Record{
		{District: "A", State: "S", Year: "2019"},
		{District: "B", State: "S", Year: "2020"},
	}

	descriptors := BuildDescriptors(records)
	assert.Len(t, descriptors, 2)
	assert.Contains(t, descriptors[0], "A, S, Year 2019")
	assert.Contains(t, descriptors[1], "B, S, Year 2020")
}
