package service

import (
	"testing"

	"github.com/hardeep652/sihhackathon/internal/model"
	"github.com/stretchr/testify/assert"
)

func guntakalRows() []model.Record {
	return []model.Record{
		{District: "GUNTUR", State: "ANDHRA PRADESH", Year: "2018", Recharge: 100},
		{District: "KURNOOL", State: "ANDHRA PRADESH", Year: "2019", Recharge: 55},
		{District: "GUNTUR", State: "ANDHRA PRADESH", Year: "2019", Recharge: 110},
		{District: "GUNTUR", State: "ANDHRA PRADESH", Year: "2020-21", Recharge: 120.5},
	}
}

func TestSelectRowYearSubstringMatch(t *testing.T) {
	// "2020" matches the stored range "2020-21".
	row := SelectRow(guntakalRows(), "GUNTUR", "2020")
	assert.Equal(t, "2020-21", row.Year)
	assert.Equal(t, 120.5, row.Recharge)
}

func TestSelectRowExactYear(t *testing.T) {
	row := SelectRow(guntakalRows(), "GUNTUR", "2019")
	assert.Equal(t, "2019", row.Year)
	assert.Equal(t, 110.0, row.Recharge)
}

func TestSelectRowYearMissFallsBackToFirstDistrictRow(t *testing.T) {
	// No GUNTUR row for 2016: the year is ignored and the first district
	// row wins, a deliberate best effort.
	row := SelectRow(guntakalRows(), "GUNTUR", "2016")
	assert.Equal(t, "2018", row.Year)
}

func TestSelectRowNoYearPicksLatest(t *testing.T) {
	records := []model.Record{
		{District: "GUNTUR", Year: "2018"},
		{District: "GUNTUR", Year: "2019"},
		{District: "GUNTUR", Year: "2020"},
	}
	assert.Equal(t, "2020", SelectRow(records, "GUNTUR", "").Year)
}

func TestSelectRowAlwaysReturnsOneRecord(t *testing.T) {
	records := guntakalRows()
	for _, year := range []string{"", "2019", "1900"} {
		row := SelectRow(records, "KURNOOL", year)
		assert.Equal(t, "KURNOOL", row.District)
	}
}
