package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRecordCovers(t *testing.T) {
	record := Record{
		StartDate: day(2025, 6, 10),
		EndDate:   day(2025, 6, 12),
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"before range", day(2025, 6, 9), false},
		{"start date", day(2025, 6, 10), true},
		{"middle", day(2025, 6, 11), true},
		{"end date", day(2025, 6, 12), true},
		{"after range", day(2025, 6, 13), false},
		{"time of day ignored", time.Date(2025, 6, 11, 23, 59, 59, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, record.Covers(tt.date))
		})
	}
}

func TestRecordCoversSingleDay(t *testing.T) {
	record := Record{
		StartDate: day(2025, 6, 10),
		EndDate:   day(2025, 6, 10),
	}

	assert.True(t, record.Covers(day(2025, 6, 10)))
	assert.False(t, record.Covers(day(2025, 6, 9)))
	assert.False(t, record.Covers(day(2025, 6, 11)))
}

func TestRecordCoversInvertedRange(t *testing.T) {
	// An end date before the start date covers nothing, including its own
	// endpoints.
	record := Record{
		StartDate: day(2025, 6, 12),
		EndDate:   day(2025, 6, 10),
	}

	for d := day(2025, 6, 9); !d.After(day(2025, 6, 13)); d = d.AddDate(0, 0, 1) {
		assert.False(t, record.Covers(d), "date %s", d.Format("2006-01-02"))
	}
}
