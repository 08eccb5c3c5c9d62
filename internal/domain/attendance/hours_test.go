package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ev(t time.Time) CheckEvent {
	return CheckEvent{OccurredAt: t}
}

func TestWorkedHours(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	cases := []struct {
		name      string
		checkIns  []CheckEvent
		checkOuts []CheckEvent
		want      string
	}{
		{
			name: "no events",
			want: "0",
		},
		{
			name:      "single cycle",
			checkIns:  []CheckEvent{ev(at(9, 0))},
			checkOuts: []CheckEvent{ev(at(17, 30))},
			want:      "8.5",
		},
		{
			name:      "two cycles with a break",
			checkIns:  []CheckEvent{ev(at(9, 0)), ev(at(13, 0))},
			checkOuts: []CheckEvent{ev(at(12, 0)), ev(at(17, 0))},
			want:      "7",
		},
		{
			name:      "open trailing check-in counts nothing",
			checkIns:  []CheckEvent{ev(at(9, 0)), ev(at(13, 0))},
			checkOuts: []CheckEvent{ev(at(12, 0))},
			want:      "3",
		},
		{
			name:      "unordered events are paired chronologically",
			checkIns:  []CheckEvent{ev(at(13, 0)), ev(at(9, 0))},
			checkOuts: []CheckEvent{ev(at(17, 0)), ev(at(12, 0))},
			want:      "7",
		},
		{
			name:      "check-out before check-in is skipped",
			checkIns:  []CheckEvent{ev(at(9, 0))},
			checkOuts: []CheckEvent{ev(at(8, 0))},
			want:      "0",
		},
		{
			name:      "partial hour rounds to two decimals",
			checkIns:  []CheckEvent{ev(at(9, 0))},
			checkOuts: []CheckEvent{ev(at(12, 20))},
			want:      "3.33",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WorkedHours(tc.checkIns, tc.checkOuts)
			assert.Equal(t, tc.want, got.String())
		})
	}
}
