package attendance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// WorkedHours sums the durations of completed check-in/check-out cycles,
// rounded to two decimal places. Events are paired in chronological
// order; an unmatched trailing check-in contributes nothing until it is
// closed, and a check-out recorded before its check-in is skipped.
func WorkedHours(checkIns, checkOuts []CheckEvent) decimal.Decimal {
	ins := sortedTimes(checkIns)
	outs := sortedTimes(checkOuts)

	total := time.Duration(0)
	for i := 0; i < len(ins) && i < len(outs); i++ {
		if outs[i].Before(ins[i]) {
			continue
		}
		total += outs[i].Sub(ins[i])
	}

	return decimal.NewFromFloat(total.Hours()).Round(2)
}

func sortedTimes(events []CheckEvent) []time.Time {
	times := make([]time.Time, 0, len(events))
	for _, ev := range events {
		times = append(times, ev.OccurredAt)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times
}
