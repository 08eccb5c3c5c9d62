package status

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/attendance"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/request"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/schedule"
)

var (
	// 2025-06-15 is a Sunday.
	testToday = date(2025, 6, 15)

	sundayOff = schedule.WeeklyOffConfig{
		EmployeeID: "emp-1",
		OffDays:    []time.Weekday{time.Sunday},
	}
	noOffDays = schedule.WeeklyOffConfig{EmployeeID: "emp-1"}
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func factWith(day time.Time, worked, expected string) *attendance.Fact {
	return &attendance.Fact{
		ID:            "fact-1",
		EmployeeID:    "emp-1",
		CompanyID:     "co-1",
		Date:          day,
		HoursWorked:   dec(worked),
		HoursExpected: dec(expected),
	}
}

func reqOn(typ request.Type, status request.Status, start, end time.Time) request.Record {
	return request.Record{
		ID:         "req-1",
		CompanyID:  "co-1",
		EmployeeID: "emp-1",
		Type:       typ,
		Status:     status,
		StartDate:  start,
		EndDate:    end,
	}
}

func TestResolve_WeeklyOffBeatsEverything(t *testing.T) {
	r := NewResolver()
	sunday := date(2025, 6, 15)

	// Even an approved leave and recorded attendance cannot override an
	// off day.
	checkIn := sunday.Add(9 * time.Hour)
	fact := factWith(sunday, "8.00", "8.00")
	fact.FirstCheckIn = &checkIn

	got := r.Resolve(ResolveInput{
		EmployeeID: "emp-1",
		Date:       sunday,
		Today:      testToday,
		Fact:       fact,
		Requests: []request.Record{
			reqOn(request.TypeLeave, request.StatusApproved, sunday, sunday),
		},
		WeeklyOff: sundayOff,
	})

	assert.Equal(t, attendance.StatusWeeklyOff, got.Status)
	assert.False(t, got.IsFuture)
}

func TestResolve_WeeklyOffOnFutureDate(t *testing.T) {
	r := NewResolver()
	nextSunday := date(2025, 6, 22)

	got := r.Resolve(ResolveInput{
		EmployeeID: "emp-1",
		Date:       nextSunday,
		Today:      testToday,
		WeeklyOff:  sundayOff,
	})

	// Off-day rule fires before the future/past rules.
	assert.Equal(t, attendance.StatusWeeklyOff, got.Status)
	assert.True(t, got.IsFuture)
}

func TestResolve_RequestPrecedence(t *testing.T) {
	day := date(2025, 6, 10) // past Tuesday

	cases := []struct {
		name     string
		requests []request.Record
		fact     *attendance.Fact
		want     attendance.DayStatus
	}{
		{
			name: "approved regularization",
			requests: []request.Record{
				reqOn(request.TypeRegularization, request.StatusApproved, day, day),
			},
			want: attendance.StatusRegularized,
		},
		{
			name: "approved regularization beats pending leave",
			requests: []request.Record{
				reqOn(request.TypeLeave, request.StatusPending, day, day),
				reqOn(request.TypeRegularization, request.StatusApproved, day, day),
			},
			want: attendance.StatusRegularized,
		},
		{
			name: "pending regularization",
			requests: []request.Record{
				reqOn(request.TypeRegularization, request.StatusPending, day, day),
			},
			want: attendance.StatusPendingRequest,
		},
		{
			name: "pending beats approved leave",
			requests: []request.Record{
				reqOn(request.TypeLeave, request.StatusApproved, day, day),
				reqOn(request.TypeRegularization, request.StatusPending, day, day),
			},
			want: attendance.StatusPendingRequest,
		},
		{
			name: "approved leave",
			requests: []request.Record{
				reqOn(request.TypeLeave, request.StatusApproved, day, day),
			},
			want: attendance.StatusApprovedLeave,
		},
		{
			name: "approved leave beats approved wfh",
			requests: []request.Record{
				reqOn(request.TypeWFH, request.StatusApproved, day, day),
				reqOn(request.TypeLeave, request.StatusApproved, day, day),
			},
			want: attendance.StatusApprovedLeave,
		},
		{
			name: "approved wfh",
			requests: []request.Record{
				reqOn(request.TypeWFH, request.StatusApproved, day, day),
			},
			want: attendance.StatusWorkFromHome,
		},
		{
			name: "rejected requests are ignored",
			requests: []request.Record{
				reqOn(request.TypeLeave, request.StatusRejected, day, day),
			},
			want: attendance.StatusAbsent,
		},
		{
			name: "pending masks needs-regularization hours",
			requests: []request.Record{
				reqOn(request.TypeRegularization, request.StatusPending, day, day),
			},
			fact: factWith(day, "3.00", "8.00"),
			want: attendance.StatusPendingRequest,
		},
	}

	r := NewResolver()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Resolve(ResolveInput{
				EmployeeID: "emp-1",
				Date:       day,
				Today:      testToday,
				Fact:       tc.fact,
				Requests:   tc.requests,
				WeeklyOff:  noOffDays,
			})
			assert.Equal(t, tc.want, got.Status)
		})
	}
}

func TestResolve_CheckedInBeforeRegularize(t *testing.T) {
	r := NewResolver()
	day := date(2025, 6, 10)
	checkIn := day.Add(9 * time.Hour)

	fact := factWith(day, "3.00", "8.00")
	fact.FirstCheckIn = &checkIn

	// An open check-in always reads as checked in, not regularize, until
	// checked out.
	got := r.Resolve(ResolveInput{
		EmployeeID: "emp-1",
		Date:       day,
		Today:      testToday,
		Fact:       fact,
		WeeklyOff:  noOffDays,
	})
	assert.Equal(t, attendance.StatusCheckedIn, got.Status)

	checkOut := day.Add(12 * time.Hour)
	fact.LastCheckOut = &checkOut
	got = r.Resolve(ResolveInput{
		EmployeeID: "emp-1",
		Date:       day,
		Today:      testToday,
		Fact:       fact,
		WeeklyOff:  noOffDays,
	})
	assert.Equal(t, attendance.StatusCheckedOut, got.Status)
}

func TestResolve_Regularize(t *testing.T) {
	r := NewResolver()
	day := date(2025, 6, 10)

	cases := []struct {
		name   string
		worked string
		want   attendance.DayStatus
	}{
		{"partial hours need regularization", "3.00", attendance.StatusRegularize},
		{"zero hours is absent, not regularize", "0.00", attendance.StatusAbsent},
		{"full hours without timestamps is absent", "8.00", attendance.StatusAbsent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Resolve(ResolveInput{
				EmployeeID: "emp-1",
				Date:       day,
				Today:      testToday,
				Fact:       factWith(day, tc.worked, "8.00"),
				WeeklyOff:  noOffDays,
			})
			assert.Equal(t, tc.want, got.Status)
		})
	}
}

func TestResolve_RegularizeNotOnFutureDate(t *testing.T) {
	r := NewResolver()
	day := date(2025, 6, 20) // future

	got := r.Resolve(ResolveInput{
		EmployeeID: "emp-1",
		Date:       day,
		Today:      testToday,
		Fact:       factWith(day, "3.00", "8.00"),
		WeeklyOff:  noOffDays,
	})
	assert.Equal(t, attendance.StatusIncomplete, got.Status)
	assert.True(t, got.IsFuture)
}

func TestResolve_NoRecordDefaults(t *testing.T) {
	r := NewResolver()

	past := r.Resolve(ResolveInput{
		EmployeeID: "emp-1",
		Date:       date(2025, 6, 10),
		Today:      testToday,
		WeeklyOff:  noOffDays,
	})
	assert.Equal(t, attendance.StatusAbsent, past.Status)
	assert.Equal(t, "0.00", past.HoursWorked.StringFixed(2))
	assert.Equal(t, "0.00", past.HoursExpected.StringFixed(2))
	assert.Nil(t, past.CheckIn)
	assert.Nil(t, past.CheckOut)

	future := r.Resolve(ResolveInput{
		EmployeeID: "emp-1",
		Date:       date(2025, 6, 20),
		Today:      testToday,
		WeeklyOff:  noOffDays,
	})
	assert.Equal(t, attendance.StatusIncomplete, future.Status)
	assert.True(t, future.IsFuture)
}

func TestResolve_PastIncompleteBecomesAbsent(t *testing.T) {
	r := NewResolver()
	day := date(2025, 6, 20)

	in := ResolveInput{
		EmployeeID: "emp-1",
		Date:       day,
		Today:      testToday,
		WeeklyOff:  noOffDays,
	}
	assert.Equal(t, attendance.StatusIncomplete, r.Resolve(in).Status)

	// Same inputs, but the date has since passed.
	in.Today = date(2025, 6, 25)
	got := r.Resolve(in)
	assert.Equal(t, attendance.StatusAbsent, got.Status)
	assert.False(t, got.IsFuture)

	// A stale placeholder hint does not keep a past day incomplete either.
	hint := string(attendance.StatusIncomplete)
	fact := factWith(day, "0.00", "8.00")
	fact.RawStatus = &hint
	in.Fact = fact
	assert.Equal(t, attendance.StatusAbsent, r.Resolve(in).Status)
}

func TestResolve_TodayIsNotFuture(t *testing.T) {
	r := NewResolver()

	got := r.Resolve(ResolveInput{
		EmployeeID: "emp-1",
		Date:       testToday,
		Today:      testToday,
		WeeklyOff:  noOffDays,
	})
	assert.False(t, got.IsFuture)
	assert.Equal(t, attendance.StatusAbsent, got.Status)
}

func TestResolve_Deterministic(t *testing.T) {
	r := NewResolver()
	day := date(2025, 6, 10)
	checkIn := day.Add(9 * time.Hour)
	fact := factWith(day, "3.00", "8.00")
	fact.FirstCheckIn = &checkIn

	in := ResolveInput{
		EmployeeID: "emp-1",
		Date:       day,
		Today:      testToday,
		Fact:       fact,
		Requests: []request.Record{
			reqOn(request.TypeWFH, request.StatusRejected, day, day),
		},
		WeeklyOff: sundayOff,
	}

	first := r.Resolve(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Resolve(in))
	}
}

func TestResolve_MalformedRequestRangeCoversNothing(t *testing.T) {
	r := NewResolver()
	day := date(2025, 6, 10)

	got := r.Resolve(ResolveInput{
		EmployeeID: "emp-1",
		Date:       day,
		Today:      testToday,
		Requests: []request.Record{
			// end before start: matches no dates
			reqOn(request.TypeLeave, request.StatusApproved, day, day.AddDate(0, 0, -3)),
		},
		WeeklyOff: noOffDays,
	})
	assert.Equal(t, attendance.StatusAbsent, got.Status)
}

func TestResolve_MultiDayRequestCoversEachDate(t *testing.T) {
	r := NewResolver()
	leave := reqOn(request.TypeLeave, request.StatusApproved, date(2025, 6, 9), date(2025, 6, 12))

	for _, day := range []time.Time{date(2025, 6, 9), date(2025, 6, 10), date(2025, 6, 12)} {
		got := r.Resolve(ResolveInput{
			EmployeeID: "emp-1",
			Date:       day,
			Today:      testToday,
			Requests:   []request.Record{leave},
			WeeklyOff:  noOffDays,
		})
		assert.Equal(t, attendance.StatusApprovedLeave, got.Status, "date %s", day.Format("2006-01-02"))
	}

	outside := r.Resolve(ResolveInput{
		EmployeeID: "emp-1",
		Date:       date(2025, 6, 13),
		Today:      testToday,
		Requests:   []request.Record{leave},
		WeeklyOff:  noOffDays,
	})
	assert.Equal(t, attendance.StatusAbsent, outside.Status)
}

func coords(lat, lng float64) (*float64, *float64) {
	return &lat, &lng
}

func TestResolve_DisplaySelection(t *testing.T) {
	r := NewResolver()
	day := date(2025, 6, 10)

	lat1, lng1 := coords(-6.2, 106.8)
	lat2, lng2 := coords(-6.3, 106.9)

	firstIn := day.Add(8 * time.Hour)
	secondIn := day.Add(13 * time.Hour)
	firstOut := day.Add(12 * time.Hour)
	lastOut := day.Add(17 * time.Hour)

	fact := factWith(day, "8.00", "8.00")
	fact.FirstCheckIn = &firstIn
	fact.LastCheckOut = &lastOut
	fact.CheckIns = []attendance.CheckEvent{
		{Type: attendance.EventCheckIn, OccurredAt: firstIn, Latitude: lat1, Longitude: lng1},
		{Type: attendance.EventCheckIn, OccurredAt: secondIn, Latitude: lat2, Longitude: lng2},
	}
	fact.CheckOuts = []attendance.CheckEvent{
		{Type: attendance.EventCheckOut, OccurredAt: firstOut},
		{Type: attendance.EventCheckOut, OccurredAt: lastOut, Latitude: lat2, Longitude: lng2},
	}

	got := r.Resolve(ResolveInput{
		EmployeeID: "emp-1",
		Date:       day,
		Today:      testToday,
		Fact:       fact,
		WeeklyOff:  noOffDays,
	})

	require.NotNil(t, got.CheckIn)
	// Time of the first check-in, coordinate of the most recent one.
	assert.Equal(t, firstIn, got.CheckIn.Time)
	assert.Equal(t, *lat2, got.CheckIn.Latitude)
	assert.Equal(t, *lng2, got.CheckIn.Longitude)

	require.NotNil(t, got.CheckOut)
	assert.Equal(t, lastOut, got.CheckOut.Time)
	assert.Equal(t, *lat2, got.CheckOut.Latitude)
	assert.Equal(t, *lng2, got.CheckOut.Longitude)
}

func TestResolve_DisplayOmittedWithoutCoordinates(t *testing.T) {
	r := NewResolver()
	day := date(2025, 6, 10)
	checkIn := day.Add(9 * time.Hour)

	fact := factWith(day, "3.00", "8.00")
	fact.FirstCheckIn = &checkIn
	fact.CheckIns = []attendance.CheckEvent{
		{Type: attendance.EventCheckIn, OccurredAt: checkIn},
	}

	got := r.Resolve(ResolveInput{
		EmployeeID: "emp-1",
		Date:       day,
		Today:      testToday,
		Fact:       fact,
		WeeklyOff:  noOffDays,
	})

	// No fabricated data: the event has no coordinate, so no display pair.
	assert.Nil(t, got.CheckIn)
	assert.Equal(t, attendance.StatusCheckedIn, got.Status)
}

func TestResolveRange_Month(t *testing.T) {
	r := NewResolver()
	from, to := MonthRange(date(2025, 6, 1))
	assert.Equal(t, date(2025, 6, 1), from)
	assert.Equal(t, date(2025, 6, 30), to)

	day10 := date(2025, 6, 10)
	checkIn := day10.Add(9 * time.Hour)
	checkOut := day10.Add(17 * time.Hour)
	fact := *factWith(day10, "8.00", "8.00")
	fact.FirstCheckIn = &checkIn
	fact.LastCheckOut = &checkOut

	days := r.ResolveRange(
		"emp-1",
		from, to,
		[]attendance.Fact{fact},
		[]request.Record{
			reqOn(request.TypeLeave, request.StatusApproved, date(2025, 6, 11), date(2025, 6, 12)),
		},
		sundayOff,
		testToday,
	)

	require.Len(t, days, 30)

	byDate := make(map[string]attendance.ResolvedDayStatus, len(days))
	for i, d := range days {
		// Ordered by date, one entry per day.
		assert.Equal(t, from.AddDate(0, 0, i), d.Date)
		byDate[d.Date.Format("2006-01-02")] = d
	}

	assert.Equal(t, attendance.StatusWeeklyOff, byDate["2025-06-01"].Status) // Sunday
	assert.Equal(t, attendance.StatusCheckedOut, byDate["2025-06-10"].Status)
	assert.Equal(t, attendance.StatusApprovedLeave, byDate["2025-06-11"].Status)
	assert.Equal(t, attendance.StatusApprovedLeave, byDate["2025-06-12"].Status)
	assert.Equal(t, attendance.StatusAbsent, byDate["2025-06-13"].Status)
	assert.Equal(t, attendance.StatusIncomplete, byDate["2025-06-16"].Status)
	assert.Equal(t, attendance.StatusWeeklyOff, byDate["2025-06-22"].Status) // future Sunday
	assert.Equal(t, attendance.StatusIncomplete, byDate["2025-06-30"].Status)
}

func TestResolveRange_Week(t *testing.T) {
	r := NewResolver()
	from, to := WeekRange(date(2025, 6, 9)) // Monday
	assert.Equal(t, date(2025, 6, 9), from)
	assert.Equal(t, date(2025, 6, 15), to)

	days := r.ResolveRange("emp-1", from, to, nil, nil, sundayOff, testToday)

	require.Len(t, days, 7)
	for _, d := range days[:6] {
		assert.Equal(t, attendance.StatusAbsent, d.Status)
	}
	assert.Equal(t, attendance.StatusWeeklyOff, days[6].Status)
}
