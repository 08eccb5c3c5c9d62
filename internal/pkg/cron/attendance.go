package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/attendance"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/auth"
)

// staleSessionWindow is how long an open check-in may sit without a
// matching check-out before the scheduler closes it.
const staleSessionWindow = 12 * time.Hour

type AttendanceJobs struct {
	factRepo         attendance.FactRepository
	refreshTokenRepo auth.RefreshTokenRepository

	now func() time.Time
}

func NewAttendanceJobs(
	factRepo attendance.FactRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		factRepo:         factRepo,
		refreshTokenRepo: refreshTokenRepo,
		now:              time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("aggregate_daily_hours", 1*time.Hour, j.AggregateDailyHours)
	scheduler.AddJob("close_stale_sessions", 1*time.Hour, j.CloseStaleSessions)
	scheduler.AddJob("purge_expired_refresh_tokens", 12*time.Hour, j.PurgeExpiredRefreshTokens)
}

// AggregateDailyHours recomputes worked hours for yesterday's facts from
// their check events and stamps a raw status hint on the row. Display
// status stays derived at read time; the hint only serves reporting
// queries against the raw table.
func (j *AttendanceJobs) AggregateDailyHours(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if j.now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := truncateToDay(j.now().UTC().AddDate(0, 0, -1))

	slog.Info("Cron: Starting daily hours aggregation", "date", yesterday.Format("2006-01-02"))

	facts, err := j.factRepo.ListByDate(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to list facts for aggregation: %w", err)
	}

	if len(facts) == 0 {
		slog.Info("Cron: No facts to aggregate")
		return nil
	}

	updatedCount := 0
	for _, fact := range facts {
		fact.HoursWorked = attendance.WorkedHours(fact.CheckIns, fact.CheckOuts)

		var rawStatus string
		switch {
		case len(fact.CheckIns) == 0:
			rawStatus = "absent"
		case fact.HasOpenCycle():
			rawStatus = "incomplete"
		case fact.HoursWorked.LessThan(fact.HoursExpected):
			rawStatus = "short"
		default:
			rawStatus = "complete"
		}
		fact.RawStatus = &rawStatus

		if err := j.factRepo.UpdateAggregates(ctx, fact); err != nil {
			slog.Error("Cron: Failed to update fact aggregates",
				"fact_id", fact.ID,
				"employee_id", fact.EmployeeID,
				"error", err)
			continue
		}
		updatedCount++
	}

	slog.Info("Cron: Daily hours aggregation finished",
		"date", yesterday.Format("2006-01-02"),
		"updated", updatedCount,
		"total", len(facts))

	return nil
}

// CloseStaleSessions appends a synthetic check-out to cycles left open
// longer than the stale window. The synthetic event carries the check-in's
// own timestamp, so an unterminated session earns no hours until the
// employee regularizes the day.
func (j *AttendanceJobs) CloseStaleSessions(ctx context.Context) error {
	now := j.now().UTC()

	// An open cycle can only cross the stale window on today's or
	// yesterday's fact; older days were already swept.
	dates := []time.Time{
		truncateToDay(now.AddDate(0, 0, -1)),
		truncateToDay(now),
	}

	closedCount := 0
	for _, date := range dates {
		facts, err := j.factRepo.ListByDate(ctx, date)
		if err != nil {
			return fmt.Errorf("failed to list facts for stale session sweep: %w", err)
		}

		for _, fact := range facts {
			if !fact.HasOpenCycle() {
				continue
			}

			lastCheckIn := fact.CheckIns[len(fact.CheckIns)-1].OccurredAt
			if now.Sub(lastCheckIn) < staleSessionWindow {
				continue
			}

			event, err := j.factRepo.AppendEvent(ctx, attendance.CheckEvent{
				ID:         uuid.New().String(),
				FactID:     fact.ID,
				Type:       attendance.EventCheckOut,
				OccurredAt: lastCheckIn,
			})
			if err != nil {
				slog.Error("Cron: Failed to append synthetic check-out",
					"fact_id", fact.ID,
					"employee_id", fact.EmployeeID,
					"error", err)
				continue
			}
			fact.CheckOuts = append(fact.CheckOuts, event)

			fact.LastCheckOut = &lastCheckIn
			fact.HoursWorked = attendance.WorkedHours(fact.CheckIns, fact.CheckOuts)

			if err := j.factRepo.UpdateAggregates(ctx, fact); err != nil {
				slog.Error("Cron: Failed to update fact after stale close",
					"fact_id", fact.ID,
					"employee_id", fact.EmployeeID,
					"error", err)
				continue
			}
			closedCount++
		}
	}

	if closedCount > 0 {
		slog.Info("Cron: Closed stale check-in sessions", "closed", closedCount)
	}

	return nil
}

// PurgeExpiredRefreshTokens removes refresh tokens past their expiry.
func (j *AttendanceJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := j.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge expired refresh tokens: %w", err)
	}

	if deleted > 0 {
		slog.Info("Cron: Purged expired refresh tokens", "deleted", deleted)
	}

	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
