package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/check-out errors
	ErrOpenCycleExists = errors.New("you already have an open check-in; check out first")
	ErrNotCheckedIn    = errors.New("you have not checked in yet")

	// General errors
	ErrFactNotFound = errors.New("attendance record not found")
)
