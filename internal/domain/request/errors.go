package request

import "errors"

var (
	ErrRequestNotFound         = errors.New("request not found")
	ErrRequestAlreadyProcessed = errors.New("request has already been approved or rejected")
	ErrInvalidDateRange        = errors.New("end date must not be before start date")
)
