package service

import (
	"errors"
	"time"

	"operations_backend/platform/apperr"
)

const (
	msgDateInFuture = "Operation date cannot be greater than today."
	msgDateTooOld   = "Operation date cannot be less than a year ago."
)

var (
	// ErrDateInFuture marks an operation dated after today.
	ErrDateInFuture = errors.New("operation date is in the future")
	// ErrDateTooOld marks an operation dated more than one year before today.
	ErrDateTooOld = errors.New("operation date is older than one year")
)

// ValidateDate checks date against today. Both values are expected to be
// calendar days at local midnight. A date exactly one year ago is accepted.
func ValidateDate(date, today time.Time) error {
	if date.After(today) {
		return apperr.Wrap(apperr.KindValidation, msgDateInFuture, ErrDateInFuture)
	}
	if date.Before(oneYearBefore(today)) {
		return apperr.Wrap(apperr.KindValidation, msgDateTooOld, ErrDateTooOld)
	}
	return nil
}

// oneYearBefore returns the same calendar day in the previous year. Feb 29
// clamps to Feb 28 instead of rolling over into March.
func oneYearBefore(today time.Time) time.Time {
	lower := today.AddDate(-1, 0, 0)
	if lower.Month() != today.Month() {
		lower = lower.AddDate(0, 0, -lower.Day())
	}
	return lower
}
