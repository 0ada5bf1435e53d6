package tallybook

import (
	"errors"
	"fmt"
)

// The error taxonomy of the core. Every operation that can fail wraps one of
// these sentinels; callers discriminate with errors.Is.
var (
	// ErrNotFound reports an operation that referenced an identifier absent
	// from the relevant collection.
	ErrNotFound = errors.New("not found")
	// ErrValidation reports a caller-supplied invariant violation, e.g. a
	// negative amount or a reversed date period.
	ErrValidation = errors.New("validation failed")
	// ErrNoData reports a report generation that found nothing to produce in
	// the requested period. It is a "nothing to do" outcome, not a failure.
	ErrNoData = errors.New("no matching data")
)

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

func noDataf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNoData)
}
