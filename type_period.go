package tallybook

import "fmt"

// Period represents a date period with inclusive boundaries, as used by
// salary slips, client statements and expense reports.
type Period struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// NewPeriod creates a new period. If 'start' is after 'end', they are swapped.
func NewPeriod(start, end Date) Period {
	if start.After(end) {
		start, end = end, start
	}
	return Period{Start: start, End: end}
}

// MonthOf returns the calendar month period containing the given date.
func MonthOf(d Date) Period {
	start := NewDate(d.Year(), d.Month(), 1)
	return Period{Start: start, End: NewDate(d.Year(), d.Month()+1, 0)}
}

// Contains returns true if date is included in the period (boundaries included).
func (p Period) Contains(date Date) bool { return !date.Before(p.Start) && !date.After(p.End) }

// Covers returns true if the other period is fully contained in p.
func (p Period) Covers(o Period) bool { return !o.Start.Before(p.Start) && !o.End.After(p.End) }

// Days returns the number of whole days between the period boundaries.
// A period from the 1st to the 31st of a month counts 30 days; combined with
// the fixed 30-day-month convention this prorates a full month to exactly the
// monthly salary. This is a documented policy choice, not calendar arithmetic.
func (p Period) Days() int { return p.End.Sub(p.Start) }

// IsZero returns true if the period is the zero value.
func (p Period) IsZero() bool { return p.Start.IsZero() && p.End.IsZero() }

// Validate reports a validation error when the period boundaries are unset or reversed.
func (p Period) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return invalidf("period boundaries are required")
	}
	if p.Start.After(p.End) {
		return invalidf("period starts %s after it ends %s", p.Start, p.End)
	}
	return nil
}

// String formats the period as "2025-01-01 to 2025-01-31".
func (p Period) String() string { return fmt.Sprintf("%s to %s", p.Start, p.End) }

// MonthYear names the month the period starts in, e.g. "January 2025".
func (p Period) MonthYear() string { return p.Start.Format("January 2006") }
