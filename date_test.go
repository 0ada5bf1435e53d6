package tallybook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2025-07-01 ", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"2025/07/01", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseDate(%q): unexpected error state: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestDateSub(t *testing.T) {
	tests := []struct {
		from, to string
		days     int
	}{
		{"2025-01-01", "2025-01-31", 30},
		{"2025-02-01", "2025-02-28", 27},
		{"2025-01-15", "2025-01-15", 0},
		{"2024-12-31", "2025-01-01", 1},
	}
	for _, tt := range tests {
		from, to := MustParseDate(tt.from), MustParseDate(tt.to)
		if got := to.Sub(from); got != tt.days {
			t.Errorf("%s.Sub(%s) = %d, want %d", to, from, got, tt.days)
		}
	}
}

func TestDateNormalization(t *testing.T) {
	// Day 0 of next month is the last day of this one.
	if got := NewDate(2025, time.March, 0); got != NewDate(2025, time.February, 28) {
		t.Errorf("NewDate(2025, March, 0) = %s, want 2025-02-28", got)
	}
	if got := NewDate(2025, time.January, 15).AddMonth(1); got != NewDate(2025, time.February, 15) {
		t.Errorf("AddMonth(1) = %s, want 2025-02-15", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := MustParseDate("2025-07-01")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-07-01"` {
		t.Errorf("marshal = %s, want \"2025-07-01\"", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}

	// The zero date is an empty string both ways.
	data, err = json.Marshal(Date{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `""` {
		t.Errorf("zero marshal = %s, want \"\"", data)
	}
	var zero Date
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatal(err)
	}
	if !zero.IsZero() {
		t.Errorf("unmarshal \"\" = %s, want the zero date", zero)
	}
}

func TestMonthOf(t *testing.T) {
	p := MonthOf(MustParseDate("2025-02-14"))
	if p.Start != MustParseDate("2025-02-01") || p.End != MustParseDate("2025-02-28") {
		t.Errorf("MonthOf(2025-02-14) = %s", p)
	}
}

func TestPeriod(t *testing.T) {
	p := NewPeriod(MustParseDate("2025-01-31"), MustParseDate("2025-01-01"))
	if p.Start.After(p.End) {
		t.Errorf("NewPeriod did not swap reversed boundaries: %s", p)
	}
	if p.Days() != 30 {
		t.Errorf("Days() = %d, want 30", p.Days())
	}
	if !p.Contains(p.Start) || !p.Contains(p.End) {
		t.Error("period boundaries must be inclusive")
	}
	if p.Contains(MustParseDate("2025-02-01")) {
		t.Error("period must not contain a date past its end")
	}
	inner := NewPeriod(MustParseDate("2025-01-10"), MustParseDate("2025-01-20"))
	if !p.Covers(inner) {
		t.Error("period must cover a fully contained period")
	}
	straddling := NewPeriod(MustParseDate("2025-01-20"), MustParseDate("2025-02-05"))
	if p.Covers(straddling) {
		t.Error("period must not cover a straddling period")
	}
	if err := (Period{}).Validate(); err == nil {
		t.Error("an unset period must not validate")
	}
}
