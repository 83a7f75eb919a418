package model

import (
	"encoding/json"
	"fmt"
	"time"
)

type Date struct {
	time.Time
}

// ISO-8601 forms accepted for date fields: calendar dates in extended or
// basic format, reduced precision, and date-times with an optional zone
// written as Z, +hh:mm or +hhmm. Fractional seconds are accepted by
// time.Parse after any seconds field.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	"20060102",
	"2006-01-02T15:04",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
}

// ParseISODate parses s as an ISO-8601 date or date-time.
func ParseISODate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date: %s", s)
}

// NewDate returns nil for a nil or zero time.
func NewDate(t *time.Time) *Date {
	if t == nil || t.IsZero() {
		return nil
	}
	return &Date{Time: *t}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid date format (string expected): %w", err)
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := ParseISODate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}

	s := d.Time.Format("2006-01-02")
	return json.Marshal(s)
}
