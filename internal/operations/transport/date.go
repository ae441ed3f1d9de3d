package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of an operation date.
const DateLayout = time.DateOnly

var inputLayouts = []string{time.DateOnly, "2006-01-02T15:04:05"}

// Date is a calendar day in process-local time. Any time-of-day received on
// input is dropped.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day in the local time zone.
func NewDate(t time.Time) Date {
	local := t.In(time.Local)
	return Date{Time: time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)}
}

// ParseDate accepts YYYY-MM-DD, a local timestamp without offset, or RFC 3339.
func ParseDate(value string) (Date, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return NewDate(t), nil
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return NewDate(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: expected %s", value, DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}
