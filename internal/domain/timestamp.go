package domain

import (
	"fmt"
	"strings"
	"time"
)

// Wire layouts accepted from the backend plus the shorter forms browser
// date inputs submit. FastAPI emits naive ISO datetimes (no offset) for
// TIMESTAMP columns and bare dates for DATE columns.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Timestamp wraps time.Time with the backend's JSON date formats.
// The zero value marshals to null.
type Timestamp struct {
	time.Time
}

// NewTimestamp builds a Timestamp from a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses any of the accepted wire layouts.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// DateString renders the date portion only (yyyy-mm-dd), the format the
// backend expects for DATE query parameters.
func (ts Timestamp) DateString() string {
	return ts.Format("2006-01-02")
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + ts.Format("2006-01-02T15:04:05") + `"`), nil
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*ts = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// Date is a Timestamp that goes to the wire as a bare yyyy-mm-dd, the
// form the backend expects for its DATE columns (date of birth, hire
// date, incident date, scheduled maintenance date).
type Date struct {
	Timestamp
}

// NewDate builds a Date from a time.Time.
func NewDate(t time.Time) Date {
	return Date{Timestamp: NewTimestamp(t)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.DateString() + `"`), nil
}
