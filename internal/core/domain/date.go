package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// DateLayout is the wire format of a calendar date.
const DateLayout = "2006-01-02"

// CompactDateLayout is the "YYYYMMDD" spelling some exports use.
const CompactDateLayout = "20060102"

const secondsPerDay = 24 * 60 * 60

// MonthKeyLayout is the canonical "YYYY-MM" month key.
const MonthKeyLayout = "2006-01"

// Date is a calendar date without a time of day. The zero value is not a
// valid date; use IsZero to detect it. Dates are stored at UTC midnight so
// two equal dates compare equal with == and can be used as map keys.
type Date struct {
	t time.Time
}

// NewDate returns the calendar date y-m-d. Out of range values are
// normalised the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate accepts "2006-01-02", RFC3339 timestamps, "2006-01-02 15:04:05",
// compact "20060102" and decimal epoch milliseconds. Eight digits are read
// as a compact date when they form one. Timestamps are reduced to their UTC
// day.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, errors.New("empty date")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t.UTC()), nil
		}
	}
	if len(s) == len(CompactDateLayout) {
		if t, err := time.Parse(CompactDateLayout, s); err == nil {
			return DateOf(t), nil
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return DateFromEpochMillis(ms), nil
	}
	return Date{}, errors.Newf("unrecognised date %q", s)
}

// DateFromEpochMillis converts a unix timestamp in milliseconds.
func DateFromEpochMillis(ms int64) Date {
	return DateOf(time.UnixMilli(ms).UTC())
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Time() time.Time { return d.t }

func (d Date) Year() int { return d.t.Year() }

func (d Date) Month() time.Month { return d.t.Month() }

func (d Date) Day() int { return d.t.Day() }

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) After(o Date) bool { return d.t.After(o.t) }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int { return d.t.Compare(o.t) }

// DaysUntil returns the whole number of days from d to o; negative when o
// is before d. It works on unix seconds since time.Duration overflows
// after about 292 years.
func (d Date) DaysUntil(o Date) int {
	return int((o.t.Unix() - d.t.Unix()) / secondsPerDay)
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

// LastOfMonth returns the last day of d's month.
func (d Date) LastOfMonth() Date {
	return NewDate(d.Year(), d.Month()+1, 0)
}

// MonthKey returns the canonical "YYYY-MM" key of d's month.
func (d Date) MonthKey() string {
	return d.t.Format(MonthKeyLayout)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MinDate returns the earlier of a and b.
func MinDate(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxDate returns the later of a and b.
func MaxDate(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}
