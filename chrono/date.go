package chrono

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date without a time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

var datePattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate accepts YYYY-MM-DD and the lenient YYYY-M-D form.
func ParseDate(value string) (Date, error) {
	m := datePattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return Date{}, fmt.Errorf("unable to extract date from %q", value)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > daysIn(time.Month(month), year) {
		return Date{}, fmt.Errorf("unable to extract date from %q", value)
	}
	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// At combines the date with a time-of-day.
func (d Date) At(t TimeOfDay) DateTime {
	return DateTime{Date: d, Time: t}
}

// In returns midnight of the date in the given location.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// TimeOfDay is a wall-clock time without a date or zone.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
	Nano   int
}

var timeOfDayPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d{1,9}))?)?$`)

// TimeOfDayOf returns the wall-clock time of t in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	hour, minute, second := t.Clock()
	return TimeOfDay{Hour: hour, Minute: minute, Second: second, Nano: t.Nanosecond()}
}

// ParseTimeOfDay accepts HH:MM, HH:MM:SS and HH:MM:SS.n (up to nine
// fractional digits).
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("unable to extract time-of-day from %q", value)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second := 0
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}
	nano := 0
	if m[4] != "" {
		frac := m[4] + strings.Repeat("0", 9-len(m[4]))
		nano, _ = strconv.Atoi(frac)
	}
	if hour > 23 || minute > 59 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("unable to extract time-of-day from %q", value)
	}
	return TimeOfDay{Hour: hour, Minute: minute, Second: second, Nano: nano}, nil
}

// String formats as HH:MM, appending seconds only when the second or
// nanosecond is non-zero, and nanoseconds as nine digits when present.
func (t TimeOfDay) String() string {
	if t.Second == 0 && t.Nano == 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	}
	if t.Nano == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nano)
}

// IsZero reports whether the time-of-day is midnight exactly.
func (t TimeOfDay) IsZero() bool {
	return t == TimeOfDay{}
}

// DateTime is a local date-time without a zone.
type DateTime struct {
	Date Date
	Time TimeOfDay
}

// DateTimeOf returns the local date-time of t in t's location.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{Date: DateOf(t), Time: TimeOfDayOf(t)}
}

// ParseDateTime accepts <date>T<time-of-day> with either a 'T' or a single
// space separating the two halves, or a bare date (midnight implied).
func ParseDateTime(value string) (DateTime, error) {
	value = strings.TrimSpace(value)
	sep := strings.IndexAny(value, "Tt ")
	if sep < 0 {
		date, err := ParseDate(value)
		if err != nil {
			return DateTime{}, fmt.Errorf("unable to extract date-time from %q", value)
		}
		return DateTime{Date: date}, nil
	}
	date, err := ParseDate(value[:sep])
	if err != nil {
		return DateTime{}, fmt.Errorf("unable to extract date-time from %q", value)
	}
	tod, err := ParseTimeOfDay(value[sep+1:])
	if err != nil {
		return DateTime{}, fmt.Errorf("unable to extract date-time from %q", value)
	}
	return DateTime{Date: date, Time: tod}, nil
}

// String formats as <date>T<time-of-day>.
func (d DateTime) String() string {
	return d.Date.String() + "T" + d.Time.String()
}

// In places the local date-time in the given location.
func (d DateTime) In(loc *time.Location) time.Time {
	return time.Date(d.Date.Year, d.Date.Month, d.Date.Day, d.Time.Hour, d.Time.Minute, d.Time.Second, d.Time.Nano, loc)
}

// IsZero reports whether the date-time is the zero value.
func (d DateTime) IsZero() bool {
	return d == DateTime{}
}

// daysIn returns the number of days in month; year 0 means year-independent,
// allowing February 29.
func daysIn(month time.Month, year int) int {
	switch month {
	case time.February:
		if year == 0 || (year%4 == 0 && (year%100 != 0 || year%400 == 0)) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}
