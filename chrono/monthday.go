package chrono

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MonthDay is a month-day pair without a year, such as a recurring
// anniversary. February 29 is considered valid.
type MonthDay struct {
	Month time.Month
	Day   int
}

var (
	monthDayCanonical = regexp.MustCompile(`^--(\d{2})-(\d{2})$`)
	monthDayLenient   = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})$`)
)

// MonthDayOf returns the month-day of t in t's location.
func MonthDayOf(t time.Time) MonthDay {
	return MonthDay{Month: t.Month(), Day: t.Day()}
}

// ParseMonthDay accepts M-D, MM-DD and the canonical --MM-DD. The prefixed
// form requires two digits per component, so --M-D and the single-dash
// -MM-DD are rejected.
func ParseMonthDay(value string) (MonthDay, error) {
	trimmed := strings.TrimSpace(value)
	var m []string
	if strings.HasPrefix(trimmed, "--") {
		m = monthDayCanonical.FindStringSubmatch(trimmed)
	} else if !strings.HasPrefix(trimmed, "-") {
		m = monthDayLenient.FindStringSubmatch(trimmed)
	}
	if m == nil {
		return MonthDay{}, fmt.Errorf("unable to extract month-day from %q", value)
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > daysIn(time.Month(month), 0) {
		return MonthDay{}, fmt.Errorf("unable to extract month-day from %q", value)
	}
	return MonthDay{Month: time.Month(month), Day: day}, nil
}

// String formats as --MM-DD.
func (m MonthDay) String() string {
	return fmt.Sprintf("--%02d-%02d", int(m.Month), m.Day)
}

// IsZero reports whether the month-day is the zero value.
func (m MonthDay) IsZero() bool {
	return m == MonthDay{}
}
