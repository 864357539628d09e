package chrono

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Year is a calendar year.
type Year int

// YearOf returns the year of t in t's location.
func YearOf(t time.Time) Year {
	return Year(t.Year())
}

// ParseYear parses an integer year.
func ParseYear(value string) (Year, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("unable to parse year from %q", value)
	}
	return Year(n), nil
}

// String formats the year as a plain integer.
func (y Year) String() string {
	return strconv.Itoa(int(y))
}

// YearMonth is a year-month pair, such as a statement month.
type YearMonth struct {
	Year  int
	Month time.Month
}

var (
	yearMonthDate      = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	yearMonthCanonical = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
)

// YearMonthOf returns the year-month of t in t's location.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth accepts the canonical YYYY-MM (two-digit month) or any
// embedded YYYY-M-D date, whose day component is discarded.
func ParseYearMonth(value string) (YearMonth, error) {
	trimmed := strings.TrimSpace(value)
	m := yearMonthDate.FindStringSubmatch(trimmed)
	if m == nil {
		m = yearMonthCanonical.FindStringSubmatch(trimmed)
	}
	if m == nil {
		return YearMonth{}, fmt.Errorf("unable to extract year-month from %q", value)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("unable to extract year-month from %q", value)
	}
	return YearMonth{Year: year, Month: time.Month(month)}, nil
}

// String formats as YYYY-MM.
func (m YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero reports whether the year-month is the zero value.
func (m YearMonth) IsZero() bool {
	return m == YearMonth{}
}
