package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// Period is a date-based amount of years, months and days. Weeks supplied
// on input are normalized to days, so a period never stores a week count.
type Period struct {
	Years  int
	Months int
	Days   int
}

// ParsePeriod accepts ISO-8601 PnYnMnWnD with any subset of the four
// components, case-insensitive, each number optionally signed.
func ParsePeriod(value string) (Period, error) {
	text := strings.ToUpper(strings.TrimSpace(value))
	if len(text) < 2 || text[0] != 'P' {
		return Period{}, fmt.Errorf("unable to parse %q as a period", value)
	}
	rest := text[1:]
	var period Period
	lastUnit := 0
	for len(rest) > 0 {
		i := 0
		if rest[i] == '+' || rest[i] == '-' {
			i++
		}
		j := i
		for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		if j == i || j == len(rest) {
			return Period{}, fmt.Errorf("unable to parse %q as a period", value)
		}
		n, err := strconv.Atoi(rest[:j])
		if err != nil {
			return Period{}, fmt.Errorf("unable to parse %q as a period", value)
		}
		var unit int
		switch rest[j] {
		case 'Y':
			unit = 1
			period.Years = n
		case 'M':
			unit = 2
			period.Months = n
		case 'W':
			unit = 3
			period.Days += 7 * n
		case 'D':
			unit = 4
			period.Days += n
		default:
			return Period{}, fmt.Errorf("unable to parse %q as a period", value)
		}
		if unit <= lastUnit {
			return Period{}, fmt.Errorf("unable to parse %q as a period", value)
		}
		lastUnit = unit
		rest = rest[j+1:]
	}
	return period, nil
}

// String formats as PnYnMnD with zero components omitted; the zero period
// is P0D.
func (p Period) String() string {
	if p == (Period{}) {
		return "P0D"
	}
	var sb strings.Builder
	sb.WriteByte('P')
	if p.Years != 0 {
		sb.WriteString(strconv.Itoa(p.Years))
		sb.WriteByte('Y')
	}
	if p.Months != 0 {
		sb.WriteString(strconv.Itoa(p.Months))
		sb.WriteByte('M')
	}
	if p.Days != 0 {
		sb.WriteString(strconv.Itoa(p.Days))
		sb.WriteByte('D')
	}
	return sb.String()
}

// IsZero reports whether all components are zero.
func (p Period) IsZero() bool {
	return p == Period{}
}
