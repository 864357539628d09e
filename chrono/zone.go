package chrono

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ZoneOffset is a fixed offset from UTC in seconds east.
type ZoneOffset int

const maxOffsetSeconds = 18 * 3600

// OffsetOf builds an offset from hour, minute and second components. The
// non-zero components must agree in sign and the total must stay within
// ±18:00.
func OffsetOf(hours, minutes, seconds int) (ZoneOffset, error) {
	if (hours > 0 && (minutes < 0 || seconds < 0)) || (hours < 0 && (minutes > 0 || seconds > 0)) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		return 0, fmt.Errorf("zone offset components %d:%d:%d differ in sign", hours, minutes, seconds)
	}
	total := hours*3600 + minutes*60 + seconds
	if total < -maxOffsetSeconds || total > maxOffsetSeconds {
		return 0, fmt.Errorf("zone offset %d:%d:%d outside -18:00 to +18:00", hours, minutes, seconds)
	}
	return ZoneOffset(total), nil
}

// ParseZoneOffset accepts Z, ±H, ±HH, ±HHMM, ±HH:MM, ±HHMMSS and
// ±HH:MM:SS. A negative zero offset normalizes to +00:00.
func ParseZoneOffset(value string) (ZoneOffset, error) {
	text := strings.TrimSpace(value)
	if text == "Z" || text == "z" {
		return 0, nil
	}
	if len(text) < 2 || (text[0] != '+' && text[0] != '-') {
		return 0, fmt.Errorf("unknown time-zone offset: %q", value)
	}
	negative := text[0] == '-'
	digits := strings.ReplaceAll(text[1:], ":", "")
	if sep := strings.Count(text[1:], ":"); sep > 0 {
		// colon form requires two digits per component
		parts := strings.Split(text[1:], ":")
		for _, part := range parts {
			if len(part) != 2 {
				return 0, fmt.Errorf("unknown time-zone offset: %q", value)
			}
		}
	}
	var hours, minutes, seconds int
	switch len(digits) {
	case 1, 2:
		hours = atoiOffset(digits)
	case 4:
		hours = atoiOffset(digits[:2])
		minutes = atoiOffset(digits[2:])
	case 6:
		hours = atoiOffset(digits[:2])
		minutes = atoiOffset(digits[2:4])
		seconds = atoiOffset(digits[4:])
	default:
		return 0, fmt.Errorf("unknown time-zone offset: %q", value)
	}
	if hours < 0 || minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("unknown time-zone offset: %q", value)
	}
	total := hours*3600 + minutes*60 + seconds
	if total > maxOffsetSeconds {
		return 0, fmt.Errorf("unknown time-zone offset: %q", value)
	}
	if negative {
		total = -total
	}
	return ZoneOffset(total), nil
}

// atoiOffset parses a digit group, yielding -1 on any non-digit so the
// caller's range check rejects the input.
func atoiOffset(digits string) int {
	if strings.ContainsAny(digits, "+-") {
		return -1
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return -1
	}
	return n
}

// String formats as ±HH:MM, appending seconds only when non-zero. The zero
// offset is +00:00.
func (o ZoneOffset) String() string {
	total := int(o)
	sign := "+"
	if total < 0 {
		sign = "-"
		total = -total
	}
	hours, minutes, seconds := total/3600, total/60%60, total%60
	if seconds == 0 {
		return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
}

// Seconds returns the offset in seconds east of UTC.
func (o ZoneOffset) Seconds() int {
	return int(o)
}

// Location returns a fixed time.Location for the offset.
func (o ZoneOffset) Location() *time.Location {
	if o == 0 {
		return time.UTC
	}
	return time.FixedZone(o.String(), int(o))
}

// ZoneID names a time zone: an IANA region id such as America/New_York, or
// a fixed offset id such as +05:00.
type ZoneID struct {
	name string
}

// LoadZoneID validates name against the platform zone database; fixed
// offset forms are accepted and normalized.
func LoadZoneID(name string) (ZoneID, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ZoneID{}, fmt.Errorf("unknown time-zone id: %q", name)
	}
	if trimmed == "Z" || trimmed[0] == '+' || trimmed[0] == '-' {
		offset, err := ParseZoneOffset(trimmed)
		if err != nil {
			return ZoneID{}, fmt.Errorf("unknown time-zone id: %q", name)
		}
		if trimmed == "Z" {
			return ZoneID{name: "Z"}, nil
		}
		return ZoneID{name: offset.String()}, nil
	}
	if _, err := time.LoadLocation(trimmed); err != nil {
		return ZoneID{}, fmt.Errorf("unknown time-zone id: %q", name)
	}
	return ZoneID{name: trimmed}, nil
}

// ZoneIDOf wraps the name of an already resolved location.
func ZoneIDOf(loc *time.Location) ZoneID {
	return ZoneID{name: loc.String()}
}

// Name returns the zone id text.
func (z ZoneID) Name() string {
	return z.name
}

// String returns the zone id text.
func (z ZoneID) String() string {
	return z.name
}

// Location resolves the id to a time.Location.
func (z ZoneID) Location() (*time.Location, error) {
	switch {
	case z.name == "" || z.name == "Z" || z.name == "UTC":
		return time.UTC, nil
	case z.name[0] == '+' || z.name[0] == '-':
		offset, err := ParseZoneOffset(z.name)
		if err != nil {
			return nil, err
		}
		return offset.Location(), nil
	default:
		return time.LoadLocation(z.name)
	}
}

// IsZero reports whether the id is empty.
func (z ZoneID) IsZero() bool {
	return z.name == ""
}
