package conv

import (
	"encoding/binary"
	"time"

	"github.com/google/uuid"

	"github.com/sadashiva108/conv/chrono"
)

// structuredValueAliases are consulted before any named field set, in this
// order. The value under an alias is converted recursively, so aliases may
// nest.
var structuredValueAliases = []string{"_v", "value"}

// fieldBuilder assembles a target value from named fields. It reports false
// when the structured value carries none of the fields it understands.
type fieldBuilder func(s *Object, c *Converter, options Options) (interface{}, bool, error)

// registerStructuredTarget wires extraction for one target: the value
// aliases first, then the target's named field sets, then a missing-keys
// failure listing every accepted set.
func registerStructuredTarget(r *Registry, target TypeKey, sets [][]string, build fieldBuilder) {
	accepted := make([][]string, 0, len(sets)+2)
	accepted = append(accepted, sets...)
	accepted = append(accepted, []string{"_v"}, []string{"value"})
	r.Register(Structured, target, func(from interface{}, c *Converter, options Options) (interface{}, error) {
		s := from.(*Object)
		for _, alias := range structuredValueAliases {
			if inner, ok := s.Get(alias); ok {
				return c.ConvertWith(inner, target, options)
			}
		}
		if build != nil {
			result, ok, err := build(s, c, options)
			if err != nil {
				return nil, err
			}
			if ok {
				return result, nil
			}
		}
		return nil, &MissingKeysError{Target: target, Accepted: accepted}
	})
}

// field converts the named entry to the requested key, defaulting to the
// key's zero when the entry is absent or nil.
func field[T any](s *Object, c *Converter, options Options, name string, key TypeKey) (T, error) {
	var zero T
	raw, ok := s.Get(name)
	if !ok || raw == nil {
		return zero, nil
	}
	converted, err := c.ConvertWith(raw, key, options)
	if err != nil {
		return zero, err
	}
	if converted == nil {
		return zero, nil
	}
	return converted.(T), nil
}

func fieldInt(s *Object, c *Converter, options Options, name string) (int, error) {
	return field[int](s, c, options, name, Int)
}

func registerStructuredEdges(r *Registry) {
	// Scalar and textual targets accept only the value aliases.
	for _, target := range []TypeKey{Bool, Int8, Int16, Int32, Int64, Int, Uint8, Uint16, Uint32, Uint64, Uint, Float32, Float64, Rune, BigInt, BigFloat, String, Bytes, Runes, MonthDay, YearMonth, Year, Period, ZoneOffset, Date, TimeOfDay, DateTime, Time, Duration, UUID, ZoneID} {
		switch target {
		case MonthDay:
			registerStructuredTarget(r, target, [][]string{{"month", "day"}}, buildMonthDay)
		case YearMonth:
			registerStructuredTarget(r, target, [][]string{{"year", "month"}}, buildYearMonth)
		case Year:
			registerStructuredTarget(r, target, [][]string{{"year"}}, buildYear)
		case Period:
			registerStructuredTarget(r, target, [][]string{{"years", "months", "days"}}, buildPeriod)
		case ZoneOffset:
			registerStructuredTarget(r, target, [][]string{{"hours", "minutes", "seconds"}}, buildZoneOffset)
		case ZoneID:
			registerStructuredTarget(r, target, [][]string{{"zone"}}, buildZoneID)
		case Date:
			registerStructuredTarget(r, target, [][]string{{"year", "month", "day"}}, buildDate)
		case TimeOfDay:
			registerStructuredTarget(r, target, [][]string{{"hour", "minute", "second", "nano"}}, buildTimeOfDay)
		case DateTime:
			registerStructuredTarget(r, target, [][]string{{"date", "time"}}, buildDateTime)
		case Time:
			registerStructuredTarget(r, target, [][]string{{"seconds", "nanos"}}, buildTime)
		case Duration:
			registerStructuredTarget(r, target, [][]string{{"seconds", "nanos"}}, buildDuration)
		case UUID:
			registerStructuredTarget(r, target, [][]string{{"mostSigBits", "leastSigBits"}}, buildUUID)
		default:
			registerStructuredTarget(r, target, nil, nil)
		}
	}
	registerStructuredSources(r)
}

func buildMonthDay(s *Object, c *Converter, options Options) (interface{}, bool, error) {
	if !s.Has("month", "day") {
		return nil, false, nil
	}
	month, err := fieldInt(s, c, options, "month")
	if err != nil {
		return nil, false, err
	}
	day, err := fieldInt(s, c, options, "day")
	if err != nil {
		return nil, false, err
	}
	md, err := chrono.ParseMonthDay(chrono.MonthDay{Month: time.Month(month), Day: day}.String())
	if err != nil {
		return nil, false, err
	}
	return md, true, nil
}

func buildYearMonth(s *Object, c *Converter, options Options) (interface{}, bool, error) {
	if !s.Has("year", "month") {
		return nil, false, nil
	}
	year, err := fieldInt(s, c, options, "year")
	if err != nil {
		return nil, false, err
	}
	month, err := fieldInt(s, c, options, "month")
	if err != nil {
		return nil, false, err
	}
	ym, err := chrono.ParseYearMonth(chrono.YearMonth{Year: year, Month: time.Month(month)}.String())
	if err != nil {
		return nil, false, err
	}
	return ym, true, nil
}

func buildYear(s *Object, c *Converter, options Options) (interface{}, bool, error) {
	if !s.Has("year") {
		return nil, false, nil
	}
	year, err := fieldInt(s, c, options, "year")
	if err != nil {
		return nil, false, err
	}
	return chrono.Year(year), true, nil
}

func buildPeriod(s *Object, c *Converter, options Options) (interface{}, bool, error) {
	if !s.Has("years") && !s.Has("months") && !s.Has("days") {
		return nil, false, nil
	}
	years, err := fieldInt(s, c, options, "years")
	if err != nil {
		return nil, false, err
	}
	months, err := fieldInt(s, c, options, "months")
	if err != nil {
		return nil, false, err
	}
	days, err := fieldInt(s, c, options, "days")
	if err != nil {
		return nil, false, err
	}
	return chrono.Period{Years: years, Months: months, Days: days}, true, nil
}

func buildZoneOffset(s *Object, c *Converter, options Options) (interface{}, bool, error) {
	if !s.Has("hours") && !s.Has("minutes") && !s.Has("seconds") {
		return nil, false, nil
	}
	hours, err := fieldInt(s, c, options, "hours")
	if err != nil {
		return nil, false, err
	}
	minutes, err := fieldInt(s, c, options, "minutes")
	if err != nil {
		return nil, false, err
	}
	seconds, err := fieldInt(s, c, options, "seconds")
	if err != nil {
		return nil, false, err
	}
	offset, err := chrono.OffsetOf(hours, minutes, seconds)
	if err != nil {
		return nil, false, err
	}
	return offset, true, nil
}

func buildZoneID(s *Object, c *Converter, options Options) (interface{}, bool, error) {
	if !s.Has("zone") {
		return nil, false, nil
	}
	raw, _ := s.Get("zone")
	zone, err := c.ConvertWith(raw, ZoneID, options)
	if err != nil {
		return nil, false, err
	}
	if zone == nil {
		return chrono.ZoneID{}, true, nil
	}
	return zone, true, nil
}

func buildDate(s *Object, c *Converter, options Options) (interface{}, bool, error) {
	if !s.Has("year", "month", "day") {
		return nil, false, nil
	}
	year, err := fieldInt(s, c, options, "year")
	if err != nil {
		return nil, false, err
	}
	month, err := fieldInt(s, c, options, "month")
	if err != nil {
		return nil, false, err
	}
	day, err := fieldInt(s, c, options, "day")
	if err != nil {
		return nil, false, err
	}
	date, err := chrono.ParseDate(chrono.Date{Year: year, Month: time.Month(month), Day: day}.String())
	if err != nil {
		return nil, false, err
	}
	return date, true, nil
}

func buildTimeOfDay(s *Object, c *Converter, options Options) (interface{}, bool, error) {
	if !s.Has("hour", "minute") {
		return nil, false, nil
	}
	hour, err := fieldInt(s, c, options, "hour")
	if err != nil {
		return nil, false, err
	}
	minute, err := fieldInt(s, c, options, "minute")
	if err != nil {
		return nil, false, err
	}
	second, err := fieldInt(s, c, options, "second")
	if err != nil {
		return nil, false, err
	}
	nano, err := fieldInt(s, c, options, "nano")
	if err != nil {
		return nil, false, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 || nano < 0 || nano > 999_999_999 {
		return nil, false, &ParseError{Literal: chrono.TimeOfDay{Hour: hour, Minute: minute, Second: second, Nano: nano}.String(), Target: TimeOfDay}
	}
	return chrono.TimeOfDay{Hour: hour, Minute: minute, Second: second, Nano: nano}, true, nil
}

func buildDateTime(s *Object, c *Converter, options Options) (interface{}, bool, error) {
	if !s.Has("date", "time") {
		return nil, false, nil
	}
	date, err := field[chrono.Date](s, c, options, "date", Date)
	if err != nil {
		return nil, false, err
	}
	tod, err := field[chrono.TimeOfDay](s, c, options, "time", TimeOfDay)
	if err != nil {
		return nil, false, err
	}
	return date.At(tod), true, nil
}

func buildTime(s *Object, c *Converter, options Options) (interface{}, bool, error) {
	if !s.Has("seconds") {
		return nil, false, nil
	}
	seconds, err := field[int64](s, c, options, "seconds", Int64)
	if err != nil {
		return nil, false, err
	}
	nanos, err := field[int64](s, c, options, "nanos", Int64)
	if err != nil {
		return nil, false, err
	}
	return time.Unix(seconds, nanos).In(options.Location()), true, nil
}

func buildDuration(s *Object, c *Converter, options Options) (interface{}, bool, error) {
	if !s.Has("seconds") {
		return nil, false, nil
	}
	seconds, err := field[int64](s, c, options, "seconds", Int64)
	if err != nil {
		return nil, false, err
	}
	nanos, err := field[int64](s, c, options, "nanos", Int64)
	if err != nil {
		return nil, false, err
	}
	return time.Duration(seconds)*time.Second + time.Duration(nanos), true, nil
}

func buildUUID(s *Object, c *Converter, options Options) (interface{}, bool, error) {
	if !s.Has("mostSigBits", "leastSigBits") {
		return nil, false, nil
	}
	hi, err := field[int64](s, c, options, "mostSigBits", Int64)
	if err != nil {
		return nil, false, err
	}
	lo, err := field[int64](s, c, options, "leastSigBits", Int64)
	if err != nil {
		return nil, false, err
	}
	var raw [16]byte
	binary.BigEndian.PutUint64(raw[:8], uint64(hi))
	binary.BigEndian.PutUint64(raw[8:], uint64(lo))
	return uuid.UUID(raw), true, nil
}

// registerStructuredSources wires the outbound direction: each endpoint
// renders into the named fields its own extraction accepts, so a value
// survives a round trip through Structured.
func registerStructuredSources(r *Registry) {
	wrap := func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return ObjectOf("_v", from), nil
	}
	for _, source := range []TypeKey{Bool, Int8, Int16, Int32, Int64, Int, Uint8, Uint16, Uint32, Uint64, Uint, Float32, Float64, Rune, BigInt, BigFloat, String, Number} {
		r.Register(source, Structured, wrap)
	}

	r.Register(MonthDay, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		md := from.(chrono.MonthDay)
		return ObjectOf("month", int(md.Month), "day", md.Day), nil
	})
	r.Register(YearMonth, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		ym := from.(chrono.YearMonth)
		return ObjectOf("year", ym.Year, "month", int(ym.Month)), nil
	})
	r.Register(Year, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return ObjectOf("year", int(from.(chrono.Year))), nil
	})
	r.Register(Period, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		p := from.(chrono.Period)
		return ObjectOf("years", p.Years, "months", p.Months, "days", p.Days), nil
	})
	r.Register(ZoneOffset, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		total := from.(chrono.ZoneOffset).Seconds()
		return ObjectOf("hours", total/3600, "minutes", total/60%60, "seconds", total%60), nil
	})
	r.Register(ZoneID, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return ObjectOf("zone", from.(chrono.ZoneID).Name()), nil
	})
	r.Register(Date, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		d := from.(chrono.Date)
		return ObjectOf("year", d.Year, "month", int(d.Month), "day", d.Day), nil
	})
	r.Register(TimeOfDay, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		t := from.(chrono.TimeOfDay)
		return ObjectOf("hour", t.Hour, "minute", t.Minute, "second", t.Second, "nano", t.Nano), nil
	})
	r.Register(DateTime, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		d := from.(chrono.DateTime)
		return ObjectOf("date", d.Date, "time", d.Time), nil
	})
	r.Register(Time, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		t := from.(time.Time)
		return ObjectOf("seconds", t.Unix(), "nanos", int64(t.Nanosecond())), nil
	})
	r.Register(Duration, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		d := from.(time.Duration)
		return ObjectOf("seconds", int64(d/time.Second), "nanos", int64(d%time.Second)), nil
	})
	r.Register(UUID, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		id := from.(uuid.UUID)
		hi := int64(binary.BigEndian.Uint64(id[:8]))
		lo := int64(binary.BigEndian.Uint64(id[8:]))
		return ObjectOf("mostSigBits", hi, "leastSigBits", lo), nil
	})
}
