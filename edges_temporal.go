package conv

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/sadashiva108/conv/chrono"
)

// epochNanosThreshold separates second and nanosecond epoch magnitudes: a
// value beyond it is taken as nanoseconds since the epoch.
const epochNanosThreshold = int64(10_000_000_000)

// timeLayouts are tried in order when parsing text into time.Time. Layouts
// without a zone resolve in the converter's time zone.
var timeLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{time.RFC3339, true},
	{"2006-01-02T15:04Z07:00", true},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02", false},
}

func parseTimeText(text string, loc *time.Location) (time.Time, error) {
	var lastErr error
	for _, candidate := range timeLayouts {
		var parsed time.Time
		var err error
		if candidate.zoned {
			parsed, err = time.Parse(candidate.layout, text)
		} else {
			parsed, err = time.ParseInLocation(candidate.layout, text, loc)
		}
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func epochToTime(n int64, loc *time.Location) time.Time {
	if n > epochNanosThreshold || n < -epochNanosThreshold {
		return time.Unix(0, n).In(loc)
	}
	return time.Unix(n, 0).In(loc)
}

func registerTimeEdges(r *Registry) {
	r.Register(String, Time, func(from interface{}, _ *Converter, options Options) (interface{}, error) {
		trimmed := strings.TrimSpace(from.(string))
		if trimmed == "" {
			return nil, nil
		}
		parsed, err := parseTimeText(trimmed, options.Location())
		if err != nil {
			return nil, &ParseError{Literal: trimmed, Target: Time, Cause: err}
		}
		return parsed, nil
	})
	r.Register(Time, String, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return from.(time.Time).Format(time.RFC3339Nano), nil
	})

	fromEpoch := func(from interface{}, _ *Converter, options Options) (interface{}, error) {
		switch actual := from.(type) {
		case float32:
			return floatToTime(float64(actual), options.Location()), nil
		case float64:
			return floatToTime(actual, options.Location()), nil
		case *big.Float:
			f, _ := actual.Float64()
			return floatToTime(f, options.Location()), nil
		}
		n, ok := toInt64(from)
		if !ok {
			return nil, &UnsupportedError{Source: keyOfValue(from), Target: Time, Value: describe(from)}
		}
		return epochToTime(n, options.Location()), nil
	}
	for _, source := range []TypeKey{Int16, Int32, Int64, Int, Uint32, Uint64, Uint, Float32, Float64, BigInt, BigFloat} {
		r.Register(source, Time, fromEpoch)
	}

	r.Register(Time, Int64, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return from.(time.Time).Unix(), nil
	})
	r.Register(Time, Int, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return int(from.(time.Time).Unix()), nil
	})
	r.Register(Time, Float64, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		t := from.(time.Time)
		return float64(t.Unix()) + float64(t.Nanosecond())/1e9, nil
	})
	r.Register(Time, BigInt, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return big.NewInt(from.(time.Time).Unix()), nil
	})
}

func floatToTime(f float64, loc *time.Location) time.Time {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Unix(0, 0).In(loc)
	}
	sec := math.Trunc(f)
	nanos := int64(math.Round((f - sec) * 1e9))
	return time.Unix(int64(sec), nanos).In(loc)
}

func registerDurationEdges(r *Registry) {
	r.Register(String, Duration, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		trimmed := strings.TrimSpace(from.(string))
		if trimmed == "" {
			return nil, nil
		}
		d, err := time.ParseDuration(trimmed)
		if err != nil {
			return nil, &ParseError{Literal: trimmed, Target: Duration, Cause: err}
		}
		return d, nil
	})
	r.Register(Duration, String, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return from.(time.Duration).String(), nil
	})
	r.Register(Int64, Duration, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return time.Duration(from.(int64)), nil
	})
	r.Register(Int, Duration, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return time.Duration(from.(int)), nil
	})
	r.Register(Duration, Int64, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return int64(from.(time.Duration)), nil
	})
	r.Register(Float64, Duration, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return time.Duration(from.(float64) * float64(time.Second)), nil
	})
	r.Register(Duration, Float64, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return from.(time.Duration).Seconds(), nil
	})
}

// registerChronoText wires the parse and format edges shared by every
// chrono endpoint. Blank text converts to nil rather than a zero value.
func registerChronoText[T any](r *Registry, key TypeKey, parse func(string) (T, error), format func(T) string) {
	r.Register(String, key, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		trimmed := strings.TrimSpace(from.(string))
		if trimmed == "" {
			return nil, nil
		}
		parsed, err := parse(trimmed)
		if err != nil {
			return nil, &ParseError{Literal: trimmed, Target: key, Cause: err}
		}
		return parsed, nil
	})
	r.Register(key, String, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return format(from.(T)), nil
	})
}

func registerChronoEdges(r *Registry) {
	registerChronoText(r, Date, chrono.ParseDate, chrono.Date.String)
	registerChronoText(r, TimeOfDay, chrono.ParseTimeOfDay, chrono.TimeOfDay.String)
	registerChronoText(r, DateTime, chrono.ParseDateTime, chrono.DateTime.String)
	registerChronoText(r, MonthDay, chrono.ParseMonthDay, chrono.MonthDay.String)
	registerChronoText(r, YearMonth, chrono.ParseYearMonth, chrono.YearMonth.String)
	registerChronoText(r, Year, chrono.ParseYear, chrono.Year.String)
	registerChronoText(r, Period, chrono.ParsePeriod, chrono.Period.String)
	registerChronoText(r, ZoneOffset, chrono.ParseZoneOffset, chrono.ZoneOffset.String)
	registerChronoText(r, ZoneID, chrono.LoadZoneID, chrono.ZoneID.String)

	r.Register(Time, Date, func(from interface{}, _ *Converter, options Options) (interface{}, error) {
		return chrono.DateOf(from.(time.Time).In(options.Location())), nil
	})
	r.Register(Time, TimeOfDay, func(from interface{}, _ *Converter, options Options) (interface{}, error) {
		return chrono.TimeOfDayOf(from.(time.Time).In(options.Location())), nil
	})
	r.Register(Time, DateTime, func(from interface{}, _ *Converter, options Options) (interface{}, error) {
		return chrono.DateTimeOf(from.(time.Time).In(options.Location())), nil
	})
	r.Register(Time, MonthDay, func(from interface{}, _ *Converter, options Options) (interface{}, error) {
		return chrono.MonthDayOf(from.(time.Time).In(options.Location())), nil
	})
	r.Register(Time, YearMonth, func(from interface{}, _ *Converter, options Options) (interface{}, error) {
		return chrono.YearMonthOf(from.(time.Time).In(options.Location())), nil
	})
	r.Register(Time, Year, func(from interface{}, _ *Converter, options Options) (interface{}, error) {
		return chrono.YearOf(from.(time.Time).In(options.Location())), nil
	})

	r.Register(Date, Time, func(from interface{}, _ *Converter, options Options) (interface{}, error) {
		return from.(chrono.Date).In(options.Location()), nil
	})
	r.Register(DateTime, Time, func(from interface{}, _ *Converter, options Options) (interface{}, error) {
		return from.(chrono.DateTime).In(options.Location()), nil
	})
	r.Register(Date, DateTime, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return from.(chrono.Date).At(chrono.TimeOfDay{}), nil
	})
	r.Register(DateTime, Date, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return from.(chrono.DateTime).Date, nil
	})
	r.Register(DateTime, TimeOfDay, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return from.(chrono.DateTime).Time, nil
	})
	r.Register(Date, MonthDay, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		d := from.(chrono.Date)
		return chrono.MonthDay{Month: d.Month, Day: d.Day}, nil
	})
	r.Register(Date, YearMonth, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		d := from.(chrono.Date)
		return chrono.YearMonth{Year: d.Year, Month: d.Month}, nil
	})
	r.Register(Date, Year, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return chrono.Year(from.(chrono.Date).Year), nil
	})
	r.Register(YearMonth, Year, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return chrono.Year(from.(chrono.YearMonth).Year), nil
	})

	// Year interconverts with integers of at least 16 bits.
	yearFromInt := func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		n, _ := toInt64(from)
		return chrono.Year(n), nil
	}
	for _, source := range []TypeKey{Int16, Int32, Int64, Int} {
		r.Register(source, Year, yearFromInt)
	}
	r.Register(Year, Int16, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return int16(from.(chrono.Year)), nil
	})
	r.Register(Year, Int32, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return int32(from.(chrono.Year)), nil
	})
	r.Register(Year, Int64, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return int64(from.(chrono.Year)), nil
	})
	r.Register(Year, Int, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return int(from.(chrono.Year)), nil
	})

	r.Register(ZoneOffset, ZoneID, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return chrono.LoadZoneID(from.(chrono.ZoneOffset).String())
	})
	r.Register(ZoneID, ZoneOffset, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		zone := from.(chrono.ZoneID)
		if offset, err := chrono.ParseZoneOffset(zone.Name()); err == nil {
			return offset, nil
		}
		return nil, &UnsupportedError{Source: ZoneID, Target: ZoneOffset, Value: zone.Name()}
	})

	// Any temporal value that formats itself can still become text.
	r.Register(Temporal, String, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		if s, ok := from.(fmt.Stringer); ok {
			return s.String(), nil
		}
		return nil, &UnsupportedError{Source: keyOfValue(from), Target: String, Value: describe(from)}
	})
}

func registerTemporalEdges(r *Registry) {
	registerTimeEdges(r)
	registerDurationEdges(r)
	registerChronoEdges(r)
}
