package conv

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadashiva108/conv/chrono"
)

func TestConverter_NumericNarrowing(t *testing.T) {
	c := New(DefaultOptions())
	testCases := []struct {
		description string
		value       interface{}
		target      TypeKey
		expect      interface{}
	}{
		{description: "int64 to int8 wraps", value: int64(128), target: Int8, expect: int8(-128)},
		{description: "int16 to int8 wraps modulo width", value: int16(300), target: Int8, expect: int8(44)},
		{description: "negative wrap", value: int64(-129), target: Int8, expect: int8(127)},
		{description: "uint64 max to int64", value: uint64(math.MaxUint64), target: Int64, expect: int64(-1)},
		{description: "float truncates toward zero", value: float64(-0.9), target: Int64, expect: int64(0)},
		{description: "float then wraps", value: float64(256.7), target: Int8, expect: int8(0)},
		{description: "bool to int", value: true, target: Int, expect: int(1)},
		{description: "big int keeps low bits", value: new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(5)), target: Int8, expect: int8(5)},
		{description: "int to uint8 wraps", value: int(-1), target: Uint8, expect: uint8(255)},
		{description: "widening is exact", value: int8(-7), target: Int64, expect: int64(-7)},
		{description: "int to float", value: int64(3), target: Float64, expect: float64(3)},
		{description: "float32 to float64", value: float32(1.5), target: Float64, expect: float64(1.5)},
		{description: "int to rune", value: int64(65), target: Rune, expect: rune(65)},
	}
	for _, testCase := range testCases {
		actual, err := c.Convert(testCase.value, testCase.target)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestConverter_TextToNumber(t *testing.T) {
	c := New(DefaultOptions())
	testCases := []struct {
		description string
		value       string
		target      TypeKey
		expect      interface{}
		expectErr   error
	}{
		{description: "plain", value: "25", target: Int, expect: int(25)},
		{description: "surrounding whitespace", value: "  25 ", target: Int, expect: int(25)},
		{description: "blank is zero", value: "", target: Int16, expect: int16(0)},
		{description: "fraction truncates", value: "9.9", target: Int, expect: int(9)},
		{description: "negative fraction truncates", value: "-9.9", target: Int, expect: int(-9)},
		{description: "boundary accepted", value: "127", target: Int8, expect: int8(127)},
		{description: "above range rejected", value: "128", target: Int8, expectErr: ErrOutOfRange},
		{description: "below range rejected", value: "-129", target: Int8, expectErr: ErrOutOfRange},
		{description: "garbage rejected", value: "abc", target: Int8, expectErr: ErrNotParseable},
		{description: "negative unsigned rejected", value: "-1", target: Uint8, expectErr: ErrOutOfRange},
		{description: "unsigned boundary", value: "255", target: Uint8, expect: uint8(255)},
		{description: "float text", value: "1.25", target: Float64, expect: float64(1.25)},
		{description: "float garbage", value: "1.2.3", target: Float64, expectErr: ErrNotParseable},
	}
	for _, testCase := range testCases {
		actual, err := c.Convert(testCase.value, testCase.target)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestConverter_NumericAsymmetry(t *testing.T) {
	c := New(DefaultOptions())

	wrapped, err := c.Convert(big.NewInt(-129), Int8)
	require.NoError(t, err)
	assert.Equal(t, int8(127), wrapped)

	_, err = c.Convert("-129", Int8)
	assert.ErrorIs(t, err, ErrOutOfRange)

	parsed, err := c.Convert("-129", BigInt)
	require.NoError(t, err)
	require.IsType(t, (*big.Int)(nil), parsed)
	assert.Zero(t, parsed.(*big.Int).Cmp(big.NewInt(-129)))
}

func TestConverter_BigTargets(t *testing.T) {
	c := New(DefaultOptions())

	bigFromUint, err := c.Convert(uint64(math.MaxUint64), BigInt)
	require.NoError(t, err)
	expect, _ := new(big.Int).SetString("18446744073709551615", 10)
	assert.Zero(t, bigFromUint.(*big.Int).Cmp(expect))

	bigFloat, err := c.Convert("3.5", BigFloat)
	require.NoError(t, err)
	f, _ := bigFloat.(*big.Float).Float64()
	assert.Equal(t, 3.5, f)

	text, err := c.Convert(big.NewFloat(2.25), String)
	require.NoError(t, err)
	assert.Equal(t, "2.25", text)

	blank, err := c.Convert("   ", BigInt)
	require.NoError(t, err)
	assert.Zero(t, blank.(*big.Int).Sign())
}

func TestConverter_Bool(t *testing.T) {
	c := New(DefaultOptions())
	testCases := []struct {
		description string
		value       interface{}
		expect      interface{}
		expectErr   error
	}{
		{description: "int one", value: int64(1), expect: true},
		{description: "int zero", value: int64(0), expect: false},
		{description: "fraction below one is still true", value: 0.5, expect: true},
		{description: "text true", value: "true", expect: true},
		{description: "text mixed case", value: "False", expect: false},
		{description: "numeric text", value: "0", expect: false},
		{description: "blank text", value: "", expect: false},
		{description: "garbage", value: "maybe", expectErr: ErrNotParseable},
	}
	for _, testCase := range testCases {
		actual, err := c.Convert(testCase.value, Bool)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestConverter_NilAndIdentity(t *testing.T) {
	c := New(DefaultOptions())

	zero, err := c.Convert(nil, Int8)
	require.NoError(t, err)
	assert.Equal(t, int8(0), zero)

	zeroRune, err := c.Convert(nil, Rune)
	require.NoError(t, err)
	assert.Equal(t, rune(0), zeroRune)

	asString, err := c.Convert(nil, String)
	require.NoError(t, err)
	assert.Nil(t, asString)

	asTime, err := c.Convert(nil, Time)
	require.NoError(t, err)
	assert.Nil(t, asTime)

	var typedNil []byte
	asBytes, err := c.Convert(typedNil, Bytes)
	require.NoError(t, err)
	assert.Nil(t, asBytes)

	same, err := c.Convert("unchanged", String)
	require.NoError(t, err)
	assert.Equal(t, "unchanged", same)

	sameInt, err := c.Convert(int8(5), Int8)
	require.NoError(t, err)
	assert.Equal(t, int8(5), sameInt)
}

func TestConverter_TextForms(t *testing.T) {
	c := New(DefaultOptions())

	bytesValue, err := c.Convert("héllo", Bytes)
	require.NoError(t, err)
	assert.Equal(t, []byte("héllo"), bytesValue)

	runesValue, err := c.Convert([]byte("héllo"), Runes)
	require.NoError(t, err)
	assert.Equal(t, []rune("héllo"), runesValue)

	text, err := c.Convert([]rune{'a', 'b'}, String)
	require.NoError(t, err)
	assert.Equal(t, "ab", text)

	firstRune, err := c.Convert("héllo", Rune)
	require.NoError(t, err)
	assert.Equal(t, 'h', firstRune)

	runeText, err := c.Convert('é', Rune)
	require.NoError(t, err)
	assert.Equal(t, 'é', runeText)

	numText, err := c.Convert(int8(-7), String)
	require.NoError(t, err)
	assert.Equal(t, "-7", numText)

	floatText, err := c.Convert(float64(1.5), String)
	require.NoError(t, err)
	assert.Equal(t, "1.5", floatText)
}

func TestConverter_UUID(t *testing.T) {
	c := New(DefaultOptions())

	id, err := c.Convert("F0000000-0000-0000-0000-00000000000F", UUID)
	require.NoError(t, err)
	text, err := c.Convert(id, String)
	require.NoError(t, err)
	assert.Equal(t, "f0000000-0000-0000-0000-00000000000f", text)

	blank, err := c.Convert("  ", UUID)
	require.NoError(t, err)
	assert.Nil(t, blank)

	_, err = c.Convert("not-a-uuid", UUID)
	assert.ErrorIs(t, err, ErrNotParseable)

	asBig, err := c.Convert(id, BigInt)
	require.NoError(t, err)
	back, err := c.Convert(asBig, UUID)
	require.NoError(t, err)
	assert.Equal(t, id, back)

	reduced, err := c.Convert(big.NewInt(-1), UUID)
	require.NoError(t, err)
	assert.Equal(t, "ffffffff-ffff-ffff-ffff-ffffffffffff", reduced.(uuid.UUID).String())
}

func TestConverter_Time(t *testing.T) {
	c := New(DefaultOptions())

	epoch, err := c.Convert("1970-01-01T00:00:00Z", Time)
	require.NoError(t, err)
	assert.True(t, epoch.(time.Time).Equal(time.Unix(0, 0)))

	noSeconds, err := c.Convert("1980-01-01T00:00Z", Time)
	require.NoError(t, err)
	assert.Equal(t, 1980, noSeconds.(time.Time).Year())

	dateOnly, err := c.Convert("2024-02-29", Time)
	require.NoError(t, err)
	assert.Equal(t, time.February, dateOnly.(time.Time).Month())

	blank, err := c.Convert("", Time)
	require.NoError(t, err)
	assert.Nil(t, blank)

	_, err = c.Convert("not a time", Time)
	assert.ErrorIs(t, err, ErrNotParseable)

	fromSeconds, err := c.Convert(int64(1_700_000_000), Time)
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000), fromSeconds.(time.Time).Unix())

	fromNanos, err := c.Convert(int64(1_700_000_000_000_000_000), Time)
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000), fromNanos.(time.Time).Unix())

	text, err := c.Convert(time.Unix(0, 0).UTC(), String)
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T00:00:00Z", text)

	seconds, err := c.Convert(time.Unix(42, 0), Int64)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seconds)
}

func TestConverter_TimeZoneOption(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	c := New(Options{TimeZone: tokyo})

	parsed, err := c.Convert("2024-06-01T00:00:00", Time)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", parsed.(time.Time).Location().String())

	date, err := c.Convert(time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC), Date)
	require.NoError(t, err)
	assert.Equal(t, chrono.Date{Year: 2024, Month: time.June, Day: 2}, date)
}

func TestConverter_Duration(t *testing.T) {
	c := New(DefaultOptions())

	d, err := c.Convert("1h30m", Duration)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	text, err := c.Convert(90*time.Minute, String)
	require.NoError(t, err)
	assert.Equal(t, "1h30m0s", text)

	nanos, err := c.Convert(time.Second, Int64)
	require.NoError(t, err)
	assert.Equal(t, int64(time.Second), nanos)

	fromSeconds, err := c.Convert(1.5, Duration)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, fromSeconds)
}

func TestConverter_ChronoEndpoints(t *testing.T) {
	c := New(DefaultOptions())
	testCases := []struct {
		description string
		value       string
		target      TypeKey
		expectText  string
	}{
		{description: "month-day canonical", value: "--12-25", target: MonthDay, expectText: "--12-25"},
		{description: "month-day lenient", value: "1-1", target: MonthDay, expectText: "--01-01"},
		{description: "year-month canonical", value: "2024-06", target: YearMonth, expectText: "2024-06"},
		{description: "year-month from embedded date", value: "2024-6-15", target: YearMonth, expectText: "2024-06"},
		{description: "year", value: "2024", target: Year, expectText: "2024"},
		{description: "period with weeks", value: "P160W", target: Period, expectText: "P1120D"},
		{description: "period full", value: "P1Y2M3D", target: Period, expectText: "P1Y2M3D"},
		{description: "offset with colon", value: "+01:09", target: ZoneOffset, expectText: "+01:09"},
		{description: "offset compact", value: "+0109", target: ZoneOffset, expectText: "+01:09"},
		{description: "negative zero offset", value: "-00:00", target: ZoneOffset, expectText: "+00:00"},
		{description: "zone id", value: "America/New_York", target: ZoneID, expectText: "America/New_York"},
		{description: "date", value: "2024-2-29", target: Date, expectText: "2024-02-29"},
		{description: "time of day", value: "9:30", target: TimeOfDay, expectText: "09:30"},
		{description: "date time", value: "2024-06-01T09:30:15", target: DateTime, expectText: "2024-06-01T09:30:15"},
	}
	for _, testCase := range testCases {
		parsed, err := c.Convert(testCase.value, testCase.target)
		require.NoError(t, err, testCase.description)
		text, err := c.Convert(parsed, String)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectText, text, testCase.description)
	}

	_, err := c.Convert("--1-1", MonthDay)
	assert.ErrorIs(t, err, ErrNotParseable)

	_, err = c.Convert("America/Cincinnati", ZoneID)
	assert.ErrorIs(t, err, ErrNotParseable)
}

func TestConverter_YearFromIntegers(t *testing.T) {
	c := New(DefaultOptions())

	for _, value := range []interface{}{int16(2024), int32(2024), int64(2024), int(2024)} {
		year, err := c.Convert(value, Year)
		require.NoError(t, err)
		assert.Equal(t, chrono.Year(2024), year)
	}

	_, err := c.Convert(int8(24), Year)
	assert.ErrorIs(t, err, ErrUnsupported)

	short, err := c.Convert(chrono.Year(2024), Int16)
	require.NoError(t, err)
	assert.Equal(t, int16(2024), short)

	_, err = c.Convert(chrono.Year(2024), Int8)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "unsupported conversion")
}

func TestConverter_StructuredExtraction(t *testing.T) {
	c := New(DefaultOptions())

	direct, err := c.Convert(map[string]interface{}{"_v": 5}, Int)
	require.NoError(t, err)
	assert.Equal(t, 5, direct)

	nested, err := c.Convert(map[string]interface{}{"_v": map[string]interface{}{"_v": "42"}}, Int64)
	require.NoError(t, err)
	assert.Equal(t, int64(42), nested)

	fallback, err := c.Convert(map[string]interface{}{"value": "7"}, Int8)
	require.NoError(t, err)
	assert.Equal(t, int8(7), fallback)

	underscorePriority, err := c.Convert(map[string]interface{}{"value": 1, "_v": 2}, Int)
	require.NoError(t, err)
	assert.Equal(t, 2, underscorePriority)

	monthDay, err := c.Convert(map[string]interface{}{"month": "12", "day": 25}, MonthDay)
	require.NoError(t, err)
	assert.Equal(t, chrono.MonthDay{Month: time.December, Day: 25}, monthDay)

	year, err := c.Convert(map[string]interface{}{"year": 2024}, Year)
	require.NoError(t, err)
	assert.Equal(t, chrono.Year(2024), year)

	period, err := c.Convert(map[string]interface{}{"years": 1, "days": 3}, Period)
	require.NoError(t, err)
	assert.Equal(t, chrono.Period{Years: 1, Days: 3}, period)

	offset, err := c.Convert(map[string]interface{}{"hours": -5, "minutes": -30}, ZoneOffset)
	require.NoError(t, err)
	assert.Equal(t, "-05:30", offset.(chrono.ZoneOffset).String())

	date, err := c.Convert(map[string]interface{}{"year": 2024, "month": 2, "day": 29}, Date)
	require.NoError(t, err)
	assert.Equal(t, chrono.Date{Year: 2024, Month: time.February, Day: 29}, date)

	zone, err := c.Convert(map[string]interface{}{"zone": map[string]interface{}{"_v": "Asia/Tokyo"}}, ZoneID)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", zone.(chrono.ZoneID).Name())

	_, err = c.Convert(map[string]interface{}{"wrong": 1}, MonthDay)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingKeys)
	assert.Contains(t, err.Error(), "[month, day]")
	assert.Contains(t, err.Error(), "[_v]")
}

func TestConverter_StructuredRoundTrip(t *testing.T) {
	c := New(DefaultOptions())
	values := []interface{}{
		chrono.MonthDay{Month: time.December, Day: 25},
		chrono.YearMonth{Year: 2024, Month: time.June},
		chrono.Year(2024),
		chrono.Period{Years: 1, Months: 2, Days: 3},
		chrono.Date{Year: 2024, Month: time.February, Day: 29},
		chrono.TimeOfDay{Hour: 9, Minute: 30, Second: 15},
		90 * time.Minute,
	}
	for _, value := range values {
		key, _, err := c.Registry().normalizeValue(value)
		require.NoError(t, err)
		structured, err := c.Convert(value, Structured)
		require.NoError(t, err, key.String())
		back, err := c.Convert(structured, key)
		require.NoError(t, err, key.String())
		assert.Equal(t, value, back, key.String())
	}

	id := uuid.MustParse("f0000000-0000-0000-0000-00000000000f")
	structured, err := c.Convert(id, Structured)
	require.NoError(t, err)
	assert.True(t, structured.(*Object).Has("mostSigBits", "leastSigBits"))
	back, err := c.Convert(structured, UUID)
	require.NoError(t, err)
	assert.Equal(t, id, back)
}

func TestConverter_StructSource(t *testing.T) {
	type span struct {
		Month int `json:"month"`
		Day   int `json:"day"`
	}
	c := New(DefaultOptions())
	monthDay, err := c.Convert(span{Month: 6, Day: 15}, MonthDay)
	require.NoError(t, err)
	assert.Equal(t, chrono.MonthDay{Month: time.June, Day: 15}, monthDay)
}

type testColor int

func (c testColor) EnumName() string {
	switch c {
	case 1:
		return "RED"
	default:
		return "UNKNOWN"
	}
}

func TestConverter_Enum(t *testing.T) {
	c := New(DefaultOptions())

	name, err := c.Convert(testColor(1), String)
	require.NoError(t, err)
	assert.Equal(t, "RED", name)

	structured, err := c.Convert(testColor(1), Structured)
	require.NoError(t, err)
	value, ok := structured.(*Object).Get("name")
	assert.True(t, ok)
	assert.Equal(t, "RED", value)
}

func TestConverter_To(t *testing.T) {
	c := New(DefaultOptions())

	n, err := To[int8](c, "127")
	require.NoError(t, err)
	assert.Equal(t, int8(127), n)

	s, err := To[string](c, nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	_, err = To[int8](c, "128")
	assert.ErrorIs(t, err, ErrOutOfRange)
}
