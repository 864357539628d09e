package conv

import (
	"bytes"
	"math/big"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/sadashiva108/conv/chrono"
)

// TypeKey identifies a conversion endpoint after normalization. Built-in
// keys are package variables (Bool, Int8, String, Structured, ...); keys for
// user types are derived from their reflect.Type via KeyOf or KeyFor.
// Equality is by normalized identity, so two keys for the same user type
// compare equal.
type TypeKey struct {
	name string
	rt   reflect.Type
}

// Built-in endpoint keys.
var (
	Bool    = TypeKey{name: "Bool"}
	Int8    = TypeKey{name: "Int8"}
	Int16   = TypeKey{name: "Int16"}
	Int32   = TypeKey{name: "Int32"}
	Int64   = TypeKey{name: "Int64"}
	Int     = TypeKey{name: "Int"}
	Uint8   = TypeKey{name: "Uint8"}
	Uint16  = TypeKey{name: "Uint16"}
	Uint32  = TypeKey{name: "Uint32"}
	Uint64  = TypeKey{name: "Uint64"}
	Uint    = TypeKey{name: "Uint"}
	Float32 = TypeKey{name: "Float32"}
	Float64 = TypeKey{name: "Float64"}

	// Rune is a target-only key: a dynamic rune value normalizes to Int32
	// because rune aliases int32.
	Rune = TypeKey{name: "Rune"}

	BigInt   = TypeKey{name: "BigInt"}
	BigFloat = TypeKey{name: "BigFloat"}

	String = TypeKey{name: "String"}
	Bytes  = TypeKey{name: "Bytes"}
	Runes  = TypeKey{name: "Runes"}
	UUID   = TypeKey{name: "UUID"}

	Time       = TypeKey{name: "Time"}
	Duration   = TypeKey{name: "Duration"}
	Date       = TypeKey{name: "Date"}
	TimeOfDay  = TypeKey{name: "TimeOfDay"}
	DateTime   = TypeKey{name: "DateTime"}
	MonthDay   = TypeKey{name: "MonthDay"}
	YearMonth  = TypeKey{name: "YearMonth"}
	Year       = TypeKey{name: "Year"}
	Period     = TypeKey{name: "Period"}
	ZoneID     = TypeKey{name: "ZoneID"}
	ZoneOffset = TypeKey{name: "ZoneOffset"}

	// Enum matches any value with an EnumName() string method whose concrete
	// type has no registration of its own.
	Enum = TypeKey{name: "Enum"}

	// Structured matches *Object plus any map or struct value, which
	// normalization wraps into an Object.
	Structured = TypeKey{name: "Structured"}

	// Abstract ancestor keys; never produced by normalization, reached only
	// through the ancestor walk.
	Number   = TypeKey{name: "Number"}
	Temporal = TypeKey{name: "Temporal"}
)

// String returns the key's display name.
func (k TypeKey) String() string {
	return k.name
}

// IsZero reports whether the key is the zero value.
func (k TypeKey) IsZero() bool {
	return k == TypeKey{}
}

var builtinByType = map[reflect.Type]TypeKey{
	reflect.TypeOf(false):                Bool,
	reflect.TypeOf(int8(0)):              Int8,
	reflect.TypeOf(int16(0)):             Int16,
	reflect.TypeOf(int32(0)):             Int32,
	reflect.TypeOf(int64(0)):             Int64,
	reflect.TypeOf(int(0)):               Int,
	reflect.TypeOf(uint8(0)):             Uint8,
	reflect.TypeOf(uint16(0)):            Uint16,
	reflect.TypeOf(uint32(0)):            Uint32,
	reflect.TypeOf(uint64(0)):            Uint64,
	reflect.TypeOf(uint(0)):              Uint,
	reflect.TypeOf(float32(0)):           Float32,
	reflect.TypeOf(float64(0)):           Float64,
	reflect.TypeOf((*big.Int)(nil)):      BigInt,
	reflect.TypeOf((*big.Float)(nil)):    BigFloat,
	reflect.TypeOf(""):                   String,
	reflect.TypeOf([]byte(nil)):          Bytes,
	reflect.TypeOf([]rune(nil)):          Runes,
	reflect.TypeOf(uuid.UUID{}):          UUID,
	reflect.TypeOf(time.Time{}):          Time,
	reflect.TypeOf(time.Duration(0)):     Duration,
	reflect.TypeOf(chrono.Date{}):        Date,
	reflect.TypeOf(chrono.TimeOfDay{}):   TimeOfDay,
	reflect.TypeOf(chrono.DateTime{}):    DateTime,
	reflect.TypeOf(chrono.MonthDay{}):    MonthDay,
	reflect.TypeOf(chrono.YearMonth{}):   YearMonth,
	reflect.TypeOf(chrono.Year(0)):       Year,
	reflect.TypeOf(chrono.Period{}):      Period,
	reflect.TypeOf(chrono.ZoneID{}):      ZoneID,
	reflect.TypeOf(chrono.ZoneOffset(0)): ZoneOffset,
	reflect.TypeOf((*Object)(nil)):       Structured,
	reflect.TypeOf((*bytes.Buffer)(nil)): Bytes,
}

// scalarZero holds the nil-source result per scalar target; every key
// absent here yields untyped nil for a nil source.
var scalarZero = map[TypeKey]interface{}{
	Bool:    false,
	Int8:    int8(0),
	Int16:   int16(0),
	Int32:   int32(0),
	Int64:   int64(0),
	Int:     int(0),
	Uint8:   uint8(0),
	Uint16:  uint16(0),
	Uint32:  uint32(0),
	Uint64:  uint64(0),
	Uint:    uint(0),
	Float32: float32(0),
	Float64: float64(0),
	Rune:    rune(0),
}

// KeyFor returns the conversion key for a runtime type: the built-in key
// when the type is a supported endpoint, otherwise a key derived from the
// type itself.
func KeyFor(rt reflect.Type) TypeKey {
	if key, ok := builtinByType[rt]; ok {
		return key
	}
	return TypeKey{name: rt.String(), rt: rt}
}

// KeyOf returns the conversion key for the type parameter T.
func KeyOf[T any]() TypeKey {
	return KeyFor(reflect.TypeOf((*T)(nil)).Elem())
}

// Keys lists every built-in endpoint key.
func Keys() []TypeKey {
	return []TypeKey{
		Bool, Int8, Int16, Int32, Int64, Int,
		Uint8, Uint16, Uint32, Uint64, Uint,
		Float32, Float64, Rune, BigInt, BigFloat,
		String, Bytes, Runes, UUID,
		Time, Duration, Date, TimeOfDay, DateTime,
		MonthDay, YearMonth, Year, Period, ZoneID, ZoneOffset,
		Enum, Structured, Number, Temporal,
	}
}
