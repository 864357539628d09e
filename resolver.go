package conv

import (
	"bytes"
	"fmt"
	"math/big"
	"reflect"
	"sync/atomic"
	"time"
)

// enumNamer marks enumeration-like values. Any value implementing it is
// keyed as Enum unless its concrete type carries its own registration.
type enumNamer interface {
	EnumName() string
}

// normalizeValue maps a dynamic value onto its type key, adapting wrapper
// and container shapes along the way: atomics are loaded, byte buffers
// flattened, pointers to scalars dereferenced, and plain maps or structs
// wrapped into *Object. The returned value is the one edges operate on.
func (r *Registry) normalizeValue(value interface{}) (TypeKey, interface{}, error) {
	switch actual := value.(type) {
	case *atomic.Bool:
		return Bool, actual.Load(), nil
	case *atomic.Int32:
		return Int32, actual.Load(), nil
	case *atomic.Int64:
		return Int64, actual.Load(), nil
	case *atomic.Uint32:
		return Uint32, actual.Load(), nil
	case *atomic.Uint64:
		return Uint64, actual.Load(), nil
	case *bytes.Buffer:
		return Bytes, actual.Bytes(), nil
	case *Object:
		return Structured, actual, nil
	case *big.Int:
		return BigInt, actual, nil
	case *big.Float:
		return BigFloat, actual, nil
	}

	rt := reflect.TypeOf(value)
	if key, ok := builtinByType[rt]; ok {
		return key, value, nil
	}
	key := TypeKey{name: rt.String(), rt: rt}
	if r.isKnown(key) {
		return key, value, nil
	}
	if _, ok := value.(enumNamer); ok {
		return Enum, value, nil
	}

	switch rt.Kind() {
	case reflect.Map:
		wrapped, err := FromMap(value)
		if err != nil {
			return key, nil, err
		}
		return Structured, wrapped, nil
	case reflect.Struct:
		wrapped, err := FromStruct(value)
		if err != nil {
			return key, nil, err
		}
		return Structured, wrapped, nil
	case reflect.Ptr:
		switch rt.Elem().Kind() {
		case reflect.Struct:
			wrapped, err := FromStruct(value)
			if err != nil {
				return key, nil, err
			}
			return Structured, wrapped, nil
		default:
			rv := reflect.ValueOf(value)
			if rv.IsNil() {
				return key, nil, nil
			}
			return r.normalizeValue(rv.Elem().Interface())
		}
	}
	return key, value, nil
}

// describe renders a value for diagnostics, favoring the representations a
// reader can match back to the input.
func describe(value interface{}) string {
	switch actual := value.(type) {
	case nil:
		return ""
	case string:
		if len(actual) > 40 {
			return actual[:40] + "..."
		}
		return actual
	case enumNamer:
		return actual.EnumName()
	case time.Time:
		return actual.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return actual.String()
	default:
		return fmt.Sprintf("%v", actual)
	}
}
