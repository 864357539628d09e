package conv

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// numericSources lists every key the shared numeric narrowing applies to.
// Boolean participates as 1 or 0.
var numericSources = []TypeKey{Bool, Int8, Int16, Int32, Int64, Int, Uint8, Uint16, Uint32, Uint64, Uint, Float32, Float64, BigInt, BigFloat}

type signedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// registerSignedEdges wires every numeric source plus the Number ancestor
// and textual parsing onto a signed integer target. Numeric sources wrap
// modulo the target width; text observes [min, max].
func registerSignedEdges[T signedInteger](r *Registry, target TypeKey, min, max int64) {
	narrow := func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		n, ok := toInt64(from)
		if !ok {
			return nil, &UnsupportedError{Source: keyOfValue(from), Target: target, Value: describe(from)}
		}
		return T(n), nil
	}
	for _, source := range numericSources {
		r.Register(source, target, narrow)
	}
	r.Register(Number, target, narrow)
	r.Register(String, target, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		n, err := parseSignedText(from.(string), target, min, max)
		if err != nil {
			return nil, err
		}
		return T(n), nil
	})
}

// registerUnsignedEdges is the unsigned counterpart of registerSignedEdges.
func registerUnsignedEdges[T unsignedInteger](r *Registry, target TypeKey, max uint64) {
	narrow := func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		n, ok := toInt64(from)
		if !ok {
			return nil, &UnsupportedError{Source: keyOfValue(from), Target: target, Value: describe(from)}
		}
		return T(n), nil
	}
	for _, source := range numericSources {
		r.Register(source, target, narrow)
	}
	r.Register(Number, target, narrow)
	r.Register(String, target, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		n, err := parseUnsignedText(from.(string), target, max)
		if err != nil {
			return nil, err
		}
		return T(n), nil
	})
}

func registerFloatEdges[T ~float32 | ~float64](r *Registry, target TypeKey, bits int) {
	widen := func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		f, ok := toFloat64(from)
		if !ok {
			return nil, &UnsupportedError{Source: keyOfValue(from), Target: target, Value: describe(from)}
		}
		return T(f), nil
	}
	for _, source := range numericSources {
		r.Register(source, target, widen)
	}
	r.Register(Number, target, widen)
	r.Register(String, target, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		trimmed := strings.TrimSpace(from.(string))
		if trimmed == "" {
			return T(0), nil
		}
		f, err := strconv.ParseFloat(trimmed, bits)
		if err != nil {
			return nil, &ParseError{Literal: trimmed, Target: target, Cause: err}
		}
		return T(f), nil
	})
}

func registerBigEdges(r *Registry) {
	toBigInt := func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		n, ok := bigIntFrom(from)
		if !ok {
			return nil, &UnsupportedError{Source: keyOfValue(from), Target: BigInt, Value: describe(from)}
		}
		return n, nil
	}
	toBigFloat := func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		f, ok := bigFloatFrom(from)
		if !ok {
			return nil, &UnsupportedError{Source: keyOfValue(from), Target: BigFloat, Value: describe(from)}
		}
		return f, nil
	}
	for _, source := range numericSources {
		r.Register(source, BigInt, toBigInt)
		r.Register(source, BigFloat, toBigFloat)
	}
	r.Register(Number, BigInt, toBigInt)
	r.Register(Number, BigFloat, toBigFloat)
	r.Register(String, BigInt, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return parseBigIntText(from.(string), BigInt)
	})
	r.Register(String, BigFloat, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return parseBigFloatText(from.(string), BigFloat)
	})
}

func registerBoolEdges(r *Registry) {
	truthy := func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		b, ok := isTruthy(from)
		if !ok {
			return nil, &UnsupportedError{Source: keyOfValue(from), Target: Bool, Value: describe(from)}
		}
		return b, nil
	}
	for _, source := range numericSources {
		r.Register(source, Bool, truthy)
	}
	r.Register(Number, Bool, truthy)
	r.Register(String, Bool, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		trimmed := strings.TrimSpace(from.(string))
		if trimmed == "" {
			return false, nil
		}
		if b, err := strconv.ParseBool(strings.ToLower(trimmed)); err == nil {
			return b, nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, &ParseError{Literal: trimmed, Target: Bool, Cause: err}
		}
		return f != 0, nil
	})
}

func registerNumericEdges(r *Registry) {
	registerSignedEdges[int8](r, Int8, math.MinInt8, math.MaxInt8)
	registerSignedEdges[int16](r, Int16, math.MinInt16, math.MaxInt16)
	registerSignedEdges[int32](r, Int32, math.MinInt32, math.MaxInt32)
	registerSignedEdges[int64](r, Int64, math.MinInt64, math.MaxInt64)
	registerSignedEdges[int](r, Int, math.MinInt, math.MaxInt)
	registerUnsignedEdges[uint8](r, Uint8, math.MaxUint8)
	registerUnsignedEdges[uint16](r, Uint16, math.MaxUint16)
	registerUnsignedEdges[uint32](r, Uint32, math.MaxUint32)
	registerUnsignedEdges[uint64](r, Uint64, math.MaxUint64)
	registerUnsignedEdges[uint](r, Uint, math.MaxUint)
	registerFloatEdges[float32](r, Float32, 32)
	registerFloatEdges[float64](r, Float64, 64)
	registerBigEdges(r)
	registerBoolEdges(r)

	// Rune narrows like int32 but text yields the first rune.
	registerSignedEdges[rune](r, Rune, math.MinInt32, math.MaxInt32)
	r.Register(String, Rune, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		text := from.(string)
		if text == "" {
			return rune(0), nil
		}
		return []rune(text)[0], nil
	})
}

// keyOfValue resolves the key of an already normalized value for error
// reporting inside edges.
func keyOfValue(value interface{}) TypeKey {
	return KeyFor(reflect.TypeOf(value))
}
