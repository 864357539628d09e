package conv

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var uuidModulus = new(big.Int).Lsh(big.NewInt(1), 128)

func registerTextEdges(r *Registry) {
	r.Register(Bool, String, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return strconv.FormatBool(from.(bool)), nil
	})
	stringify := func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		switch actual := from.(type) {
		case int8:
			return strconv.FormatInt(int64(actual), 10), nil
		case int16:
			return strconv.FormatInt(int64(actual), 10), nil
		case int32:
			return strconv.FormatInt(int64(actual), 10), nil
		case int64:
			return strconv.FormatInt(actual, 10), nil
		case int:
			return strconv.Itoa(actual), nil
		case uint8:
			return strconv.FormatUint(uint64(actual), 10), nil
		case uint16:
			return strconv.FormatUint(uint64(actual), 10), nil
		case uint32:
			return strconv.FormatUint(uint64(actual), 10), nil
		case uint64:
			return strconv.FormatUint(actual, 10), nil
		case uint:
			return strconv.FormatUint(uint64(actual), 10), nil
		case float32:
			return strconv.FormatFloat(float64(actual), 'g', -1, 32), nil
		case float64:
			return strconv.FormatFloat(actual, 'g', -1, 64), nil
		case *big.Int:
			return actual.String(), nil
		case *big.Float:
			return actual.Text('f', -1), nil
		}
		return nil, &UnsupportedError{Source: keyOfValue(from), Target: String, Value: describe(from)}
	}
	for _, source := range []TypeKey{Int8, Int16, Int32, Int64, Int, Uint8, Uint16, Uint32, Uint64, Uint, Float32, Float64, BigInt, BigFloat} {
		r.Register(source, String, stringify)
	}
	r.Register(Number, String, stringify)

	r.Register(String, Bytes, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return []byte(from.(string)), nil
	})
	r.Register(String, Runes, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return []rune(from.(string)), nil
	})
	r.Register(Bytes, String, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return string(from.([]byte)), nil
	})
	r.Register(Runes, String, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return string(from.([]rune)), nil
	})
	r.Register(Bytes, Runes, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return []rune(string(from.([]byte))), nil
	})
	r.Register(Runes, Bytes, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return []byte(string(from.([]rune))), nil
	})
	r.Register(Rune, String, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return string(from.(rune)), nil
	})

	r.Register(String, UUID, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		trimmed := strings.TrimSpace(from.(string))
		if trimmed == "" {
			return nil, nil
		}
		id, err := uuid.Parse(trimmed)
		if err != nil {
			return nil, &ParseError{Literal: trimmed, Target: UUID, Cause: err}
		}
		return id, nil
	})
	r.Register(UUID, String, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return from.(uuid.UUID).String(), nil
	})
	r.Register(UUID, BigInt, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		id := from.(uuid.UUID)
		return new(big.Int).SetBytes(id[:]), nil
	})
	r.Register(BigInt, UUID, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		var reduced big.Int
		reduced.Mod(from.(*big.Int), uuidModulus)
		var raw [16]byte
		reduced.FillBytes(raw[:])
		return uuid.UUID(raw), nil
	})
	r.Register(Bytes, UUID, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		raw := from.([]byte)
		id, err := uuid.FromBytes(raw)
		if err != nil {
			return nil, &ParseError{Literal: describe(raw), Target: UUID, Cause: err}
		}
		return id, nil
	})
	r.Register(UUID, Bytes, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		id := from.(uuid.UUID)
		raw := make([]byte, 16)
		copy(raw, id[:])
		return raw, nil
	})

	r.Register(Enum, String, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return from.(enumNamer).EnumName(), nil
	})
	r.Register(Enum, Structured, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return ObjectOf("name", from.(enumNamer).EnumName()), nil
	})
}
