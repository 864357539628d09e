package conv

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const bigFloatPrec = 256

var low64Mask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))

// toInt64 reduces any numeric or boolean value to its low 64 bits with
// two's-complement wrapping. Fractional inputs truncate toward zero first;
// NaN and infinities collapse to 0.
func toInt64(value interface{}) (int64, bool) {
	switch actual := value.(type) {
	case bool:
		if actual {
			return 1, true
		}
		return 0, true
	case int8:
		return int64(actual), true
	case int16:
		return int64(actual), true
	case int32:
		return int64(actual), true
	case int64:
		return actual, true
	case int:
		return int64(actual), true
	case uint8:
		return int64(actual), true
	case uint16:
		return int64(actual), true
	case uint32:
		return int64(actual), true
	case uint64:
		return int64(actual), true
	case uint:
		return int64(uint64(actual)), true
	case float32:
		return truncFloatToInt64(float64(actual)), true
	case float64:
		return truncFloatToInt64(actual), true
	case *big.Int:
		return bigIntToInt64(actual), true
	case *big.Float:
		truncated, _ := new(big.Float).SetPrec(bigFloatPrec).Set(actual).Int(nil)
		return bigIntToInt64(truncated), true
	}
	return 0, false
}

func truncFloatToInt64(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	truncated := math.Trunc(f)
	if math.Abs(truncated) < 1<<62 {
		return int64(truncated)
	}
	whole, _ := new(big.Float).SetFloat64(truncated).Int(nil)
	return bigIntToInt64(whole)
}

func bigIntToInt64(x *big.Int) int64 {
	if x.IsInt64() {
		return x.Int64()
	}
	var low big.Int
	low.And(x, low64Mask)
	return int64(low.Uint64())
}

// toFloat64 widens any numeric or boolean value to float64.
func toFloat64(value interface{}) (float64, bool) {
	switch actual := value.(type) {
	case bool:
		if actual {
			return 1, true
		}
		return 0, true
	case int8:
		return float64(actual), true
	case int16:
		return float64(actual), true
	case int32:
		return float64(actual), true
	case int64:
		return float64(actual), true
	case int:
		return float64(actual), true
	case uint8:
		return float64(actual), true
	case uint16:
		return float64(actual), true
	case uint32:
		return float64(actual), true
	case uint64:
		return float64(actual), true
	case uint:
		return float64(actual), true
	case float32:
		return float64(actual), true
	case float64:
		return actual, true
	case *big.Int:
		f, _ := new(big.Float).SetInt(actual).Float64()
		return f, true
	case *big.Float:
		f, _ := actual.Float64()
		return f, true
	}
	return 0, false
}

// bigIntFrom builds an exact *big.Int from a numeric or boolean value,
// truncating fractional inputs toward zero.
func bigIntFrom(value interface{}) (*big.Int, bool) {
	switch actual := value.(type) {
	case uint64:
		return new(big.Int).SetUint64(actual), true
	case uint:
		return new(big.Int).SetUint64(uint64(actual)), true
	case float32:
		whole, _ := big.NewFloat(math.Trunc(float64(actual))).Int(nil)
		return whole, true
	case float64:
		if math.IsNaN(actual) || math.IsInf(actual, 0) {
			return big.NewInt(0), true
		}
		whole, _ := big.NewFloat(math.Trunc(actual)).Int(nil)
		return whole, true
	case *big.Int:
		return actual, true
	case *big.Float:
		whole, _ := new(big.Float).SetPrec(bigFloatPrec).Set(actual).Int(nil)
		return whole, true
	}
	if n, ok := toInt64(value); ok {
		return big.NewInt(n), true
	}
	return nil, false
}

// bigFloatFrom builds an exact *big.Float from a numeric or boolean value.
func bigFloatFrom(value interface{}) (*big.Float, bool) {
	result := new(big.Float).SetPrec(bigFloatPrec)
	switch actual := value.(type) {
	case uint64:
		return result.SetUint64(actual), true
	case uint:
		return result.SetUint64(uint64(actual)), true
	case float32:
		return result.SetFloat64(float64(actual)), true
	case float64:
		if math.IsNaN(actual) || math.IsInf(actual, 0) {
			return result, true
		}
		return result.SetFloat64(actual), true
	case *big.Int:
		return result.SetInt(actual), true
	case *big.Float:
		return result.Set(actual), true
	}
	if n, ok := toInt64(value); ok {
		return result.SetInt64(n), true
	}
	return nil, false
}

// isTruthy implements the boolean view of a numeric value. Floating inputs
// compare against zero without truncation, so 0.5 is true.
func isTruthy(value interface{}) (bool, bool) {
	switch actual := value.(type) {
	case bool:
		return actual, true
	case float32:
		return actual != 0, true
	case float64:
		return actual != 0, true
	case *big.Int:
		return actual.Sign() != 0, true
	case *big.Float:
		return actual.Sign() != 0, true
	}
	if n, ok := toInt64(value); ok {
		return n != 0, true
	}
	return false, false
}

// parseSignedText parses decimal text for a signed integer target. Blank
// input is zero; a fractional part truncates toward zero; values beyond
// [min, max] fail with the range in the error.
func parseSignedText(text string, target TypeKey, min, max int64) (int64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, nil
	}
	rangeText := fmt.Sprintf("%d to %d", min, max)
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &RangeError{Literal: trimmed, Target: target, Range: rangeText}
		}
		whole, ok := splitDecimal(trimmed)
		if !ok {
			return 0, &ParseError{Literal: trimmed, Target: target, Range: rangeText, Cause: err}
		}
		n, err = strconv.ParseInt(whole, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, &RangeError{Literal: trimmed, Target: target, Range: rangeText}
			}
			return 0, &ParseError{Literal: trimmed, Target: target, Range: rangeText, Cause: err}
		}
	}
	if n < min || n > max {
		return 0, &RangeError{Literal: trimmed, Target: target, Range: rangeText}
	}
	return n, nil
}

// parseUnsignedText parses decimal text for an unsigned integer target.
// Negative values that parse as numbers fail with a range error rather than
// a parse error.
func parseUnsignedText(text string, target TypeKey, max uint64) (uint64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, nil
	}
	rangeText := fmt.Sprintf("0 to %d", max)
	literal := trimmed
	if whole, ok := splitDecimal(trimmed); ok {
		trimmed = whole
	}
	if strings.HasPrefix(trimmed, "-") {
		if _, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return 0, &RangeError{Literal: literal, Target: target, Range: rangeText}
		}
		return 0, &ParseError{Literal: literal, Target: target, Range: rangeText}
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(trimmed, "+"), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &RangeError{Literal: literal, Target: target, Range: rangeText}
		}
		return 0, &ParseError{Literal: literal, Target: target, Range: rangeText, Cause: err}
	}
	if n > max {
		return 0, &RangeError{Literal: literal, Target: target, Range: rangeText}
	}
	return n, nil
}

// parseBigIntText parses decimal text of arbitrary magnitude, truncating
// any fractional part. Blank input is zero.
func parseBigIntText(text string, target TypeKey) (*big.Int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return big.NewInt(0), nil
	}
	if n, ok := new(big.Int).SetString(trimmed, 10); ok {
		return n, nil
	}
	if whole, ok := splitDecimal(trimmed); ok {
		if n, parsed := new(big.Int).SetString(whole, 10); parsed {
			return n, nil
		}
	}
	return nil, &ParseError{Literal: trimmed, Target: target}
}

// parseBigFloatText parses decimal or scientific text at the working
// precision. Blank input is zero.
func parseBigFloatText(text string, target TypeKey) (*big.Float, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return new(big.Float).SetPrec(bigFloatPrec), nil
	}
	f, _, err := big.ParseFloat(trimmed, 10, bigFloatPrec, big.ToNearestEven)
	if err != nil {
		return nil, &ParseError{Literal: trimmed, Target: target, Cause: err}
	}
	return f, nil
}

// splitDecimal strips a decimal fraction from text, returning the whole
// part when the remainder is a plain digit run. "1." and ".5" are accepted,
// exponent notation is not.
func splitDecimal(text string) (string, bool) {
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return "", false
	}
	whole, frac := text[:dot], text[dot+1:]
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return "", false
		}
	}
	switch whole {
	case "", "+":
		whole = "0"
	case "-":
		whole = "-0"
	}
	if len(frac) == 0 && (whole == "0" || whole == "-0") && len(text) <= 2 {
		return "", false
	}
	return whole, true
}
