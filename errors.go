package conv

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is(). These allow quick category
// checks without type assertions.
var (
	// ErrUnsupported indicates no direct or ancestor-resolvable edge exists
	// for a source/target pair.
	ErrUnsupported = errors.New("unsupported conversion")

	// ErrNotParseable indicates textual input does not match the grammar
	// required by the target type.
	ErrNotParseable = errors.New("not parseable")

	// ErrOutOfRange indicates syntactically valid textual numeric input
	// whose magnitude exceeds the target's representable range.
	ErrOutOfRange = errors.New("out of range")

	// ErrMissingKeys indicates a structured value lacks every accepted key
	// set for the requested target.
	ErrMissingKeys = errors.New("missing required keys")
)

// UnsupportedError reports a pair with no registered or resolvable edge.
type UnsupportedError struct {
	Source TypeKey
	Target TypeKey
	// Value is a short description of the offending value, when informative.
	Value string
}

// Error returns a human-readable message naming both types.
func (e *UnsupportedError) Error() string {
	source := e.Source.String()
	if e.Value != "" {
		source = fmt.Sprintf("%s (%s)", source, e.Value)
	}
	return fmt.Sprintf("unsupported conversion, source type [%s] target type '%s'", source, e.Target)
}

// Is matches the ErrUnsupported sentinel.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// ParseError reports textual input rejected by the target's grammar.
type ParseError struct {
	Literal string
	Target  TypeKey
	// Range holds the valid inclusive range for numeric targets, e.g.
	// "-128 to 127".
	Range string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a message naming the literal and, for numeric targets, the
// valid range.
func (e *ParseError) Error() string {
	if e.Range != "" {
		return fmt.Sprintf("value '%s' not parseable as %s value or outside %s", e.Literal, e.Target, e.Range)
	}
	if e.Cause != nil {
		return fmt.Sprintf("value '%s' not parseable as %s: %s", e.Literal, e.Target, e.Cause)
	}
	return fmt.Sprintf("value '%s' not parseable as %s", e.Literal, e.Target)
}

// Is matches the ErrNotParseable sentinel.
func (e *ParseError) Is(target error) bool {
	return target == ErrNotParseable
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// RangeError reports syntactically valid numeric text outside the target's
// range. Already-numeric sources never produce it; they wrap instead.
type RangeError struct {
	Literal string
	Target  TypeKey
	// Range is the valid inclusive range, e.g. "-128 to 127".
	Range string
}

// Error returns a message naming the literal and the valid range.
func (e *RangeError) Error() string {
	return fmt.Sprintf("value '%s' not parseable as %s value or outside %s", e.Literal, e.Target, e.Range)
}

// Is matches both ErrOutOfRange and ErrNotParseable: out-of-range text is a
// stricter failure of the same parse step.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange || target == ErrNotParseable
}

// MissingKeysError reports a structured source without any accepted key set
// for the target.
type MissingKeysError struct {
	Target   TypeKey
	Accepted [][]string
}

// Error enumerates the accepted key sets.
func (e *MissingKeysError) Error() string {
	sets := make([]string, 0, len(e.Accepted))
	for _, keys := range e.Accepted {
		sets = append(sets, "["+strings.Join(keys, ", ")+"]")
	}
	var enumerated string
	switch len(sets) {
	case 0:
		enumerated = "[]"
	case 1:
		enumerated = sets[0]
	default:
		enumerated = strings.Join(sets[:len(sets)-1], ", ") + ", or " + sets[len(sets)-1]
	}
	return fmt.Sprintf("structured value to %s must include one of the following key sets: %s", e.Target, enumerated)
}

// Is matches the ErrMissingKeys sentinel.
func (e *MissingKeysError) Is(target error) bool {
	return target == ErrMissingKeys
}
