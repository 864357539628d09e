// Package conv converts dynamically typed values between a fixed set of
// endpoint types: booleans, every integer and float width, big numbers,
// text and byte forms, UUIDs, instants and the calendar types of the
// chrono subpackage, plus an ordered key-value form for map and struct
// shaped data.
//
// Conversions are edges in a registry keyed by (source, target) type key
// pairs. When no direct edge exists the resolver walks the source's
// declared ancestors, so one registration against a family key such as
// Number or Temporal covers every member. Custom edges and custom keys can
// be registered at runtime; the last registration wins.
//
// Numeric narrowing follows machine semantics: a numeric source wraps
// modulo the target width, while numeric text is range-checked and fails
// with ErrOutOfRange when it does not fit. Nil inputs convert to the
// target's zero for scalar targets and to nil for everything else.
package conv
