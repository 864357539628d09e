package conv

import (
	"fmt"
	"reflect"
)

// Converter turns dynamic values into requested target types using the
// edges of its registry. It is cheap to construct and safe for concurrent
// use.
type Converter struct {
	registry *Registry
	options  Options
}

// New returns a converter backed by the process-wide registry.
func New(options Options) *Converter {
	return NewWith(Default(), options)
}

// NewWith returns a converter backed by the supplied registry.
func NewWith(registry *Registry, options Options) *Converter {
	return &Converter{registry: registry, options: options}
}

// Registry exposes the backing registry for custom registrations.
func (c *Converter) Registry() *Registry {
	return c.registry
}

// RegisterConversion adds a custom edge to the backing registry.
func (c *Converter) RegisterConversion(source, target TypeKey, fn ConversionFunc) {
	c.registry.Register(source, target, fn)
}

// Convert converts value to the target key using the converter's options.
//
// Nil inputs short-circuit before any edge runs: numeric, boolean and rune
// targets produce their typed zero, every other target produces nil. When
// the normalized source key equals the target the value passes through
// without copying.
func (c *Converter) Convert(value interface{}, target TypeKey) (interface{}, error) {
	return c.ConvertWith(value, target, c.options)
}

// ConvertWith is Convert with per-call options.
func (c *Converter) ConvertWith(value interface{}, target TypeKey, options Options) (interface{}, error) {
	if isNilValue(value) {
		if zero, ok := scalarZero[target]; ok {
			return zero, nil
		}
		return nil, nil
	}
	source, adapted, err := c.registry.normalizeValue(value)
	if err != nil {
		return nil, err
	}
	if source == target {
		return adapted, nil
	}
	fn, ok := c.registry.resolve(source, target)
	if !ok {
		return nil, &UnsupportedError{Source: source, Target: target, Value: describe(adapted)}
	}
	return fn(adapted, c, options)
}

// To converts value and asserts the result to T. A nil result for a
// non-scalar target yields T's zero value.
func To[T any](c *Converter, value interface{}) (T, error) {
	var zero T
	result, err := c.Convert(value, KeyOf[T]())
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("conversion produced %T, want %T", result, zero)
	}
	return typed, nil
}

func isNilValue(value interface{}) bool {
	if value == nil {
		return true
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
