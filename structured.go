package conv

import (
	"fmt"

	"github.com/francoispqt/gojay"
	"github.com/sadashiva108/conv/visitor"
)

// Object is an ordered mapping of string keys to dynamically typed
// values: the generic key-value representation that can stand in for any
// target type by naming its fields. Maps and structs normalize to it.
type Object struct {
	keys   []string
	values map[string]interface{}
}

// NewObject returns an empty structured value.
func NewObject() *Object {
	return &Object{values: map[string]interface{}{}}
}

// ObjectOf builds a structured value from alternating key/value pairs,
// a convenience for literals: ObjectOf("month", 6, "day", 30).
func ObjectOf(pairs ...interface{}) *Object {
	if len(pairs)%2 != 0 {
		panic("ObjectOf requires an even number of arguments")
	}
	result := NewObject()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", pairs[i])
		}
		result.Put(key, pairs[i+1])
	}
	return result
}

// FromMap materializes any map value into a structured value; non-string
// keys are rendered to strings, entries are ordered by key.
func FromMap(value interface{}) (*Object, error) {
	visit, err := visitor.StringKeyMapVisitorOf(value)
	if err != nil {
		return nil, err
	}
	return fromVisitor(visit)
}

// FromStruct materializes a struct value (or pointer to one) into a
// structured value; exported fields in declared order, lower-camel keys.
func FromStruct(value interface{}) (*Object, error) {
	visit, err := visitor.StructVisitorOf(value)
	if err != nil {
		return nil, err
	}
	return fromVisitor(visit)
}

func fromVisitor(visit visitor.Visitor[string, interface{}]) (*Object, error) {
	result := NewObject()
	err := visit(func(key string, element interface{}) (bool, error) {
		result.Put(key, element)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Put sets key to value, appending the key on first use and preserving its
// position on overwrite. Returns the receiver for chaining.
func (s *Object) Put(key string, value interface{}) *Object {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
	return s
}

// Get returns the value stored under key.
func (s *Object) Get(key string) (interface{}, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Has reports whether every named key is present.
func (s *Object) Has(keys ...string) bool {
	for _, key := range keys {
		if _, ok := s.values[key]; !ok {
			return false
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (s *Object) Keys() []string {
	return s.keys
}

// Len returns the number of entries.
func (s *Object) Len() int {
	return len(s.keys)
}

// MarshalJSONObject encodes the entries in insertion order.
func (s *Object) MarshalJSONObject(enc *gojay.Encoder) {
	for _, key := range s.keys {
		enc.AddInterfaceKey(key, s.values[key])
	}
}

// IsNil implements gojay's marshaler contract.
func (s *Object) IsNil() bool {
	return s == nil
}

// UnmarshalJSONObject decodes one JSON object member, preserving document
// order.
func (s *Object) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	if s.values == nil {
		s.values = map[string]interface{}{}
	}
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	s.Put(key, value)
	return nil
}

// NKeys accepts all keys.
func (s *Object) NKeys() int {
	return 0
}

// FromJSON decodes a JSON object into a structured value, preserving key
// order.
func FromJSON(data []byte) (*Object, error) {
	result := NewObject()
	if err := gojay.UnmarshalJSONObject(data, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ToJSON encodes the structured value as a JSON object.
func (s *Object) ToJSON() ([]byte, error) {
	return gojay.MarshalJSONObject(s)
}
