package visitor

import (
	"fmt"
	"reflect"
	"sort"
)

// StringKeyMapVisitorOf builds a Visitor over any map value. Keys are
// rendered to strings (non-string keys via fmt) and visited in sorted order
// so repeated visits of the same map agree.
func StringKeyMapVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return sortedMapVisitor(actual, func(k string) string { return k }), nil
	case map[string]string:
		return sortedMapVisitor(actual, func(k string) string { return k }), nil
	case map[string]int:
		return sortedMapVisitor(actual, func(k string) string { return k }), nil
	case map[string]bool:
		return sortedMapVisitor(actual, func(k string) string { return k }), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &reflectMapVisitor{data: val}
	return visitor.Visit, nil
}

// sortedMapVisitor visits a typed map in sorted key order.
func sortedMapVisitor[K comparable, E any](aMap map[K]E, keyName func(K) string) Visitor[string, interface{}] {
	return func(f func(key string, element interface{}) (bool, error)) error {
		keys := make([]K, 0, len(aMap))
		for k := range aMap {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keyName(keys[i]) < keyName(keys[j]) })
		for _, k := range keys {
			continueVisit, err := f(keyName(k), aMap[k])
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// reflectMapVisitor visits an arbitrary map via reflection.
type reflectMapVisitor struct {
	data reflect.Value
}

// Visit renders each key with fmt and calls f in sorted key order.
func (v *reflectMapVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	type entry struct {
		name string
		key  reflect.Value
	}
	entries := make([]entry, 0, v.data.Len())
	for _, key := range v.data.MapKeys() {
		name := fmt.Sprintf("%v", key.Interface())
		entries = append(entries, entry{name: name, key: key})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	for _, e := range entries {
		continueVisit, err := f(e.name, v.data.MapIndex(e.key).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
