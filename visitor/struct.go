package visitor

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

var planCache = NewSyncMap[reflect.Type, []structEntry]()

type structEntry struct {
	name   string
	xField *xunsafe.Field
}

// StructVisitor visits the exported fields of a struct value in declared
// order, presenting field names in lower-camel form (a json tag name, when
// present, wins).
type StructVisitor struct {
	ptr  unsafe.Pointer
	plan []structEntry
}

// StructVisitorOf creates a StructVisitor from a struct value or a pointer
// to one.
func StructVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	valueType := reflect.TypeOf(value)
	var structType reflect.Type
	isPtr := false
	switch valueType.Kind() {
	case reflect.Ptr:
		isPtr = true
		structType = valueType.Elem()
		if structType.Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
	case reflect.Struct:
		structType = valueType
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	if !isPtr {
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	plan := planCache.GetOrCompute(structType, buildPlan)
	visitor := &StructVisitor{ptr: xunsafe.AsPointer(value), plan: plan}
	return visitor.Visit, nil
}

// Visit iterates over the planned fields, calling f with each key and value.
func (w *StructVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	for _, entry := range w.plan {
		continueVisit, err := f(entry.name, entry.xField.Value(w.ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

func buildPlan(structType reflect.Type) []structEntry {
	plan := make([]structEntry, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		name := fieldKey(field)
		if name == "" {
			continue
		}
		plan = append(plan, structEntry{name: name, xField: xunsafe.NewField(field)})
	}
	return plan
}

// fieldKey derives the visit key for a field; a json tag name wins, "-"
// excludes the field, otherwise the field name is formatted to lower camel.
func fieldKey(field reflect.StructField) string {
	if tag := field.Tag.Get("json"); tag != "" {
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	src := text.DetectCaseFormat(field.Name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(field.Name, text.CaseFormatLowerCamel)
}
