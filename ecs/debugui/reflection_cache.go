package debugui

import (
	"reflect"
	"sync"

	"github.com/plus3/sparsecs/ecs"
)

// FieldInfo describes one editable field of a component struct. Type and
// Kind refer to the pointed-to type when IsPointer is set.
type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Kind      reflect.Kind
	Index     int
	IsPointer bool
}

// Composite reports whether the field is shown as a summary rather than an
// input widget.
func (f FieldInfo) Composite() bool {
	switch f.Kind {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

// ReflectionCache memoizes the inspectable fields of component types.
type ReflectionCache struct {
	fields sync.Map // reflect.Type -> []FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{}
}

// GetFields returns the exported fields of struct type t, skipping EntityID
// fields. Non-struct types have no fields.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	if cached, ok := rc.fields.Load(t); ok {
		return cached.([]FieldInfo)
	}
	actual, _ := rc.fields.LoadOrStore(t, inspectableFields(t))
	return actual.([]FieldInfo)
}

var entityIDType = reflect.TypeFor[ecs.EntityID]()

func inspectableFields(t reflect.Type) []FieldInfo {
	if t.Kind() != reflect.Struct {
		return nil
	}

	var fields []FieldInfo
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Type == entityIDType {
			continue
		}

		info := FieldInfo{Name: sf.Name, Type: sf.Type, Index: i}
		if sf.Type.Kind() == reflect.Pointer {
			info.IsPointer = true
			info.Type = sf.Type.Elem()
		}
		info.Kind = info.Type.Kind()
		fields = append(fields, info)
	}
	return fields
}

var globalReflectionCache = NewReflectionCache()
