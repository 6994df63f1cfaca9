package logging

import (
	"fmt"
	"reflect"
	"time"
)

const circularMarker = "[Circular]"

// Sanitize deep-copies an arbitrary payload for log serialization, replacing
// any pointer, map or slice reached a second time with the "[Circular]"
// marker so cyclic request/response graphs cannot break the JSON encoder.
func Sanitize(v interface{}) interface{} {
	return sanitizeValue(reflect.ValueOf(v), map[uintptr]bool{})
}

func sanitizeValue(v reflect.Value, seen map[uintptr]bool) interface{} {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return sanitizeValue(v.Elem(), seen)

	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		if seen[v.Pointer()] {
			return circularMarker
		}
		seen[v.Pointer()] = true
		return sanitizeValue(v.Elem(), seen)

	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		if seen[v.Pointer()] {
			return circularMarker
		}
		seen[v.Pointer()] = true

		out := make(map[string]interface{}, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = sanitizeValue(iter.Value(), seen)
		}
		return out

	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		if seen[v.Pointer()] {
			return circularMarker
		}
		seen[v.Pointer()] = true
		return sanitizeSequence(v, seen)

	case reflect.Array:
		return sanitizeSequence(v, seen)

	case reflect.Struct:
		if t, ok := v.Interface().(time.Time); ok {
			return t
		}

		out := make(map[string]interface{}, v.NumField())
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			if field.PkgPath != "" { // unexported
				continue
			}
			out[field.Name] = sanitizeValue(v.Field(i), seen)
		}
		return out

	default:
		if v.CanInterface() {
			return v.Interface()
		}
		return nil
	}
}

func sanitizeSequence(v reflect.Value, seen map[uintptr]bool) []interface{} {
	out := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = sanitizeValue(v.Index(i), seen)
	}
	return out
}
