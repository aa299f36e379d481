// Package sanitize escapes HTML-significant characters in untrusted data
// before it is sent to the backend or rendered to the user.
//
// Strings are escaped in a single left-to-right pass:
//
//	&  -> &amp;
//	<  -> &lt;
//	>  -> &gt;
//	"  -> &quot;
//	'  -> &#39;
//
// Sequences are sanitized element-wise and mappings value-wise (keys are kept
// as is). Every other value is returned unchanged.
package sanitize

import (
	"reflect"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// String escapes a single string. Strings without special characters are
// returned unchanged.
func String(s string) string {
	return htmlEscaper.Replace(s)
}

// Value sanitizes v recursively. It never fails and never modifies its input:
// containers are copied.
func Value(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return String(t)
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Value(e)
		}
		return out
	case map[string]any:
		if t == nil {
			return t
		}
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Value(e)
		}
		return out
	case []string:
		if t == nil {
			return t
		}
		out := make([]string, len(t))
		for i, e := range t {
			out[i] = String(e)
		}
		return out
	case map[string]string:
		if t == nil {
			return t
		}
		out := make(map[string]string, len(t))
		for k, e := range t {
			out[k] = String(e)
		}
		return out
	}

	return reflected(reflect.ValueOf(v))
}

// reflected handles named string types and containers with concrete element
// types ([]Goal-like slices of maps, map[string][]string, ...).
func reflected(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.String:
		return reflect.ValueOf(String(rv.String())).Convert(rv.Type()).Interface()

	case reflect.Slice:
		if rv.IsNil() {
			return rv.Interface()
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(element(rv.Index(i), rv.Type().Elem()))
		}
		return out.Interface()

	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(element(rv.Index(i), rv.Type().Elem()))
		}
		return out.Interface()

	case reflect.Map:
		if rv.IsNil() {
			return rv.Interface()
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), element(iter.Value(), rv.Type().Elem()))
		}
		return out.Interface()
	}

	return rv.Interface()
}

// element sanitizes one container element and brings the result back to the
// container's element type. Elements that cannot be converted back are kept.
func element(elem reflect.Value, typ reflect.Type) reflect.Value {
	if (elem.Kind() == reflect.Interface || elem.Kind() == reflect.Pointer) && elem.IsNil() {
		return elem
	}

	sv := reflect.ValueOf(Value(elem.Interface()))
	switch {
	case !sv.IsValid():
		return reflect.Zero(typ)
	case sv.Type().AssignableTo(typ):
		return sv
	case sv.Type().ConvertibleTo(typ):
		return sv.Convert(typ)
	}
	return elem
}
