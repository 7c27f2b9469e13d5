package slugy

import (
	"fmt"
	"reflect"
	"strings"
)

// Record is a field-name-to-value view of a record, as produced by the
// host application's data-binding layer.
type Record map[string]any

// asRecord converts a prior record into its map view. Structs are
// reflected over their exported fields, with json tag names taking
// precedence; anything else yields an empty view.
func asRecord(prior any) Record {
	switch r := prior.(type) {
	case nil:
		return Record{}
	case Record:
		return r
	case ChangeSet:
		return Record(r)
	case map[string]any:
		return r
	}

	v := reflect.ValueOf(prior)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return Record{}
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return Record{}
	}

	t := v.Type()
	rec := make(Record, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		rec[name] = v.Field(i).Interface()
	}
	return rec
}

// asMap unwraps a nested value into its map form for path descent.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case ChangeSet:
		return m, true
	case Record:
		return m, true
	}
	return nil, false
}

// stringify converts a field value to its slug source form. Nil becomes
// the empty string; strings pass through; everything else falls back to
// its standard string representation.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}
