package slugy

import "reflect"

// Composer builds the slug source text from a merged view of a record:
// its prior fields overlaid with the pending changes.
type Composer func(record Record) string

var composers = map[reflect.Type]Composer{}

// RegisterComposer associates a composer with a record type, given a
// sample value of that type (a pointer sample registers its element
// type). When Assign runs for a record of that type with a Field or
// Fields source, the composer builds the source text instead of the
// watched fields themselves. Register during application setup, before
// any concurrent use; the registry is treated as read-only afterwards.
func RegisterComposer(recordType any, fn Composer) {
	t := composerKey(recordType)
	if t == nil || fn == nil {
		return
	}
	composers[t] = fn
}

func composerFor(prior any) Composer {
	t := composerKey(prior)
	if t == nil {
		return nil
	}
	return composers[t]
}

func composerKey(v any) reflect.Type {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
