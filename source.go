package slugy

import "strings"

// Source decides whether a watched field changed and, when it did,
// builds the raw text to slugify. Implementations are returned by
// Field, Fields, and Path; they are tried against the changeset only —
// a source that does not trigger leaves the changeset untouched.
type Source interface {
	resolve(changes ChangeSet, prior Record) (string, bool)
	// composable reports whether a registered composer may override the
	// resolved text.
	composable() bool
}

// Field watches a single field: the slug is recomputed when the field
// is present in the changeset with a non-nil value.
func Field(name string) Source { return fieldSource(name) }

type fieldSource string

func (f fieldSource) resolve(changes ChangeSet, _ Record) (string, bool) {
	v, ok := changes[string(f)]
	if !ok || v == nil {
		return "", false
	}
	return stringify(v), true
}

func (f fieldSource) composable() bool { return true }

// Fields watches an ordered list of fields composed into a single
// source string. Any listed field appearing in the changeset triggers
// recomputation; each field then resolves to its changed value when
// present and its prior value otherwise, with missing or nil values
// contributing an empty term. Terms are joined with spaces.
func Fields(names ...string) Source { return listSource(names) }

type listSource []string

func (l listSource) resolve(changes ChangeSet, prior Record) (string, bool) {
	triggered := false
	for _, name := range l {
		if _, ok := changes[name]; ok {
			triggered = true
			break
		}
	}
	if !triggered {
		return "", false
	}

	var sb strings.Builder
	for _, name := range l {
		v, ok := changes[name]
		if !ok {
			v = prior[name]
		}
		sb.WriteString(stringify(v))
		sb.WriteString(" ")
	}
	return sb.String(), true
}

func (l listSource) composable() bool { return true }

// Path watches a nested value inside the changeset itself, descending
// through nested maps key by key. Resolution failing at any step
// (missing key, non-map intermediate, nil leaf) leaves the changeset
// untouched; prior values are not consulted.
func Path(keys ...string) Source { return pathSource(keys) }

type pathSource []string

func (p pathSource) resolve(changes ChangeSet, _ Record) (string, bool) {
	if len(p) == 0 {
		return "", false
	}
	var v any = changes
	for _, key := range p {
		m, ok := asMap(v)
		if !ok {
			return "", false
		}
		if v, ok = m[key]; !ok {
			return "", false
		}
	}
	if v == nil {
		return "", false
	}
	return stringify(v), true
}

func (p pathSource) composable() bool { return false }
