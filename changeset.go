package slugy

import (
	"maps"
	"reflect"
)

// ChangeSet holds proposed field updates relative to a record's
// last-persisted state. Keys are the names of fields that changed;
// absence of a key means "no change". Assign only reads the keys it is
// told to watch and only ever adds the "slug" key.
type ChangeSet map[string]any

// slug destination key written by Assign.
const slugKey = "slug"

// Changes builds a ChangeSet from a record's current values and a set of
// proposed updates, keeping only the keys whose proposed value actually
// differs from the prior one. Hosts with an ORM-style change tracker can
// skip this and hand Assign their own changeset.
func Changes(prior Record, proposed map[string]any) ChangeSet {
	changes := make(ChangeSet, len(proposed))
	for k, v := range proposed {
		if current, ok := prior[k]; ok && reflect.DeepEqual(current, v) {
			continue
		}
		changes[k] = v
	}
	return changes
}

// Assign recomputes a changeset's slug entry when the fields watched by
// src changed. It returns the input changeset untouched when nothing
// relevant changed, and otherwise a copy with exactly one added "slug"
// key; it never fails. prior is the record's last-persisted state: a
// Record, a plain map, or any struct (exported fields, json tag names
// taking precedence). A composer registered for the prior record's type
// overrides how the source text is built for Field and Fields sources.
// Options are passed through to Slugify.
func Assign(changes ChangeSet, prior any, src Source, opts ...Option) ChangeSet {
	rec := asRecord(prior)
	source, ok := src.resolve(changes, rec)
	if !ok {
		return changes
	}
	if src.composable() {
		if compose := composerFor(prior); compose != nil {
			source = compose(merged(rec, changes))
		}
	}

	out := make(ChangeSet, len(changes)+1)
	maps.Copy(out, changes)
	out[slugKey] = Slugify(source, opts...)
	return out
}

// merged overlays the pending changes on the prior record view.
func merged(prior Record, changes ChangeSet) Record {
	m := make(Record, len(prior)+len(changes))
	maps.Copy(m, prior)
	maps.Copy(m, changes)
	return m
}
