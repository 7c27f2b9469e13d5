// Package slugy generates URL-safe slugs from arbitrary strings and
// keeps a record's slug in sync with its source fields as they change.
//
// A slug is a lowercase, hyphen-delimited ASCII token derived from text,
// typically used in URLs. Slugy normalizes diacritics, collapses
// whitespace, and drops everything that cannot appear in a slug.
//
// Basic usage:
//
//	s := slugy.Slugify("Hey ow lets go")
//	// Output: "hey-ow-lets-go"
//
//	s = slugy.Slugify("Café & Restaurant")
//	// Output: "cafe-restaurant"
//
// # Configuration Options
//
// Separator sets the token between words:
//
//	slugy.Slugify("Product Name", slugy.Separator("_"))
//	// Output: "product_name"
//
// MaxLength limits the slug length (rune-based):
//
//	slugy.Slugify("Very long title", slugy.MaxLength(15))
//	// Output: "very-long-title"
//
// CustomReplace applies string replacements before slugification:
//
//	slugy.Slugify("Fish & Chips", slugy.CustomReplace(map[string]string{"&": "and"}))
//	// Output: "fish-and-chips"
//
// StripChars, Lowercase, Unidecode, and StripHTML round out the option
// set; see each option's documentation.
//
// # Transliteration
//
// A transliteration table rewrites specific characters to ASCII digraphs
// before any other step. The shipped German table expands umlauts and
// sharp s:
//
//	slugy.SetDefaultTable(slugy.German)
//	slugy.Slugify("Straße, München")
//	// Output: "strasse-muenchen"
//
// Tables can also be applied per call with WithTable. Without a table,
// characters that canonical decomposition cannot reduce to ASCII are
// dropped.
//
// # Change-aware assignment
//
// Assign writes a slug into a changeset only when a watched field
// actually changed, so an untouched record keeps its stored slug:
//
//	changes := slugy.ChangeSet{"title": "A new Post"}
//	changes = slugy.Assign(changes, prior, slugy.Field("title"))
//	// changes["slug"] == "a-new-post"
//
// Fields composes several fields, using changed values where present
// and prior values otherwise:
//
//	// prior: {name: "Processo Penal", type: "video"}
//	changes := slugy.ChangeSet{"type": "image"}
//	changes = slugy.Assign(changes, prior, slugy.Fields("name", "type"))
//	// changes["slug"] == "processo-penal-image"
//
// Path descends into nested changes:
//
//	changes := slugy.ChangeSet{"data": map[string]any{"title": "A new post"}}
//	changes = slugy.Assign(changes, nil, slugy.Path("data", "title"))
//	// changes["slug"] == "a-new-post"
//
// When no watched field changed, Assign returns the changeset unchanged
// and never adds a slug key.
//
// # Custom composition
//
// A composer registered for a record type builds the slug source from
// the whole record instead of the watched fields:
//
//	slugy.RegisterComposer(Post{}, func(r slugy.Record) string {
//	    return fmt.Sprintf("%s %s", r["title"], r["type"])
//	})
//
// The composer receives the merged view of the record: prior fields
// overlaid with the pending changes.
package slugy
