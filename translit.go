package slugy

import "strings"

// Table is a transliteration table: substrings mapped to their ASCII
// replacements, applied before any other slugification step in a single
// left-to-right, non-overlapping scan.
type Table map[string]string

// German expands umlauts and sharp s the way German orthography does
// when diacritics are unavailable.
var German = Table{
	"ä": "ae", "ö": "oe", "ü": "ue",
	"Ä": "AE", "Ö": "OE", "Ü": "UE",
	"ß": "ss",
}

var defaultTable Table

// SetDefaultTable installs the process-wide transliteration table used
// by Slugify when no WithTable option is given. Call it during
// application setup, before any concurrent use; the table is treated as
// read-only afterwards. A nil table disables transliteration (the
// default).
func SetDefaultTable(t Table) {
	defaultTable = t
}

func (t Table) apply(s string) string {
	if len(t) == 0 {
		return s
	}
	pairs := make([]string, 0, len(t)*2)
	for from, to := range t {
		pairs = append(pairs, from, to)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
