package slugy

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// decompose splits accented letters into base letter plus combining
	// marks and drops the marks (é -> e).
	decompose = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	// invalidChars matches everything that cannot contribute to a slug:
	// anything but ASCII letters, digits, whitespace, and hyphens.
	invalidChars = regexp.MustCompile(`[^a-zA-Z0-9\s-]+`)
	// whitespaceRun matches one or more consecutive whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// hyphenRun matches two or more consecutive hyphens.
	hyphenRun = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a string to a URL-safe slug: lowercase ASCII letters,
// digits, and single hyphens, with no hyphen at either edge. Accented
// letters are reduced to their base letter, whitespace runs become a
// single separator, and everything else is dropped. Empty or
// whitespace-only input yields an empty string. Slugify never fails and
// is idempotent on its own output.
func Slugify(s string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.stripHTML {
		s = stripMarkup(s)
	}
	for old, repl := range o.replacements {
		s = strings.ReplaceAll(s, old, repl)
	}
	if o.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(o.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}

	s = o.table.apply(s)
	if o.unidecode {
		s = unidecode.Unidecode(s)
	}
	s = strings.TrimSpace(s)
	s, _, _ = transform.String(decompose, s)

	s = invalidChars.ReplaceAllString(s, "")
	// Collapse hyphen runs carried over from the input before whitespace
	// becomes separators, so custom separators are not collapsed away.
	s = hyphenRun.ReplaceAllString(s, "-")
	s = whitespaceRun.ReplaceAllString(s, o.separator)
	if o.separator == "-" {
		s = hyphenRun.ReplaceAllString(s, "-")
	}

	if o.lowercase {
		s = strings.ToLower(s)
	}

	s = strings.Trim(s, "-")
	s = trimSeparator(s, o.separator)
	if o.maxLength > 0 {
		s = truncate(s, o.maxLength, o.separator)
	}
	return s
}

// IsValid reports whether s is already a well-formed slug: non-empty,
// lowercase ASCII letters, digits, and hyphens, with no doubled hyphen
// and no hyphen at either edge.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	return !strings.Contains(s, "--")
}

// trimSeparator removes custom separators from both edges. The default
// hyphen separator is already handled by the pipeline's edge trim.
func trimSeparator(s, sep string) string {
	if sep == "" || sep == "-" {
		return s
	}
	for strings.HasPrefix(s, sep) {
		s = strings.TrimPrefix(s, sep)
	}
	for strings.HasSuffix(s, sep) {
		s = strings.TrimSuffix(s, sep)
	}
	return s
}

// truncate cuts s to max runes and trims a trailing separator left by
// the cut, so limits never produce a dangling separator.
func truncate(s string, max int, sep string) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	s = string(r[:max])
	s = strings.TrimSuffix(s, "-")
	return trimSeparator(s, sep)
}
