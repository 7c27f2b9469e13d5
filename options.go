package slugy

// Option configures a single Slugify call.
type Option func(*options)

type options struct {
	table        Table
	replacements map[string]string
	separator    string
	stripChars   string
	maxLength    int
	lowercase    bool
	unidecode    bool
	stripHTML    bool
}

func defaultOptions() *options {
	return &options{
		table:     defaultTable,
		separator: "-",
		lowercase: true,
	}
}

// Separator sets the token placed between words. An empty separator
// joins words directly.
// Default: "-".
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// Lowercase controls case folding of the result.
// Default: true.
func Lowercase(enabled bool) Option {
	return func(o *options) {
		o.lowercase = enabled
	}
}

// MaxLength limits the slug length in runes, trimming any trailing
// separator left by the cut. Zero means unlimited.
// Default: 0 (unlimited).
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// StripChars removes the listed characters before any other processing.
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars = chars
	}
}

// CustomReplace applies string replacements before slugification.
// Useful for characters that should become words ("&" -> "and") rather
// than be dropped.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		o.replacements = replacements
	}
}

// WithTable applies a transliteration table for this call only,
// overriding the process-wide default set by SetDefaultTable.
func WithTable(t Table) Option {
	return func(o *options) {
		o.table = t
	}
}

// Unidecode romanizes characters the decomposition pass cannot reduce to
// ASCII (Cyrillic, CJK, ...). Off by default: such characters are
// dropped.
func Unidecode() Option {
	return func(o *options) {
		o.unidecode = true
	}
}

// StripHTML removes markup before slugification. Use when the source
// text comes from a rich-text field.
func StripHTML() Option {
	return func(o *options) {
		o.stripHTML = true
	}
}
