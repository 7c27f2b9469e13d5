package slugy

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	policyOnce   sync.Once
)

// stripMarkup strips all HTML, returning plain text. The policy escapes
// entities in the text it keeps, so the result is unescaped afterwards:
// "&" in a title must not slug as "amp".
func stripMarkup(s string) string {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
