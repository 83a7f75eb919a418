package validation

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape replaces HTML-significant characters with their entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimAll trims every element and returns a new slice; nil stays empty.
func TrimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = Trim(s)
	}
	return out
}
