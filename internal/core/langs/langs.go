// Package langs is the registry of languages the detector accepts.
//
// Declared languages are matched case-sensitively against the registry names;
// the BCP-47 tags exist for logging and for downstream models that want a
// canonical code rather than a display name
package langs

import (
	"sort"

	"golang.org/x/text/language"
)

// registry maps the accepted display names to canonical BCP-47 tags
var registry = map[string]language.Tag{
	"Tamil":     language.Tamil,
	"English":   language.English,
	"Hindi":     language.Hindi,
	"Malayalam": language.Malayalam,
	"Telugu":    language.Telugu,
}

// Supported reports whether name is an accepted language (exact match)
func Supported(name string) bool {
	_, ok := registry[name]
	return ok
}

// Tag returns the BCP-47 tag for name and whether name is accepted
func Tag(name string) (language.Tag, bool) {
	t, ok := registry[name]
	return t, ok
}

// Names returns the accepted language names, sorted
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
