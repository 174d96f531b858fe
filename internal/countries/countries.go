// Package countries maps country names from differently-sourced tables to
// ISO 3166-1 alpha-3 codes so they can be joined.
package countries

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold canonicalizes a country name for lookup: case-folded, diacritics
// stripped, punctuation dropped, whitespace collapsed. Fold("Côte d'Ivoire")
// and Fold("COTE DIVOIRE") both yield "cote d ivoire".
func Fold(name string) string {
	s, _, err := transform.String(stripMarks, name)
	if err != nil {
		s = name
	}
	s = cases.Fold().String(s)

	var b strings.Builder
	pendingSpace := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteRune(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		} else {
			pendingSpace = true
		}
	}
	return b.String()
}

// Resolver looks up ISO3 codes by folded country name. The built-in table
// covers official short names plus common variants; callers can extend it
// with their own aliases (later entries win on collision).
type Resolver struct {
	byName map[string]string
}

// NewResolver builds a Resolver from the built-in tables plus extra
// name -> code aliases (typically hand-authored in the config file).
func NewResolver(aliases map[string]string) *Resolver {
	byName := make(map[string]string, len(officialNames)+len(commonAliases)+len(aliases))
	for name, code := range officialNames {
		byName[Fold(name)] = code
	}
	for name, code := range commonAliases {
		byName[Fold(name)] = code
	}
	for name, code := range aliases {
		byName[Fold(name)] = strings.ToUpper(strings.TrimSpace(code))
	}
	return &Resolver{byName: byName}
}

// Resolve maps a country name to its ISO3 code. ok is false when the name
// has no known code; callers decide what an unresolved name means.
func (r *Resolver) Resolve(name string) (code string, ok bool) {
	code, ok = r.byName[Fold(name)]
	return code, ok
}
