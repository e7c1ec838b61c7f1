package main

import "strings"

// sanitizeIdentifier converts a fixture stem into a valid Go identifier.
//
// The substitutions form an ordered pipeline, not an independent set:
// UTF-8 must collapse to utf8 before the bare '-' rule would mangle it,
// U+ must collapse to a plain u before the bare '+' rule fires, and the
// underscore-collapsing step relies on the separators the earlier rules
// introduce. The function is idempotent; nothing it emits is rewritten by
// a second pass.
//
// Characters outside [A-Za-z0-9._+#-] pass through untouched. Real
// JSONTestSuite corpora never contain any, so no substitution is invented
// for them; an exotic fixture name can therefore still yield an invalid
// identifier.
func sanitizeIdentifier(s string) string {
	s = strings.ReplaceAll(s, "UTF-8", "utf8")
	s = strings.ReplaceAll(s, "U+", "u")
	s = strings.ReplaceAll(s, "+", "_plus_")
	s = strings.ReplaceAll(s, "-", "_minus_")
	s = strings.Map(func(r rune) rune {
		if r == '.' || r == '#' {
			return '_'
		}
		return r
	}, s)
	s = collapseUnderscores(s)
	return strings.ToLower(s)
}

func collapseUnderscores(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prev := false
	for _, r := range s {
		if r == '_' {
			if prev {
				continue
			}
			prev = true
		} else {
			prev = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
