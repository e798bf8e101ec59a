// Package naming converts user supplied names into the identifiers used in
// generated code: slugs for package names, camel case for angular modules and
// class case for TypeScript types.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultAppSuffix is appended to the angular module name unless overridden.
const DefaultAppSuffix = "App"

// toLower builds a Caser per call; Casers are stateful.
func toLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// foldAccents strips combining marks: "Crème" -> "Creme".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Words splits s on non-alphanumeric runes and lower-to-upper case changes.
func Words(s string) []string {
	var out []string
	var cur []rune
	prevLower := false
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			prevLower = false
			continue
		}
		if unicode.IsUpper(r) && prevLower {
			flush()
		}
		cur = append(cur, r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	flush()
	return out
}

func upperFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

// Humanize turns an identifier into a sentence: "myCool_app" -> "My cool app".
func Humanize(s string) string {
	w := Words(s)
	for i := range w {
		w[i] = toLower(w[i])
	}
	return upperFirst(strings.Join(w, " "))
}

// Slugify lowercases s, strips accents and joins its words with dashes.
func Slugify(s string) string {
	w := Words(foldAccents(s))
	for i := range w {
		w[i] = toLower(w[i])
	}
	return strings.Join(w, "-")
}

// Camelize joins the words of s, capitalizing all but the first.
func Camelize(s string) string {
	w := Words(s)
	for i := 1; i < len(w); i++ {
		w[i] = upperFirst(w[i])
	}
	return strings.Join(w, "")
}

// Classify joins the words of s, capitalizing each: "my-app" -> "MyApp".
func Classify(s string) string {
	w := Words(s)
	for i := range w {
		w[i] = upperFirst(w[i])
	}
	return strings.Join(w, "")
}

// AppName normalizes a directory or argument into the camel-cased app name.
func AppName(name string) string {
	return Camelize(Slugify(Humanize(name)))
}

// ScriptAppName returns the angular module name: the app name plus suffix.
func ScriptAppName(name, suffix string) string {
	return AppName(name) + suffix
}

// TrimSuffixFold removes a case-insensitive suffix from name unless name is
// nothing but the suffix: "userService" -> "user", "Service" -> "Service".
func TrimSuffixFold(name, suffix string) string {
	ln, ls := toLower(name), toLower(suffix)
	if ln == ls || !strings.HasSuffix(ln, ls) || len(ln) != len(name) {
		return name
	}
	return name[:len(name)-len(suffix)]
}
