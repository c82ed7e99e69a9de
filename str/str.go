// Package str provides string-case conversion and formatting helpers,
// inspired by Laravel's Str facade.
//
// Case conversion understands snake, kebab, space, and camel boundaries,
// including acronym runs ("HTMLParser" splits into "HTML" and "Parser"):
//
//	str.ToSnakeCase("userProfileURL") // → "user_profile_url"
//	str.ToPascalCase("user_name")     // → "UserName"
//	str.Slugify("Hello, World!")      // → "hello-world"
//
// [Random] draws from the process-wide cryptographic randomness source.
package str

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ─────────────────────────────────────────────────────────────────────────────
// Case conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToTitleCase converts s to title case, capitalising the first letter of
// each word and lowering the rest.
//
//	ToTitleCase("a nice title") // → "A Nice Title"
func ToTitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// ToSnakeCase converts s to snake_case.
//
//	ToSnakeCase("userProfileURL") // → "user_profile_url"
func ToSnakeCase(s string) string {
	return joinLower(splitWords(s), "_")
}

// ToKebabCase converts s to kebab-case.
//
//	ToKebabCase("UserName") // → "user-name"
func ToKebabCase(s string) string {
	return joinLower(splitWords(s), "-")
}

// ToPascalCase converts s to PascalCase.
//
//	ToPascalCase("user_name") // → "UserName"
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(upperFirst(strings.ToLower(w)))
	}
	return b.String()
}

// ToCamelCase converts s to camelCase.
//
//	ToCamelCase("user_name") // → "userName"
func ToCamelCase(s string) string {
	return lowerFirst(ToPascalCase(s))
}

// ToReadableLabel converts an identifier-style string into a human-readable
// label with each word capitalised.
//
//	ToReadableLabel("email_address") // → "Email Address"
//	ToReadableLabel("createdAt")     // → "Created At"
func ToReadableLabel(s string) string {
	return ToTitleCase(joinLower(splitWords(s), " "))
}

// Slugify converts s into a URL-friendly slug: lower-cased, with every run
// of non-alphanumeric characters collapsed into a single separator
// (default "-") and separators trimmed from both ends.
//
//	Slugify("Hello, World!") // → "hello-world"
func Slugify(s string, sep ...string) string {
	separator := "-"
	if len(sep) > 0 {
		separator = sep[0]
	}
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteString(separator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting & searching
// ─────────────────────────────────────────────────────────────────────────────

// Truncate shortens s to at most length runes, appending ellipsis (default
// "...") when anything was cut. Strings within the limit are returned
// unchanged.
//
//	Truncate("The quick brown fox", 9) // → "The quick..."
func Truncate(s string, length int, ellipsis ...string) string {
	end := "..."
	if len(ellipsis) > 0 {
		end = ellipsis[0]
	}
	runes := []rune(s)
	if length < 0 {
		length = 0
	}
	if len(runes) <= length {
		return s
	}
	return strings.TrimRight(string(runes[:length]), " ") + end
}

// Contains reports whether haystack contains any of the given needles.
// Empty needles never match.
func Contains(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Word splitting
// ─────────────────────────────────────────────────────────────────────────────

// splitWords breaks s into words on non-alphanumeric delimiters and camel
// boundaries. An upper→lower transition after an acronym run starts a new
// word, so "HTMLParser" yields ["HTML", "Parser"].
func splitWords(s string) []string {
	runes := []rune(s)
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := runes[i-1]
			if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
				flush()
			} else if unicode.IsLower(r) && unicode.IsUpper(prev) && len(cur) > 1 {
				last := cur[len(cur)-1]
				cur = cur[:len(cur)-1]
				flush()
				cur = []rune{last}
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

func joinLower(words []string, sep string) string {
	return strings.ToLower(strings.Join(words, sep))
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
