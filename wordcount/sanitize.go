package wordcount

import (
	"strings"
	"unicode"
)

// DefaultPunctuation — символы, которые вырезаются из слова по умолчанию.
const DefaultPunctuation = ",.!?"

// Sanitizer приводит слово к ключу словаря.
type Sanitizer struct {
	Punctuation string
	Lowercase   bool
}

// DefaultSanitizer удаляет ",.!?" и переводит слово в нижний регистр.
var DefaultSanitizer = Sanitizer{Punctuation: DefaultPunctuation, Lowercase: true}

func (s Sanitizer) Sanitize(word string) string {
	if s.Punctuation != "" {
		word = strings.Map(func(r rune) rune {
			if strings.ContainsRune(s.Punctuation, r) {
				return -1
			}
			return r
		}, word)
	}
	if s.Lowercase {
		word = strings.ToLower(word)
	}
	return word
}

// Sanitize is DefaultSanitizer.Sanitize.
func Sanitize(word string) string {
	return DefaultSanitizer.Sanitize(word)
}

// FirstToken returns the first whitespace-delimited token of line.
// ok is false for blank lines.
func FirstToken(line string) (token string, ok bool) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if line == "" {
		return "", false
	}
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		return line[:i], true
	}
	return line, true
}
