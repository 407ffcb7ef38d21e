package textnorm

import (
	"iter"
	"strings"
	"unicode"
)

// StopWords is an immutable set of words excluded from frequency analysis.
// Build it once with NewStopWords and share it.
type StopWords struct {
	set map[string]struct{}
}

func NewStopWords(words []string) StopWords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return StopWords{set: set}
}

func (s StopWords) Contains(w string) bool {
	_, ok := s.set[w]
	return ok
}

func (s StopWords) Len() int { return len(s.set) }

// Join builds the analysis text: all segment texts separated by one space.
func Join(texts []string) string {
	return strings.Join(texts, " ")
}

// Prepare lower-cases the text before tokenization.
func Prepare(text string) string {
	return strings.ToLower(text)
}

// IsAlnum reports whether s is non-empty and every rune is a letter or a number.
func IsAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// Filter yields the tokens that are alphanumeric and not stop words.
// The sequence can be ranged over any number of times.
func Filter(tokens []string, stop StopWords) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, tok := range tokens {
			if !IsAlnum(tok) || stop.Contains(tok) {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

func Collect(seq iter.Seq[string]) []string {
	var out []string
	for tok := range seq {
		out = append(out, tok)
	}
	return out
}
