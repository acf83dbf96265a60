package grader

import (
	"strings"

	"golang.org/x/text/language"
)

// Synonyms holds the boolean-ish tokens the true/false fallback tier
// recognizes. Authored content stores answer keys as option ids, option
// text, or tokens like "True"/"falso"; the sets below let the grader map
// the last kind onto a polarity. The set is configuration, not a constant:
// callers pick one per course language.
type Synonyms struct {
	True  []string
	False []string
}

var supportedSynonymLangs = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Spanish,
})

// DefaultSynonyms returns the synonym sets for a course language. Every
// set includes the English tokens; a recognized localized language adds
// its own. Unrecognized tags fall back to English only.
func DefaultSynonyms(tag language.Tag) Synonyms {
	s := Synonyms{
		True:  []string{"true", "yes", "t"},
		False: []string{"false", "no", "f"},
	}
	_, idx, _ := supportedSynonymLangs.Match(tag)
	if idx == 1 { // Spanish
		s.True = append(s.True, "verdadero", "sí", "si", "v")
		s.False = append(s.False, "falso")
	}
	return s
}

// IsTrue reports whether the normalized token is a recognized affirmative.
func (s Synonyms) IsTrue(token string) bool {
	return containsToken(s.True, token)
}

// IsFalse reports whether the normalized token is a recognized negative.
func (s Synonyms) IsFalse(token string) bool {
	return containsToken(s.False, token)
}

// matchesTrue reports whether option display text carries an affirmative
// token, either as the whole string or as one of its words.
func (s Synonyms) matchesTrue(text string) bool {
	return textMatches(s.True, text)
}

func (s Synonyms) matchesFalse(text string) bool {
	return textMatches(s.False, text)
}

func containsToken(set []string, token string) bool {
	for _, t := range set {
		if token == t {
			return true
		}
	}
	return false
}

func textMatches(set []string, text string) bool {
	if containsToken(set, text) {
		return true
	}
	for _, word := range strings.Fields(text) {
		if containsToken(set, word) {
			return true
		}
	}
	return false
}
