package grader

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultSynonyms_EnglishBase(t *testing.T) {
	s := DefaultSynonyms(language.English)

	if !s.IsTrue("true") || !s.IsTrue("yes") || !s.IsTrue("t") {
		t.Error("English affirmative tokens missing")
	}
	if !s.IsFalse("false") || !s.IsFalse("no") {
		t.Error("English negative tokens missing")
	}
	if s.IsTrue("verdadero") {
		t.Error("English set should not carry Spanish tokens")
	}
}

func TestDefaultSynonyms_SpanishAddsLocalizedTokens(t *testing.T) {
	s := DefaultSynonyms(language.Spanish)

	if !s.IsTrue("verdadero") || !s.IsTrue("sí") {
		t.Error("Spanish affirmative tokens missing")
	}
	if !s.IsFalse("falso") {
		t.Error("Spanish negative tokens missing")
	}
	// English tokens remain available.
	if !s.IsTrue("true") || !s.IsFalse("false") {
		t.Error("English base tokens must always be present")
	}
}

func TestDefaultSynonyms_UnknownTagFallsBackToEnglish(t *testing.T) {
	s := DefaultSynonyms(language.Japanese)

	if !s.IsTrue("true") {
		t.Error("fallback set should carry English tokens")
	}
	if s.IsTrue("verdadero") {
		t.Error("fallback set should not carry Spanish tokens")
	}
}

func TestTextMatching(t *testing.T) {
	s := DefaultSynonyms(language.Spanish)

	if !s.matchesTrue("sí, es verdadero") {
		t.Error("word-level match should find affirmative token")
	}
	if s.matchesFalse("nothing here") {
		t.Error("\"no\" inside another word must not match")
	}
}
