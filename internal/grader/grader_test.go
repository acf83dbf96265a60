package grader

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/abhisek/lingo/internal/curriculum"
)

var esSynonyms = DefaultSynonyms(language.Spanish)

func mcChallenge() curriculum.Challenge {
	return curriculum.Challenge{
		ID:   "mc",
		Type: curriculum.TypeMultipleChoice,
		Options: []curriculum.Option{
			{ID: "opt-hola", Text: "hola"},
			{ID: "opt-adios", Text: "adiós"},
		},
		CorrectAnswer: "opt-hola",
	}
}

func tfChallenge(answer string) curriculum.Challenge {
	return curriculum.SynthesizeTrueFalseOptions(curriculum.Challenge{
		ID:            "tf",
		Type:          curriculum.TypeTrueFalse,
		CorrectAnswer: answer,
	})
}

func TestMultipleChoice_MatchByOptionID(t *testing.T) {
	if !IsCorrect(mcChallenge(), Submission{OptionID: "opt-hola"}, esSynonyms) {
		t.Error("matching option id should be correct")
	}
	if IsCorrect(mcChallenge(), Submission{OptionID: "opt-adios"}, esSynonyms) {
		t.Error("wrong option should be incorrect")
	}
}

func TestMultipleChoice_MatchByOptionText(t *testing.T) {
	// Answer key stored as display text instead of option id.
	c := mcChallenge()
	c.CorrectAnswer = "Hola"

	if !IsCorrect(c, Submission{OptionID: "opt-hola"}, esSynonyms) {
		t.Error("selected option text matching the key should be correct")
	}
	if IsCorrect(c, Submission{OptionID: "opt-adios"}, esSynonyms) {
		t.Error("non-matching option should be incorrect")
	}
}

func TestMultipleChoice_NormalizesIDAndKey(t *testing.T) {
	c := mcChallenge()
	if !IsCorrect(c, Submission{OptionID: "  OPT-HOLA "}, esSynonyms) {
		t.Error("option id comparison should trim and case-fold")
	}
}

func TestTrueFalse_EnglishNegativeKey(t *testing.T) {
	c := tfChallenge("False")

	if !IsCorrect(c, Submission{OptionID: curriculum.FalseSlot}, esSynonyms) {
		t.Error("false slot should be correct when key is \"False\"")
	}
	if IsCorrect(c, Submission{OptionID: curriculum.TrueSlot}, esSynonyms) {
		t.Error("true slot should be incorrect when key is \"False\"")
	}
}

func TestTrueFalse_LocalizedNegativeKey(t *testing.T) {
	c := tfChallenge("falso")

	if !IsCorrect(c, Submission{OptionID: curriculum.FalseSlot}, esSynonyms) {
		t.Error("false slot should be correct when key is \"falso\"")
	}
	if IsCorrect(c, Submission{OptionID: curriculum.TrueSlot}, esSynonyms) {
		t.Error("true slot should be incorrect when key is \"falso\"")
	}
}

func TestTrueFalse_LocalizedAffirmativeKey(t *testing.T) {
	c := tfChallenge("verdadero")

	if !IsCorrect(c, Submission{OptionID: curriculum.TrueSlot}, esSynonyms) {
		t.Error("true slot should be correct when key is \"verdadero\"")
	}
}

func TestTrueFalse_AuthoredOptionsPolarityByText(t *testing.T) {
	// Authored options with ids that carry no slot convention; polarity
	// must come from the option text.
	c := curriculum.Challenge{
		Type: curriculum.TypeTrueFalse,
		Options: []curriculum.Option{
			{ID: "x1", Text: "Sí, es verdadero"},
			{ID: "x2", Text: "No"},
		},
		CorrectAnswer: "yes",
	}

	if !IsCorrect(c, Submission{OptionID: "x1"}, esSynonyms) {
		t.Error("affirmative option text should match affirmative key")
	}
	if IsCorrect(c, Submission{OptionID: "x2"}, esSynonyms) {
		t.Error("negative option should be incorrect for affirmative key")
	}
}

func TestTrueFalse_UnrecognizedKeyFailsClosed(t *testing.T) {
	c := tfChallenge("quizás")

	if IsCorrect(c, Submission{OptionID: curriculum.TrueSlot}, esSynonyms) {
		t.Error("unrecognized key must never validate as correct")
	}
	if IsCorrect(c, Submission{OptionID: curriculum.FalseSlot}, esSynonyms) {
		t.Error("unrecognized key must never validate as correct")
	}
}

func TestFillBlank(t *testing.T) {
	c := curriculum.Challenge{
		Type:          curriculum.TypeFillBlank,
		CorrectAnswer: "5||7",
	}

	cases := []struct {
		name   string
		blanks []string
		want   bool
	}{
		{"exact", []string{"5", "7"}, true},
		{"trailing space", []string{"5 ", "7"}, true},
		{"case fold", []string{"5", "7"}, true},
		{"wrong order", []string{"7", "5"}, false},
		{"arity short", []string{"5"}, false},
		{"arity long", []string{"5", "7", "9"}, false},
		{"one wrong", []string{"5", "8"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsCorrect(c, Submission{Blanks: tc.blanks}, esSynonyms)
			if got != tc.want {
				t.Errorf("IsCorrect(%v) = %v, want %v", tc.blanks, got, tc.want)
			}
		})
	}
}

func TestFillBlank_CaseFoldsWords(t *testing.T) {
	c := curriculum.Challenge{Type: curriculum.TypeFillBlank, CorrectAnswer: "días"}
	if !IsCorrect(c, Submission{Blanks: []string{"Días"}}, esSynonyms) {
		t.Error("fill-blank comparison should case-fold")
	}
}

func TestUnknownType_FailsClosed(t *testing.T) {
	c := curriculum.Challenge{Type: "matching", CorrectAnswer: "x"}
	if IsCorrect(c, Submission{OptionID: "x"}, esSynonyms) {
		t.Error("unknown challenge type must grade as incorrect")
	}
}

func TestCanSubmit(t *testing.T) {
	if CanSubmit(mcChallenge(), Submission{}) {
		t.Error("choice without a selection must not be submittable")
	}
	if !CanSubmit(mcChallenge(), Submission{OptionID: "opt-hola"}) {
		t.Error("choice with a selection should be submittable")
	}

	fb := curriculum.Challenge{Type: curriculum.TypeFillBlank, CorrectAnswer: "5||7"}
	if CanSubmit(fb, Submission{Blanks: []string{"5", "  "}}) {
		t.Error("whitespace-only blank must not be submittable")
	}
	if CanSubmit(fb, Submission{Blanks: []string{"5"}}) {
		t.Error("missing blank must not be submittable")
	}
	if !CanSubmit(fb, Submission{Blanks: []string{"9", "9"}}) {
		t.Error("filled blanks should be submittable even when wrong")
	}
}
