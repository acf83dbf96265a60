// Package grader decides the correctness of a submitted answer against a
// challenge definition. All checks are pure functions: no state, no
// side effects, and no panics for any well-formed challenge/submission
// pair. Ambiguous cases fail closed — if nothing matches, the answer is
// wrong, never accidentally right.
package grader

import (
	"strings"

	"github.com/abhisek/lingo/internal/curriculum"
)

// Submission is the learner's answer for a single challenge.
// Choice types fill OptionID; fill-blank fills Blanks, one entry per
// blank, in question order.
type Submission struct {
	OptionID string
	Blanks   []string
}

// CanSubmit reports whether the submission is complete enough to grade:
// choice types need a selected option, fill-blank needs every blank
// non-empty after trimming. This gates the submit control; it says
// nothing about correctness.
func CanSubmit(c curriculum.Challenge, sub Submission) bool {
	switch c.Type {
	case curriculum.TypeMultipleChoice, curriculum.TypeTrueFalse:
		return sub.OptionID != ""
	case curriculum.TypeFillBlank:
		if len(sub.Blanks) != c.BlankCount() {
			return false
		}
		for _, b := range sub.Blanks {
			if strings.TrimSpace(b) == "" {
				return false
			}
		}
		return true
	}
	return false
}

// IsCorrect grades a submission. Dispatch is a tagged switch over the
// three challenge types; each branch is its own predicate.
func IsCorrect(c curriculum.Challenge, sub Submission, syn Synonyms) bool {
	switch c.Type {
	case curriculum.TypeMultipleChoice:
		return checkChoice(c, sub, syn, false)
	case curriculum.TypeTrueFalse:
		return checkChoice(c, sub, syn, true)
	case curriculum.TypeFillBlank:
		return checkFillBlank(c, sub)
	}
	return false
}

// checkChoice applies the three matching tiers in order. Authored content
// is inconsistent about whether CorrectAnswer holds an option id, option
// text, or (for true/false) a boolean-ish token, so each tier tolerates
// one of those encodings:
//
//  1. submitted option id equals CorrectAnswer
//  2. selected option's display text equals CorrectAnswer
//  3. true/false only: the polarity of CorrectAnswer (via the synonym
//     sets) equals the polarity of the selection (via its text or its
//     conventional slot id)
func checkChoice(c curriculum.Challenge, sub Submission, syn Synonyms, trueFalse bool) bool {
	submitted := normalize(sub.OptionID)
	want := normalize(c.CorrectAnswer)

	if submitted != "" && submitted == want {
		return true
	}

	selected, ok := selectedOption(c, sub.OptionID)
	if ok && normalize(selected.Text) == want {
		return true
	}

	if !trueFalse || !ok {
		return false
	}

	answerTrue := syn.IsTrue(want)
	answerFalse := syn.IsFalse(want)

	selText := normalize(selected.Text)
	selID := normalize(selected.ID)
	selTrue := selID == curriculum.TrueSlot || syn.matchesTrue(selText)
	selFalse := selID == curriculum.FalseSlot || syn.matchesFalse(selText)

	switch {
	case answerTrue && selTrue:
		return true
	case answerFalse && selFalse:
		return true
	}
	return false
}

// checkFillBlank compares every blank in order against the ||-delimited
// answer key, short-circuiting on the first mismatch. An arity mismatch
// is simply incorrect.
func checkFillBlank(c curriculum.Challenge, sub Submission) bool {
	want := c.AnswerKey()
	if len(sub.Blanks) != len(want) {
		return false
	}
	for i, w := range want {
		if normalize(sub.Blanks[i]) != normalize(w) {
			return false
		}
	}
	return true
}

func selectedOption(c curriculum.Challenge, optionID string) (curriculum.Option, bool) {
	id := normalize(optionID)
	for _, o := range c.Options {
		if normalize(o.ID) == id {
			return o, true
		}
	}
	return curriculum.Option{}, false
}

// normalize trims whitespace and case-folds for comparison.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
