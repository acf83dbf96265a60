package curriculum

import (
	"strings"
	"testing"
)

func TestLoad_EmbeddedCourse(t *testing.T) {
	if err := Load(); err != nil {
		t.Fatalf("embedded course failed to load: %v", err)
	}

	units := Units()
	if len(units) == 0 {
		t.Fatal("course has no units")
	}
	for _, u := range units {
		if len(u.Lessons) == 0 {
			t.Errorf("unit %q has no lessons", u.ID)
		}
		if u.Lessons[0].Locked {
			t.Errorf("unit %q: first lesson must start unlocked", u.ID)
		}
	}
}

func TestLessonByID(t *testing.T) {
	l, err := LessonByID("lesson-greetings")
	if err != nil {
		t.Fatalf("LessonByID: %v", err)
	}
	if len(l.Challenges) == 0 {
		t.Error("lesson-greetings has no challenges")
	}

	if _, err := LessonByID("nope"); err == nil {
		t.Error("expected error for unknown lesson id")
	}
}

func TestUnitOfLesson(t *testing.T) {
	u, err := UnitOfLesson("lesson-family")
	if err != nil {
		t.Fatalf("UnitOfLesson: %v", err)
	}
	if u.ID != "unit-people" {
		t.Errorf("unit = %q, want unit-people", u.ID)
	}
}

func TestParseCourse_RejectsBadContent(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"not json", `{"title": `},
		{"missing units", `{"title": "x", "lang": "es"}`},
		{"unknown challenge type", `{
			"title": "x", "lang": "es",
			"units": [{"id": "u", "title": "U", "lessons": [{
				"id": "l", "title": "L",
				"challenges": [{"id": "c", "type": "matching", "question": "q", "correctAnswer": "a"}]
			}]}]
		}`},
		{"empty answer key", `{
			"title": "x", "lang": "es",
			"units": [{"id": "u", "title": "U", "lessons": [{
				"id": "l", "title": "L",
				"challenges": [{"id": "c", "type": "fill_blank", "question": "q", "correctAnswer": ""}]
			}]}]
		}`},
		{"locked first lesson", `{
			"title": "x", "lang": "es",
			"units": [{"id": "u", "title": "U", "lessons": [{
				"id": "l", "title": "L", "locked": true,
				"challenges": [{"id": "c", "type": "true_false", "question": "q", "correctAnswer": "True"}]
			}]}]
		}`},
		{"duplicate lesson id", `{
			"title": "x", "lang": "es",
			"units": [{"id": "u", "title": "U", "lessons": [
				{"id": "l", "title": "L", "challenges": [{"id": "c1", "type": "true_false", "question": "q", "correctAnswer": "True"}]},
				{"id": "l", "title": "L2", "locked": true, "challenges": [{"id": "c2", "type": "true_false", "question": "q", "correctAnswer": "True"}]}
			]}]
		}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseCourse([]byte(tc.json)); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}

func TestValidateChallenge(t *testing.T) {
	err := ValidateChallenge(Challenge{
		ID: "c", Type: TypeMultipleChoice, Question: "q", CorrectAnswer: "a",
		Options: []Option{{ID: "a", Text: "x"}},
	})
	if err == nil || !strings.Contains(err.Error(), "options") {
		t.Errorf("expected option-count error, got %v", err)
	}

	// True/false without options is fine — they get synthesized.
	err = ValidateChallenge(Challenge{ID: "c", Type: TypeTrueFalse, Question: "q", CorrectAnswer: "True"})
	if err != nil {
		t.Errorf("true/false without options should validate, got %v", err)
	}

	// A fill-blank key with an empty middle blank is a content error.
	err = ValidateChallenge(Challenge{ID: "c", Type: TypeFillBlank, Question: "q", CorrectAnswer: "5|| ||7"})
	if err == nil {
		t.Error("expected error for empty blank in answer key")
	}
}

func TestSynthesizeTrueFalseOptions(t *testing.T) {
	c := SynthesizeTrueFalseOptions(Challenge{ID: "c", Type: TypeTrueFalse, CorrectAnswer: "False"})
	if len(c.Options) != 2 {
		t.Fatalf("got %d options, want 2", len(c.Options))
	}
	if c.Options[0].ID != TrueSlot || c.Options[1].ID != FalseSlot {
		t.Errorf("slots = %q,%q, want %q,%q", c.Options[0].ID, c.Options[1].ID, TrueSlot, FalseSlot)
	}

	// Authored options are left alone.
	authored := Challenge{Type: TypeTrueFalse, Options: []Option{{ID: "x", Text: "Sí"}, {ID: "y", Text: "No"}}}
	if got := SynthesizeTrueFalseOptions(authored); got.Options[0].ID != "x" {
		t.Error("authored options must not be replaced")
	}

	// Non-true/false challenges pass through.
	mc := Challenge{Type: TypeMultipleChoice}
	if got := SynthesizeTrueFalseOptions(mc); len(got.Options) != 0 {
		t.Error("multiple choice must not get synthesized options")
	}
}
