package i18n

import "testing"

func TestInitAndTranslate(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := T("lesson.correct"); got != "Correct!" {
		t.Errorf("T(lesson.correct) = %q, want %q", got, "Correct!")
	}
}

func TestSpanishLocale(t *testing.T) {
	if err := Init("es"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := T("lesson.correct"); got != "¡Correcto!" {
		t.Errorf("T(lesson.correct) = %q, want %q", got, "¡Correcto!")
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	if err := Init("de"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := T("home.quit"); got != "Quit" {
		t.Errorf("T(home.quit) = %q, want %q", got, "Quit")
	}
}

func TestMissingIDReturnsID(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := T("no.such.message"); got != "no.such.message" {
		t.Errorf("T(no.such.message) = %q, want the ID back", got)
	}
}

func TestTemplateData(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("init: %v", err)
	}
	got := Td("lesson.correct_answer_was", map[string]any{"Answer": "hola"})
	want := "Correct answer: hola"
	if got != want {
		t.Errorf("Td = %q, want %q", got, want)
	}
}
