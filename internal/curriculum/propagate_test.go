package curriculum

import "testing"

func testUnits() []Unit {
	return []Unit{
		{
			ID: "u1",
			Lessons: []Lesson{
				{ID: "u1-l1"},
				{ID: "u1-l2", Locked: true},
				{ID: "u1-l3", Locked: true},
			},
		},
		{
			ID: "u2",
			Lessons: []Lesson{
				{ID: "u2-l1"},
				{ID: "u2-l2", Locked: true},
			},
		},
	}
}

func TestRecompute_CompletingFirstLessonUnlocksSecond(t *testing.T) {
	units := Recompute(testUnits(), map[string]bool{"u1-l1": true})

	if !units[0].Lessons[0].Completed {
		t.Error("u1-l1 should be completed")
	}
	if units[0].Lessons[1].Locked {
		t.Error("u1-l2 should be unlocked after completing u1-l1")
	}
	if !units[0].Lessons[2].Locked {
		t.Error("u1-l3 should stay locked")
	}
	// No lesson in the other unit changes lock state.
	if units[1].Lessons[0].Locked || !units[1].Lessons[1].Locked {
		t.Error("unit 2 lock state should be unchanged")
	}
}

func TestRecompute_NeverRelocks(t *testing.T) {
	units := Recompute(testUnits(), map[string]bool{"u1-l1": true})
	// Recompute again with an empty set: u1-l2 was unlocked above, and the
	// caller's view now carries Locked=false. The ratchet must not regress it.
	units = Recompute(units, map[string]bool{})

	if units[0].Lessons[1].Locked {
		t.Error("u1-l2 was unlocked; recompute must not re-lock it")
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	completed := map[string]bool{"u1-l1": true, "u1-l2": true}
	once := Recompute(testUnits(), completed)
	twice := Recompute(once, completed)

	for ui := range once {
		for li := range once[ui].Lessons {
			a, b := once[ui].Lessons[li], twice[ui].Lessons[li]
			if a.Locked != b.Locked || a.Completed != b.Completed {
				t.Errorf("lesson %s changed on second recompute: %+v vs %+v", a.ID, a, b)
			}
		}
	}
}

func TestRecompute_UnknownCompletedIDIgnored(t *testing.T) {
	units := Recompute(testUnits(), map[string]bool{"no-such-lesson": true})

	if units[0].Lessons[1].Locked != true {
		t.Error("unknown completed id must not unlock anything")
	}
}

func TestRecompute_CompletedLessonIsUnlocked(t *testing.T) {
	// A lesson in the completed set unlocks even if its predecessor isn't.
	units := Recompute(testUnits(), map[string]bool{"u1-l3": true})

	if units[0].Lessons[2].Locked {
		t.Error("completed lesson must be unlocked")
	}
	if !units[0].Lessons[1].Locked {
		t.Error("u1-l2 should stay locked")
	}
}

func TestRecompute_DoesNotMutateInput(t *testing.T) {
	in := testUnits()
	Recompute(in, map[string]bool{"u1-l1": true})

	if in[0].Lessons[0].Completed {
		t.Error("input units must not be mutated")
	}
	if !in[0].Lessons[1].Locked {
		t.Error("input units must not be mutated")
	}
}

func TestNextLesson(t *testing.T) {
	l, ok := NextLesson(testUnits(), map[string]bool{"u1-l1": true})
	if !ok || l.ID != "u1-l2" {
		t.Errorf("NextLesson = %q, want u1-l2", l.ID)
	}

	all := map[string]bool{
		"u1-l1": true, "u1-l2": true, "u1-l3": true,
		"u2-l1": true, "u2-l2": true,
	}
	if _, ok := NextLesson(testUnits(), all); ok {
		t.Error("expected no next lesson when everything is completed")
	}
}
