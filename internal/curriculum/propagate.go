package curriculum

// Recompute returns a copy of units with every lesson's Completed and
// Locked flags refreshed from the authoritative completed-lesson set.
//
// A lesson unlocks when it is itself completed, or when the lesson
// immediately before it in the same unit is completed. The rule is a
// forward-only ratchet: it only ever clears Locked, it never sets it, so a
// lesson once unlocked stays unlocked on every later recompute. Ids in the
// completed set that don't exist in the course simply match nothing.
//
// The function is pure and idempotent; callers replace their curriculum
// view with the returned slice.
func Recompute(units []Unit, completed map[string]bool) []Unit {
	out := make([]Unit, len(units))
	for ui, u := range units {
		lessons := make([]Lesson, len(u.Lessons))
		copy(lessons, u.Lessons)
		for i := range lessons {
			lessons[i].Completed = completed[lessons[i].ID]
			if lessons[i].Completed || (i > 0 && completed[lessons[i-1].ID]) {
				lessons[i].Locked = false
			}
		}
		out[ui] = u
		out[ui].Lessons = lessons
	}
	return out
}

// NextLesson returns the first lesson, in unit order, that is unlocked but
// not completed after a Recompute with the given set. The second return is
// false when the learner has completed everything.
func NextLesson(units []Unit, completed map[string]bool) (Lesson, bool) {
	for _, u := range Recompute(units, completed) {
		for _, l := range u.Lessons {
			if !l.Locked && !l.Completed {
				return l, true
			}
		}
	}
	return Lesson{}, false
}
