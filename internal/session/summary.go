package session

import "time"

// Summary holds the data displayed on the summary screen.
type Summary struct {
	LessonID  string
	Duration  time.Duration
	Presented int
	Correct   int
	Incorrect int
	Skipped   int
	Accuracy  float64
	XPEarned  int
	Hearts    int
}

// BuildSummary creates a Summary from a completed (or abandoned) session.
func BuildSummary(s *State, now time.Time) *Summary {
	var accuracy float64
	graded := s.Correct + s.Incorrect
	if graded > 0 {
		accuracy = float64(s.Correct) / float64(graded)
	}

	sum := &Summary{
		LessonID:  s.LessonID,
		Duration:  now.Sub(s.StartTime),
		Presented: s.Presented,
		Correct:   s.Correct,
		Incorrect: s.Incorrect,
		Skipped:   s.Skipped,
		Accuracy:  accuracy,
	}
	if s.Completed {
		sum.XPEarned = XPReward
		sum.Hearts = HeartsReward
	}
	return sum
}
