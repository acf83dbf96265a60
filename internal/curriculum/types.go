package curriculum

import "strings"

// ChallengeType identifies how a challenge is presented and graded.
type ChallengeType string

const (
	TypeMultipleChoice ChallengeType = "multiple_choice"
	TypeTrueFalse      ChallengeType = "true_false"
	TypeFillBlank      ChallengeType = "fill_blank"
)

// BlankDelimiter separates the expected answers of a multi-blank
// fill-in challenge inside CorrectAnswer, e.g. "cinco||siete".
const BlankDelimiter = "||"

// Option is a single selectable answer for a choice-type challenge.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Challenge is one gradable question within a lesson.
//
// A challenge is immutable once queued in a session; retries are shallow
// copies flagged IsRetry, never mutations of the original.
type Challenge struct {
	ID       string        `json:"id"`
	Type     ChallengeType `json:"type"`
	Question string        `json:"question"`

	// ImageRef optionally names a picture shown with the question.
	ImageRef string `json:"image,omitempty"`

	// Options is required for multiple choice. For true/false it may be
	// omitted in authored content; SynthesizeTrueFalseOptions fills the
	// canonical two-option set before the challenge is served.
	Options []Option `json:"options,omitempty"`

	// CorrectAnswer holds an option id, option text, or boolean-ish token
	// for choice types (authored content is inconsistent; the grader
	// tolerates all three). For fill-blank it holds the expected strings
	// joined by BlankDelimiter.
	CorrectAnswer string `json:"correctAnswer"`

	// Explanation is shown after the learner answers.
	Explanation string `json:"explanation,omitempty"`

	// IsRetry is true only on queue-appended retry copies.
	IsRetry bool `json:"-"`
}

// AnswerKey splits CorrectAnswer into the ordered per-blank expected
// strings. Only meaningful for fill-blank challenges.
func (c Challenge) AnswerKey() []string {
	return strings.Split(c.CorrectAnswer, BlankDelimiter)
}

// BlankCount returns the number of blanks a fill-blank challenge expects.
func (c Challenge) BlankCount() int {
	return len(c.AnswerKey())
}

// Retry returns a shallow copy of the challenge flagged as a retry.
func (c Challenge) Retry() Challenge {
	r := c
	r.IsRetry = true
	return r
}

// TrueFalseSlots are the conventional option ids for synthesized
// true/false options: slot "a" is the affirmative, slot "b" the negative.
const (
	TrueSlot  = "a"
	FalseSlot = "b"
)

// SynthesizeTrueFalseOptions returns the challenge with the canonical
// two-option set filled in when a true/false challenge ships without
// authored options. Other challenges pass through unchanged.
func SynthesizeTrueFalseOptions(c Challenge) Challenge {
	if c.Type != TypeTrueFalse || len(c.Options) > 0 {
		return c
	}
	c.Options = []Option{
		{ID: TrueSlot, Text: "True"},
		{ID: FalseSlot, Text: "False"},
	}
	return c
}

// Lesson is an ordered list of challenges.
//
// Completed and Locked are a derived view; the authoritative state is the
// learner's completed-lesson set (see the progress package). Recompute
// refreshes the view from that set.
type Lesson struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Challenges []Challenge `json:"challenges"`
	Completed  bool        `json:"completed"`
	Locked     bool        `json:"locked"`
	Stars      int         `json:"stars"`
}

// Unit is an ordered container of lessons. Ordering is the only
// session-relevant property a unit carries.
type Unit struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Course is the full curriculum: an ordered list of units.
type Course struct {
	Title string `json:"title"`
	Lang  string `json:"lang"`
	Units []Unit `json:"units"`
}
