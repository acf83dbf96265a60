package curriculum

import (
	"bytes"
	"encoding/json"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed content/course.json
var courseJSON []byte

// course is the package-level course singleton, loaded lazily on first use.
var (
	course     *Course
	courseOnce sync.Once
	courseErr  error

	byLessonID map[string]Lesson
	byUnitID   map[string]Unit
	unitOf     map[string]string // lesson id -> unit id
)

func load() {
	courseOnce.Do(func() {
		c, err := ParseCourse(courseJSON)
		if err != nil {
			courseErr = fmt.Errorf("embedded course content: %w", err)
			return
		}
		course = c
		byLessonID = make(map[string]Lesson)
		byUnitID = make(map[string]Unit, len(c.Units))
		unitOf = make(map[string]string)
		for _, u := range c.Units {
			byUnitID[u.ID] = u
			for _, l := range u.Lessons {
				byLessonID[l.ID] = l
				unitOf[l.ID] = u.ID
			}
		}
	})
}

// Load validates and indexes the embedded course. Callers that can surface
// an error (the CLI) should call it once at startup; accessors call it
// implicitly and panic on a broken embed, which only a bad build produces.
func Load() error {
	load()
	return courseErr
}

func mustCourse() *Course {
	load()
	if courseErr != nil {
		panic(courseErr)
	}
	return course
}

// Title returns the course title.
func Title() string {
	return mustCourse().Title
}

// Lang returns the BCP 47 tag of the language being taught.
func Lang() string {
	return mustCourse().Lang
}

// Units returns the ordered units of the course. The slice is a copy;
// lessons and challenges are shared and treated as immutable.
func Units() []Unit {
	c := mustCourse()
	out := make([]Unit, len(c.Units))
	copy(out, c.Units)
	return out
}

// LessonByID returns a lesson by id, or an error if it isn't in the course.
func LessonByID(id string) (Lesson, error) {
	load()
	if courseErr != nil {
		return Lesson{}, courseErr
	}
	l, ok := byLessonID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("lesson not found: %q", id)
	}
	return l, nil
}

// UnitOfLesson returns the unit containing the given lesson id.
func UnitOfLesson(lessonID string) (Unit, error) {
	load()
	if courseErr != nil {
		return Unit{}, courseErr
	}
	uid, ok := unitOf[lessonID]
	if !ok {
		return Unit{}, fmt.Errorf("lesson not found: %q", lessonID)
	}
	return byUnitID[uid], nil
}

// ParseCourse parses and fully validates course content.
func ParseCourse(data []byte) (*Course, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var c Course
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode course: %w", err)
	}

	if err := ValidateCourse(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

var compiledSchema struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

func validateSchema(data []byte) error {
	compiledSchema.once.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://course.json", courseSchema); err != nil {
			compiledSchema.err = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema.schema, compiledSchema.err = c.Compile("schema://course.json")
	})
	if compiledSchema.err != nil {
		return fmt.Errorf("compile course schema: %w", compiledSchema.err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.schema.Validate(parsed); err != nil {
		return fmt.Errorf("course schema: %w", err)
	}
	return nil
}

// ValidateCourse applies the semantic checks the schema can't express:
// id uniqueness and the per-type challenge constraints the grader assumes.
func ValidateCourse(c *Course) error {
	seenUnit := make(map[string]bool)
	seenLesson := make(map[string]bool)
	seenChallenge := make(map[string]bool)

	for _, u := range c.Units {
		if seenUnit[u.ID] {
			return fmt.Errorf("duplicate unit id %q", u.ID)
		}
		seenUnit[u.ID] = true

		for i, l := range u.Lessons {
			if seenLesson[l.ID] {
				return fmt.Errorf("duplicate lesson id %q", l.ID)
			}
			seenLesson[l.ID] = true

			// Seed data marks only non-first lessons locked.
			if i == 0 && l.Locked {
				return fmt.Errorf("lesson %q: first lesson of unit %q must not be locked", l.ID, u.ID)
			}

			for _, ch := range l.Challenges {
				if seenChallenge[ch.ID] {
					return fmt.Errorf("duplicate challenge id %q", ch.ID)
				}
				seenChallenge[ch.ID] = true
				if err := ValidateChallenge(ch); err != nil {
					return fmt.Errorf("lesson %q: %w", l.ID, err)
				}
			}
		}
	}
	return nil
}

// ValidateChallenge checks a single challenge for content errors: an
// unknown type, a choice challenge with no usable options, or an empty
// fill-blank answer key. The session controller surfaces these as an
// unanswerable, skippable state rather than grading them.
func ValidateChallenge(c Challenge) error {
	switch c.Type {
	case TypeMultipleChoice:
		if len(c.Options) < 2 {
			return fmt.Errorf("challenge %q: multiple choice needs at least 2 options, got %d", c.ID, len(c.Options))
		}
	case TypeTrueFalse:
		// Options may be absent; they are synthesized before serving.
	case TypeFillBlank:
		for i, want := range c.AnswerKey() {
			if strings.TrimSpace(want) == "" {
				return fmt.Errorf("challenge %q: blank %d of answer key is empty", c.ID, i+1)
			}
		}
	default:
		return fmt.Errorf("challenge %q: unknown type %q", c.ID, c.Type)
	}
	if strings.TrimSpace(c.CorrectAnswer) == "" {
		return fmt.Errorf("challenge %q: empty answer key", c.ID)
	}
	return nil
}
