// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lingo/ent/answerevent"
	"github.com/abhisek/lingo/ent/completionevent"
	"github.com/abhisek/lingo/ent/schema"
	"github.com/abhisek/lingo/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescLessonID is the schema descriptor for lesson_id field.
	answereventDescLessonID := answereventFields[1].Descriptor()
	// answerevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	answerevent.LessonIDValidator = answereventDescLessonID.Validators[0].(func(string) error)
	// answereventDescChallengeID is the schema descriptor for challenge_id field.
	answereventDescChallengeID := answereventFields[2].Descriptor()
	// answerevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	answerevent.ChallengeIDValidator = answereventDescChallengeID.Validators[0].(func(string) error)
	// answereventDescChallengeType is the schema descriptor for challenge_type field.
	answereventDescChallengeType := answereventFields[3].Descriptor()
	// answerevent.ChallengeTypeValidator is a validator for the "challenge_type" field. It is called by the builders before save.
	answerevent.ChallengeTypeValidator = answereventDescChallengeType.Validators[0].(func(string) error)
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescSessionID is the schema descriptor for session_id field.
	completioneventDescSessionID := completioneventFields[0].Descriptor()
	// completionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	completionevent.SessionIDValidator = completioneventDescSessionID.Validators[0].(func(string) error)
	// completioneventDescLessonID is the schema descriptor for lesson_id field.
	completioneventDescLessonID := completioneventFields[1].Descriptor()
	// completionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	completionevent.LessonIDValidator = completioneventDescLessonID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
