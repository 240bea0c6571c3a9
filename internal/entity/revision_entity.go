package entity

import (
	"time"

	"github.com/google/uuid"
)

// Revision is an immutable snapshot of a note's title and content taken at
// the moment of the mutation described by RevDescription. NoteContent is
// rewritten only when an issue fix splices a suggestion into it.
type Revision struct {
	Id             uuid.UUID
	NoteId         uuid.UUID
	NoteTitle      string
	NoteContent    string
	RevDescription string
	CreatedAt      time.Time
}
