package dto

import (
	"time"

	"github.com/google/uuid"
)

type RevisionResponse struct {
	Id             uuid.UUID `json:"id"`
	RevDescription string    `json:"rev_description"`
	NoteId         uuid.UUID `json:"note_id"`
	NoteTitle      string    `json:"note_title"`
	NoteContent    string    `json:"note_content"`
	CreatedAt      time.Time `json:"created_at"`
}
