package dto

import "github.com/google/uuid"

type RenderNoteResponse struct {
	NoteId uuid.UUID `json:"note_id"`
	Html   string    `json:"html"`
}

type SummarizeNoteResponse struct {
	Note    SummarizedNote `json:"note"`
	Summary string         `json:"summary"`
}

type SummarizedNote struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}
