package dto

import "github.com/google/uuid"

type IssueResponse struct {
	Id            uuid.UUID `json:"id"`
	VersionId     uuid.UUID `json:"version_id"`
	Context       string    `json:"context"`
	Offset        int       `json:"offset"`
	Length        int       `json:"length"`
	ErrorMessage  string    `json:"error_message"`
	ErrorCategory string    `json:"error_category"`
	ErrorType     string    `json:"error_type"`
	Suggestion    string    `json:"suggestion"`
	Replacements  []string  `json:"replacements"`
	Fixed         bool      `json:"fixed"`
	Deleted       bool      `json:"deleted"`
}
