package controller

import (
	"notemark-be/internal/dto"
	"notemark-be/internal/entity"
)

func toRevisionResponse(revision *entity.Revision) *dto.RevisionResponse {
	return &dto.RevisionResponse{
		Id:             revision.Id,
		RevDescription: revision.RevDescription,
		NoteId:         revision.NoteId,
		NoteTitle:      revision.NoteTitle,
		NoteContent:    revision.NoteContent,
		CreatedAt:      revision.CreatedAt,
	}
}

func toRevisionResponses(revisions []*entity.Revision) []*dto.RevisionResponse {
	res := make([]*dto.RevisionResponse, 0, len(revisions))
	for _, revision := range revisions {
		res = append(res, toRevisionResponse(revision))
	}
	return res
}

func toIssueResponse(issue *entity.Issue) *dto.IssueResponse {
	return &dto.IssueResponse{
		Id:            issue.Id,
		VersionId:     issue.VersionId,
		Context:       issue.Context,
		Offset:        issue.Offset,
		Length:        issue.Length,
		ErrorMessage:  issue.ErrorMessage,
		ErrorCategory: issue.ErrorCategory,
		ErrorType:     issue.ErrorType,
		Suggestion:    issue.Suggestion,
		Replacements:  issue.Replacements,
		Fixed:         issue.Fixed,
		Deleted:       issue.IsDeleted,
	}
}

func toIssueResponses(issues []*entity.Issue) []*dto.IssueResponse {
	res := make([]*dto.IssueResponse, 0, len(issues))
	for _, issue := range issues {
		res = append(res, toIssueResponse(issue))
	}
	return res
}
