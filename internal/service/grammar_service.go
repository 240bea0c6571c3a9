package service

import (
	"context"
	"time"

	"notemark-be/internal/apperror"
	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"
	"notemark-be/internal/repository/unitofwork"
	"notemark-be/pkg/grammar"

	"github.com/google/uuid"
)

type IGrammarService interface {
	CheckGrammar(ctx context.Context, versionId uuid.UUID) ([]*entity.Issue, error)
}

type grammarService struct {
	uowFactory unitofwork.RepositoryFactory
	checker    grammar.Checker
}

func NewGrammarService(uowFactory unitofwork.RepositoryFactory, checker grammar.Checker) IGrammarService {
	return &grammarService{
		uowFactory: uowFactory,
		checker:    checker,
	}
}

// CheckGrammar runs a revision's frozen content through the grammar source
// and persists one issue per candidate, bound to that revision. Candidates
// are persisted one by one: a failure partway through leaves the earlier
// issues in place (at-least-once, no batch atomicity).
func (s *grammarService) CheckGrammar(ctx context.Context, versionId uuid.UUID) ([]*entity.Issue, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	revision, err := uow.RevisionRepository().FindOne(ctx, specification.ByID{ID: versionId})
	if err != nil {
		return nil, err
	}
	if revision == nil {
		return nil, apperror.NotFound("version %s not found", versionId)
	}

	candidates, err := s.checker.Check(ctx, revision.NoteContent)
	if err != nil {
		return nil, apperror.Upstream(err, "grammar source unavailable")
	}

	issues := make([]*entity.Issue, 0, len(candidates))
	for _, candidate := range candidates {
		suggestion := ""
		if len(candidate.Replacements) > 0 {
			suggestion = candidate.Replacements[0]
		}

		issue := entity.Issue{
			Id:            uuid.New(),
			VersionId:     versionId,
			Context:       candidate.Context,
			Offset:        candidate.Offset,
			Length:        candidate.Length,
			ErrorMessage:  candidate.Message,
			ErrorCategory: candidate.Category,
			ErrorType:     candidate.Type,
			Suggestion:    suggestion,
			Replacements:  candidate.Replacements,
			CreatedAt:     time.Now(),
		}

		if err := uow.IssueRepository().Create(ctx, &issue); err != nil {
			return nil, err
		}

		issues = append(issues, &issue)
	}

	return issues, nil
}
