package service

import (
	"context"
	"sync"
	"time"

	"notemark-be/internal/apperror"
	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"
	"notemark-be/internal/repository/unitofwork"
	"notemark-be/pkg/events"
	pktNats "notemark-be/pkg/nats"

	"github.com/google/uuid"
)

type IIssueService interface {
	FixIssue(ctx context.Context, issueId uuid.UUID) (*entity.Revision, error)
	VersionIssues(ctx context.Context, versionId uuid.UUID) ([]*entity.Issue, error)
}

type issueService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher

	// revLocks serializes fix application per revision id. Two concurrent
	// fixes against the same revision would otherwise splice against each
	// other's offsets.
	revLocks sync.Map
}

func NewIssueService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IIssueService {
	return &issueService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *issueService) revisionLock(versionId uuid.UUID) *sync.Mutex {
	lock, _ := s.revLocks.LoadOrStore(versionId, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// FixIssue splices the issue's suggestion into its revision's content at the
// recorded span and marks the issue fixed. Offsets are character positions
// into the revision content as it was when the issue was created; once any
// fix lands on a revision, sibling issues' offsets are suspect, so bounds
// are re-validated here instead of trusted.
func (s *issueService) FixIssue(ctx context.Context, issueId uuid.UUID) (*entity.Revision, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	issue, err := uow.IssueRepository().FindOne(ctx, specification.ByID{ID: issueId})
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, apperror.NotFound("issue %s not found", issueId)
	}

	lock := s.revisionLock(issue.VersionId)
	lock.Lock()
	defer lock.Unlock()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Re-read under the lock: another fix may have landed between the first
	// load and lock acquisition.
	issue, err = uow.IssueRepository().FindOne(ctx, specification.ByID{ID: issueId})
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, apperror.NotFound("issue %s not found", issueId)
	}
	if issue.Fixed {
		return nil, apperror.AlreadyFixed("issue %s already fixed", issueId)
	}

	revision, err := uow.RevisionRepository().FindOne(ctx, specification.ByID{ID: issue.VersionId})
	if err != nil {
		return nil, err
	}
	if revision == nil {
		return nil, apperror.NotFound("version %s not found", issue.VersionId)
	}

	patched, err := spliceSuggestion(revision.NoteContent, issue.Offset, issue.Length, issue.Suggestion)
	if err != nil {
		return nil, err
	}

	revision.NoteContent = patched
	if err := uow.RevisionRepository().Update(ctx, revision); err != nil {
		return nil, err
	}

	now := time.Now()
	issue.Fixed = true
	issue.UpdatedAt = &now
	if err := uow.IssueRepository().Update(ctx, issue); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "ISSUE_FIXED",
			Data: map[string]interface{}{
				"issue_id":   issue.Id,
				"version_id": revision.Id,
				"note_id":    revision.NoteId,
			},
			OccurredAt: time.Now(),
		}
		// Notification delivery is auxiliary; the fix already committed.
		_ = s.eventPublisher.Publish(ctx, evt)
	}

	return revision, nil
}

// spliceSuggestion replaces the span [offset, offset+length) of text with
// suggestion. Offsets count characters, matching the grammar source, so the
// splice operates on runes rather than bytes.
func spliceSuggestion(text string, offset, length int, suggestion string) (string, error) {
	runes := []rune(text)
	if offset < 0 || length < 0 || offset+length > len(runes) {
		return "", apperror.StaleOffset(
			"span [%d,%d) no longer fits revision content of length %d",
			offset, offset+length, len(runes),
		)
	}
	return string(runes[:offset]) + suggestion + string(runes[offset+length:]), nil
}

func (s *issueService) VersionIssues(ctx context.Context, versionId uuid.UUID) ([]*entity.Issue, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	issues, err := uow.IssueRepository().FindAll(ctx,
		specification.ByVersionID{VersionID: versionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	if len(issues) == 0 {
		return nil, apperror.NotFound("no issues were found for version %s", versionId)
	}

	return issues, nil
}
