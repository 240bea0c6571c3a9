package service

import (
	"context"
	"time"

	"notemark-be/internal/apperror"
	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"
	"notemark-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IHistoryService interface {
	// Record snapshots the note's title and content into a new revision.
	// It runs against the caller's unit of work so the snapshot commits or
	// rolls back together with the note mutation that triggered it.
	Record(ctx context.Context, uow unitofwork.UnitOfWork, note *entity.Note, description string) (*entity.Revision, error)
	GetVersionById(ctx context.Context, versionId uuid.UUID) (*entity.Revision, error)
	GetNoteVersions(ctx context.Context, noteId uuid.UUID) ([]*entity.Revision, error)
}

type historyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHistoryService(uowFactory unitofwork.RepositoryFactory) IHistoryService {
	return &historyService{
		uowFactory: uowFactory,
	}
}

func (s *historyService) Record(ctx context.Context, uow unitofwork.UnitOfWork, note *entity.Note, description string) (*entity.Revision, error) {
	revision := entity.Revision{
		Id:             uuid.New(),
		NoteId:         note.Id,
		NoteTitle:      note.Title,
		NoteContent:    note.Content,
		RevDescription: description,
		CreatedAt:      time.Now(),
	}

	if err := uow.RevisionRepository().Create(ctx, &revision); err != nil {
		return nil, err
	}

	return &revision, nil
}

func (s *historyService) GetVersionById(ctx context.Context, versionId uuid.UUID) (*entity.Revision, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	revision, err := uow.RevisionRepository().FindOne(ctx, specification.ByID{ID: versionId})
	if err != nil {
		return nil, err
	}
	if revision == nil {
		return nil, apperror.NotFound("version %s not found", versionId)
	}

	return revision, nil
}

func (s *historyService) GetNoteVersions(ctx context.Context, noteId uuid.UUID) ([]*entity.Revision, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	revisions, err := uow.RevisionRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	// Zero history is reported as not found rather than an empty list.
	// Existing clients depend on the 404.
	if len(revisions) == 0 {
		return nil, apperror.NotFound("no versions were found for note %s", noteId)
	}

	return revisions, nil
}
