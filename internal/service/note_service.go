package service

import (
	"context"
	"encoding/json"
	"time"

	"notemark-be/internal/apperror"
	"notemark-be/internal/dto"
	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"
	"notemark-be/internal/repository/unitofwork"
	"notemark-be/pkg/events"
	pktNats "notemark-be/pkg/nats"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	GetUserNotes(ctx context.Context, userId uuid.UUID, folderId *uuid.UUID) ([]*dto.NoteListItem, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	historyService   IHistoryService
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	historyService IHistoryService,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		historyService:   historyService,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// validateTags checks every requested tag id exists before it is attached.
func (c *noteService) validateTags(ctx context.Context, uow unitofwork.UnitOfWork, tagIds []uuid.UUID) error {
	if len(tagIds) == 0 {
		return nil
	}
	count, err := uow.TagRepository().Count(ctx, specification.ByIDs{IDs: tagIds})
	if err != nil {
		return err
	}
	if count != int64(len(tagIds)) {
		return apperror.Validation("one or more tag ids do not exist")
	}
	return nil
}

func (c *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if req.FolderId != nil {
		folder, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *req.FolderId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, apperror.NotFound("folder %s not found", req.FolderId)
		}
	}

	if err := c.validateTags(ctx, uow, req.TagIds); err != nil {
		return nil, err
	}

	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		FolderId:  req.FolderId,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	if len(req.TagIds) > 0 {
		if err := uow.NoteRepository().ReplaceTags(ctx, note.Id, req.TagIds); err != nil {
			return nil, err
		}
	}

	// The snapshot rides the same transaction as the note row, so a note
	// never exists without its first revision.
	revision, err := c.historyService.Record(ctx, uow, &note, "Note created: "+note.Id.String()+", "+note.Title)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publishContentChanged(ctx, note.Id)

	c.publishEvent(ctx, "NOTE_CREATED", &note, userId)

	return &dto.CreateNoteResponse{
		Id:         note.Id,
		RevisionId: revision.Id,
	}, nil
}

func (c *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note %s not found", id)
	}

	tags, err := uow.NoteRepository().FindTags(ctx, note.Id)
	if err != nil {
		return nil, err
	}

	res := dto.ShowNoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		FolderId:  note.FolderId,
		Tags:      make([]dto.TagItem, 0, len(tags)),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	for _, tag := range tags {
		res.Tags = append(res.Tags, dto.TagItem{Id: tag.Id, Name: tag.Name})
	}

	return &res, nil
}

func (c *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note %s not found", req.Id)
	}

	if err := c.validateTags(ctx, uow, req.TagIds); err != nil {
		return nil, err
	}

	now := time.Now()
	note.Title = req.Title
	note.Content = req.Content
	note.UpdatedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	if req.TagIds != nil {
		if err := uow.NoteRepository().ReplaceTags(ctx, note.Id, req.TagIds); err != nil {
			return nil, err
		}
	}

	revision, err := c.historyService.Record(ctx, uow, note, "Note updated")
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publishContentChanged(ctx, note.Id)
	c.publishEvent(ctx, "NOTE_UPDATED", note, userId)

	return &dto.UpdateNoteResponse{
		Id:         note.Id,
		RevisionId: revision.Id,
	}, nil
}

func (c *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NotFound("note %s not found", id)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// The final snapshot outlives the note; history survives deletion.
	if _, err := c.historyService.Record(ctx, uow, note, "Note deleted"); err != nil {
		return err
	}

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	c.publishEvent(ctx, "NOTE_DELETED", note, userId)

	return nil
}

func (c *noteService) GetUserNotes(ctx context.Context, userId uuid.UUID, folderId *uuid.UUID) ([]*dto.NoteListItem, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if folderId != nil {
		specs = append(specs, specification.ByFolderID{FolderID: *folderId})
	}

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.NoteListItem, 0, len(notes))
	for _, note := range notes {
		items = append(items, &dto.NoteListItem{
			Id:        note.Id,
			Title:     note.Title,
			FolderId:  note.FolderId,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		})
	}

	return items, nil
}

func (c *noteService) publishEvent(ctx context.Context, eventType string, note *entity.Note, userId uuid.UUID) {
	if c.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"title":   note.Title,
			"note_id": note.Id,
			"user_id": userId,
		},
		OccurredAt: time.Now(),
	}
	// Notification delivery is auxiliary; the mutation already committed.
	_ = c.eventPublisher.Publish(ctx, evt)
}

func (c *noteService) publishContentChanged(ctx context.Context, noteId uuid.UUID) {
	payload := dto.PublishRenderNoteMessage{NoteId: noteId}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return
	}
	// Cache warming is best effort.
	_ = c.publisherService.Publish(ctx, payloadJson)
}
