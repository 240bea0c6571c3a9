package service

import (
	"context"
	"fmt"

	"notemark-be/internal/apperror"
	"notemark-be/internal/dto"
	"notemark-be/internal/pkg/serverutils"
	"notemark-be/internal/repository/specification"
	"notemark-be/internal/repository/unitofwork"
	"notemark-be/pkg/markdown"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type IRenderService interface {
	// Render returns the note's content as sanitized HTML together with the
	// ETag of the content it was rendered from.
	Render(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) (*dto.RenderNoteResponse, string, error)
	// RenderToCache pre-renders a note into the cache (the consumer path).
	RenderToCache(ctx context.Context, noteId uuid.UUID) error
}

type renderService struct {
	uowFactory  unitofwork.RepositoryFactory
	renderer    *markdown.Renderer
	renderCache *cache.Cache
}

func NewRenderService(uowFactory unitofwork.RepositoryFactory, renderer *markdown.Renderer, renderCache *cache.Cache) IRenderService {
	return &renderService{
		uowFactory:  uowFactory,
		renderer:    renderer,
		renderCache: renderCache,
	}
}

// renderCacheKey includes the content's etag so a stale entry can never be
// served for edited content.
func renderCacheKey(noteId uuid.UUID, content string) string {
	return fmt.Sprintf("render:%s:%s", noteId, serverutils.GenerateETag(content))
}

func (s *renderService) Render(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) (*dto.RenderNoteResponse, string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, "", err
	}
	if note == nil {
		return nil, "", apperror.NotFound("note %s not found", noteId)
	}

	etag := serverutils.GenerateETag(note.Content)
	key := renderCacheKey(noteId, note.Content)

	if cached, found := s.renderCache.Get(key); found {
		return &dto.RenderNoteResponse{NoteId: note.Id, Html: cached.(string)}, etag, nil
	}

	html, err := s.renderer.Render(note.Content)
	if err != nil {
		return nil, "", err
	}
	s.renderCache.Set(key, html, cache.DefaultExpiration)

	return &dto.RenderNoteResponse{NoteId: note.Id, Html: html}, etag, nil
}

func (s *renderService) RenderToCache(ctx context.Context, noteId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NotFound("note %s not found", noteId)
	}

	html, err := s.renderer.Render(note.Content)
	if err != nil {
		return err
	}
	s.renderCache.Set(renderCacheKey(noteId, note.Content), html, cache.DefaultExpiration)

	return nil
}
