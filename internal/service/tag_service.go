package service

import (
	"context"
	"time"

	"notemark-be/internal/apperror"
	"notemark-be/internal/dto"
	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"
	"notemark-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITagService interface {
	Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.CreateTagResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowTagResponse, error)
	GetAll(ctx context.Context) ([]*dto.ShowTagResponse, error)
	Update(ctx context.Context, req *dto.UpdateTagRequest) (*dto.UpdateTagResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTagService(uowFactory unitofwork.RepositoryFactory) ITagService {
	return &tagService{
		uowFactory: uowFactory,
	}
}

func (s *tagService) Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.CreateTagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.TagRepository().FindOne(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Validation("tag %q already exists", req.Name)
	}

	tag := entity.Tag{
		Id:        uuid.New(),
		Name:      req.Name,
		CreatedAt: time.Now(),
	}

	if err := uow.TagRepository().Create(ctx, &tag); err != nil {
		return nil, err
	}

	return &dto.CreateTagResponse{Id: tag.Id}, nil
}

func (s *tagService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowTagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, apperror.NotFound("tag %s not found", id)
	}

	return &dto.ShowTagResponse{Id: tag.Id, Name: tag.Name}, nil
}

func (s *tagService) GetAll(ctx context.Context) ([]*dto.ShowTagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.TagRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowTagResponse, 0, len(tags))
	for _, tag := range tags {
		res = append(res, &dto.ShowTagResponse{Id: tag.Id, Name: tag.Name})
	}

	return res, nil
}

func (s *tagService) Update(ctx context.Context, req *dto.UpdateTagRequest) (*dto.UpdateTagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, apperror.NotFound("tag %s not found", req.Id)
	}

	now := time.Now()
	tag.Name = req.Name
	tag.UpdatedAt = &now

	if err := uow.TagRepository().Update(ctx, tag); err != nil {
		return nil, err
	}

	return &dto.UpdateTagResponse{Id: tag.Id}, nil
}

func (s *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if tag == nil {
		return apperror.NotFound("tag %s not found", id)
	}

	return uow.TagRepository().Delete(ctx, id)
}
