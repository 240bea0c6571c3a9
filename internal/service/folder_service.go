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

type IFolderService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.CreateFolderResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowFolderResponse, error)
	GetUserFolders(ctx context.Context, userId uuid.UUID) ([]*dto.ShowFolderResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFolderRequest) (*dto.UpdateFolderResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type folderService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFolderService(uowFactory unitofwork.RepositoryFactory) IFolderService {
	return &folderService{
		uowFactory: uowFactory,
	}
}

func (s *folderService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.CreateFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.ParentId != nil {
		parent, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *req.ParentId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.NotFound("parent folder %s not found", req.ParentId)
		}
	}

	folder := entity.Folder{
		Id:        uuid.New(),
		Name:      req.Name,
		ParentId:  req.ParentId,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.FolderRepository().Create(ctx, &folder); err != nil {
		return nil, err
	}

	return &dto.CreateFolderResponse{Id: folder.Id}, nil
}

func (s *folderService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NotFound("folder %s not found", id)
	}

	return &dto.ShowFolderResponse{
		Id:        folder.Id,
		Name:      folder.Name,
		ParentId:  folder.ParentId,
		CreatedAt: folder.CreatedAt,
		UpdatedAt: folder.UpdatedAt,
	}, nil
}

func (s *folderService) GetUserFolders(ctx context.Context, userId uuid.UUID) ([]*dto.ShowFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folders, err := uow.FolderRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowFolderResponse, 0, len(folders))
	for _, folder := range folders {
		res = append(res, &dto.ShowFolderResponse{
			Id:        folder.Id,
			Name:      folder.Name,
			ParentId:  folder.ParentId,
			CreatedAt: folder.CreatedAt,
			UpdatedAt: folder.UpdatedAt,
		})
	}

	return res, nil
}

func (s *folderService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFolderRequest) (*dto.UpdateFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NotFound("folder %s not found", req.Id)
	}

	if req.ParentId != nil {
		if *req.ParentId == folder.Id {
			return nil, apperror.Validation("folder cannot be its own parent")
		}
		parent, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *req.ParentId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.NotFound("parent folder %s not found", req.ParentId)
		}
	}

	now := time.Now()
	folder.Name = req.Name
	folder.ParentId = req.ParentId
	folder.UpdatedAt = &now

	if err := uow.FolderRepository().Update(ctx, folder); err != nil {
		return nil, err
	}

	return &dto.UpdateFolderResponse{Id: folder.Id}, nil
}

func (s *folderService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if folder == nil {
		return apperror.NotFound("folder %s not found", id)
	}

	return uow.FolderRepository().Delete(ctx, id)
}
