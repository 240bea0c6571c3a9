package service

import (
	"context"
	"testing"

	"notemark-be/internal/apperror"
	"notemark-be/internal/dto"
	"notemark-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFolderLifecycle(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := NewFolderService(factory)
	userId := uuid.New()

	parent, err := svc.Create(ctx, userId, &dto.CreateFolderRequest{Name: "work"})
	assert.NoError(t, err)

	child, err := svc.Create(ctx, userId, &dto.CreateFolderRequest{Name: "projects", ParentId: &parent.Id})
	assert.NoError(t, err)

	shown, err := svc.Show(ctx, userId, child.Id)
	assert.NoError(t, err)
	assert.Equal(t, "projects", shown.Name)
	assert.Equal(t, parent.Id, *shown.ParentId)

	folders, err := svc.GetUserFolders(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, folders, 2)

	_, err = svc.Update(ctx, userId, &dto.UpdateFolderRequest{Id: child.Id, Name: "archive"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, userId, child.Id))
	_, err = svc.Show(ctx, userId, child.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestFolderValidation(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := NewFolderService(factory)
	userId := uuid.New()

	t.Run("unknown parent is not found", func(t *testing.T) {
		missing := uuid.New()
		_, err := svc.Create(ctx, userId, &dto.CreateFolderRequest{Name: "orphan", ParentId: &missing})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("folder cannot parent itself", func(t *testing.T) {
		folder, err := svc.Create(ctx, userId, &dto.CreateFolderRequest{Name: "loop"})
		assert.NoError(t, err)

		_, err = svc.Update(ctx, userId, &dto.UpdateFolderRequest{Id: folder.Id, Name: "loop", ParentId: &folder.Id})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("other users cannot see the folder", func(t *testing.T) {
		folder, err := svc.Create(ctx, userId, &dto.CreateFolderRequest{Name: "private"})
		assert.NoError(t, err)

		_, err = svc.Show(ctx, uuid.New(), folder.Id)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}
