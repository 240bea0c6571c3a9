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

func TestTagLifecycle(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := NewTagService(factory)

	created, err := svc.Create(ctx, &dto.CreateTagRequest{Name: "work"})
	assert.NoError(t, err)

	shown, err := svc.Show(ctx, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "work", shown.Name)

	_, err = svc.Update(ctx, &dto.UpdateTagRequest{Id: created.Id, Name: "office"})
	assert.NoError(t, err)

	tags, err := svc.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Equal(t, "office", tags[0].Name)

	assert.NoError(t, svc.Delete(ctx, created.Id))
	_, err = svc.Show(ctx, created.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestTagDuplicateName(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := NewTagService(factory)

	_, err := svc.Create(ctx, &dto.CreateTagRequest{Name: "work"})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, &dto.CreateTagRequest{Name: "work"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestTagUnknownId(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := NewTagService(factory)

	_, err := svc.Show(ctx, uuid.New())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	err = svc.Delete(ctx, uuid.New())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
