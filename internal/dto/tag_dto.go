package dto

import "github.com/google/uuid"

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

type CreateTagResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowTagResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UpdateTagRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required,max=64"`
}

type UpdateTagResponse struct {
	Id uuid.UUID `json:"id"`
}
