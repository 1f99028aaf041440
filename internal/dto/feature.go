package dto

import (
	"github.com/google/uuid"
)

type CreateFeatureRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Type string `json:"type" binding:"required"`
}

type ReplaceFeaturesRequest struct {
	Features []CreateFeatureRequest `json:"features" binding:"required,dive"`
}

type FeatureResponse struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	ArtifactID string    `json:"artifact_id"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Display    string    `json:"display"`
}

type ListFeaturesResponse struct {
	Items []FeatureResponse `json:"items"`
	Total int               `json:"total"`
}
