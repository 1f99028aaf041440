package dto

import (
	"github.com/google/uuid"
)

type CreateArtifactRequest struct {
	Name      string         `json:"name" binding:"required,max=100"`
	AssetPath string         `json:"asset_path" binding:"required"`
	Data      []byte         `json:"data"`
	Type      string         `json:"type" binding:"required"`
	Metadata  map[string]any `json:"metadata"`
	Tags      []string       `json:"tags"`
	Version   string         `json:"version"`
}

// SetArtifactVersionRequest deliberately carries no binding tag on Version:
// an empty version must surface as the domain's invalid-version error, not a
// generic binding failure. Non-string payloads are still rejected by the
// typed field.
type SetArtifactVersionRequest struct {
	Version string `json:"version"`
}

type ArtifactResponse struct {
	ID        string         `json:"id"`
	ProjectID uuid.UUID      `json:"project_id"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	AssetPath string         `json:"asset_path"`
	Version   string         `json:"version"`
	Metadata  map[string]any `json:"metadata"`
	Tags      []string       `json:"tags"`
	SizeBytes int            `json:"size_bytes"`
}

type ListArtifactsResponse struct {
	Items      []ArtifactResponse `json:"items"`
	Total      int                `json:"total"`
	PageSize   int                `json:"page_size"`
	NextOffset int                `json:"next_offset"`
}
