package dto

import (
	"time"

	"artifact-catalog-service/internal/domain"
)

const timeFormat = time.RFC3339

func ToArtifactResponse(a *domain.Artifact) ArtifactResponse {
	return ArtifactResponse{
		ID:        a.ID(),
		ProjectID: a.ProjectID,
		CreatedAt: a.CreatedAt.Format(timeFormat),
		UpdatedAt: a.UpdatedAt.Format(timeFormat),
		Name:      a.Name,
		Type:      a.Type,
		AssetPath: a.AssetPath(),
		Version:   a.Version(),
		Metadata:  a.Metadata,
		Tags:      a.Tags,
		SizeBytes: len(a.Read()),
	}
}

func ToFeatureResponse(f *domain.Feature) FeatureResponse {
	return FeatureResponse{
		ID:         f.ID,
		ProjectID:  f.ProjectID,
		ArtifactID: f.ArtifactID,
		CreatedAt:  f.CreatedAt.Format(timeFormat),
		UpdatedAt:  f.UpdatedAt.Format(timeFormat),
		Name:       f.Name(),
		Type:       string(f.Type()),
		Display:    f.String(),
	}
}
