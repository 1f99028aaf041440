package domain

import (
	"context"

	"github.com/google/uuid"
)

type ArtifactListFilter struct {
	ProjectID uuid.UUID
	Type      string
	Tag       string
	Search    string
	SortBy    string
	Order     string
	Limit     int
	Offset    int
}

type ArtifactRepository interface {
	Create(ctx context.Context, artifact *Artifact) error
	GetByID(ctx context.Context, projectID uuid.UUID, id string) (*Artifact, error)
	List(ctx context.Context, filter ArtifactListFilter) ([]*Artifact, int, error)
	// UpdateVersion re-keys the row: the artifact id derives from the
	// version, so the stored id moves from oldID to artifact.ID().
	UpdateVersion(ctx context.Context, projectID uuid.UUID, oldID string, artifact *Artifact) error
	SaveData(ctx context.Context, projectID uuid.UUID, id string, data []byte) error
	Delete(ctx context.Context, projectID uuid.UUID, id string) error
}

type FeatureRepository interface {
	Create(ctx context.Context, feature *Feature) error
	GetByID(ctx context.Context, projectID uuid.UUID, id uuid.UUID) (*Feature, error)
	ListByArtifact(ctx context.Context, projectID uuid.UUID, artifactID string) ([]*Feature, error)
	ReplaceForArtifact(ctx context.Context, projectID uuid.UUID, artifactID string, features []*Feature) error
	Delete(ctx context.Context, projectID uuid.UUID, id uuid.UUID) error
}
