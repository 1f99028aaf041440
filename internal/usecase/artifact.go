package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"artifact-catalog-service/internal/domain"
)

// BlobStore reads artifact bytes from the external object store that owns
// the recorded asset paths.
type BlobStore interface {
	Fetch(ctx context.Context, assetPath string) ([]byte, error)
}

type ArtifactUseCase struct {
	repo      domain.ArtifactRepository
	blobStore BlobStore
}

func NewArtifactUseCase(repo domain.ArtifactRepository, blobStore BlobStore) *ArtifactUseCase {
	return &ArtifactUseCase{repo: repo, blobStore: blobStore}
}

func (uc *ArtifactUseCase) Create(ctx context.Context, projectID uuid.UUID, params domain.ArtifactParams) (*domain.Artifact, error) {
	artifact, err := domain.NewArtifact(params)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	artifact.ProjectID = projectID
	artifact.CreatedAt = now
	artifact.UpdatedAt = now

	if err := uc.repo.Create(ctx, artifact); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(ctx, projectID, artifact.ID())
}

func (uc *ArtifactUseCase) Get(ctx context.Context, projectID uuid.UUID, id string) (*domain.Artifact, error) {
	return uc.repo.GetByID(ctx, projectID, id)
}

func (uc *ArtifactUseCase) List(ctx context.Context, projectID uuid.UUID, filter domain.ArtifactListFilter) ([]*domain.Artifact, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	filter.ProjectID = projectID
	return uc.repo.List(ctx, filter)
}

// SetVersion applies a validated version transition. The artifact id derives
// from the version, so the row is re-keyed under the new id.
func (uc *ArtifactUseCase) SetVersion(ctx context.Context, projectID uuid.UUID, id string, version string) (*domain.Artifact, error) {
	artifact, err := uc.repo.GetByID(ctx, projectID, id)
	if err != nil {
		return nil, err
	}

	oldID := artifact.ID()
	if err := artifact.SetVersion(version); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateVersion(ctx, projectID, oldID, artifact); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(ctx, projectID, artifact.ID())
}

func (uc *ArtifactUseCase) SaveData(ctx context.Context, projectID uuid.UUID, id string, data []byte) (*domain.Artifact, error) {
	artifact, err := uc.repo.GetByID(ctx, projectID, id)
	if err != nil {
		return nil, err
	}

	artifact.Save(data)
	if err := uc.repo.SaveData(ctx, projectID, id, artifact.Read()); err != nil {
		return nil, err
	}
	return artifact, nil
}

// Pull hydrates the artifact payload from the blob store using the recorded
// asset path.
func (uc *ArtifactUseCase) Pull(ctx context.Context, projectID uuid.UUID, id string) (*domain.Artifact, error) {
	if uc.blobStore == nil {
		return nil, domain.ErrBlobStoreUnavailable
	}

	artifact, err := uc.repo.GetByID(ctx, projectID, id)
	if err != nil {
		return nil, err
	}

	data, err := uc.blobStore.Fetch(ctx, artifact.AssetPath())
	if err != nil {
		return nil, err
	}

	artifact.Save(data)
	if err := uc.repo.SaveData(ctx, projectID, id, artifact.Read()); err != nil {
		return nil, err
	}
	return artifact, nil
}

func (uc *ArtifactUseCase) Delete(ctx context.Context, projectID uuid.UUID, id string) error {
	return uc.repo.Delete(ctx, projectID, id)
}
