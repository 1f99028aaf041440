package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"artifact-catalog-service/internal/domain"
)

// FeatureSpec is one requested column descriptor, unvalidated until it goes
// through domain.NewFeature.
type FeatureSpec struct {
	Name string
	Type string
}

type FeatureUseCase struct {
	featureRepo  domain.FeatureRepository
	artifactRepo domain.ArtifactRepository
}

func NewFeatureUseCase(featureRepo domain.FeatureRepository, artifactRepo domain.ArtifactRepository) *FeatureUseCase {
	return &FeatureUseCase{featureRepo: featureRepo, artifactRepo: artifactRepo}
}

func (uc *FeatureUseCase) Create(ctx context.Context, projectID uuid.UUID, artifactID string, spec FeatureSpec) (*domain.Feature, error) {
	if _, err := uc.artifactRepo.GetByID(ctx, projectID, artifactID); err != nil {
		return nil, err
	}

	feature, err := newFeatureRow(projectID, artifactID, spec)
	if err != nil {
		return nil, err
	}

	if err := uc.featureRepo.Create(ctx, feature); err != nil {
		return nil, err
	}
	return feature, nil
}

// Replace swaps the entire column set of a dataset artifact. All specs are
// validated before anything is written.
func (uc *FeatureUseCase) Replace(ctx context.Context, projectID uuid.UUID, artifactID string, specs []FeatureSpec) ([]*domain.Feature, error) {
	if _, err := uc.artifactRepo.GetByID(ctx, projectID, artifactID); err != nil {
		return nil, err
	}

	features := make([]*domain.Feature, 0, len(specs))
	for _, spec := range specs {
		feature, err := newFeatureRow(projectID, artifactID, spec)
		if err != nil {
			return nil, err
		}
		features = append(features, feature)
	}

	if err := uc.featureRepo.ReplaceForArtifact(ctx, projectID, artifactID, features); err != nil {
		return nil, err
	}
	return features, nil
}

func (uc *FeatureUseCase) Get(ctx context.Context, projectID uuid.UUID, id uuid.UUID) (*domain.Feature, error) {
	return uc.featureRepo.GetByID(ctx, projectID, id)
}

func (uc *FeatureUseCase) ListByArtifact(ctx context.Context, projectID uuid.UUID, artifactID string) ([]*domain.Feature, error) {
	if _, err := uc.artifactRepo.GetByID(ctx, projectID, artifactID); err != nil {
		return nil, err
	}
	return uc.featureRepo.ListByArtifact(ctx, projectID, artifactID)
}

func (uc *FeatureUseCase) Delete(ctx context.Context, projectID uuid.UUID, id uuid.UUID) error {
	return uc.featureRepo.Delete(ctx, projectID, id)
}

func newFeatureRow(projectID uuid.UUID, artifactID string, spec FeatureSpec) (*domain.Feature, error) {
	feature, err := domain.NewFeature(spec.Name, domain.FeatureType(spec.Type))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	feature.ID = uuid.New()
	feature.ProjectID = projectID
	feature.ArtifactID = artifactID
	feature.CreatedAt = now
	feature.UpdatedAt = now
	return feature, nil
}
