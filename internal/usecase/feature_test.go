package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"artifact-catalog-service/internal/domain"
	"artifact-catalog-service/internal/testutil"
)

func TestFeatureUseCase_Create(t *testing.T) {
	featureRepo := new(testutil.MockFeatureRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	uc := NewFeatureUseCase(featureRepo, artifactRepo)

	projectID := uuid.New()
	parent := storedArtifact(t, "1.0.0")

	artifactRepo.On("GetByID", mock.Anything, projectID, parent.ID()).Return(parent, nil)
	featureRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Feature")).Return(nil)

	result, err := uc.Create(context.Background(), projectID, parent.ID(), FeatureSpec{Name: "age", Type: "numerical"})
	assert.NoError(t, err)
	assert.Equal(t, "age", result.Name())
	assert.Equal(t, domain.FeatureTypeNumerical, result.Type())
	assert.Equal(t, parent.ID(), result.ArtifactID)
	assert.NotEqual(t, uuid.Nil, result.ID)
	featureRepo.AssertExpectations(t)
}

func TestFeatureUseCase_Create_InvalidType(t *testing.T) {
	featureRepo := new(testutil.MockFeatureRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	uc := NewFeatureUseCase(featureRepo, artifactRepo)

	projectID := uuid.New()
	parent := storedArtifact(t, "1.0.0")
	artifactRepo.On("GetByID", mock.Anything, projectID, parent.ID()).Return(parent, nil)

	_, err := uc.Create(context.Background(), projectID, parent.ID(), FeatureSpec{Name: "gender", Type: "invalid_type"})
	assert.ErrorIs(t, err, domain.ErrInvalidFeatureType)
	featureRepo.AssertNotCalled(t, "Create")
}

func TestFeatureUseCase_Create_ParentMissing(t *testing.T) {
	featureRepo := new(testutil.MockFeatureRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	uc := NewFeatureUseCase(featureRepo, artifactRepo)

	projectID := uuid.New()
	artifactRepo.On("GetByID", mock.Anything, projectID, "missing").Return(nil, domain.ErrArtifactNotFound)

	_, err := uc.Create(context.Background(), projectID, "missing", FeatureSpec{Name: "age", Type: "numerical"})
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestFeatureUseCase_Replace(t *testing.T) {
	featureRepo := new(testutil.MockFeatureRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	uc := NewFeatureUseCase(featureRepo, artifactRepo)

	projectID := uuid.New()
	parent := storedArtifact(t, "1.0.0")

	artifactRepo.On("GetByID", mock.Anything, projectID, parent.ID()).Return(parent, nil)
	featureRepo.On("ReplaceForArtifact", mock.Anything, projectID, parent.ID(), mock.AnythingOfType("[]*domain.Feature")).Return(nil)

	result, err := uc.Replace(context.Background(), projectID, parent.ID(), []FeatureSpec{
		{Name: "age", Type: "numerical"},
		{Name: "gender", Type: "categorical"},
	})
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Feature(name='age', type='numerical')", result[0].String())
	featureRepo.AssertExpectations(t)
}

func TestFeatureUseCase_Replace_InvalidSpec(t *testing.T) {
	featureRepo := new(testutil.MockFeatureRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	uc := NewFeatureUseCase(featureRepo, artifactRepo)

	projectID := uuid.New()
	parent := storedArtifact(t, "1.0.0")
	artifactRepo.On("GetByID", mock.Anything, projectID, parent.ID()).Return(parent, nil)

	_, err := uc.Replace(context.Background(), projectID, parent.ID(), []FeatureSpec{
		{Name: "age", Type: "numerical"},
		{Name: "", Type: "categorical"},
	})
	assert.ErrorIs(t, err, domain.ErrEmptyFeatureName)
	featureRepo.AssertNotCalled(t, "ReplaceForArtifact")
}

func TestFeatureUseCase_Get(t *testing.T) {
	featureRepo := new(testutil.MockFeatureRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	uc := NewFeatureUseCase(featureRepo, artifactRepo)

	projectID := uuid.New()
	id := uuid.New()
	feature, err := domain.NewFeature("age", domain.FeatureTypeNumerical)
	assert.NoError(t, err)
	feature.ID = id

	featureRepo.On("GetByID", mock.Anything, projectID, id).Return(feature, nil)

	result, err := uc.Get(context.Background(), projectID, id)
	assert.NoError(t, err)
	assert.Equal(t, "age", result.Name())
}

func TestFeatureUseCase_ListByArtifact(t *testing.T) {
	featureRepo := new(testutil.MockFeatureRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	uc := NewFeatureUseCase(featureRepo, artifactRepo)

	projectID := uuid.New()
	parent := storedArtifact(t, "1.0.0")
	feature, err := domain.NewFeature("age", domain.FeatureTypeNumerical)
	assert.NoError(t, err)

	artifactRepo.On("GetByID", mock.Anything, projectID, parent.ID()).Return(parent, nil)
	featureRepo.On("ListByArtifact", mock.Anything, projectID, parent.ID()).Return([]*domain.Feature{feature}, nil)

	result, err := uc.ListByArtifact(context.Background(), projectID, parent.ID())
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}
