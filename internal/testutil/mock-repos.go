package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"artifact-catalog-service/internal/domain"
)

// MockArtifactRepo is a mock of ArtifactRepository.
type MockArtifactRepo struct {
	mock.Mock
}

func (m *MockArtifactRepo) Create(ctx context.Context, artifact *domain.Artifact) error {
	args := m.Called(ctx, artifact)
	return args.Error(0)
}

func (m *MockArtifactRepo) GetByID(ctx context.Context, projectID uuid.UUID, id string) (*domain.Artifact, error) {
	args := m.Called(ctx, projectID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

func (m *MockArtifactRepo) List(ctx context.Context, filter domain.ArtifactListFilter) ([]*domain.Artifact, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Artifact), args.Int(1), args.Error(2)
}

func (m *MockArtifactRepo) UpdateVersion(ctx context.Context, projectID uuid.UUID, oldID string, artifact *domain.Artifact) error {
	args := m.Called(ctx, projectID, oldID, artifact)
	return args.Error(0)
}

func (m *MockArtifactRepo) SaveData(ctx context.Context, projectID uuid.UUID, id string, data []byte) error {
	args := m.Called(ctx, projectID, id, data)
	return args.Error(0)
}

func (m *MockArtifactRepo) Delete(ctx context.Context, projectID uuid.UUID, id string) error {
	args := m.Called(ctx, projectID, id)
	return args.Error(0)
}

// MockFeatureRepo is a mock of FeatureRepository.
type MockFeatureRepo struct {
	mock.Mock
}

func (m *MockFeatureRepo) Create(ctx context.Context, feature *domain.Feature) error {
	args := m.Called(ctx, feature)
	return args.Error(0)
}

func (m *MockFeatureRepo) GetByID(ctx context.Context, projectID uuid.UUID, id uuid.UUID) (*domain.Feature, error) {
	args := m.Called(ctx, projectID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feature), args.Error(1)
}

func (m *MockFeatureRepo) ListByArtifact(ctx context.Context, projectID uuid.UUID, artifactID string) ([]*domain.Feature, error) {
	args := m.Called(ctx, projectID, artifactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Feature), args.Error(1)
}

func (m *MockFeatureRepo) ReplaceForArtifact(ctx context.Context, projectID uuid.UUID, artifactID string, features []*domain.Feature) error {
	args := m.Called(ctx, projectID, artifactID, features)
	return args.Error(0)
}

func (m *MockFeatureRepo) Delete(ctx context.Context, projectID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, projectID, id)
	return args.Error(0)
}

// MockBlobStore is a mock of the usecase BlobStore port.
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Fetch(ctx context.Context, assetPath string) ([]byte, error) {
	args := m.Called(ctx, assetPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
