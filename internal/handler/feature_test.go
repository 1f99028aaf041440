package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"artifact-catalog-service/internal/domain"
)

func storedFeature(t *testing.T, name string, ftype domain.FeatureType) *domain.Feature {
	t.Helper()
	feature, err := domain.NewFeature(name, ftype)
	assert.NoError(t, err)
	feature.ID = uuid.New()
	feature.CreatedAt = time.Now()
	feature.UpdatedAt = time.Now()
	return feature
}

func TestCreateFeature(t *testing.T) {
	artifactRepo, featureRepo, _, r := setupRouter()

	projectID := uuid.New()
	parent := storedArtifact(t, "1.0.0")

	artifactRepo.On("GetByID", mock.Anything, projectID, parent.ID()).Return(parent, nil)
	featureRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Feature")).Return(nil)

	body, _ := json.Marshal(map[string]any{"name": "age", "type": "numerical"})
	req, _ := http.NewRequest("POST", basePath+"/artifacts/"+parent.ID()+"/features", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Project-ID", projectID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "age", resp["name"])
	assert.Equal(t, "numerical", resp["type"])
	assert.Equal(t, "Feature(name='age', type='numerical')", resp["display"])
}

func TestCreateFeature_InvalidType(t *testing.T) {
	artifactRepo, featureRepo, _, r := setupRouter()

	projectID := uuid.New()
	parent := storedArtifact(t, "1.0.0")
	artifactRepo.On("GetByID", mock.Anything, projectID, parent.ID()).Return(parent, nil)

	body, _ := json.Marshal(map[string]any{"name": "gender", "type": "invalid_type"})
	req, _ := http.NewRequest("POST", basePath+"/artifacts/"+parent.ID()+"/features", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Project-ID", projectID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	featureRepo.AssertNotCalled(t, "Create")
}

func TestReplaceFeatures(t *testing.T) {
	artifactRepo, featureRepo, _, r := setupRouter()

	projectID := uuid.New()
	parent := storedArtifact(t, "1.0.0")

	artifactRepo.On("GetByID", mock.Anything, projectID, parent.ID()).Return(parent, nil)
	featureRepo.On("ReplaceForArtifact", mock.Anything, projectID, parent.ID(), mock.AnythingOfType("[]*domain.Feature")).Return(nil)

	body, _ := json.Marshal(map[string]any{
		"features": []map[string]any{
			{"name": "age", "type": "numerical"},
			{"name": "gender", "type": "categorical"},
		},
	})
	req, _ := http.NewRequest("PUT", basePath+"/artifacts/"+parent.ID()+"/features", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Project-ID", projectID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["total"])
}

func TestListFeatures(t *testing.T) {
	artifactRepo, featureRepo, _, r := setupRouter()

	projectID := uuid.New()
	parent := storedArtifact(t, "1.0.0")
	features := []*domain.Feature{storedFeature(t, "age", domain.FeatureTypeNumerical)}

	artifactRepo.On("GetByID", mock.Anything, projectID, parent.ID()).Return(parent, nil)
	featureRepo.On("ListByArtifact", mock.Anything, projectID, parent.ID()).Return(features, nil)

	req, _ := http.NewRequest("GET", basePath+"/artifacts/"+parent.ID()+"/features", nil)
	req.Header.Set("X-Project-ID", projectID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetFeature(t *testing.T) {
	_, featureRepo, _, r := setupRouter()

	projectID := uuid.New()
	feature := storedFeature(t, "age", domain.FeatureTypeNumerical)
	featureRepo.On("GetByID", mock.Anything, projectID, feature.ID).Return(feature, nil)

	req, _ := http.NewRequest("GET", basePath+"/features/"+feature.ID.String(), nil)
	req.Header.Set("X-Project-ID", projectID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetFeature_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter()

	req, _ := http.NewRequest("GET", basePath+"/features/not-a-uuid", nil)
	req.Header.Set("X-Project-ID", uuid.New().String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteFeature(t *testing.T) {
	_, featureRepo, _, r := setupRouter()

	projectID := uuid.New()
	id := uuid.New()
	featureRepo.On("Delete", mock.Anything, projectID, id).Return(nil)

	req, _ := http.NewRequest("DELETE", basePath+"/features/"+id.String(), nil)
	req.Header.Set("X-Project-ID", projectID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
