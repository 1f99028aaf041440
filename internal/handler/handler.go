package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artifact-catalog-service/internal/domain"
	"artifact-catalog-service/internal/usecase"
)

type Handler struct {
	artifactUC *usecase.ArtifactUseCase
	featureUC  *usecase.FeatureUseCase
}

func New(artifactUC *usecase.ArtifactUseCase, featureUC *usecase.FeatureUseCase) *Handler {
	return &Handler{artifactUC: artifactUC, featureUC: featureUC}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Artifacts
	r.GET("/artifacts", h.ListArtifacts)
	r.GET("/artifacts/:id", h.GetArtifact)
	r.POST("/artifacts", h.CreateArtifact)
	r.DELETE("/artifacts/:id", h.DeleteArtifact)
	r.PATCH("/artifacts/:id/version", h.SetArtifactVersion)

	// Artifact payloads
	r.GET("/artifacts/:id/data", h.GetArtifactData)
	r.PUT("/artifacts/:id/data", h.SaveArtifactData)
	r.POST("/artifacts/:id/data/pull", h.PullArtifactData)

	// Features (dataset column descriptors)
	r.GET("/artifacts/:id/features", h.ListFeatures)
	r.POST("/artifacts/:id/features", h.CreateFeature)
	r.PUT("/artifacts/:id/features", h.ReplaceFeatures)
	r.GET("/features/:id", h.GetFeature)
	r.DELETE("/features/:id", h.DeleteFeature)
}

func getProjectID(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("X-Project-ID")
	if raw == "" {
		return uuid.Nil, domain.ErrMissingProjectID
	}
	return uuid.Parse(raw)
}
