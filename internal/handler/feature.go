package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"artifact-catalog-service/internal/domain"
	"artifact-catalog-service/internal/dto"
	"artifact-catalog-service/internal/usecase"
)

func (h *Handler) ListFeatures(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	features, err := h.featureUC.ListByArtifact(c.Request.Context(), projectID, c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := make([]dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		items = append(items, dto.ToFeatureResponse(f))
	}

	c.JSON(http.StatusOK, dto.ListFeaturesResponse{Items: items, Total: len(items)})
}

func (h *Handler) CreateFeature(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	var req dto.CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feature, err := h.featureUC.Create(c.Request.Context(), projectID, c.Param("id"),
		usecase.FeatureSpec{Name: req.Name, Type: req.Type})
	if err != nil {
		log.WithError(err).Error("create feature failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeatureResponse(feature))
}

func (h *Handler) ReplaceFeatures(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	var req dto.ReplaceFeaturesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	specs := make([]usecase.FeatureSpec, 0, len(req.Features))
	for _, f := range req.Features {
		specs = append(specs, usecase.FeatureSpec{Name: f.Name, Type: f.Type})
	}

	features, err := h.featureUC.Replace(c.Request.Context(), projectID, c.Param("id"), specs)
	if err != nil {
		log.WithError(err).Error("replace features failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		items = append(items, dto.ToFeatureResponse(f))
	}

	c.JSON(http.StatusOK, dto.ListFeaturesResponse{Items: items, Total: len(items)})
}

func (h *Handler) GetFeature(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feature id"})
		return
	}

	feature, err := h.featureUC.Get(c.Request.Context(), projectID, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeatureResponse(feature))
}

func (h *Handler) DeleteFeature(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feature id"})
		return
	}

	if err := h.featureUC.Delete(c.Request.Context(), projectID, id); err != nil {
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
