package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"artifact-catalog-service/internal/domain"
	"artifact-catalog-service/internal/dto"
)

func (h *Handler) ListArtifacts(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := domain.ArtifactListFilter{
		Type:   c.Query("type"),
		Tag:    c.Query("tag"),
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Offset: offset,
	}

	artifacts, total, err := h.artifactUC.List(c.Request.Context(), projectID, filter)
	if err != nil {
		log.WithError(err).Error("list artifacts failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ArtifactResponse, 0, len(artifacts))
	for _, a := range artifacts {
		items = append(items, dto.ToArtifactResponse(a))
	}

	c.JSON(http.StatusOK, dto.ListArtifactsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetArtifact(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	artifact, err := h.artifactUC.Get(c.Request.Context(), projectID, c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtifactResponse(artifact))
}

func (h *Handler) CreateArtifact(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	var req dto.CreateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := h.artifactUC.Create(c.Request.Context(), projectID, domain.ArtifactParams{
		Name:      req.Name,
		AssetPath: req.AssetPath,
		Data:      req.Data,
		Type:      req.Type,
		Metadata:  req.Metadata,
		Tags:      req.Tags,
		Version:   req.Version,
	})
	if err != nil {
		log.WithError(err).Error("create artifact failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToArtifactResponse(artifact))
}

func (h *Handler) SetArtifactVersion(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	var req dto.SetArtifactVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := h.artifactUC.SetVersion(c.Request.Context(), projectID, c.Param("id"), req.Version)
	if err != nil {
		log.WithError(err).Error("set artifact version failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtifactResponse(artifact))
}

func (h *Handler) GetArtifactData(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	artifact, err := h.artifactUC.Get(c.Request.Context(), projectID, c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/octet-stream", artifact.Read())
}

func (h *Handler) SaveArtifactData(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read request body: " + err.Error()})
		return
	}

	artifact, err := h.artifactUC.SaveData(c.Request.Context(), projectID, c.Param("id"), data)
	if err != nil {
		log.WithError(err).Error("save artifact data failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtifactResponse(artifact))
}

func (h *Handler) PullArtifactData(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	artifact, err := h.artifactUC.Pull(c.Request.Context(), projectID, c.Param("id"))
	if err != nil {
		log.WithError(err).Error("pull artifact data failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtifactResponse(artifact))
}

func (h *Handler) DeleteArtifact(c *gin.Context) {
	projectID, err := getProjectID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingProjectID.Error()})
		return
	}

	if err := h.artifactUC.Delete(c.Request.Context(), projectID, c.Param("id")); err != nil {
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
