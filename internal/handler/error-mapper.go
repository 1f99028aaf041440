package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"artifact-catalog-service/internal/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrArtifactNotFound),
		errors.Is(err, domain.ErrFeatureNotFound),
		errors.Is(err, domain.ErrAssetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrArtifactConflict),
		errors.Is(err, domain.ErrFeatureConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidVersion),
		errors.Is(err, domain.ErrEmptyArtifactName),
		errors.Is(err, domain.ErrMissingAssetPath),
		errors.Is(err, domain.ErrEmptyFeatureName),
		errors.Is(err, domain.ErrInvalidFeatureType),
		errors.Is(err, domain.ErrMissingProjectID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrBlobStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
