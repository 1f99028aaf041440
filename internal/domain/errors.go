package domain

import "errors"

var (
	ErrInvalidVersion    = errors.New("version must be a non-empty string")
	ErrEmptyArtifactName = errors.New("artifact name is required")
	ErrMissingAssetPath  = errors.New("artifact asset path is required")
	ErrArtifactNotFound  = errors.New("artifact not found")
	ErrArtifactConflict  = errors.New("artifact with this asset path and version already exists in the project")

	ErrEmptyFeatureName   = errors.New("feature name is required")
	ErrInvalidFeatureType = errors.New("feature type must be 'categorical' or 'numerical'")
	ErrFeatureNotFound    = errors.New("feature not found")
	ErrFeatureConflict    = errors.New("feature with this name already exists for this artifact")

	ErrMissingProjectID     = errors.New("project ID is required (X-Project-ID header)")
	ErrAssetNotFound        = errors.New("asset not found in blob store")
	ErrBlobStoreUnavailable = errors.New("blob store not available")
)
