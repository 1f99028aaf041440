package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type FeatureType string

const (
	FeatureTypeCategorical FeatureType = "categorical"
	FeatureTypeNumerical   FeatureType = "numerical"
)

// Feature describes one column of a dataset artifact. The name and type are
// validated at construction and immutable afterward.
type Feature struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	ArtifactID string    `json:"artifact_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	name  string
	ftype FeatureType
}

func NewFeature(name string, ftype FeatureType) (*Feature, error) {
	if name == "" {
		return nil, ErrEmptyFeatureName
	}
	if ftype != FeatureTypeCategorical && ftype != FeatureTypeNumerical {
		return nil, ErrInvalidFeatureType
	}
	return &Feature{name: name, ftype: ftype}, nil
}

func (f *Feature) Name() string {
	return f.name
}

func (f *Feature) Type() FeatureType {
	return f.ftype
}

func (f *Feature) String() string {
	return fmt.Sprintf("Feature(name='%s', type='%s')", f.name, f.ftype)
}
