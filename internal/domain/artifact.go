package domain

import (
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

// DefaultArtifactVersion is assigned when an artifact is registered without
// an explicit version.
const DefaultArtifactVersion = "1.0.0"

// Artifact is a named, versioned binary blob tracked by the catalog. Its
// identity is derived from the asset path and the current version, so the
// version and asset path are kept behind accessors: the asset path never
// changes after construction and every version transition is validated.
type Artifact struct {
	ProjectID uuid.UUID      `json:"project_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Metadata  map[string]any `json:"metadata"`
	Tags      []string       `json:"tags"`

	version   string
	assetPath string
	data      []byte
}

// ArtifactParams carries the constructor arguments for NewArtifact.
type ArtifactParams struct {
	Name      string
	AssetPath string
	Data      []byte
	Type      string
	Metadata  map[string]any
	Tags      []string
	Version   string
}

// NewArtifact builds a validated artifact. Version defaults to
// DefaultArtifactVersion when unset; Metadata and Tags get a fresh empty
// container per instance so artifacts never share state. Data may be empty:
// a catalog row can exist before its bytes are pulled from the blob store.
func NewArtifact(p ArtifactParams) (*Artifact, error) {
	if p.Name == "" {
		return nil, ErrEmptyArtifactName
	}
	if p.AssetPath == "" {
		return nil, ErrMissingAssetPath
	}

	version := p.Version
	if version == "" {
		version = DefaultArtifactVersion
	}

	metadata := p.Metadata
	if metadata == nil {
		metadata = make(map[string]any)
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Artifact{
		Name:      p.Name,
		Type:      p.Type,
		Metadata:  metadata,
		Tags:      tags,
		version:   version,
		assetPath: p.AssetPath,
		data:      p.Data,
	}, nil
}

// Version returns the current version string.
func (a *Artifact) Version() string {
	return a.version
}

// SetVersion replaces the version. Empty versions are rejected with
// ErrInvalidVersion. Changing the version changes ID().
func (a *Artifact) SetVersion(version string) error {
	if version == "" {
		return ErrInvalidVersion
	}
	a.version = version
	return nil
}

// AssetPath returns where the artifact's bytes conceptually live. There is
// no setter; the path is fixed at construction.
func (a *Artifact) AssetPath() string {
	return a.assetPath
}

// ID derives the artifact identity: base64url(asset_path) + ":" + version.
// It is recomputed on every call and therefore always reflects the current
// version.
func (a *Artifact) ID() string {
	return base64.URLEncoding.EncodeToString([]byte(a.assetPath)) + ":" + a.version
}

// Read returns the current binary payload.
func (a *Artifact) Read() []byte {
	return a.data
}

// Save replaces the binary payload. It does not bump the version.
func (a *Artifact) Save(data []byte) {
	a.data = data
}
