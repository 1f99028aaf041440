package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"artifact-catalog-service/internal/domain"
)

type artifactRepo struct {
	pool *pgxpool.Pool
}

func NewArtifactRepository(pool *pgxpool.Pool) domain.ArtifactRepository {
	return &artifactRepo{pool: pool}
}

func (r *artifactRepo) Create(ctx context.Context, artifact *domain.Artifact) error {
	metadataJSON, err := json.Marshal(artifact.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	tagsJSON, err := json.Marshal(artifact.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	query := `
		INSERT INTO artifact_catalog_artifact
			(id, project_id, created_at, updated_at, name, type,
			 asset_path, version, metadata, tags, data)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`
	_, err = r.pool.Exec(ctx, query,
		artifact.ID(), artifact.ProjectID, artifact.CreatedAt, artifact.UpdatedAt,
		artifact.Name, artifact.Type, artifact.AssetPath(), artifact.Version(),
		metadataJSON, tagsJSON, artifact.Read(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrArtifactConflict
		}
		return fmt.Errorf("create artifact: %w", err)
	}
	return nil
}

func (r *artifactRepo) GetByID(ctx context.Context, projectID uuid.UUID, id string) (*domain.Artifact, error) {
	query := `
		SELECT a.project_id, a.created_at, a.updated_at, a.name, a.type,
			   a.asset_path, a.version, a.metadata, a.tags, a.data
		FROM artifact_catalog_artifact a
		WHERE a.id = $1 AND a.project_id = $2
	`
	artifact, err := scanArtifact(r.pool.QueryRow(ctx, query, id, projectID), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("get artifact by id: %w", err)
	}
	return artifact, nil
}

func (r *artifactRepo) List(ctx context.Context, filter domain.ArtifactListFilter) ([]*domain.Artifact, int, error) {
	conditions := []string{"a.project_id = $1"}
	args := []interface{}{filter.ProjectID}
	argPos := 2

	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("a.type = $%d", argPos))
		args = append(args, filter.Type)
		argPos++
	}
	if filter.Tag != "" {
		tagJSON, err := json.Marshal([]string{filter.Tag})
		if err != nil {
			return nil, 0, fmt.Errorf("marshal tag filter: %w", err)
		}
		conditions = append(conditions, fmt.Sprintf("a.tags @> $%d", argPos))
		args = append(args, tagJSON)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("a.name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM artifact_catalog_artifact a WHERE %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count artifacts: %w", err)
	}

	sortBy := "created_at"
	switch filter.SortBy {
	case "name", "version", "updated_at":
		sortBy = filter.SortBy
	}
	order := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		order = "ASC"
	}

	// Payload bytes stay out of list responses.
	query := fmt.Sprintf(`
		SELECT a.project_id, a.created_at, a.updated_at, a.name, a.type,
			   a.asset_path, a.version, a.metadata, a.tags
		FROM artifact_catalog_artifact a
		WHERE %s
		ORDER BY a.%s %s
		LIMIT $%d OFFSET $%d
	`, where, sortBy, order, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	artifacts := []*domain.Artifact{}
	for rows.Next() {
		artifact, err := scanArtifact(rows, false)
		if err != nil {
			return nil, 0, fmt.Errorf("scan artifact: %w", err)
		}
		artifacts = append(artifacts, artifact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list artifacts: %w", err)
	}

	return artifacts, total, nil
}

func (r *artifactRepo) UpdateVersion(ctx context.Context, projectID uuid.UUID, oldID string, artifact *domain.Artifact) error {
	query := `
		UPDATE artifact_catalog_artifact
		SET id=$1, version=$2, updated_at=NOW()
		WHERE id=$3 AND project_id=$4
	`
	result, err := r.pool.Exec(ctx, query, artifact.ID(), artifact.Version(), oldID, projectID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrArtifactConflict
		}
		return fmt.Errorf("update artifact version: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrArtifactNotFound
	}
	return nil
}

func (r *artifactRepo) SaveData(ctx context.Context, projectID uuid.UUID, id string, data []byte) error {
	query := `
		UPDATE artifact_catalog_artifact
		SET data=$1, updated_at=NOW()
		WHERE id=$2 AND project_id=$3
	`
	result, err := r.pool.Exec(ctx, query, data, id, projectID)
	if err != nil {
		return fmt.Errorf("save artifact data: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrArtifactNotFound
	}
	return nil
}

func (r *artifactRepo) Delete(ctx context.Context, projectID uuid.UUID, id string) error {
	query := `DELETE FROM artifact_catalog_artifact WHERE id = $1 AND project_id = $2`
	result, err := r.pool.Exec(ctx, query, id, projectID)
	if err != nil {
		return fmt.Errorf("delete artifact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrArtifactNotFound
	}
	return nil
}

func scanArtifact(row pgx.Row, withData bool) (*domain.Artifact, error) {
	var (
		projectID            uuid.UUID
		createdAt, updatedAt time.Time
		name, typ            string
		assetPath, version   string
		metadataJSON         []byte
		tagsJSON             []byte
		data                 []byte
	)

	dest := []interface{}{
		&projectID, &createdAt, &updatedAt, &name, &typ,
		&assetPath, &version, &metadataJSON, &tagsJSON,
	}
	if withData {
		dest = append(dest, &data)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	var metadata map[string]any
	if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	var tags []string
	if err := json.Unmarshal(tagsJSON, &tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}

	artifact, err := domain.NewArtifact(domain.ArtifactParams{
		Name:      name,
		AssetPath: assetPath,
		Data:      data,
		Type:      typ,
		Metadata:  metadata,
		Tags:      tags,
		Version:   version,
	})
	if err != nil {
		return nil, fmt.Errorf("rehydrate artifact: %w", err)
	}
	artifact.ProjectID = projectID
	artifact.CreatedAt = createdAt
	artifact.UpdatedAt = updatedAt
	return artifact, nil
}
