package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"artifact-catalog-service/internal/domain"
)

type featureRepo struct {
	pool *pgxpool.Pool
}

func NewFeatureRepository(pool *pgxpool.Pool) domain.FeatureRepository {
	return &featureRepo{pool: pool}
}

const insertFeatureQuery = `
	INSERT INTO artifact_catalog_feature
		(id, project_id, artifact_id, name, type, created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7)
`

func (r *featureRepo) Create(ctx context.Context, feature *domain.Feature) error {
	_, err := r.pool.Exec(ctx, insertFeatureQuery,
		feature.ID, feature.ProjectID, feature.ArtifactID,
		feature.Name(), string(feature.Type()),
		feature.CreatedAt, feature.UpdatedAt,
	)
	if err != nil {
		return mapFeatureError(err, "create feature")
	}
	return nil
}

func (r *featureRepo) GetByID(ctx context.Context, projectID uuid.UUID, id uuid.UUID) (*domain.Feature, error) {
	query := `
		SELECT f.id, f.project_id, f.artifact_id, f.name, f.type,
			   f.created_at, f.updated_at
		FROM artifact_catalog_feature f
		WHERE f.id = $1 AND f.project_id = $2
	`
	feature, err := scanFeature(r.pool.QueryRow(ctx, query, id, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFeatureNotFound
		}
		return nil, fmt.Errorf("get feature by id: %w", err)
	}
	return feature, nil
}

func (r *featureRepo) ListByArtifact(ctx context.Context, projectID uuid.UUID, artifactID string) ([]*domain.Feature, error) {
	query := `
		SELECT f.id, f.project_id, f.artifact_id, f.name, f.type,
			   f.created_at, f.updated_at
		FROM artifact_catalog_feature f
		WHERE f.artifact_id = $1 AND f.project_id = $2
		ORDER BY f.created_at, f.name
	`
	rows, err := r.pool.Query(ctx, query, artifactID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	defer rows.Close()

	features := []*domain.Feature{}
	for rows.Next() {
		feature, err := scanFeature(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feature: %w", err)
		}
		features = append(features, feature)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	return features, nil
}

// ReplaceForArtifact swaps the whole column set of a dataset artifact in one
// transaction.
func (r *featureRepo) ReplaceForArtifact(ctx context.Context, projectID uuid.UUID, artifactID string, features []*domain.Feature) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace features: %w", err)
	}
	defer tx.Rollback(ctx)

	deleteQuery := `DELETE FROM artifact_catalog_feature WHERE artifact_id = $1 AND project_id = $2`
	if _, err := tx.Exec(ctx, deleteQuery, artifactID, projectID); err != nil {
		return fmt.Errorf("clear features: %w", err)
	}

	for _, feature := range features {
		_, err := tx.Exec(ctx, insertFeatureQuery,
			feature.ID, feature.ProjectID, feature.ArtifactID,
			feature.Name(), string(feature.Type()),
			feature.CreatedAt, feature.UpdatedAt,
		)
		if err != nil {
			return mapFeatureError(err, "replace feature")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace features: %w", err)
	}
	return nil
}

func (r *featureRepo) Delete(ctx context.Context, projectID uuid.UUID, id uuid.UUID) error {
	query := `DELETE FROM artifact_catalog_feature WHERE id = $1 AND project_id = $2`
	result, err := r.pool.Exec(ctx, query, id, projectID)
	if err != nil {
		return fmt.Errorf("delete feature: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrFeatureNotFound
	}
	return nil
}

func scanFeature(row pgx.Row) (*domain.Feature, error) {
	var (
		id, projectID        uuid.UUID
		artifactID           string
		name, typ            string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &projectID, &artifactID, &name, &typ, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	feature, err := domain.NewFeature(name, domain.FeatureType(typ))
	if err != nil {
		return nil, fmt.Errorf("rehydrate feature: %w", err)
	}
	feature.ID = id
	feature.ProjectID = projectID
	feature.ArtifactID = artifactID
	feature.CreatedAt = createdAt
	feature.UpdatedAt = updatedAt
	return feature, nil
}

func mapFeatureError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return domain.ErrFeatureConflict
		case "23503":
			return domain.ErrArtifactNotFound
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
