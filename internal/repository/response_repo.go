package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mindful-ai/internal/domain"
)

// ResponseRepository persiste las respuestas crudas del cuestionario.
type ResponseRepository interface {
	Upsert(ctx context.Context, response domain.SurveyResponse) error
	Get(ctx context.Context, emailID string) (domain.SurveyResponse, error)
	Update(ctx context.Context, response domain.SurveyResponse) error
	Delete(ctx context.Context, emailID string) error
	ListEmails(ctx context.Context) ([]string, error)
}

type PgResponseRepository struct {
	pool *pgxpool.Pool
}

func NewPgResponseRepository(pool *pgxpool.Pool) *PgResponseRepository {
	return &PgResponseRepository{pool: pool}
}

func (r *PgResponseRepository) Upsert(ctx context.Context, response domain.SurveyResponse) error {
	const query = `
		INSERT INTO responses (email_id, data, features, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email_id) DO UPDATE
		SET data = EXCLUDED.data, features = EXCLUDED.features, updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		response.EmailID,
		response.Data,
		response.Features,
		response.UpdatedAt,
	)
	return err
}

func (r *PgResponseRepository) Get(ctx context.Context, emailID string) (domain.SurveyResponse, error) {
	const query = `
		SELECT email_id, data, features, updated_at
		FROM responses
		WHERE email_id = $1
	`
	var response domain.SurveyResponse
	err := r.pool.QueryRow(ctx, query, emailID).Scan(
		&response.EmailID,
		&response.Data,
		&response.Features,
		&response.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SurveyResponse{}, fmt.Errorf("%w: response for %s", domain.ErrNotFound, emailID)
	}
	return response, err
}

func (r *PgResponseRepository) Update(ctx context.Context, response domain.SurveyResponse) error {
	const query = `
		UPDATE responses
		SET data = $2, features = $3, updated_at = $4
		WHERE email_id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		response.EmailID,
		response.Data,
		response.Features,
		response.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: response for %s", domain.ErrNotFound, response.EmailID)
	}
	return nil
}

func (r *PgResponseRepository) Delete(ctx context.Context, emailID string) error {
	const query = `DELETE FROM responses WHERE email_id = $1`
	tag, err := r.pool.Exec(ctx, query, emailID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: response for %s", domain.ErrNotFound, emailID)
	}
	return nil
}

func (r *PgResponseRepository) ListEmails(ctx context.Context) ([]string, error) {
	const query = `SELECT email_id FROM responses ORDER BY email_id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
