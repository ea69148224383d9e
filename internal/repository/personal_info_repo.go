package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mindful-ai/internal/domain"
)

// PersonalInfoRepository persiste los datos personales declarados.
type PersonalInfoRepository interface {
	Upsert(ctx context.Context, info domain.PersonalInfo) error
	Get(ctx context.Context, emailID string) (domain.PersonalInfo, error)
}

type PgPersonalInfoRepository struct {
	pool *pgxpool.Pool
}

func NewPgPersonalInfoRepository(pool *pgxpool.Pool) *PgPersonalInfoRepository {
	return &PgPersonalInfoRepository{pool: pool}
}

func (r *PgPersonalInfoRepository) Upsert(ctx context.Context, info domain.PersonalInfo) error {
	const query = `
		INSERT INTO personal_information
			(email_id, first_name, last_name, age, gender, marital_status, employment_status, education, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (email_id) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    age = EXCLUDED.age,
		    gender = EXCLUDED.gender,
		    marital_status = EXCLUDED.marital_status,
		    employment_status = EXCLUDED.employment_status,
		    education = EXCLUDED.education,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		info.EmailID,
		info.FirstName,
		info.LastName,
		info.Age,
		info.Gender,
		info.MaritalStatus,
		info.EmploymentStatus,
		info.Education,
		info.UpdatedAt,
	)
	return err
}

func (r *PgPersonalInfoRepository) Get(ctx context.Context, emailID string) (domain.PersonalInfo, error) {
	const query = `
		SELECT email_id, first_name, last_name, age, gender, marital_status, employment_status, education, updated_at
		FROM personal_information
		WHERE email_id = $1
	`
	var info domain.PersonalInfo
	err := r.pool.QueryRow(ctx, query, emailID).Scan(
		&info.EmailID,
		&info.FirstName,
		&info.LastName,
		&info.Age,
		&info.Gender,
		&info.MaritalStatus,
		&info.EmploymentStatus,
		&info.Education,
		&info.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.PersonalInfo{}, fmt.Errorf("%w: personal info for %s", domain.ErrNotFound, emailID)
	}
	return info, err
}
