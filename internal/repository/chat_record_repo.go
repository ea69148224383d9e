package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mindful-ai/internal/domain"
)

// ChatRecordRepository persiste transcripciones de conversaciones terminadas.
type ChatRecordRepository interface {
	Create(ctx context.Context, record domain.ChatRecord) error
	ListByEmail(ctx context.Context, emailID string) ([]domain.ChatRecord, error)
}

type PgChatRecordRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRecordRepository(pool *pgxpool.Pool) *PgChatRecordRepository {
	return &PgChatRecordRepository{pool: pool}
}

func (r *PgChatRecordRepository) Create(ctx context.Context, record domain.ChatRecord) error {
	historyJSON, err := json.Marshal(record.History)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	inferenceJSON, err := json.Marshal(record.Inference)
	if err != nil {
		return fmt.Errorf("marshal inference: %w", err)
	}

	const query = `
		INSERT INTO chats (id, email_id, history, inference, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.pool.Exec(ctx, query,
		record.ID,
		record.EmailID,
		historyJSON,
		inferenceJSON,
		record.CreatedAt,
	)
	return err
}

func (r *PgChatRecordRepository) ListByEmail(ctx context.Context, emailID string) ([]domain.ChatRecord, error) {
	const query = `
		SELECT id, email_id, history, inference, created_at
		FROM chats
		WHERE email_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, emailID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ChatRecord
	for rows.Next() {
		var (
			record        domain.ChatRecord
			historyJSON   []byte
			inferenceJSON []byte
		)
		if err := rows.Scan(&record.ID, &record.EmailID, &historyJSON, &inferenceJSON, &record.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(historyJSON, &record.History); err != nil {
			return nil, fmt.Errorf("unmarshal history for chat %s: %w", record.ID, err)
		}
		if err := json.Unmarshal(inferenceJSON, &record.Inference); err != nil {
			return nil, fmt.Errorf("unmarshal inference for chat %s: %w", record.ID, err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
