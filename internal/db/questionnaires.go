package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skillgenie/skillgenie/internal/types"
)

// SaveQuestionnaire upserts the single questionnaire record for a namespace.
// Overwrite semantics: each namespace holds at most one record.
func (db *DB) SaveQuestionnaire(ctx context.Context, namespace string, stored *types.StoredQuestionnaire) error {
	record, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal questionnaire: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO questionnaires (namespace, record)
		 VALUES ($1, $2)
		 ON CONFLICT (namespace) DO UPDATE SET record = $2, updated_at = NOW()`,
		namespace, record,
	)
	if err != nil {
		return fmt.Errorf("failed to save questionnaire: %w", err)
	}
	return nil
}

// LoadQuestionnaire returns the questionnaire for a namespace, or
// (nil, nil) when none exists or the stored record cannot be decoded.
func (db *DB) LoadQuestionnaire(ctx context.Context, namespace string) (*types.StoredQuestionnaire, error) {
	var record []byte
	err := db.pool.QueryRow(ctx,
		`SELECT record FROM questionnaires WHERE namespace = $1`,
		namespace,
	).Scan(&record)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load questionnaire: %w", err)
	}

	var stored types.StoredQuestionnaire
	if err := json.Unmarshal(record, &stored); err != nil {
		// Undecodable rows count as absent, same as the file store.
		return nil, nil
	}
	return &stored, nil
}

// ClearQuestionnaire removes the questionnaire for a namespace. Idempotent.
func (db *DB) ClearQuestionnaire(ctx context.Context, namespace string) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM questionnaires WHERE namespace = $1`,
		namespace,
	)
	if err != nil {
		return fmt.Errorf("failed to clear questionnaire: %w", err)
	}
	return nil
}
