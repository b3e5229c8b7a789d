package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skillgenie/skillgenie/internal/prefs"
	"github.com/skillgenie/skillgenie/internal/types"
)

// QuestionnaireStore adapts the database to the prefs.Store contract for a
// single namespace.
type QuestionnaireStore struct {
	db        *DB
	namespace string
}

var _ prefs.Store = (*QuestionnaireStore)(nil)

// NewQuestionnaireStore creates a store over db. An empty namespace uses the
// fixed default key.
func NewQuestionnaireStore(db *DB, namespace string) *QuestionnaireStore {
	if namespace == "" {
		namespace = prefs.NamespaceKey
	}
	return &QuestionnaireStore{db: db, namespace: namespace}
}

// Save stamps and persists the record, overwriting any prior one.
func (s *QuestionnaireStore) Save(ctx context.Context, record types.QuestionnaireRecord) (*types.StoredQuestionnaire, error) {
	stored := &types.StoredQuestionnaire{
		ID:                  uuid.New(),
		CreatedAt:           time.Now().UTC(),
		QuestionnaireRecord: record,
	}
	if err := s.db.SaveQuestionnaire(ctx, s.namespace, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// Load returns the stored record, or prefs.ErrNoRecord.
func (s *QuestionnaireStore) Load(ctx context.Context) (*types.StoredQuestionnaire, error) {
	stored, err := s.db.LoadQuestionnaire(ctx, s.namespace)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, prefs.ErrNoRecord
	}
	return stored, nil
}

// Clear removes the stored record. Idempotent.
func (s *QuestionnaireStore) Clear(ctx context.Context) error {
	return s.db.ClearQuestionnaire(ctx, s.namespace)
}
