package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/skillgenie/skillgenie/internal/types"
)

// FileStore persists the questionnaire as a single JSON file named after the
// namespace key. Writes go through a temp file and rename, so a reader never
// observes a partially written record.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir. The directory is created
// on first save, not here, so constructing a store is always cheap.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultDir returns the default preferences directory under the user config
// directory, falling back to the working directory when that is unavailable.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".skillgenie"
	}
	return filepath.Join(base, "skillgenie")
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, NamespaceKey+".json")
}

// Save stamps and persists the record, overwriting any prior one.
func (s *FileStore) Save(_ context.Context, record types.QuestionnaireRecord) (*types.StoredQuestionnaire, error) {
	stored := &types.StoredQuestionnaire{
		ID:                  uuid.New(),
		CreatedAt:           time.Now().UTC(),
		QuestionnaireRecord: record,
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize questionnaire: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, NamespaceKey+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("failed to write questionnaire: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path()); err != nil {
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("failed to store questionnaire: %w", err)
	}

	return stored, nil
}

// Load returns the stored record, or ErrNoRecord when the file is missing or
// cannot be decoded.
func (s *FileStore) Load(_ context.Context) (*types.StoredQuestionnaire, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return nil, ErrNoRecord
	}

	var stored types.StoredQuestionnaire
	if err := json.Unmarshal(data, &stored); err != nil {
		// Corrupt record: treat as absent rather than surfacing a decode error.
		return nil, ErrNoRecord
	}

	return &stored, nil
}

// Clear removes the stored record. Idempotent.
func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear questionnaire: %w", err)
	}
	return nil
}
