// Package prefs provides persistence for the single user questionnaire record.
//
// A store holds at most one record under a fixed namespace key. Absence of a
// record is a valid state meaning "use defaults"; it is reported through
// ErrNoRecord rather than a nil-only return so callers can distinguish it
// from storage failures when they care to.
package prefs

import (
	"context"
	"errors"

	"github.com/skillgenie/skillgenie/internal/types"
)

// NamespaceKey is the fixed key every store implementation writes under.
const NamespaceKey = "skillgenie.questionnaire"

// ErrNoRecord indicates that no questionnaire has been stored. Malformed or
// unreadable stored data is also reported as ErrNoRecord: for this subsystem
// "no usable data" is a documented default state, never a fatal error.
var ErrNoRecord = errors.New("no questionnaire record stored")

// Store persists a single questionnaire record with overwrite semantics.
type Store interface {
	// Save stamps the record with an id and creation time, overwrites any
	// prior record, and returns the stamped record.
	Save(ctx context.Context, record types.QuestionnaireRecord) (*types.StoredQuestionnaire, error)
	// Load returns the previously stamped record, or ErrNoRecord.
	Load(ctx context.Context) (*types.StoredQuestionnaire, error)
	// Clear removes the stored record. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// IsAbsent reports whether err means the store holds no usable record.
func IsAbsent(err error) bool {
	return errors.Is(err, ErrNoRecord)
}
