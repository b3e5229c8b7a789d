package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillgenie/skillgenie/internal/prefs"
	"github.com/skillgenie/skillgenie/internal/types"
)

// testDB connects to TEST_DATABASE_URL, skipping when it is not set.
func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := Connect(ctx, url)
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(ctx))
	t.Cleanup(database.Close)
	return database
}

func testRecord() types.QuestionnaireRecord {
	return types.QuestionnaireRecord{
		Education:        types.EducationGraduate,
		Experience:       types.ExperienceWorking,
		CurrentSkills:    []string{"SQL", "Python"},
		LearningStyle:    types.StyleReading,
		TimeCommitment:   "part_time",
		PreferredDomains: []string{"data_science"},
	}
}

func TestQuestionnaireStore_SaveLoadClear(t *testing.T) {
	database := testDB(t)
	namespace := fmt.Sprintf("test.%d", time.Now().UnixNano())
	store := NewQuestionnaireStore(database, namespace)
	ctx := context.Background()
	t.Cleanup(func() { _ = store.Clear(context.Background()) })

	_, err := store.Load(ctx)
	assert.True(t, prefs.IsAbsent(err))

	stored, err := store.Save(ctx, testRecord())
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, loaded.ID)
	assert.Equal(t, []string{"data_science"}, loaded.PreferredDomains)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.True(t, prefs.IsAbsent(err))

	// Clearing an empty store succeeds.
	assert.NoError(t, store.Clear(ctx))
}

func TestQuestionnaireStore_SaveOverwrites(t *testing.T) {
	database := testDB(t)
	namespace := fmt.Sprintf("test.%d", time.Now().UnixNano())
	store := NewQuestionnaireStore(database, namespace)
	ctx := context.Background()
	t.Cleanup(func() { _ = store.Clear(context.Background()) })

	first, err := store.Save(ctx, testRecord())
	require.NoError(t, err)

	second := testRecord()
	second.PreferredDomains = []string{"ai_ml"}
	replaced, err := store.Save(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, replaced.ID)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, replaced.ID, loaded.ID)
	assert.Equal(t, []string{"ai_ml"}, loaded.PreferredDomains)
}

func TestUsers_CreateAndLookup(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()
	email := fmt.Sprintf("test.%d@example.com", time.Now().UnixNano())

	user, err := database.CreateUser(ctx, "Test User", email, "fake-hash")
	require.NoError(t, err)
	assert.Equal(t, email, user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	found, hash, err := database.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "fake-hash", hash)

	_, err = database.CreateUser(ctx, "Other User", email, "other-hash")
	assert.ErrorIs(t, err, ErrEmailExists)

	_, _, err = database.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
