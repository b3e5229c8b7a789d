package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillgenie/skillgenie/internal/prefs"
	"github.com/skillgenie/skillgenie/internal/types"
)

// fakeStore is an in-memory prefs.Store for resolver tests.
type fakeStore struct {
	stored  *types.StoredQuestionnaire
	loadErr error
}

func (f *fakeStore) Save(_ context.Context, record types.QuestionnaireRecord) (*types.StoredQuestionnaire, error) {
	f.stored = &types.StoredQuestionnaire{
		ID:                  uuid.New(),
		CreatedAt:           time.Now(),
		QuestionnaireRecord: record,
	}
	return f.stored, nil
}

func (f *fakeStore) Load(_ context.Context) (*types.StoredQuestionnaire, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.stored == nil {
		return nil, prefs.ErrNoRecord
	}
	return f.stored, nil
}

func (f *fakeStore) Clear(_ context.Context) error {
	f.stored = nil
	return nil
}

func saved(t *testing.T, store *fakeStore, record types.QuestionnaireRecord) {
	t.Helper()
	_, err := store.Save(context.Background(), record)
	require.NoError(t, err)
}

func TestPrimarySkill_FirstDomainIsPrimary(t *testing.T) {
	store := &fakeStore{}
	saved(t, store, types.QuestionnaireRecord{PreferredDomains: []string{"ai_ml", "web_dev"}})

	r := New(store)
	assert.Equal(t, "Machine Learning", r.PrimarySkill(context.Background()))
}

func TestPrimarySkill_UnmappedDomainPassesThrough(t *testing.T) {
	store := &fakeStore{}
	saved(t, store, types.QuestionnaireRecord{PreferredDomains: []string{"quantum_basket_weaving"}})

	r := New(store)
	assert.Equal(t, "quantum_basket_weaving", r.PrimarySkill(context.Background()))
}

func TestPrimarySkill_DefaultsWithoutRecord(t *testing.T) {
	r := New(&fakeStore{})
	assert.Equal(t, "Data Science", r.PrimarySkill(context.Background()))
}

func TestPrimarySkill_DefaultAfterClear(t *testing.T) {
	store := &fakeStore{}
	saved(t, store, types.QuestionnaireRecord{PreferredDomains: []string{"mobile_dev"}})
	require.NoError(t, store.Clear(context.Background()))

	r := New(store)
	assert.Equal(t, "Data Science", r.PrimarySkill(context.Background()))
}

func TestPrimarySkill_StoreFailureDegradesToDefault(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("storage unavailable")}
	r := New(store)
	assert.Equal(t, "Data Science", r.PrimarySkill(context.Background()))
}

func TestExperienceLevel_MappingTable(t *testing.T) {
	cases := map[string]string{
		"beginner":        LevelBeginner,
		"some_experience": LevelIntermediate,
		"experienced":     LevelAdvanced,
		"expert":          LevelAdvanced,
		"unheard_of":      LevelBeginner,
	}
	for submitted, expected := range cases {
		store := &fakeStore{}
		saved(t, store, types.QuestionnaireRecord{Experience: submitted})
		assert.Equal(t, expected, New(store).ExperienceLevel(context.Background()), "experience %q", submitted)
	}
}

func TestLocationRecommendation_Defaults(t *testing.T) {
	r := New(&fakeStore{})
	assert.Equal(t, "India", r.LocationRecommendation(context.Background()))

	store := &fakeStore{}
	saved(t, store, types.QuestionnaireRecord{Location: "Europe"})
	assert.Equal(t, "Europe", New(store).LocationRecommendation(context.Background()))
}

func TestAllPreferredSkills_PreservesOrder(t *testing.T) {
	store := &fakeStore{}
	saved(t, store, types.QuestionnaireRecord{PreferredDomains: []string{"cloud", "ai_ml", "devops"}})

	skills := New(store).AllPreferredSkills(context.Background())
	assert.Equal(t, []string{"Cloud Computing", "Machine Learning", "DevOps"}, skills)
}

func TestAllPreferredSkills_DefaultsWithoutRecord(t *testing.T) {
	skills := New(&fakeStore{}).AllPreferredSkills(context.Background())
	assert.Equal(t, []string{"Data Science"}, skills)
}

func TestHasCompletedQuestionnaire(t *testing.T) {
	store := &fakeStore{}
	r := New(store)
	ctx := context.Background()

	assert.False(t, r.HasCompletedQuestionnaire(ctx))

	saved(t, store, types.QuestionnaireRecord{PreferredDomains: []string{"web_dev"}})
	assert.True(t, r.HasCompletedQuestionnaire(ctx))

	saved(t, store, types.QuestionnaireRecord{PreferredDomains: nil})
	assert.False(t, r.HasCompletedQuestionnaire(ctx))

	require.NoError(t, store.Clear(ctx))
	assert.False(t, r.HasCompletedQuestionnaire(ctx))
}

func TestPersonalizedRecommendations_NilWithoutRecord(t *testing.T) {
	r := New(&fakeStore{})
	assert.Nil(t, r.PersonalizedRecommendations(context.Background()))
}

func TestPersonalizedRecommendations_FullScenario(t *testing.T) {
	store := &fakeStore{}
	saved(t, store, types.QuestionnaireRecord{
		PreferredDomains: []string{"mobile_dev", "data_science"},
		Experience:       "experienced",
		TimeCommitment:   "full_time",
		LearningStyle:    "visual",
	})

	bundle := New(store).PersonalizedRecommendations(context.Background())
	require.NotNil(t, bundle)

	assert.Equal(t, "Mobile Development", bundle.PrimarySkill)
	assert.Equal(t, LevelAdvanced, bundle.ExperienceLevel)
	assert.Equal(t, "3-4 months", bundle.TimeEstimate)
	assert.Equal(t, []string{"Mobile Development", "Data Science"}, bundle.AllSkills)

	require.Len(t, bundle.LearningPath, 2)
	assert.Equal(t, "Mobile Development", bundle.LearningPath[0].Skill)
	assert.Equal(t, 1, bundle.LearningPath[0].Priority)
	assert.Equal(t, "Data Science", bundle.LearningPath[1].Skill)
	assert.Equal(t, 2, bundle.LearningPath[1].Priority)

	require.Len(t, bundle.CustomizedTips, 2)
	assert.Contains(t, bundle.CustomizedTips[0], "video")
}

func TestLearningPath_WhitelistedDomainsOnly(t *testing.T) {
	store := &fakeStore{}
	saved(t, store, types.QuestionnaireRecord{
		PreferredDomains: []string{"cloud", "ai_ml", "devops"},
	})

	bundle := New(store).PersonalizedRecommendations(context.Background())
	require.NotNil(t, bundle)

	// cloud and devops appear in AllSkills but not in the path.
	assert.Equal(t, []string{"Cloud Computing", "Machine Learning", "DevOps"}, bundle.AllSkills)
	require.Len(t, bundle.LearningPath, 1)
	assert.Equal(t, "Machine Learning", bundle.LearningPath[0].Skill)
	assert.Equal(t, 3, bundle.LearningPath[0].Priority)
}

func TestLearningPath_FallbackEntryWhenNoWhitelistedDomain(t *testing.T) {
	store := &fakeStore{}
	saved(t, store, types.QuestionnaireRecord{
		PreferredDomains: []string{"cybersecurity", "blockchain"},
	})

	bundle := New(store).PersonalizedRecommendations(context.Background())
	require.NotNil(t, bundle)
	require.Len(t, bundle.LearningPath, 1)
	assert.Equal(t, "Web Development", bundle.LearningPath[0].Skill)
	assert.Equal(t, 1, bundle.LearningPath[0].Priority)
}

func TestTimeEstimate_Buckets(t *testing.T) {
	cases := map[string]string{
		"part_time": "6-8 months",
		"full_time": "3-4 months",
		"weekend":   "8-12 months",
		"intensive": "2-3 months",
		"whenever":  DefaultTimeEstimate,
		"":          DefaultTimeEstimate,
	}
	for commitment, expected := range cases {
		store := &fakeStore{}
		saved(t, store, types.QuestionnaireRecord{TimeCommitment: commitment})
		bundle := New(store).PersonalizedRecommendations(context.Background())
		require.NotNil(t, bundle)
		assert.Equal(t, expected, bundle.TimeEstimate, "commitment %q", commitment)
	}
}

func TestCustomizedTips_UnknownStyleFallsBackToMixed(t *testing.T) {
	store := &fakeStore{}
	saved(t, store, types.QuestionnaireRecord{LearningStyle: "osmosis"})

	bundle := New(store).PersonalizedRecommendations(context.Background())
	require.NotNil(t, bundle)
	assert.Equal(t, learningTips[types.StyleMixed], bundle.CustomizedTips)
}
