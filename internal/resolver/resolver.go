// Package resolver derives skill, experience and learning-path defaults from
// the stored questionnaire. Every method reads current store state and
// computes its result; nothing is cached, so two calls may observe different
// answers if the store changes between them. Resolver methods never fail:
// missing or unreadable data degrades to documented defaults.
package resolver

import (
	"context"

	"github.com/skillgenie/skillgenie/internal/market"
	"github.com/skillgenie/skillgenie/internal/prefs"
	"github.com/skillgenie/skillgenie/internal/types"
)

// Experience levels produced by the resolver.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// DefaultTimeEstimate is used when the stored time commitment is unmapped.
const DefaultTimeEstimate = "4-6 months"

// experienceLevels maps submitted experience to a coarse resolver level.
var experienceLevels = map[string]string{
	types.ExperienceBeginner: LevelBeginner,
	types.ExperienceSome:     LevelIntermediate,
	types.ExperienceWorking:  LevelAdvanced,
	types.ExperienceExpert:   LevelAdvanced,
}

// timeEstimates maps a time-commitment bucket to an estimate string.
var timeEstimates = map[string]string{
	"part_time": "6-8 months",
	"full_time": "3-4 months",
	"weekend":   "8-12 months",
	"intensive": "2-3 months",
}

// learningTips holds the fixed tip pair per learning style.
var learningTips = map[string][]string{
	types.StyleVisual: {
		"Prioritize video walkthroughs and diagram-heavy material",
		"Sketch architecture diagrams of everything you build",
	},
	types.StylePractical: {
		"Build a small project for every concept before moving on",
		"Prefer interactive coding platforms over passive reading",
	},
	types.StyleReading: {
		"Work through one authoritative book per topic, cover to cover",
		"Keep written notes and revisit them weekly",
	},
	types.StyleMixed: {
		"Alternate between videos, articles and hands-on exercises",
		"Review each topic in a second format to reinforce it",
	},
}

// Resolver computes recommendations from the preference store.
type Resolver struct {
	store prefs.Store
}

// New creates a resolver over the given store.
func New(store prefs.Store) *Resolver {
	return &Resolver{store: store}
}

// load fetches the stored record, treating every failure as absence.
func (r *Resolver) load(ctx context.Context) *types.StoredQuestionnaire {
	stored, err := r.store.Load(ctx)
	if err != nil {
		return nil
	}
	return stored
}

// PrimarySkill returns the skill mapped from the first preferred domain.
// First-submitted is primary: the order of PreferredDomains is significant.
func (r *Resolver) PrimarySkill(ctx context.Context) string {
	stored := r.load(ctx)
	if stored == nil || len(stored.PreferredDomains) == 0 {
		return market.DefaultSkill
	}
	return market.SkillForDomain(stored.PreferredDomains[0])
}

// ExperienceLevel returns the coarse experience level, defaulting to beginner.
func (r *Resolver) ExperienceLevel(ctx context.Context) string {
	stored := r.load(ctx)
	if stored == nil {
		return LevelBeginner
	}
	if level, ok := experienceLevels[stored.Experience]; ok {
		return level
	}
	return LevelBeginner
}

// LocationRecommendation returns the stored location or the default.
func (r *Resolver) LocationRecommendation(ctx context.Context) string {
	stored := r.load(ctx)
	if stored == nil || stored.Location == "" {
		return market.DefaultLocation
	}
	return stored.Location
}

// AllPreferredSkills maps every preferred domain to a skill name in order.
func (r *Resolver) AllPreferredSkills(ctx context.Context) []string {
	stored := r.load(ctx)
	if stored == nil || len(stored.PreferredDomains) == 0 {
		return []string{market.DefaultSkill}
	}
	return market.SkillsForDomains(stored.PreferredDomains)
}

// HasCompletedQuestionnaire reports whether a record with at least one
// preferred domain exists.
func (r *Resolver) HasCompletedQuestionnaire(ctx context.Context) bool {
	stored := r.load(ctx)
	return stored != nil && len(stored.PreferredDomains) > 0
}

// PersonalizedRecommendations composes the full bundle, or returns nil when
// no questionnaire exists. Callers must treat nil as "prompt the user to
// complete the questionnaire".
func (r *Resolver) PersonalizedRecommendations(ctx context.Context) *types.RecommendationBundle {
	stored := r.load(ctx)
	if stored == nil {
		return nil
	}

	return &types.RecommendationBundle{
		PrimarySkill:    r.PrimarySkill(ctx),
		ExperienceLevel: r.ExperienceLevel(ctx),
		AllSkills:       r.AllPreferredSkills(ctx),
		LearningPath:    buildLearningPath(stored.PreferredDomains),
		TimeEstimate:    timeEstimate(stored.TimeCommitment),
		CustomizedTips:  customizedTips(stored.LearningStyle),
	}
}

// buildLearningPath emits one entry per matched well-known domain in a fixed
// priority order. Only mobile_dev, data_science and ai_ml participate;
// other selected domains appear in AllPreferredSkills but not in the path.
func buildLearningPath(domains []string) []types.LearningPathEntry {
	selected := make(map[string]bool, len(domains))
	for _, d := range domains {
		selected[d] = true
	}

	var path []types.LearningPathEntry
	if selected[market.DomainMobileDev] {
		path = append(path, types.LearningPathEntry{
			Skill:    market.SkillForDomain(market.DomainMobileDev),
			Reason:   "You picked mobile development as a field you want to work in",
			Priority: 1,
		})
	}
	if selected[market.DomainDataScience] {
		path = append(path, types.LearningPathEntry{
			Skill:    market.SkillForDomain(market.DomainDataScience),
			Reason:   "Data science matches your selected interests",
			Priority: 2,
		})
	}
	if selected[market.DomainAIML] {
		path = append(path, types.LearningPathEntry{
			Skill:    market.SkillForDomain(market.DomainAIML),
			Reason:   "Machine learning builds naturally on your chosen fields",
			Priority: 3,
		})
	}

	if len(path) == 0 {
		path = append(path, types.LearningPathEntry{
			Skill:    "Web Development",
			Reason:   "A versatile starting point for your selected fields",
			Priority: 1,
		})
	}
	return path
}

func timeEstimate(commitment string) string {
	if estimate, ok := timeEstimates[commitment]; ok {
		return estimate
	}
	return DefaultTimeEstimate
}

func customizedTips(style string) []string {
	if tips, ok := learningTips[style]; ok {
		return tips
	}
	return learningTips[types.StyleMixed]
}
