package fallback

import (
	"fmt"

	"github.com/skillgenie/skillgenie/internal/market"
	"github.com/skillgenie/skillgenie/internal/types"
)

// roadmapStages is the fixed chapter skeleton used for synthesized roadmaps.
var roadmapStages = []struct {
	title  string
	detail string
}{
	{"Foundations", "Core concepts, terminology and tooling"},
	{"Core Techniques", "The everyday skills practitioners rely on"},
	{"Applied Projects", "Hands-on projects that consolidate the basics"},
	{"Advanced Topics", "Deeper material for production-grade work"},
	{"Portfolio & Interview Prep", "Showcase work and prepare for hiring loops"},
}

// Roadmap synthesizes a placeholder roadmap of the remote shape.
func Roadmap(skill, level, duration string) *types.Roadmap {
	chapters := make([]types.Chapter, 0, len(roadmapStages))
	for _, stage := range roadmapStages {
		chapters = append(chapters, types.Chapter{
			Title:       fmt.Sprintf("%s: %s", skill, stage.title),
			Description: stage.detail,
		})
	}

	hours := 120
	switch level {
	case "intermediate":
		hours = 90
	case "advanced":
		hours = 60
	}

	title := fmt.Sprintf("%s Roadmap (%s)", skill, level)
	if duration != "" {
		title = fmt.Sprintf("%s Roadmap (%s, %s)", skill, level, duration)
	}

	return &types.Roadmap{
		Title:          title,
		Skill:          skill,
		Level:          level,
		Chapters:       chapters,
		EstimatedHours: hours,
		Fallback:       true,
	}
}

// Analytics synthesizes a market-analytics payload from the static location
// tables. The timestamp is fixed to keep output deterministic; the server
// overwrites it with the current time before responding.
func Analytics(skill, location string) *types.Analytics {
	if location == "" {
		location = market.DefaultLocation
	}
	profile := market.ProfileFor(location)

	return &types.Analytics{
		Skill:    skill,
		Location: location,
		MarketOverview: types.MarketOverview{
			AverageSalary: market.SalaryRange(location, skill),
			GrowthRate:    "Steady year-over-year growth",
			JobOpenings:   "Thousands of active listings",
			DemandLevel:   "High",
		},
		GraphData: types.GraphData{
			MarketTrends:      profile.Trends,
			SalaryRanges:      profile.SalaryRanges,
			Opportunities:     profile.Opportunities,
			RecommendedSkills: profile.RecommendedSkills,
		},
		Timestamp: "1970-01-01T00:00:00Z",
		Fallback:  true,
	}
}
