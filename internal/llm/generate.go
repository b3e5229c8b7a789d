package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skillgenie/skillgenie/internal/schemas"
	"github.com/skillgenie/skillgenie/internal/types"
)

// Generator produces typed content payloads from an LLM client. Generated
// JSON is schema-validated before it is trusted; a payload that fails
// validation is reported as an error so callers can fall back.
type Generator struct {
	client Client
}

// NewGenerator creates a generator over the given client.
func NewGenerator(client Client) *Generator {
	return &Generator{client: client}
}

// Roadmap generates a learning roadmap for a skill at a level.
func (g *Generator) Roadmap(ctx context.Context, skill, level, duration string) (*types.Roadmap, error) {
	prompt := roadmapPrompt(skill, level, duration)
	raw, err := g.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation failed: %w", err)
	}

	if err := schemas.ValidateRoadmap([]byte(raw)); err != nil {
		return nil, fmt.Errorf("generated roadmap rejected: %w", err)
	}

	var roadmap types.Roadmap
	if err := json.Unmarshal([]byte(raw), &roadmap); err != nil {
		return nil, fmt.Errorf("failed to decode generated roadmap: %w", err)
	}
	roadmap.Skill = skill
	roadmap.Level = level
	return &roadmap, nil
}

// Quiz generates a quiz for a chapter of a skill.
func (g *Generator) Quiz(ctx context.Context, chapter, skill string) (*types.Quiz, error) {
	prompt := quizPrompt(chapter, skill)
	raw, err := g.client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	if err := schemas.ValidateQuiz([]byte(raw)); err != nil {
		return nil, fmt.Errorf("generated quiz rejected: %w", err)
	}

	var quiz types.Quiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		return nil, fmt.Errorf("failed to decode generated quiz: %w", err)
	}
	quiz.TotalQuestions = len(quiz.Questions)
	return &quiz, nil
}

// MarketNarrative generates the analytics overview strings for a skill in a
// location. The tabular graph data comes from the static market tables, not
// from the model.
func (g *Generator) MarketNarrative(ctx context.Context, skill, location string, profile *types.UserProfile) (*types.MarketOverview, error) {
	prompt := analyticsPrompt(skill, location, profile)
	raw, err := g.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("analytics generation failed: %w", err)
	}

	var overview types.MarketOverview
	if err := json.Unmarshal([]byte(raw), &overview); err != nil {
		return nil, fmt.Errorf("failed to decode market overview: %w", err)
	}
	if overview.AverageSalary == "" || overview.DemandLevel == "" {
		return nil, fmt.Errorf("market overview missing required fields")
	}
	return &overview, nil
}

func roadmapPrompt(skill, level, duration string) string {
	var sb strings.Builder
	sb.WriteString("Create a learning roadmap as a JSON object with fields: ")
	sb.WriteString(`"title" (string), "chapters" (array of {"title", "description", "topics"}), "estimated_hours" (integer).` + "\n")
	fmt.Fprintf(&sb, "Skill: %s\nLearner level: %s\n", skill, level)
	if duration != "" {
		fmt.Fprintf(&sb, "Target duration: %s\n", duration)
	}
	sb.WriteString("Use 5 to 8 chapters ordered from fundamentals to advanced topics. Respond with JSON only.")
	return sb.String()
}

func quizPrompt(chapter, skill string) string {
	var sb strings.Builder
	sb.WriteString("Create a quiz as a JSON object with fields: ")
	sb.WriteString(`"title", "time_limit" (seconds), "passing_score", "points", "questions" `)
	sb.WriteString(`(array of {"id", "question", "options" (exactly 4 strings), "correct_index" (0-3), "explanation"}).` + "\n")
	fmt.Fprintf(&sb, "Skill: %s\nChapter: %s\n", skill, chapter)
	fmt.Fprintf(&sb, "Write exactly %d questions testing understanding of this chapter. Respond with JSON only.", 5)
	return sb.String()
}

func analyticsPrompt(skill, location string, profile *types.UserProfile) string {
	var sb strings.Builder
	sb.WriteString("Summarize the current job market as a JSON object with fields: ")
	sb.WriteString(`"average_salary", "growth_rate", "job_openings", "demand_level".` + "\n")
	fmt.Fprintf(&sb, "Skill: %s\nLocation: %s\n", skill, location)
	if profile != nil && profile.Experience != "" {
		fmt.Fprintf(&sb, "Candidate experience: %s\n", profile.Experience)
	}
	if profile != nil && len(profile.CurrentSkills) > 0 {
		fmt.Fprintf(&sb, "Candidate skills: %s\n", strings.Join(profile.CurrentSkills, ", "))
	}
	sb.WriteString("Keep each field to one short phrase. Respond with JSON only.")
	return sb.String()
}
