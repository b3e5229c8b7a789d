package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Envelope is the response wrapper shared by every content endpoint.
// Callers must branch on Success before trusting Data.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Chapter is one unit of a learning roadmap.
type Chapter struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics,omitempty"`
}

// Roadmap is a generated learning roadmap for a skill.
type Roadmap struct {
	Title          string    `json:"title"`
	Skill          string    `json:"skill"`
	Level          string    `json:"level"`
	Chapters       []Chapter `json:"chapters"`
	EstimatedHours int       `json:"estimated_hours"`
	Fallback       bool      `json:"fallback,omitempty"`
}

// MarketOverview summarizes job-market conditions for a skill in a location.
type MarketOverview struct {
	AverageSalary string `json:"average_salary"`
	GrowthRate    string `json:"growth_rate"`
	JobOpenings   string `json:"job_openings"`
	DemandLevel   string `json:"demand_level"`
}

// GraphData carries the per-location market tables a dashboard renders.
type GraphData struct {
	MarketTrends      []string          `json:"market_trends"`
	SalaryRanges      map[string]string `json:"salary_ranges"`
	Opportunities     map[string]string `json:"opportunities"`
	RecommendedSkills []string          `json:"recommended_skills"`
}

// Analytics is the market-analytics payload for a skill and location.
type Analytics struct {
	Skill          string         `json:"skill"`
	Location       string         `json:"location"`
	MarketOverview MarketOverview `json:"market_overview"`
	GraphData      GraphData      `json:"graph_data"`
	Timestamp      string         `json:"timestamp"`
	Fallback       bool           `json:"fallback,omitempty"`
}

// QuizQuestion is a single multiple-choice question. Options always has
// exactly four entries; CorrectIndex points into it.
type QuizQuestion struct {
	ID           int      `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// Quiz is the quiz payload for one chapter of a skill.
type Quiz struct {
	Title          string         `json:"title"`
	TotalQuestions int            `json:"total_questions"`
	TimeLimit      int            `json:"time_limit"`
	PassingScore   int            `json:"passing_score"`
	Points         int            `json:"points"`
	Questions      []QuizQuestion `json:"questions"`
	Fallback       bool           `json:"fallback,omitempty"`
}

// VideoRecommendation is one recommended video for a skill.
type VideoRecommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	ViewCount   string `json:"view_count"`
	Channel     string `json:"channel"`
	Description string `json:"description"`
}

// VideoList wraps video recommendations for the envelope.
type VideoList struct {
	Recommendations []VideoRecommendation `json:"recommendations"`
}

// Dashboard aggregates the content panels shown on the main view.
type Dashboard struct {
	Roadmap   *Roadmap   `json:"roadmap"`
	Analytics *Analytics `json:"analytics"`
	Videos    *VideoList `json:"videos"`
}

// UserProfile is the optional profile fragment attached to analytics requests.
type UserProfile struct {
	Experience    string   `json:"experience,omitempty"`
	CurrentSkills []string `json:"current_skills,omitempty"`
}

// RoadmapRequest asks for a roadmap for a skill at a level.
type RoadmapRequest struct {
	Skill    string `json:"skill" validate:"required,min=1"`
	Level    string `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Duration string `json:"duration"`
}

// AnalyticsRequest asks for market analytics for a skill in a location.
type AnalyticsRequest struct {
	Skill       string       `json:"skill" validate:"required,min=1"`
	Location    string       `json:"location"`
	UserProfile *UserProfile `json:"user_profile,omitempty"`
}

// VideosRequest asks for video recommendations for a skill at a level.
type VideosRequest struct {
	Skill string `json:"skill" validate:"required,min=1"`
	Level string `json:"level"`
}

// Validate validates the RoadmapRequest using the validator.
func (r *RoadmapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyticsRequest using the validator.
func (r *AnalyticsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the VideosRequest using the validator.
func (r *VideosRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
