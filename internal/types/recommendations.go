package types

// LearningPathEntry is one step in a personalized learning path.
type LearningPathEntry struct {
	Skill    string `json:"skill"`
	Reason   string `json:"reason"`
	Priority int    `json:"priority"`
}

// RecommendationBundle is the computed, non-persisted aggregate of resolver
// outputs. It is owned by the caller that requested it and never cached.
type RecommendationBundle struct {
	PrimarySkill    string              `json:"primary_skill"`
	ExperienceLevel string              `json:"experience_level"`
	AllSkills       []string            `json:"all_skills"`
	LearningPath    []LearningPathEntry `json:"learning_path"`
	TimeEstimate    string              `json:"time_estimate"`
	CustomizedTips  []string            `json:"customized_tips"`
}
