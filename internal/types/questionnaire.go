// Package types provides type definitions for structured data used throughout the SkillGenie system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Education levels accepted on the questionnaire.
const (
	EducationHighSchool    = "high_school"
	EducationUndergraduate = "undergraduate"
	EducationGraduate      = "graduate"
	EducationProfessional  = "professional"
)

// Experience levels as submitted by the user.
const (
	ExperienceBeginner = "beginner"
	ExperienceSome     = "some_experience"
	ExperienceWorking  = "experienced"
	ExperienceExpert   = "expert"
)

// Learning styles accepted on the questionnaire.
const (
	StyleVisual    = "visual"
	StylePractical = "practical"
	StyleReading   = "reading"
	StyleMixed     = "mixed"
)

// QuestionnaireRecord represents one submitted preference snapshot.
// PreferredDomains is ordered: the first entry is the user's primary domain.
type QuestionnaireRecord struct {
	Education        string   `json:"education" validate:"required,oneof=high_school undergraduate graduate professional"`
	Experience       string   `json:"experience" validate:"required,oneof=beginner some_experience experienced expert"`
	CurrentSkills    []string `json:"current_skills" validate:"required,min=1"`
	Interests        []string `json:"interests"`
	LearningStyle    string   `json:"learning_style" validate:"required,oneof=visual practical reading mixed"`
	TimeCommitment   string   `json:"time_commitment"`
	CareerGoals      string   `json:"career_goals"`
	PreferredDomains []string `json:"preferred_domains" validate:"max=3"`
	Location         string   `json:"location,omitempty"`
}

// Validate validates the QuestionnaireRecord using the validator.
func (r *QuestionnaireRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// StoredQuestionnaire is a QuestionnaireRecord stamped with identity and
// creation time at save. At most one stored questionnaire exists at a time.
type StoredQuestionnaire struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	QuestionnaireRecord
}
