package server

import (
	"encoding/json"
	"net/http"

	"github.com/skillgenie/skillgenie/internal/prefs"
	"github.com/skillgenie/skillgenie/internal/types"
)

// handleSaveQuestionnaire persists a submitted questionnaire, overwriting any
// prior record, and returns the stamped record.
func (s *Server) handleSaveQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var record types.QuestionnaireRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := record.Validate(); err != nil {
		s.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	stored, err := s.store.Save(r.Context(), record)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "failed to save questionnaire")
		return
	}
	s.respond(w, http.StatusCreated, stored)
}

// handleGetQuestionnaire returns the stored questionnaire, if any.
func (s *Server) handleGetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	stored, err := s.store.Load(r.Context())
	if err != nil {
		if prefs.IsAbsent(err) {
			s.fail(w, http.StatusNotFound, "no questionnaire submitted yet")
			return
		}
		s.fail(w, http.StatusInternalServerError, "failed to load questionnaire")
		return
	}
	s.respond(w, http.StatusOK, stored)
}

// handleClearQuestionnaire removes the stored questionnaire. Idempotent:
// clearing an empty store succeeds.
func (s *Server) handleClearQuestionnaire(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(r.Context()); err != nil {
		s.fail(w, http.StatusInternalServerError, "failed to clear questionnaire")
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// handleRecommendations returns the personalized recommendation bundle, or a
// failure envelope prompting the questionnaire when none exists.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	bundle := s.resolver.PersonalizedRecommendations(r.Context())
	if bundle == nil {
		s.fail(w, http.StatusNotFound, "complete the questionnaire to get personalized recommendations")
		return
	}
	s.respond(w, http.StatusOK, bundle)
}
