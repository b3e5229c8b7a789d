package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/skillgenie/skillgenie/internal/fallback"
	"github.com/skillgenie/skillgenie/internal/market"
	"github.com/skillgenie/skillgenie/internal/types"
)

// handleRoadmap generates a learning roadmap, serving fallback content when
// generation is unavailable or fails.
func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req types.RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	s.respond(w, http.StatusOK, s.roadmap(r.Context(), req.Skill, req.Level, req.Duration))
}

func (s *Server) roadmap(ctx context.Context, skill, level, duration string) *types.Roadmap {
	if s.generator != nil {
		roadmap, err := s.generator.Roadmap(ctx, skill, level, duration)
		if err == nil {
			return roadmap
		}
		log.Printf("roadmap generation failed, serving fallback: %v", err)
	}
	return fallback.Roadmap(skill, level, duration)
}

// handleAnalytics builds market analytics: the overview narrative comes from
// the generator, the graph data always from the static market tables.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyticsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	s.respond(w, http.StatusOK, s.analytics(r.Context(), req.Skill, req.Location, req.UserProfile))
}

func (s *Server) analytics(ctx context.Context, skill, location string, profile *types.UserProfile) *types.Analytics {
	if location == "" {
		location = market.DefaultLocation
	}

	analytics := fallback.Analytics(skill, location)
	analytics.Timestamp = time.Now().UTC().Format(time.RFC3339)

	if s.generator == nil {
		return analytics
	}
	overview, err := s.generator.MarketNarrative(ctx, skill, location, profile)
	if err != nil {
		log.Printf("analytics generation failed, serving fallback: %v", err)
		return analytics
	}

	analytics.MarketOverview = *overview
	analytics.Fallback = false
	return analytics
}

// handleQuiz returns the quiz for a chapter of a skill.
func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	chapter := r.URL.Query().Get("chapter")
	skill := r.URL.Query().Get("skill")
	if chapter == "" || skill == "" {
		s.fail(w, http.StatusBadRequest, "chapter and skill query parameters are required")
		return
	}

	s.respond(w, http.StatusOK, s.quiz(r.Context(), chapter, skill))
}

func (s *Server) quiz(ctx context.Context, chapter, skill string) *types.Quiz {
	if s.generator != nil {
		quiz, err := s.generator.Quiz(ctx, chapter, skill)
		if err == nil {
			return quiz
		}
		log.Printf("quiz generation failed, serving fallback: %v", err)
	}
	return fallback.Quiz(skill, chapter)
}

// handleVideos returns video recommendations for a skill. Video search has
// no fallback bank; an upstream failure is surfaced to the caller.
func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	var req types.VideosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.videos == nil {
		s.fail(w, http.StatusServiceUnavailable, "video recommendations are not configured")
		return
	}
	videos, err := s.videos.Recommend(r.Context(), req.Skill, req.Level)
	if err != nil {
		s.fail(w, http.StatusBadGateway, err.Error())
		return
	}
	s.respond(w, http.StatusOK, videos)
}

// handleDashboard assembles roadmap, analytics and videos concurrently.
// Content sections fail soft to fallback; only the video panel may be empty.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	skill := r.URL.Query().Get("skill")
	level := r.URL.Query().Get("level")
	location := r.URL.Query().Get("location")
	if skill == "" {
		s.fail(w, http.StatusBadRequest, "skill query parameter is required")
		return
	}
	if level == "" {
		level = "beginner"
	}

	var dashboard types.Dashboard
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		dashboard.Roadmap = s.roadmap(ctx, skill, level, "")
		return nil
	})
	g.Go(func() error {
		dashboard.Analytics = s.analytics(ctx, skill, location, nil)
		return nil
	})
	g.Go(func() error {
		dashboard.Videos = &types.VideoList{Recommendations: []types.VideoRecommendation{}}
		if s.videos == nil {
			return nil
		}
		videos, err := s.videos.Recommend(ctx, skill, level)
		if err != nil {
			log.Printf("dashboard video search failed: %v", err)
			return nil
		}
		dashboard.Videos = videos
		return nil
	})

	// Goroutines fail soft, so the only possible error is ctx cancellation.
	if err := g.Wait(); err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, &dashboard)
}
