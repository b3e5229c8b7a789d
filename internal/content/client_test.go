package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillgenie/skillgenie/internal/types"
)

func envelopeHandler(t *testing.T, data any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, _ *http.Request) {
		payload, err := json.Marshal(data)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.Envelope{Success: true, Data: payload})
	}
}

func TestGenerateRoadmap_Success(t *testing.T) {
	var gotBody types.RoadmapRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/roadmap", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		envelopeHandler(t, types.Roadmap{Title: "Go Roadmap", Chapters: []types.Chapter{{Title: "Basics"}}})(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	roadmap, err := client.GenerateRoadmap(context.Background(), "Go", "beginner", "3 months")
	require.NoError(t, err)
	assert.Equal(t, "Go Roadmap", roadmap.Title)
	assert.Equal(t, "Go", gotBody.Skill)
	assert.Equal(t, "beginner", gotBody.Level)
}

func TestFetchQuiz_SendsQueryParameters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quiz", r.URL.Path)
		assert.Equal(t, "Functions", r.URL.Query().Get("chapter"))
		assert.Equal(t, "Python", r.URL.Query().Get("skill"))
		envelopeHandler(t, types.Quiz{Title: "Python: Functions", TotalQuestions: 5})(w, r)
	}))
	defer srv.Close()

	quiz, err := NewClient(srv.URL).FetchQuiz(context.Background(), "Functions", "Python")
	require.NoError(t, err)
	assert.Equal(t, "Python: Functions", quiz.Title)
}

func TestClient_PropagatesRemoteMessageOnHTTP500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(types.Envelope{Success: false, Message: "quiz generation failed upstream"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchQuiz(context.Background(), "Basics", "Python")
	require.Error(t, err)

	var contentErr *Error
	require.True(t, errors.As(err, &contentErr))
	assert.Equal(t, http.StatusInternalServerError, contentErr.StatusCode)
	assert.Equal(t, "quiz generation failed upstream", contentErr.Message)
}

func TestClient_GenericMessageWithoutRemoteMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GenerateAnalytics(context.Background(), "Go", "India", nil)
	var contentErr *Error
	require.True(t, errors.As(err, &contentErr))
	assert.Equal(t, "HTTP status 502", contentErr.Message)
}

func TestClient_SuccessFalseIsAFailureEvenOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(types.Envelope{Success: false, Message: "model unavailable"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GenerateRoadmap(context.Background(), "Go", "beginner", "")
	var contentErr *Error
	require.True(t, errors.As(err, &contentErr))
	assert.Equal(t, "model unavailable", contentErr.Message)
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("this is not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GenerateRoadmap(context.Background(), "Go", "beginner", "")
	var contentErr *Error
	require.True(t, errors.As(err, &contentErr))
	assert.Equal(t, "malformed response body", contentErr.Message)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		envelopeHandler(t, types.VideoList{})(w, r)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, WithAuthToken("token-123")).RecommendVideos(context.Background(), "Go", "beginner")
	require.NoError(t, err)
}

func TestClient_ContextCancellationSurfacesAsError(t *testing.T) {
	srv := httptest.NewServer(envelopeHandler(t, types.VideoList{}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL).RecommendVideos(ctx, "Go", "beginner")
	require.Error(t, err)
	var contentErr *Error
	require.True(t, errors.As(err, &contentErr))
	assert.ErrorIs(t, err, context.Canceled)
}
