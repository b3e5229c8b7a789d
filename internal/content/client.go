// Package content provides the client for the SkillGenie content service.
// Every call is a single fire-once request: no retries and no backoff. A
// failed call is reported to the caller, which may recover through the
// fallback package for read-style content (roadmap, quiz, analytics).
//
// Stale-response protection is the caller's job: pass a per-request context
// and cancel it before issuing a replacement request for the same slot.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/skillgenie/skillgenie/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client issues requests against a SkillGenie content service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	authToken  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used in tests and for
// custom timeouts).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAuthToken attaches a bearer token to every request.
func WithAuthToken(token string) Option {
	return func(c *Client) { c.authToken = token }
}

// NewClient creates a content client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateRoadmap requests a learning roadmap for a skill at a level.
func (c *Client) GenerateRoadmap(ctx context.Context, skill, level, duration string) (*types.Roadmap, error) {
	req := types.RoadmapRequest{Skill: skill, Level: level, Duration: duration}
	var roadmap types.Roadmap
	if err := c.post(ctx, "/api/roadmap", req, &roadmap); err != nil {
		return nil, err
	}
	return &roadmap, nil
}

// GenerateAnalytics requests market analytics for a skill in a location.
func (c *Client) GenerateAnalytics(ctx context.Context, skill, location string, profile *types.UserProfile) (*types.Analytics, error) {
	req := types.AnalyticsRequest{Skill: skill, Location: location, UserProfile: profile}
	var analytics types.Analytics
	if err := c.post(ctx, "/api/analytics", req, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// FetchQuiz requests the quiz for a chapter of a skill.
func (c *Client) FetchQuiz(ctx context.Context, chapter, skill string) (*types.Quiz, error) {
	endpoint := "/api/quiz?" + url.Values{
		"chapter": {chapter},
		"skill":   {skill},
	}.Encode()

	var quiz types.Quiz
	if err := c.get(ctx, endpoint, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// RecommendVideos requests video recommendations for a skill at a level.
func (c *Client) RecommendVideos(ctx context.Context, skill, level string) (*types.VideoList, error) {
	req := types.VideosRequest{Skill: skill, Level: level}
	var videos types.VideoList
	if err := c.post(ctx, "/api/videos", req, &videos); err != nil {
		return nil, err
	}
	return &videos, nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &Error{Endpoint: endpoint, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return &Error{Endpoint: endpoint, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, endpoint, out)
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return &Error{Endpoint: endpoint, Message: "failed to create request", Cause: err}
	}
	return c.do(req, endpoint, out)
}

// do executes a single request and decodes the envelope. The remote message
// is surfaced verbatim when the envelope carries one; otherwise the HTTP
// status produces a generic message.
func (c *Client) do(req *http.Request, endpoint string, out any) error {
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Endpoint: endpoint, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	var envelope types.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		if resp.StatusCode != http.StatusOK {
			return &Error{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
		}
		return &Error{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: "malformed response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK || !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = fmt.Sprintf("HTTP status %d", resp.StatusCode)
		}
		return &Error{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &Error{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: "malformed response data", Cause: err}
	}
	return nil
}
