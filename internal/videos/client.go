// Package videos recommends learning videos for a skill via the YouTube
// Data API.
package videos

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/skillgenie/skillgenie/internal/types"
)

// MaxResults is the number of recommendations returned per request.
const MaxResults = 6

// Client searches YouTube for learning content.
type Client struct {
	service *youtube.Service
}

// NewClient creates a YouTube client with the given API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}
	return &Client{service: service}, nil
}

// Recommend searches for tutorial videos matching a skill and level and
// returns them in the recommendation shape.
func (c *Client) Recommend(ctx context.Context, skill, level string) (*types.VideoList, error) {
	query := buildQuery(skill, level)

	search, err := c.service.Search.List([]string{"snippet"}).
		Context(ctx).
		Q(query).
		Type("video").
		VideoEmbeddable("true").
		MaxResults(MaxResults).
		Do()
	if err != nil {
		return nil, fmt.Errorf("video search failed: %w", err)
	}

	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		return &types.VideoList{Recommendations: []types.VideoRecommendation{}}, nil
	}

	details, err := c.service.Videos.List([]string{"contentDetails", "statistics"}).
		Context(ctx).
		Id(ids...).
		Do()
	if err != nil {
		return nil, fmt.Errorf("video detail lookup failed: %w", err)
	}

	return &types.VideoList{
		Recommendations: MapResults(search.Items, details.Items),
	}, nil
}

// buildQuery composes the search query for a skill and level.
func buildQuery(skill, level string) string {
	if level == "" {
		return skill + " tutorial"
	}
	return fmt.Sprintf("%s tutorial for %s", skill, level)
}

// MapResults joins search results with their detail records into the
// recommendation shape. Kept separate from Recommend so the mapping is
// testable without network access.
func MapResults(items []*youtube.SearchResult, details []*youtube.Video) []types.VideoRecommendation {
	byID := make(map[string]*youtube.Video, len(details))
	for _, v := range details {
		byID[v.Id] = v
	}

	recs := make([]types.VideoRecommendation, 0, len(items))
	for _, item := range items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}

		rec := types.VideoRecommendation{
			ID:          item.Id.VideoId,
			Title:       item.Snippet.Title,
			Channel:     item.Snippet.ChannelTitle,
			Description: item.Snippet.Description,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
			rec.Thumbnail = item.Snippet.Thumbnails.Medium.Url
		}
		if detail, ok := byID[item.Id.VideoId]; ok {
			if detail.ContentDetails != nil {
				rec.Duration = FormatDuration(detail.ContentDetails.Duration)
			}
			if detail.Statistics != nil {
				rec.ViewCount = FormatViewCount(detail.Statistics.ViewCount)
			}
		}
		recs = append(recs, rec)
	}
	return recs
}

// FormatDuration converts an ISO 8601 duration like PT1H23M45S to a display
// string like 1:23:45. Malformed input is returned unchanged.
func FormatDuration(iso string) string {
	rest, ok := strings.CutPrefix(iso, "PT")
	if !ok {
		return iso
	}

	var hours, minutes, seconds int
	num := 0
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
			num = num*10 + int(r-'0')
		case r == 'H':
			hours, num = num, 0
		case r == 'M':
			minutes, num = num, 0
		case r == 'S':
			seconds, num = num, 0
		default:
			return iso
		}
	}

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatViewCount renders a raw view count as a compact display string.
func FormatViewCount(count uint64) string {
	switch {
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM views", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK views", float64(count)/1_000)
	default:
		return fmt.Sprintf("%d views", count)
	}
}
