package api

import (
	"context"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// YoutubeSummaryAPI turns a video into a spoken summary.
type YoutubeSummaryAPI struct {
	c *Client
}

// Summarize returns the backend's summary document for a video.
func (a *YoutubeSummaryAPI) Summarize(ctx context.Context, youtubeURL, language string) (map[string]any, error) {
	return post[map[string]any](ctx, a.c, "/api/youtube-summary/youtube-audio-summary", models.YoutubeSummaryRequest{
		YoutubeURL: youtubeURL,
		Language:   language,
	})
}
