package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// DefaultSpeaker is the voice used for generated summary audio.
const DefaultSpeaker = "male"

type VisualSummaryAPI struct {
	c *Client
}

// Create generates and stores a new visual summary.
func (a *VisualSummaryAPI) Create(ctx context.Context, req models.VisualSummaryCreate) (models.VisualSummary, error) {
	return post[models.VisualSummary](ctx, a.c, "/api/visual-summary", req)
}

func (a *VisualSummaryAPI) List(ctx context.Context) ([]models.VisualSummary, error) {
	return get[[]models.VisualSummary](ctx, a.c, "/api/visual-summaries")
}

func (a *VisualSummaryAPI) Get(ctx context.Context, id int64) (models.VisualSummary, error) {
	return get[models.VisualSummary](ctx, a.c, fmt.Sprintf("/api/visual-summary/%d", id))
}

func (a *VisualSummaryAPI) Update(ctx context.Context, id int64, upd models.VisualSummaryUpdate) (models.VisualSummary, error) {
	return put[models.VisualSummary](ctx, a.c, fmt.Sprintf("/api/visual-summary/%d", id), upd)
}

func (a *VisualSummaryAPI) Delete(ctx context.Context, id int64) (models.Message, error) {
	return del[models.Message](ctx, a.c, fmt.Sprintf("/api/visual-summary/%d", id))
}

// UpdateSectionAudio attaches an audio file to one section of a summary.
func (a *VisualSummaryAPI) UpdateSectionAudio(ctx context.Context, summaryID int64, sectionIndex int, audioURL string) (models.Message, error) {
	return post[models.Message](ctx, a.c, "/api/update-summary-audio", models.SummaryAudioUpdate{
		SummaryID:    summaryID,
		SectionIndex: sectionIndex,
		AudioURL:     audioURL,
	})
}

// GenerateAudio synthesises speech for text in lang. An empty speaker
// means DefaultSpeaker.
func (a *VisualSummaryAPI) GenerateAudio(ctx context.Context, lang, text, speaker string) (models.AudioClip, error) {
	if speaker == "" {
		speaker = DefaultSpeaker
	}
	return post[models.AudioClip](ctx, a.c, "/api/generate/"+url.PathEscape(lang), models.AudioRequest{
		Text:    text,
		Speaker: speaker,
	})
}

// GenerateSectionAudio synthesises speech for one summary section and
// attaches it. It returns the generated file name.
func (a *VisualSummaryAPI) GenerateSectionAudio(ctx context.Context, summaryID int64, sectionIndex int, lang, text string) (string, error) {
	clip, err := a.GenerateAudio(ctx, lang, text, "")
	if err != nil {
		return "", err
	}
	if clip.Filename == "" {
		return "", &Error{Kind: KindDecode, Message: "no filename in audio response", Path: "/api/generate/" + lang}
	}
	if _, err := a.UpdateSectionAudio(ctx, summaryID, sectionIndex, clip.Filename); err != nil {
		return "", fmt.Errorf("attach audio %s: %w", clip.Filename, err)
	}
	return clip.Filename, nil
}
