package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// DefaultAudioFilename names uploads when the caller gives no file name.
const DefaultAudioFilename = "audio.webm"

// SttAPI uploads recorded speech. Uploads are bounded by the client's
// transcription timeout in place of the default timeout.
type SttAPI struct {
	c *Client
}

func audioForm(audio io.Reader, filename, language string) *Multipart {
	if filename == "" {
		filename = DefaultAudioFilename
	}
	return NewMultipart().
		AddFile("audio", filename, "", audio).
		AddField("language", language)
}

func (a *SttAPI) upload(path string, audio io.Reader, filename, language string) call {
	return call{
		method:  http.MethodPost,
		path:    path,
		body:    audioForm(audio, filename, language),
		timeout: a.c.transcribeTimeout,
	}
}

// Transcribe converts speech to text.
func (a *SttAPI) Transcribe(ctx context.Context, audio io.Reader, filename, language string) (models.Transcription, error) {
	return send[models.Transcription](ctx, a.c, a.upload("/api/transcribe", audio, filename, language))
}

// SpeechToProfile extracts profile fields (name, district, skills, ...)
// from a spoken self-description.
func (a *SttAPI) SpeechToProfile(ctx context.Context, audio io.Reader, filename, language string) (map[string]any, error) {
	return send[map[string]any](ctx, a.c, a.upload("/api/speech-to-profile", audio, filename, language))
}

// VoiceUpdateProfile merges a transcription into currentProfile and returns
// the changed fields.
func (a *SttAPI) VoiceUpdateProfile(ctx context.Context, transcription string, currentProfile map[string]any) (map[string]any, error) {
	return post[map[string]any](ctx, a.c, "/api/voice-update-profile", models.VoiceProfileRequest{
		Transcription:  transcription,
		CurrentProfile: currentProfile,
	})
}
