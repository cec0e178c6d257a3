package fakeapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// MaxAudioBytes bounds transcription uploads.
const MaxAudioBytes = 10 << 20

// Transcribe handles POST /api/transcribe. The fixture has no speech model:
// the uploaded "audio" part is returned as the transcript.
func Transcribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxAudioBytes)
	if err := r.ParseMultipartForm(MaxAudioBytes); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "expected a multipart form with an audio file")
		return
	}
	f, _, err := r.FormFile("audio")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "audio file is required")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "failed to read audio")
		return
	}
	writeJSON(w, http.StatusOK, models.Transcription{Text: string(data)})
}

// Translate handles POST /translate. Text requests get an identity
// translation; JSON requests get their document back.
func Translate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text           *string         `json:"text"`
		Lang           string          `json:"lang"`
		JSON           json.RawMessage `json:"json"`
		TargetLanguage string          `json:"target_language"`
	}
	if !decode(w, r, &req) {
		return
	}
	switch {
	case req.Text != nil:
		writeJSON(w, http.StatusOK, models.TranslateTextResponse{Translated: *req.Text})
	case len(req.JSON) > 0:
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(req.JSON)
	default:
		writeDetail(w, http.StatusUnprocessableEntity, "text or json is required")
	}
}
