package api

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

func TestMultipart_Encode(t *testing.T) {
	mp := NewMultipart().
		AddFile("photo", "face.png", "", strings.NewReader("PNG")).
		AddFile("blob", "data", "", strings.NewReader("x")).
		AddField("language", "hi")

	buf, ct, err := mp.encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(ct)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(buf, params["boundary"])

	p, err := r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "photo", p.FormName())
	assert.Equal(t, "face.png", p.FileName())
	assert.Equal(t, "image/png", p.Header.Get("Content-Type"))

	p, err = r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", p.Header.Get("Content-Type"))

	p, err = r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "language", p.FormName())
	val, err := io.ReadAll(p)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(val))

	_, err = r.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStt_Transcribe(t *testing.T) {
	type upload struct {
		contentType string
		filename    string
		audio       string
		language    string
	}
	var got upload

	c, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transcribe", r.URL.Path)
		got.contentType = r.Header.Get("Content-Type")
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		f, hdr, err := r.FormFile("audio")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		got.filename = hdr.Filename
		got.audio = string(data)
		got.language = r.FormValue("language")
		writeJSON(t, w, http.StatusOK, models.Transcription{Text: "namaste"})
	})

	res, err := c.Stt.Transcribe(context.Background(), strings.NewReader("webm-bytes"), "", "hi")
	require.NoError(t, err)

	assert.Equal(t, "namaste", res.Text)
	assert.True(t, strings.HasPrefix(got.contentType, "multipart/form-data; boundary="))
	assert.Equal(t, DefaultAudioFilename, got.filename)
	assert.Equal(t, "webm-bytes", got.audio)
	assert.Equal(t, "hi", got.language)
}

func TestStt_TranscribeTimeout(t *testing.T) {
	c := New("http://backend",
		WithTimeout(time.Hour),
		WithTranscribeTimeout(20*time.Millisecond),
		WithHTTPClient(&http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		})}),
	)

	_, err := c.Stt.Transcribe(context.Background(), strings.NewReader("x"), "a.webm", "en")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindTimeout))
}

func TestStt_TranscribeTimeoutOutlastsDefault(t *testing.T) {
	c, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		writeJSON(t, w, http.StatusOK, map[string]string{"text": "namaste"})
	}, WithTimeout(30*time.Millisecond), WithTranscribeTimeout(5*time.Second))

	res, err := c.Stt.Transcribe(context.Background(), strings.NewReader("x"), "a.webm", "hi")
	require.NoError(t, err)
	assert.Equal(t, "namaste", res.Text)

	// Other calls keep the default bound.
	_, err = c.Jobs.GetStats(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindTimeout))
}

func TestStt_SpeechToProfileErrorField(t *testing.T) {
	c, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "whisper unavailable"})
	})

	profile, err := c.Stt.SpeechToProfile(context.Background(), strings.NewReader("x"), "", "en")
	require.Error(t, err)
	assert.Nil(t, profile)
	assert.Equal(t, "whisper unavailable", err.Error())
}

func TestCapture(t *testing.T) {
	ok := Capture(3, nil)
	assert.True(t, ok.OK())
	assert.Equal(t, 3, ok.Data)

	failed := Capture(3, &Error{Kind: KindHTTP, Message: "down"})
	assert.False(t, failed.OK())
	assert.Zero(t, failed.Data)
	assert.EqualError(t, failed.Err, "down")
}
