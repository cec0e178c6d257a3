package api

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

const (
	// TranslateChunkSize is the number of runes sent per translation call.
	TranslateChunkSize = 400
	// SourceLanguage is the language texts are written in.
	SourceLanguage = "en"

	maxTranslateWorkers = 4
)

// TranslateAPI calls the translation service at the backend root.
type TranslateAPI struct {
	c *Client
}

// TranslateJSON translates every string leaf of v and returns the
// translated document.
func (a *TranslateAPI) TranslateJSON(ctx context.Context, v any, targetLanguage string) (json.RawMessage, error) {
	return post[json.RawMessage](ctx, a.c, "/translate", models.TranslateJSONRequest{
		JSON:           v,
		TargetLanguage: targetLanguage,
	})
}

// TranslateText translates text into lang in chunks of TranslateChunkSize
// runes. Chunks are translated concurrently and joined in order. A chunk
// the service rejects with an HTTP error, or answers without a translation,
// keeps its source text; transport failures fail the call. Text in
// SourceLanguage, or empty text, is returned unchanged without a call.
func (a *TranslateAPI) TranslateText(ctx context.Context, text, lang string) (string, error) {
	if text == "" || lang == SourceLanguage {
		return text, nil
	}

	chunks := splitRunes(text, TranslateChunkSize)
	out := make([]string, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxTranslateWorkers)
	for i, chunk := range chunks {
		g.Go(func() error {
			res, err := post[models.TranslateTextResponse](gctx, a.c, "/translate", models.TranslateTextRequest{
				Text: chunk,
				Lang: lang,
			})
			if IsKind(err, KindHTTP) {
				a.c.log.Debug("chunk left untranslated", zap.String("lang", lang), zap.Error(err))
				out[i] = chunk
				return nil
			}
			if err != nil {
				return err
			}
			if res.Translated == "" {
				out[i] = chunk
				return nil
			}
			out[i] = res.Translated
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(out, ""), nil
}

func splitRunes(s string, size int) []string {
	runes := []rune(s)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
