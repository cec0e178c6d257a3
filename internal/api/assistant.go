package api

import (
	"context"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// AssistantAPI is the conversational helper and course recommender.
type AssistantAPI struct {
	c *Client
}

// Ask returns the plain answer of the basic assistant.
func (a *AssistantAPI) Ask(ctx context.Context, text, lang string) (models.AssistantResponse, error) {
	return post[models.AssistantResponse](ctx, a.c, "/api/ai-assistant", models.AssistantRequest{Text: text, Lang: lang})
}

// AskEnhanced routes the question to a feature (jobs, schemes, courses,
// ...) and returns structured data for it alongside the answer.
func (a *AssistantAPI) AskEnhanced(ctx context.Context, text, lang string) (models.AssistantResponse, error) {
	return post[models.AssistantResponse](ctx, a.c, "/api/ai-assistant-enhanced", models.AssistantRequest{Text: text, Lang: lang})
}

func (a *AssistantAPI) SuggestCourses(ctx context.Context, query string) (models.CourseSuggestions, error) {
	body := struct {
		Query string `json:"query"`
	}{query}
	return post[models.CourseSuggestions](ctx, a.c, "/api/suggest-courses-with-platform", body)
}

// DefaultSchemeSearchLimit matches the backend default.
const DefaultSchemeSearchLimit = 10

// SchemeAPI covers government schemes and business ideas. Its endpoints
// live at the backend root, outside /api.
type SchemeAPI struct {
	c *Client
}

// RecommendSchemes explains the schemes relevant to an occupation.
func (a *SchemeAPI) RecommendSchemes(ctx context.Context, occupation string) (models.SchemeRecommendation, error) {
	body := struct {
		Occupation string `json:"occupation"`
	}{occupation}
	return post[models.SchemeRecommendation](ctx, a.c, "/schemes", body)
}

func (a *SchemeAPI) SearchSchemes(ctx context.Context, query string, limit int) ([]models.Scheme, error) {
	if limit <= 0 {
		limit = DefaultSchemeSearchLimit
	}
	q := NewQuery().Add("query", query).Add("limit", limit)
	return get[[]models.Scheme](ctx, a.c, "/schemes/search"+q.Encode())
}

// SuggestBusiness proposes small business ideas for a skill description.
func (a *SchemeAPI) SuggestBusiness(ctx context.Context, skills string) (models.BusinessSuggestions, error) {
	body := struct {
		Skills string `json:"skills"`
	}{skills}
	return post[models.BusinessSuggestions](ctx, a.c, "/suggest-business", body)
}
