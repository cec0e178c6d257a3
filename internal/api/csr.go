package api

import (
	"context"
	"fmt"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// CSRCourseFilter narrows CSRCourseAPI.GetCourses. Nil fields are not sent.
type CSRCourseFilter struct {
	Limit      *int
	Offset     *int
	Category   *string
	SkillLevel *string
	Language   *string
	Source     *string
	IsActive   *bool
	Search     *string
	Status     *models.CourseStatus
}

func (f CSRCourseFilter) query() *Query {
	return NewQuery().
		Add("limit", f.Limit).
		Add("offset", f.Offset).
		Add("category", f.Category).
		Add("skill_level", f.SkillLevel).
		Add("language", f.Language).
		Add("source", f.Source).
		Add("is_active", f.IsActive).
		Add("search", f.Search).
		Add("status", f.Status)
}

// DefaultCompanyEventsLimit is used by GetCompanyEvents when limit is not
// positive.
const DefaultCompanyEventsLimit = 10

// CSRCourseAPI manages company-sponsored courses and the CSR dashboard.
type CSRCourseAPI struct {
	c *Client
}

func (a *CSRCourseAPI) CreateCourse(ctx context.Context, course models.CSRCourseCreate) (models.CSRCourse, error) {
	return post[models.CSRCourse](ctx, a.c, "/api/csr/courses", course)
}

func (a *CSRCourseAPI) GetCourses(ctx context.Context, f CSRCourseFilter) (models.CSRCourseList, error) {
	return get[models.CSRCourseList](ctx, a.c, "/api/csr/courses"+f.query().Encode())
}

func (a *CSRCourseAPI) GetCourse(ctx context.Context, id int64) (models.CSRCourse, error) {
	return get[models.CSRCourse](ctx, a.c, fmt.Sprintf("/api/csr/courses/%d", id))
}

// GetCategories and GetSkillLevels share the catalogue-wide lists with
// CourseAPI.
func (a *CSRCourseAPI) GetCategories(ctx context.Context) ([]string, error) {
	return get[[]string](ctx, a.c, "/api/courses/categories")
}

func (a *CSRCourseAPI) GetSkillLevels(ctx context.Context) ([]string, error) {
	return get[[]string](ctx, a.c, "/api/courses/skill-levels")
}

func (a *CSRCourseAPI) GetStats(ctx context.Context) (models.CourseStats, error) {
	return get[models.CourseStats](ctx, a.c, "/api/courses/stats")
}

func (a *CSRCourseAPI) UpdateCourse(ctx context.Context, id int64, upd models.CSRCourseUpdate) (models.Message, error) {
	return put[models.Message](ctx, a.c, fmt.Sprintf("/api/csr/courses/%d", id), upd)
}

func (a *CSRCourseAPI) DeleteCourse(ctx context.Context, id int64) (models.Message, error) {
	return del[models.Message](ctx, a.c, fmt.Sprintf("/api/csr/courses/%d", id))
}

func (a *CSRCourseAPI) Enroll(ctx context.Context, courseID, userID int64) (models.Message, error) {
	return post[models.Message](ctx, a.c, fmt.Sprintf("/api/csr/courses/%d/enroll", courseID), userRef{UserID: userID})
}

func (a *CSRCourseAPI) UpdateStatus(ctx context.Context, courseID int64, status models.CourseStatus) (models.Message, error) {
	body := struct {
		Status models.CourseStatus `json:"status"`
	}{status}
	return put[models.Message](ctx, a.c, fmt.Sprintf("/api/csr/courses/%d/status", courseID), body)
}

// InitializeDashboard seeds the CSR dashboard tables on the backend.
func (a *CSRCourseAPI) InitializeDashboard(ctx context.Context) (map[string]any, error) {
	return post[map[string]any](ctx, a.c, "/api/csr/dashboard/initialize", struct{}{})
}

func (a *CSRCourseAPI) GetCompanies(ctx context.Context) ([]map[string]any, error) {
	return get[[]map[string]any](ctx, a.c, "/api/csr/dashboard/companies")
}

func (a *CSRCourseAPI) GetCompanyMetrics(ctx context.Context, companyID int64) (map[string]any, error) {
	return get[map[string]any](ctx, a.c, fmt.Sprintf("/api/csr/dashboard/company/%d/metrics", companyID))
}

func (a *CSRCourseAPI) GetCompanyEvents(ctx context.Context, companyID int64, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = DefaultCompanyEventsLimit
	}
	q := NewQuery().Add("limit", limit)
	return get[[]map[string]any](ctx, a.c, fmt.Sprintf("/api/csr/dashboard/company/%d/events", companyID)+q.Encode())
}
