package api

import (
	"context"
	"fmt"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// CourseFilter narrows CourseAPI.GetCourses. Nil fields are not sent.
type CourseFilter struct {
	Limit      *int
	Offset     *int
	Category   *string
	SkillLevel *string
	Search     *string
}

func (f CourseFilter) query() *Query {
	return NewQuery().
		Add("limit", f.Limit).
		Add("offset", f.Offset).
		Add("category", f.Category).
		Add("skill_level", f.SkillLevel).
		Add("search", f.Search)
}

// CourseAPI reads the Skill India course catalogue.
type CourseAPI struct {
	c *Client
}

func (a *CourseAPI) GetCourses(ctx context.Context, f CourseFilter) (models.CourseList, error) {
	return get[models.CourseList](ctx, a.c, "/api/courses"+f.query().Encode())
}

func (a *CourseAPI) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	return get[models.Course](ctx, a.c, fmt.Sprintf("/api/courses/%d", id))
}

// SearchCourses matches courses by text. Zero limit and offset are left
// out so the backend defaults apply.
func (a *CourseAPI) SearchCourses(ctx context.Context, query string, limit, offset int) (models.CourseList, error) {
	q := NewQuery().
		Add("query", query).
		AddNonZero("limit", limit).
		AddNonZero("offset", offset)
	return get[models.CourseList](ctx, a.c, "/api/courses/search"+q.Encode())
}

func (a *CourseAPI) GetCategories(ctx context.Context) ([]string, error) {
	return get[[]string](ctx, a.c, "/api/courses/categories")
}

func (a *CourseAPI) GetSkillLevels(ctx context.Context) ([]string, error) {
	return get[[]string](ctx, a.c, "/api/courses/skill-levels")
}
