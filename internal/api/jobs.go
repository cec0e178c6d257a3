package api

import (
	"context"
	"fmt"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// JobFilter narrows GetJobs. Nil fields are not sent. Diverse is passed
// through to the backend as is.
type JobFilter struct {
	Limit           *int
	Offset          *int
	Location        *string
	Industry        *string
	Sector          *string
	JobType         *string
	ExperienceLevel *string
	Source          *string
	IsActive        *bool
	Search          *string
	Diverse         *bool
}

func (f JobFilter) query() *Query {
	return NewQuery().
		Add("limit", f.Limit).
		Add("offset", f.Offset).
		Add("location", f.Location).
		Add("industry", f.Industry).
		Add("sector", f.Sector).
		Add("job_type", f.JobType).
		Add("experience_level", f.ExperienceLevel).
		Add("source", f.Source).
		Add("is_active", f.IsActive).
		Add("search", f.Search).
		Add("diverse", f.Diverse)
}

// JobSearch is the parameter set of the dedicated search endpoint.
type JobSearch struct {
	Query    *string
	Location *string
	Industry *string
	JobType  *string
	Limit    *int
	Offset   *int
}

func (s JobSearch) query() *Query {
	return NewQuery().
		Add("query", s.Query).
		Add("location", s.Location).
		Add("industry", s.Industry).
		Add("job_type", s.JobType).
		Add("limit", s.Limit).
		Add("offset", s.Offset)
}

type JobAPI struct {
	c *Client
}

func (a *JobAPI) CreateJob(ctx context.Context, job models.JobCreate) (models.Message, error) {
	return post[models.Message](ctx, a.c, "/api/jobs", job)
}

// GetJobs returns one page of the job board and the total match count.
func (a *JobAPI) GetJobs(ctx context.Context, f JobFilter) (models.JobList, error) {
	return get[models.JobList](ctx, a.c, "/api/jobs"+f.query().Encode())
}

func (a *JobAPI) GetJob(ctx context.Context, id int64) (models.Job, error) {
	return get[models.Job](ctx, a.c, fmt.Sprintf("/api/jobs/%d", id))
}

func (a *JobAPI) SearchJobs(ctx context.Context, s JobSearch) (models.JobList, error) {
	return get[models.JobList](ctx, a.c, "/api/jobs/search"+s.query().Encode())
}

func (a *JobAPI) GetIndustries(ctx context.Context) ([]models.IndustryCount, error) {
	return get[[]models.IndustryCount](ctx, a.c, "/api/jobs/industries")
}

func (a *JobAPI) GetLocations(ctx context.Context) ([]models.LocationCount, error) {
	return get[[]models.LocationCount](ctx, a.c, "/api/jobs/locations")
}

func (a *JobAPI) GetSectors(ctx context.Context) ([]models.SectorCount, error) {
	return get[[]models.SectorCount](ctx, a.c, "/api/jobs/sectors")
}

func (a *JobAPI) GetStats(ctx context.Context) (models.JobStats, error) {
	return get[models.JobStats](ctx, a.c, "/api/jobs/stats")
}

func (a *JobAPI) UpdateJob(ctx context.Context, id int64, upd models.JobUpdate) (models.Message, error) {
	return put[models.Message](ctx, a.c, fmt.Sprintf("/api/jobs/%d", id), upd)
}

func (a *JobAPI) DeleteJob(ctx context.Context, id int64) (models.Message, error) {
	return del[models.Message](ctx, a.c, fmt.Sprintf("/api/jobs/%d", id))
}

// RecommendJob picks the best matching job for a free-text description of
// the user.
func (a *JobAPI) RecommendJob(ctx context.Context, userInfo string) (models.JobRecommendation, error) {
	body := struct {
		UserInfo string `json:"user_info"`
	}{userInfo}
	return post[models.JobRecommendation](ctx, a.c, "/api/recommend-job", body)
}
