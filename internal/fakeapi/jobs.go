package fakeapi

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// DefaultJobLimit is the page size of the job board.
const DefaultJobLimit = 20

// JobHandler serves /api/jobs.
type JobHandler struct {
	Store *Store
}

// List handles GET /api/jobs. diverse is accepted and ignored.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(w, r, DefaultJobLimit)
	if !ok {
		return
	}
	q := r.URL.Query()
	jobs, total := h.Store.Jobs(JobQuery{
		Search:   q.Get("search"),
		Location: q.Get("location"),
		Industry: q.Get("industry"),
		Sector:   q.Get("sector"),
		JobType:  q.Get("job_type"),
		Source:   q.Get("source"),
		IsActive: boolParam(r, "is_active"),
	}, limit, offset)
	writeJSON(w, http.StatusOK, models.JobList{Jobs: jobs, TotalCount: total})
}

// Search handles GET /api/jobs/search?query=.
func (h *JobHandler) Search(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(w, r, DefaultJobLimit)
	if !ok {
		return
	}
	q := r.URL.Query()
	if strings.TrimSpace(q.Get("query")) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "query is required")
		return
	}
	jobs, total := h.Store.Jobs(JobQuery{
		Search:   q.Get("query"),
		Location: q.Get("location"),
		Industry: q.Get("industry"),
		JobType:  q.Get("job_type"),
	}, limit, offset)
	writeJSON(w, http.StatusOK, models.JobList{Jobs: jobs, TotalCount: total})
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	j, err := h.Store.Job(id)
	if err != nil {
		writeStoreError(w, err, "Job")
		return
	}
	writeJSON(w, http.StatusOK, j)
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.JobCreate
	if !decode(w, r, &in) {
		return
	}
	if in.Title == "" || in.Company == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "title and company are required")
		return
	}
	h.Store.CreateJob(in)
	writeMessage(w, "Job created successfully")
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var upd models.JobUpdate
	if !decode(w, r, &upd) {
		return
	}
	if err := h.Store.UpdateJob(id, upd); err != nil {
		writeStoreError(w, err, "Job")
		return
	}
	writeMessage(w, "Job updated successfully")
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteJob(id); err != nil {
		writeStoreError(w, err, "Job")
		return
	}
	writeMessage(w, "Job deleted successfully")
}

// Industries handles GET /api/jobs/industries.
func (h *JobHandler) Industries(w http.ResponseWriter, r *http.Request) {
	out := []models.IndustryCount{}
	for _, f := range facets(h.Store.JobFacets(func(j *models.Job) string { return j.Industry })) {
		out = append(out, models.IndustryCount{Industry: f.name, Count: f.count})
	}
	writeJSON(w, http.StatusOK, out)
}

// Locations handles GET /api/jobs/locations.
func (h *JobHandler) Locations(w http.ResponseWriter, r *http.Request) {
	out := []models.LocationCount{}
	for _, f := range facets(h.Store.JobFacets(func(j *models.Job) string { return j.Location })) {
		out = append(out, models.LocationCount{Location: f.name, Count: f.count})
	}
	writeJSON(w, http.StatusOK, out)
}

// Sectors handles GET /api/jobs/sectors.
func (h *JobHandler) Sectors(w http.ResponseWriter, r *http.Request) {
	out := []models.SectorCount{}
	for _, f := range facets(h.Store.JobFacets(func(j *models.Job) string { return j.Sector })) {
		out = append(out, models.SectorCount{Sector: f.name, Count: f.count})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *JobHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.JobStats())
}

type facet struct {
	name  string
	count int
}

// facets orders counts by count descending, then name.
func facets(m map[string]int) []facet {
	out := make([]facet, 0, len(m))
	for k, v := range m {
		out = append(out, facet{k, v})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].count != out[b].count {
			return out[a].count > out[b].count
		}
		return out[a].name < out[b].name
	})
	return out
}
