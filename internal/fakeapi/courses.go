package fakeapi

import (
	"net/http"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// DefaultCourseLimit is the page size of both catalogues.
const DefaultCourseLimit = 20

// CourseHandler serves /api/courses and /api/csr/courses.
type CourseHandler struct {
	Store *Store
}

func pagination(total, limit, offset int) models.Pagination {
	return models.Pagination{
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
		HasNext:    limit > 0 && offset+limit < total,
		HasPrev:    offset > 0,
	}
}

func courseQuery(r *http.Request) CourseQuery {
	q := r.URL.Query()
	return CourseQuery{
		Category:   q.Get("category"),
		SkillLevel: q.Get("skill_level"),
		Language:   q.Get("language"),
		Search:     q.Get("search"),
		Status:     models.CourseStatus(q.Get("status")),
	}
}

// List handles GET /api/courses.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(w, r, DefaultCourseLimit)
	if !ok {
		return
	}
	courses, total := h.Store.Courses(courseQuery(r), limit, offset)
	writeJSON(w, http.StatusOK, models.CourseList{Courses: courses, Pagination: pagination(total, limit, offset)})
}

// Search handles GET /api/courses/search?query=.
func (h *CourseHandler) Search(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(w, r, DefaultCourseLimit)
	if !ok {
		return
	}
	query := r.URL.Query().Get("query")
	if query == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "query is required")
		return
	}
	courses, total := h.Store.Courses(CourseQuery{Search: query}, limit, offset)
	writeJSON(w, http.StatusOK, models.CourseList{Courses: courses, Pagination: pagination(total, limit, offset)})
}

func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.Store.Course(id)
	if err != nil {
		writeStoreError(w, err, "Course")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CourseHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, _ := h.Store.CourseFacets()
	writeJSON(w, http.StatusOK, cats)
}

func (h *CourseHandler) SkillLevels(w http.ResponseWriter, r *http.Request) {
	_, levels := h.Store.CourseFacets()
	writeJSON(w, http.StatusOK, levels)
}

// ListCSR handles GET /api/csr/courses.
func (h *CourseHandler) ListCSR(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(w, r, DefaultCourseLimit)
	if !ok {
		return
	}
	courses, total := h.Store.CSRCourses(courseQuery(r), limit, offset)
	writeJSON(w, http.StatusOK, models.CSRCourseList{Courses: courses, Pagination: pagination(total, limit, offset)})
}

func (h *CourseHandler) GetCSR(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.Store.CSRCourse(id)
	if err != nil {
		writeStoreError(w, err, "Course")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateCSR handles POST /api/csr/courses.
func (h *CourseHandler) CreateCSR(w http.ResponseWriter, r *http.Request) {
	var in models.CSRCourseCreate
	if !decode(w, r, &in) {
		return
	}
	if in.Title == "" || in.CompanyID == 0 {
		writeDetail(w, http.StatusUnprocessableEntity, "title and company_id are required")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.CreateCSRCourse(in))
}

// SetCSRStatus handles PUT /api/csr/courses/{id}/status.
func (h *CourseHandler) SetCSRStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var body struct {
		Status models.CourseStatus `json:"status"`
	}
	if !decode(w, r, &body) {
		return
	}
	switch body.Status {
	case models.CourseActive, models.CourseInactive, models.CourseCompleted:
	default:
		writeDetail(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if err := h.Store.SetCSRCourseStatus(id, body.Status); err != nil {
		writeStoreError(w, err, "Course")
		return
	}
	writeMessage(w, "Course status updated")
}
