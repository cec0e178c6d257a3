// Package skills merges the Skill India catalogue and the CSR course
// catalogue into one paginated list for the skill builder.
package skills

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/gramudyogai/gramudyog-go/internal/api"
	"github.com/gramudyogai/gramudyog-go/internal/models"
)

const (
	// DefaultPageSize is the combined page size when none is given.
	DefaultPageSize = 12
	// RegularIDOffset is added to Skill India course ids so they never
	// collide with CSR course ids.
	RegularIDOffset = 10000

	regularTokens = 15
	noContentURL  = "#"
)

// Item formats.
const (
	FormatOnline = "Online Course"
	FormatCSR    = "CSR Course"
)

// CourseLister is the regular catalogue; *api.CourseAPI implements it.
type CourseLister interface {
	GetCourses(ctx context.Context, f api.CourseFilter) (models.CourseList, error)
}

// CSRCourseLister is the CSR catalogue; *api.CSRCourseAPI implements it.
type CSRCourseLister interface {
	GetCourses(ctx context.Context, f api.CSRCourseFilter) (models.CSRCourseList, error)
}

// Item is one entry of the merged list.
type Item struct {
	ID            int64               `json:"id"`
	Title         string              `json:"title"`
	Format        string              `json:"format"`
	IsCSR         bool                `json:"is_csr"`
	Language      string              `json:"language"`
	Provider      string              `json:"provider"`
	Uploader      string              `json:"uploader"`
	Duration      string              `json:"duration"`
	Tokens        int                 `json:"tokens"`
	ContentURL    string              `json:"content_url"`
	Skills        []string            `json:"skills"`
	Description   string              `json:"description"`
	Certification bool                `json:"certification"`
	MaxSeats      int                 `json:"max_seats"`
	StartDate     string              `json:"start_date"`
	Status        models.CourseStatus `json:"status"`
}

// Page is one merged page. Regular and CSR hold each side's outcome; a
// failed side contributes no items.
type Page struct {
	Items      []Item
	TotalCount int
	Regular    api.Result[models.CourseList]
	CSR        api.Result[models.CSRCourseList]
}

// Partial reports whether exactly one side failed.
func (p Page) Partial() bool {
	return p.Regular.OK() != p.CSR.OK()
}

// Catalog fetches merged pages.
type Catalog struct {
	courses CourseLister
	csr     CSRCourseLister
	log     *zap.Logger
}

// New returns a Catalog over the two listers. A nil log is replaced by a
// no-op logger.
func New(courses CourseLister, csr CSRCourseLister, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{courses: courses, csr: csr, log: log}
}

// FromClient builds a Catalog from the client facades.
func FromClient(c *api.Client, log *zap.Logger) *Catalog {
	return New(c.Courses, c.CSRCourses, log)
}

// Fetch loads page (1-based) of pageSize items, half from each catalogue,
// both requested concurrently. An empty search is not sent. Fetch fails
// only when both catalogues fail.
func (c *Catalog) Fetch(ctx context.Context, page, pageSize int, search string) (Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	half := pageSize / 2
	offset := (page - 1) * pageSize / 2

	var searchPtr *string
	if search != "" {
		searchPtr = &search
	}

	// Each side records its own outcome; one failing must not cancel the other.
	var out Page
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		out.Regular = api.Capture(c.courses.GetCourses(ctx, api.CourseFilter{
			Limit:  &half,
			Offset: &offset,
			Search: searchPtr,
		}))
	}()
	go func() {
		defer wg.Done()
		out.CSR = api.Capture(c.csr.GetCourses(ctx, api.CSRCourseFilter{
			Limit:  &half,
			Offset: &offset,
			Search: searchPtr,
		}))
	}()
	wg.Wait()

	if !out.Regular.OK() && !out.CSR.OK() {
		return out, fmt.Errorf("fetch courses: %w", errors.Join(out.Regular.Err, out.CSR.Err))
	}

	if out.Regular.OK() {
		for _, course := range out.Regular.Data.Courses {
			out.Items = append(out.Items, fromCourse(course))
		}
		out.TotalCount += out.Regular.Data.TotalCount
	} else {
		c.log.Warn("regular course catalogue unavailable", zap.Error(out.Regular.Err))
	}
	if out.CSR.OK() {
		for _, course := range out.CSR.Data.Courses {
			out.Items = append(out.Items, fromCSRCourse(course))
		}
		out.TotalCount += out.CSR.Data.TotalCount
	} else {
		c.log.Warn("CSR course catalogue unavailable", zap.Error(out.CSR.Err))
	}
	return out, nil
}

func fromCourse(c models.Course) Item {
	skills := c.Tags
	if skills == nil {
		skills = []string{}
	}
	return Item{
		ID:     c.ID + RegularIDOffset,
		Title:  c.Name,
		Format: FormatOnline,
		// The catalogue has no language column; skill level stands in.
		Language:    c.SkillLevel,
		Provider:    c.Provider,
		Duration:    c.Duration,
		Tokens:      regularTokens,
		ContentURL:  c.Link,
		Skills:      skills,
		Description: c.Description,
	}
}

func fromCSRCourse(c models.CSRCourse) Item {
	url := c.ContentURL
	if url == "" {
		url = noContentURL
	}
	return Item{
		ID:            c.ID,
		Title:         c.Title,
		Format:        FormatCSR,
		IsCSR:         true,
		Language:      c.Language,
		Uploader:      fmt.Sprintf("CSR Provider %d", c.CompanyID),
		Duration:      c.Duration,
		ContentURL:    url,
		Skills:        c.Skills,
		Description:   c.Description,
		Certification: c.Certification,
		MaxSeats:      c.MaxSeats,
		StartDate:     c.StartDate,
		Status:        c.Status,
	}
}
