package skills

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramudyogai/gramudyog-go/internal/api"
	"github.com/gramudyogai/gramudyog-go/internal/models"
)

type fakeCourses struct {
	list models.CourseList
	err  error
	got  api.CourseFilter
}

func (f *fakeCourses) GetCourses(_ context.Context, filter api.CourseFilter) (models.CourseList, error) {
	f.got = filter
	if f.err != nil {
		return models.CourseList{}, f.err
	}
	return f.list, nil
}

type fakeCSR struct {
	list models.CSRCourseList
	err  error
	got  api.CSRCourseFilter
}

func (f *fakeCSR) GetCourses(_ context.Context, filter api.CSRCourseFilter) (models.CSRCourseList, error) {
	f.got = filter
	if f.err != nil {
		return models.CSRCourseList{}, f.err
	}
	return f.list, nil
}

func regularList() models.CourseList {
	return models.CourseList{
		Courses: []models.Course{
			{ID: 1, Name: "Solar technician", SkillLevel: "Beginner", Provider: "NSDC", Link: "https://skillindia/1", Tags: []string{"solar"}},
			{ID: 2, Name: "Tailoring", Provider: "NSDC"},
		},
		Pagination: models.Pagination{TotalCount: 40},
	}
}

func csrList() models.CSRCourseList {
	return models.CSRCourseList{
		Courses: []models.CSRCourse{
			{ID: 1, CompanyID: 9, Title: "Digital literacy", Language: "hi", Skills: []string{"computers"}, Status: models.CourseActive},
		},
		Pagination: models.Pagination{TotalCount: 5},
	}
}

func TestCatalog_FetchMergesBothSides(t *testing.T) {
	courses := &fakeCourses{list: regularList()}
	csr := &fakeCSR{list: csrList()}

	page, err := New(courses, csr, nil).Fetch(context.Background(), 3, 12, "")
	require.NoError(t, err)

	assert.Equal(t, 6, *courses.got.Limit)
	assert.Equal(t, 12, *courses.got.Offset)
	assert.Nil(t, courses.got.Search)
	assert.Equal(t, 6, *csr.got.Limit)
	assert.Equal(t, 12, *csr.got.Offset)
	assert.Nil(t, csr.got.Search)

	require.Len(t, page.Items, 3)
	assert.Equal(t, 45, page.TotalCount)
	assert.False(t, page.Partial())

	solar := page.Items[0]
	assert.Equal(t, int64(10001), solar.ID)
	assert.Equal(t, "Solar technician", solar.Title)
	assert.Equal(t, FormatOnline, solar.Format)
	assert.Equal(t, "Beginner", solar.Language)
	assert.Equal(t, 15, solar.Tokens)
	assert.Equal(t, []string{"solar"}, solar.Skills)
	assert.Equal(t, []string{}, page.Items[1].Skills)

	lit := page.Items[2]
	assert.Equal(t, int64(1), lit.ID, "CSR ids are kept")
	assert.True(t, lit.IsCSR)
	assert.Equal(t, "CSR Provider 9", lit.Uploader)
	assert.Equal(t, "#", lit.ContentURL)
	assert.Zero(t, lit.Tokens)
}

func TestCatalog_FetchPartialFailure(t *testing.T) {
	down := &api.Error{Kind: api.KindHTTP, StatusCode: 503, Message: "catalogue offline"}

	tests := []struct {
		name      string
		courses   *fakeCourses
		csr       *fakeCSR
		wantItems int
		wantTotal int
	}{
		{"regular down", &fakeCourses{err: down}, &fakeCSR{list: csrList()}, 1, 5},
		{"csr down", &fakeCourses{list: regularList()}, &fakeCSR{err: down}, 2, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := New(tt.courses, tt.csr, nil).Fetch(context.Background(), 1, 12, "solar")
			require.NoError(t, err)
			assert.True(t, page.Partial())
			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, tt.wantTotal, page.TotalCount)
			assert.Equal(t, "solar", *tt.courses.got.Search)
		})
	}
}

func TestCatalog_FetchBothFail(t *testing.T) {
	regularErr := errors.New("regular down")
	csrErr := errors.New("csr down")

	page, err := New(&fakeCourses{err: regularErr}, &fakeCSR{err: csrErr}, nil).Fetch(context.Background(), 1, 0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, regularErr)
	assert.ErrorIs(t, err, csrErr)
	assert.Empty(t, page.Items)
}

func TestCatalog_FetchDefaults(t *testing.T) {
	courses := &fakeCourses{list: models.CourseList{}}
	csr := &fakeCSR{list: models.CSRCourseList{}}

	_, err := New(courses, csr, nil).Fetch(context.Background(), 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize/2, *courses.got.Limit)
	assert.Equal(t, 0, *courses.got.Offset)
}

func TestCatalog_FromClient(t *testing.T) {
	var mu sync.Mutex
	var uris []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		uris = append(uris, r.URL.RequestURI())
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/courses":
			_ = json.NewEncoder(w).Encode(regularList())
		case "/api/csr/courses":
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "db locked"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	page, err := FromClient(api.New(srv.URL), nil).Fetch(context.Background(), 2, 8, "")
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.EqualError(t, page.CSR.Err, "db locked")
	assert.ElementsMatch(t, []string{
		"/api/courses?limit=4&offset=4",
		"/api/csr/courses?limit=4&offset=4",
	}, uris)
}
