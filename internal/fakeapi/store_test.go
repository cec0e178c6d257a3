package fakeapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

func TestStore_UsersUniquePhone(t *testing.T) {
	s := NewStore()
	u, err := s.CreateUser(models.User{Phone: "+911234567890", Name: "Asha"}, []byte("h"))
	require.NoError(t, err)
	assert.True(t, u.IsActive)
	assert.NotEmpty(t, u.CreatedAt)

	_, err = s.CreateUser(models.User{Phone: "+911234567890"}, nil)
	assert.ErrorIs(t, err, ErrExists)

	got, hash, err := s.UserByPhone("+911234567890")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, []byte("h"), hash)

	require.NoError(t, s.DeleteUser(u.ID))
	_, _, err = s.UserByPhone("+911234567890")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_JobsFilterAndPage(t *testing.T) {
	s := NewStore()
	Seed(s)

	all, total := s.Jobs(JobQuery{}, 2, 0)
	assert.Equal(t, 3, total)
	require.Len(t, all, 2)
	assert.Greater(t, all[0].ID, all[1].ID, "newest first")

	rest, _ := s.Jobs(JobQuery{}, 2, 2)
	assert.Len(t, rest, 1)
	none, _ := s.Jobs(JobQuery{}, 2, 10)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	found, total := s.Jobs(JobQuery{Search: "IRRIGATION"}, 0, 0)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Field Sales Engineer", found[0].Title)

	inactive := false
	require.NoError(t, s.UpdateJob(found[0].ID, models.JobUpdate{IsActive: &inactive}))
	_, total = s.Jobs(JobQuery{IsActive: &inactive}, 0, 0)
	assert.Equal(t, 1, total)

	stats := s.JobStats()
	assert.Equal(t, 3, stats.TotalJobs)
	assert.Equal(t, 2, stats.ActiveJobs)
	assert.Equal(t, 2, stats.JobByType["Full-time"])
}

func TestStore_EventParticipation(t *testing.T) {
	s := NewStore()
	ev := s.CreateEvent(models.EventCreate{Title: "Meetup", MaxParticipants: 1}, 5)
	assert.Equal(t, models.EventActive, ev.Status)
	assert.NotNil(t, ev.SocialMediaPosts)

	require.NoError(t, s.JoinEvent(ev.ID, 7))
	assert.ErrorIs(t, s.JoinEvent(ev.ID, 7), ErrExists)
	assert.ErrorIs(t, s.JoinEvent(ev.ID, 8), errEventFull)
	assert.ErrorIs(t, s.JoinEvent(999, 7), ErrNotFound)

	mine := s.EventsOf(7)
	require.Len(t, mine, 1)
	assert.Len(t, s.EventsOf(5), 1, "creator sees own event")

	require.NoError(t, s.LeaveEvent(ev.ID, 7))
	assert.ErrorIs(t, s.LeaveEvent(ev.ID, 7), ErrNotFound)
	got, _ := s.Event(ev.ID)
	assert.Zero(t, got.CurrentParticipants)

	require.NoError(t, s.SetEventStatus(ev.ID, models.EventCompleted, 5, "done"))
	hist := s.EventStatusHistory(ev.ID)
	require.Len(t, hist, 1)
	assert.Equal(t, "active", hist[0].OldStatus)
	assert.Equal(t, "completed", hist[0].NewStatus)
}

func TestStore_Notifications(t *testing.T) {
	s := NewStore()
	a := s.CreateNotification(models.NotificationCreate{UserID: 1, Title: "a", NotificationType: "event"})
	s.CreateNotification(models.NotificationCreate{UserID: 1, Title: "b", NotificationType: "team_invite"})
	s.CreateNotification(models.NotificationCreate{UserID: 2, Title: "c", NotificationType: "event"})

	assert.Equal(t, map[string]int{"": 2, "event": 1, "team_invite": 1}, s.UnreadCount(1))

	require.NoError(t, s.MarkRead(a.ID, 0))
	unread := s.Notifications(1, true, "", 0, 0)
	require.Len(t, unread, 1)
	assert.Equal(t, "b", unread[0].Title)

	require.NoError(t, s.MarkRead(0, 1))
	assert.Empty(t, s.Notifications(1, true, "", 0, 0))
	assert.Len(t, s.Notifications(2, true, "", 0, 0), 1)
	assert.ErrorIs(t, s.MarkRead(999, 0), ErrNotFound)
}

func TestStore_Profiles(t *testing.T) {
	s := NewStore()
	_, err := s.Profile(1)
	assert.ErrorIs(t, err, ErrNotFound)

	p := s.PutProfile(1, models.UserProfile{Name: "Asha"})
	assert.Equal(t, int64(1), p.UserID)
	assert.Equal(t, []string{}, p.Skills)

	loc := "Jaipur"
	upd, err := s.UpdateProfile(1, models.UserProfileUpdate{Location: &loc, Skills: []string{"weaving"}})
	require.NoError(t, err)
	assert.Equal(t, "Asha", upd.Name)
	assert.Equal(t, "Jaipur", upd.Location)
	assert.Equal(t, []string{"weaving"}, upd.Skills)
	assert.Equal(t, p.CreatedAt, upd.CreatedAt)
}

func TestStore_CourseFacets(t *testing.T) {
	s := NewStore()
	Seed(s)

	cats, levels := s.CourseFacets()
	assert.Equal(t, []string{"Apparel", "Energy"}, cats)
	assert.Equal(t, []string{"Beginner", "Intermediate"}, levels)

	courses, total := s.Courses(CourseQuery{Category: "energy"}, 1, 0)
	assert.Equal(t, 2, total)
	assert.Len(t, courses, 1)

	csr, total := s.CSRCourses(CourseQuery{Language: "hi"}, 0, 0)
	assert.Equal(t, 1, total)
	assert.Equal(t, models.CourseActive, csr[0].Status)
}
