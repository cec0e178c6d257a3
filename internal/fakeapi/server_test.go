package fakeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/gramudyogai/gramudyog-go/internal/api"
	"github.com/gramudyogai/gramudyog-go/internal/models"
	"github.com/gramudyogai/gramudyog-go/internal/session"
	"github.com/gramudyogai/gramudyog-go/internal/skills"
)

const (
	testPhone    = "+911234567890"
	testPassword = "Str0ng!Pass"
)

// ServerSuite runs the typed client against a seeded fixture server.
type ServerSuite struct {
	suite.Suite
	reg     *prometheus.Registry
	fixture *Server
	srv     *httptest.Server
	sess    *session.Manager
	client  *api.Client
	ctx     context.Context
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.reg = prometheus.NewRegistry()
	s.fixture = New(Config{Secret: []byte("test-secret"), BcryptCost: bcrypt.MinCost, Registry: s.reg})
	Seed(s.fixture.Store)
	s.srv = httptest.NewServer(s.fixture)
	s.sess = session.NewManager(nil)
	s.client = api.New(s.srv.URL, api.WithSession(s.sess))
	s.ctx = context.Background()
}

func (s *ServerSuite) TearDownTest() {
	s.srv.Close()
}

func (s *ServerSuite) register() models.TokenResponse {
	tok, err := s.client.Auth.Register(s.ctx, models.RegisterRequest{
		Phone:           testPhone,
		Password:        testPassword,
		ConfirmPassword: testPassword,
		UserType:        models.UserIndividual,
		Name:            "Asha Devi",
	})
	s.Require().NoError(err)
	return tok
}

func (s *ServerSuite) TestRegisterLoginMe() {
	reg := s.register()
	token, err := s.sess.AuthToken(s.ctx)
	s.Require().NoError(err)
	s.Equal(reg.AccessToken, token)

	me, err := s.client.Auth.Me(s.ctx)
	s.Require().NoError(err)
	s.Equal(reg.UserID, me.ID)
	s.Equal("Asha Devi", me.Name)
	s.Nil(me.LastLogin)

	s.Require().NoError(s.sess.Clear(s.ctx))
	tok, err := s.client.Auth.Login(s.ctx, testPhone, testPassword)
	s.Require().NoError(err)
	userID, err := s.sess.UserID(s.ctx)
	s.Require().NoError(err)
	s.Equal(reg.UserID, tok.UserID)
	s.Equal(strconv.FormatInt(tok.UserID, 10), userID)

	me, err = s.client.Auth.Me(s.ctx)
	s.Require().NoError(err)
	s.NotNil(me.LastLogin)

	expired, err := s.sess.Expired(s.ctx, time.Now())
	s.Require().NoError(err)
	s.False(expired)
}

func (s *ServerSuite) TestAuthFailures() {
	s.register()

	_, err := s.client.Auth.Register(s.ctx, models.RegisterRequest{
		Phone: testPhone, Password: testPassword, ConfirmPassword: testPassword,
		UserType: models.UserIndividual, Name: "Again",
	})
	code, msg := api.AuthFailure(api.OpRegister, err)
	s.Equal(api.FailurePhoneExists, code)
	s.Equal("Phone number already registered", msg)

	_, err = s.client.Auth.Register(s.ctx, models.RegisterRequest{
		Phone: "+919999999999", Password: "weak", ConfirmPassword: "weak",
		UserType: models.UserIndividual, Name: "Weak",
	})
	code, _ = api.AuthFailure(api.OpRegister, err)
	s.Equal(api.FailureCheckInput, code)

	_, err = s.client.Auth.Login(s.ctx, testPhone, "Wr0ng!Pass")
	s.True(api.IsStatus(err, http.StatusUnauthorized))
	code, msg = api.AuthFailure(api.OpLogin, err)
	s.Equal(api.FailureInvalidCredentials, code)
	s.Equal("Invalid phone number or password", msg)

	u, _, err := s.fixture.Store.UserByPhone(testPhone)
	s.Require().NoError(err)
	s.Require().NoError(s.fixture.Store.SetActive(u.ID, false))
	_, err = s.client.Auth.Login(s.ctx, testPhone, testPassword)
	code, _ = api.AuthFailure(api.OpLogin, err)
	s.Equal(api.FailureAccountDeactivated, code)
}

func (s *ServerSuite) TestLogoutRevokesToken() {
	reg := s.register()

	_, err := s.client.Auth.Logout(s.ctx)
	s.Require().NoError(err)
	token, err := s.sess.AuthToken(s.ctx)
	s.Require().NoError(err)
	s.Empty(token)

	// A replayed token is rejected and the client drops it again.
	s.Require().NoError(s.sess.SetAuthToken(s.ctx, reg.AccessToken))
	_, err = s.client.Auth.Me(s.ctx)
	s.Require().Error(err)
	s.Equal("Could not validate credentials", err.Error())
	token, err = s.sess.AuthToken(s.ctx)
	s.Require().NoError(err)
	s.Empty(token)
}

func (s *ServerSuite) TestPasswordLifecycle() {
	s.register()

	const next = "N3w!Password"
	_, err := s.client.Auth.ChangePassword(s.ctx, models.ChangePasswordRequest{
		CurrentPassword: "Wr0ng!Pass", NewPassword: next, ConfirmPassword: next,
	})
	s.True(api.IsStatus(err, http.StatusUnauthorized))
	// The 401 cleared the session.
	_, err = s.client.Auth.Login(s.ctx, testPhone, testPassword)
	s.Require().NoError(err)

	_, err = s.client.Auth.ChangePassword(s.ctx, models.ChangePasswordRequest{
		CurrentPassword: testPassword, NewPassword: next, ConfirmPassword: next,
	})
	s.Require().NoError(err)
	_, err = s.client.Auth.Login(s.ctx, testPhone, next)
	s.Require().NoError(err)

	_, err = s.client.Auth.ForgotPassword(s.ctx, testPhone)
	s.Require().NoError(err)
	resetToken, ok := s.fixture.Store.ResetTokenFor(testPhone)
	s.Require().True(ok)

	const reset = "R3set!Password"
	req := models.ResetPasswordRequest{Phone: testPhone, NewPassword: reset, ConfirmPassword: reset}
	_, err = s.client.Auth.ResetPassword(s.ctx, req, resetToken)
	s.Require().NoError(err)
	_, err = s.client.Auth.ResetPassword(s.ctx, req, resetToken)
	s.Equal("Invalid reset token", err.Error())

	_, err = s.client.Auth.Login(s.ctx, testPhone, reset)
	s.Require().NoError(err)
	_, err = s.client.Auth.DeleteAccount(s.ctx, reset)
	s.Require().NoError(err)
	_, err = s.client.Auth.Login(s.ctx, testPhone, reset)
	s.True(api.IsStatus(err, http.StatusUnauthorized))
}

func (s *ServerSuite) TestProfile() {
	reg := s.register()

	_, err := s.client.Users.GetProfile(s.ctx)
	s.True(api.IsStatus(err, http.StatusNotFound))

	created, err := s.client.Users.CreateProfile(s.ctx, models.UserProfile{
		Location: "Jaipur", Skills: []string{"weaving"},
	})
	s.Require().NoError(err)
	s.Equal("Asha Devi", created.Name)
	s.Equal(models.UserIndividual, created.UserType)

	first, err := s.client.Users.GetProfile(s.ctx)
	s.Require().NoError(err)
	second, err := s.client.Users.GetProfile(s.ctx)
	s.Require().NoError(err)
	s.Equal(first, second)

	goals := "Start a handloom co-operative"
	updated, err := s.client.Users.UpdateProfile(s.ctx, models.UserProfileUpdate{Goals: &goals})
	s.Require().NoError(err)
	s.Equal(goals, updated.Goals)
	s.Equal([]string{"weaving"}, updated.Skills)

	// Public profiles need no token.
	anon := api.New(s.srv.URL)
	public, err := anon.Users.GetPublicProfile(s.ctx, reg.UserID)
	s.Require().NoError(err)
	s.Equal(goals, public.Goals)

	_, err = anon.Users.GetProfile(s.ctx)
	s.True(api.IsStatus(err, http.StatusUnauthorized))
	s.Equal("Not authenticated", err.Error())
}

func (s *ServerSuite) TestJobs() {
	limit, offset, search := 10, 0, "engineer"
	list, err := s.client.Jobs.GetJobs(s.ctx, api.JobFilter{Limit: &limit, Offset: &offset, Search: &search})
	s.Require().NoError(err)
	s.Equal(1, list.TotalCount)
	s.Require().Len(list.Jobs, 1)
	s.Equal("Field Sales Engineer", list.Jobs[0].Title)

	diverse := true
	all, err := s.client.Jobs.GetJobs(s.ctx, api.JobFilter{Limit: &limit, Diverse: &diverse})
	s.Require().NoError(err)
	s.Len(all.Jobs, 3)

	query := "tailoring"
	found, err := s.client.Jobs.SearchJobs(s.ctx, api.JobSearch{Query: &query})
	s.Require().NoError(err)
	s.Equal(1, found.TotalCount)

	industries, err := s.client.Jobs.GetIndustries(s.ctx)
	s.Require().NoError(err)
	s.Len(industries, 3)

	_, err = s.client.Jobs.CreateJob(s.ctx, models.JobCreate{
		Title: "Dairy Supervisor", Company: "Amul Co-op", Location: "Anand, Gujarat", JobType: "Full-time",
	})
	s.Require().NoError(err)
	stats, err := s.client.Jobs.GetStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(4, stats.TotalJobs)
	s.Equal(3, stats.JobByType["Full-time"])

	job, err := s.client.Jobs.GetJob(s.ctx, list.Jobs[0].ID)
	s.Require().NoError(err)
	s.Equal("AgroTech Implements", job.Company)

	_, err = s.client.Jobs.DeleteJob(s.ctx, job.ID)
	s.Require().NoError(err)
	_, err = s.client.Jobs.GetJob(s.ctx, job.ID)
	s.True(api.IsStatus(err, http.StatusNotFound))
	s.Equal("Job not found", err.Error())
}

func (s *ServerSuite) TestEvents() {
	reg := s.register()

	ev, err := s.client.Events.CreateEvent(s.ctx, models.EventCreate{
		Title: "Weavers Workshop", EventType: models.EventWorkshop, Location: "Varanasi", MaxParticipants: 2,
	})
	s.Require().NoError(err)
	s.Equal(reg.UserID, ev.CreatedBy)

	_, err = s.client.Events.JoinEvent(s.ctx, ev.ID, reg.UserID)
	s.Require().NoError(err)
	_, err = s.client.Events.JoinEvent(s.ctx, ev.ID, reg.UserID)
	s.True(api.IsStatus(err, http.StatusBadRequest))

	got, err := s.client.Events.GetEvent(s.ctx, ev.ID)
	s.Require().NoError(err)
	s.Equal(1, got.CurrentParticipants)

	mine, err := s.client.Users.GetUserEvents(s.ctx, reg.UserID)
	s.Require().NoError(err)
	s.Len(mine, 1)

	workshop := models.EventWorkshop
	filtered, err := s.client.Events.GetEvents(s.ctx, api.EventFilter{EventType: &workshop})
	s.Require().NoError(err)
	s.Len(filtered, 1)

	_, err = s.client.Events.UpdateEventStatus(s.ctx, ev.ID, models.EventPostponed, "monsoon")
	s.Require().NoError(err)
	hist, err := s.client.Events.GetEventStatusHistory(s.ctx, ev.ID)
	s.Require().NoError(err)
	s.Require().Len(hist, 1)
	s.Equal(reg.UserID, hist[0].ChangedBy)
	s.Equal("monsoon", hist[0].Reason)

	_, err = s.client.Events.LeaveEvent(s.ctx, ev.ID, reg.UserID)
	s.Require().NoError(err)
}

func (s *ServerSuite) TestCourseCatalog() {
	page, err := skills.FromClient(s.client, nil).Fetch(s.ctx, 1, 4, "")
	s.Require().NoError(err)
	s.False(page.Partial())
	s.Equal(4, page.TotalCount)
	s.Len(page.Items, 3)

	cats, err := s.client.Courses.GetCategories(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Apparel", "Energy"}, cats)

	found, err := s.client.Courses.SearchCourses(s.ctx, "solar", 0, 0)
	s.Require().NoError(err)
	s.Equal(1, found.TotalCount)

	course, err := s.client.CSRCourses.CreateCourse(s.ctx, models.CSRCourseCreate{
		CompanyID: 3, Title: "Mobile Repair", Language: "ta",
	})
	s.Require().NoError(err)
	s.Equal(models.CourseActive, course.Status)

	_, err = s.client.CSRCourses.UpdateStatus(s.ctx, course.ID, models.CourseCompleted)
	s.Require().NoError(err)
	got, err := s.client.CSRCourses.GetCourse(s.ctx, course.ID)
	s.Require().NoError(err)
	s.Equal(models.CourseCompleted, got.Status)
}

func (s *ServerSuite) TestNotifications() {
	reg := s.register()
	for _, title := range []string{"Event reminder", "Team invite"} {
		_, err := s.client.Notifications.Create(s.ctx, models.NotificationCreate{
			UserID: reg.UserID, Title: title, NotificationType: "event",
		})
		s.Require().NoError(err)
	}

	count, err := s.client.Notifications.UnreadCount(s.ctx, reg.UserID)
	s.Require().NoError(err)
	s.Equal(2, count.UnreadCount)

	list, err := s.client.Notifications.List(s.ctx, api.NotificationQuery{UserID: reg.UserID})
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Team invite", list[0].Title)

	_, err = s.client.Notifications.MarkAsRead(s.ctx, list[0].ID)
	s.Require().NoError(err)
	types, err := s.client.Notifications.Types(s.ctx, reg.UserID)
	s.Require().NoError(err)
	s.Equal(map[string]int{"event": 1}, types)

	_, err = s.client.Notifications.MarkAllAsRead(s.ctx, reg.UserID)
	s.Require().NoError(err)
	unread, err := s.client.Notifications.List(s.ctx, api.NotificationQuery{UserID: reg.UserID, UnreadOnly: true})
	s.Require().NoError(err)
	s.Empty(unread)
}

func (s *ServerSuite) TestSpeechAndTranslate() {
	res, err := s.client.Stt.Transcribe(s.ctx, strings.NewReader("mera naam Asha hai"), "", "hi")
	s.Require().NoError(err)
	s.Equal("mera naam Asha hai", res.Text)

	long := strings.Repeat("सौर ऊर्जा ", 100)
	out, err := s.client.Translate.TranslateText(s.ctx, long, "hi")
	s.Require().NoError(err)
	s.Equal(long, out)

	raw, err := s.client.Translate.TranslateJSON(s.ctx, map[string]string{"title": "Jobs"}, "ta")
	s.Require().NoError(err)
	s.JSONEq(`{"title":"Jobs"}`, string(raw))
}

func (s *ServerSuite) TestMetricsEndpoint() {
	_, err := s.client.Jobs.GetStats(s.ctx)
	s.Require().NoError(err)

	n, err := testutil.GatherAndCount(s.reg, "gramudyog_fakeapi_requests_total")
	s.Require().NoError(err)
	s.Positive(n)

	resp, err := http.Get(s.srv.URL + "/metrics")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *ServerSuite) TestRejectsForeignContentType() {
	resp, err := http.Post(s.srv.URL+"/api/auth/login", "text/plain", strings.NewReader("phone=1"))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusUnsupportedMediaType, resp.StatusCode)
}
