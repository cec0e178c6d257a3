// Package fakeapi is an in-memory stand-in for the GramUdyog backend. It
// serves the subset of the REST contract the CLI and the end-to-end tests
// exercise, with the same JSON shapes and FastAPI-style error bodies.
package fakeapi

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// Store errors. Handlers map them to HTTP statuses.
var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
)

// account is a user row with its credentials.
type account struct {
	models.User
	PasswordHash []byte
}

// Store holds every table of the fixture backend. It is safe for
// concurrent use.
type Store struct {
	mu sync.RWMutex

	now func() time.Time

	nextID        int64
	users         map[int64]*account
	phones        map[string]int64
	profiles      map[int64]*models.UserProfile
	jobs          map[int64]*models.Job
	events        map[int64]*models.Event
	participants  map[int64]map[int64]bool
	statusLog     []models.EventStatusChange
	courses       map[int64]*models.Course
	csrCourses    map[int64]*models.CSRCourse
	notifications map[int64]*models.Notification
	resetTokens   map[string]string
	revoked       map[string]bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		now:           time.Now,
		users:         make(map[int64]*account),
		phones:        make(map[string]int64),
		profiles:      make(map[int64]*models.UserProfile),
		jobs:          make(map[int64]*models.Job),
		events:        make(map[int64]*models.Event),
		participants:  make(map[int64]map[int64]bool),
		courses:       make(map[int64]*models.Course),
		csrCourses:    make(map[int64]*models.CSRCourse),
		notifications: make(map[int64]*models.Notification),
		resetTokens:   make(map[string]string),
		revoked:       make(map[string]bool),
	}
}

// id hands out ids from one sequence shared by all tables. Callers hold mu.
func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) stamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// CreateUser inserts an account. ErrExists means the phone is taken.
func (s *Store) CreateUser(u models.User, hash []byte) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.phones[u.Phone]; ok {
		return models.User{}, ErrExists
	}
	u.ID = s.id()
	u.IsActive = true
	u.CreatedAt = s.stamp()
	s.users[u.ID] = &account{User: u, PasswordHash: hash}
	s.phones[u.Phone] = u.ID
	return u, nil
}

// UserByPhone returns the account and its password hash.
func (s *Store) UserByPhone(phone string) (models.User, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.phones[phone]
	if !ok {
		return models.User{}, nil, ErrNotFound
	}
	a := s.users[id]
	return a.User, a.PasswordHash, nil
}

func (s *Store) User(id int64) (models.User, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.users[id]
	if !ok {
		return models.User{}, nil, ErrNotFound
	}
	return a.User, a.PasswordHash, nil
}

// TouchLogin records a successful login.
func (s *Store) TouchLogin(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.users[id]; ok {
		a.LastLogin = s.stamp()
	}
}

// SetActive toggles an account. Deactivated accounts cannot log in.
func (s *Store) SetActive(id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	a.IsActive = active
	return nil
}

func (s *Store) SetPassword(id int64, hash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	a.PasswordHash = hash
	return nil
}

// DeleteUser removes the account and everything it owns.
func (s *Store) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.phones, a.Phone)
	delete(s.users, id)
	delete(s.profiles, id)
	for nid, n := range s.notifications {
		if n.UserID == id {
			delete(s.notifications, nid)
		}
	}
	return nil
}

// PutResetToken remembers a password reset token for phone.
func (s *Store) PutResetToken(token, phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetTokens[token] = phone
}

// TakeResetToken consumes token and returns the phone it was issued for.
func (s *Store) TakeResetToken(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	phone, ok := s.resetTokens[token]
	delete(s.resetTokens, token)
	return phone, ok
}

// ResetTokenFor returns a pending reset token of phone.
func (s *Store) ResetTokenFor(phone string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for tok, p := range s.resetTokens {
		if p == phone {
			return tok, true
		}
	}
	return "", false
}

// Revoke blacklists a token id until the process exits.
func (s *Store) Revoke(jti string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = true
}

func (s *Store) Revoked(jti string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revoked[jti]
}

// Profiles.

func (s *Store) Profile(userID int64) (models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return models.UserProfile{}, ErrNotFound
	}
	return *p, nil
}

// PutProfile creates or replaces the profile of userID.
func (s *Store) PutProfile(userID int64, p models.UserProfile) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.stamp()
	p.UserID = userID
	if old, ok := s.profiles[userID]; ok {
		p.CreatedAt = old.CreatedAt
	} else {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	normalizeProfile(&p)
	s.profiles[userID] = &p
	return p
}

// UpdateProfile applies the non-nil fields of upd.
func (s *Store) UpdateProfile(userID int64, upd models.UserProfileUpdate) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return models.UserProfile{}, ErrNotFound
	}
	setString(&p.Name, upd.Name)
	setString(&p.Location, upd.Location)
	setString(&p.State, upd.State)
	setString(&p.Experience, upd.Experience)
	setString(&p.Goals, upd.Goals)
	if upd.Organization != nil {
		org := *upd.Organization
		p.Organization = &org
	}
	if upd.Skills != nil {
		p.Skills = upd.Skills
	}
	if upd.Achievements != nil {
		p.Achievements = upd.Achievements
	}
	if upd.RecentActivities != nil {
		p.RecentActivities = upd.RecentActivities
	}
	if upd.Recommendations != nil {
		p.Recommendations = upd.Recommendations
	}
	if upd.NetworkingSuggestions != nil {
		p.NetworkingSuggestions = upd.NetworkingSuggestions
	}
	p.UpdatedAt = s.stamp()
	return *p, nil
}

func normalizeProfile(p *models.UserProfile) {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Achievements == nil {
		p.Achievements = []models.Achievement{}
	}
	if p.RecentActivities == nil {
		p.RecentActivities = []models.Activity{}
	}
	if p.Recommendations == nil {
		p.Recommendations = []models.Recommendation{}
	}
	if p.NetworkingSuggestions == nil {
		p.NetworkingSuggestions = []string{}
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Jobs.

// JobQuery filters the job board. Zero fields match everything.
type JobQuery struct {
	Search   string
	Location string
	Industry string
	Sector   string
	JobType  string
	Source   string
	IsActive *bool
}

func (q JobQuery) match(j *models.Job) bool {
	if q.Search != "" {
		hay := strings.ToLower(j.Title + " " + j.Description + " " + j.Company + " " + strings.Join(j.SkillsRequired, " "))
		if !strings.Contains(hay, strings.ToLower(q.Search)) {
			return false
		}
	}
	if q.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(q.Location)) {
		return false
	}
	if q.Industry != "" && !strings.EqualFold(j.Industry, q.Industry) {
		return false
	}
	if q.Sector != "" && !strings.EqualFold(j.Sector, q.Sector) {
		return false
	}
	if q.JobType != "" && !strings.EqualFold(j.JobType, q.JobType) {
		return false
	}
	if q.Source != "" && j.Source != q.Source {
		return false
	}
	if q.IsActive != nil && jobActive(j) != *q.IsActive {
		return false
	}
	return true
}

func jobActive(j *models.Job) bool {
	return j.IsActive == nil || *j.IsActive
}

func (s *Store) CreateJob(in models.JobCreate) models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	j := models.Job{
		ID:                  s.id(),
		Title:               in.Title,
		Description:         in.Description,
		Company:             in.Company,
		Location:            in.Location,
		CompanyContact:      in.CompanyContact,
		Pay:                 in.Pay,
		CreatedAt:           s.stamp(),
		JobTitle:            in.JobTitle,
		CompanyName:         in.CompanyName,
		SalaryRange:         in.SalaryRange,
		JobType:             in.JobType,
		ExperienceRequired:  in.ExperienceRequired,
		SkillsRequired:      in.SkillsRequired,
		Industry:            in.Industry,
		Sector:              in.Sector,
		PostedDate:          in.PostedDate,
		ApplicationDeadline: in.ApplicationDeadline,
		EmploymentType:      in.EmploymentType,
		Source:              in.Source,
		Tags:                in.Tags,
		IsActive:            in.IsActive,
	}
	s.jobs[j.ID] = &j
	return j
}

func (s *Store) Job(id int64) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.jobs[id]
	if !ok {
		return models.Job{}, ErrNotFound
	}
	return *j, nil
}

// Jobs returns one page of matching jobs, newest first, and the number of
// matches.
func (s *Store) Jobs(q JobQuery, limit, offset int) ([]models.Job, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []models.Job
	for _, j := range s.jobs {
		if q.match(j) {
			all = append(all, *j)
		}
	}
	sort.Slice(all, func(a, b int) bool { return all[a].ID > all[b].ID })
	return page(all, limit, offset), len(all)
}

func (s *Store) UpdateJob(id int64, upd models.JobUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return ErrNotFound
	}
	setString(&j.Title, upd.Title)
	setString(&j.Description, upd.Description)
	setString(&j.Company, upd.Company)
	setString(&j.Location, upd.Location)
	setString(&j.CompanyContact, upd.CompanyContact)
	setString(&j.Pay, upd.Pay)
	setString(&j.JobTitle, upd.JobTitle)
	setString(&j.CompanyName, upd.CompanyName)
	setString(&j.SalaryRange, upd.SalaryRange)
	setString(&j.JobType, upd.JobType)
	setString(&j.ExperienceRequired, upd.ExperienceRequired)
	setString(&j.Industry, upd.Industry)
	setString(&j.Sector, upd.Sector)
	setString(&j.PostedDate, upd.PostedDate)
	setString(&j.ApplicationDeadline, upd.ApplicationDeadline)
	setString(&j.EmploymentType, upd.EmploymentType)
	setString(&j.Source, upd.Source)
	if upd.SkillsRequired != nil {
		j.SkillsRequired = upd.SkillsRequired
	}
	if upd.Tags != nil {
		j.Tags = upd.Tags
	}
	if upd.IsActive != nil {
		active := *upd.IsActive
		j.IsActive = &active
	}
	return nil
}

func (s *Store) DeleteJob(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(s.jobs, id)
	return nil
}

// JobFacets counts jobs by a field picked by key.
func (s *Store) JobFacets(key func(*models.Job) string) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int)
	for _, j := range s.jobs {
		if k := key(j); k != "" {
			out[k]++
		}
	}
	return out
}

func (s *Store) JobStats() models.JobStats {
	stats := models.JobStats{
		JobByIndustry: s.JobFacets(func(j *models.Job) string { return j.Industry }),
		JobByLocation: s.JobFacets(func(j *models.Job) string { return j.Location }),
		JobByType:     s.JobFacets(func(j *models.Job) string { return j.JobType }),
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats.TotalJobs = len(s.jobs)
	for _, j := range s.jobs {
		if jobActive(j) {
			stats.ActiveJobs++
		}
	}
	return stats
}

// Events.

// EventQuery filters events. Zero fields match everything.
type EventQuery struct {
	EventType models.EventType
	Status    models.EventStatus
	Location  string
	Organizer int64
}

func (s *Store) CreateEvent(in models.EventCreate, createdBy int64) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.stamp()
	status := in.Status
	if status == "" {
		status = models.EventActive
	}
	ev := models.Event{
		ID:                  s.id(),
		Title:               in.Title,
		Description:         in.Description,
		EventType:           in.EventType,
		Category:            in.Category,
		Location:            in.Location,
		State:               in.State,
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		MaxParticipants:     in.MaxParticipants,
		Budget:              in.Budget,
		PrizePool:           in.PrizePool,
		Organizer:           in.Organizer,
		CreatedBy:           createdBy,
		SkillsRequired:      nonNil(in.SkillsRequired),
		Tags:                nonNil(in.Tags),
		Status:              status,
		ImpactMetrics:       in.ImpactMetrics,
		MarketingHighlights: in.MarketingHighlights,
		SuccessMetrics:      in.SuccessMetrics,
		Sections:            in.Sections,
		SocialMediaPosts:    []models.SocialMediaPost{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	s.events[ev.ID] = &ev
	s.participants[ev.ID] = make(map[int64]bool)
	return ev
}

func (s *Store) Event(id int64) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ev, ok := s.events[id]
	if !ok {
		return models.Event{}, ErrNotFound
	}
	return *ev, nil
}

func (s *Store) Events(q EventQuery, limit, offset int) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Event{}
	for _, ev := range s.events {
		if q.EventType != "" && ev.EventType != q.EventType {
			continue
		}
		if q.Status != "" && ev.Status != q.Status {
			continue
		}
		if q.Location != "" && !strings.Contains(strings.ToLower(ev.Location), strings.ToLower(q.Location)) {
			continue
		}
		if q.Organizer != 0 && ev.Organizer.ID != q.Organizer {
			continue
		}
		out = append(out, *ev)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID > out[b].ID })
	return page(out, limit, offset)
}

// JoinEvent adds userID to the participants. ErrExists means the user has
// already joined; errEventFull that no seat is left.
func (s *Store) JoinEvent(eventID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.events[eventID]
	if !ok {
		return ErrNotFound
	}
	if s.participants[eventID][userID] {
		return ErrExists
	}
	if ev.MaxParticipants > 0 && ev.CurrentParticipants >= ev.MaxParticipants {
		return errEventFull
	}
	s.participants[eventID][userID] = true
	ev.CurrentParticipants++
	return nil
}

func (s *Store) LeaveEvent(eventID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.events[eventID]
	if !ok || !s.participants[eventID][userID] {
		return ErrNotFound
	}
	delete(s.participants[eventID], userID)
	ev.CurrentParticipants--
	return nil
}

// EventsOf returns the events userID created or joined.
func (s *Store) EventsOf(userID int64) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Event{}
	for id, ev := range s.events {
		if ev.CreatedBy == userID || s.participants[id][userID] {
			out = append(out, *ev)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

// SetEventStatus changes the status and appends to the history.
func (s *Store) SetEventStatus(eventID int64, status models.EventStatus, changedBy int64, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.events[eventID]
	if !ok {
		return ErrNotFound
	}
	now := s.stamp()
	s.statusLog = append(s.statusLog, models.EventStatusChange{
		ID:        s.id(),
		EventID:   eventID,
		OldStatus: string(ev.Status),
		NewStatus: string(status),
		ChangedBy: changedBy,
		Reason:    reason,
		ChangedAt: now,
	})
	ev.Status = status
	ev.UpdatedAt = now
	return nil
}

func (s *Store) EventStatusHistory(eventID int64) []models.EventStatusChange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.EventStatusChange{}
	for _, c := range s.statusLog {
		if c.EventID == eventID {
			out = append(out, c)
		}
	}
	return out
}

// Courses.

func (s *Store) AddCourse(c models.Course) models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	if c.CreatedAt == "" {
		c.CreatedAt = s.stamp()
	}
	c.Tags = nonNil(c.Tags)
	s.courses[c.ID] = &c
	return c
}

func (s *Store) Course(id int64) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courses[id]
	if !ok {
		return models.Course{}, ErrNotFound
	}
	return *c, nil
}

// CourseQuery filters both course catalogues.
type CourseQuery struct {
	Category   string
	SkillLevel string
	Language   string
	Search     string
	Status     models.CourseStatus
}

func (s *Store) Courses(q CourseQuery, limit, offset int) ([]models.Course, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []models.Course
	for _, c := range s.courses {
		if q.Category != "" && !strings.EqualFold(c.Category, q.Category) {
			continue
		}
		if q.SkillLevel != "" && !strings.EqualFold(c.SkillLevel, q.SkillLevel) {
			continue
		}
		if q.Search != "" && !containsFold(c.Name+" "+c.Description+" "+strings.Join(c.Tags, " "), q.Search) {
			continue
		}
		all = append(all, *c)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].ID < all[b].ID })
	return page(all, limit, offset), len(all)
}

// CourseFacets returns the distinct categories and skill levels.
func (s *Store) CourseFacets() (categories, levels []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cats, lvls := map[string]bool{}, map[string]bool{}
	for _, c := range s.courses {
		if c.Category != "" {
			cats[c.Category] = true
		}
		if c.SkillLevel != "" {
			lvls[c.SkillLevel] = true
		}
	}
	return sortedKeys(cats), sortedKeys(lvls)
}

func (s *Store) CreateCSRCourse(in models.CSRCourseCreate) models.CSRCourse {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.stamp()
	status := in.Status
	if status == "" {
		status = models.CourseActive
	}
	c := models.CSRCourse{
		ID:            s.id(),
		CompanyID:     in.CompanyID,
		Title:         in.Title,
		Description:   in.Description,
		Skills:        nonNil(in.Skills),
		Duration:      in.Duration,
		Language:      in.Language,
		Certification: in.Certification,
		MaxSeats:      in.MaxSeats,
		StartDate:     in.StartDate,
		Status:        status,
		ContentURL:    in.ContentURL,
		CreatedAt:     now,
		UpdatedAt:     now,
		Category:      in.Category,
		SkillLevel:    in.SkillLevel,
		Provider:      in.Provider,
		Source:        in.Source,
		Tags:          in.Tags,
	}
	s.csrCourses[c.ID] = &c
	return c
}

func (s *Store) CSRCourse(id int64) (models.CSRCourse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.csrCourses[id]
	if !ok {
		return models.CSRCourse{}, ErrNotFound
	}
	return *c, nil
}

func (s *Store) CSRCourses(q CourseQuery, limit, offset int) ([]models.CSRCourse, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []models.CSRCourse
	for _, c := range s.csrCourses {
		if q.Language != "" && !strings.EqualFold(c.Language, q.Language) {
			continue
		}
		if q.Status != "" && c.Status != q.Status {
			continue
		}
		if q.Category != "" && !strings.EqualFold(c.Category, q.Category) {
			continue
		}
		if q.Search != "" && !containsFold(c.Title+" "+c.Description+" "+strings.Join(c.Skills, " "), q.Search) {
			continue
		}
		all = append(all, *c)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].ID < all[b].ID })
	return page(all, limit, offset), len(all)
}

func (s *Store) SetCSRCourseStatus(id int64, status models.CourseStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.csrCourses[id]
	if !ok {
		return ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = s.stamp()
	return nil
}

// Notifications.

func (s *Store) CreateNotification(in models.NotificationCreate) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := models.Notification{
		ID:               s.id(),
		UserID:           in.UserID,
		Title:            in.Title,
		Message:          in.Message,
		NotificationType: in.NotificationType,
		RelatedID:        in.RelatedID,
		RelatedType:      in.RelatedType,
		EventID:          in.EventID,
		ProjectID:        in.ProjectID,
		Metadata:         in.Metadata,
		CreatedAt:        s.stamp(),
	}
	s.notifications[n.ID] = &n
	return n
}

func (s *Store) Notification(id int64) (models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notifications[id]
	if !ok {
		return models.Notification{}, ErrNotFound
	}
	return *n, nil
}

// Notifications lists a user's notifications, newest first.
func (s *Store) Notifications(userID int64, unreadOnly bool, kind string, limit, offset int) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Notification{}
	for _, n := range s.notifications {
		if n.UserID != userID || (unreadOnly && n.IsRead) || (kind != "" && n.NotificationType != kind) {
			continue
		}
		out = append(out, *n)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID > out[b].ID })
	return page(out, limit, offset)
}

// MarkRead marks one notification, or all of userID's when id is zero.
func (s *Store) MarkRead(id, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.stamp()
	if id != 0 {
		n, ok := s.notifications[id]
		if !ok {
			return ErrNotFound
		}
		n.IsRead = true
		n.UpdatedAt = now
		return nil
	}
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			n.UpdatedAt = now
		}
	}
	return nil
}

func (s *Store) DeleteNotification(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notifications[id]; !ok {
		return ErrNotFound
	}
	delete(s.notifications, id)
	return nil
}

// UnreadCount counts unread notifications per type; the total is under "".
func (s *Store) UnreadCount(userID int64) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[string]int{}
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			out[""]++
			out[n.NotificationType]++
		}
	}
	return out
}

var errEventFull = errors.New("event is full")

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return []T{}
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func containsFold(hay, needle string) bool {
	return strings.Contains(strings.ToLower(hay), strings.ToLower(needle))
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
