package api

import (
	"context"
	"fmt"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// UserFilter narrows GetUsers. Nil fields are not sent.
type UserFilter struct {
	Limit    *int
	Offset   *int
	UserType *models.UserType
	IsActive *bool
}

func (f UserFilter) query() *Query {
	return NewQuery().
		Add("limit", f.Limit).
		Add("offset", f.Offset).
		Add("user_type", f.UserType).
		Add("is_active", f.IsActive)
}

// DefaultActivityLimit is the page size of GetUserActivities when limit is
// not positive.
const DefaultActivityLimit = 10

// UserAPI reads and edits accounts and unified profiles. Its read methods
// never touch client state.
type UserAPI struct {
	c *Client
}

// CreateProfile stores the first profile of the authenticated user.
func (a *UserAPI) CreateProfile(ctx context.Context, p models.UserProfile) (models.UserProfile, error) {
	return post[models.UserProfile](ctx, a.c, "/api/profile", p)
}

func (a *UserAPI) GetUsers(ctx context.Context, f UserFilter) ([]models.User, error) {
	return get[[]models.User](ctx, a.c, "/api/users"+f.query().Encode())
}

func (a *UserAPI) GetUser(ctx context.Context, id int64) (models.User, error) {
	return get[models.User](ctx, a.c, fmt.Sprintf("/api/users/%d", id))
}

func (a *UserAPI) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	q := NewQuery().Add("query", query)
	return get[[]models.User](ctx, a.c, "/api/users/search"+q.Encode())
}

// GetProfile returns the profile of the authenticated user.
func (a *UserAPI) GetProfile(ctx context.Context) (models.UserProfile, error) {
	return get[models.UserProfile](ctx, a.c, "/api/profile")
}

// GetPublicProfile returns the public view of another user's profile.
func (a *UserAPI) GetPublicProfile(ctx context.Context, id int64) (models.UserProfile, error) {
	return get[models.UserProfile](ctx, a.c, fmt.Sprintf("/api/profile/public/%d", id))
}

func (a *UserAPI) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (models.User, error) {
	return put[models.User](ctx, a.c, fmt.Sprintf("/api/users/%d", id), upd)
}

func (a *UserAPI) UpdateProfile(ctx context.Context, upd models.UserProfileUpdate) (models.UserProfile, error) {
	return put[models.UserProfile](ctx, a.c, "/api/profile", upd)
}

func (a *UserAPI) DeleteUser(ctx context.Context, id int64) (models.Message, error) {
	return del[models.Message](ctx, a.c, fmt.Sprintf("/api/users/%d", id))
}

func (a *UserAPI) GetUserEvents(ctx context.Context, userID int64) ([]models.Event, error) {
	return get[[]models.Event](ctx, a.c, fmt.Sprintf("/api/users/%d/events", userID))
}

func (a *UserAPI) GetUserProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	return get[[]models.Project](ctx, a.c, fmt.Sprintf("/api/users/%d/projects", userID))
}

func (a *UserAPI) GetUserAchievements(ctx context.Context, userID int64) ([]models.Achievement, error) {
	return get[[]models.Achievement](ctx, a.c, fmt.Sprintf("/api/users/%d/achievements", userID))
}

// GetUserActivities returns the most recent activities, DefaultActivityLimit
// of them when limit is not positive.
func (a *UserAPI) GetUserActivities(ctx context.Context, userID int64, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	q := NewQuery().Add("limit", limit)
	return get[[]models.Activity](ctx, a.c, fmt.Sprintf("/api/users/%d/activities", userID)+q.Encode())
}

func (a *UserAPI) GetUserRecommendations(ctx context.Context, userID int64) ([]models.Recommendation, error) {
	return get[[]models.Recommendation](ctx, a.c, fmt.Sprintf("/api/users/%d/recommendations", userID))
}

func (a *UserAPI) GetUserNetworkingSuggestions(ctx context.Context, userID int64) ([]models.NetworkingSuggestion, error) {
	return get[[]models.NetworkingSuggestion](ctx, a.c, fmt.Sprintf("/api/users/%d/networking-suggestions", userID))
}

func (a *UserAPI) GetUserStats(ctx context.Context, userID int64) (models.UserStats, error) {
	return get[models.UserStats](ctx, a.c, fmt.Sprintf("/api/users/%d/stats", userID))
}
