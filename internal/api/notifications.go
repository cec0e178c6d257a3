package api

import (
	"context"
	"fmt"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// DefaultNotificationLimit is the page size of List when Limit is not
// positive.
const DefaultNotificationLimit = 50

// NotificationQuery selects a user's notifications. UnreadOnly, Limit and
// Offset are always sent; Type only when set.
type NotificationQuery struct {
	UserID     int64
	UnreadOnly bool
	Type       string
	Limit      int
	Offset     int
}

func (n NotificationQuery) query() *Query {
	limit := n.Limit
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	q := NewQuery().
		Add("user_id", n.UserID).
		Add("unread_only", n.UnreadOnly).
		Add("limit", limit).
		Add("offset", n.Offset)
	if n.Type != "" {
		q.Add("notification_type", n.Type)
	}
	return q
}

type NotificationAPI struct {
	c *Client
}

func (a *NotificationAPI) List(ctx context.Context, nq NotificationQuery) ([]models.Notification, error) {
	return get[[]models.Notification](ctx, a.c, "/api/notifications"+nq.query().Encode())
}

func (a *NotificationAPI) Get(ctx context.Context, id int64) (models.Notification, error) {
	return get[models.Notification](ctx, a.c, fmt.Sprintf("/api/notifications/%d", id))
}

func (a *NotificationAPI) Create(ctx context.Context, n models.NotificationCreate) (models.Notification, error) {
	return post[models.Notification](ctx, a.c, "/api/notifications", n)
}

func (a *NotificationAPI) Update(ctx context.Context, id int64, upd models.NotificationUpdate) (models.Notification, error) {
	return put[models.Notification](ctx, a.c, fmt.Sprintf("/api/notifications/%d", id), upd)
}

func (a *NotificationAPI) Delete(ctx context.Context, id int64) (models.Message, error) {
	return del[models.Message](ctx, a.c, fmt.Sprintf("/api/notifications/%d", id))
}

func (a *NotificationAPI) MarkAsRead(ctx context.Context, id int64) (models.Message, error) {
	return put[models.Message](ctx, a.c, fmt.Sprintf("/api/notifications/%d/read", id), struct{}{})
}

func (a *NotificationAPI) MarkAllAsRead(ctx context.Context, userID int64) (models.Message, error) {
	return put[models.Message](ctx, a.c, fmt.Sprintf("/api/notifications/user/%d/read-all", userID), struct{}{})
}

func (a *NotificationAPI) UnreadCount(ctx context.Context, userID int64) (models.UnreadCount, error) {
	return get[models.UnreadCount](ctx, a.c, fmt.Sprintf("/api/notifications/unread-count/%d", userID))
}

// Types returns the number of notifications per type for a user.
func (a *NotificationAPI) Types(ctx context.Context, userID int64) (map[string]int, error) {
	return get[map[string]int](ctx, a.c, fmt.Sprintf("/api/notifications/types/%d", userID))
}

// SendTeamInvite notifies the invitee; the membership is created when the
// invite is accepted.
func (a *NotificationAPI) SendTeamInvite(ctx context.Context, inv models.TeamInviteCreate) (map[string]any, error) {
	return post[map[string]any](ctx, a.c, "/api/notifications/team-invite", inv)
}

func (a *NotificationAPI) RespondToTeamInvite(ctx context.Context, inviteID int64, action models.InviteAction, message string) (map[string]any, error) {
	return post[map[string]any](ctx, a.c, fmt.Sprintf("/api/notifications/team-invite/%d/respond", inviteID), models.TeamInviteResponse{
		InviteID: inviteID,
		Action:   action,
		Message:  message,
	})
}
