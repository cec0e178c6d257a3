package api

import (
	"context"
	"fmt"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// EventFilter narrows GetEvents. Nil fields are not sent.
type EventFilter struct {
	Limit     *int
	Offset    *int
	EventType *models.EventType
	Status    *models.EventStatus
	Location  *string
}

func (f EventFilter) query() *Query {
	return NewQuery().
		Add("limit", f.Limit).
		Add("offset", f.Offset).
		Add("event_type", f.EventType).
		Add("status", f.Status).
		Add("location", f.Location)
}

type EventAPI struct {
	c *Client
}

// CreateEvent creates an event owned by the current session actor.
func (a *EventAPI) CreateEvent(ctx context.Context, ev models.EventCreate) (models.Event, error) {
	actor, err := a.c.session.ActorID(ctx)
	if err != nil {
		return models.Event{}, err
	}
	q := NewQuery().Add("created_by", actor)
	return post[models.Event](ctx, a.c, "/api/events"+q.Encode(), ev)
}

func (a *EventAPI) GetEvents(ctx context.Context, f EventFilter) ([]models.Event, error) {
	return get[[]models.Event](ctx, a.c, "/api/events"+f.query().Encode())
}

func (a *EventAPI) GetEvent(ctx context.Context, id int64) (models.Event, error) {
	return get[models.Event](ctx, a.c, fmt.Sprintf("/api/events/%d", id))
}

// GetUserEvents lists the events a user takes part in.
func (a *EventAPI) GetUserEvents(ctx context.Context, userID int64) ([]models.Event, error) {
	return get[[]models.Event](ctx, a.c, fmt.Sprintf("/api/users/%d/events", userID))
}

func (a *EventAPI) GetTeamMembers(ctx context.Context, eventID int64) ([]models.TeamMember, error) {
	return get[[]models.TeamMember](ctx, a.c, fmt.Sprintf("/api/events/%d/team-members", eventID))
}

func (a *EventAPI) UpdateEvent(ctx context.Context, id int64, upd models.EventUpdate) (models.Event, error) {
	return put[models.Event](ctx, a.c, fmt.Sprintf("/api/events/%d", id), upd)
}

func (a *EventAPI) DeleteEvent(ctx context.Context, id int64) (models.Message, error) {
	return del[models.Message](ctx, a.c, fmt.Sprintf("/api/events/%d", id))
}

type userRef struct {
	UserID int64 `json:"user_id"`
}

func (a *EventAPI) JoinEvent(ctx context.Context, eventID, userID int64) (models.Message, error) {
	return post[models.Message](ctx, a.c, fmt.Sprintf("/api/events/%d/join", eventID), userRef{UserID: userID})
}

func (a *EventAPI) LeaveEvent(ctx context.Context, eventID, userID int64) (models.Message, error) {
	return post[models.Message](ctx, a.c, fmt.Sprintf("/api/events/%d/leave", eventID), userRef{UserID: userID})
}

// GenerateSocialPosts asks the backend to draft promotional posts for an
// event and returns them.
func (a *EventAPI) GenerateSocialPosts(ctx context.Context, eventID int64) ([]models.SocialMediaPost, error) {
	return post[[]models.SocialMediaPost](ctx, a.c, fmt.Sprintf("/api/events/%d/generate-social-posts", eventID), nil)
}

func (a *EventAPI) PublishSocialPost(ctx context.Context, eventID, postID int64, platform models.SocialPlatform) (models.Message, error) {
	body := struct {
		PostID   int64                 `json:"post_id"`
		Platform models.SocialPlatform `json:"platform"`
	}{postID, platform}
	return post[models.Message](ctx, a.c, fmt.Sprintf("/api/events/%d/publish-social-post", eventID), body)
}

// GenerateEventWithAI drafts an event from a free-text prompt. The draft
// is not stored; pass it to CreateEvent to keep it.
func (a *EventAPI) GenerateEventWithAI(ctx context.Context, prompt string, eventType models.EventType, language string) (models.EventCreate, error) {
	body := struct {
		Prompt    string           `json:"prompt"`
		EventType models.EventType `json:"event_type"`
		Language  string           `json:"language,omitempty"`
	}{prompt, eventType, language}
	return post[models.EventCreate](ctx, a.c, "/api/events/generate-with-ai", body)
}

// UpdateEventStatus moves an event to status on behalf of the session actor.
func (a *EventAPI) UpdateEventStatus(ctx context.Context, eventID int64, status models.EventStatus, reason string) (models.Message, error) {
	actor, err := a.c.session.ActorID(ctx)
	if err != nil {
		return models.Message{}, err
	}
	q := NewQuery().Add("changed_by", actor)
	body := struct {
		Status models.EventStatus `json:"status"`
		Reason string             `json:"reason,omitempty"`
	}{status, reason}
	return put[models.Message](ctx, a.c, fmt.Sprintf("/api/events/%d/status", eventID)+q.Encode(), body)
}

func (a *EventAPI) GetEventStatusHistory(ctx context.Context, eventID int64) ([]models.EventStatusChange, error) {
	return get[[]models.EventStatusChange](ctx, a.c, fmt.Sprintf("/api/events/%d/status-history", eventID))
}

// UpdateAllEventStatuses makes the backend recompute statuses from dates.
func (a *EventAPI) UpdateAllEventStatuses(ctx context.Context) (models.Message, error) {
	return post[models.Message](ctx, a.c, "/api/events/update-statuses", struct{}{})
}

func (a *EventAPI) GetEventsByOrganizer(ctx context.Context, organizerID int64, organizerType models.OrganizerType) ([]models.Event, error) {
	q := NewQuery().Add("organizer_id", organizerID).Add("organizer_type", organizerType)
	return get[[]models.Event](ctx, a.c, "/api/events/organizer"+q.Encode())
}

func (a *EventAPI) GetOrganizerMetrics(ctx context.Context, organizerID int64, organizerType models.OrganizerType) (map[string]any, error) {
	q := NewQuery().Add("type", organizerType)
	return get[map[string]any](ctx, a.c, fmt.Sprintf("/api/events/organizer/%d/metrics", organizerID)+q.Encode())
}
