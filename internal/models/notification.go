package models

// Notification is an entry of a user's notification centre.
type Notification struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"user_id"`
	Title            string         `json:"title"`
	Message          string         `json:"message"`
	NotificationType string         `json:"notification_type"`
	RelatedID        *int64         `json:"related_id,omitempty"`
	RelatedType      string         `json:"related_type,omitempty"`
	EventID          *int64         `json:"event_id,omitempty"`
	ProjectID        *int64         `json:"project_id,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	IsRead           bool           `json:"is_read"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at,omitempty"`
}

type NotificationCreate struct {
	UserID           int64          `json:"user_id"`
	Title            string         `json:"title"`
	Message          string         `json:"message"`
	NotificationType string         `json:"notification_type"`
	RelatedID        *int64         `json:"related_id,omitempty"`
	RelatedType      string         `json:"related_type,omitempty"`
	EventID          *int64         `json:"event_id,omitempty"`
	ProjectID        *int64         `json:"project_id,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

type NotificationUpdate struct {
	Title    *string        `json:"title,omitempty"`
	Message  *string        `json:"message,omitempty"`
	IsRead   *bool          `json:"is_read,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// UnreadCount is the badge counter of the notification bell.
type UnreadCount struct {
	UnreadCount int `json:"unread_count"`
}

// TeamInviteCreate invites a user onto a project team.
type TeamInviteCreate struct {
	InviterID int64    `json:"inviter_id"`
	InviteeID int64    `json:"invitee_id"`
	ProjectID int64    `json:"project_id"`
	Role      string   `json:"role"`
	Skills    []string `json:"skills"`
	Message   string   `json:"message,omitempty"`
}

// InviteAction is the invitee's answer.
type InviteAction string

const (
	InviteAccept InviteAction = "accept"
	InviteReject InviteAction = "reject"
)

type TeamInviteResponse struct {
	InviteID int64        `json:"invite_id"`
	Action   InviteAction `json:"action"`
	Message  string       `json:"message,omitempty"`
}
