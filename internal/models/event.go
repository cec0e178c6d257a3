package models

// EventType is the format of an event.
type EventType string

const (
	EventHackathon   EventType = "hackathon"
	EventWorkshop    EventType = "workshop"
	EventCompetition EventType = "competition"
	EventTraining    EventType = "training"
	EventMeetup      EventType = "meetup"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventActive    EventStatus = "active"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
	EventPostponed EventStatus = "postponed"
)

// OrganizerType is the kind of entity hosting an event.
type OrganizerType string

const (
	OrganizerCompany    OrganizerType = "company"
	OrganizerNGO        OrganizerType = "ngo"
	OrganizerIndividual OrganizerType = "individual"
)

// SocialPlatform names a network a promotional post targets.
type SocialPlatform string

const (
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformInstagram SocialPlatform = "instagram"
)

// PostStatus is the publishing state of a social media post.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
)

// Organizer describes who runs an event.
type Organizer struct {
	ID   int64         `json:"id"`
	Name string        `json:"name"`
	Type OrganizerType `json:"type"`
	Logo string        `json:"logo,omitempty"`
}

// EventImpactMetrics are the targets an organizer sets for an event.
type EventImpactMetrics struct {
	ParticipantsTarget  int `json:"participants_target"`
	SkillsDeveloped     int `json:"skills_developed"`
	ProjectsCreated     int `json:"projects_created"`
	EmploymentGenerated int `json:"employment_generated"`
}

// EventSection is a titled block of the event landing page.
type EventSection struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	KeyPoints       []string `json:"key_points,omitempty"`
	TargetAudience  string   `json:"target_audience,omitempty"`
	ExpectedOutcome string   `json:"expected_outcome,omitempty"`
}

// SocialMediaPost is a generated promotional post for an event.
type SocialMediaPost struct {
	ID          int64          `json:"id"`
	Platform    SocialPlatform `json:"platform"`
	Content     string         `json:"content"`
	ImageURL    string         `json:"image_url,omitempty"`
	ScheduledAt string         `json:"scheduled_at,omitempty"`
	Status      PostStatus     `json:"status"`
	Hashtags    []string       `json:"hashtags,omitempty"`
}

// Event is a hackathon, workshop or similar gathering.
type Event struct {
	ID                  int64              `json:"id"`
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	EventType           EventType          `json:"event_type"`
	Category            string             `json:"category"`
	Location            string             `json:"location"`
	State               string             `json:"state"`
	StartDate           string             `json:"start_date"`
	EndDate             string             `json:"end_date"`
	MaxParticipants     int                `json:"max_participants"`
	CurrentParticipants int                `json:"current_participants"`
	Budget              float64            `json:"budget"`
	PrizePool           float64            `json:"prize_pool"`
	Organizer           Organizer          `json:"organizer"`
	CreatedBy           int64              `json:"created_by"`
	SkillsRequired      []string           `json:"skills_required"`
	Tags                []string           `json:"tags"`
	Status              EventStatus        `json:"status"`
	ImpactMetrics       EventImpactMetrics `json:"impact_metrics"`
	MarketingHighlights []string           `json:"marketing_highlights,omitempty"`
	SuccessMetrics      []string           `json:"success_metrics,omitempty"`
	Sections            []EventSection     `json:"sections,omitempty"`
	SocialMediaPosts    []SocialMediaPost  `json:"social_media_posts"`
	CreatedAt           string             `json:"created_at"`
	UpdatedAt           string             `json:"updated_at"`
}

// EventCreate is the payload for creating an event.
type EventCreate struct {
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	EventType           EventType          `json:"event_type"`
	Category            string             `json:"category"`
	Location            string             `json:"location"`
	State               string             `json:"state"`
	StartDate           string             `json:"start_date"`
	EndDate             string             `json:"end_date"`
	MaxParticipants     int                `json:"max_participants"`
	Budget              float64            `json:"budget"`
	PrizePool           float64            `json:"prize_pool"`
	SkillsRequired      []string           `json:"skills_required"`
	Tags                []string           `json:"tags"`
	Organizer           Organizer          `json:"organizer"`
	ImpactMetrics       EventImpactMetrics `json:"impact_metrics"`
	Status              EventStatus        `json:"status,omitempty"`
	MarketingHighlights []string           `json:"marketing_highlights,omitempty"`
	SuccessMetrics      []string           `json:"success_metrics,omitempty"`
	Sections            []EventSection     `json:"sections,omitempty"`
}

// EventUpdate carries the fields to change; nil fields are left untouched.
type EventUpdate struct {
	Title               *string        `json:"title,omitempty"`
	Description         *string        `json:"description,omitempty"`
	EventType           *EventType     `json:"event_type,omitempty"`
	Category            *string        `json:"category,omitempty"`
	Location            *string        `json:"location,omitempty"`
	State               *string        `json:"state,omitempty"`
	StartDate           *string        `json:"start_date,omitempty"`
	EndDate             *string        `json:"end_date,omitempty"`
	MaxParticipants     *int           `json:"max_participants,omitempty"`
	Budget              *float64       `json:"budget,omitempty"`
	PrizePool           *float64       `json:"prize_pool,omitempty"`
	SkillsRequired      []string       `json:"skills_required,omitempty"`
	Tags                []string       `json:"tags,omitempty"`
	Status              *EventStatus   `json:"status,omitempty"`
	MarketingHighlights []string       `json:"marketing_highlights,omitempty"`
	SuccessMetrics      []string       `json:"success_metrics,omitempty"`
	Sections            []EventSection `json:"sections,omitempty"`
}

// EventStatusChange is one entry of an event's status history.
type EventStatusChange struct {
	ID        int64  `json:"id"`
	EventID   int64  `json:"event_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	ChangedBy int64  `json:"changed_by"`
	Reason    string `json:"reason,omitempty"`
	ChangedAt string `json:"changed_at"`
}
