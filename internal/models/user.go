package models

// User is an account record.
type User struct {
	ID           int64    `json:"id"`
	Phone        string   `json:"phone"`
	UserType     UserType `json:"user_type"`
	Name         string   `json:"name"`
	Organization string   `json:"organization,omitempty"`
	IsActive     bool     `json:"is_active"`
	IsVerified   bool     `json:"is_verified"`
	CreatedAt    string   `json:"created_at"`
	LastLogin    string   `json:"last_login,omitempty"`
}

// UserUpdate is a partial User for admin edits.
type UserUpdate struct {
	Phone        *string   `json:"phone,omitempty"`
	UserType     *UserType `json:"user_type,omitempty"`
	Name         *string   `json:"name,omitempty"`
	Organization *string   `json:"organization,omitempty"`
	IsActive     *bool     `json:"is_active,omitempty"`
	IsVerified   *bool     `json:"is_verified,omitempty"`
}

// ProfileImpactMetrics are stored as JSON on the unified profile. The
// trailing pointer fields are computed by the backend and may be absent.
type ProfileImpactMetrics struct {
	ParticipantsTarget  int      `json:"participants_target"`
	SkillsDeveloped     int      `json:"skills_developed"`
	ProjectsCreated     int      `json:"projects_created"`
	EmploymentGenerated int      `json:"employment_generated"`
	RevenueGenerated    float64  `json:"revenue_generated"`
	EventsHosted        *int     `json:"events_hosted,omitempty"`
	EventsParticipated  *int     `json:"events_participated,omitempty"`
	PeopleImpacted      *int     `json:"people_impacted,omitempty"`
	JobsCreated         *int     `json:"jobs_created,omitempty"`
	SocialImpactScore   *float64 `json:"social_impact_score,omitempty"`
	SustainabilityScore *float64 `json:"sustainability_score,omitempty"`
}

type Achievement struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	ImpactScore float64 `json:"impact_score"`
}

type Activity struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	ImpactScore float64 `json:"impact_score"`
}

type Recommendation struct {
	ID              int64    `json:"id"`
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Priority        Priority `json:"priority"`
	EstimatedImpact float64  `json:"estimated_impact"`
}

type NetworkingSuggestion struct {
	ID               int64    `json:"id"`
	Type             string   `json:"type"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Priority         Priority `json:"priority"`
	PotentialBenefit float64  `json:"potential_benefit"`
}

// UserProfile is the unified profile shown on the profile page.
type UserProfile struct {
	UserID                int64                `json:"user_id,omitempty"`
	Name                  string               `json:"name"`
	UserType              UserType             `json:"user_type"`
	Organization          *string              `json:"organization,omitempty"`
	Location              string               `json:"location,omitempty"`
	State                 string               `json:"state,omitempty"`
	Skills                []string             `json:"skills"`
	Experience            string               `json:"experience,omitempty"`
	Goals                 string               `json:"goals,omitempty"`
	ImpactMetrics         ProfileImpactMetrics `json:"impact_metrics"`
	Achievements          []Achievement        `json:"achievements"`
	RecentActivities      []Activity           `json:"recent_activities"`
	Recommendations       []Recommendation     `json:"recommendations"`
	NetworkingSuggestions []string             `json:"networking_suggestions"`
	NotificationsSettings map[string]any       `json:"notifications_settings,omitempty"`
	CreatedAt             string               `json:"created_at"`
	UpdatedAt             string               `json:"updated_at"`
}

// UserProfileUpdate is the subset of a profile a user may edit.
type UserProfileUpdate struct {
	Name                  *string          `json:"name,omitempty"`
	Organization          *string          `json:"organization,omitempty"`
	Location              *string          `json:"location,omitempty"`
	State                 *string          `json:"state,omitempty"`
	Skills                []string         `json:"skills,omitempty"`
	Experience            *string          `json:"experience,omitempty"`
	Goals                 *string          `json:"goals,omitempty"`
	ImpactMetrics         map[string]any   `json:"impact_metrics,omitempty"`
	Achievements          []Achievement    `json:"achievements,omitempty"`
	RecentActivities      []Activity       `json:"recent_activities,omitempty"`
	Recommendations       []Recommendation `json:"recommendations,omitempty"`
	NetworkingSuggestions []string         `json:"networking_suggestions,omitempty"`
}

// UserStats is the free-form statistics blob of a user.
type UserStats map[string]any
