package models

// FundingStatus describes how a project is financed.
type FundingStatus string

const (
	FundingSeeking    FundingStatus = "seeking"
	FundingFunded     FundingStatus = "funded"
	FundingSelfFunded FundingStatus = "self_funded"
)

// ProjectStatus is the delivery state of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
)

// InvestmentType is the instrument an investor offers.
type InvestmentType string

const (
	InvestmentEquity      InvestmentType = "equity"
	InvestmentLoan        InvestmentType = "loan"
	InvestmentGrant       InvestmentType = "grant"
	InvestmentPartnership InvestmentType = "partnership"
)

// InvestmentStatus is the negotiation state of an investment offer.
type InvestmentStatus string

const (
	InvestmentPending     InvestmentStatus = "pending"
	InvestmentAccepted    InvestmentStatus = "accepted"
	InvestmentRejected    InvestmentStatus = "rejected"
	InvestmentNegotiating InvestmentStatus = "negotiating"
)

// TeamMember is a user participating in a project or event team.
type TeamMember struct {
	ID           int64    `json:"id"`
	UserID       int64    `json:"user_id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Skills       []string `json:"skills"`
	JoinedAt     string   `json:"joined_at"`
	ProjectID    *int64   `json:"project_id,omitempty"`
	EventID      *int64   `json:"event_id,omitempty"`
	ProjectTitle string   `json:"project_title,omitempty"`
}

type Testimonial struct {
	ID        int64  `json:"id"`
	UserName  string `json:"user_name"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}

type Award struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Organization string `json:"organization"`
}

// ProjectImpactMetrics summarise what a project achieved.
type ProjectImpactMetrics struct {
	UsersReached     int     `json:"users_reached"`
	RevenueGenerated float64 `json:"revenue_generated"`
	JobsCreated      int     `json:"jobs_created"`
	SocialImpact     float64 `json:"social_impact"`
}

// ProjectMedia lists uploaded asset URLs.
type ProjectMedia struct {
	Images    []string `json:"images"`
	Videos    []string `json:"videos"`
	Documents []string `json:"documents"`
}

// Project is a showcase entry, usually born at an event.
type Project struct {
	ID            int64                `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Category      string               `json:"category"`
	EventID       int64                `json:"event_id"`
	EventName     string               `json:"event_name"`
	EventType     string               `json:"event_type"`
	TeamMembers   []TeamMember         `json:"team_members"`
	Technologies  []string             `json:"technologies"`
	ImpactMetrics ProjectImpactMetrics `json:"impact_metrics"`
	FundingStatus FundingStatus        `json:"funding_status"`
	FundingAmount float64              `json:"funding_amount"`
	FundingGoal   float64              `json:"funding_goal"`
	Location      string               `json:"location"`
	State         string               `json:"state"`
	CreatedBy     int64                `json:"created_by"`
	CreatedAt     string               `json:"created_at"`
	CompletedAt   string               `json:"completed_at,omitempty"`
	Status        ProjectStatus        `json:"status"`
	Media         ProjectMedia         `json:"media"`
	Testimonials  []Testimonial        `json:"testimonials"`
	Awards        []Award              `json:"awards"`
	Tags          []string             `json:"tags"`
}

// ProjectCreate is the payload for creating a project.
type ProjectCreate struct {
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Category      string               `json:"category"`
	EventID       int64                `json:"event_id"`
	EventName     string               `json:"event_name"`
	EventType     string               `json:"event_type"`
	TeamMembers   []TeamMember         `json:"team_members,omitempty"`
	Technologies  []string             `json:"technologies"`
	ImpactMetrics ProjectImpactMetrics `json:"impact_metrics"`
	FundingStatus FundingStatus        `json:"funding_status"`
	FundingAmount float64              `json:"funding_amount,omitempty"`
	FundingGoal   float64              `json:"funding_goal,omitempty"`
	Location      string               `json:"location"`
	State         string               `json:"state"`
	Status        ProjectStatus        `json:"status"`
	CompletedAt   string               `json:"completed_at,omitempty"`
	Media         ProjectMedia         `json:"media"`
	Testimonials  []Testimonial        `json:"testimonials,omitempty"`
	Awards        []Award              `json:"awards,omitempty"`
	Tags          []string             `json:"tags"`
}

// ProjectUpdate carries the fields to change.
type ProjectUpdate struct {
	Title         *string        `json:"title,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Category      *string        `json:"category,omitempty"`
	Technologies  []string       `json:"technologies,omitempty"`
	FundingStatus *FundingStatus `json:"funding_status,omitempty"`
	FundingAmount *float64       `json:"funding_amount,omitempty"`
	FundingGoal   *float64       `json:"funding_goal,omitempty"`
	Location      *string        `json:"location,omitempty"`
	State         *string        `json:"state,omitempty"`
	Status        *ProjectStatus `json:"status,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
}

// ProjectInvestment is an investment offer made on a project.
type ProjectInvestment struct {
	ID               int64            `json:"id"`
	ProjectID        int64            `json:"project_id,omitempty"`
	ProjectTitle     string           `json:"project_title,omitempty"`
	InvestorID       int64            `json:"investor_id,omitempty"`
	InvestorName     string           `json:"investor_name"`
	InvestorEmail    string           `json:"investor_email,omitempty"`
	InvestorPhone    string           `json:"investor_phone"`
	InvestmentAmount float64          `json:"investment_amount"`
	InvestmentType   InvestmentType   `json:"investment_type"`
	EquityPercentage *float64         `json:"equity_percentage,omitempty"`
	ExpectedReturns  string           `json:"expected_returns"`
	TermsConditions  string           `json:"terms_conditions,omitempty"`
	Message          string           `json:"message,omitempty"`
	Status           InvestmentStatus `json:"status"`
	InvestedAt       string           `json:"invested_at"`
	ResponseMessage  string           `json:"response_message,omitempty"`
	ResponseAt       string           `json:"response_at,omitempty"`
}

// ProjectInvestmentCreate is the payload for an investment offer.
type ProjectInvestmentCreate struct {
	ProjectID        int64          `json:"project_id"`
	InvestorName     string         `json:"investor_name"`
	InvestorEmail    string         `json:"investor_email,omitempty"`
	InvestorPhone    string         `json:"investor_phone"`
	InvestmentAmount float64        `json:"investment_amount"`
	InvestmentType   InvestmentType `json:"investment_type"`
	EquityPercentage *float64       `json:"equity_percentage,omitempty"`
	ExpectedReturns  string         `json:"expected_returns"`
	TermsConditions  string         `json:"terms_conditions,omitempty"`
	Message          string         `json:"message,omitempty"`
}

// ProjectInvestmentUpdate answers an investment offer.
type ProjectInvestmentUpdate struct {
	Status          InvestmentStatus `json:"status"`
	ResponseMessage string           `json:"response_message,omitempty"`
}
