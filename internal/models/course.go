package models

// Course is a Skill India catalogue entry.
type Course struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Link        string   `json:"link"`
	Category    string   `json:"category"`
	SkillLevel  string   `json:"skill_level"`
	Duration    string   `json:"duration"`
	Provider    string   `json:"provider"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Source      string   `json:"source"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   string   `json:"created_at"`
}

// Pagination is the paging envelope shared by the course listings.
type Pagination struct {
	TotalCount int  `json:"total_count"`
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// CourseList is a page of regular courses.
type CourseList struct {
	Courses []Course `json:"courses,omitempty"`
	Pagination
}

// CourseStatus is the state of a CSR course.
type CourseStatus string

const (
	CourseActive    CourseStatus = "active"
	CourseInactive  CourseStatus = "inactive"
	CourseCompleted CourseStatus = "completed"
)

// CSRCourse is a company-sponsored course. Name, Link and the fields after
// them are only set for entries imported from Skill India.
type CSRCourse struct {
	ID            int64        `json:"id"`
	CompanyID     int64        `json:"company_id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Skills        []string     `json:"skills"`
	Duration      string       `json:"duration"`
	Language      string       `json:"language"`
	Certification bool         `json:"certification"`
	MaxSeats      int          `json:"max_seats"`
	StartDate     string       `json:"start_date"`
	Status        CourseStatus `json:"status"`
	ContentURL    string       `json:"content_url,omitempty"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`

	Name       string   `json:"name,omitempty"`
	Link       string   `json:"link,omitempty"`
	Category   string   `json:"category,omitempty"`
	SkillLevel string   `json:"skill_level,omitempty"`
	Provider   string   `json:"provider,omitempty"`
	Source     string   `json:"source,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

// CSRCourseList is a page of CSR courses.
type CSRCourseList struct {
	Courses []CSRCourse `json:"courses,omitempty"`
	Pagination
}

// CSRCourseCreate is the payload for publishing a CSR course.
type CSRCourseCreate struct {
	CompanyID     int64        `json:"company_id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Skills        []string     `json:"skills"`
	Duration      string       `json:"duration"`
	Language      string       `json:"language"`
	Certification bool         `json:"certification"`
	MaxSeats      int          `json:"max_seats"`
	StartDate     string       `json:"start_date"`
	Status        CourseStatus `json:"status"`
	ContentURL    string       `json:"content_url,omitempty"`
	Name          string       `json:"name,omitempty"`
	Link          string       `json:"link,omitempty"`
	Category      string       `json:"category,omitempty"`
	SkillLevel    string       `json:"skill_level,omitempty"`
	Provider      string       `json:"provider,omitempty"`
	Source        string       `json:"source,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
	IsActive      *bool        `json:"is_active,omitempty"`
}

// CSRCourseUpdate carries the fields to change.
type CSRCourseUpdate struct {
	Title         *string       `json:"title,omitempty"`
	Description   *string       `json:"description,omitempty"`
	Skills        []string      `json:"skills,omitempty"`
	Duration      *string       `json:"duration,omitempty"`
	Language      *string       `json:"language,omitempty"`
	Certification *bool         `json:"certification,omitempty"`
	MaxSeats      *int          `json:"max_seats,omitempty"`
	StartDate     *string       `json:"start_date,omitempty"`
	Status        *CourseStatus `json:"status,omitempty"`
	ContentURL    *string       `json:"content_url,omitempty"`
	Name          *string       `json:"name,omitempty"`
	Link          *string       `json:"link,omitempty"`
	Category      *string       `json:"category,omitempty"`
	SkillLevel    *string       `json:"skill_level,omitempty"`
	Provider      *string       `json:"provider,omitempty"`
	Source        *string       `json:"source,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
	IsActive      *bool         `json:"is_active,omitempty"`
}

// CourseStats aggregates both course catalogues.
type CourseStats struct {
	TotalCourses      int            `json:"total_courses"`
	ActiveCourses     int            `json:"active_courses"`
	CoursesByCategory map[string]int `json:"courses_by_category"`
	CoursesByLevel    map[string]int `json:"courses_by_level"`
	CoursesBySource   map[string]int `json:"courses_by_source"`
}
