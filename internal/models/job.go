package models

// Job is a job board listing. The first block of fields is the legacy
// shape; the rest were added with the Skill India import and are optional.
type Job struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	CompanyContact string `json:"company_contact,omitempty"`
	Pay            string `json:"pay,omitempty"`
	CreatedAt      string `json:"created_at"`

	JobTitle            string   `json:"job_title,omitempty"`
	CompanyName         string   `json:"company_name,omitempty"`
	SalaryRange         string   `json:"salary_range,omitempty"`
	JobType             string   `json:"job_type,omitempty"`
	ExperienceRequired  string   `json:"experience_required,omitempty"`
	SkillsRequired      []string `json:"skills_required,omitempty"`
	Industry            string   `json:"industry,omitempty"`
	Sector              string   `json:"sector,omitempty"`
	PostedDate          string   `json:"posted_date,omitempty"`
	ApplicationDeadline string   `json:"application_deadline,omitempty"`
	EmploymentType      string   `json:"employment_type,omitempty"`
	ApplyURL            string   `json:"apply_url,omitempty"`

	Source       string   `json:"source,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
	JobStatus    string   `json:"job_status,omitempty"`
	InHandSalary string   `json:"in_hand_salary,omitempty"`

	RelevanceScore *float64 `json:"relevance_score,omitempty"`
	DebugInfo      string   `json:"debug_info,omitempty"`
}

// JobCreate is the payload for posting a job.
type JobCreate struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Company             string   `json:"company"`
	Location            string   `json:"location"`
	CompanyContact      string   `json:"company_contact,omitempty"`
	Pay                 string   `json:"pay,omitempty"`
	JobTitle            string   `json:"job_title,omitempty"`
	CompanyName         string   `json:"company_name,omitempty"`
	SalaryRange         string   `json:"salary_range,omitempty"`
	JobType             string   `json:"job_type,omitempty"`
	ExperienceRequired  string   `json:"experience_required,omitempty"`
	SkillsRequired      []string `json:"skills_required,omitempty"`
	Industry            string   `json:"industry,omitempty"`
	Sector              string   `json:"sector,omitempty"`
	PostedDate          string   `json:"posted_date,omitempty"`
	ApplicationDeadline string   `json:"application_deadline,omitempty"`
	EmploymentType      string   `json:"employment_type,omitempty"`
	Source              string   `json:"source,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

// JobUpdate carries the fields to change.
type JobUpdate struct {
	Title               *string  `json:"title,omitempty"`
	Description         *string  `json:"description,omitempty"`
	Company             *string  `json:"company,omitempty"`
	Location            *string  `json:"location,omitempty"`
	CompanyContact      *string  `json:"company_contact,omitempty"`
	Pay                 *string  `json:"pay,omitempty"`
	JobTitle            *string  `json:"job_title,omitempty"`
	CompanyName         *string  `json:"company_name,omitempty"`
	SalaryRange         *string  `json:"salary_range,omitempty"`
	JobType             *string  `json:"job_type,omitempty"`
	ExperienceRequired  *string  `json:"experience_required,omitempty"`
	SkillsRequired      []string `json:"skills_required,omitempty"`
	Industry            *string  `json:"industry,omitempty"`
	Sector              *string  `json:"sector,omitempty"`
	PostedDate          *string  `json:"posted_date,omitempty"`
	ApplicationDeadline *string  `json:"application_deadline,omitempty"`
	EmploymentType      *string  `json:"employment_type,omitempty"`
	Source              *string  `json:"source,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

// JobList is a page of jobs plus the total match count.
type JobList struct {
	Jobs       []Job `json:"jobs"`
	TotalCount int   `json:"total_count"`
}

type IndustryCount struct {
	Industry string `json:"industry"`
	Count    int    `json:"count"`
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type SectorCount struct {
	Sector string `json:"sector"`
	Count  int    `json:"count"`
}

// JobStats aggregates the job board.
type JobStats struct {
	TotalJobs     int            `json:"total_jobs"`
	ActiveJobs    int            `json:"active_jobs"`
	JobByIndustry map[string]int `json:"job_by_industry"`
	JobByLocation map[string]int `json:"job_by_location"`
	JobByType     map[string]int `json:"job_by_type"`
}

// JobRecommendation wraps the single best match for a user description.
type JobRecommendation struct {
	BestJob Job `json:"best_job"`
}
