package fakeapi

import "github.com/gramudyogai/gramudyog-go/internal/models"

// Seed fills s with a small demo catalogue: jobs, both course catalogues
// and one event.
func Seed(s *Store) {
	for _, j := range []models.JobCreate{
		{
			Title: "Solar Panel Technician", Company: "SunGrid Rural Energy", Location: "Jaipur, Rajasthan",
			Description: "Install and maintain rooftop solar systems in nearby villages.",
			Industry:    "Energy", Sector: "Renewables", JobType: "Full-time", SalaryRange: "15000-22000",
			SkillsRequired: []string{"electrical wiring", "solar installation"}, Source: "seed",
		},
		{
			Title: "Tailoring Instructor", Company: "Sewa Mahila Mandal", Location: "Lucknow, Uttar Pradesh",
			Description: "Teach stitching and pattern cutting to self-help group members.",
			Industry:    "Textiles", Sector: "Handloom", JobType: "Part-time", SalaryRange: "8000-12000",
			SkillsRequired: []string{"tailoring", "teaching"}, Source: "seed",
		},
		{
			Title: "Field Sales Engineer", Company: "AgroTech Implements", Location: "Nashik, Maharashtra",
			Description: "Demonstrate drip irrigation kits to farmer producer organisations.",
			Industry:    "Agriculture", Sector: "Irrigation", JobType: "Full-time", SalaryRange: "18000-25000",
			SkillsRequired: []string{"sales", "irrigation"}, Source: "seed",
		},
	} {
		s.CreateJob(j)
	}

	for _, c := range []models.Course{
		{Name: "Solar PV Installer", Category: "Energy", SkillLevel: "Beginner", Duration: "3 months", Provider: "Skill India", Tags: []string{"solar"}, Source: "skill_india", IsActive: true},
		{Name: "Assistant Electrician", Category: "Energy", SkillLevel: "Intermediate", Duration: "6 months", Provider: "Skill India", Tags: []string{"electrical"}, Source: "skill_india", IsActive: true},
		{Name: "Self Employed Tailor", Category: "Apparel", SkillLevel: "Beginner", Duration: "2 months", Provider: "Skill India", Tags: []string{"tailoring"}, Source: "skill_india", IsActive: true},
	} {
		s.AddCourse(c)
	}

	s.CreateCSRCourse(models.CSRCourseCreate{
		CompanyID: 1, Title: "Digital Literacy for Artisans", Description: "Smartphone payments and online selling.",
		Skills: []string{"upi", "e-commerce"}, Duration: "4 weeks", Language: "hi", Certification: true, MaxSeats: 40,
		StartDate: "2026-11-01", Status: models.CourseActive,
	})

	s.CreateEvent(models.EventCreate{
		Title: "Rural Innovation Hackathon", Description: "Build tools for village micro-enterprises.",
		EventType: models.EventHackathon, Category: "Technology", Location: "Pune", State: "Maharashtra",
		StartDate: "2026-12-05", EndDate: "2026-12-07", MaxParticipants: 100,
		Organizer: models.Organizer{ID: 1, Name: "GramUdyog Foundation", Type: models.OrganizerNGO},
	}, 0)
}
