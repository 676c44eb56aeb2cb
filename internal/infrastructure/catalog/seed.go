package catalog

import "github.com/webdawg/futures-api/internal/core/domain"

// seedJobs is the fixed Athens-area posting set. Order matters: search
// results preserve this order.
var seedJobs = []domain.Job{
	{
		ID:           "1",
		Title:        "Software Engineering Intern",
		Company:      "Peach State Technologies",
		Location:     "Athens, GA",
		Type:         domain.TypeInternship,
		Description:  "Join our team in downtown Athens to build innovative web applications. Work alongside experienced engineers on real-world projects.",
		Requirements: []string{"JavaScript/TypeScript", "React", "Node.js", "Git"},
		Salary:       "$18-22/hr",
		PostedDate:   "2025-10-10",
		ExternalURL:  "https://example.com/job/1",
	},
	{
		ID:           "2",
		Title:        "UX Design Co-op",
		Company:      "Classic City Design Studio",
		Location:     "Athens, GA",
		Type:         domain.TypeCoOp,
		Description:  "Looking for a creative UX designer to join our studio near UGA campus. Great opportunity for hands-on experience.",
		Requirements: []string{"Figma", "Adobe XD", "User Research", "Prototyping"},
		Salary:       "$20-25/hr",
		PostedDate:   "2025-10-12",
	},
	{
		ID:           "3",
		Title:        "Data Analyst",
		Company:      "University of Georgia",
		Location:     "Athens, GA",
		Type:         domain.TypePartTime,
		Description:  "Part-time data analyst position in the Department of Student Affairs. Analyze student engagement data and create visualizations.",
		Requirements: []string{"Python", "SQL", "Excel", "Data Visualization"},
		Salary:       "$16-18/hr",
		PostedDate:   "2025-10-08",
	},
	{
		ID:           "4",
		Title:        "Full Stack Developer",
		Company:      "Georgia FinTech Innovations",
		Location:     "Athens, GA",
		Type:         domain.TypeFullTime,
		Description:  "Build scalable financial technology solutions. New grad friendly. Hybrid work with Athens office.",
		Requirements: []string{"React", "Node.js", "MongoDB", "AWS", "TypeScript"},
		Salary:       "$70k-85k",
		PostedDate:   "2025-10-05",
	},
	{
		ID:           "5",
		Title:        "Marketing Intern",
		Company:      "Athens Creative Agency",
		Location:     "Athens, GA",
		Type:         domain.TypeInternship,
		Description:  "Help local businesses grow their online presence. Social media management, content creation, and analytics.",
		Requirements: []string{"Social Media", "Content Creation", "Analytics", "Communication"},
		Salary:       "$15-17/hr",
		PostedDate:   "2025-10-14",
	},
	{
		ID:           "6",
		Title:        "Research Assistant",
		Company:      "UGA Computer Science Department",
		Location:     "Athens, GA",
		Type:         domain.TypePartTime,
		Description:  "Assist with machine learning research projects. Flexible hours for students.",
		Requirements: []string{"Python", "Machine Learning", "Research Skills"},
		Salary:       "$15/hr",
		PostedDate:   "2025-10-11",
	},
}
