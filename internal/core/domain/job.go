package domain

import "errors"

// JobType classifies a posting by employment arrangement.
type JobType string

const (
	TypeFullTime   JobType = "Full-time"
	TypePartTime   JobType = "Part-time"
	TypeInternship JobType = "Internship"
	TypeCoOp       JobType = "Co-op"
)

var ErrJobNotFound = errors.New("job not found")

// Job is a single posting in the catalog. The catalog is fixed at process
// start and read-only at runtime; nothing ever mutates a Job.
type Job struct {
	ID           string   `json:"id" bson:"id"`
	Title        string   `json:"title" bson:"title"`
	Company      string   `json:"company" bson:"company"`
	Location     string   `json:"location" bson:"location"`
	Type         JobType  `json:"type" bson:"type"`
	Description  string   `json:"description" bson:"description"`
	Requirements []string `json:"requirements" bson:"requirements"`
	Salary       string   `json:"salary,omitempty" bson:"salary,omitempty"`
	PostedDate   string   `json:"posted_date" bson:"posted_date"`
	ExternalURL  string   `json:"external_url,omitempty" bson:"external_url,omitempty"`
}
