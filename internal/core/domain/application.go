package domain

import "errors"

// ApplicationStatus labels where a saved application stands. It is a free
// label, not a workflow state machine: any status may move to any other.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusRejected  ApplicationStatus = "rejected"
)

// IsValid reports whether s is one of the four defined statuses.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

var ErrApplicationNotFound = errors.New("application not found")
var ErrAlreadyApplied = errors.New("already applied to this job")
var ErrInvalidStatus = errors.New("invalid application status")

// Application is one user's tracked job. Job is a denormalized snapshot of
// the posting at the time of application, so later catalog changes never
// retroactively alter a user's historical view. AppliedDate is date-only
// (YYYY-MM-DD), matching how users think about "when I applied".
type Application struct {
	ID          string            `json:"id"`
	UserID      string            `json:"-"`
	JobID       string            `json:"job_id"`
	Job         Job               `json:"job"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate string            `json:"applied_date"`
	Notes       string            `json:"notes,omitempty"`
}
