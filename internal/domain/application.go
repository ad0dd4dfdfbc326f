package domain

import (
	"context"
	"time"
)

// Application status constants. pending is initial; rejected and accepted are
// terminal by convention, but transitions are not enforced (bulk actions may
// set any state from any state).
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusInterview = "interview"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusAccepted  = "accepted"
)

// ValidApplicationStatus reports whether s is a known status value.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusInterview,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		return true
	}
	return false
}

// Application is a job seeker's submission to a vacancy. At most one per
// (job_seeker_id, vacancy_id) pair, enforced by a store-level unique constraint.
type Application struct {
	ID            int64     `json:"id"`
	JobSeekerID   int64     `json:"job_seeker_id"`
	VacancyID     int64     `json:"vacancy_id"`
	CoverLetter   *string   `json:"cover_letter,omitempty"`
	ResumeURL     *string   `json:"resume_url,omitempty"`
	Status        string    `json:"status"`
	EmployerNotes *string   `json:"employer_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Joined data for list responses
	VacancyTitle *string `json:"vacancy_title,omitempty"`
	VacancySlug  *string `json:"vacancy_slug,omitempty"`
	SeekerName   *string `json:"seeker_name,omitempty"`
}

type ApplicationRepository interface {
	// Create inserts a pending application. A concurrent duplicate insert
	// surfaces as ErrDuplicateApplication via the unique constraint.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	CheckExists(ctx context.Context, jobSeekerID, vacancyID int64) (bool, error)
	GetByJobSeekerID(ctx context.Context, jobSeekerID int64) ([]Application, error)
	GetByEmployerID(ctx context.Context, employerID int64) ([]Application, error)
	GetAll(ctx context.Context) ([]Application, error)
	BulkUpdateStatus(ctx context.Context, ids []int64, status string) (int64, error)
	UpdateNotes(ctx context.Context, id int64, notes string) error
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, userID int64, vacancySlug string, coverLetter, resumeURL string) (*Application, error)
	ListForSeeker(ctx context.Context, userID int64) ([]Application, error)
	ListForEmployer(ctx context.Context, userID int64) ([]Application, error)
	// BulkSetStatus overwrites the status of every targeted application the
	// actor is allowed to manage. No transition-legality check by design.
	BulkSetStatus(ctx context.Context, actor *User, ids []int64, status string) (int64, error)
	SetNotes(ctx context.Context, actor *User, id int64, notes string) error
}
