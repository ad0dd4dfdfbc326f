package domain

import (
	"context"
	"time"
)

// Profile kinds for ProfileLookup
const (
	ProfileKindNone      = "none"
	ProfileKindJobSeeker = "job_seeker"
	ProfileKindEmployer  = "employer"
)

// JobSeekerProfile holds a job seeker's public profile. At most one per account.
type JobSeekerProfile struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Slug        string     `json:"slug"`
	PhotoURL    *string    `json:"photo_url,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	Education   *string    `json:"education,omitempty"`
	Skills      *string    `json:"skills,omitempty"`
	Experience  *string    `json:"experience,omitempty"`
	ResumeURL   *string    `json:"resume_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Joined data for profile pages
	Username *string `json:"username,omitempty"`
}

// EmployerProfile holds an employer's company profile. At most one per account.
type EmployerProfile struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	Slug               string    `json:"slug"`
	CompanyName        string    `json:"company_name"`
	CompanyLogoURL     *string   `json:"company_logo_url,omitempty"`
	CompanyDescription *string   `json:"company_description,omitempty"`
	CompanyWebsite     *string   `json:"company_website,omitempty"`
	CompanyAddress     *string   `json:"company_address,omitempty"`
	CompanyPhone       *string   `json:"company_phone,omitempty"`
	CompanyEmail       *string   `json:"company_email,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ProfileLookup is the explicit resolution of "which profile, if any, does
// this account have". Kind is always set; exactly one pointer is non-nil
// unless Kind is none.
type ProfileLookup struct {
	Kind      string            `json:"kind"`
	JobSeeker *JobSeekerProfile `json:"job_seeker,omitempty"`
	Employer  *EmployerProfile  `json:"employer,omitempty"`
}

// Dashboard is the account landing payload: the resolved profile plus its
// recent activity. Job seekers get their latest applications; employers get
// their latest vacancies and the latest applications they received.
type Dashboard struct {
	Profile      ProfileLookup `json:"profile"`
	Applications []Application `json:"applications,omitempty"`
	Vacancies    []Vacancy     `json:"vacancies,omitempty"`
}

type JobSeekerProfileRepository interface {
	Create(ctx context.Context, profile *JobSeekerProfile) error
	GetByUserID(ctx context.Context, userID int64) (*JobSeekerProfile, error)
	GetBySlug(ctx context.Context, slug string) (*JobSeekerProfile, error)
	Update(ctx context.Context, profile *JobSeekerProfile) error
}

type EmployerProfileRepository interface {
	Create(ctx context.Context, profile *EmployerProfile) error
	GetByUserID(ctx context.Context, userID int64) (*EmployerProfile, error)
	GetBySlug(ctx context.Context, slug string) (*EmployerProfile, error)
	Update(ctx context.Context, profile *EmployerProfile) error
}

type ProfileUsecase interface {
	// Resolve returns the account's profile as a tagged union; "no profile
	// yet" is a valid result, distinct from any error.
	Resolve(ctx context.Context, userID int64) (*ProfileLookup, error)
	// GetDashboard composes Resolve with the profile's recent activity.
	GetDashboard(ctx context.Context, userID int64) (*Dashboard, error)

	CreateJobSeekerProfile(ctx context.Context, userID int64, profile *JobSeekerProfile) error
	UpdateJobSeekerProfile(ctx context.Context, userID int64, profile *JobSeekerProfile) error
	GetJobSeekerProfileBySlug(ctx context.Context, slug string) (*JobSeekerProfile, error)

	CreateEmployerProfile(ctx context.Context, userID int64, profile *EmployerProfile) error
	UpdateEmployerProfile(ctx context.Context, userID int64, profile *EmployerProfile) error
	GetEmployerProfileBySlug(ctx context.Context, slug string) (*EmployerProfile, error)
}
