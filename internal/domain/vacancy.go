package domain

import (
	"context"
	"time"
)

// Vacancy status constants
const (
	VacancyStatusOpen     = "open"
	VacancyStatusClosed   = "closed"
	VacancyStatusArchived = "archived"
)

// Employment types
const (
	EmploymentFullTime   = "full_time"
	EmploymentPartTime   = "part_time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
	EmploymentRemote     = "remote"
)

// Required experience buckets
const (
	ExperienceNone       = "no_experience"
	ExperienceOneToThree = "1-3"
	ExperienceThreeFive  = "3-5"
	ExperienceFivePlus   = "5+"
)

type Vacancy struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Slug               string    `json:"slug"`
	EmployerID         int64     `json:"employer_id"`
	CategoryID         int64     `json:"category_id"`
	Description        string    `json:"description"`
	Requirements       string    `json:"requirements"`
	Responsibilities   string    `json:"responsibilities"`
	Benefits           *string   `json:"benefits,omitempty"`
	SalaryMin          *float64  `json:"salary_min,omitempty"`
	SalaryMax          *float64  `json:"salary_max,omitempty"`
	LocationID         *int64    `json:"location_id,omitempty"`
	IsRemote           bool      `json:"is_remote"`
	Status             string    `json:"status"`
	EmploymentType     string    `json:"employment_type"`
	ExperienceRequired string    `json:"experience_required"`
	SkillIDs           []int64   `json:"skill_ids,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Joined data for list and detail responses
	CompanyName  *string `json:"company_name,omitempty"`
	CategoryName *string `json:"category_name,omitempty"`
	LocationCity *string `json:"location_city,omitempty"`
}

// VacancyFilter is the query bag for the vacancy list. Zero-valued fields
// impose no constraint; supplied fields are ANDed together. Keywords are
// OR-matched against title, description and requirements.
type VacancyFilter struct {
	Keywords       string
	CategorySlug   string
	LocationCity   string
	EmploymentType string
	Experience     string
	Remote         *bool
}

type VacancyRepository interface {
	Create(ctx context.Context, vacancy *Vacancy) error
	GetByID(ctx context.Context, id int64) (*Vacancy, error)
	GetBySlug(ctx context.Context, slug string) (*Vacancy, error)
	// FetchOpen returns open vacancies matching the filter, newest first,
	// with the total count of matches before pagination.
	FetchOpen(ctx context.Context, filter VacancyFilter, limit, offset int) ([]Vacancy, int64, error)
	FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]Vacancy, int64, error)
	FetchSimilar(ctx context.Context, categoryID, excludeID int64, limit int) ([]Vacancy, error)
	FetchLatestOpen(ctx context.Context, limit int) ([]Vacancy, error)
	// Search matches q against title/description/requirements of open
	// vacancies; total is the uncapped match count.
	Search(ctx context.Context, q string, limit int) ([]Vacancy, int64, error)
	Update(ctx context.Context, vacancy *Vacancy) error
	Delete(ctx context.Context, id int64) error
	ReplaceSkills(ctx context.Context, vacancyID int64, skillIDs []int64) error
}

type VacancyUsecase interface {
	CreateVacancy(ctx context.Context, userID int64, vacancy *Vacancy) error
	GetVacancyBySlug(ctx context.Context, slug string) (*Vacancy, error)
	GetSimilarVacancies(ctx context.Context, vacancy *Vacancy) ([]Vacancy, error)
	ListOpenVacancies(ctx context.Context, filter VacancyFilter, page, pageSize int) ([]Vacancy, int64, error)
	ListVacanciesByCategory(ctx context.Context, categorySlug string, page, pageSize int) ([]Vacancy, int64, error)
	ListEmployerVacancies(ctx context.Context, userID int64, page, pageSize int) ([]Vacancy, int64, error)
	UpdateVacancy(ctx context.Context, actor *User, vacancy *Vacancy) error
	DeleteVacancy(ctx context.Context, actor *User, slug string) error
}
