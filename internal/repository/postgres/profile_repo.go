package postgres

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobSeekerProfileRepo struct {
	db *pgxpool.Pool
}

func NewJobSeekerProfileRepository(db *pgxpool.Pool) domain.JobSeekerProfileRepository {
	return &jobSeekerProfileRepo{db: db}
}

func (r *jobSeekerProfileRepo) Create(ctx context.Context, p *domain.JobSeekerProfile) error {
	query := `INSERT INTO job_seeker_profiles
              (user_id, slug, photo_url, birth_date, phone_number, education, skills, experience, resume_url, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return r.db.QueryRow(ctx, query,
		p.UserID, p.Slug, p.PhotoURL, p.BirthDate, p.PhoneNumber, p.Education,
		p.Skills, p.Experience, p.ResumeURL, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

const jobSeekerSelect = `
	SELECT p.id, p.user_id, p.slug, p.photo_url, p.birth_date, p.phone_number,
	       p.education, p.skills, p.experience, p.resume_url, p.created_at, p.updated_at,
	       u.username
	FROM job_seeker_profiles p
	JOIN users u ON p.user_id = u.id`

func (r *jobSeekerProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.JobSeekerProfile, error) {
	return r.getBy(ctx, jobSeekerSelect+` WHERE p.user_id = $1`, userID)
}

func (r *jobSeekerProfileRepo) GetBySlug(ctx context.Context, slug string) (*domain.JobSeekerProfile, error) {
	return r.getBy(ctx, jobSeekerSelect+` WHERE p.slug = $1`, slug)
}

func (r *jobSeekerProfileRepo) getBy(ctx context.Context, query string, arg interface{}) (*domain.JobSeekerProfile, error) {
	var p domain.JobSeekerProfile
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.UserID, &p.Slug, &p.PhotoURL, &p.BirthDate, &p.PhoneNumber,
		&p.Education, &p.Skills, &p.Experience, &p.ResumeURL, &p.CreatedAt, &p.UpdatedAt,
		&p.Username,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *jobSeekerProfileRepo) Update(ctx context.Context, p *domain.JobSeekerProfile) error {
	query := `UPDATE job_seeker_profiles SET
		photo_url = $2,
		birth_date = $3,
		phone_number = $4,
		education = $5,
		skills = $6,
		experience = $7,
		resume_url = $8,
		updated_at = $9
	WHERE id = $1`
	p.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		p.ID, p.PhotoURL, p.BirthDate, p.PhoneNumber, p.Education, p.Skills,
		p.Experience, p.ResumeURL, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type employerProfileRepo struct {
	db *pgxpool.Pool
}

func NewEmployerProfileRepository(db *pgxpool.Pool) domain.EmployerProfileRepository {
	return &employerProfileRepo{db: db}
}

func (r *employerProfileRepo) Create(ctx context.Context, p *domain.EmployerProfile) error {
	query := `INSERT INTO employer_profiles
              (user_id, slug, company_name, company_logo_url, company_description, company_website,
               company_address, company_phone, company_email, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return r.db.QueryRow(ctx, query,
		p.UserID, p.Slug, p.CompanyName, p.CompanyLogoURL, p.CompanyDescription,
		p.CompanyWebsite, p.CompanyAddress, p.CompanyPhone, p.CompanyEmail,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

const employerSelect = `
	SELECT id, user_id, slug, company_name, company_logo_url, company_description,
	       company_website, company_address, company_phone, company_email, created_at, updated_at
	FROM employer_profiles`

func (r *employerProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	return r.getBy(ctx, employerSelect+` WHERE user_id = $1`, userID)
}

func (r *employerProfileRepo) GetBySlug(ctx context.Context, slug string) (*domain.EmployerProfile, error) {
	return r.getBy(ctx, employerSelect+` WHERE slug = $1`, slug)
}

func (r *employerProfileRepo) getBy(ctx context.Context, query string, arg interface{}) (*domain.EmployerProfile, error) {
	var p domain.EmployerProfile
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.UserID, &p.Slug, &p.CompanyName, &p.CompanyLogoURL, &p.CompanyDescription,
		&p.CompanyWebsite, &p.CompanyAddress, &p.CompanyPhone, &p.CompanyEmail,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *employerProfileRepo) Update(ctx context.Context, p *domain.EmployerProfile) error {
	query := `UPDATE employer_profiles SET
		company_name = $2,
		company_logo_url = $3,
		company_description = $4,
		company_website = $5,
		company_address = $6,
		company_phone = $7,
		company_email = $8,
		updated_at = $9
	WHERE id = $1`
	p.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		p.ID, p.CompanyName, p.CompanyLogoURL, p.CompanyDescription, p.CompanyWebsite,
		p.CompanyAddress, p.CompanyPhone, p.CompanyEmail, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
