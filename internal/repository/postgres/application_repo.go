package postgres

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique constraint on
// (job_seeker_id, vacancy_id) closes the race between two concurrent submits
// for the same pair: the second writer gets ErrDuplicateApplication.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications
              (job_seeker_id, vacancy_id, cover_letter, resume_url, status, employer_notes, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err := r.db.QueryRow(ctx, query,
		app.JobSeekerID,
		app.VacancyID,
		app.CoverLetter,
		app.ResumeURL,
		app.Status,
		app.EmployerNotes,
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT a.id, a.job_seeker_id, a.vacancy_id, a.cover_letter, a.resume_url,
		       a.status, a.employer_notes, a.created_at, a.updated_at,
		       v.title AS vacancy_title, v.slug AS vacancy_slug, u.username AS seeker_name
		FROM applications a
		JOIN vacancies v ON a.vacancy_id = v.id
		JOIN job_seeker_profiles sp ON a.job_seeker_id = sp.id
		JOIN users u ON sp.user_id = u.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobSeekerID, &app.VacancyID, &app.CoverLetter, &app.ResumeURL,
		&app.Status, &app.EmployerNotes, &app.CreatedAt, &app.UpdatedAt,
		&app.VacancyTitle, &app.VacancySlug, &app.SeekerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) CheckExists(ctx context.Context, jobSeekerID, vacancyID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_seeker_id = $1 AND vacancy_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobSeekerID, vacancyID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) GetByJobSeekerID(ctx context.Context, jobSeekerID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_seeker_id, a.vacancy_id, a.cover_letter, a.resume_url,
		       a.status, a.employer_notes, a.created_at, a.updated_at,
		       v.title AS vacancy_title, v.slug AS vacancy_slug
		FROM applications a
		JOIN vacancies v ON a.vacancy_id = v.id
		WHERE a.job_seeker_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobSeekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobSeekerID, &app.VacancyID, &app.CoverLetter, &app.ResumeURL,
			&app.Status, &app.EmployerNotes, &app.CreatedAt, &app.UpdatedAt,
			&app.VacancyTitle, &app.VacancySlug,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) GetByEmployerID(ctx context.Context, employerID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_seeker_id, a.vacancy_id, a.cover_letter, a.resume_url,
		       a.status, a.employer_notes, a.created_at, a.updated_at,
		       v.title AS vacancy_title, v.slug AS vacancy_slug, u.username AS seeker_name
		FROM applications a
		JOIN vacancies v ON a.vacancy_id = v.id
		JOIN job_seeker_profiles sp ON a.job_seeker_id = sp.id
		JOIN users u ON sp.user_id = u.id
		WHERE v.employer_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobSeekerID, &app.VacancyID, &app.CoverLetter, &app.ResumeURL,
			&app.Status, &app.EmployerNotes, &app.CreatedAt, &app.UpdatedAt,
			&app.VacancyTitle, &app.VacancySlug, &app.SeekerName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) GetAll(ctx context.Context) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_seeker_id, a.vacancy_id, a.cover_letter, a.resume_url,
		       a.status, a.employer_notes, a.created_at, a.updated_at,
		       v.title AS vacancy_title, v.slug AS vacancy_slug, u.username AS seeker_name
		FROM applications a
		JOIN vacancies v ON a.vacancy_id = v.id
		JOIN job_seeker_profiles sp ON a.job_seeker_id = sp.id
		JOIN users u ON sp.user_id = u.id
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobSeekerID, &app.VacancyID, &app.CoverLetter, &app.ResumeURL,
			&app.Status, &app.EmployerNotes, &app.CreatedAt, &app.UpdatedAt,
			&app.VacancyTitle, &app.VacancySlug, &app.SeekerName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// BulkUpdateStatus overwrites status unconditionally for every id.
func (r *applicationRepo) BulkUpdateStatus(ctx context.Context, ids []int64, status string) (int64, error) {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = ANY($1)`
	result, err := r.db.Exec(ctx, query, ids, status, time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (r *applicationRepo) UpdateNotes(ctx context.Context, id int64, notes string) error {
	query := `UPDATE applications SET employer_notes = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, notes, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
