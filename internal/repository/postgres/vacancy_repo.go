package postgres

import (
	"context"
	"errors"
	"fmt"
	"go-jobboard-backend/internal/domain"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type vacancyRepo struct {
	db *pgxpool.Pool
}

func NewVacancyRepository(db *pgxpool.Pool) domain.VacancyRepository {
	return &vacancyRepo{db: db}
}

const vacancySelect = `
	SELECT v.id, v.title, v.slug, v.employer_id, v.category_id, v.description,
	       v.requirements, v.responsibilities, v.benefits, v.salary_min, v.salary_max,
	       v.location_id, v.is_remote, v.status, v.employment_type, v.experience_required,
	       v.created_at, v.updated_at,
	       ep.company_name, c.name AS category_name, l.city AS location_city
	FROM vacancies v
	JOIN employer_profiles ep ON v.employer_id = ep.id
	JOIN categories c ON v.category_id = c.id
	LEFT JOIN locations l ON v.location_id = l.id`

func scanVacancy(row pgx.Row, v *domain.Vacancy) error {
	return row.Scan(
		&v.ID, &v.Title, &v.Slug, &v.EmployerID, &v.CategoryID, &v.Description,
		&v.Requirements, &v.Responsibilities, &v.Benefits, &v.SalaryMin, &v.SalaryMax,
		&v.LocationID, &v.IsRemote, &v.Status, &v.EmploymentType, &v.ExperienceRequired,
		&v.CreatedAt, &v.UpdatedAt,
		&v.CompanyName, &v.CategoryName, &v.LocationCity,
	)
}

func (r *vacancyRepo) Create(ctx context.Context, v *domain.Vacancy) error {
	query := `INSERT INTO vacancies
              (title, slug, employer_id, category_id, description, requirements, responsibilities,
               benefits, salary_min, salary_max, location_id, is_remote, status, employment_type,
               experience_required, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
              RETURNING id`
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	if v.Status == "" {
		v.Status = domain.VacancyStatusOpen
	}
	err := r.db.QueryRow(ctx, query,
		v.Title, v.Slug, v.EmployerID, v.CategoryID, v.Description, v.Requirements,
		v.Responsibilities, v.Benefits, v.SalaryMin, v.SalaryMax, v.LocationID,
		v.IsRemote, v.Status, v.EmploymentType, v.ExperienceRequired,
		v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		return err
	}
	if len(v.SkillIDs) > 0 {
		return r.ReplaceSkills(ctx, v.ID, v.SkillIDs)
	}
	return nil
}

func (r *vacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	return r.getBy(ctx, ` WHERE v.id = $1`, id)
}

func (r *vacancyRepo) GetBySlug(ctx context.Context, slug string) (*domain.Vacancy, error) {
	return r.getBy(ctx, ` WHERE v.slug = $1`, slug)
}

func (r *vacancyRepo) getBy(ctx context.Context, where string, arg interface{}) (*domain.Vacancy, error) {
	var v domain.Vacancy
	if err := scanVacancy(r.db.QueryRow(ctx, vacancySelect+where, arg), &v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	skills, err := r.skillIDs(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	v.SkillIDs = skills
	return &v, nil
}

// buildFilter composes the WHERE conditions for FetchOpen. Supplied fields
// are ANDed; keywords OR-match title, description and requirements.
func buildFilter(filter domain.VacancyFilter) (string, []interface{}) {
	conds := []string{"v.status = 'open'"}
	var args []interface{}

	arg := func(val interface{}) string {
		args = append(args, val)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Keywords != "" {
		p := arg("%" + filter.Keywords + "%")
		conds = append(conds, fmt.Sprintf(
			"(v.title ILIKE %[1]s OR v.description ILIKE %[1]s OR v.requirements ILIKE %[1]s)", p))
	}
	if filter.CategorySlug != "" {
		conds = append(conds, "c.slug = "+arg(filter.CategorySlug))
	}
	if filter.LocationCity != "" {
		conds = append(conds, "l.city ILIKE "+arg("%"+filter.LocationCity+"%"))
	}
	if filter.EmploymentType != "" {
		conds = append(conds, "v.employment_type = "+arg(filter.EmploymentType))
	}
	if filter.Experience != "" {
		conds = append(conds, "v.experience_required = "+arg(filter.Experience))
	}
	if filter.Remote != nil {
		conds = append(conds, "v.is_remote = "+arg(*filter.Remote))
	}

	return strings.Join(conds, " AND "), args
}

func (r *vacancyRepo) FetchOpen(ctx context.Context, filter domain.VacancyFilter, limit, offset int) ([]domain.Vacancy, int64, error) {
	where, args := buildFilter(filter)

	countQuery := `SELECT COUNT(*) FROM vacancies v
		JOIN categories c ON v.category_id = c.id
		LEFT JOIN locations l ON v.location_id = l.id
		WHERE ` + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// id DESC tiebreak keeps ordering stable for identical timestamps
	query := fmt.Sprintf("%s WHERE %s ORDER BY v.created_at DESC, v.id DESC LIMIT $%d OFFSET $%d",
		vacancySelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	vacancies, err := r.fetch(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return vacancies, total, nil
}

func (r *vacancyRepo) FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]domain.Vacancy, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vacancies WHERE employer_id = $1`, employerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := vacancySelect + ` WHERE v.employer_id = $1 ORDER BY v.created_at DESC, v.id DESC LIMIT $2 OFFSET $3`
	vacancies, err := r.fetch(ctx, query, employerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return vacancies, total, nil
}

func (r *vacancyRepo) FetchSimilar(ctx context.Context, categoryID, excludeID int64, limit int) ([]domain.Vacancy, error) {
	query := vacancySelect + ` WHERE v.category_id = $1 AND v.status = 'open' AND v.id <> $2
		ORDER BY v.created_at DESC, v.id DESC LIMIT $3`
	return r.fetch(ctx, query, categoryID, excludeID, limit)
}

func (r *vacancyRepo) FetchLatestOpen(ctx context.Context, limit int) ([]domain.Vacancy, error) {
	query := vacancySelect + ` WHERE v.status = 'open' ORDER BY v.created_at DESC, v.id DESC LIMIT $1`
	return r.fetch(ctx, query, limit)
}

func (r *vacancyRepo) Search(ctx context.Context, q string, limit int) ([]domain.Vacancy, int64, error) {
	pattern := "%" + q + "%"
	where := ` WHERE v.status = 'open'
		AND (v.title ILIKE $1 OR v.description ILIKE $1 OR v.requirements ILIKE $1)`

	// total is counted before truncation
	var total int64
	countQuery := `SELECT COUNT(*) FROM vacancies v` + where
	if err := r.db.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := vacancySelect + where + ` ORDER BY v.created_at DESC, v.id DESC LIMIT $2`
	vacancies, err := r.fetch(ctx, query, pattern, limit)
	if err != nil {
		return nil, 0, err
	}
	return vacancies, total, nil
}

func (r *vacancyRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.Vacancy, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vacancies []domain.Vacancy
	for rows.Next() {
		var v domain.Vacancy
		if err := scanVacancy(rows, &v); err != nil {
			return nil, err
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, rows.Err()
}

// Update never touches the slug: it is assigned once at creation.
func (r *vacancyRepo) Update(ctx context.Context, v *domain.Vacancy) error {
	query := `UPDATE vacancies SET
		title = $2,
		category_id = $3,
		description = $4,
		requirements = $5,
		responsibilities = $6,
		benefits = $7,
		salary_min = $8,
		salary_max = $9,
		location_id = $10,
		is_remote = $11,
		status = $12,
		employment_type = $13,
		experience_required = $14,
		updated_at = $15
	WHERE id = $1`
	v.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		v.ID, v.Title, v.CategoryID, v.Description, v.Requirements, v.Responsibilities,
		v.Benefits, v.SalaryMin, v.SalaryMax, v.LocationID, v.IsRemote, v.Status,
		v.EmploymentType, v.ExperienceRequired, v.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return r.ReplaceSkills(ctx, v.ID, v.SkillIDs)
}

func (r *vacancyRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM vacancies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vacancyRepo) ReplaceSkills(ctx context.Context, vacancyID int64, skillIDs []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM vacancy_skills WHERE vacancy_id = $1`, vacancyID); err != nil {
		return err
	}
	for _, skillID := range skillIDs {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO vacancy_skills (vacancy_id, skill_id) VALUES ($1, $2)`,
			vacancyID, skillID); err != nil {
			return err
		}
	}
	return nil
}

func (r *vacancyRepo) skillIDs(ctx context.Context, vacancyID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT skill_id FROM vacancy_skills WHERE vacancy_id = $1 ORDER BY skill_id`, vacancyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
