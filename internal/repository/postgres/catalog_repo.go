package postgres

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type catalogRepo struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) domain.CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, description, icon FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *catalogRepo) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRow(ctx,
		`SELECT id, name, slug, description, icon FROM categories WHERE slug = $1`, slug,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *catalogRepo) CreateCategory(ctx context.Context, c *domain.Category) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO categories (name, slug, description, icon) VALUES ($1, $2, $3, $4) RETURNING id`,
		c.Name, c.Slug, c.Description, c.Icon,
	).Scan(&c.ID)
}

func (r *catalogRepo) UpdateCategory(ctx context.Context, c *domain.Category) error {
	result, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3, icon = $4 WHERE id = $1`,
		c.ID, c.Name, c.Description, c.Icon,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *catalogRepo) DeleteCategory(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *catalogRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, description FROM skills ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Description); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *catalogRepo) GetSkillBySlug(ctx context.Context, slug string) (*domain.Skill, error) {
	var s domain.Skill
	err := r.db.QueryRow(ctx,
		`SELECT id, name, slug, description FROM skills WHERE slug = $1`, slug,
	).Scan(&s.ID, &s.Name, &s.Slug, &s.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *catalogRepo) CreateSkill(ctx context.Context, s *domain.Skill) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO skills (name, slug, description) VALUES ($1, $2, $3) RETURNING id`,
		s.Name, s.Slug, s.Description,
	).Scan(&s.ID)
}

func (r *catalogRepo) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.Query(ctx, `SELECT id, city, region, address FROM locations ORDER BY city, region`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.City, &l.Region, &l.Address); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *catalogRepo) GetLocationByID(ctx context.Context, id int64) (*domain.Location, error) {
	var l domain.Location
	err := r.db.QueryRow(ctx,
		`SELECT id, city, region, address FROM locations WHERE id = $1`, id,
	).Scan(&l.ID, &l.City, &l.Region, &l.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *catalogRepo) CreateLocation(ctx context.Context, l *domain.Location) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO locations (city, region, address) VALUES ($1, $2, $3) RETURNING id`,
		l.City, l.Region, l.Address,
	).Scan(&l.ID)
}
