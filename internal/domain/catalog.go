package domain

import "context"

// Category groups vacancies (IT, Sales, ...).
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// Skill is reference data attached to vacancies (M:N). Name is unique.
type Skill struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
}

// Location is unique on (city, region, address).
type Location struct {
	ID      int64   `json:"id"`
	City    string  `json:"city"`
	Region  string  `json:"region"`
	Address *string `json:"address,omitempty"`
}

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id int64) error

	ListSkills(ctx context.Context) ([]Skill, error)
	GetSkillBySlug(ctx context.Context, slug string) (*Skill, error)
	CreateSkill(ctx context.Context, skill *Skill) error

	ListLocations(ctx context.Context) ([]Location, error)
	GetLocationByID(ctx context.Context, id int64) (*Location, error)
	CreateLocation(ctx context.Context, location *Location) error
}

type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id int64) error

	ListSkills(ctx context.Context) ([]Skill, error)
	GetSkillBySlug(ctx context.Context, slug string) (*Skill, error)
	CreateSkill(ctx context.Context, skill *Skill) error

	ListLocations(ctx context.Context) ([]Location, error)
	CreateLocation(ctx context.Context, location *Location) error
}
