package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/slug"
)

type catalogUsecase struct {
	catalogRepo domain.CatalogRepository
}

func NewCatalogUsecase(catalogRepo domain.CatalogRepository) domain.CatalogUsecase {
	return &catalogUsecase{catalogRepo: catalogRepo}
}

func (u *catalogUsecase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := u.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return categories, nil
}

func (u *catalogUsecase) GetCategoryBySlug(ctx context.Context, s string) (*domain.Category, error) {
	category, err := u.catalogRepo.GetCategoryBySlug(ctx, s)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Category not found")
		}
		return nil, apperror.Internal(err)
	}
	return category, nil
}

func (u *catalogUsecase) CreateCategory(ctx context.Context, category *domain.Category) error {
	if category.Name == "" {
		return apperror.BadRequest("Category name is required")
	}
	category.Slug = slug.Make(category.Name)
	if err := u.catalogRepo.CreateCategory(ctx, category); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *catalogUsecase) UpdateCategory(ctx context.Context, category *domain.Category) error {
	if err := u.catalogRepo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Category not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *catalogUsecase) DeleteCategory(ctx context.Context, id int64) error {
	if err := u.catalogRepo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Category not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *catalogUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := u.catalogRepo.ListSkills(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}

func (u *catalogUsecase) GetSkillBySlug(ctx context.Context, s string) (*domain.Skill, error) {
	skill, err := u.catalogRepo.GetSkillBySlug(ctx, s)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, apperror.Internal(err)
	}
	return skill, nil
}

func (u *catalogUsecase) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	if skill.Name == "" {
		return apperror.BadRequest("Skill name is required")
	}
	skill.Slug = slug.Make(skill.Name)
	if err := u.catalogRepo.CreateSkill(ctx, skill); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *catalogUsecase) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locations, err := u.catalogRepo.ListLocations(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return locations, nil
}

func (u *catalogUsecase) CreateLocation(ctx context.Context, location *domain.Location) error {
	if location.City == "" || location.Region == "" {
		return apperror.BadRequest("City and region are required")
	}
	if err := u.catalogRepo.CreateLocation(ctx, location); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
