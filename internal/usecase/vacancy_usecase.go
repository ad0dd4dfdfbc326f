package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/slug"
)

const similarVacancyLimit = 4

type vacancyUsecase struct {
	vacancyRepo  domain.VacancyRepository
	catalogRepo  domain.CatalogRepository
	employerRepo domain.EmployerProfileRepository
}

func NewVacancyUsecase(
	vacancyRepo domain.VacancyRepository,
	catalogRepo domain.CatalogRepository,
	employerRepo domain.EmployerProfileRepository,
) domain.VacancyUsecase {
	return &vacancyUsecase{
		vacancyRepo:  vacancyRepo,
		catalogRepo:  catalogRepo,
		employerRepo: employerRepo,
	}
}

func validateVacancy(v *domain.Vacancy) error {
	if v.SalaryMin != nil && v.SalaryMax != nil && *v.SalaryMin > *v.SalaryMax {
		return apperror.BadRequest("Minimum salary cannot exceed maximum salary")
	}
	if !v.IsRemote && v.LocationID == nil {
		return apperror.BadRequest("A location is required unless the vacancy is remote")
	}
	return nil
}

func (u *vacancyUsecase) CreateVacancy(ctx context.Context, userID int64, vacancy *domain.Vacancy) error {
	profile, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.ProfileRequired("Create a company profile before posting vacancies")
		}
		return apperror.Internal(err)
	}

	if err := validateVacancy(vacancy); err != nil {
		return err
	}
	if err := u.checkLocation(ctx, vacancy); err != nil {
		return err
	}

	vacancy.EmployerID = profile.ID
	// Assigned once at creation and never regenerated, so published links
	// survive later title edits.
	vacancy.Slug = slug.ForVacancy(vacancy.Title, profile.CompanyName)
	if err := u.vacancyRepo.Create(ctx, vacancy); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *vacancyUsecase) GetVacancyBySlug(ctx context.Context, s string) (*domain.Vacancy, error) {
	vacancy, err := u.vacancyRepo.GetBySlug(ctx, s)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}
	return vacancy, nil
}

func (u *vacancyUsecase) GetSimilarVacancies(ctx context.Context, vacancy *domain.Vacancy) ([]domain.Vacancy, error) {
	similar, err := u.vacancyRepo.FetchSimilar(ctx, vacancy.CategoryID, vacancy.ID, similarVacancyLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return similar, nil
}

func (u *vacancyUsecase) ListOpenVacancies(ctx context.Context, filter domain.VacancyFilter, page, pageSize int) ([]domain.Vacancy, int64, error) {
	limit, offset := paginate(page, pageSize)
	vacancies, total, err := u.vacancyRepo.FetchOpen(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return vacancies, total, nil
}

// ListVacanciesByCategory rejects unknown category slugs instead of quietly
// returning an empty list.
func (u *vacancyUsecase) ListVacanciesByCategory(ctx context.Context, categorySlug string, page, pageSize int) ([]domain.Vacancy, int64, error) {
	if _, err := u.catalogRepo.GetCategoryBySlug(ctx, categorySlug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, apperror.NotFound("Category not found")
		}
		return nil, 0, apperror.Internal(err)
	}
	return u.ListOpenVacancies(ctx, domain.VacancyFilter{CategorySlug: categorySlug}, page, pageSize)
}

func (u *vacancyUsecase) ListEmployerVacancies(ctx context.Context, userID int64, page, pageSize int) ([]domain.Vacancy, int64, error) {
	profile, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, apperror.ProfileRequired("Create a company profile first")
		}
		return nil, 0, apperror.Internal(err)
	}

	limit, offset := paginate(page, pageSize)
	vacancies, total, err := u.vacancyRepo.FetchByEmployerID(ctx, profile.ID, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return vacancies, total, nil
}

func (u *vacancyUsecase) UpdateVacancy(ctx context.Context, actor *domain.User, vacancy *domain.Vacancy) error {
	existing, err := u.vacancyRepo.GetBySlug(ctx, vacancy.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Vacancy not found")
		}
		return apperror.Internal(err)
	}

	if err := u.authorize(ctx, actor, existing); err != nil {
		return err
	}
	if err := validateVacancy(vacancy); err != nil {
		return err
	}
	if err := u.checkLocation(ctx, vacancy); err != nil {
		return err
	}

	vacancy.ID = existing.ID
	vacancy.EmployerID = existing.EmployerID
	vacancy.Slug = existing.Slug
	if err := u.vacancyRepo.Update(ctx, vacancy); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *vacancyUsecase) DeleteVacancy(ctx context.Context, actor *domain.User, s string) error {
	existing, err := u.vacancyRepo.GetBySlug(ctx, s)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Vacancy not found")
		}
		return apperror.Internal(err)
	}

	if err := u.authorize(ctx, actor, existing); err != nil {
		return err
	}
	if err := u.vacancyRepo.Delete(ctx, existing.ID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// checkLocation rejects references to locations that do not exist.
func (u *vacancyUsecase) checkLocation(ctx context.Context, v *domain.Vacancy) error {
	if v.LocationID == nil {
		return nil
	}
	if _, err := u.catalogRepo.GetLocationByID(ctx, *v.LocationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.BadRequest("Unknown location")
		}
		return apperror.Internal(err)
	}
	return nil
}

// authorize allows staff, or the employer that owns the vacancy.
func (u *vacancyUsecase) authorize(ctx context.Context, actor *domain.User, vacancy *domain.Vacancy) error {
	if actor.IsStaff() {
		return nil
	}
	profile, err := u.employerRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.ProfileRequired("Create a company profile first")
		}
		return apperror.Internal(err)
	}
	if profile.ID != vacancy.EmployerID {
		return apperror.Forbidden("You do not own this vacancy")
	}
	return nil
}

func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
