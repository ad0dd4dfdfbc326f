package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/slug"
)

// dashboardRecentLimit caps each recent-activity list on the dashboard.
const dashboardRecentLimit = 5

type profileUsecase struct {
	userRepo        domain.UserRepository
	jobSeekerRepo   domain.JobSeekerProfileRepository
	employerRepo    domain.EmployerProfileRepository
	vacancyRepo     domain.VacancyRepository
	applicationRepo domain.ApplicationRepository
}

func NewProfileUsecase(
	userRepo domain.UserRepository,
	jobSeekerRepo domain.JobSeekerProfileRepository,
	employerRepo domain.EmployerProfileRepository,
	vacancyRepo domain.VacancyRepository,
	applicationRepo domain.ApplicationRepository,
) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo:        userRepo,
		jobSeekerRepo:   jobSeekerRepo,
		employerRepo:    employerRepo,
		vacancyRepo:     vacancyRepo,
		applicationRepo: applicationRepo,
	}
}

// Resolve answers "which profile does this account have" explicitly. A user
// with no profile yet gets Kind none, not an error.
func (u *profileUsecase) Resolve(ctx context.Context, userID int64) (*domain.ProfileLookup, error) {
	seeker, err := u.jobSeekerRepo.GetByUserID(ctx, userID)
	if err == nil {
		return &domain.ProfileLookup{Kind: domain.ProfileKindJobSeeker, JobSeeker: seeker}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	employer, err := u.employerRepo.GetByUserID(ctx, userID)
	if err == nil {
		return &domain.ProfileLookup{Kind: domain.ProfileKindEmployer, Employer: employer}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	return &domain.ProfileLookup{Kind: domain.ProfileKindNone}, nil
}

// GetDashboard returns the resolved profile plus its recent activity. A
// seeker sees their latest applications; an employer sees their latest
// vacancies and the latest applications they received. An account with no
// profile yet gets the bare lookup so the client can steer it to creation.
func (u *profileUsecase) GetDashboard(ctx context.Context, userID int64) (*domain.Dashboard, error) {
	lookup, err := u.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{Profile: *lookup}
	switch lookup.Kind {
	case domain.ProfileKindJobSeeker:
		applications, err := u.applicationRepo.GetByJobSeekerID(ctx, lookup.JobSeeker.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		dashboard.Applications = capApplications(applications)
	case domain.ProfileKindEmployer:
		vacancies, _, err := u.vacancyRepo.FetchByEmployerID(ctx, lookup.Employer.ID, dashboardRecentLimit, 0)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		applications, err := u.applicationRepo.GetByEmployerID(ctx, lookup.Employer.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		dashboard.Vacancies = vacancies
		dashboard.Applications = capApplications(applications)
	}
	return dashboard, nil
}

func capApplications(applications []domain.Application) []domain.Application {
	if len(applications) > dashboardRecentLimit {
		return applications[:dashboardRecentLimit]
	}
	return applications
}

func (u *profileUsecase) CreateJobSeekerProfile(ctx context.Context, userID int64, profile *domain.JobSeekerProfile) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.Unauthorized("Account not found")
	}
	if user.Role != domain.RoleJobSeeker {
		return apperror.Forbidden("Only job seeker accounts can create a job seeker profile")
	}

	lookup, err := u.Resolve(ctx, userID)
	if err != nil {
		return err
	}
	if lookup.Kind != domain.ProfileKindNone {
		return apperror.Conflict("A profile already exists for this account")
	}

	profile.UserID = userID
	profile.Slug = slug.ForProfile(user.Username, userID)
	if err := u.jobSeekerRepo.Create(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *profileUsecase) UpdateJobSeekerProfile(ctx context.Context, userID int64, profile *domain.JobSeekerProfile) error {
	existing, err := u.jobSeekerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.ProfileRequired("Create a job seeker profile first")
		}
		return apperror.Internal(err)
	}

	// id, owner and slug are immutable
	profile.ID = existing.ID
	profile.UserID = existing.UserID
	profile.Slug = existing.Slug
	if err := u.jobSeekerRepo.Update(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *profileUsecase) GetJobSeekerProfileBySlug(ctx context.Context, s string) (*domain.JobSeekerProfile, error) {
	profile, err := u.jobSeekerRepo.GetBySlug(ctx, s)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) CreateEmployerProfile(ctx context.Context, userID int64, profile *domain.EmployerProfile) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.Unauthorized("Account not found")
	}
	if user.Role != domain.RoleEmployer {
		return apperror.Forbidden("Only employer accounts can create a company profile")
	}

	lookup, err := u.Resolve(ctx, userID)
	if err != nil {
		return err
	}
	if lookup.Kind != domain.ProfileKindNone {
		return apperror.Conflict("A profile already exists for this account")
	}

	profile.UserID = userID
	profile.Slug = slug.ForProfile(profile.CompanyName, userID)
	if err := u.employerRepo.Create(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *profileUsecase) UpdateEmployerProfile(ctx context.Context, userID int64, profile *domain.EmployerProfile) error {
	existing, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.ProfileRequired("Create a company profile first")
		}
		return apperror.Internal(err)
	}

	profile.ID = existing.ID
	profile.UserID = existing.UserID
	profile.Slug = existing.Slug
	if err := u.employerRepo.Update(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *profileUsecase) GetEmployerProfileBySlug(ctx context.Context, s string) (*domain.EmployerProfile, error) {
	profile, err := u.employerRepo.GetBySlug(ctx, s)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}
