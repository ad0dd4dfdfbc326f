package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	vacancyRepo     domain.VacancyRepository
	jobSeekerRepo   domain.JobSeekerProfileRepository
	employerRepo    domain.EmployerProfileRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	vacancyRepo domain.VacancyRepository,
	jobSeekerRepo domain.JobSeekerProfileRepository,
	employerRepo domain.EmployerProfileRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		vacancyRepo:     vacancyRepo,
		jobSeekerRepo:   jobSeekerRepo,
		employerRepo:    employerRepo,
	}
}

func (u *applicationUsecase) Submit(ctx context.Context, userID int64, vacancySlug, coverLetter, resumeURL string) (*domain.Application, error) {
	profile, err := u.jobSeekerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.ProfileRequired("Create a job seeker profile before applying")
		}
		return nil, apperror.Internal(err)
	}

	vacancy, err := u.vacancyRepo.GetBySlug(ctx, vacancySlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}
	if vacancy.Status != domain.VacancyStatusOpen {
		return nil, apperror.Conflict("This vacancy is no longer accepting applications")
	}

	exists, err := u.applicationRepo.CheckExists(ctx, profile.ID, vacancy.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.DuplicateApplication("You have already applied to this vacancy")
	}

	app := &domain.Application{
		JobSeekerID: profile.ID,
		VacancyID:   vacancy.ID,
		Status:      domain.ApplicationStatusPending,
	}
	if coverLetter != "" {
		app.CoverLetter = &coverLetter
	}
	if resumeURL != "" {
		app.ResumeURL = &resumeURL
	} else {
		// Fall back to the resume on file
		app.ResumeURL = profile.ResumeURL
	}

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		// The pre-check above cannot close the race with a concurrent submit;
		// the unique constraint does.
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, apperror.DuplicateApplication("You have already applied to this vacancy")
		}
		return nil, apperror.Internal(err)
	}
	app.VacancyTitle = &vacancy.Title
	app.VacancySlug = &vacancy.Slug
	return app, nil
}

func (u *applicationUsecase) ListForSeeker(ctx context.Context, userID int64) ([]domain.Application, error) {
	profile, err := u.jobSeekerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.ProfileRequired("Create a job seeker profile first")
		}
		return nil, apperror.Internal(err)
	}
	applications, err := u.applicationRepo.GetByJobSeekerID(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applications, nil
}

func (u *applicationUsecase) ListForEmployer(ctx context.Context, userID int64) ([]domain.Application, error) {
	profile, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.ProfileRequired("Create a company profile first")
		}
		return nil, apperror.Internal(err)
	}
	applications, err := u.applicationRepo.GetByEmployerID(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applications, nil
}

// BulkSetStatus validates the status value but not the transition: any status
// may be set from any status, including reopening rejected applications.
func (u *applicationUsecase) BulkSetStatus(ctx context.Context, actor *domain.User, ids []int64, status string) (int64, error) {
	if len(ids) == 0 {
		return 0, apperror.BadRequest("No applications selected")
	}
	if !domain.ValidApplicationStatus(status) {
		return 0, apperror.BadRequest("Unknown application status: " + status)
	}

	if !actor.IsStaff() {
		profile, err := u.employerRepo.GetByUserID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return 0, apperror.ProfileRequired("Create a company profile first")
			}
			return 0, apperror.Internal(err)
		}
		// Employers may only touch applications to their own vacancies
		owned, err := u.applicationRepo.GetByEmployerID(ctx, profile.ID)
		if err != nil {
			return 0, apperror.Internal(err)
		}
		ownedIDs := make(map[int64]bool, len(owned))
		for _, app := range owned {
			ownedIDs[app.ID] = true
		}
		for _, id := range ids {
			if !ownedIDs[id] {
				return 0, apperror.Forbidden("One or more applications do not belong to your vacancies")
			}
		}
	}

	updated, err := u.applicationRepo.BulkUpdateStatus(ctx, ids, status)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return updated, nil
}

func (u *applicationUsecase) SetNotes(ctx context.Context, actor *domain.User, id int64, notes string) error {
	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	if !actor.IsStaff() {
		profile, err := u.employerRepo.GetByUserID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.ProfileRequired("Create a company profile first")
			}
			return apperror.Internal(err)
		}
		vacancy, err := u.vacancyRepo.GetByID(ctx, app.VacancyID)
		if err != nil {
			return apperror.Internal(err)
		}
		if vacancy.EmployerID != profile.ID {
			return apperror.Forbidden("This application does not belong to your vacancies")
		}
	}

	if err := u.applicationRepo.UpdateNotes(ctx, id, notes); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
