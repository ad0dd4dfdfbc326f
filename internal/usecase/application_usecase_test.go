package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubmitApplication(t *testing.T) {
	ctx := context.Background()

	openVacancy := &domain.Vacancy{
		ID:     10,
		Title:  "Backend Engineer",
		Slug:   "backend-engineer-acme-20250101-abcd1234",
		Status: domain.VacancyStatusOpen,
	}

	t.Run("Should reject submit without a job seeker profile", func(t *testing.T) {
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(1)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockVacancyRepo), seekerRepo, new(MockEmployerRepo))
		_, err := uc.Submit(ctx, 1, openVacancy.Slug, "", "")

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindProfileRequired))
	})

	t.Run("Should reject submit to a closed vacancy", func(t *testing.T) {
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(1)).Return(&domain.JobSeekerProfile{ID: 5, UserID: 1}, nil)

		closed := &domain.Vacancy{ID: 11, Slug: "old-role", Status: domain.VacancyStatusClosed}
		vacancyRepo := new(MockVacancyRepo)
		vacancyRepo.On("GetBySlug", ctx, "old-role").Return(closed, nil)

		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), vacancyRepo, seekerRepo, new(MockEmployerRepo))
		_, err := uc.Submit(ctx, 1, "old-role", "", "")

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
		assert.Contains(t, err.Error(), "no longer accepting")
	})

	t.Run("Should reject a duplicate application on the pre-check", func(t *testing.T) {
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(1)).Return(&domain.JobSeekerProfile{ID: 5, UserID: 1}, nil)

		vacancyRepo := new(MockVacancyRepo)
		vacancyRepo.On("GetBySlug", ctx, openVacancy.Slug).Return(openVacancy, nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("CheckExists", ctx, int64(5), int64(10)).Return(true, nil)

		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, seekerRepo, new(MockEmployerRepo))
		_, err := uc.Submit(ctx, 1, openVacancy.Slug, "", "")

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindDuplicateApplication))
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a duplicate slipping past the pre-check via the unique constraint", func(t *testing.T) {
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(1)).Return(&domain.JobSeekerProfile{ID: 5, UserID: 1}, nil)

		vacancyRepo := new(MockVacancyRepo)
		vacancyRepo.On("GetBySlug", ctx, openVacancy.Slug).Return(openVacancy, nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("CheckExists", ctx, int64(5), int64(10)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicateApplication)

		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, seekerRepo, new(MockEmployerRepo))
		_, err := uc.Submit(ctx, 1, openVacancy.Slug, "", "")

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindDuplicateApplication))
	})

	t.Run("Should fall back to the resume on file when none is supplied", func(t *testing.T) {
		resumeOnFile := "resumes/5.pdf"
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(1)).Return(&domain.JobSeekerProfile{ID: 5, UserID: 1, ResumeURL: &resumeOnFile}, nil)

		vacancyRepo := new(MockVacancyRepo)
		vacancyRepo.On("GetBySlug", ctx, openVacancy.Slug).Return(openVacancy, nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("CheckExists", ctx, int64(5), int64(10)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, seekerRepo, new(MockEmployerRepo))
		app, err := uc.Submit(ctx, 1, openVacancy.Slug, "Hello", "")

		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, resumeOnFile, *app.ResumeURL)
		assert.Equal(t, openVacancy.Title, *app.VacancyTitle)
	})
}

func TestBulkSetApplicationStatus(t *testing.T) {
	ctx := context.Background()
	employer := &domain.User{ID: 2, Role: domain.RoleEmployer}
	staff := &domain.User{ID: 99, Role: domain.RoleAdmin}

	t.Run("Should reject an unknown status value", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockVacancyRepo), new(MockJobSeekerRepo), new(MockEmployerRepo))
		_, err := uc.BulkSetStatus(ctx, employer, []int64{1}, "hired")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown application status")
	})

	t.Run("Should reject an empty selection", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockVacancyRepo), new(MockJobSeekerRepo), new(MockEmployerRepo))
		_, err := uc.BulkSetStatus(ctx, employer, nil, domain.ApplicationStatusReviewed)

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
	})

	t.Run("Should allow any transition, including reopening an accepted application", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, int64(2)).Return(&domain.EmployerProfile{ID: 7, UserID: 2}, nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByEmployerID", ctx, int64(7)).Return([]domain.Application{
			{ID: 1, Status: domain.ApplicationStatusAccepted},
			{ID: 2, Status: domain.ApplicationStatusRejected},
		}, nil)
		appRepo.On("BulkUpdateStatus", ctx, []int64{1, 2}, domain.ApplicationStatusPending).Return(int64(2), nil)

		uc := usecase.NewApplicationUsecase(appRepo, new(MockVacancyRepo), new(MockJobSeekerRepo), employerRepo)
		updated, err := uc.BulkSetStatus(ctx, employer, []int64{1, 2}, domain.ApplicationStatusPending)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), updated)
	})

	t.Run("Should forbid touching applications to another employer's vacancies", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, int64(2)).Return(&domain.EmployerProfile{ID: 7, UserID: 2}, nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByEmployerID", ctx, int64(7)).Return([]domain.Application{{ID: 1}}, nil)

		uc := usecase.NewApplicationUsecase(appRepo, new(MockVacancyRepo), new(MockJobSeekerRepo), employerRepo)
		_, err := uc.BulkSetStatus(ctx, employer, []int64{1, 42}, domain.ApplicationStatusReviewed)

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
		appRepo.AssertNotCalled(t, "BulkUpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should skip the ownership check for staff", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("BulkUpdateStatus", ctx, []int64{1, 42}, domain.ApplicationStatusRejected).Return(int64(2), nil)

		uc := usecase.NewApplicationUsecase(appRepo, new(MockVacancyRepo), new(MockJobSeekerRepo), new(MockEmployerRepo))
		updated, err := uc.BulkSetStatus(ctx, staff, []int64{1, 42}, domain.ApplicationStatusRejected)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), updated)
	})
}

func TestSetApplicationNotes(t *testing.T) {
	ctx := context.Background()
	employer := &domain.User{ID: 2, Role: domain.RoleEmployer}

	t.Run("Should forbid notes on an application to a foreign vacancy", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{ID: 3, VacancyID: 10}, nil)

		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, int64(2)).Return(&domain.EmployerProfile{ID: 7, UserID: 2}, nil)

		vacancyRepo := new(MockVacancyRepo)
		vacancyRepo.On("GetByID", ctx, int64(10)).Return(&domain.Vacancy{ID: 10, EmployerID: 8}, nil)

		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, new(MockJobSeekerRepo), employerRepo)
		err := uc.SetNotes(ctx, employer, 3, "strong candidate")

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})

	t.Run("Should store notes for the owning employer", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{ID: 3, VacancyID: 10}, nil)
		appRepo.On("UpdateNotes", ctx, int64(3), "strong candidate").Return(nil)

		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, int64(2)).Return(&domain.EmployerProfile{ID: 7, UserID: 2}, nil)

		vacancyRepo := new(MockVacancyRepo)
		vacancyRepo.On("GetByID", ctx, int64(10)).Return(&domain.Vacancy{ID: 10, EmployerID: 7}, nil)

		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, new(MockJobSeekerRepo), employerRepo)
		err := uc.SetNotes(ctx, employer, 3, "strong candidate")

		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})
}
