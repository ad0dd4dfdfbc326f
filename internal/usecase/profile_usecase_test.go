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

func TestResolveProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report no profile as a valid result, not an error", func(t *testing.T) {
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(1)).Return(nil, domain.ErrNotFound)
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, int64(1)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewProfileUsecase(new(MockUserRepo), seekerRepo, employerRepo, new(MockVacancyRepo), new(MockApplicationRepo))
		lookup, err := uc.Resolve(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProfileKindNone, lookup.Kind)
		assert.Nil(t, lookup.JobSeeker)
		assert.Nil(t, lookup.Employer)
	})

	t.Run("Should resolve a job seeker profile", func(t *testing.T) {
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(1)).Return(&domain.JobSeekerProfile{ID: 5, UserID: 1}, nil)

		uc := usecase.NewProfileUsecase(new(MockUserRepo), seekerRepo, new(MockEmployerRepo), new(MockVacancyRepo), new(MockApplicationRepo))
		lookup, err := uc.Resolve(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProfileKindJobSeeker, lookup.Kind)
		assert.Equal(t, int64(5), lookup.JobSeeker.ID)
	})

	t.Run("Should resolve an employer profile", func(t *testing.T) {
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(2)).Return(nil, domain.ErrNotFound)
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, int64(2)).Return(&domain.EmployerProfile{ID: 7, UserID: 2}, nil)

		uc := usecase.NewProfileUsecase(new(MockUserRepo), seekerRepo, employerRepo, new(MockVacancyRepo), new(MockApplicationRepo))
		lookup, err := uc.Resolve(ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProfileKindEmployer, lookup.Kind)
		assert.Equal(t, int64(7), lookup.Employer.ID)
	})
}

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Should cap a job seeker's recent applications at five", func(t *testing.T) {
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(1)).Return(&domain.JobSeekerProfile{ID: 5, UserID: 1}, nil)

		var applications []domain.Application
		for i := int64(1); i <= 7; i++ {
			applications = append(applications, domain.Application{ID: i, JobSeekerID: 5})
		}
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByJobSeekerID", ctx, int64(5)).Return(applications, nil)

		uc := usecase.NewProfileUsecase(new(MockUserRepo), seekerRepo, new(MockEmployerRepo), new(MockVacancyRepo), appRepo)
		dashboard, err := uc.GetDashboard(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProfileKindJobSeeker, dashboard.Profile.Kind)
		assert.Len(t, dashboard.Applications, 5)
		assert.Equal(t, int64(1), dashboard.Applications[0].ID)
		assert.Empty(t, dashboard.Vacancies)
	})

	t.Run("Should give an employer recent vacancies and received applications", func(t *testing.T) {
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(2)).Return(nil, domain.ErrNotFound)
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, int64(2)).Return(&domain.EmployerProfile{ID: 7, UserID: 2}, nil)

		vacancyRepo := new(MockVacancyRepo)
		vacancyRepo.On("FetchByEmployerID", ctx, int64(7), 5, 0).
			Return([]domain.Vacancy{{ID: 10, EmployerID: 7}, {ID: 9, EmployerID: 7}}, int64(12), nil)
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByEmployerID", ctx, int64(7)).
			Return([]domain.Application{{ID: 3, VacancyID: 10}}, nil)

		uc := usecase.NewProfileUsecase(new(MockUserRepo), seekerRepo, employerRepo, vacancyRepo, appRepo)
		dashboard, err := uc.GetDashboard(ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProfileKindEmployer, dashboard.Profile.Kind)
		assert.Len(t, dashboard.Vacancies, 2)
		assert.Len(t, dashboard.Applications, 1)
	})

	t.Run("Should return the bare lookup when no profile exists", func(t *testing.T) {
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(3)).Return(nil, domain.ErrNotFound)
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, int64(3)).Return(nil, domain.ErrNotFound)

		vacancyRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewProfileUsecase(new(MockUserRepo), seekerRepo, employerRepo, vacancyRepo, appRepo)
		dashboard, err := uc.GetDashboard(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProfileKindNone, dashboard.Profile.Kind)
		assert.Empty(t, dashboard.Applications)
		assert.Empty(t, dashboard.Vacancies)
		appRepo.AssertNotCalled(t, "GetByJobSeekerID", mock.Anything, mock.Anything)
		vacancyRepo.AssertNotCalled(t, "FetchByEmployerID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCreateJobSeekerProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid profile creation for the wrong role", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleEmployer}, nil)

		uc := usecase.NewProfileUsecase(userRepo, new(MockJobSeekerRepo), new(MockEmployerRepo), new(MockVacancyRepo), new(MockApplicationRepo))
		err := uc.CreateJobSeekerProfile(ctx, 2, &domain.JobSeekerProfile{})

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})

	t.Run("Should reject a second profile for the same account", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Username: "jane", Role: domain.RoleJobSeeker}, nil)
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(1)).Return(&domain.JobSeekerProfile{ID: 5, UserID: 1}, nil)

		uc := usecase.NewProfileUsecase(userRepo, seekerRepo, new(MockEmployerRepo), new(MockVacancyRepo), new(MockApplicationRepo))
		err := uc.CreateJobSeekerProfile(ctx, 1, &domain.JobSeekerProfile{})

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	})

	t.Run("Should derive the slug from username and account id", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Username: "Jane Doe", Role: domain.RoleJobSeeker}, nil)
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, int64(1)).Return(nil, domain.ErrNotFound)
		seekerRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobSeekerProfile")).Return(nil)
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, int64(1)).Return(nil, domain.ErrNotFound)

		profile := &domain.JobSeekerProfile{}
		uc := usecase.NewProfileUsecase(userRepo, seekerRepo, employerRepo, new(MockVacancyRepo), new(MockApplicationRepo))
		err := uc.CreateJobSeekerProfile(ctx, 1, profile)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), profile.UserID)
		assert.Equal(t, "jane-doe-1", profile.Slug)
	})
}

func TestUpdateEmployerProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should steer a missing profile toward creation", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, int64(2)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewProfileUsecase(new(MockUserRepo), new(MockJobSeekerRepo), employerRepo, new(MockVacancyRepo), new(MockApplicationRepo))
		err := uc.UpdateEmployerProfile(ctx, 2, &domain.EmployerProfile{CompanyName: "Acme"})

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindProfileRequired))
	})

	t.Run("Should keep id, owner and slug immutable", func(t *testing.T) {
		existing := &domain.EmployerProfile{ID: 7, UserID: 2, Slug: "acme-2", CompanyName: "Acme"}
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, int64(2)).Return(existing, nil)
		employerRepo.On("Update", ctx, mock.AnythingOfType("*domain.EmployerProfile")).Return(nil)

		update := &domain.EmployerProfile{CompanyName: "Acme Industries", Slug: "hacked-slug"}
		uc := usecase.NewProfileUsecase(new(MockUserRepo), new(MockJobSeekerRepo), employerRepo, new(MockVacancyRepo), new(MockApplicationRepo))
		err := uc.UpdateEmployerProfile(ctx, 2, update)

		assert.NoError(t, err)
		assert.Equal(t, existing.ID, update.ID)
		assert.Equal(t, existing.UserID, update.UserID)
		assert.Equal(t, existing.Slug, update.Slug)
	})
}
