package usecase_test

import (
	"context"
	"os"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockJobSeekerRepo struct {
	mock.Mock
}

func (m *MockJobSeekerRepo) Create(ctx context.Context, profile *domain.JobSeekerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockJobSeekerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.JobSeekerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeekerProfile), args.Error(1)
}
func (m *MockJobSeekerRepo) GetBySlug(ctx context.Context, slug string) (*domain.JobSeekerProfile, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeekerProfile), args.Error(1)
}
func (m *MockJobSeekerRepo) Update(ctx context.Context, profile *domain.JobSeekerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerRepo) GetBySlug(ctx context.Context, slug string) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCatalogRepo) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCatalogRepo) CreateCategory(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}
func (m *MockCatalogRepo) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}
func (m *MockCatalogRepo) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCatalogRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockCatalogRepo) GetSkillBySlug(ctx context.Context, slug string) (*domain.Skill, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}
func (m *MockCatalogRepo) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}
func (m *MockCatalogRepo) ListLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}
func (m *MockCatalogRepo) GetLocationByID(ctx context.Context, id int64) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}
func (m *MockCatalogRepo) CreateLocation(ctx context.Context, location *domain.Location) error {
	return m.Called(ctx, location).Error(0)
}

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	return m.Called(ctx, vacancy).Error(0)
}
func (m *MockVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) GetBySlug(ctx context.Context, slug string) (*domain.Vacancy, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) FetchOpen(ctx context.Context, filter domain.VacancyFilter, limit, offset int) ([]domain.Vacancy, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Vacancy), args.Get(1).(int64), args.Error(2)
}
func (m *MockVacancyRepo) FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]domain.Vacancy, int64, error) {
	args := m.Called(ctx, employerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Vacancy), args.Get(1).(int64), args.Error(2)
}
func (m *MockVacancyRepo) FetchSimilar(ctx context.Context, categoryID, excludeID int64, limit int) ([]domain.Vacancy, error) {
	args := m.Called(ctx, categoryID, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) FetchLatestOpen(ctx context.Context, limit int) ([]domain.Vacancy, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) Search(ctx context.Context, q string, limit int) ([]domain.Vacancy, int64, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Vacancy), args.Get(1).(int64), args.Error(2)
}
func (m *MockVacancyRepo) Update(ctx context.Context, vacancy *domain.Vacancy) error {
	return m.Called(ctx, vacancy).Error(0)
}
func (m *MockVacancyRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockVacancyRepo) ReplaceSkills(ctx context.Context, vacancyID int64, skillIDs []int64) error {
	return m.Called(ctx, vacancyID, skillIDs).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, jobSeekerID, vacancyID int64) (bool, error) {
	args := m.Called(ctx, jobSeekerID, vacancyID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) GetByJobSeekerID(ctx context.Context, jobSeekerID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobSeekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByEmployerID(ctx context.Context, employerID int64) ([]domain.Application, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetAll(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) BulkUpdateStatus(ctx context.Context, ids []int64, status string) (int64, error) {
	args := m.Called(ctx, ids, status)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockApplicationRepo) UpdateNotes(ctx context.Context, id int64, notes string) error {
	return m.Called(ctx, id, notes).Error(0)
}

type MockContentRepo struct {
	mock.Mock
}

func (m *MockContentRepo) ListArticleCategories(ctx context.Context) ([]domain.ArticleCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArticleCategory), args.Error(1)
}
func (m *MockContentRepo) GetArticleCategoryBySlug(ctx context.Context, slug string) (*domain.ArticleCategory, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticleCategory), args.Error(1)
}
func (m *MockContentRepo) ListTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}
func (m *MockContentRepo) GetTagBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}
func (m *MockContentRepo) CreateArticle(ctx context.Context, article *domain.Article) error {
	return m.Called(ctx, article).Error(0)
}
func (m *MockContentRepo) GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}
func (m *MockContentRepo) FetchArticles(ctx context.Context, filter domain.ArticleFilter, publishedOnly bool, limit, offset int) ([]domain.Article, int64, error) {
	args := m.Called(ctx, filter, publishedOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Article), args.Get(1).(int64), args.Error(2)
}
func (m *MockContentRepo) FetchRelatedArticles(ctx context.Context, categoryID, excludeID int64, limit int) ([]domain.Article, error) {
	args := m.Called(ctx, categoryID, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}
func (m *MockContentRepo) UpdateArticle(ctx context.Context, article *domain.Article) error {
	return m.Called(ctx, article).Error(0)
}
func (m *MockContentRepo) DeleteArticle(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockContentRepo) IncrementArticleViews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockContentRepo) SearchArticles(ctx context.Context, q string, limit int) ([]domain.Article, int64, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Article), args.Get(1).(int64), args.Error(2)
}
func (m *MockContentRepo) BulkSetArticlePublished(ctx context.Context, ids []int64, published bool) (int64, error) {
	args := m.Called(ctx, ids, published)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockContentRepo) CreateNews(ctx context.Context, news *domain.News) error {
	return m.Called(ctx, news).Error(0)
}
func (m *MockContentRepo) GetNewsBySlug(ctx context.Context, slug string) (*domain.News, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.News), args.Error(1)
}
func (m *MockContentRepo) FetchNews(ctx context.Context, q string, publishedOnly bool, limit, offset int) ([]domain.News, int64, error) {
	args := m.Called(ctx, q, publishedOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.News), args.Get(1).(int64), args.Error(2)
}
func (m *MockContentRepo) FetchSimilarNews(ctx context.Context, excludeID int64, limit int) ([]domain.News, error) {
	args := m.Called(ctx, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.News), args.Error(1)
}
func (m *MockContentRepo) UpdateNews(ctx context.Context, news *domain.News) error {
	return m.Called(ctx, news).Error(0)
}
func (m *MockContentRepo) DeleteNews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockContentRepo) IncrementNewsViews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockContentRepo) SearchNews(ctx context.Context, q string, limit int) ([]domain.News, int64, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.News), args.Get(1).(int64), args.Error(2)
}
func (m *MockContentRepo) BulkSetNewsPublished(ctx context.Context, ids []int64, published bool) (int64, error) {
	args := m.Called(ctx, ids, published)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockContentRepo) GetPageBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}
func (m *MockContentRepo) ListMenuPages(ctx context.Context) ([]domain.Page, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Page), args.Error(1)
}
func (m *MockContentRepo) ListPublishedFAQs(ctx context.Context) ([]domain.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FAQ), args.Error(1)
}
func (m *MockContentRepo) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *MockContentRepo) ListContactMessages(ctx context.Context, status string, limit, offset int) ([]domain.ContactMessage, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.ContactMessage), args.Get(1).(int64), args.Error(2)
}
func (m *MockContentRepo) RespondContactMessage(ctx context.Context, id, responderID int64, response, status string) error {
	return m.Called(ctx, id, responderID, response, status).Error(0)
}
