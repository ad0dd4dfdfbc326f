package usecase

import (
	"bytes"
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

type adminUsecase struct {
	contentRepo     domain.ContentRepository
	applicationRepo domain.ApplicationRepository
	employerRepo    domain.EmployerProfileRepository
}

func NewAdminUsecase(
	contentRepo domain.ContentRepository,
	applicationRepo domain.ApplicationRepository,
	employerRepo domain.EmployerProfileRepository,
) domain.AdminUsecase {
	return &adminUsecase{
		contentRepo:     contentRepo,
		applicationRepo: applicationRepo,
		employerRepo:    employerRepo,
	}
}

func requireStaff(actor *domain.User) error {
	if !actor.IsStaff() {
		return apperror.Forbidden("Staff access required")
	}
	return nil
}

func (u *adminUsecase) BulkPublishArticles(ctx context.Context, actor *domain.User, ids []int64, published bool) (int64, error) {
	if err := requireStaff(actor); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, apperror.BadRequest("No articles selected")
	}
	updated, err := u.contentRepo.BulkSetArticlePublished(ctx, ids, published)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return updated, nil
}

func (u *adminUsecase) BulkPublishNews(ctx context.Context, actor *domain.User, ids []int64, published bool) (int64, error) {
	if err := requireStaff(actor); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, apperror.BadRequest("No news items selected")
	}
	updated, err := u.contentRepo.BulkSetNewsPublished(ctx, ids, published)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return updated, nil
}

func (u *adminUsecase) ListContactMessages(ctx context.Context, actor *domain.User, status string, page, pageSize int) ([]domain.ContactMessage, int64, error) {
	if err := requireStaff(actor); err != nil {
		return nil, 0, err
	}
	if status != "" {
		switch status {
		case domain.ContactStatusNew, domain.ContactStatusInProgress,
			domain.ContactStatusAnswered, domain.ContactStatusClosed:
		default:
			return nil, 0, apperror.BadRequest("Unknown contact message status: " + status)
		}
	}
	limit, offset := paginate(page, pageSize)
	messages, total, err := u.contentRepo.ListContactMessages(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return messages, total, nil
}

func (u *adminUsecase) RespondContactMessage(ctx context.Context, actor *domain.User, id int64, response, status string) error {
	if err := requireStaff(actor); err != nil {
		return err
	}
	if response == "" {
		return apperror.BadRequest("Response text is required")
	}
	if status == "" {
		status = domain.ContactStatusAnswered
	}
	if err := u.contentRepo.RespondContactMessage(ctx, id, actor.ID, response, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Contact message not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

var applicationExportColumns = []string{
	"ID", "VACANCY", "APPLICANT", "STATUS", "APPLIED AT", "EMPLOYER NOTES",
}

// ExportApplications renders applications as an .xlsx workbook. An employer
// exports applications to their own vacancies; staff name an employer by user
// id, or pass zero to export every application in the system.
func (u *adminUsecase) ExportApplications(ctx context.Context, actor *domain.User, userID int64) ([]byte, error) {
	var applications []domain.Application
	switch {
	case actor.IsStaff() && userID == 0:
		all, err := u.applicationRepo.GetAll(ctx)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		applications = all
	case actor.IsStaff():
		profile, err := u.employerRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Employer profile not found")
			}
			return nil, apperror.Internal(err)
		}
		applications, err = u.applicationRepo.GetByEmployerID(ctx, profile.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	default:
		profile, err := u.employerRepo.GetByUserID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.ProfileRequired("Create a company profile first")
			}
			return nil, apperror.Internal(err)
		}
		applications, err = u.applicationRepo.GetByEmployerID(ctx, profile.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}

	f := excelize.NewFile()
	sheetName := "Applications"
	f.SetSheetName("Sheet1", sheetName)

	for i, col := range applicationExportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(applicationExportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, app := range applications {
		values := []interface{}{
			app.ID,
			deref(app.VacancyTitle),
			deref(app.SeekerName),
			app.Status,
			app.CreatedAt.Format("2006-01-02 15:04"),
			deref(app.EmployerNotes),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range applicationExportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, apperror.Internal(err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
