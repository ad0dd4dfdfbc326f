package domain

import "context"

// AdminUsecase backs the management console: bulk actions over content and
// applications plus data export. All operations require a staff actor.
type AdminUsecase interface {
	BulkPublishArticles(ctx context.Context, actor *User, ids []int64, published bool) (int64, error)
	BulkPublishNews(ctx context.Context, actor *User, ids []int64, published bool) (int64, error)
	ListContactMessages(ctx context.Context, actor *User, status string, page, pageSize int) ([]ContactMessage, int64, error)
	RespondContactMessage(ctx context.Context, actor *User, id int64, response, status string) error
	// ExportApplications renders applications as an .xlsx workbook. Employers
	// get the applications to their own vacancies; staff pass a target user id
	// for a single employer, or zero for every application in the system.
	ExportApplications(ctx context.Context, actor *User, userID int64) ([]byte, error)
}
