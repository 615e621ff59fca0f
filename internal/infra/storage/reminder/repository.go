package reminder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/FDS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для заявок на напоминание
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория напоминаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает новую заявку на напоминание
func (r *Repository) Create(ctx context.Context, req *domain.ReminderRequest) (*domain.ReminderRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reminder_requests").
		Columns("contact").
		Values(req.Contact).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time

	return req, nil
}

// List возвращает последние заявки, новые первыми
func (r *Repository) List(ctx context.Context, limit int) ([]*domain.ReminderRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "contact", "created_at").
		From("reminder_requests").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reminders := make([]*domain.ReminderRequest, 0)
	for rows.Next() {
		var req domain.ReminderRequest
		var createdAt sql.NullTime
		if err := rows.Scan(&req.ID, &req.Contact, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		req.CreatedAt = createdAt.Time
		reminders = append(reminders, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reminders, nil
}
