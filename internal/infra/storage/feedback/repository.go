package feedback

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/FDS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с отзывами гостей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает новый отзыв
func (r *Repository) Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("feedbacks").
		Columns("name", "rating", "message").
		Values(fb.Name, fb.Rating, fb.Message).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&fb.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	fb.CreatedAt = createdAt.Time

	return fb, nil
}

// List возвращает последние отзывы, новые первыми
func (r *Repository) List(ctx context.Context, limit int) ([]*domain.Feedback, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "rating", "message", "created_at").
		From("feedbacks").
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

	feedbacks := make([]*domain.Feedback, 0)
	for rows.Next() {
		var fb domain.Feedback
		var createdAt sql.NullTime
		if err := rows.Scan(&fb.ID, &fb.Name, &fb.Rating, &fb.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		fb.CreatedAt = createdAt.Time
		feedbacks = append(feedbacks, &fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return feedbacks, nil
}
