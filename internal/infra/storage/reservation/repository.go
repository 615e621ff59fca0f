package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/FDS-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/FDS-ReservationService/pkg/types"
)

// Repository репозиторий для работы с бронями столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает новую бронь
// Если в контексте передана активная транзакция, использует её —
// контроллер допуска вызывает Create в той же транзакции, что и чтение
// занятости, чтобы проверка и запись были одним атомарным блоком.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"name",
			"phone",
			"reservation_date",
			"reservation_time",
			"guests",
			"table_id",
			"notes",
		).
		Values(
			res.Name,
			res.Phone,
			res.Date,
			res.Time,
			res.Guests,
			res.TableID,
			res.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// SumGuests возвращает сумму гостей по всем броням на (дата, время, стол)
// Возвращает 0, если броней нет.
//
// Внутри транзакции строки слота блокируются (FOR UPDATE): два экземпляра
// сервиса, разделяющие одну БД, не прочитают одну и ту же занятость
// одновременно. FOR UPDATE нельзя сочетать с агрегатом напрямую,
// поэтому суммируется заблокированный подзапрос.
func (r *Repository) SumGuests(ctx context.Context, date string, t types.TimeString, tableID string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inner := psqlbuilder.Select("guests").
		From("reservations").
		Where(squirrel.Eq{
			"reservation_date": date,
			"reservation_time": t,
			"table_id":         tableID,
		})

	if dbmetrics.IsInTransaction(ctx) {
		inner = inner.Suffix("FOR UPDATE")
	}

	query, args, err := psqlbuilder.Select("COALESCE(SUM(guests), 0)").
		FromSelect(inner, "slot").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumGuests - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumGuests - scan total: %v", ErrExecQuery, err)
	}

	return total, nil
}

// SumGuestsByTable возвращает суммы гостей по каждому столу на (дата, время)
// Столы без броней в результате отсутствуют — вызывающая сторона
// трактует отсутствие как 0.
func (r *Repository) SumGuestsByTable(ctx context.Context, date string, t types.TimeString) (map[string]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("table_id", "SUM(guests) AS total_guests").
		From("reservations").
		Where(squirrel.Eq{
			"reservation_date": date,
			"reservation_time": t,
		}).
		GroupBy("table_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SumGuestsByTable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SumGuestsByTable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	occupied := make(map[string]int)
	for rows.Next() {
		var tableID string
		var total int
		if err := rows.Scan(&tableID, &total); err != nil {
			return nil, fmt.Errorf("%w: SumGuestsByTable - scan row: %v", ErrScanRow, err)
		}
		occupied[tableID] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SumGuestsByTable - rows error: %v", ErrScanRow, err)
	}

	return occupied, nil
}

// ListWithFilter возвращает брони по структурированному фильтру
// Каждый опциональный предикат добавляется к параметризованному запросу;
// пользовательский ввод в текст SQL не попадает.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"phone",
		"reservation_date",
		"reservation_time",
		"guests",
		"table_id",
		"notes",
		"created_at",
	).
		From("reservations")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reservation_date": *filter.Date})
	}
	if filter.Time != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reservation_time": *filter.Time})
	}
	if filter.TableID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"table_id": *filter.TableID})
	}

	selectBuilder = selectBuilder.
		OrderBy("reservation_date DESC, reservation_time DESC").
		Limit(uint64(filter.EffectiveLimit()))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// scanReservations сканирует результаты запроса в слайс броней
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.Name,
			&res.Phone,
			&res.Date,
			&res.Time,
			&res.Guests,
			&res.TableID,
			&res.Notes,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
