package domain

import (
	"time"

	"github.com/m04kA/FDS-ReservationService/pkg/types"
)

// Reservation подтвержденная бронь стола
// После записи в хранилище не изменяется: пути обновления и удаления нет
type Reservation struct {
	ID      int64
	Name    string
	Phone   string
	Date    string // YYYY-MM-DD
	Time    types.TimeString
	Guests  int
	TableID string
	Notes   string

	CreatedAt time.Time
}

// SlotKey ключ сериализации попыток бронирования: (дата, время, стол)
func (r *Reservation) SlotKey() string {
	return SlotKey(r.Date, r.Time, r.TableID)
}

// SlotKey строит ключ критической секции для комбинации (дата, время, стол)
func SlotKey(date string, t types.TimeString, tableID string) string {
	return date + "|" + t.String() + "|" + tableID
}

// ReservationsFilter структурированный фильтр листинга броней
// Каждый предикат опционален; фильтр транслируется в параметризованный
// запрос, пользовательский ввод в SQL не конкатенируется
type ReservationsFilter struct {
	Date    *string           // Фильтр по дате (опционально)
	Time    *types.TimeString // Фильтр по времени (опционально)
	TableID *string           // Фильтр по столу (опционально)
	Limit   int               // 0 = DefaultReservationsLimit, максимум MaxReservationsLimit
}

// EffectiveLimit возвращает лимит с учетом дефолта и максимума
func (f ReservationsFilter) EffectiveLimit() int {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultReservationsLimit
	}
	if limit > MaxReservationsLimit {
		limit = MaxReservationsLimit
	}
	return limit
}
