package create_reservation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/pkg/sanitize"
	"github.com/m04kA/FDS-ReservationService/pkg/types"
)

var (
	// phoneSeparators пробелы, дефисы, скобки и слэши, которые гости вставляют в номер
	phoneSeparators = regexp.MustCompile(`[\s\-()/]`)

	// italianMobile итальянский мобильный: первая цифра 3, всего 10 цифр
	italianMobile = regexp.MustCompile(`^3\d{9}$`)
)

// validateRequest прогоняет сырой запрос через конвейер проверок и
// возвращает нормализованную бронь либо первую встреченную ошибку.
//
// Конвейер fail-fast: причины не накапливаются, гостю показывается одна
// ошибка за раз. Функция чистая относительно (req, now) — повторный вызов
// на том же входе дает тот же результат.
func validateRequest(req *Request, catalog *domain.Catalog, now time.Time) (*domain.Reservation, error) {
	// 1. Обязательные поля
	fields := map[string]string{
		"name":   strings.TrimSpace(req.Name),
		"phone":  strings.TrimSpace(req.Phone),
		"date":   strings.TrimSpace(req.Date),
		"time":   strings.TrimSpace(req.Time),
		"guests": strings.TrimSpace(req.Guests),
		"table":  strings.TrimSpace(req.Table),
	}
	for _, field := range []string{"name", "phone", "date", "time", "guests", "table"} {
		if fields[field] == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	// 2-3. Имя: санитизация, затем границы длины
	// Превышение длины — отказ, а не тихое усечение: контракт перед гостем
	// обещает валидацию
	name := sanitize.Text(fields["name"], 0)
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: longer than %d characters", ErrInvalidName, domain.MaxNameLength)
	}
	if utf8.RuneCountInString(name) < domain.MinNameLength {
		return nil, fmt.Errorf("%w: shorter than %d characters", ErrInvalidName, domain.MinNameLength)
	}

	// 4. Телефон: убираем разделители и международный префикс,
	// остаток должен быть итальянским мобильным
	rawPhone := fields["phone"]
	if utf8.RuneCountInString(rawPhone) > domain.MaxPhoneLength {
		return nil, fmt.Errorf("%w: longer than %d characters", ErrInvalidPhone, domain.MaxPhoneLength)
	}
	phone := phoneSeparators.ReplaceAllString(rawPhone, "")
	switch {
	case strings.HasPrefix(phone, "+39"):
		phone = phone[3:]
	case strings.HasPrefix(phone, "0039"):
		phone = phone[4:]
	}
	if !italianMobile.MatchString(phone) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhone, rawPhone)
	}

	// 5. Дата: календарная, не раньше сегодняшней
	date, err := time.Parse(domain.DateFormat, fields["date"])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateFormat, fields["date"])
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, fmt.Errorf("%w: %s", ErrPastDate, fields["date"])
	}

	// 6. Время: строго HH:MM
	slotTime, err := types.NewTimeStringFromString(fields["time"])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, fields["time"])
	}

	// 7. Число гостей: литерал "7+" нормализуется ровно в 7
	guests, err := parsePartySize(fields["guests"])
	if err != nil {
		return nil, err
	}

	// 8. Стол: существует и бронируем
	capacity, ok := catalog.Capacity(fields["table"])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, fields["table"])
	}
	if capacity == 0 {
		return nil, fmt.Errorf("%w: table %q", ErrNotBookable, fields["table"])
	}

	// 9. Заметки: опциональны, но если есть — санитизируются и ограничены
	notes := sanitize.Text(req.Notes, 0)
	if utf8.RuneCountInString(notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: longer than %d characters", ErrInvalidNotes, domain.MaxNotesLength)
	}

	return &domain.Reservation{
		Name:    name,
		Phone:   phone,
		Date:    date.Format(domain.DateFormat),
		Time:    slotTime,
		Guests:  guests,
		TableID: fields["table"],
		Notes:   notes,
	}, nil
}

// parsePartySize разбирает число гостей из строки формы
func parsePartySize(raw string) (int, error) {
	if raw == domain.PartySizeOverflowToken {
		return domain.PartySizeOverflowValue, nil
	}
	guests, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPartySize, raw)
	}
	if guests < domain.MinPartySize || guests > domain.MaxPartySize {
		return 0, fmt.Errorf("%w: %d is out of range [%d, %d]",
			ErrInvalidPartySize, guests, domain.MinPartySize, domain.MaxPartySize)
	}
	return guests, nil
}
