package domain

// Лимиты полей бронирования
const (
	MinNameLength    = 2
	MaxNameLength    = 100
	MaxPhoneLength   = 20
	MaxNotesLength   = 500
	MaxContactLength = 100

	MinFeedbackMessageLength = 3
	MaxFeedbackMessageLength = 1000
	MinFeedbackRating        = 0
	MaxFeedbackRating        = 5

	MinPartySize = 1
	MaxPartySize = 20
)

// PartySizeOverflowToken литерал "7+" из формы бронирования
// Нормализуется ровно в 7 гостей и в валидации, и в расчете занятости
const PartySizeOverflowToken = "7+"

// PartySizeOverflowValue значение, в которое раскрывается "7+"
const PartySizeOverflowValue = 7

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// StandardTableSeats вместимость стандартного стола
const StandardTableSeats = 10

// Планировка зала: столы 1, 2 и 41-48 зарезервированы под организацию
// и через этот сервис не бронируются; остальные — стандартные на 10 мест.
// Стола 19 в зале нет.
var (
	DefaultReservedTables = []string{"1", "2", "41", "42", "43", "44", "45", "46", "47", "48"}

	DefaultStandardTables = []string{
		"3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "14", "15",
		"16", "17", "18", "20", "21", "22", "23", "24", "25", "26", "27", "28",
		"29", "30", "31", "32", "33", "34", "35", "36", "37", "38", "39", "40",
	}
)

// Лимиты листинга
const (
	DefaultReservationsLimit = 100
	MaxReservationsLimit     = 500
	DefaultFeedbackLimit     = 10
	MaxFeedbackLimit         = 50
	RemindersLimit           = 20
)

// AnonymousName имя по умолчанию для отзыва без имени
const AnonymousName = "Anonimo"
