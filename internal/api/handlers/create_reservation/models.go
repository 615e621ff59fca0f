package create_reservation

import (
	"encoding/json"
	"time"

	createReservation "github.com/m04kA/FDS-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
// Ospiti приходит либо числом, либо строкой ("7+"), поэтому json.Number не годится
type CreateReservationRequest struct {
	Name   string          `json:"nome"`
	Phone  string          `json:"telefono"`
	Date   string          `json:"data"`
	Time   string          `json:"ora"`
	Guests json.RawMessage `json:"ospiti"`
	Table  string          `json:"tavolo"`
	Notes  string          `json:"note,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	Phone     string `json:"telefono"`
	Date      string `json:"data"`
	Time      string `json:"ora"`
	Guests    int    `json:"ospiti"`
	Table     string `json:"tavolo"`
	Notes     string `json:"note,omitempty"`
	CreatedAt string `json:"timestamp"`
}

// CreateReservationResponse обертка успешного ответа
type CreateReservationResponse struct {
	Success     bool                `json:"success"`
	Reservation ReservationResponse `json:"prenotazione"`
	Message     string              `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		Name:   r.Name,
		Phone:  r.Phone,
		Date:   r.Date,
		Time:   r.Time,
		Guests: rawToString(r.Guests),
		Table:  r.Table,
		Notes:  r.Notes,
	}
}

// rawToString приводит JSON значение ospiti к строке:
// число 6 → "6", строка "7+" → "7+"
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String()
	}
	return string(raw)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		Success: true,
		Reservation: ReservationResponse{
			ID:        resp.ID,
			Name:      resp.Name,
			Phone:     resp.Phone,
			Date:      resp.Date,
			Time:      resp.Time.String(),
			Guests:    resp.Guests,
			Table:     resp.Table,
			Notes:     resp.Notes,
			CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		},
		Message: "Prenotazione effettuata con successo!",
	}
}
