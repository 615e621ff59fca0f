package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/FDS-ReservationService/internal/api/handlers"
	checkAvailability "github.com/m04kA/FDS-ReservationService/internal/usecase/check_availability"
)

const (
	msgMissingParams = "Data e ora sono obbligatorie."
	msgInvalidDate   = "Formato data non valido."
	msgInvalidTime   = "Formato ora non valido. Usa il formato HH:MM."
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// availabilityInfo сводка слота
type availabilityInfo struct {
	Date        string `json:"data"`
	Time        string `json:"ora"`
	TotalGuests int    `json:"totalePrenotazioni"`
}

// availabilityResponse свободные места по столам
type availabilityResponse struct {
	Success bool             `json:"success"`
	Data    map[string]int   `json:"data"`
	Info    availabilityInfo `json:"info"`
}

// Handle GET /api/v1/tables?data=YYYY-MM-DD&ora=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		Date: query.Get("data"),
		Time: query.Get("ora"),
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrMissingParams):
			handlers.RespondError(w, http.StatusBadRequest, "MissingField", msgMissingParams)
		case errors.Is(err, checkAvailability.ErrInvalidDateFormat):
			handlers.RespondError(w, http.StatusBadRequest, "InvalidDateFormat", msgInvalidDate)
		case errors.Is(err, checkAvailability.ErrInvalidTimeFormat):
			handlers.RespondError(w, http.StatusBadRequest, "InvalidTimeFormat", msgInvalidTime)
		default:
			h.logger.Error("GET /tables - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, availabilityResponse{
		Success: true,
		Data:    result.FreeSeats,
		Info: availabilityInfo{
			Date:        result.Date,
			Time:        result.Time.String(),
			TotalGuests: result.TotalGuests,
		},
	})
}
