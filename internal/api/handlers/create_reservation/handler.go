package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/FDS-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/FDS-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "Corpo della richiesta non valido."
	msgMissingField       = "Compila tutti i campi obbligatori."
	msgInvalidName        = "Il nome deve contenere da 2 a 100 caratteri."
	msgInvalidPhone       = "Formato telefono non valido. Inserisci un numero italiano (es: 3331234567)."
	msgInvalidDate        = "Formato data non valido."
	msgPastDate           = "Non puoi prenotare per una data passata."
	msgInvalidTime        = "Formato ora non valido. Usa il formato HH:MM."
	msgInvalidPartySize   = "Il numero di ospiti deve essere tra 1 e 20."
	msgUnknownTable       = "Tavolo non valido."
	msgNotBookable        = "Questo tavolo non è prenotabile."
	msgInvalidNotes       = "Le note sono troppo lunghe (massimo 500 caratteri)."
	msgNoCapacity         = "Non ci sono abbastanza posti disponibili su questo tavolo."
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// capacityInfo детали отказа по вместимости для показа гостю
type capacityInfo struct {
	Requested int `json:"posti_richiesti"`
	Available int `json:"posti_disponibili"`
	Capacity  int `json:"posti_totali"`
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondError(w, http.StatusBadRequest, "MissingField", msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		h.respondUseCaseError(w, &req, err)
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, table=%s, date=%s, time=%s",
		result.ID, result.Table, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// respondUseCaseError переводит ошибку use case в HTTP ответ с кодом причины
func (h *Handler) respondUseCaseError(w http.ResponseWriter, req *CreateReservationRequest, err error) {
	var capErr *createReservation.CapacityError

	switch {
	case errors.As(err, &capErr):
		// Ожидаемый исход гонки за последние места, не ошибка сервиса
		h.logger.Info("POST /reservations - Capacity conflict: table=%s, requested=%d, available=%d",
			req.Table, capErr.Requested, capErr.Available)
		handlers.RespondErrorWithInfo(w, http.StatusConflict, "InsufficientCapacity", msgNoCapacity,
			capacityInfo{
				Requested: capErr.Requested,
				Available: capErr.Available,
				Capacity:  capErr.Capacity,
			})

	case errors.Is(err, createReservation.ErrMissingField):
		handlers.RespondError(w, http.StatusBadRequest, "MissingField", msgMissingField)

	case errors.Is(err, createReservation.ErrInvalidName):
		handlers.RespondError(w, http.StatusBadRequest, "InvalidName", msgInvalidName)

	case errors.Is(err, createReservation.ErrInvalidPhone):
		handlers.RespondError(w, http.StatusBadRequest, "InvalidPhone", msgInvalidPhone)

	case errors.Is(err, createReservation.ErrInvalidDateFormat):
		handlers.RespondError(w, http.StatusBadRequest, "InvalidDateFormat", msgInvalidDate)

	case errors.Is(err, createReservation.ErrPastDate):
		handlers.RespondError(w, http.StatusBadRequest, "PastDate", msgPastDate)

	case errors.Is(err, createReservation.ErrInvalidTimeFormat):
		handlers.RespondError(w, http.StatusBadRequest, "InvalidTimeFormat", msgInvalidTime)

	case errors.Is(err, createReservation.ErrInvalidPartySize):
		handlers.RespondError(w, http.StatusBadRequest, "InvalidPartySize", msgInvalidPartySize)

	case errors.Is(err, createReservation.ErrUnknownTable):
		handlers.RespondError(w, http.StatusBadRequest, "UnknownTable", msgUnknownTable)

	case errors.Is(err, createReservation.ErrNotBookable):
		handlers.RespondError(w, http.StatusBadRequest, "NotBookable", msgNotBookable)

	case errors.Is(err, createReservation.ErrInvalidNotes):
		handlers.RespondError(w, http.StatusBadRequest, "InvalidNotes", msgInvalidNotes)

	default:
		h.logger.Error("POST /reservations - Failed to create reservation: table=%s, error=%v", req.Table, err)
		handlers.RespondInternalError(w)
	}
}
