package get_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/FDS-ReservationService/internal/api/handlers"
	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/internal/service/reservations"
)

const msgInvalidFilter = "Parametri di filtro non validi."

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// reservationItem элемент списка броней
type reservationItem struct {
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

// listResponse ответ листинга броней
type listResponse struct {
	Success      bool              `json:"success"`
	Count        int               `json:"count"`
	Reservations []reservationItem `json:"prenotazioni"`
}

// Handle GET /api/v1/reservations?data=&ora=&tavolo=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &reservations.ListRequest{
		Date:  query.Get("data"),
		Time:  query.Get("ora"),
		Table: query.Get("tavolo"),
	}

	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 0 {
			h.logger.Warn("GET /reservations - Invalid limit: %q", rawLimit)
			handlers.RespondError(w, http.StatusBadRequest, "InvalidFilter", msgInvalidFilter)
			return
		}
		req.Limit = limit
	}

	items, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidFilter) {
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondError(w, http.StatusBadRequest, "InvalidFilter", msgInvalidFilter)
			return
		}
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toListResponse(items))
}

func toListResponse(items []*domain.Reservation) listResponse {
	resp := listResponse{
		Success:      true,
		Count:        len(items),
		Reservations: make([]reservationItem, 0, len(items)),
	}
	for _, res := range items {
		resp.Reservations = append(resp.Reservations, reservationItem{
			ID:        res.ID,
			Name:      res.Name,
			Phone:     res.Phone,
			Date:      res.Date,
			Time:      res.Time.String(),
			Guests:    res.Guests,
			Table:     res.TableID,
			Notes:     res.Notes,
			CreatedAt: res.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
