package get_catalog

import (
	"net/http"

	"github.com/m04kA/FDS-ReservationService/internal/api/handlers"
	"github.com/m04kA/FDS-ReservationService/internal/domain"
)

type Handler struct {
	catalog *domain.Catalog
}

func NewHandler(catalog *domain.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// catalogConfiguration статичная планировка зала
type catalogConfiguration struct {
	ReservedTableIDs []string `json:"tavoli_riservati"`
	StandardTableIDs []string `json:"tavoli_standard"`
	StandardCapacity int      `json:"posti_per_tavolo_standard"`
	TotalTableCount  int      `json:"totale_tavoli"`
}

// catalogResponse ответ с конфигурацией столов
type catalogResponse struct {
	Success       bool                 `json:"success"`
	Configuration catalogConfiguration `json:"configurazione"`
}

// Handle GET /api/v1/tables/info
// Каталог неизменяем, ответ целиком производен от конфигурации старта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, catalogResponse{
		Success: true,
		Configuration: catalogConfiguration{
			ReservedTableIDs: h.catalog.ReservedIDs(),
			StandardTableIDs: h.catalog.StandardIDs(),
			StandardCapacity: h.catalog.StandardCapacity(),
			TotalTableCount:  h.catalog.Len(),
		},
	})
}
