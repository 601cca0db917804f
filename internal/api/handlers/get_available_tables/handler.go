package get_available_tables

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	getAvailableTables "github.com/m04kA/SMC-RestaurantService/internal/usecase/get_available_tables"
)

const (
	msgMissingDate  = "дата обязательна"
	msgInvalidQuery = "некорректные параметры: date YYYY-MM-DD, time HH:MM, guests > 0"
)

type Handler struct {
	useCase GetAvailableTablesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/available
// Query params: date (required, YYYY-MM-DD), time (HH:MM), guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tables/available - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("time"), query.Get("guests"))
	if err != nil {
		h.logger.Warn("GET /tables/available - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, getAvailableTables.ErrInvalidInput) {
			h.logger.Warn("GET /tables/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /tables/available - Failed to get available tables: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tables/available - Tables retrieved successfully: date=%s, tables_count=%d",
		dateStr, len(result.Tables))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
