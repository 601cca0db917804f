package tables

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	tablesService "github.com/m04kA/SMC-RestaurantService/internal/service/tables"
	"github.com/m04kA/SMC-RestaurantService/internal/service/tables/models"
)

const (
	msgInvalidTableID     = "некорректный ID стола"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "номер стола 1..10 символов, вместимость 1..50"
	msgNotFound           = "стол не найден"
	msgNumberTaken        = "стол с таким номером уже существует"
)

// Handler CRUD столов: чтение публичное, запись только для сотрудников
type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/tables
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /tables - Failed to list tables: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/tables/{tableId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	tableID, err := handlers.PathID(r, "tableId")
	if err != nil {
		h.logger.Warn("GET /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	result, err := h.service.GetByID(r.Context(), tableID)
	if err != nil {
		h.respondError(w, "GET /tables/{id}", tableID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/tables
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTableRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /tables", 0, err)
		return
	}

	h.logger.Info("POST /tables - Table created successfully: table_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/tables/{tableId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	tableID, err := handlers.PathID(r, "tableId")
	if err != nil {
		h.logger.Warn("PUT /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	var req models.UpdateTableRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /tables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), tableID, &req)
	if err != nil {
		h.respondError(w, "PUT /tables/{id}", tableID, err)
		return
	}

	h.logger.Info("PUT /tables/{id} - Table updated successfully: table_id=%d", tableID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/tables/{tableId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tableID, err := handlers.PathID(r, "tableId")
	if err != nil {
		h.logger.Warn("DELETE /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	if err := h.service.Delete(r.Context(), tableID); err != nil {
		h.respondError(w, "DELETE /tables/{id}", tableID, err)
		return
	}

	h.logger.Info("DELETE /tables/{id} - Table deleted successfully: table_id=%d", tableID)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, tableID int64, err error) {
	switch {
	case errors.Is(err, tablesService.ErrTableNotFound):
		h.logger.Warn("%s - Table not found: table_id=%d", route, tableID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, tablesService.ErrTableNumberTaken):
		h.logger.Warn("%s - Table number taken: %v", route, err)
		handlers.RespondConflict(w, msgNumberTaken)

	case errors.Is(err, tablesService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed: table_id=%d, error=%v", route, tableID, err)
		handlers.RespondInternalError(w)
	}
}
