package change_reservation_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
	cancelReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/cancel_reservation"
	confirmReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/confirm_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "бронь не найдена"
	msgTableNotFound        = "стол брони не найден"
	msgMissingUserID        = "отсутствует ID пользователя"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/status
// Тело: {"status": "confirmed" | "canceled"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathID(r, "reservationId")
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ChangeStatusRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChangeStatus(r.Context(), reservationID, &models.ChangeStatusRequest{
		UserID: userID,
		Status: req.Status,
	})
	if err != nil {
		switch {
		case availability.IsRejection(err):
			h.logger.Warn("PATCH /reservations/{id}/status - Rejected: reservation_id=%d, status=%s, reason=%s",
				reservationID, req.Status, availability.ReasonCode(err))
			handlers.RespondRejection(w, err)

		case errors.Is(err, confirmReservation.ErrReservationNotFound),
			errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmReservation.ErrTableNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Table not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgTableNotFound)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed to change status: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Status changed: reservation_id=%d, status=%s", reservationID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
