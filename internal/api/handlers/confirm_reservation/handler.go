package confirm_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
	confirmReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/confirm_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgNotFound             = "бронь не найдена"
	msgTableNotFound        = "стол брони не найден"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
)

type Handler struct {
	useCase ConfirmReservationUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathID(r, "reservationId")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/confirm - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/{id}/confirm - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmReservation.Request{
		ReservationID: reservationID,
		UserID:        userID,
		IsStaff:       middleware.IsStaff(r.Context()),
	})
	if err != nil {
		switch {
		case availability.IsRejection(err):
			h.logger.Warn("POST /reservations/{id}/confirm - Rejected: reservation_id=%d, reason=%s",
				reservationID, availability.ReasonCode(err))
			handlers.RespondRejection(w, err)

		case errors.Is(err, confirmReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/confirm - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmReservation.ErrTableNotFound):
			h.logger.Warn("POST /reservations/{id}/confirm - Table not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, confirmReservation.ErrAccessDenied):
			h.logger.Warn("POST /reservations/{id}/confirm - Access denied: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /reservations/{id}/confirm - Failed to confirm reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/confirm - Reservation confirmed: reservation_id=%d, user_id=%d", reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservation(result))
}
