package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/availability"
)

var rejectionMessages = map[string]string{
	availability.ReasonPastDateTime:     "дата и время брони уже прошли",
	availability.ReasonSlotOverlap:      "стол уже забронирован на это время",
	availability.ReasonBufferViolation:  "между бронями стола должен быть перерыв не менее часа",
	availability.ReasonCapacityExceeded: "количество гостей превышает вместимость стола",
	availability.ReasonInvalidStatus:    "недопустимый статус брони",
}

// RejectionStatus HTTP-статус для кода отказа
func RejectionStatus(reason string) int {
	switch reason {
	case availability.ReasonSlotOverlap, availability.ReasonBufferViolation:
		return http.StatusConflict
	case availability.ReasonNotFound:
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}

// RespondRejection пишет ответ для отказа проверки брони.
// Возвращает false, если err не является отказом
func RespondRejection(w http.ResponseWriter, err error) bool {
	reason := availability.ReasonCode(err)
	if reason == "" {
		return false
	}
	RespondCode(w, RejectionStatus(reason), reason, rejectionMessages[reason])
	return true
}
