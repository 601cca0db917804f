package availability

import (
	"errors"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

var (
	// ErrPastDateTime возвращается, когда дата и время брони уже прошли
	ErrPastDateTime = errors.New("availability: reservation date and time are in the past")

	// ErrSlotOverlap возвращается, когда слот пересекается с активной бронью того же стола
	ErrSlotOverlap = errors.New("availability: table is already reserved for this time")

	// ErrBufferViolation возвращается, когда между бронями одного стола меньше буфера
	ErrBufferViolation = errors.New("availability: reservation is too close to another reservation of this table")

	// ErrCapacityExceeded возвращается, когда гостей больше, чем вмещает стол
	ErrCapacityExceeded = errors.New("availability: guests exceed table capacity")
)

// Коды причин отказа, которые видит пользователь
const (
	ReasonPastDateTime     = "PAST_DATETIME"
	ReasonSlotOverlap      = "SLOT_OVERLAP"
	ReasonBufferViolation  = "BUFFER_VIOLATION"
	ReasonCapacityExceeded = "CAPACITY_EXCEEDED"
	ReasonInvalidStatus    = "INVALID_STATUS"
	ReasonNotFound         = "NOT_FOUND"
)

// ReasonCode возвращает код причины отказа для ошибки проверки или пустую строку
func ReasonCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPastDateTime):
		return ReasonPastDateTime
	case errors.Is(err, ErrSlotOverlap):
		return ReasonSlotOverlap
	case errors.Is(err, ErrBufferViolation):
		return ReasonBufferViolation
	case errors.Is(err, ErrCapacityExceeded):
		return ReasonCapacityExceeded
	case errors.Is(err, domain.ErrInvalidStatus):
		return ReasonInvalidStatus
	default:
		return ""
	}
}

// IsRejection возвращает true для ошибок бизнес-проверки (не внутренних сбоев)
func IsRejection(err error) bool {
	return ReasonCode(err) != ""
}
