package get_available_tables

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// Request модель запроса на получение свободных столов
type Request struct {
	Date   time.Time         // Дата (без времени)
	Time   *types.TimeString // Время начала; nil - подобрать свободные времена за день
	Guests int
}

// Hours часы работы и шаг сетки времен начала
type Hours struct {
	Open  types.TimeString
	Close types.TimeString // последнее время, к которому слот должен закончиться
	Step  time.Duration
}

// DefaultHours часы работы по умолчанию
func DefaultHours() Hours {
	return Hours{Open: "10:00", Close: "23:00", Step: 30 * time.Minute}
}

// Response модель ответа
type Response struct {
	Date   time.Time
	Time   *types.TimeString
	Guests int
	Tables []TableAvailability
}

// TableAvailability стол с результатом проверки
type TableAvailability struct {
	domain.AvailableTable
	FreeTimes []types.TimeString // заполняется, если время не задано
}
