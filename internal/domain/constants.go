package domain

import "time"

// Параметры бронирования по умолчанию
const (
	// SlotDuration длительность, на которую бронь занимает стол
	SlotDuration = 60 * time.Minute

	// BufferDuration минимальный промежуток между окончанием одной брони и началом следующей за тем же столом
	BufferDuration = 60 * time.Minute
)

// Ограничения бизнес-валидации
const (
	MinTableCapacity     = 1
	MaxTableCapacity     = 50
	MaxTableNumberLength = 10
	MaxNameLength        = 100
	MaxPhoneLength       = 15
	MinPasswordLength    = 8
	MaxImageSizeBytes    = 5 * 1024 * 1024
	ResetPasswordMin     = 10000000
	ResetPasswordMax     = 99999999
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BannedWords слова, запрещенные в описаниях и именах пользователей
var BannedWords = []string{
	"казино",
	"криптовалюта",
	"крипта",
	"биржа",
	"дешево",
	"бесплатно",
	"обман",
	"полиция",
	"радар",
}
