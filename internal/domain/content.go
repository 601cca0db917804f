package domain

import (
	"strings"
	"time"
	"unicode"
)

// Restaurant профиль ресторана
type Restaurant struct {
	ID                    int64
	Name                  *string
	Slogan                *string
	Description           *string
	Background            *string
	MissionAndValues      *string
	ImageDescription      *string
	ImageService          *string
	ImageBackground       *string
	ImageMissionAndValues *string
	CreatedAt             time.Time
}

// RestaurantService услуга ресторана (банкеты, доставка и т.п.)
type RestaurantService struct {
	ID        int64
	Name      *string
	Detail    *string
	Image     *string
	CreatedAt time.Time
}

// Employee сотрудник ресторана
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Position  string
	Image     *string
	CreatedAt time.Time
}

// MenuItem позиция меню
type MenuItem struct {
	ID        int64
	ItemFood  *string
	ItemDrink *string
	Price     *int
	Image     string
	Size      *int // размер порции в граммах
	Kcal      *int
	IsVegan   bool
	CreatedAt time.Time
}

// Contact сообщение из формы обратной связи
type Contact struct {
	ID        int64
	Name      string
	Phone     *string
	Message   *string
	CreatedAt time.Time
}

// HomePage агрегат главной страницы
type HomePage struct {
	Restaurants []*Restaurant
	Services    []*RestaurantService
	Tables      []*Table
	Employees   []*Employee
	Menu        []*MenuItem
}

// FindBannedWord возвращает первое запрещенное слово из текста (без учета регистра)
func FindBannedWord(text string) (string, bool) {
	for _, word := range strings.Fields(text) {
		w := strings.ToLower(strings.TrimFunc(word, unicode.IsPunct))
		for _, banned := range BannedWords {
			if w == banned {
				return word, true
			}
		}
	}
	return "", false
}

// IsDigits проверяет, что строка непустая и состоит только из цифр
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// HasImageExtension проверяет расширение изображения (png, jpg, jpeg)
func HasImageExtension(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".png") || strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg")
}
