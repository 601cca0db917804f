package content

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// checkBanned проверяет тексты на запрещенные слова
func checkBanned(field string, text *string) error {
	if text == nil {
		return nil
	}
	if word, found := domain.FindBannedWord(*text); found {
		return fmt.Errorf("%w: %s contains %q", ErrBannedWord, field, word)
	}
	return nil
}

// checkImage проверяет расширение изображения, пустое значение допустимо
func checkImage(field string, image *string) error {
	if image == nil || *image == "" {
		return nil
	}
	if !domain.HasImageExtension(*image) {
		return fmt.Errorf("%w: %s must be a png or jpg image", ErrInvalidInput, field)
	}
	return nil
}

func validateRestaurant(r *domain.Restaurant) error {
	for field, text := range map[string]*string{"name": r.Name, "slogan": r.Slogan, "description": r.Description} {
		if err := checkBanned(field, text); err != nil {
			return err
		}
	}
	for field, image := range map[string]*string{
		"imageDescription":      r.ImageDescription,
		"imageService":          r.ImageService,
		"imageBackground":       r.ImageBackground,
		"imageMissionAndValues": r.ImageMissionAndValues,
	} {
		if err := checkImage(field, image); err != nil {
			return err
		}
	}
	return nil
}

func validateService(s *domain.RestaurantService) error {
	if err := checkBanned("detail", s.Detail); err != nil {
		return err
	}
	return checkImage("image", s.Image)
}

func validateEmployee(e *domain.Employee) error {
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
	e.Position = strings.TrimSpace(e.Position)
	if e.FirstName == "" || e.LastName == "" || e.Position == "" {
		return fmt.Errorf("%w: first name, last name and position are required", ErrInvalidInput)
	}
	return checkImage("image", e.Image)
}

func validateMenuItem(m *domain.MenuItem) error {
	if m.ItemFood == nil && m.ItemDrink == nil {
		return fmt.Errorf("%w: food or drink name is required", ErrInvalidInput)
	}
	if m.Image == "" {
		return fmt.Errorf("%w: image is required", ErrInvalidInput)
	}
	for field, v := range map[string]*int{"price": m.Price, "size": m.Size, "kcal": m.Kcal} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, field)
		}
	}
	return checkImage("image", &m.Image)
}

func validateContact(c *domain.Contact) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if c.Phone != nil && *c.Phone != "" && (!domain.IsDigits(*c.Phone) || len(*c.Phone) > domain.MaxPhoneLength) {
		return fmt.Errorf("%w: phone must contain only digits, at most %d", ErrInvalidInput, domain.MaxPhoneLength)
	}
	return nil
}
