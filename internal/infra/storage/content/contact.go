package content

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

var contactColumns = []string{"id", "name", "phone", "message", "created_at"}

// CreateContact сохраняет обращение из формы обратной связи
func (r *Repository) CreateContact(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	builder := psqlbuilder.Insert("contacts").
		Columns("name", "phone", "message").
		Values(contact.Name, contact.Phone, contact.Message).
		Suffix(returning(contactColumns))

	return getOne(ctx, r.db, "CreateContact", builder, scanContact)
}

// ListContacts возвращает обращения, новые первыми
func (r *Repository) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	builder := psqlbuilder.Select(contactColumns...).
		From("contacts").
		OrderBy("created_at DESC")

	return list(ctx, r.db, "ListContacts", builder, scanContact)
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var contact domain.Contact
	if err := row.Scan(&contact.ID, &contact.Name, &contact.Phone, &contact.Message, &contact.CreatedAt); err != nil {
		return nil, err
	}
	return &contact, nil
}
