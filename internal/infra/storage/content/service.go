package content

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

var serviceColumns = []string{"id", "name", "detail", "image", "created_at"}

// CreateService создает услугу ресторана
func (r *Repository) CreateService(ctx context.Context, service *domain.RestaurantService) (*domain.RestaurantService, error) {
	builder := psqlbuilder.Insert("restaurant_services").
		Columns("name", "detail", "image").
		Values(service.Name, service.Detail, service.Image).
		Suffix(returning(serviceColumns))

	return getOne(ctx, r.db, "CreateService", builder, scanService)
}

// GetService получает услугу по ID
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.RestaurantService, error) {
	builder := psqlbuilder.Select(serviceColumns...).
		From("restaurant_services").
		Where(squirrel.Eq{"id": id})

	return getOne(ctx, r.db, "GetService", builder, scanService)
}

// ListServices возвращает все услуги
func (r *Repository) ListServices(ctx context.Context) ([]*domain.RestaurantService, error) {
	builder := psqlbuilder.Select(serviceColumns...).
		From("restaurant_services").
		OrderBy("id ASC")

	return list(ctx, r.db, "ListServices", builder, scanService)
}

// UpdateService перезаписывает услугу
func (r *Repository) UpdateService(ctx context.Context, service *domain.RestaurantService) (*domain.RestaurantService, error) {
	builder := psqlbuilder.Update("restaurant_services").
		Set("name", service.Name).
		Set("detail", service.Detail).
		Set("image", service.Image).
		Where(squirrel.Eq{"id": service.ID}).
		Suffix(returning(serviceColumns))

	return getOne(ctx, r.db, "UpdateService", builder, scanService)
}

// DeleteService удаляет услугу
func (r *Repository) DeleteService(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "restaurant_services", "DeleteService", id)
}

func scanService(row rowScanner) (*domain.RestaurantService, error) {
	var service domain.RestaurantService
	if err := row.Scan(&service.ID, &service.Name, &service.Detail, &service.Image, &service.CreatedAt); err != nil {
		return nil, err
	}
	return &service, nil
}
