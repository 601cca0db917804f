package content

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

var restaurantColumns = []string{
	"id",
	"name",
	"slogan",
	"description",
	"background",
	"mission_and_values",
	"image_description",
	"image_service",
	"image_background",
	"image_mission_and_values",
	"created_at",
}

// CreateRestaurant создает профиль ресторана
func (r *Repository) CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	builder := psqlbuilder.Insert("restaurants").
		Columns(restaurantColumns[1 : len(restaurantColumns)-1]...).
		Values(restaurantValues(restaurant)...).
		Suffix(returning(restaurantColumns))

	return getOne(ctx, r.db, "CreateRestaurant", builder, scanRestaurant)
}

// GetRestaurant получает профиль ресторана по ID
func (r *Repository) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	builder := psqlbuilder.Select(restaurantColumns...).
		From("restaurants").
		Where(squirrel.Eq{"id": id})

	return getOne(ctx, r.db, "GetRestaurant", builder, scanRestaurant)
}

// ListRestaurants возвращает все профили ресторана
func (r *Repository) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	builder := psqlbuilder.Select(restaurantColumns...).
		From("restaurants").
		OrderBy("id ASC")

	return list(ctx, r.db, "ListRestaurants", builder, scanRestaurant)
}

// UpdateRestaurant перезаписывает профиль ресторана
func (r *Repository) UpdateRestaurant(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	values := restaurantValues(restaurant)
	builder := psqlbuilder.Update("restaurants")
	for i, column := range restaurantColumns[1 : len(restaurantColumns)-1] {
		builder = builder.Set(column, values[i])
	}
	builder = builder.
		Where(squirrel.Eq{"id": restaurant.ID}).
		Suffix(returning(restaurantColumns))

	return getOne(ctx, r.db, "UpdateRestaurant", builder, scanRestaurant)
}

// DeleteRestaurant удаляет профиль ресторана
func (r *Repository) DeleteRestaurant(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "restaurants", "DeleteRestaurant", id)
}

func restaurantValues(restaurant *domain.Restaurant) []interface{} {
	return []interface{}{
		restaurant.Name,
		restaurant.Slogan,
		restaurant.Description,
		restaurant.Background,
		restaurant.MissionAndValues,
		restaurant.ImageDescription,
		restaurant.ImageService,
		restaurant.ImageBackground,
		restaurant.ImageMissionAndValues,
	}
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	err := row.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Slogan,
		&restaurant.Description,
		&restaurant.Background,
		&restaurant.MissionAndValues,
		&restaurant.ImageDescription,
		&restaurant.ImageService,
		&restaurant.ImageBackground,
		&restaurant.ImageMissionAndValues,
		&restaurant.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}
