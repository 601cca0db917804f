package content

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

var menuColumns = []string{"id", "item_food", "item_drink", "price", "image", "size", "kcal", "is_vegan", "created_at"}

// CreateMenuItem создает позицию меню
func (r *Repository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	builder := psqlbuilder.Insert("menu_items").
		Columns("item_food", "item_drink", "price", "image", "size", "kcal", "is_vegan").
		Values(item.ItemFood, item.ItemDrink, item.Price, item.Image, item.Size, item.Kcal, item.IsVegan).
		Suffix(returning(menuColumns))

	return getOne(ctx, r.db, "CreateMenuItem", builder, scanMenuItem)
}

// GetMenuItem получает позицию меню по ID
func (r *Repository) GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	builder := psqlbuilder.Select(menuColumns...).
		From("menu_items").
		Where(squirrel.Eq{"id": id})

	return getOne(ctx, r.db, "GetMenuItem", builder, scanMenuItem)
}

// ListMenu возвращает меню. vegan != nil фильтрует по признаку веганского блюда
func (r *Repository) ListMenu(ctx context.Context, vegan *bool) ([]*domain.MenuItem, error) {
	builder := psqlbuilder.Select(menuColumns...).
		From("menu_items").
		OrderBy("id ASC")
	if vegan != nil {
		builder = builder.Where(squirrel.Eq{"is_vegan": *vegan})
	}

	return list(ctx, r.db, "ListMenu", builder, scanMenuItem)
}

// UpdateMenuItem перезаписывает позицию меню
func (r *Repository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	builder := psqlbuilder.Update("menu_items").
		Set("item_food", item.ItemFood).
		Set("item_drink", item.ItemDrink).
		Set("price", item.Price).
		Set("image", item.Image).
		Set("size", item.Size).
		Set("kcal", item.Kcal).
		Set("is_vegan", item.IsVegan).
		Where(squirrel.Eq{"id": item.ID}).
		Suffix(returning(menuColumns))

	return getOne(ctx, r.db, "UpdateMenuItem", builder, scanMenuItem)
}

// DeleteMenuItem удаляет позицию меню
func (r *Repository) DeleteMenuItem(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "menu_items", "DeleteMenuItem", id)
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(
		&item.ID,
		&item.ItemFood,
		&item.ItemDrink,
		&item.Price,
		&item.Image,
		&item.Size,
		&item.Kcal,
		&item.IsVegan,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
