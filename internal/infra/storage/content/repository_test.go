package content

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewRepository(dbmetrics.Wrap(sqlDB, nil)), mock
}

func TestRepository_CreateRestaurant(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO restaurants (name,slogan,description,background,mission_and_values,image_description,image_service,image_background,image_mission_and_values) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id, name")).
		WithArgs("Пристань", nil, "Рыбный ресторан", nil, nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(restaurantColumns).
			AddRow(1, "Пристань", nil, "Рыбный ресторан", nil, nil, nil, nil, nil, nil, now))

	restaurant, err := repo.CreateRestaurant(context.Background(), &domain.Restaurant{
		Name:        ptr.Ptr("Пристань"),
		Description: ptr.Ptr("Рыбный ресторан"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), restaurant.ID)
	assert.Equal(t, "Пристань", *restaurant.Name)
	assert.Nil(t, restaurant.Slogan)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetService_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, detail, image, created_at FROM restaurant_services WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetService(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_ListMenu_VeganFilter(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM menu_items WHERE is_vegan = $1 ORDER BY id ASC")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(menuColumns).
			AddRow(1, "Салат", nil, 450, "menu/salad.png", 250, 180, true, now))

	items, err := repo.ListMenu(context.Background(), ptr.Ptr(true))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 450, *items[0].Price)
	assert.Nil(t, items[0].ItemDrink)
	assert.True(t, items[0].IsVegan)
}

func TestRepository_UpdateEmployee(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE employees SET first_name = $1, last_name = $2, position = $3, image = $4 WHERE id = $5 RETURNING")).
		WithArgs("Иван", "Петров", "Шеф", nil, int64(2)).
		WillReturnRows(sqlmock.NewRows(employeeColumns).AddRow(2, "Иван", "Петров", "Шеф", nil, now))

	employee, err := repo.UpdateEmployee(context.Background(), &domain.Employee{ID: 2, FirstName: "Иван", LastName: "Петров", Position: "Шеф"})
	require.NoError(t, err)
	assert.Equal(t, "Шеф", employee.Position)
}

func TestRepository_DeleteMenuItem_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM menu_items WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteMenuItem(context.Background(), 9), ErrNotFound)
}

func TestRepository_ListContacts(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM contacts ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow(1, "Ольга", "79991112233", "Есть ли парковка?", now))

	contacts, err := repo.ListContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Есть ли парковка?", *contacts[0].Message)
}
