package content

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/cache"
	contentRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/content"
	"github.com/m04kA/SMC-RestaurantService/internal/service/content/models"
	"github.com/m04kA/SMC-RestaurantService/internal/testutil"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
)

// fakeRepo реализует только методы, которые вызывают тесты
type fakeRepo struct {
	ContentRepository

	restaurants []*domain.Restaurant
	menu        []*domain.MenuItem
	contacts    []*domain.Contact
	listCalls   int
}

func (r *fakeRepo) CreateRestaurant(_ context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	restaurant.ID = int64(len(r.restaurants) + 1)
	r.restaurants = append(r.restaurants, restaurant)
	return restaurant, nil
}

func (r *fakeRepo) GetRestaurant(_ context.Context, id int64) (*domain.Restaurant, error) {
	for _, restaurant := range r.restaurants {
		if restaurant.ID == id {
			return restaurant, nil
		}
	}
	return nil, fmt.Errorf("%w: GetRestaurant", contentRepo.ErrNotFound)
}

func (r *fakeRepo) ListRestaurants(context.Context) ([]*domain.Restaurant, error) {
	r.listCalls++
	return r.restaurants, nil
}

func (r *fakeRepo) ListServices(context.Context) ([]*domain.RestaurantService, error) {
	return nil, nil
}

func (r *fakeRepo) ListEmployees(context.Context) ([]*domain.Employee, error) {
	return []*domain.Employee{{ID: 1, FirstName: "Иван", LastName: "Петров", Position: "Шеф"}}, nil
}

func (r *fakeRepo) ListMenu(_ context.Context, vegan *bool) ([]*domain.MenuItem, error) {
	result := make([]*domain.MenuItem, 0)
	for _, item := range r.menu {
		if vegan == nil || item.IsVegan == *vegan {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *fakeRepo) CreateMenuItem(_ context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	item.ID = int64(len(r.menu) + 1)
	r.menu = append(r.menu, item)
	return item, nil
}

func (r *fakeRepo) DeleteMenuItem(_ context.Context, id int64) error {
	for i, item := range r.menu {
		if item.ID == id {
			r.menu = append(r.menu[:i], r.menu[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: DeleteMenuItem", contentRepo.ErrNotFound)
}

func (r *fakeRepo) CreateContact(_ context.Context, contact *domain.Contact) (*domain.Contact, error) {
	contact.ID = int64(len(r.contacts) + 1)
	r.contacts = append(r.contacts, contact)
	return contact, nil
}

type fakeTables struct{}

func (fakeTables) List(context.Context) ([]*domain.Table, error) {
	return []*domain.Table{{ID: 1, Number: "1", Capacity: 2, Status: domain.TableAvailable}}, nil
}

// memCache хранит значения в JSON, как Redis
type memCache struct {
	data map[string][]byte
}

func (c *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func newService(repo *fakeRepo, c Cache) *Service {
	return NewService(repo, fakeTables{}, c, time.Minute, &testutil.Logger{})
}

func TestService_HomeIsCachedUntilWrite(t *testing.T) {
	repo := &fakeRepo{}
	c := &memCache{data: map[string][]byte{}}
	svc := newService(repo, c)

	_, err := svc.CreateRestaurant(context.Background(), &models.RestaurantRequest{Name: ptr.Ptr("Ресторан")})
	require.NoError(t, err)

	home, err := svc.Home(context.Background())
	require.NoError(t, err)
	require.NotNil(t, home.Restaurant)
	assert.Equal(t, "Ресторан", *home.Restaurant.Name)
	assert.Len(t, home.Tables, 1)
	assert.Len(t, home.Employees, 1)
	assert.Contains(t, c.data, cache.KeyHomePage)

	_, err = svc.Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "second call served from cache")

	_, err = svc.CreateMenuItem(context.Background(), &models.MenuItemRequest{ItemFood: ptr.Ptr("Борщ"), Image: "borsch.jpg"})
	require.NoError(t, err)
	assert.NotContains(t, c.data, cache.KeyHomePage)

	home, err = svc.Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
	assert.Len(t, home.Menu, 1)
}

func TestService_HomeWithoutCache(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, nil)

	home, err := svc.Home(context.Background())
	require.NoError(t, err)
	assert.Nil(t, home.Restaurant)
	assert.NotNil(t, home.Services)

	_, err = svc.Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestService_RestaurantValidation(t *testing.T) {
	svc := newService(&fakeRepo{}, nil)

	_, err := svc.CreateRestaurant(context.Background(), &models.RestaurantRequest{
		Description: ptr.Ptr("Лучшее казино города"),
	})
	assert.ErrorIs(t, err, ErrBannedWord)

	_, err = svc.CreateRestaurant(context.Background(), &models.RestaurantRequest{
		ImageBackground: ptr.Ptr("background.gif"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetProfileAndNotFound(t *testing.T) {
	svc := newService(&fakeRepo{}, nil)

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetRestaurant(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CreateRestaurant(context.Background(), &models.RestaurantRequest{Slogan: ptr.Ptr("Вкусно")})
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Вкусно", *profile.Slogan)
}

func TestService_Menu(t *testing.T) {
	svc := newService(&fakeRepo{}, nil)

	_, err := svc.CreateMenuItem(context.Background(), &models.MenuItemRequest{Image: "x.png"})
	assert.ErrorIs(t, err, ErrInvalidInput, "food or drink required")

	_, err = svc.CreateMenuItem(context.Background(), &models.MenuItemRequest{ItemDrink: ptr.Ptr("Чай"), Image: "tea.png", Price: ptr.Ptr(-1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateMenuItem(context.Background(), &models.MenuItemRequest{ItemFood: ptr.Ptr("Салат"), Image: "salad.png", IsVegan: true})
	require.NoError(t, err)
	_, err = svc.CreateMenuItem(context.Background(), &models.MenuItemRequest{ItemFood: ptr.Ptr("Стейк"), Image: "steak.png"})
	require.NoError(t, err)

	vegan, err := svc.ListMenu(context.Background(), ptr.Ptr(true))
	require.NoError(t, err)
	require.Len(t, vegan, 1)
	assert.Equal(t, "Салат", *vegan[0].ItemFood)

	require.NoError(t, svc.DeleteMenuItem(context.Background(), 1))
	assert.ErrorIs(t, svc.DeleteMenuItem(context.Background(), 1), ErrNotFound)
}

func TestService_CreateContact(t *testing.T) {
	svc := newService(&fakeRepo{}, nil)

	created, err := svc.CreateContact(context.Background(), &models.ContactRequest{Name: " Олег ", Phone: ptr.Ptr("79991234567")})
	require.NoError(t, err)
	assert.Equal(t, "Олег", created.Name)

	_, err = svc.CreateContact(context.Background(), &models.ContactRequest{Name: "Олег", Phone: ptr.Ptr("+7 999")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
