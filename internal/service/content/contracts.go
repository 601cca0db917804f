package content

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// ContentRepository интерфейс репозитория контента
type ContentRepository interface {
	CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int64) error

	CreateService(ctx context.Context, service *domain.RestaurantService) (*domain.RestaurantService, error)
	GetService(ctx context.Context, id int64) (*domain.RestaurantService, error)
	ListServices(ctx context.Context) ([]*domain.RestaurantService, error)
	UpdateService(ctx context.Context, service *domain.RestaurantService) (*domain.RestaurantService, error)
	DeleteService(ctx context.Context, id int64) error

	CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error

	CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error)
	ListMenu(ctx context.Context, vegan *bool) ([]*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error

	CreateContact(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	ListContacts(ctx context.Context) ([]*domain.Contact, error)
}

// TableRepository столы для главной страницы
type TableRepository interface {
	List(ctx context.Context) ([]*domain.Table, error)
}

// Cache кэш агрегатов
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
