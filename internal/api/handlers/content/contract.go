package content

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/content/models"
)

type ContentService interface {
	Home(ctx context.Context) (*models.HomeResponse, error)

	CreateRestaurant(ctx context.Context, req *models.RestaurantRequest) (*models.RestaurantResponse, error)
	GetRestaurant(ctx context.Context, id int64) (*models.RestaurantResponse, error)
	GetProfile(ctx context.Context) (*models.RestaurantResponse, error)
	UpdateRestaurant(ctx context.Context, id int64, req *models.RestaurantRequest) (*models.RestaurantResponse, error)
	DeleteRestaurant(ctx context.Context, id int64) error

	CreateService(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error)
	GetService(ctx context.Context, id int64) (*models.ServiceResponse, error)
	ListServices(ctx context.Context) ([]models.ServiceResponse, error)
	UpdateService(ctx context.Context, id int64, req *models.ServiceRequest) (*models.ServiceResponse, error)
	DeleteService(ctx context.Context, id int64) error

	CreateEmployee(ctx context.Context, req *models.EmployeeRequest) (*models.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id int64) (*models.EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]models.EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id int64, req *models.EmployeeRequest) (*models.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id int64) error

	CreateMenuItem(ctx context.Context, req *models.MenuItemRequest) (*models.MenuItemResponse, error)
	GetMenuItem(ctx context.Context, id int64) (*models.MenuItemResponse, error)
	ListMenu(ctx context.Context, vegan *bool) ([]models.MenuItemResponse, error)
	UpdateMenuItem(ctx context.Context, id int64, req *models.MenuItemRequest) (*models.MenuItemResponse, error)
	DeleteMenuItem(ctx context.Context, id int64) error

	CreateContact(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error)
	ListContacts(ctx context.Context) ([]models.ContactResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
