package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/cache"
	contentRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/content"
	"github.com/m04kA/SMC-RestaurantService/internal/service/content/models"
)

// Service сервис контента ресторана: профиль, услуги, сотрудники, меню, обращения, главная страница
type Service struct {
	repo      ContentRepository
	tableRepo TableRepository
	cache     Cache
	homeTTL   time.Duration
	logger    Logger
}

// NewService создает новый экземпляр сервиса контента.
// cache может быть cache.Noop, если Redis выключен
func NewService(repo ContentRepository, tableRepo TableRepository, c Cache, homeTTL time.Duration, logger Logger) *Service {
	if c == nil {
		c = cache.Noop{}
	}
	return &Service{
		repo:      repo,
		tableRepo: tableRepo,
		cache:     c,
		homeTTL:   homeTTL,
		logger:    logger,
	}
}

// Home собирает главную страницу. Результат кэшируется до первой записи контента
func (s *Service) Home(ctx context.Context) (*models.HomeResponse, error) {
	var cached models.HomeResponse
	found, err := s.cache.Get(ctx, cache.KeyHomePage, &cached)
	if err != nil {
		s.logger.Warn("Home: cache read failed, falling back to database: %v", err)
	}
	if found {
		return &cached, nil
	}

	page := &domain.HomePage{}
	if page.Restaurants, err = s.repo.ListRestaurants(ctx); err != nil {
		return nil, s.wrap("Home", err)
	}
	if page.Services, err = s.repo.ListServices(ctx); err != nil {
		return nil, s.wrap("Home", err)
	}
	if page.Tables, err = s.tableRepo.List(ctx); err != nil {
		return nil, s.wrap("Home", err)
	}
	if page.Employees, err = s.repo.ListEmployees(ctx); err != nil {
		return nil, s.wrap("Home", err)
	}
	if page.Menu, err = s.repo.ListMenu(ctx, nil); err != nil {
		return nil, s.wrap("Home", err)
	}

	resp := models.FromDomainHomePage(page)
	if err := s.cache.Set(ctx, cache.KeyHomePage, resp, s.homeTTL); err != nil {
		s.logger.Warn("Home: cache write failed: %v", err)
	}
	return resp, nil
}

// Restaurant

// CreateRestaurant создает профиль ресторана
func (s *Service) CreateRestaurant(ctx context.Context, req *models.RestaurantRequest) (*models.RestaurantResponse, error) {
	restaurant := req.ToDomain()
	if err := validateRestaurant(restaurant); err != nil {
		s.logger.Warn("CreateRestaurant: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.CreateRestaurant(ctx, restaurant)
	if err != nil {
		return nil, s.wrap("CreateRestaurant", err)
	}

	s.invalidate(ctx)
	s.logger.Info("CreateRestaurant: successfully created restaurant id=%d", created.ID)
	return models.FromDomainRestaurant(created), nil
}

// GetRestaurant получает профиль ресторана по ID
func (s *Service) GetRestaurant(ctx context.Context, id int64) (*models.RestaurantResponse, error) {
	restaurant, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, s.wrap("GetRestaurant", err)
	}
	return models.FromDomainRestaurant(restaurant), nil
}

// GetProfile получает основной профиль ресторана (первую запись)
func (s *Service) GetProfile(ctx context.Context) (*models.RestaurantResponse, error) {
	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, s.wrap("GetProfile", err)
	}
	if len(restaurants) == 0 {
		return nil, ErrNotFound
	}
	return models.FromDomainRestaurant(restaurants[0]), nil
}

// UpdateRestaurant перезаписывает профиль ресторана
func (s *Service) UpdateRestaurant(ctx context.Context, id int64, req *models.RestaurantRequest) (*models.RestaurantResponse, error) {
	restaurant := req.ToDomain()
	restaurant.ID = id
	if err := validateRestaurant(restaurant); err != nil {
		s.logger.Warn("UpdateRestaurant: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.repo.UpdateRestaurant(ctx, restaurant)
	if err != nil {
		return nil, s.wrap("UpdateRestaurant", err)
	}

	s.invalidate(ctx)
	return models.FromDomainRestaurant(updated), nil
}

// DeleteRestaurant удаляет профиль ресторана
func (s *Service) DeleteRestaurant(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRestaurant(ctx, id); err != nil {
		return s.wrap("DeleteRestaurant", err)
	}
	s.invalidate(ctx)
	return nil
}

// Services

// CreateService создает услугу
func (s *Service) CreateService(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	service := req.ToDomain()
	if err := validateService(service); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.CreateService(ctx, service)
	if err != nil {
		return nil, s.wrap("CreateService", err)
	}

	s.invalidate(ctx)
	return models.FromDomainService(created), nil
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	service, err := s.repo.GetService(ctx, id)
	if err != nil {
		return nil, s.wrap("GetService", err)
	}
	return models.FromDomainService(service), nil
}

// ListServices получает все услуги
func (s *Service) ListServices(ctx context.Context) ([]models.ServiceResponse, error) {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		return nil, s.wrap("ListServices", err)
	}
	resp := make([]models.ServiceResponse, 0, len(services))
	for _, item := range services {
		resp = append(resp, *models.FromDomainService(item))
	}
	return resp, nil
}

// UpdateService перезаписывает услугу
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	service := req.ToDomain()
	service.ID = id
	if err := validateService(service); err != nil {
		s.logger.Warn("UpdateService: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.repo.UpdateService(ctx, service)
	if err != nil {
		return nil, s.wrap("UpdateService", err)
	}

	s.invalidate(ctx)
	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if err := s.repo.DeleteService(ctx, id); err != nil {
		return s.wrap("DeleteService", err)
	}
	s.invalidate(ctx)
	return nil
}

// Employees

// CreateEmployee создает сотрудника
func (s *Service) CreateEmployee(ctx context.Context, req *models.EmployeeRequest) (*models.EmployeeResponse, error) {
	employee := req.ToDomain()
	if err := validateEmployee(employee); err != nil {
		s.logger.Warn("CreateEmployee: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.CreateEmployee(ctx, employee)
	if err != nil {
		return nil, s.wrap("CreateEmployee", err)
	}

	s.invalidate(ctx)
	return models.FromDomainEmployee(created), nil
}

// GetEmployee получает сотрудника по ID
func (s *Service) GetEmployee(ctx context.Context, id int64) (*models.EmployeeResponse, error) {
	employee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, s.wrap("GetEmployee", err)
	}
	return models.FromDomainEmployee(employee), nil
}

// ListEmployees получает всех сотрудников
func (s *Service) ListEmployees(ctx context.Context) ([]models.EmployeeResponse, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, s.wrap("ListEmployees", err)
	}
	resp := make([]models.EmployeeResponse, 0, len(employees))
	for _, item := range employees {
		resp = append(resp, *models.FromDomainEmployee(item))
	}
	return resp, nil
}

// UpdateEmployee перезаписывает сотрудника
func (s *Service) UpdateEmployee(ctx context.Context, id int64, req *models.EmployeeRequest) (*models.EmployeeResponse, error) {
	employee := req.ToDomain()
	employee.ID = id
	if err := validateEmployee(employee); err != nil {
		s.logger.Warn("UpdateEmployee: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.repo.UpdateEmployee(ctx, employee)
	if err != nil {
		return nil, s.wrap("UpdateEmployee", err)
	}

	s.invalidate(ctx)
	return models.FromDomainEmployee(updated), nil
}

// DeleteEmployee удаляет сотрудника
func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		return s.wrap("DeleteEmployee", err)
	}
	s.invalidate(ctx)
	return nil
}

// Menu

// CreateMenuItem создает позицию меню
func (s *Service) CreateMenuItem(ctx context.Context, req *models.MenuItemRequest) (*models.MenuItemResponse, error) {
	item := req.ToDomain()
	if err := validateMenuItem(item); err != nil {
		s.logger.Warn("CreateMenuItem: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.CreateMenuItem(ctx, item)
	if err != nil {
		return nil, s.wrap("CreateMenuItem", err)
	}

	s.invalidate(ctx)
	return models.FromDomainMenuItem(created), nil
}

// GetMenuItem получает позицию меню по ID
func (s *Service) GetMenuItem(ctx context.Context, id int64) (*models.MenuItemResponse, error) {
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, s.wrap("GetMenuItem", err)
	}
	return models.FromDomainMenuItem(item), nil
}

// ListMenu получает меню, vegan != nil фильтрует веганские позиции
func (s *Service) ListMenu(ctx context.Context, vegan *bool) ([]models.MenuItemResponse, error) {
	items, err := s.repo.ListMenu(ctx, vegan)
	if err != nil {
		return nil, s.wrap("ListMenu", err)
	}
	resp := make([]models.MenuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, *models.FromDomainMenuItem(item))
	}
	return resp, nil
}

// UpdateMenuItem перезаписывает позицию меню
func (s *Service) UpdateMenuItem(ctx context.Context, id int64, req *models.MenuItemRequest) (*models.MenuItemResponse, error) {
	item := req.ToDomain()
	item.ID = id
	if err := validateMenuItem(item); err != nil {
		s.logger.Warn("UpdateMenuItem: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.repo.UpdateMenuItem(ctx, item)
	if err != nil {
		return nil, s.wrap("UpdateMenuItem", err)
	}

	s.invalidate(ctx)
	return models.FromDomainMenuItem(updated), nil
}

// DeleteMenuItem удаляет позицию меню
func (s *Service) DeleteMenuItem(ctx context.Context, id int64) error {
	if err := s.repo.DeleteMenuItem(ctx, id); err != nil {
		return s.wrap("DeleteMenuItem", err)
	}
	s.invalidate(ctx)
	return nil
}

// Contacts

// CreateContact сохраняет сообщение из формы обратной связи
func (s *Service) CreateContact(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error) {
	contact := req.ToDomain()
	if err := validateContact(contact); err != nil {
		s.logger.Warn("CreateContact: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.CreateContact(ctx, contact)
	if err != nil {
		return nil, s.wrap("CreateContact", err)
	}

	s.logger.Info("CreateContact: received message id=%d from %s", created.ID, created.Name)
	return models.FromDomainContact(created), nil
}

// ListContacts получает все обращения
func (s *Service) ListContacts(ctx context.Context) ([]models.ContactResponse, error) {
	contacts, err := s.repo.ListContacts(ctx)
	if err != nil {
		return nil, s.wrap("ListContacts", err)
	}
	resp := make([]models.ContactResponse, 0, len(contacts))
	for _, item := range contacts {
		resp = append(resp, *models.FromDomainContact(item))
	}
	return resp, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.KeyHomePage); err != nil {
		s.logger.Warn("failed to invalidate home page cache: %v", err)
	}
}

func (s *Service) wrap(op string, err error) error {
	if errors.Is(err, contentRepo.ErrNotFound) {
		s.logger.Warn("%s: %v", op, err)
		return ErrNotFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
}
