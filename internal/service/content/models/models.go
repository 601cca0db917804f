package models

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	tableModels "github.com/m04kA/SMC-RestaurantService/internal/service/tables/models"
)

// Restaurant

// RestaurantRequest запрос на создание или перезапись профиля ресторана
type RestaurantRequest struct {
	Name                  *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Slogan                *string `json:"slogan,omitempty" validate:"omitempty,max=100"`
	Description           *string `json:"description,omitempty"`
	Background            *string `json:"background,omitempty"`
	MissionAndValues      *string `json:"missionAndValues,omitempty"`
	ImageDescription      *string `json:"imageDescription,omitempty"`
	ImageService          *string `json:"imageService,omitempty"`
	ImageBackground       *string `json:"imageBackground,omitempty"`
	ImageMissionAndValues *string `json:"imageMissionAndValues,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *RestaurantRequest) ToDomain() *domain.Restaurant {
	return &domain.Restaurant{
		Name:                  r.Name,
		Slogan:                r.Slogan,
		Description:           r.Description,
		Background:            r.Background,
		MissionAndValues:      r.MissionAndValues,
		ImageDescription:      r.ImageDescription,
		ImageService:          r.ImageService,
		ImageBackground:       r.ImageBackground,
		ImageMissionAndValues: r.ImageMissionAndValues,
	}
}

// RestaurantResponse ответ с профилем ресторана
type RestaurantResponse struct {
	ID                    int64     `json:"id"`
	Name                  *string   `json:"name,omitempty"`
	Slogan                *string   `json:"slogan,omitempty"`
	Description           *string   `json:"description,omitempty"`
	Background            *string   `json:"background,omitempty"`
	MissionAndValues      *string   `json:"missionAndValues,omitempty"`
	ImageDescription      *string   `json:"imageDescription,omitempty"`
	ImageService          *string   `json:"imageService,omitempty"`
	ImageBackground       *string   `json:"imageBackground,omitempty"`
	ImageMissionAndValues *string   `json:"imageMissionAndValues,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// FromDomainRestaurant конвертирует domain модель в DTO
func FromDomainRestaurant(r *domain.Restaurant) *RestaurantResponse {
	return &RestaurantResponse{
		ID:                    r.ID,
		Name:                  r.Name,
		Slogan:                r.Slogan,
		Description:           r.Description,
		Background:            r.Background,
		MissionAndValues:      r.MissionAndValues,
		ImageDescription:      r.ImageDescription,
		ImageService:          r.ImageService,
		ImageBackground:       r.ImageBackground,
		ImageMissionAndValues: r.ImageMissionAndValues,
		CreatedAt:             r.CreatedAt,
	}
}

// Services

// ServiceRequest запрос на создание или перезапись услуги
type ServiceRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Detail *string `json:"detail,omitempty"`
	Image  *string `json:"image,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *ServiceRequest) ToDomain() *domain.RestaurantService {
	return &domain.RestaurantService{Name: r.Name, Detail: r.Detail, Image: r.Image}
}

// ServiceResponse ответ с услугой
type ServiceResponse struct {
	ID        int64     `json:"id"`
	Name      *string   `json:"name,omitempty"`
	Detail    *string   `json:"detail,omitempty"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.RestaurantService) *ServiceResponse {
	return &ServiceResponse{ID: s.ID, Name: s.Name, Detail: s.Detail, Image: s.Image, CreatedAt: s.CreatedAt}
}

// Employees

// EmployeeRequest запрос на создание или перезапись сотрудника
type EmployeeRequest struct {
	FirstName string  `json:"firstName" validate:"required,max=50"`
	LastName  string  `json:"lastName" validate:"required,max=50"`
	Position  string  `json:"position" validate:"required,max=50"`
	Image     *string `json:"image,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *EmployeeRequest) ToDomain() *domain.Employee {
	return &domain.Employee{FirstName: r.FirstName, LastName: r.LastName, Position: r.Position, Image: r.Image}
}

// EmployeeResponse ответ с сотрудником
type EmployeeResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Position  string    `json:"position"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainEmployee конвертирует domain модель в DTO
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Position:  e.Position,
		Image:     e.Image,
		CreatedAt: e.CreatedAt,
	}
}

// Menu

// MenuItemRequest запрос на создание или перезапись позиции меню
type MenuItemRequest struct {
	ItemFood  *string `json:"itemFood,omitempty" validate:"omitempty,max=100"`
	ItemDrink *string `json:"itemDrink,omitempty" validate:"omitempty,max=100"`
	Price     *int    `json:"price,omitempty" validate:"omitempty,min=0"`
	Image     string  `json:"image" validate:"required"`
	Size      *int    `json:"size,omitempty" validate:"omitempty,min=0"`
	Kcal      *int    `json:"kcal,omitempty" validate:"omitempty,min=0"`
	IsVegan   bool    `json:"isVegan"`
}

// ToDomain конвертирует запрос в domain модель
func (r *MenuItemRequest) ToDomain() *domain.MenuItem {
	return &domain.MenuItem{
		ItemFood:  r.ItemFood,
		ItemDrink: r.ItemDrink,
		Price:     r.Price,
		Image:     r.Image,
		Size:      r.Size,
		Kcal:      r.Kcal,
		IsVegan:   r.IsVegan,
	}
}

// MenuItemResponse ответ с позицией меню
type MenuItemResponse struct {
	ID        int64     `json:"id"`
	ItemFood  *string   `json:"itemFood,omitempty"`
	ItemDrink *string   `json:"itemDrink,omitempty"`
	Price     *int      `json:"price,omitempty"`
	Image     string    `json:"image"`
	Size      *int      `json:"size,omitempty"`
	Kcal      *int      `json:"kcal,omitempty"`
	IsVegan   bool      `json:"isVegan"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainMenuItem конвертирует domain модель в DTO
func FromDomainMenuItem(m *domain.MenuItem) *MenuItemResponse {
	return &MenuItemResponse{
		ID:        m.ID,
		ItemFood:  m.ItemFood,
		ItemDrink: m.ItemDrink,
		Price:     m.Price,
		Image:     m.Image,
		Size:      m.Size,
		Kcal:      m.Kcal,
		IsVegan:   m.IsVegan,
		CreatedAt: m.CreatedAt,
	}
}

// Contacts

// ContactRequest сообщение из формы обратной связи
type ContactRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,numeric,max=15"`
	Message *string `json:"message,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *ContactRequest) ToDomain() *domain.Contact {
	return &domain.Contact{Name: r.Name, Phone: r.Phone, Message: r.Message}
}

// ContactResponse ответ с обращением
type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Message   *string   `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainContact конвертирует domain модель в DTO
func FromDomainContact(c *domain.Contact) *ContactResponse {
	return &ContactResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, Message: c.Message, CreatedAt: c.CreatedAt}
}

// Home

// HomeResponse агрегат главной страницы. Хранится в кэше как есть
type HomeResponse struct {
	Restaurant *RestaurantResponse         `json:"restaurant,omitempty"`
	Services   []ServiceResponse           `json:"services"`
	Tables     []tableModels.TableResponse `json:"tables"`
	Employees  []EmployeeResponse          `json:"employees"`
	Menu       []MenuItemResponse          `json:"menu"`
}

// FromDomainHomePage конвертирует агрегат в DTO. Профилем считается первая запись
func FromDomainHomePage(h *domain.HomePage) *HomeResponse {
	resp := &HomeResponse{
		Services:  make([]ServiceResponse, 0, len(h.Services)),
		Tables:    tableModels.FromDomainTableList(h.Tables).Tables,
		Employees: make([]EmployeeResponse, 0, len(h.Employees)),
		Menu:      make([]MenuItemResponse, 0, len(h.Menu)),
	}
	if len(h.Restaurants) > 0 {
		resp.Restaurant = FromDomainRestaurant(h.Restaurants[0])
	}
	for _, s := range h.Services {
		resp.Services = append(resp.Services, *FromDomainService(s))
	}
	for _, e := range h.Employees {
		resp.Employees = append(resp.Employees, *FromDomainEmployee(e))
	}
	for _, m := range h.Menu {
		resp.Menu = append(resp.Menu, *FromDomainMenuItem(m))
	}
	return resp
}
