package content

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/service/content/models"
)

const msgInvalidVegan = "параметр vegan должен быть true или false"

// Handler главная страница, профиль ресторана, услуги, сотрудники, меню и обращения
type Handler struct {
	service ContentService
	logger  Logger
}

func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Home GET /api/v1/home
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, "GET /home", h.service.Home)
}

// Restaurant

// GetProfile GET /api/v1/restaurant
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, "GET /restaurant", h.service.GetProfile)
}

// CreateRestaurant POST /api/v1/restaurant
func (h *Handler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, "POST /restaurant", h.service.CreateRestaurant)
}

// GetRestaurant GET /api/v1/restaurant/{id}
func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	get(h, w, r, "GET /restaurant/{id}", h.service.GetRestaurant)
}

// UpdateRestaurant PUT /api/v1/restaurant/{id}
func (h *Handler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, "PUT /restaurant/{id}", h.service.UpdateRestaurant)
}

// DeleteRestaurant DELETE /api/v1/restaurant/{id}
func (h *Handler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	remove(h, w, r, "DELETE /restaurant/{id}", h.service.DeleteRestaurant)
}

// Services

func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, "GET /services", h.service.ListServices)
}

func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	get(h, w, r, "GET /services/{id}", h.service.GetService)
}

func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, "POST /services", h.service.CreateService)
}

func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, "PUT /services/{id}", h.service.UpdateService)
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	remove(h, w, r, "DELETE /services/{id}", h.service.DeleteService)
}

// Employees

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, "GET /employees", h.service.ListEmployees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	get(h, w, r, "GET /employees/{id}", h.service.GetEmployee)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, "POST /employees", h.service.CreateEmployee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, "PUT /employees/{id}", h.service.UpdateEmployee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	remove(h, w, r, "DELETE /employees/{id}", h.service.DeleteEmployee)
}

// Menu

// ListMenu GET /api/v1/menu?vegan=true
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	vegan, err := handlers.QueryBool(r, "vegan")
	if err != nil {
		h.logger.Warn("GET /menu - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVegan)
		return
	}
	list(h, w, r, "GET /menu", func(ctx context.Context) ([]models.MenuItemResponse, error) {
		return h.service.ListMenu(ctx, vegan)
	})
}

func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	get(h, w, r, "GET /menu/{id}", h.service.GetMenuItem)
}

func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, "POST /menu", h.service.CreateMenuItem)
}

func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	update(h, w, r, "PUT /menu/{id}", h.service.UpdateMenuItem)
}

func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	remove(h, w, r, "DELETE /menu/{id}", h.service.DeleteMenuItem)
}

// Contacts

// CreateContact POST /api/v1/contacts
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	create(h, w, r, "POST /contacts", h.service.CreateContact)
}

// ListContacts GET /api/v1/contacts
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, "GET /contacts", h.service.ListContacts)
}
