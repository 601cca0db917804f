package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/cancel_reservation"
	changeStatusHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/change_reservation_status"
	confirmReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/confirm_reservation"
	contentHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/content"
	createReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/delete_reservation"
	getAvailableTablesHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_available_tables"
	getReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_user_reservations"
	listReservationsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/list_reservations"
	tablesHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/tables"
	updateReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/update_reservation"
	usersHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/users"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/pkg/metrics"
)

// Handlers набор HTTP-обработчиков сервиса
type Handlers struct {
	CreateReservation  *createReservationHandler.Handler
	GetReservation     *getReservationHandler.Handler
	ConfirmReservation *confirmReservationHandler.Handler
	CancelReservation  *cancelReservationHandler.Handler
	UpdateReservation  *updateReservationHandler.Handler
	DeleteReservation  *deleteReservationHandler.Handler
	ListReservations   *listReservationsHandler.Handler
	ChangeStatus       *changeStatusHandler.Handler
	UserReservations   *getUserReservationsHandler.Handler
	AvailableTables    *getAvailableTablesHandler.Handler
	Tables             *tablesHandler.Handler
	Content            *contentHandler.Handler
	Users              *usersHandler.Handler
}

// RouterOptions параметры роутера
type RouterOptions struct {
	Tokens      middleware.TokenParser
	Metrics     *metrics.Metrics // nil - метрики выключены
	MetricsPath string
}

// NewRouter регистрирует все маршруты /api/v1
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (токен необязателен)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth(opts.Tokens))

	// --- Главная и контент ---
	public.HandleFunc("/home", h.Content.Home).Methods(http.MethodGet)
	public.HandleFunc("/restaurant", h.Content.GetProfile).Methods(http.MethodGet)
	public.HandleFunc("/restaurant/{id:[0-9]+}", h.Content.GetRestaurant).Methods(http.MethodGet)
	public.HandleFunc("/services", h.Content.ListServices).Methods(http.MethodGet)
	public.HandleFunc("/services/{id:[0-9]+}", h.Content.GetService).Methods(http.MethodGet)
	public.HandleFunc("/employees", h.Content.ListEmployees).Methods(http.MethodGet)
	public.HandleFunc("/employees/{id:[0-9]+}", h.Content.GetEmployee).Methods(http.MethodGet)
	public.HandleFunc("/menu", h.Content.ListMenu).Methods(http.MethodGet)
	public.HandleFunc("/menu/{id:[0-9]+}", h.Content.GetMenuItem).Methods(http.MethodGet)
	public.HandleFunc("/contacts", h.Content.CreateContact).Methods(http.MethodPost)

	// --- Столы ---
	public.HandleFunc("/tables", h.Tables.List).Methods(http.MethodGet)
	public.HandleFunc("/tables/available", h.AvailableTables.Handle).Methods(http.MethodGet)
	public.HandleFunc("/tables/{tableId:[0-9]+}", h.Tables.Get).Methods(http.MethodGet)

	// --- Бронирование (гость или пользователь) ---
	public.HandleFunc("/reservations", h.CreateReservation.Handle).Methods(http.MethodPost)

	// --- Пользователи ---
	public.HandleFunc("/users/register", h.Users.Register).Methods(http.MethodPost)
	public.HandleFunc("/users/confirm/{token}", h.Users.ConfirmEmail).Methods(http.MethodGet)
	public.HandleFunc("/users/login", h.Users.Login).Methods(http.MethodPost)
	public.HandleFunc("/users/password-reset", h.Users.ResetPassword).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(opts.Tokens))

	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", h.GetReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", h.UpdateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/confirm", h.ConfirmReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/cancel", h.CancelReservation.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/users/{userId:[0-9]+}/profile", h.Users.Profile).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId:[0-9]+}/reservations", h.UserReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId:[0-9]+}", h.Users.Update).Methods(http.MethodPut)

	// ============================================================
	// STAFF ROUTES
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.Auth(opts.Tokens), middleware.RequireStaff)

	// --- Брони ---
	staff.HandleFunc("/reservations", h.ListReservations.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/{reservationId:[0-9]+}", h.DeleteReservation.Handle).Methods(http.MethodDelete)
	staff.HandleFunc("/reservations/{reservationId:[0-9]+}/status", h.ChangeStatus.Handle).Methods(http.MethodPatch)

	// --- Столы ---
	staff.HandleFunc("/tables", h.Tables.Create).Methods(http.MethodPost)
	staff.HandleFunc("/tables/{tableId:[0-9]+}", h.Tables.Update).Methods(http.MethodPut)
	staff.HandleFunc("/tables/{tableId:[0-9]+}", h.Tables.Delete).Methods(http.MethodDelete)

	// --- Контент ---
	staff.HandleFunc("/restaurant", h.Content.CreateRestaurant).Methods(http.MethodPost)
	staff.HandleFunc("/restaurant/{id:[0-9]+}", h.Content.UpdateRestaurant).Methods(http.MethodPut)
	staff.HandleFunc("/restaurant/{id:[0-9]+}", h.Content.DeleteRestaurant).Methods(http.MethodDelete)
	staff.HandleFunc("/services", h.Content.CreateService).Methods(http.MethodPost)
	staff.HandleFunc("/services/{id:[0-9]+}", h.Content.UpdateService).Methods(http.MethodPut)
	staff.HandleFunc("/services/{id:[0-9]+}", h.Content.DeleteService).Methods(http.MethodDelete)
	staff.HandleFunc("/employees", h.Content.CreateEmployee).Methods(http.MethodPost)
	staff.HandleFunc("/employees/{id:[0-9]+}", h.Content.UpdateEmployee).Methods(http.MethodPut)
	staff.HandleFunc("/employees/{id:[0-9]+}", h.Content.DeleteEmployee).Methods(http.MethodDelete)
	staff.HandleFunc("/menu", h.Content.CreateMenuItem).Methods(http.MethodPost)
	staff.HandleFunc("/menu/{id:[0-9]+}", h.Content.UpdateMenuItem).Methods(http.MethodPut)
	staff.HandleFunc("/menu/{id:[0-9]+}", h.Content.DeleteMenuItem).Methods(http.MethodDelete)
	staff.HandleFunc("/contacts", h.Content.ListContacts).Methods(http.MethodGet)

	// --- Пользователи ---
	staff.HandleFunc("/users", h.Users.List).Methods(http.MethodGet)
	staff.HandleFunc("/users/{userId:[0-9]+}/block", h.Users.Block).Methods(http.MethodPatch)

	return r
}
