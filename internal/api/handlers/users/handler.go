package users

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	usersService "github.com/m04kA/SMC-RestaurantService/internal/service/users"
	"github.com/m04kA/SMC-RestaurantService/internal/service/users/models"
)

const (
	codeBannedWord     = "BANNED_WORD"
	codeNotActivated   = "NOT_ACTIVATED"
	codeBlocked        = "BLOCKED"
	codeBadCredentials = "INVALID_CREDENTIALS"

	msgInvalidUserID       = "некорректный ID пользователя"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные пользователя"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgNotFound            = "пользователь не найден"
	msgEmailTaken          = "пользователь с таким e-mail уже зарегистрирован"
	msgUsernameTaken       = "имя пользователя занято"
	msgInvalidCredentials  = "неверный e-mail или пароль"
	msgNotActivated        = "подтвердите e-mail, чтобы войти"
	msgBlocked             = "пользователь заблокирован"
	msgInvalidConfirmToken = "ссылка подтверждения недействительна"
	msgBannedWord          = "имя содержит запрещенное слово"
	msgForbidden           = "доступ запрещен"
	msgPasswordReset       = "если e-mail зарегистрирован, новый пароль отправлен на почту"
	msgEmailConfirmed      = "e-mail подтвержден"
)

// MessageResponse ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// Handler регистрация, вход, профиль и администрирование пользователей
type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register POST /api/v1/users/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /users/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /users/register", err)
		return
	}

	h.logger.Info("POST /users/register - User registered: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}

// ConfirmEmail GET /api/v1/users/confirm/{token}
func (h *Handler) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ConfirmEmail(r.Context(), mux.Vars(r)["token"]); err != nil {
		h.respondError(w, "GET /users/confirm/{token}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: msgEmailConfirmed})
}

// Login POST /api/v1/users/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /users/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /users/login", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ResetPassword POST /api/v1/users/password-reset
// Ответ одинаковый для известного и неизвестного e-mail
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /users/password-reset - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Email); err != nil {
		h.respondError(w, "POST /users/password-reset", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: msgPasswordReset})
}

// Profile GET /api/v1/users/{userId}/profile
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	id, callerID, ok := h.ids(w, r, "GET /users/{id}/profile")
	if !ok {
		return
	}

	result, err := h.service.Profile(r.Context(), id, callerID, middleware.IsStaff(r.Context()))
	if err != nil {
		h.respondError(w, "GET /users/{id}/profile", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/users/{userId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, callerID, ok := h.ids(w, r, "PUT /users/{id}")
	if !ok {
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, callerID, middleware.IsStaff(r.Context()), &req)
	if err != nil {
		h.respondError(w, "PUT /users/{id}", err)
		return
	}

	h.logger.Info("PUT /users/{id} - User updated: user_id=%d, by=%d", id, callerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, "GET /users", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Block PATCH /api/v1/users/{userId}/block
func (h *Handler) Block(w http.ResponseWriter, r *http.Request) {
	id, callerID, ok := h.ids(w, r, "PATCH /users/{id}/block")
	if !ok {
		return
	}

	var req models.BlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /users/{id}/block - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetBlocked(r.Context(), id, callerID, req.Blocked); err != nil {
		h.respondError(w, "PATCH /users/{id}/block", err)
		return
	}

	h.logger.Info("PATCH /users/{id}/block - User id=%d blocked=%t by user=%d", id, req.Blocked, callerID)
	handlers.RespondNoContent(w)
}

func (h *Handler) ids(w http.ResponseWriter, r *http.Request, route string) (int64, int64, bool) {
	id, err := handlers.PathID(r, "userId")
	if err != nil {
		h.logger.Warn("%s - Invalid user ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return 0, 0, false
	}

	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, 0, false
	}
	return id, callerID, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, usersService.ErrUserNotFound):
		h.logger.Warn("%s - User not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, usersService.ErrEmailTaken):
		h.logger.Warn("%s - Email taken", route)
		handlers.RespondConflict(w, msgEmailTaken)

	case errors.Is(err, usersService.ErrUsernameTaken):
		h.logger.Warn("%s - Username taken", route)
		handlers.RespondConflict(w, msgUsernameTaken)

	case errors.Is(err, usersService.ErrInvalidCredentials):
		h.logger.Warn("%s - Invalid credentials", route)
		handlers.RespondCode(w, http.StatusUnauthorized, codeBadCredentials, msgInvalidCredentials)

	case errors.Is(err, usersService.ErrNotActivated):
		h.logger.Warn("%s - Not activated", route)
		handlers.RespondCode(w, http.StatusForbidden, codeNotActivated, msgNotActivated)

	case errors.Is(err, usersService.ErrBlocked):
		h.logger.Warn("%s - Blocked", route)
		handlers.RespondCode(w, http.StatusForbidden, codeBlocked, msgBlocked)

	case errors.Is(err, usersService.ErrInvalidConfirmationToken):
		h.logger.Warn("%s - Invalid confirmation token", route)
		handlers.RespondBadRequest(w, msgInvalidConfirmToken)

	case errors.Is(err, usersService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, usersService.ErrBannedWord):
		h.logger.Warn("%s - Banned word: %v", route, err)
		handlers.RespondCode(w, http.StatusBadRequest, codeBannedWord, msgBannedWord)

	case errors.Is(err, usersService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
