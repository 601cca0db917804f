package content

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	contentService "github.com/m04kA/SMC-RestaurantService/internal/service/content"
)

const (
	codeBannedWord = "BANNED_WORD"

	msgInvalidID          = "некорректный ID"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные"
	msgBannedWord         = "текст содержит запрещенное слово"
	msgNotFound           = "запись не найдена"
)

func create[Req, Resp any](h *Handler, w http.ResponseWriter, r *http.Request, route string,
	fn func(context.Context, *Req) (*Resp, error)) {
	var req Req
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := fn(r.Context(), &req)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Created successfully", route)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

func get[Resp any](h *Handler, w http.ResponseWriter, r *http.Request, route string,
	fn func(context.Context, int64) (*Resp, error)) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := fn(r.Context(), id)
	if err != nil {
		h.respondError(w, route, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func update[Req, Resp any](h *Handler, w http.ResponseWriter, r *http.Request, route string,
	fn func(context.Context, int64, *Req) (*Resp, error)) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req Req
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := fn(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Updated successfully: id=%d", route, id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func remove(h *Handler, w http.ResponseWriter, r *http.Request, route string,
	fn func(context.Context, int64) error) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := fn(r.Context(), id); err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Deleted successfully: id=%d", route, id)
	handlers.RespondNoContent(w)
}

func list[Resp any](h *Handler, w http.ResponseWriter, r *http.Request, route string,
	fn func(context.Context) (Resp, error)) {
	result, err := fn(r.Context())
	if err != nil {
		h.respondError(w, route, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, contentService.ErrNotFound):
		h.logger.Warn("%s - Not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, contentService.ErrBannedWord):
		h.logger.Warn("%s - Banned word: %v", route, err)
		handlers.RespondCode(w, http.StatusBadRequest, codeBannedWord, msgBannedWord)

	case errors.Is(err, contentService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
