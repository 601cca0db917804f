package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

func TestRespondRejection(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"overlap", fmt.Errorf("%w: table 3", availability.ErrSlotOverlap), http.StatusConflict, availability.ReasonSlotOverlap},
		{"buffer", availability.ErrBufferViolation, http.StatusConflict, availability.ReasonBufferViolation},
		{"past", availability.ErrPastDateTime, http.StatusUnprocessableEntity, availability.ReasonPastDateTime},
		{"capacity", availability.ErrCapacityExceeded, http.StatusUnprocessableEntity, availability.ReasonCapacityExceeded},
		{"status", domain.ErrInvalidStatus, http.StatusUnprocessableEntity, availability.ReasonInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.True(t, RespondRejection(rec, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}

	rec := httptest.NewRecorder()
	assert.False(t, RespondRejection(rec, fmt.Errorf("db down")))
	assert.Equal(t, 0, rec.Body.Len())
}

func TestRespondError_CodeFromStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "стол не найден")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":"NOT_FOUND","message":"стол не найден"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	RespondInternalError(rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), CodeInternal)
}

type payload struct {
	Name   string `json:"name" validate:"required"`
	Guests int    `json:"guests" validate:"min=1"`
}

func TestDecodeAndValidate(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Анна","guests":2}`))
	var p payload
	require.NoError(t, DecodeAndValidate(r, &p))
	assert.Equal(t, "Анна", p.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"","guests":2}`))
	assert.Error(t, DecodeAndValidate(r, &payload{}))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","guests":1,"extra":true}`))
	assert.Error(t, DecodeAndValidate(r, &payload{}))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.ErrorIs(t, DecodeJSON(r, &payload{}), ErrEmptyBody)
}

func TestPathID(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := PathID(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	r = mux.SetURLVars(r, map[string]string{"id": "-1"})
	_, err = PathID(r, "id")
	assert.Error(t, err)

	r = mux.SetURLVars(r, map[string]string{"id": "abc"})
	_, err = PathID(r, "id")
	assert.Error(t, err)
}
