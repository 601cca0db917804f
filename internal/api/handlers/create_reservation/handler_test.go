package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/testutil"
	createReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	got *createReservation.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*domain.Reservation, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Reservation{
		ID:          101,
		TableID:     req.TableID,
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Date:        req.Date,
		Time:        req.Time,
		Guests:      req.Guests,
		IsActive:    true,
		Status:      domain.StatusPending,
		TableNumber: "3",
	}, nil
}

const validBody = `{"tableId":3,"name":"Анна","email":"anna@example.com","phone":"79990001122","date":"2030-06-01","time":"18:00","guests":2}`

func do(ctx context.Context, h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, &testutil.Logger{})

	rec := do(context.Background(), h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "2030-06-01", body["date"])
	assert.Equal(t, "18:00", body["time"])
	assert.Nil(t, uc.got.OwnerID)
	assert.Equal(t, time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC), uc.got.Date)
}

func TestHandle_OwnerFromToken(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, &testutil.Logger{})

	rec := do(middleware.WithUser(context.Background(), 9, false), h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got.OwnerID)
	assert.Equal(t, int64(9), *uc.got.OwnerID)
}

func TestHandle_BadInput(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, &testutil.Logger{})

	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{"tableId":`},
		{"missing guests", `{"tableId":3,"name":"Анна","email":"anna@example.com","phone":"7999","date":"2030-06-01","time":"18:00"}`},
		{"bad email", strings.Replace(validBody, "anna@example.com", "anna", 1)},
		{"bad date", strings.Replace(validBody, "2030-06-01", "01.06.2030", 1)},
		{"bad time", strings.Replace(validBody, "18:00", "25:61", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(context.Background(), h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"overlap", fmt.Errorf("%w: table #3", availability.ErrSlotOverlap), http.StatusConflict, availability.ReasonSlotOverlap},
		{"buffer", availability.ErrBufferViolation, http.StatusConflict, availability.ReasonBufferViolation},
		{"past", availability.ErrPastDateTime, http.StatusUnprocessableEntity, availability.ReasonPastDateTime},
		{"capacity", availability.ErrCapacityExceeded, http.StatusUnprocessableEntity, availability.ReasonCapacityExceeded},
		{"table not found", createReservation.ErrTableNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"internal", createReservation.ErrInternal, http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, &testutil.Logger{})

			rec := do(context.Background(), h, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}
