package update_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/testutil"
	updateReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

type fakeUseCase struct {
	got *updateReservation.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateReservation.Request) (*domain.Reservation, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Reservation{
		ID:       req.ReservationID,
		TableID:  3,
		Date:     time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:     "20:00",
		Guests:   2,
		IsActive: true,
		Status:   domain.StatusPending,
	}, nil
}

func do(h *Handler, body string) *httptest.ResponseRecorder {
	ctx := middleware.WithUser(context.Background(), 9, false)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/7", strings.NewReader(body)).WithContext(ctx)
	req = mux.SetURLVars(req, map[string]string{"reservationId": "7"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_PartialUpdate(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, &testutil.Logger{})

	rec := do(h, `{"time":"20:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got.Time)
	assert.Equal(t, types.TimeString("20:00"), *uc.got.Time)
	assert.Nil(t, uc.got.Date)
	assert.Nil(t, uc.got.TableID)
	assert.Equal(t, int64(7), uc.got.ReservationID)
	assert.Equal(t, int64(9), uc.got.UserID)
	assert.False(t, uc.got.IsStaff)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"bad date", `{"date":"01.06.2030"}`, nil, http.StatusBadRequest},
		{"bad guests", `{"guests":0}`, nil, http.StatusBadRequest},
		{"buffer", `{"time":"19:30"}`, availability.ErrBufferViolation, http.StatusConflict},
		{"capacity", `{"guests":10}`, availability.ErrCapacityExceeded, http.StatusUnprocessableEntity},
		{"forbidden", `{"guests":2}`, updateReservation.ErrAccessDenied, http.StatusForbidden},
		{"not found", `{"guests":2}`, updateReservation.ErrReservationNotFound, http.StatusNotFound},
		{"invalid input", `{"guests":2}`, updateReservation.ErrInvalidInput, http.StatusBadRequest},
		{"internal", `{"guests":2}`, updateReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, &testutil.Logger{})
			assert.Equal(t, tt.wantStatus, do(h, tt.body).Code)
		})
	}
}
