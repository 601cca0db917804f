package change_reservation_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
	"github.com/m04kA/SMC-RestaurantService/internal/testutil"
	cancelReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/cancel_reservation"
)

type fakeService struct {
	got *models.ChangeStatusRequest
	err error
}

func (f *fakeService) ChangeStatus(_ context.Context, id int64, req *models.ChangeStatusRequest) (*models.ReservationResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationResponse{ID: id, Status: req.Status}, nil
}

func do(h *Handler, body string) *httptest.ResponseRecorder {
	ctx := middleware.WithUser(context.Background(), 1, true)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/5/status", strings.NewReader(body)).WithContext(ctx)
	req = mux.SetURLVars(req, map[string]string{"reservationId": "5"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_StatusChanged(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, &testutil.Logger{})

	rec := do(h, `{"status":"canceled"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "canceled", svc.got.Status)
	assert.Equal(t, int64(1), svc.got.UserID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"empty body", ``, nil, http.StatusBadRequest},
		{"missing status", `{}`, nil, http.StatusBadRequest},
		{"unknown status", `{"status":"pending"}`, domain.ErrInvalidStatus, http.StatusUnprocessableEntity},
		{"overlap", `{"status":"confirmed"}`, availability.ErrSlotOverlap, http.StatusConflict},
		{"not found", `{"status":"canceled"}`, cancelReservation.ErrReservationNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, &testutil.Logger{})
			assert.Equal(t, tt.wantStatus, do(h, tt.body).Code)
		})
	}
}
