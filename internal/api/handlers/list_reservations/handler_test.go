package list_reservations

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
	"github.com/m04kA/SMC-RestaurantService/internal/testutil"
)

type fakeService struct {
	got *models.ListRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationListResponse{Reservations: []models.ReservationResponse{}}, nil
}

func TestToListRequest(t *testing.T) {
	req, err := ToListRequest(url.Values{
		"date":            {"2030-06-01"},
		"status":          {"confirmed"},
		"tableId":         {"3"},
		"includeCanceled": {"true"},
	})
	require.NoError(t, err)
	require.NotNil(t, req.Date)
	require.NotNil(t, req.Status)
	require.NotNil(t, req.TableID)
	assert.Equal(t, "2030-06-01", *req.Date)
	assert.Equal(t, "confirmed", *req.Status)
	assert.Equal(t, int64(3), *req.TableID)
	assert.True(t, req.IncludeCanceled)

	empty, err := ToListRequest(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, empty.Date)
	assert.False(t, empty.IncludeCanceled)

	_, err = ToListRequest(url.Values{"tableId": {"-1"}})
	assert.Error(t, err)
	_, err = ToListRequest(url.Values{"includeCanceled": {"maybe"}})
	assert.Error(t, err)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
	}{
		{"ok", "status=pending", nil, http.StatusOK},
		{"bad table", "tableId=x", nil, http.StatusBadRequest},
		{"bad filter", "date=junk", fmt.Errorf("%w: date", reservations.ErrInvalidInput), http.StatusBadRequest},
		{"internal", "", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, &testutil.Logger{})
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations?"+tt.query, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
