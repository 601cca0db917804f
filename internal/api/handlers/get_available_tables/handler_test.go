package get_available_tables

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/testutil"
	"github.com/m04kA/SMC-RestaurantService/internal/testutil/memstore"
	getAvailableTables "github.com/m04kA/SMC-RestaurantService/internal/usecase/get_available_tables"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	store := memstore.New()
	store.AddTable(1, "1", 2)
	store.AddTable(3, "3", 4)
	store.AddReservation(domain.Reservation{
		TableID:  3,
		Date:     time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:     "18:00",
		Guests:   2,
		IsActive: true,
		Status:   domain.StatusPending,
	})

	uc, err := getAvailableTables.NewUseCase(store.Tables(), store.ReservationRepo(),
		availability.DefaultPolicy(), getAvailableTables.DefaultHours(), &testutil.Logger{})
	require.NoError(t, err)
	return NewHandler(uc, &testutil.Logger{})
}

func get(h *Handler, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tables/available?"+query, nil))
	return rec
}

func TestHandle_AtTime(t *testing.T) {
	rec := get(newHandler(t), "date=2030-06-01&time=18:30&guests=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableTablesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tables, 2)
	require.NotNil(t, resp.Time)
	assert.Equal(t, "18:30", *resp.Time)

	for _, table := range resp.Tables {
		switch table.Number {
		case "1":
			assert.True(t, table.Available)
		case "3":
			assert.False(t, table.Available)
			assert.Equal(t, availability.ReasonSlotOverlap, table.Reason)
		}
	}
}

func TestHandle_FreeTimes(t *testing.T) {
	rec := get(newHandler(t), "date=2030-06-01&guests=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableTablesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Time)
	for _, table := range resp.Tables {
		assert.NotEmpty(t, table.FreeTimes)
		if table.Number == "3" {
			assert.NotContains(t, table.FreeTimes, "18:00")
			assert.NotContains(t, table.FreeTimes, "19:30")
			assert.Contains(t, table.FreeTimes, "20:00")
		}
	}
}

func TestHandle_BadQuery(t *testing.T) {
	h := newHandler(t)

	for _, query := range []string{"", "date=01.06.2030", "date=2030-06-01&time=7pm", "date=2030-06-01&guests=0"} {
		t.Run(query, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, get(h, query).Code)
		})
	}
}
