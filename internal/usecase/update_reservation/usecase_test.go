package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/testutil"
	"github.com/m04kA/SMC-RestaurantService/internal/testutil/memstore"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

var (
	juneFirst = time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	now       = time.Date(2025, 5, 20, 12, 0, 0, 0, time.Local)
)

func setup(t *testing.T) (*memstore.Store, *UseCase) {
	t.Helper()
	store := memstore.New()
	store.AddTable(3, "3", 4)
	store.AddTable(7, "7", 2)
	uc := NewUseCase(
		store.Tables(), store.ReservationRepo(), store.TxManager(),
		availability.DefaultPolicy(), nil, &testutil.Logger{},
	).WithTimeProvider(testutil.FixedTime{T: now})
	return store, uc
}

func add(store *memstore.Store, tableID int64, at string, status domain.ReservationStatus) *domain.Reservation {
	return store.AddReservation(domain.Reservation{
		TableID: tableID, OwnerID: ptr.Ptr(int64(5)), Name: "Анна", Email: "anna@example.com",
		Phone: "79991234567", Date: juneFirst, Time: types.MustTimeString(at), Guests: 2,
		IsActive: status != domain.StatusCanceled, Status: status,
	})
}

func TestExecute_ShiftsTimeWithinOwnSlot(t *testing.T) {
	store, uc := setup(t)
	r := add(store, 3, "18:00", domain.StatusPending)

	updated, err := uc.Execute(context.Background(), &Request{
		ReservationID: r.ID, UserID: 5, Time: ptr.Ptr(types.MustTimeString("18:30")),
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:30"), updated.Time)
	assert.Equal(t, types.TimeString("18:30"), store.Reservation(r.ID).Time)
}

func TestExecute_ContactOnlyChangeSkipsAvailability(t *testing.T) {
	store, uc := setup(t)
	r := add(store, 3, "18:00", domain.StatusPending)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: r.ID, IsStaff: true, Name: ptr.Ptr("  Мария "), Phone: ptr.Ptr("79990000000"),
	})
	require.NoError(t, err)

	stored := store.Reservation(r.ID)
	assert.Equal(t, "Мария", stored.Name)
	assert.Equal(t, "79990000000", stored.Phone)
	assert.Equal(t, types.TimeString("18:00"), stored.Time)
}

func TestExecute_RejectsConflicts(t *testing.T) {
	tests := []struct {
		name   string
		req    func(id int64) *Request
		reason string
	}{
		{
			name:   "buffer against neighbour",
			req:    func(id int64) *Request { return &Request{ReservationID: id, Time: ptr.Ptr(types.MustTimeString("19:30"))} },
			reason: availability.ReasonBufferViolation,
		},
		{
			name:   "too many guests for moved table",
			req:    func(id int64) *Request { return &Request{ReservationID: id, TableID: ptr.Ptr(int64(7)), Guests: ptr.Ptr(3)} },
			reason: availability.ReasonCapacityExceeded,
		},
		{
			name: "past date",
			req: func(id int64) *Request {
				return &Request{ReservationID: id, Date: ptr.Ptr(time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local))}
			},
			reason: availability.ReasonPastDateTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, uc := setup(t)
			add(store, 3, "21:00", domain.StatusConfirmed)
			r := add(store, 3, "17:00", domain.StatusPending)

			req := tt.req(r.ID)
			req.IsStaff = true
			_, err := uc.Execute(context.Background(), req)
			assert.Equal(t, tt.reason, availability.ReasonCode(err))

			stored := store.Reservation(r.ID)
			assert.Equal(t, types.TimeString("17:00"), stored.Time)
			assert.Equal(t, int64(3), stored.TableID)
			assert.Zero(t, store.Calls["Reservations.Update"])
		})
	}
}

func TestExecute_MovingConfirmedReservationMovesTableStatus(t *testing.T) {
	store, uc := setup(t)
	r := add(store, 3, "18:00", domain.StatusConfirmed)
	require.NoError(t, store.Tables().UpdateStatus(context.Background(), 3, domain.TableReserved))

	updated, err := uc.Execute(context.Background(), &Request{ReservationID: r.ID, IsStaff: true, TableID: ptr.Ptr(int64(7))})
	require.NoError(t, err)

	assert.Equal(t, "7", updated.TableNumber)
	assert.Equal(t, domain.TableAvailable, store.Table(3).Status)
	assert.Equal(t, domain.TableReserved, store.Table(7).Status)
}

func TestExecute_Errors(t *testing.T) {
	store, uc := setup(t)
	canceled := add(store, 3, "12:00", domain.StatusCanceled)
	r := add(store, 3, "18:00", domain.StatusPending)

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 404, IsStaff: true})
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = uc.Execute(context.Background(), &Request{ReservationID: r.ID, UserID: 6})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = uc.Execute(context.Background(), &Request{ReservationID: canceled.ID, IsStaff: true, Guests: ptr.Ptr(2)})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = uc.Execute(context.Background(), &Request{ReservationID: r.ID, IsStaff: true, Guests: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ReservationID: r.ID, IsStaff: true, Email: ptr.Ptr("anna@")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ReservationID: r.ID, IsStaff: true, TableID: ptr.Ptr(int64(99))})
	assert.ErrorIs(t, err, ErrTableNotFound)
}
