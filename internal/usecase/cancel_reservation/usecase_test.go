package cancel_reservation

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
)

var juneFirst = time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

type fakeNotifier struct {
	changed []*domain.Reservation
}

func (n *fakeNotifier) ReservationStatusChanged(_ context.Context, r *domain.Reservation) {
	n.changed = append(n.changed, r)
}

func setup(t *testing.T, status domain.ReservationStatus) (*memstore.Store, *domain.Reservation, *fakeNotifier, *UseCase) {
	t.Helper()
	store := memstore.New()
	store.AddTable(3, "3", 4)
	r := store.AddReservation(domain.Reservation{
		TableID: 3, OwnerID: ptr.Ptr(int64(5)), Date: juneFirst, Time: "18:00",
		Guests: 2, IsActive: true, Status: status,
	})
	notifier := &fakeNotifier{}
	uc := NewUseCase(store.Tables(), store.ReservationRepo(), store.TxManager(), notifier, nil, &testutil.Logger{})
	return store, r, notifier, uc
}

func TestExecute_CancelsPendingAndReleasesTable(t *testing.T) {
	store, r, notifier, uc := setup(t, domain.StatusPending)
	require.NoError(t, store.Tables().UpdateStatus(context.Background(), 3, domain.TableReserved))

	canceled, err := uc.Execute(context.Background(), &Request{ReservationID: r.ID, UserID: 5})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCanceled, canceled.Status)
	stored := store.Reservation(r.ID)
	assert.Equal(t, domain.StatusCanceled, stored.Status)
	assert.False(t, stored.IsActive)
	assert.Equal(t, domain.TableAvailable, store.Table(3).Status)
	assert.Len(t, notifier.changed, 1)
}

func TestExecute_CancelsConfirmedAndReleasesTable(t *testing.T) {
	store, r, _, uc := setup(t, domain.StatusConfirmed)
	require.NoError(t, store.Tables().UpdateStatus(context.Background(), 3, domain.TableReserved))

	_, err := uc.Execute(context.Background(), &Request{ReservationID: r.ID, IsStaff: true})
	require.NoError(t, err)
	assert.Equal(t, domain.TableAvailable, store.Table(3).Status)
}

func TestExecute_AlreadyCanceled(t *testing.T) {
	store, r, notifier, uc := setup(t, domain.StatusCanceled)

	_, err := uc.Execute(context.Background(), &Request{ReservationID: r.ID, UserID: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Equal(t, availability.ReasonInvalidStatus, availability.ReasonCode(err))
	assert.Zero(t, store.Calls["Reservations.UpdateStatus"])
	assert.Empty(t, notifier.changed)
}

func TestExecute_AccessAndNotFound(t *testing.T) {
	_, r, _, uc := setup(t, domain.StatusPending)

	_, err := uc.Execute(context.Background(), &Request{ReservationID: r.ID, UserID: 6})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = uc.Execute(context.Background(), &Request{ReservationID: 404, IsStaff: true})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
