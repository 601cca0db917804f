package confirm_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/testutil"
	"github.com/m04kA/SMC-RestaurantService/internal/testutil/memstore"
	"github.com/m04kA/SMC-RestaurantService/pkg/metrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

var juneFirst = time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

type fakeNotifier struct {
	changed []*domain.Reservation
}

func (n *fakeNotifier) ReservationStatusChanged(_ context.Context, r *domain.Reservation) {
	n.changed = append(n.changed, r)
}

type fixture struct {
	store    *memstore.Store
	notifier *fakeNotifier
	metrics  *metrics.Metrics
	uc       *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	store.AddTable(3, "3", 4)

	f := &fixture{
		store:    store,
		notifier: &fakeNotifier{},
		metrics:  metrics.NewWithRegisterer("test", prometheus.NewRegistry()),
	}
	f.uc = NewUseCase(
		store.Tables(),
		store.ReservationRepo(),
		store.TxManager(),
		availability.DefaultPolicy(),
		f.notifier,
		f.metrics,
		&testutil.Logger{},
	)
	return f
}

func (f *fixture) pending(at string, owner int64) *domain.Reservation {
	return f.store.AddReservation(domain.Reservation{
		TableID: 3, OwnerID: ptr.Ptr(owner), Date: juneFirst, Time: types.MustTimeString(at),
		Guests: 2, IsActive: true, Status: domain.StatusPending,
	})
}

func TestExecute_ConfirmsPendingReservation(t *testing.T) {
	f := newFixture(t)
	r := f.pending("18:00", 5)

	confirmed, err := f.uc.Execute(context.Background(), &Request{ReservationID: r.ID, UserID: 5})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
	assert.Equal(t, domain.StatusConfirmed, f.store.Reservation(r.ID).Status)
	assert.Equal(t, domain.TableReserved, f.store.Table(3).Status)
	require.Len(t, f.notifier.changed, 1)
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.ReservationsStatus.WithLabelValues("confirmed")))
}

func TestExecute_StaffConfirmsForeignReservation(t *testing.T) {
	f := newFixture(t)
	r := f.pending("18:00", 5)

	_, err := f.uc.Execute(context.Background(), &Request{ReservationID: r.ID, UserID: 1, IsStaff: true})
	require.NoError(t, err)
}

func TestExecute_ForeignUserDenied(t *testing.T) {
	f := newFixture(t)
	r := f.pending("18:00", 5)

	_, err := f.uc.Execute(context.Background(), &Request{ReservationID: r.ID, UserID: 6})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, f.store.Reservation(r.ID).Status)
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{ReservationID: 404, IsStaff: true})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_InvalidTransition(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.StatusConfirmed, domain.StatusCanceled} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			r := f.store.AddReservation(domain.Reservation{
				TableID: 3, Date: juneFirst, Time: "18:00", Guests: 2, Status: status,
			})

			_, err := f.uc.Execute(context.Background(), &Request{ReservationID: r.ID, IsStaff: true})
			assert.ErrorIs(t, err, domain.ErrInvalidStatus)
			assert.Equal(t, availability.ReasonInvalidStatus, availability.ReasonCode(err))
			assert.Zero(t, f.store.Calls["Reservations.UpdateStatus"])
		})
	}
}

func TestExecute_RecheckRejectsConflictingSlot(t *testing.T) {
	f := newFixture(t)
	f.store.AddReservation(domain.Reservation{
		TableID: 3, Date: juneFirst, Time: "18:00", Guests: 2, IsActive: true, Status: domain.StatusConfirmed,
	})
	// бронь внутри буфера, например внесенная вручную
	r := f.pending("19:30", 5)

	_, err := f.uc.Execute(context.Background(), &Request{ReservationID: r.ID, IsStaff: true})
	assert.Equal(t, availability.ReasonBufferViolation, availability.ReasonCode(err))
	assert.Equal(t, domain.StatusPending, f.store.Reservation(r.ID).Status)
	assert.Equal(t, domain.TableAvailable, f.store.Table(3).Status)
	assert.Empty(t, f.notifier.changed)
}

func TestExecute_DoesNotConflictWithItself(t *testing.T) {
	f := newFixture(t)
	r := f.pending("18:00", 5)
	f.pending("21:00", 6)

	_, err := f.uc.Execute(context.Background(), &Request{ReservationID: r.ID, IsStaff: true})
	require.NoError(t, err)
}
