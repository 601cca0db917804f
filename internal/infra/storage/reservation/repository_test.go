package reservation

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

var juneFirst = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewRepository(dbmetrics.Wrap(sqlDB, nil)), mock
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "table_id", "owner_id", "name", "email", "phone", "date", "time",
		"guests", "is_active", "status", "created_at", "updated_at", "number",
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations (table_id,owner_id,name,email,phone,date,time,guests,is_active,status) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id, created_at, updated_at")).
		WithArgs(int64(3), int64(5), "Анна", "anna@example.com", "79991234567", juneFirst, "18:00", 2, true, domain.StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))

	created, err := repo.Create(context.Background(), &domain.Reservation{
		TableID:  3,
		OwnerID:  ptr.Ptr(int64(5)),
		Name:     "Анна",
		Email:    "anna@example.com",
		Phone:    "79991234567",
		Date:     juneFirst,
		Time:     types.MustTimeString("18:00"),
		Guests:   2,
		IsActive: true,
		Status:   domain.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UnknownTable(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO reservations").
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), &domain.Reservation{TableID: 99, Date: juneFirst, Time: "18:00"})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations r JOIN tables t ON t.id = r.table_id WHERE r.id = $1")).
		WithArgs(int64(11)).
		WillReturnRows(reservationRows().
			AddRow(11, 3, nil, "Анна", "anna@example.com", "79991234567", juneFirst, []byte("18:00:00"),
				2, true, "confirmed", now, now, "3"))

	reservation, err := repo.GetByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Nil(t, reservation.OwnerID)
	assert.Equal(t, types.TimeString("18:00"), reservation.Time)
	assert.Equal(t, domain.StatusConfirmed, reservation.Status)
	assert.Equal(t, "3", reservation.TableNumber)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM reservations r").WithArgs(int64(11)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 11)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_ActiveForTableAndDate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.table_id = $1 AND r.date = $2 AND r.status <> $3 ORDER BY r.time ASC")).
		WithArgs(int64(3), juneFirst, domain.StatusCanceled).
		WillReturnRows(reservationRows().
			AddRow(1, 3, 5, "A", "a@example.com", "7999", juneFirst, "18:00:00", 2, true, "pending", now, now, "3").
			AddRow(2, 3, 6, "B", "b@example.com", "7998", juneFirst, "20:00:00", 4, true, "confirmed", now, now, "3"))

	reservations, err := repo.ActiveForTableAndDate(context.Background(), 3, juneFirst.Add(19*time.Hour))
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, int64(5), *reservations[0].OwnerID)
	assert.Equal(t, types.TimeString("20:00"), reservations[1].Time)
}

func TestRepository_List_Filters(t *testing.T) {
	repo, mock := newMock(t)

	status := domain.StatusConfirmed
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.owner_id = $1 AND r.status = $2 ORDER BY r.date DESC, r.time DESC")).
		WithArgs(int64(5), domain.StatusConfirmed).
		WillReturnRows(reservationRows())

	reservations, err := repo.List(context.Background(), domain.ReservationsFilter{OwnerID: ptr.Ptr(int64(5)), Status: &status})
	require.NoError(t, err)
	assert.Empty(t, reservations)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.status <> $1 ORDER BY")).
		WithArgs(domain.StatusCanceled).
		WillReturnRows(reservationRows())

	_, err = repo.List(context.Background(), domain.ReservationsFilter{})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN tables t ON t.id = r.table_id ORDER BY")).
		WillReturnRows(reservationRows())

	_, err = repo.List(context.Background(), domain.ReservationsFilter{IncludeCanceled: true})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = $1, is_active = $2, updated_at = NOW() WHERE id = $3")).
		WithArgs(domain.StatusCanceled, false, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE reservations SET status").
		WithArgs(domain.StatusConfirmed, true, int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateStatus(context.Background(), 11, domain.StatusCanceled, false))
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 12, domain.StatusConfirmed, true), ErrReservationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET table_id = $1, name = $2, email = $3, phone = $4, date = $5, time = $6, guests = $7, updated_at = NOW() WHERE id = $8")).
		WithArgs(int64(4), "Анна", "anna@example.com", "79991234567", juneFirst, "20:00", 3, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &domain.Reservation{
		ID: 11, TableID: 4, Name: "Анна", Email: "anna@example.com", Phone: "79991234567",
		Date: juneFirst, Time: "20:00", Guests: 3,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExpirePast(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2025, 6, 1, 21, 5, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET is_active = $1, updated_at = NOW() WHERE is_active = $2 AND status <> $3 AND (date + time) + ($4 * INTERVAL '1 minute') <= $5::timestamp")).
		WithArgs(false, true, domain.StatusCanceled, 60, "2025-06-01 21:05:00").
		WillReturnResult(sqlmock.NewResult(0, 3))

	expired, err := repo.ExpirePast(context.Background(), now, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(3), expired)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("DELETE FROM reservations").WithArgs(int64(11)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 11), ErrReservationNotFound)
}
