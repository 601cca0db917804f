package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReservationStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "canceled"} {
		status, err := ParseReservationStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, ReservationStatus(s), status)
	}

	_, err := ParseReservationStatus("Сonfirm")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to ReservationStatus
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCanceled, true},
		{StatusConfirmed, StatusCanceled, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCanceled, StatusConfirmed, false},
		{StatusCanceled, StatusCanceled, false},
		{StatusCanceled, StatusPending, false},
		{StatusConfirmed, StatusPending, false},
		{StatusPending, "seated", false},
		{"unknown", StatusCanceled, false},
	}

	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			assert.ErrorIs(t, err, ErrInvalidStatus, "%s -> %s", tt.from, tt.to)
		}
	}
}

func TestReservation_IsOwnedBy(t *testing.T) {
	owner := int64(7)
	r := &Reservation{OwnerID: &owner}
	assert.True(t, r.IsOwnedBy(7))
	assert.False(t, r.IsOwnedBy(8))
	assert.False(t, (&Reservation{}).IsOwnedBy(7))
}
