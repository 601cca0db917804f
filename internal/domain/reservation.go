package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// ErrInvalidStatus возвращается для неизвестного статуса или недопустимого перехода
var ErrInvalidStatus = errors.New("domain: invalid reservation status")

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCanceled  ReservationStatus = "canceled"
)

// ParseReservationStatus конвертирует строку в статус с валидацией
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// CanTransition проверяет переход статуса:
//
//	pending   -> confirmed
//	pending   -> canceled
//	confirmed -> canceled
//
// canceled терминальный, повторное подтверждение запрещено
func CanTransition(from, to ReservationStatus) error {
	if _, err := ParseReservationStatus(string(from)); err != nil {
		return err
	}
	if _, err := ParseReservationStatus(string(to)); err != nil {
		return err
	}

	switch {
	case from == StatusPending && to == StatusConfirmed:
		return nil
	case (from == StatusPending || from == StatusConfirmed) && to == StatusCanceled:
		return nil
	default:
		return fmt.Errorf("%w: transition %s -> %s is not allowed", ErrInvalidStatus, from, to)
	}
}

// Reservation бронирование стола
type Reservation struct {
	ID          int64
	TableID     int64
	OwnerID     *int64 // nil для анонимной брони
	Name        string
	Email       string
	Phone       string
	Date        time.Time        // календарная дата (время обнулено)
	Time        types.TimeString // время начала
	Guests      int
	IsActive    bool
	Status      ReservationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	TableNumber string // денормализовано при чтении
}

// IsCanceled возвращает true, если бронь отменена
func (r *Reservation) IsCanceled() bool {
	return r.Status == StatusCanceled
}

// CountsForAvailability возвращает true, если бронь занимает стол (любой статус кроме canceled)
func (r *Reservation) CountsForAvailability() bool {
	return !r.IsCanceled()
}

// StartAt момент начала брони в часовом поясе loc
func (r *Reservation) StartAt(loc *time.Location) time.Time {
	return r.Time.On(r.Date, loc)
}

// IsOwnedBy проверяет владельца брони
func (r *Reservation) IsOwnedBy(userID int64) bool {
	return r.OwnerID != nil && *r.OwnerID == userID
}

// ReservationsFilter фильтр списка бронирований
type ReservationsFilter struct {
	TableID         *int64
	OwnerID         *int64
	Date            *time.Time
	Status          *ReservationStatus
	IncludeCanceled bool
}

// DateOnly обнуляет время, сохраняя часовой пояс
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
