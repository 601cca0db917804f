package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// ErrInvalidFilter возвращается при некорректных параметрах фильтра
var ErrInvalidFilter = errors.New("invalid reservations filter")

// Request модели

// ListRequest запрос на получение списка броней (для сотрудников)
type ListRequest struct {
	Date            *string `json:"date,omitempty"`   // "2025-06-01"
	Status          *string `json:"status,omitempty"` // pending | confirmed | canceled
	TableID         *int64  `json:"tableId,omitempty"`
	IncludeCanceled bool    `json:"includeCanceled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter(loc *time.Location) (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		TableID:         r.TableID,
		IncludeCanceled: r.IncludeCanceled,
	}

	if r.Date != nil && *r.Date != "" {
		date, err := time.ParseInLocation(domain.DateFormat, *r.Date, loc)
		if err != nil {
			return filter, fmt.Errorf("%w: date %q", ErrInvalidFilter, *r.Date)
		}
		filter.Date = &date
	}

	if r.Status != nil && *r.Status != "" {
		status, err := domain.ParseReservationStatus(*r.Status)
		if err != nil {
			return filter, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
		}
		filter.Status = &status
	}

	return filter, nil
}

// ChangeStatusRequest запрос на смену статуса брони сотрудником
type ChangeStatusRequest struct {
	UserID int64  `json:"-"`
	Status string `json:"status"`
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID          int64     `json:"id"`
	TableID     int64     `json:"tableId"`
	TableNumber string    `json:"tableNumber"`
	OwnerID     *int64    `json:"ownerId,omitempty"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Date        string    `json:"date"` // "2025-06-01"
	Time        string    `json:"time"` // "18:00"
	Guests      int       `json:"guests"`
	Status      string    `json:"status"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:          r.ID,
		TableID:     r.TableID,
		TableNumber: r.TableNumber,
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Date:        r.Date.Format(domain.DateFormat),
		Time:        r.Time.String(),
		Guests:      r.Guests,
		Status:      string(r.Status),
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}
