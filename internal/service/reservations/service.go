package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
	"github.com/m04kA/SMC-RestaurantService/internal/usecase/cancel_reservation"
	"github.com/m04kA/SMC-RestaurantService/internal/usecase/confirm_reservation"
)

// Service сервис для чтения и администрирования броней
type Service struct {
	reservationRepo ReservationRepository
	confirm         ConfirmUseCase
	cancel          CancelUseCase
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	confirm ConfirmUseCase,
	cancel CancelUseCase,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		reservationRepo: reservationRepo,
		confirm:         confirm,
		cancel:          cancel,
		location:        location,
		logger:          logger,
	}
}

// GetByID получает бронь по ID.
// Видеть бронь может ее владелец или сотрудник
func (s *Service) GetByID(ctx context.Context, id, userID int64, isStaff bool) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !isStaff && !reservation.IsOwnedBy(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает брони с фильтрацией по дате, статусу и столу
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations")

	filter, err := req.ToDomainFilter(s.location)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// ListByOwner получает брони пользователя, включая отмененные
func (s *Service) ListByOwner(ctx context.Context, userID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByOwner: fetching reservations for user=%d", userID)

	reservations, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{
		OwnerID:         &userID,
		IncludeCanceled: true,
	})
	if err != nil {
		s.logger.Error("ListByOwner: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByOwner - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// Delete удаляет бронь
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// ChangeStatus меняет статус брони сотрудником.
// confirmed и canceled выполняются через те же use case, что и у гостя;
// вернуть бронь в pending нельзя
func (s *Service) ChangeStatus(ctx context.Context, id int64, req *models.ChangeStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("ChangeStatus: reservation id=%d to status=%s by user=%d", id, req.Status, req.UserID)

	status, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("ChangeStatus: %v", err)
		return nil, err
	}

	var reservation *domain.Reservation
	switch status {
	case domain.StatusConfirmed:
		reservation, err = s.confirm.Execute(ctx, &confirm_reservation.Request{
			ReservationID: id,
			UserID:        req.UserID,
			IsStaff:       true,
		})
	case domain.StatusCanceled:
		reservation, err = s.cancel.Execute(ctx, &cancel_reservation.Request{
			ReservationID: id,
			UserID:        req.UserID,
			IsStaff:       true,
		})
	default:
		err = fmt.Errorf("%w: reservation can not be moved back to %s", domain.ErrInvalidStatus, status)
		s.logger.Warn("ChangeStatus: %v", err)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("ChangeStatus: reservation id=%d is %s", id, reservation.Status)
	return models.FromDomainReservation(reservation), nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return reservation, nil
}
