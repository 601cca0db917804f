package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	pkgmetrics "github.com/m04kA/SMC-RestaurantService/pkg/metrics"
)

// UseCase use case для отмены брони
type UseCase struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	notifier        Notifier
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = (*pkgmetrics.Metrics)(nil)
	}
	return &UseCase{
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute отменяет бронь: статус canceled, is_active = false.
// Стол брони возвращается в available независимо от прежнего статуса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("CancelReservation: reservation=%d, user=%d, staff=%t", req.ReservationID, req.UserID, req.IsStaff)

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return fmt.Errorf("%w: id=%d", ErrReservationNotFound, req.ReservationID)
			}
			return fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
		}

		if !req.IsStaff && !reservation.IsOwnedBy(req.UserID) {
			return ErrAccessDenied
		}

		if err := domain.CanTransition(reservation.Status, domain.StatusCanceled); err != nil {
			return err
		}

		if err := uc.reservationRepo.UpdateStatus(txCtx, reservation.ID, domain.StatusCanceled, false); err != nil {
			return fmt.Errorf("%w: failed to update reservation status: %w", ErrInternal, err)
		}

		if _, err := uc.tableRepo.LockByID(txCtx, reservation.TableID); err != nil {
			return fmt.Errorf("%w: failed to lock table: %w", ErrInternal, err)
		}
		if err := uc.tableRepo.UpdateStatus(txCtx, reservation.TableID, domain.TableAvailable); err != nil {
			return fmt.Errorf("%w: failed to update table status: %w", ErrInternal, err)
		}

		reservation.Status = domain.StatusCanceled
		reservation.IsActive = false
		result = reservation
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound), errors.Is(err, ErrAccessDenied), errors.Is(err, domain.ErrInvalidStatus):
			uc.logger.Warn("CancelReservation: %v", err)
		default:
			uc.logger.Error("CancelReservation: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CancelReservation: reservation id=%d canceled", result.ID)
	uc.metrics.RecordStatusTransition(string(domain.StatusCanceled))

	if uc.notifier != nil {
		uc.notifier.ReservationStatusChanged(ctx, result)
	}

	return result, nil
}
