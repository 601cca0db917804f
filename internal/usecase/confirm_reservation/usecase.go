package confirm_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/table"
	pkgmetrics "github.com/m04kA/SMC-RestaurantService/pkg/metrics"
)

// UseCase use case для подтверждения брони
type UseCase struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	policy          availability.Policy
	notifier        Notifier
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	policy availability.Policy,
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
		policy:          policy,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute переводит бронь pending -> confirmed.
// Перед подтверждением повторно проверяются пересечение и буфер: между созданием и
// подтверждением на стол могли подтвердить другую бронь. Стол помечается reserved
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("ConfirmReservation: reservation=%d, user=%d, staff=%t", req.ReservationID, req.UserID, req.IsStaff)

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

		if err := domain.CanTransition(reservation.Status, domain.StatusConfirmed); err != nil {
			return err
		}

		table, err := uc.tableRepo.LockByID(txCtx, reservation.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				return fmt.Errorf("%w: id=%d", ErrTableNotFound, reservation.TableID)
			}
			return fmt.Errorf("%w: failed to lock table: %w", ErrInternal, err)
		}

		existing, err := uc.reservationRepo.ActiveForTableAndDate(txCtx, table.ID, reservation.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		proposal := availability.Proposal{
			TableID:     table.ID,
			TableNumber: table.Number,
			Capacity:    table.Capacity,
			Date:        reservation.Date,
			Time:        reservation.Time,
			Guests:      reservation.Guests,
			ExcludeID:   reservation.ID,
		}
		if err := uc.policy.CheckSlot(proposal, existing); err != nil {
			return err
		}

		if err := uc.reservationRepo.UpdateStatus(txCtx, reservation.ID, domain.StatusConfirmed, true); err != nil {
			return fmt.Errorf("%w: failed to update reservation status: %w", ErrInternal, err)
		}
		if err := uc.tableRepo.UpdateStatus(txCtx, table.ID, domain.TableReserved); err != nil {
			return fmt.Errorf("%w: failed to update table status: %w", ErrInternal, err)
		}

		reservation.Status = domain.StatusConfirmed
		reservation.IsActive = true
		reservation.TableNumber = table.Number
		result = reservation
		return nil
	})

	if err != nil {
		if reason := availability.ReasonCode(err); reason != "" {
			uc.logger.Warn("ConfirmReservation: rejected %s: %v", reason, err)
			uc.metrics.RecordReservationRejected(reason)
			return nil, err
		}
		if errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrTableNotFound) || errors.Is(err, ErrAccessDenied) {
			uc.logger.Warn("ConfirmReservation: %v", err)
			return nil, err
		}
		uc.logger.Error("ConfirmReservation: %v", err)
		return nil, err
	}

	uc.logger.Info("ConfirmReservation: reservation id=%d confirmed, table #%s reserved", result.ID, result.TableNumber)
	uc.metrics.RecordStatusTransition(string(domain.StatusConfirmed))

	if uc.notifier != nil {
		uc.notifier.ReservationStatusChanged(ctx, result)
	}

	return result, nil
}
