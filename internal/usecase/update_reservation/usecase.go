package update_reservation

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

// UseCase use case для изменения брони
type UseCase struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	policy          availability.Policy
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	policy availability.Policy,
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
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute меняет стол, дату, время, гостей или контакты неотмененной брони.
// При изменении слота проверка доступности выполняется заново без учета самой брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("UpdateReservation: reservation=%d, user=%d, staff=%t", req.ReservationID, req.UserID, req.IsStaff)

	now := uc.timeProvider.Now()

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return fmt.Errorf("%w: id=%d", ErrReservationNotFound, req.ReservationID)
			}
			return fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
		}

		if !req.IsStaff && !current.IsOwnedBy(req.UserID) {
			return ErrAccessDenied
		}

		if current.IsCanceled() {
			return fmt.Errorf("%w: canceled reservation can not be changed", domain.ErrInvalidStatus)
		}

		updated, err := apply(req, *current)
		if err != nil {
			return err
		}

		tableMoved := updated.TableID != current.TableID

		if req.changesSlot() {
			table, err := uc.lockTables(txCtx, current.TableID, updated.TableID)
			if err != nil {
				return err
			}
			updated.TableNumber = table.Number

			existing, err := uc.reservationRepo.ActiveForTableAndDate(txCtx, table.ID, updated.Date)
			if err != nil {
				return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
			}

			proposal := availability.Proposal{
				TableID:     table.ID,
				TableNumber: table.Number,
				Capacity:    table.Capacity,
				Date:        updated.Date,
				Time:        updated.Time,
				Guests:      updated.Guests,
				ExcludeID:   updated.ID,
			}
			if err := uc.policy.Check(proposal, existing, now); err != nil {
				return err
			}
		}

		if err := uc.reservationRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, reservationRepo.ErrTableNotFound) {
				return fmt.Errorf("%w: id=%d", ErrTableNotFound, updated.TableID)
			}
			return fmt.Errorf("%w: failed to update reservation: %w", ErrInternal, err)
		}

		if tableMoved && updated.Status == domain.StatusConfirmed {
			if err := uc.tableRepo.UpdateStatus(txCtx, current.TableID, domain.TableAvailable); err != nil {
				return fmt.Errorf("%w: failed to release table: %w", ErrInternal, err)
			}
			if err := uc.tableRepo.UpdateStatus(txCtx, updated.TableID, domain.TableReserved); err != nil {
				return fmt.Errorf("%w: failed to reserve table: %w", ErrInternal, err)
			}
		}

		result = updated
		return nil
	})

	if err != nil {
		if reason := availability.ReasonCode(err); reason != "" && reason != availability.ReasonInvalidStatus {
			uc.logger.Warn("UpdateReservation: rejected %s: %v", reason, err)
			uc.metrics.RecordReservationRejected(reason)
			return nil, err
		}
		switch {
		case errors.Is(err, ErrReservationNotFound), errors.Is(err, ErrTableNotFound),
			errors.Is(err, ErrAccessDenied), errors.Is(err, ErrInvalidInput),
			errors.Is(err, domain.ErrInvalidStatus):
			uc.logger.Warn("UpdateReservation: %v", err)
		default:
			uc.logger.Error("UpdateReservation: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateReservation: reservation id=%d updated", result.ID)
	return result, nil
}

// lockTables блокирует старый и новый стол в порядке возрастания id и возвращает новый
func (uc *UseCase) lockTables(ctx context.Context, oldID, newID int64) (*domain.Table, error) {
	ids := []int64{newID}
	if oldID != newID {
		ids = []int64{oldID, newID}
		if newID < oldID {
			ids = []int64{newID, oldID}
		}
	}

	var target *domain.Table
	for _, id := range ids {
		table, err := uc.tableRepo.LockByID(ctx, id)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				return nil, fmt.Errorf("%w: id=%d", ErrTableNotFound, id)
			}
			return nil, fmt.Errorf("%w: failed to lock table: %w", ErrInternal, err)
		}
		if id == newID {
			target = table
		}
	}
	return target, nil
}
