package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	tableRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/table"
	pkgmetrics "github.com/m04kA/SMC-RestaurantService/pkg/metrics"
)

// UseCase use case для создания бронирования
type UseCase struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	policy          availability.Policy
	notifier        Notifier
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
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute создает бронь в статусе pending, если стол свободен.
// Проверка и вставка выполняются в сериализуемой транзакции под блокировкой строки стола,
// поэтому две одновременные брони одного слота не могут пройти обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("CreateReservation: table=%d, date=%s, time=%s, guests=%d",
		req.TableID, req.Date.Format(domain.DateFormat), req.Time, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Reservation

	// 2. Проверка доступности и вставка под блокировкой стола
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		table, err := uc.tableRepo.LockByID(txCtx, req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				return fmt.Errorf("%w: id=%d", ErrTableNotFound, req.TableID)
			}
			return fmt.Errorf("%w: failed to lock table: %w", ErrInternal, err)
		}

		existing, err := uc.reservationRepo.ActiveForTableAndDate(txCtx, table.ID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		proposal := availability.Proposal{
			TableID:     table.ID,
			TableNumber: table.Number,
			Capacity:    table.Capacity,
			Date:        req.Date,
			Time:        req.Time,
			Guests:      req.Guests,
		}
		if err := uc.policy.Check(proposal, existing, now); err != nil {
			return err
		}

		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			TableID:  table.ID,
			OwnerID:  req.OwnerID,
			Name:     strings.TrimSpace(req.Name),
			Email:    strings.TrimSpace(req.Email),
			Phone:    req.Phone,
			Date:     domain.DateOnly(req.Date),
			Time:     req.Time,
			Guests:   req.Guests,
			IsActive: true,
			Status:   domain.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		created.TableNumber = table.Number
		result = created
		return nil
	})

	if err != nil {
		if reason := availability.ReasonCode(err); reason != "" {
			uc.logger.Warn("CreateReservation: rejected %s: %v", reason, err)
			uc.metrics.RecordReservationRejected(reason)
			return nil, err
		}
		if errors.Is(err, ErrTableNotFound) {
			uc.logger.Warn("CreateReservation: %v", err)
			uc.metrics.RecordReservationRejected(availability.ReasonNotFound)
			return nil, err
		}
		uc.logger.Error("CreateReservation: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)
	uc.metrics.RecordReservationCreated()

	if uc.notifier != nil {
		uc.notifier.ReservationCreated(ctx, result)
	}

	return result, nil
}
