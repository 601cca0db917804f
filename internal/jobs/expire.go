package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrExpire возвращается, когда не удалось снять просроченные брони
var ErrExpire = errors.New("jobs: expire reservations failed")

// ExpireReservations снимает флаг is_active с закончившихся броней
// и освобождает столы, на которых сегодня больше нет броней
type ExpireReservations struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	txManager       TransactionManager
	slot            time.Duration
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewExpireReservations создает задачу. location - часовой пояс ресторана
func NewExpireReservations(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	txManager TransactionManager,
	slot time.Duration,
	location *time.Location,
	logger Logger,
) *ExpireReservations {
	if location == nil {
		location = time.Local
	}
	return &ExpireReservations{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		txManager:       txManager,
		slot:            slot,
		location:        location,
		timeProvider:    realTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (j *ExpireReservations) WithTimeProvider(tp TimeProvider) *ExpireReservations {
	j.timeProvider = tp
	return j
}

// Name имя задачи для планировщика
func (j *ExpireReservations) Name() string {
	return "expire-reservations"
}

// Run выполняет один проход
func (j *ExpireReservations) Run(ctx context.Context) error {
	now := j.timeProvider.Now().In(j.location)
	// Брони хранятся в локальном времени ресторана без пояса
	wall := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), 0, time.UTC)

	var expired, released int64
	err := j.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		expired, err = j.reservationRepo.ExpirePast(txCtx, wall, j.slot)
		if err != nil {
			return fmt.Errorf("expire past: %w", err)
		}

		released, err = j.tableRepo.ReleaseIdle(txCtx, wall)
		if err != nil {
			return fmt.Errorf("release idle tables: %w", err)
		}
		return nil
	})
	if err != nil {
		j.logger.Error("ExpireReservations: %v", err)
		return fmt.Errorf("%w: %w", ErrExpire, err)
	}

	if expired > 0 || released > 0 {
		j.logger.Info("ExpireReservations: expired=%d reservations, released=%d tables", expired, released)
	}
	return nil
}
