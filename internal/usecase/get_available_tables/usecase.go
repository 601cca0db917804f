package get_available_tables

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/availability"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// UseCase use case для получения свободных столов
type UseCase struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	policy          availability.Policy
	hours           Hours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	policy availability.Policy,
	hours Hours,
	logger Logger,
) (*UseCase, error) {
	if err := validateHours(hours); err != nil {
		return nil, fmt.Errorf("get_available_tables: %w", err)
	}
	return &UseCase{
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		policy:          policy,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}, nil
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute проверяет каждый стол на заданное время теми же правилами, что и создание брони.
// Без времени для каждого стола подбираются все допустимые времена начала в часы работы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	at := "any"
	if req.Time != nil {
		at = req.Time.String()
	}
	uc.logger.Info("GetAvailableTables: date=%s, time=%s, guests=%d",
		req.Date.Format(domain.DateFormat), at, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTables: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	date := domain.DateOnly(req.Date)

	// 2. Столы и брони на дату одним запросом
	tables, err := uc.tableRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %w", ErrInternal, err)
	}

	reservations, err := uc.reservationRepo.ActiveForDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
	}

	byTable := make(map[int64][]*domain.Reservation, len(tables))
	for _, r := range reservations {
		byTable[r.TableID] = append(byTable[r.TableID], r)
	}

	// 3. Проверка каждого стола
	resp := &Response{
		Date:   date,
		Time:   req.Time,
		Guests: req.Guests,
		Tables: make([]TableAvailability, 0, len(tables)),
	}

	free := 0
	for _, table := range tables {
		item := uc.checkTable(table, byTable[table.ID], date, req, now)
		if item.Available {
			free++
		}
		resp.Tables = append(resp.Tables, item)
	}

	uc.logger.Info("GetAvailableTables: %d of %d tables available", free, len(tables))
	return resp, nil
}

// checkTable проверяет один стол на запрошенное время или подбирает свободные времена
func (uc *UseCase) checkTable(
	table *domain.Table,
	existing []*domain.Reservation,
	date time.Time,
	req *Request,
	now time.Time,
) TableAvailability {
	proposal := availability.Proposal{
		TableID:     table.ID,
		TableNumber: table.Number,
		Capacity:    table.Capacity,
		Date:        date,
		Guests:      req.Guests,
	}

	if req.Time != nil {
		proposal.Time = *req.Time
		err := uc.policy.Check(proposal, existing, now)
		return TableAvailability{AvailableTable: domain.AvailableTable{
			Table:     table,
			Available: err == nil,
			Reason:    availability.ReasonCode(err),
		}}
	}

	item := TableAvailability{AvailableTable: domain.AvailableTable{Table: table}}
	for _, at := range uc.candidateTimes() {
		proposal.Time = at
		err := uc.policy.Check(proposal, existing, now)
		if err == nil {
			item.FreeTimes = append(item.FreeTimes, at)
			continue
		}
		if item.Reason == "" {
			item.Reason = availability.ReasonCode(err)
		}
	}
	item.Available = len(item.FreeTimes) > 0
	if item.Available {
		item.Reason = ""
	}
	return item
}

// candidateTimes времена начала от открытия с шагом Step, при которых слот заканчивается до закрытия
func (uc *UseCase) candidateTimes() []types.TimeString {
	slot := int(uc.policy.SlotDuration.Minutes())
	step := int(uc.hours.Step.Minutes())
	if step <= 0 {
		return nil
	}

	var result []types.TimeString
	for m := uc.hours.Open.Minutes(); m+slot <= uc.hours.Close.Minutes(); m += step {
		result = append(result, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}
	return result
}
