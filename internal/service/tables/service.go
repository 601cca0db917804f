package tables

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/cache"
	tableRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/table"
	"github.com/m04kA/SMC-RestaurantService/internal/service/tables/models"
)

// Service сервис управления столами
type Service struct {
	tableRepo TableRepository
	cache     CacheInvalidator
	logger    Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(tableRepo TableRepository, cache CacheInvalidator, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		cache:     cache,
		logger:    logger,
	}
}

// Create создает стол в статусе available
func (s *Service) Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Create: creating table number=%s, capacity=%d", req.Number, req.Capacity)

	table := &domain.Table{Number: strings.TrimSpace(req.Number), Capacity: req.Capacity}
	if err := validateTable(table); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.tableRepo.Create(ctx, table)
	if err != nil {
		return nil, s.mapError("Create", table.ID, err)
	}

	s.invalidate(ctx)
	s.logger.Info("Create: successfully created table id=%d", created.ID)
	return models.FromDomainTable(created), nil
}

// GetByID получает стол по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TableResponse, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainTable(table), nil
}

// List получает все столы
func (s *Service) List(ctx context.Context) (*models.TableListResponse, error) {
	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		return nil, s.mapError("List", 0, err)
	}
	return models.FromDomainTableList(tables), nil
}

// Update меняет номер и вместимость стола
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Update: updating table id=%d", id)

	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}

	if req.Number != nil {
		table.Number = strings.TrimSpace(*req.Number)
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if err := validateTable(table); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.tableRepo.Update(ctx, table)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}

	s.invalidate(ctx)
	s.logger.Info("Update: successfully updated table id=%d", id)
	return models.FromDomainTable(updated), nil
}

// Delete удаляет стол вместе с его бронями
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting table id=%d", id)

	if err := s.tableRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}

	s.invalidate(ctx)
	s.logger.Info("Delete: successfully deleted table id=%d", id)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.KeyHomePage); err != nil {
		s.logger.Warn("failed to invalidate home page cache: %v", err)
	}
}

func (s *Service) mapError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, tableRepo.ErrTableNotFound):
		s.logger.Warn("%s: table id=%d not found", op, id)
		return ErrTableNotFound
	case errors.Is(err, tableRepo.ErrTableNumberTaken):
		s.logger.Warn("%s: %v", op, err)
		return fmt.Errorf("%w: %w", ErrTableNumberTaken, err)
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}

func validateTable(t *domain.Table) error {
	if t.Number == "" || utf8.RuneCountInString(t.Number) > domain.MaxTableNumberLength {
		return fmt.Errorf("%w: number must be 1..%d characters", ErrInvalidInput, domain.MaxTableNumberLength)
	}
	if t.Capacity < domain.MinTableCapacity || t.Capacity > domain.MaxTableCapacity {
		return fmt.Errorf("%w: capacity must be in %d..%d", ErrInvalidInput, domain.MinTableCapacity, domain.MaxTableCapacity)
	}
	return nil
}
