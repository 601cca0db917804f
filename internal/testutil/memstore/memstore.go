// Package memstore хранилище столов и броней в памяти для тестов use case.
// Транзакции сериализуются мьютексом и откатываются при ошибке.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/table"
)

// Ошибки совпадают с ошибками postgres-репозиториев
var (
	ErrTableNotFound       = tableRepo.ErrTableNotFound
	ErrReservationNotFound = reservationRepo.ErrReservationNotFound

	// errUnknownTable внешний ключ брони на несуществующий стол
	errUnknownTable = reservationRepo.ErrTableNotFound
)

// Store общее состояние
type Store struct {
	txMu sync.Mutex // держится на время транзакции
	mu   sync.Mutex // защищает данные

	tables       map[int64]*domain.Table
	reservations map[int64]*domain.Reservation
	nextID       int64

	// Calls счетчик вызовов по имени метода
	Calls map[string]int
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		tables:       make(map[int64]*domain.Table),
		reservations: make(map[int64]*domain.Reservation),
		nextID:       100,
		Calls:        make(map[string]int),
	}
}

// AddTable добавляет стол
func (s *Store) AddTable(id int64, number string, capacity int) *domain.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &domain.Table{ID: id, Number: number, Capacity: capacity, Status: domain.TableAvailable}
	s.tables[id] = t
	return copyTable(t)
}

// AddReservation добавляет бронь как есть
func (s *Store) AddReservation(r domain.Reservation) *domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == 0 {
		s.nextID++
		r.ID = s.nextID
	}
	s.reservations[r.ID] = &r
	return copyReservation(&r)
}

// Table текущее состояние стола
func (s *Store) Table(id int64) *domain.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tables[id]; ok {
		return copyTable(t)
	}
	return nil
}

// Reservation текущее состояние брони
func (s *Store) Reservation(id int64) *domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.reservations[id]; ok {
		return copyReservation(r)
	}
	return nil
}

// Reservations все брони
func (s *Store) Reservations() []*domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*domain.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		result = append(result, copyReservation(r))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *Store) call(name string) {
	s.Calls[name]++
}

// TxManager менеджер транзакций поверх Store
type TxManager struct {
	store *Store
}

// TxManager возвращает менеджер транзакций
func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	s := m.store
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	tables := make(map[int64]*domain.Table, len(s.tables))
	for id, t := range s.tables {
		tables[id] = copyTable(t)
	}
	reservations := make(map[int64]*domain.Reservation, len(s.reservations))
	for id, r := range s.reservations {
		reservations[id] = copyReservation(r)
	}
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.tables = tables
		s.reservations = reservations
		s.mu.Unlock()
		return err
	}
	return nil
}

// Tables репозиторий столов
type Tables struct {
	store *Store
}

// Tables возвращает репозиторий столов
func (s *Store) Tables() *Tables {
	return &Tables{store: s}
}

func (t *Tables) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.call("Tables.GetByID")
	table, ok := s.tables[id]
	if !ok {
		return nil, ErrTableNotFound
	}
	return copyTable(table), nil
}

func (t *Tables) LockByID(ctx context.Context, id int64) (*domain.Table, error) {
	return t.GetByID(ctx, id)
}

func (t *Tables) List(_ context.Context) ([]*domain.Table, error) {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*domain.Table, 0, len(s.tables))
	for _, table := range s.tables {
		result = append(result, copyTable(table))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

func (t *Tables) UpdateStatus(_ context.Context, id int64, status domain.TableStatus) error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.call("Tables.UpdateStatus")
	table, ok := s.tables[id]
	if !ok {
		return ErrTableNotFound
	}
	table.Status = status
	return nil
}

// Reservations репозиторий броней
type Reservations struct {
	store *Store
}

// ReservationRepo возвращает репозиторий броней
func (s *Store) ReservationRepo() *Reservations {
	return &Reservations{store: s}
}

func (r *Reservations) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.call("Reservations.Create")
	if _, ok := s.tables[reservation.TableID]; !ok {
		return nil, errUnknownTable
	}
	s.nextID++
	reservation.ID = s.nextID
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = reservation.CreatedAt
	s.reservations[reservation.ID] = copyReservation(reservation)
	return reservation, nil
}

func (r *Reservations) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	reservation, ok := s.reservations[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	result := copyReservation(reservation)
	if table, ok := s.tables[result.TableID]; ok {
		result.TableNumber = table.Number
	}
	return result, nil
}

func (r *Reservations) ActiveForTableAndDate(_ context.Context, tableID int64, date time.Time) ([]*domain.Reservation, error) {
	return r.filter(func(res *domain.Reservation) bool {
		return res.TableID == tableID && sameDay(res.Date, date) && !res.IsCanceled()
	}), nil
}

func (r *Reservations) ActiveForDate(_ context.Context, date time.Time) ([]*domain.Reservation, error) {
	return r.filter(func(res *domain.Reservation) bool {
		return sameDay(res.Date, date) && !res.IsCanceled()
	}), nil
}

func (r *Reservations) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return r.filter(func(res *domain.Reservation) bool {
		if filter.TableID != nil && res.TableID != *filter.TableID {
			return false
		}
		if filter.OwnerID != nil && !res.IsOwnedBy(*filter.OwnerID) {
			return false
		}
		if filter.Date != nil && !sameDay(res.Date, *filter.Date) {
			return false
		}
		if filter.Status != nil {
			return res.Status == *filter.Status
		}
		return filter.IncludeCanceled || !res.IsCanceled()
	}), nil
}

func (r *Reservations) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus, isActive bool) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.call("Reservations.UpdateStatus")
	reservation, ok := s.reservations[id]
	if !ok {
		return ErrReservationNotFound
	}
	reservation.Status = status
	reservation.IsActive = isActive
	return nil
}

func (r *Reservations) Update(_ context.Context, reservation *domain.Reservation) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.call("Reservations.Update")
	stored, ok := s.reservations[reservation.ID]
	if !ok {
		return ErrReservationNotFound
	}
	if _, ok := s.tables[reservation.TableID]; !ok {
		return errUnknownTable
	}
	stored.TableID = reservation.TableID
	stored.Name = reservation.Name
	stored.Email = reservation.Email
	stored.Phone = reservation.Phone
	stored.Date = reservation.Date
	stored.Time = reservation.Time
	stored.Guests = reservation.Guests
	return nil
}

func (r *Reservations) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[id]; !ok {
		return ErrReservationNotFound
	}
	delete(s.reservations, id)
	return nil
}

func (r *Reservations) filter(keep func(*domain.Reservation) bool) []*domain.Reservation {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*domain.Reservation, 0)
	for _, res := range s.reservations {
		if keep(res) {
			c := copyReservation(res)
			if table, ok := s.tables[c.TableID]; ok {
				c.TableNumber = table.Number
			}
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func copyTable(t *domain.Table) *domain.Table {
	c := *t
	return &c
}

func copyReservation(r *domain.Reservation) *domain.Reservation {
	c := *r
	return &c
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
