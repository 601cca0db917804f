package domain

import "time"

// TableStatus информационный статус стола.
// Реальная доступность вычисляется по пересечению активных бронирований
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
)

// Table стол ресторана
type Table struct {
	ID        int64
	Number    string
	Capacity  int
	Status    TableStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fits возвращает true, если стол вмещает указанное количество гостей
func (t *Table) Fits(guests int) bool {
	return guests <= t.Capacity
}

// AvailableTable стол с результатом проверки доступности на конкретный слот
type AvailableTable struct {
	Table     *Table
	Available bool
	Reason    string // код причины отказа, пусто если стол свободен
}
