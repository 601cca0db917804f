package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// Policy параметры проверки доступности стола
type Policy struct {
	SlotDuration time.Duration
	Buffer       time.Duration
	// Location часовой пояс ресторана: в нем хранятся дата и время брони.
	// nil - пояс переданного now
	Location *time.Location
}

// DefaultPolicy политика со слотом и буфером по 60 минут
func DefaultPolicy() Policy {
	return Policy{
		SlotDuration: domain.SlotDuration,
		Buffer:       domain.BufferDuration,
	}
}

// Proposal предлагаемая бронь
type Proposal struct {
	TableID     int64
	TableNumber string
	Capacity    int
	Date        time.Time
	Time        types.TimeString
	Guests      int
	ExcludeID   int64 // ID брони, которую перепроверяем (не конфликтует сама с собой)
}

type interval struct {
	start time.Time
	end   time.Time
}

// Check решает, можно ли принять бронь. Правила проверяются по порядку,
// возвращается первое нарушенное:
//  1. дата и время не в прошлом          -> ErrPastDateTime
//  2. слот не пересекается с активными   -> ErrSlotOverlap
//  3. буфер до соседних броней соблюден  -> ErrBufferViolation
//  4. гостей не больше вместимости стола -> ErrCapacityExceeded
//
// existing - брони стола на эту дату; отмененные и чужие столы/даты игнорируются
func (p Policy) Check(prop Proposal, existing []*domain.Reservation, now time.Time) error {
	loc := p.location(now.Location())
	start := prop.Time.On(prop.Date, loc)

	if start.Before(now) {
		return fmt.Errorf("%w: %s %s", ErrPastDateTime, prop.Date.Format(domain.DateFormat), prop.Time)
	}

	if err := p.checkSlot(prop, existing, loc); err != nil {
		return err
	}

	if prop.Guests > prop.Capacity {
		return fmt.Errorf("%w: table #%s seats at most %d guests", ErrCapacityExceeded, prop.TableNumber, prop.Capacity)
	}

	return nil
}

// CheckSlot проверяет только пересечение и буфер (правила 2 и 3).
// Используется при подтверждении брони, когда остальные условия уже проверены при создании
func (p Policy) CheckSlot(prop Proposal, existing []*domain.Reservation) error {
	return p.checkSlot(prop, existing, p.location(time.Local))
}

func (p Policy) location(fallback *time.Location) *time.Location {
	if p.Location != nil {
		return p.Location
	}
	return fallback
}

func (p Policy) checkSlot(prop Proposal, existing []*domain.Reservation, loc *time.Location) error {
	proposed := p.slot(prop.Time.On(prop.Date, loc))
	others := p.sameTableSameDay(prop, existing, loc)

	// Пересечение: строгие неравенства, брони "встык" не пересекаются
	for _, other := range others {
		if other.start.Before(proposed.end) && other.end.After(proposed.start) {
			return fmt.Errorf("%w: table #%s is booked %s-%s",
				ErrSlotOverlap, prop.TableNumber, other.start.Format(domain.TimeFormat), other.end.Format(domain.TimeFormat))
		}
	}

	// Буфер проверяется в обе стороны: до предыдущей и до следующей брони
	for _, other := range others {
		var gap time.Duration
		if !other.end.After(proposed.start) {
			gap = proposed.start.Sub(other.end)
		} else {
			gap = other.start.Sub(proposed.end)
		}
		if gap < p.Buffer {
			return fmt.Errorf("%w: table #%s needs %d minutes between reservations, booked %s-%s",
				ErrBufferViolation, prop.TableNumber, int(p.Buffer.Minutes()),
				other.start.Format(domain.TimeFormat), other.end.Format(domain.TimeFormat))
		}
	}

	return nil
}

func (p Policy) slot(start time.Time) interval {
	return interval{start: start, end: start.Add(p.SlotDuration)}
}

func (p Policy) sameTableSameDay(prop Proposal, existing []*domain.Reservation, loc *time.Location) []interval {
	result := make([]interval, 0, len(existing))
	for _, r := range existing {
		if r == nil || !r.CountsForAvailability() {
			continue
		}
		if r.TableID != prop.TableID || (prop.ExcludeID != 0 && r.ID == prop.ExcludeID) {
			continue
		}
		if !sameDay(r.Date, prop.Date) {
			continue
		}
		result = append(result, p.slot(r.StartAt(loc)))
	}
	return result
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
