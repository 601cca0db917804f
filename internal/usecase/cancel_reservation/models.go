package cancel_reservation

// Request модель запроса на отмену брони
type Request struct {
	ReservationID int64
	UserID        int64
	IsStaff       bool
}
