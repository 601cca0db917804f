package confirm_reservation

// Request модель запроса на подтверждение брони
type Request struct {
	ReservationID int64
	UserID        int64
	IsStaff       bool
}
