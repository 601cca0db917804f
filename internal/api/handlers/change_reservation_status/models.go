package change_reservation_status

// ChangeStatusRequest HTTP request model
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
