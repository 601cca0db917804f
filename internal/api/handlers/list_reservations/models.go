package list_reservations

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
)

// ToListRequest собирает фильтр из query параметров: date, status, tableId, includeCanceled
func ToListRequest(query url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if date := query.Get("date"); date != "" {
		req.Date = &date
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if raw := query.Get("tableId"); raw != "" {
		tableID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || tableID <= 0 {
			return nil, fmt.Errorf("invalid tableId %q", raw)
		}
		req.TableID = &tableID
	}
	if raw := query.Get("includeCanceled"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCanceled %q", raw)
		}
		req.IncludeCanceled = include
	}

	return req, nil
}
