package get_available_tables

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	getAvailableTables "github.com/m04kA/SMC-RestaurantService/internal/usecase/get_available_tables"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// AvailableTablesResponse HTTP response model
type AvailableTablesResponse struct {
	Date   string                   `json:"date"`
	Time   *string                  `json:"time,omitempty"`
	Guests int                      `json:"guests"`
	Tables []TableAvailabilityModel `json:"tables"`
}

// TableAvailabilityModel стол и результат проверки
type TableAvailabilityModel struct {
	ID        int64    `json:"id"`
	Number    string   `json:"number"`
	Capacity  int      `json:"capacity"`
	Available bool     `json:"available"`
	Reason    string   `json:"reason,omitempty"`
	FreeTimes []string `json:"freeTimes,omitempty"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(dateStr, timeStr, guestsStr string) (*getAvailableTables.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	guests := 1
	if guestsStr != "" {
		guests, err = strconv.Atoi(guestsStr)
		if err != nil || guests <= 0 {
			return nil, fmt.Errorf("invalid guests %q", guestsStr)
		}
	}

	req := &getAvailableTables.Request{Date: date, Guests: guests}
	if timeStr != "" {
		start, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q: %w", timeStr, err)
		}
		req.Time = &start
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTables.Response) *AvailableTablesResponse {
	result := &AvailableTablesResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Guests: resp.Guests,
		Tables: make([]TableAvailabilityModel, 0, len(resp.Tables)),
	}
	if resp.Time != nil {
		t := resp.Time.String()
		result.Time = &t
	}

	for _, t := range resp.Tables {
		model := TableAvailabilityModel{
			ID:        t.Table.ID,
			Number:    t.Table.Number,
			Capacity:  t.Table.Capacity,
			Available: t.Available,
			Reason:    t.Reason,
		}
		for _, free := range t.FreeTimes {
			model.FreeTimes = append(model.FreeTimes, free.String())
		}
		result.Tables = append(result.Tables, model)
	}

	return result
}
