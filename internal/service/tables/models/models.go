package models

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// CreateTableRequest запрос на создание стола
type CreateTableRequest struct {
	Number   string `json:"number" validate:"required,max=10"`
	Capacity int    `json:"capacity" validate:"required,min=1,max=50"`
}

// UpdateTableRequest запрос на изменение стола. nil поля не меняются
type UpdateTableRequest struct {
	Number   *string `json:"number,omitempty" validate:"omitempty,min=1,max=10"`
	Capacity *int    `json:"capacity,omitempty" validate:"omitempty,min=1,max=50"`
}

// TableResponse ответ с данными стола
type TableResponse struct {
	ID        int64     `json:"id"`
	Number    string    `json:"number"`
	Capacity  int       `json:"capacity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableListResponse ответ со списком столов
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// FromDomainTable конвертирует domain модель в DTO
func FromDomainTable(t *domain.Table) *TableResponse {
	if t == nil {
		return nil
	}
	return &TableResponse{
		ID:        t.ID,
		Number:    t.Number,
		Capacity:  t.Capacity,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FromDomainTableList конвертирует список domain моделей в DTO
func FromDomainTableList(tables []*domain.Table) *TableListResponse {
	resp := &TableListResponse{Tables: make([]TableResponse, 0, len(tables))}
	for _, t := range tables {
		resp.Tables = append(resp.Tables, *FromDomainTable(t))
	}
	return resp
}
