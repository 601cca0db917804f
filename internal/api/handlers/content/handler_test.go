package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	contentService "github.com/m04kA/SMC-RestaurantService/internal/service/content"
	"github.com/m04kA/SMC-RestaurantService/internal/service/content/models"
	"github.com/m04kA/SMC-RestaurantService/internal/testutil"
)

type fakeService struct {
	ContentService

	vegan    *bool
	createFn func(*models.ServiceRequest) (*models.ServiceResponse, error)
}

func (f *fakeService) ListMenu(_ context.Context, vegan *bool) ([]models.MenuItemResponse, error) {
	f.vegan = vegan
	return []models.MenuItemResponse{{ID: 1, Image: "menu/salad.png", IsVegan: true}}, nil
}

func (f *fakeService) CreateService(_ context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	return f.createFn(req)
}

func (f *fakeService) GetEmployee(_ context.Context, id int64) (*models.EmployeeResponse, error) {
	if id != 5 {
		return nil, contentService.ErrNotFound
	}
	return &models.EmployeeResponse{ID: 5, FirstName: "Ирина", Position: "шеф"}, nil
}

func (f *fakeService) DeleteMenuItem(_ context.Context, _ int64) error {
	return fmt.Errorf("%w: db down", contentService.ErrInternal)
}

func newRouter(svc ContentService) *mux.Router {
	h := NewHandler(svc, &testutil.Logger{})
	r := mux.NewRouter()
	r.HandleFunc("/menu", h.ListMenu).Methods(http.MethodGet)
	r.HandleFunc("/menu/{id}", h.DeleteMenuItem).Methods(http.MethodDelete)
	r.HandleFunc("/services", h.CreateService).Methods(http.MethodPost)
	r.HandleFunc("/employees/{id}", h.GetEmployee).Methods(http.MethodGet)
	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestListMenu_VeganFilter(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(svc)

	rec := serve(r, http.MethodGet, "/menu?vegan=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.vegan)
	assert.True(t, *svc.vegan)

	rec = serve(r, http.MethodGet, "/menu", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.vegan)

	rec = serve(r, http.MethodGet, "/menu?vegan=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateService(t *testing.T) {
	svc := &fakeService{createFn: func(req *models.ServiceRequest) (*models.ServiceResponse, error) {
		if req.Detail != nil && strings.Contains(*req.Detail, "казино") {
			return nil, fmt.Errorf("%w: detail", contentService.ErrBannedWord)
		}
		return &models.ServiceResponse{ID: 7, Name: req.Name}, nil
	}}
	r := newRouter(svc)

	rec := serve(r, http.MethodPost, "/services", `{"name":"Банкеты","detail":"Залы до 40 гостей"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(r, http.MethodPost, "/services", `{"name":"Вечер","detail":"Вечер казино"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, codeBannedWord, body.Code)
}

func TestGetEmployee_NotFound(t *testing.T) {
	r := newRouter(&fakeService{})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/employees/5", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/employees/6", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/employees/x", "").Code)
}

func TestDeleteMenuItem_Internal(t *testing.T) {
	rec := serve(newRouter(&fakeService{}), http.MethodDelete, "/menu/1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
