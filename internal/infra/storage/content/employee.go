package content

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

var employeeColumns = []string{"id", "first_name", "last_name", "position", "image", "created_at"}

// CreateEmployee создает сотрудника
func (r *Repository) CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	builder := psqlbuilder.Insert("employees").
		Columns("first_name", "last_name", "position", "image").
		Values(employee.FirstName, employee.LastName, employee.Position, employee.Image).
		Suffix(returning(employeeColumns))

	return getOne(ctx, r.db, "CreateEmployee", builder, scanEmployee)
}

// GetEmployee получает сотрудника по ID
func (r *Repository) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	builder := psqlbuilder.Select(employeeColumns...).
		From("employees").
		Where(squirrel.Eq{"id": id})

	return getOne(ctx, r.db, "GetEmployee", builder, scanEmployee)
}

// ListEmployees возвращает всех сотрудников
func (r *Repository) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	builder := psqlbuilder.Select(employeeColumns...).
		From("employees").
		OrderBy("last_name ASC", "first_name ASC")

	return list(ctx, r.db, "ListEmployees", builder, scanEmployee)
}

// UpdateEmployee перезаписывает данные сотрудника
func (r *Repository) UpdateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	builder := psqlbuilder.Update("employees").
		Set("first_name", employee.FirstName).
		Set("last_name", employee.LastName).
		Set("position", employee.Position).
		Set("image", employee.Image).
		Where(squirrel.Eq{"id": employee.ID}).
		Suffix(returning(employeeColumns))

	return getOne(ctx, r.db, "UpdateEmployee", builder, scanEmployee)
}

// DeleteEmployee удаляет сотрудника
func (r *Repository) DeleteEmployee(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "employees", "DeleteEmployee", id)
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var employee domain.Employee
	if err := row.Scan(&employee.ID, &employee.FirstName, &employee.LastName, &employee.Position, &employee.Image, &employee.CreatedAt); err != nil {
		return nil, err
	}
	return &employee, nil
}
