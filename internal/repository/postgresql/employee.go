package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/employee"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, company_id, user_id, full_name, position, employment_status, daily_hours
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, company_id, user_id, full_name, position, employment_status,
				  daily_hours, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.CompanyID,
		newEmployee.UserID,
		newEmployee.FullName,
		newEmployee.Position,
		string(newEmployee.EmploymentStatus),
		newEmployee.DailyHours,
	).Scan(
		&created.ID,
		&created.CompanyID,
		&created.UserID,
		&created.FullName,
		&created.Position,
		&created.EmploymentStatus,
		&created.DailyHours,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, user_id, full_name, position, employment_status,
			   daily_hours, created_at, updated_at
		FROM employees
		WHERE id = $1 AND company_id = $2
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&found.ID,
		&found.CompanyID,
		&found.UserID,
		&found.FullName,
		&found.Position,
		&found.EmploymentStatus,
		&found.DailyHours,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// ListActiveByCompanyID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, user_id, full_name, position, employment_status,
			   daily_hours, created_at, updated_at
		FROM employees
		WHERE company_id = $1 AND employment_status = 'active'
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID,
			&e.CompanyID,
			&e.UserID,
			&e.FullName,
			&e.Position,
			&e.EmploymentStatus,
			&e.DailyHours,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// SetEmploymentStatus implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetEmploymentStatus(ctx context.Context, id string, companyID string, status employee.EmploymentStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET employment_status = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3
	`

	tag, err := q.Exec(ctx, query, string(status), id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
