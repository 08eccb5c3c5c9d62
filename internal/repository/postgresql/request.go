package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/request"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/database"
)

type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) request.RecordRepository {
	return &recordRepositoryImpl{db: db}
}

// Create implements request.RecordRepository.
func (r *recordRepositoryImpl) Create(ctx context.Context, record request.Record) (request.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_requests (
			id, company_id, employee_id, type, status, start_date, end_date, reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, company_id, employee_id, type, status, start_date, end_date, reason,
				  decided_by, decided_at, rejection_reason, created_at, updated_at
	`

	var created request.Record
	err := q.QueryRow(ctx, query,
		record.ID,
		record.CompanyID,
		record.EmployeeID,
		string(record.Type),
		string(record.Status),
		record.StartDate,
		record.EndDate,
		record.Reason,
	).Scan(
		&created.ID,
		&created.CompanyID,
		&created.EmployeeID,
		&created.Type,
		&created.Status,
		&created.StartDate,
		&created.EndDate,
		&created.Reason,
		&created.DecidedBy,
		&created.DecidedAt,
		&created.RejectionReason,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return request.Record{}, err
	}

	return created, nil
}

// GetByID implements request.RecordRepository.
func (r *recordRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (request.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.company_id, ar.employee_id, ar.type, ar.status, ar.start_date,
			   ar.end_date, ar.reason, ar.decided_by, ar.decided_at, ar.rejection_reason,
			   ar.created_at, ar.updated_at, e.full_name
		FROM attendance_requests ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.id = $1 AND ar.company_id = $2
	`

	var found request.Record
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&found.ID,
		&found.CompanyID,
		&found.EmployeeID,
		&found.Type,
		&found.Status,
		&found.StartDate,
		&found.EndDate,
		&found.Reason,
		&found.DecidedBy,
		&found.DecidedAt,
		&found.RejectionReason,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return request.Record{}, request.ErrRequestNotFound
		}
		return request.Record{}, err
	}

	return found, nil
}

// UpdateDecision implements request.RecordRepository.
func (r *recordRepositoryImpl) UpdateDecision(ctx context.Context, record request.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_requests
		SET status = $1, decided_by = $2, decided_at = $3, rejection_reason = $4,
			updated_at = NOW()
		WHERE id = $5 AND company_id = $6
	`

	tag, err := q.Exec(ctx, query,
		string(record.Status),
		record.DecidedBy,
		record.DecidedAt,
		record.RejectionReason,
		record.ID,
		record.CompanyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}

	return nil
}

// List implements request.RecordRepository.
func (r *recordRepositoryImpl) List(ctx context.Context, filter request.ListFilter, companyID string) ([]request.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"ar.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("ar.employee_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("ar.type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("ar.status = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM attendance_requests ar
		WHERE %s
	`, where)

	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)

	listQuery := fmt.Sprintf(`
		SELECT ar.id, ar.company_id, ar.employee_id, ar.type, ar.status, ar.start_date,
			   ar.end_date, ar.reason, ar.decided_by, ar.decided_at, ar.rejection_reason,
			   ar.created_at, ar.updated_at, e.full_name
		FROM attendance_requests ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE %s
		ORDER BY ar.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records, err := scanRecords(rows, true)
	if err != nil {
		return nil, 0, err
	}

	return records, totalCount, nil
}

// ListByEmployee implements request.RecordRepository.
func (r *recordRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]request.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, type, status, start_date, end_date, reason,
			   decided_by, decided_at, rejection_reason, created_at, updated_at
		FROM attendance_requests
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows, false)
}

// ListOverlappingRange implements request.RecordRepository.
func (r *recordRepositoryImpl) ListOverlappingRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]request.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, type, status, start_date, end_date, reason,
			   decided_by, decided_at, rejection_reason, created_at, updated_at
		FROM attendance_requests
		WHERE employee_id = $1 AND company_id = $2
		  AND start_date <= $3 AND end_date >= $4
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, to, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows, false)
}

// ListOverlappingDateForCompany implements request.RecordRepository.
func (r *recordRepositoryImpl) ListOverlappingDateForCompany(ctx context.Context, companyID string, date time.Time) ([]request.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, type, status, start_date, end_date, reason,
			   decided_by, decided_at, rejection_reason, created_at, updated_at
		FROM attendance_requests
		WHERE company_id = $1
		  AND start_date <= $2 AND end_date >= $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, companyID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows, false)
}

func scanRecords(rows pgx.Rows, withEmployeeName bool) ([]request.Record, error) {
	var records []request.Record
	for rows.Next() {
		var rec request.Record
		dest := []interface{}{
			&rec.ID,
			&rec.CompanyID,
			&rec.EmployeeID,
			&rec.Type,
			&rec.Status,
			&rec.StartDate,
			&rec.EndDate,
			&rec.Reason,
			&rec.DecidedBy,
			&rec.DecidedAt,
			&rec.RejectionReason,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		}
		if withEmployeeName {
			dest = append(dest, &rec.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
