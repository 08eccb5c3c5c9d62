package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/attendance"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/database"
)

type factRepositoryImpl struct {
	db *database.DB
}

func NewFactRepository(db *database.DB) attendance.FactRepository {
	return &factRepositoryImpl{db: db}
}

// Create implements attendance.FactRepository.
func (r *factRepositoryImpl) Create(ctx context.Context, fact attendance.Fact) (attendance.Fact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_facts (
			id, employee_id, company_id, date, hours_worked, hours_expected
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, company_id, date, first_check_in, last_check_out,
				  hours_worked, hours_expected, raw_status, created_at, updated_at
	`

	var created attendance.Fact
	err := q.QueryRow(ctx, query,
		fact.ID,
		fact.EmployeeID,
		fact.CompanyID,
		fact.Date,
		fact.HoursWorked,
		fact.HoursExpected,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.CompanyID,
		&created.Date,
		&created.FirstCheckIn,
		&created.LastCheckOut,
		&created.HoursWorked,
		&created.HoursExpected,
		&created.RawStatus,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return attendance.Fact{}, err
	}

	return created, nil
}

// GetByEmployeeAndDate implements attendance.FactRepository.
func (r *factRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.Fact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, first_check_in, last_check_out,
			   hours_worked, hours_expected, raw_status, created_at, updated_at
		FROM attendance_facts
		WHERE employee_id = $1 AND date = $2 AND company_id = $3
	`

	var found attendance.Fact
	err := q.QueryRow(ctx, query, employeeID, date, companyID).Scan(
		&found.ID,
		&found.EmployeeID,
		&found.CompanyID,
		&found.Date,
		&found.FirstCheckIn,
		&found.LastCheckOut,
		&found.HoursWorked,
		&found.HoursExpected,
		&found.RawStatus,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadEvents(ctx, []*attendance.Fact{&found}); err != nil {
		return nil, err
	}

	return &found, nil
}

// ListByEmployeeAndRange implements attendance.FactRepository.
func (r *factRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.Fact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, first_check_in, last_check_out,
			   hours_worked, hours_expected, raw_status, created_at, updated_at
		FROM attendance_facts
		WHERE employee_id = $1 AND company_id = $2 AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facts, err := scanFacts(rows, false)
	if err != nil {
		return nil, err
	}

	if err := r.loadEventsForFacts(ctx, facts); err != nil {
		return nil, err
	}

	return facts, nil
}

// ListByCompanyAndDate implements attendance.FactRepository.
func (r *factRepositoryImpl) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Fact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT f.id, f.employee_id, f.company_id, f.date, f.first_check_in,
			   f.last_check_out, f.hours_worked, f.hours_expected, f.raw_status,
			   f.created_at, f.updated_at, e.full_name
		FROM attendance_facts f
		JOIN employees e ON e.id = f.employee_id
		WHERE f.company_id = $1 AND f.date = $2
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, companyID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facts, err := scanFacts(rows, true)
	if err != nil {
		return nil, err
	}

	if err := r.loadEventsForFacts(ctx, facts); err != nil {
		return nil, err
	}

	return facts, nil
}

// AppendEvent implements attendance.FactRepository.
func (r *factRepositoryImpl) AppendEvent(ctx context.Context, event attendance.CheckEvent) (attendance.CheckEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO check_events (
			id, fact_id, type, occurred_at, latitude, longitude
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, fact_id, type, occurred_at, latitude, longitude, created_at
	`

	var created attendance.CheckEvent
	err := q.QueryRow(ctx, query,
		event.ID,
		event.FactID,
		string(event.Type),
		event.OccurredAt,
		event.Latitude,
		event.Longitude,
	).Scan(
		&created.ID,
		&created.FactID,
		&created.Type,
		&created.OccurredAt,
		&created.Latitude,
		&created.Longitude,
		&created.CreatedAt,
	)
	if err != nil {
		return attendance.CheckEvent{}, err
	}

	return created, nil
}

// UpdateAggregates implements attendance.FactRepository.
func (r *factRepositoryImpl) UpdateAggregates(ctx context.Context, fact attendance.Fact) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_facts
		SET first_check_in = $1, last_check_out = $2, hours_worked = $3,
			raw_status = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6
	`

	tag, err := q.Exec(ctx, query,
		fact.FirstCheckIn,
		fact.LastCheckOut,
		fact.HoursWorked,
		fact.RawStatus,
		fact.ID,
		fact.CompanyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrFactNotFound
	}

	return nil
}

// ListByDate implements attendance.FactRepository.
func (r *factRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Fact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, first_check_in, last_check_out,
			   hours_worked, hours_expected, raw_status, created_at, updated_at
		FROM attendance_facts
		WHERE date = $1
		ORDER BY company_id, employee_id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facts, err := scanFacts(rows, false)
	if err != nil {
		return nil, err
	}

	if err := r.loadEventsForFacts(ctx, facts); err != nil {
		return nil, err
	}

	return facts, nil
}

func (r *factRepositoryImpl) loadEventsForFacts(ctx context.Context, facts []attendance.Fact) error {
	if len(facts) == 0 {
		return nil
	}
	refs := make([]*attendance.Fact, len(facts))
	for i := range facts {
		refs[i] = &facts[i]
	}
	return r.loadEvents(ctx, refs)
}

// loadEvents attaches check events to each fact, partitioned by type and
// kept in recording order.
func (r *factRepositoryImpl) loadEvents(ctx context.Context, facts []*attendance.Fact) error {
	q := GetQuerier(ctx, r.db)

	factIDs := make([]string, len(facts))
	byID := make(map[string]*attendance.Fact, len(facts))
	for i, f := range facts {
		factIDs[i] = f.ID
		byID[f.ID] = f
	}

	query := `
		SELECT id, fact_id, type, occurred_at, latitude, longitude, created_at
		FROM check_events
		WHERE fact_id = ANY($1)
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, factIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var event attendance.CheckEvent
		err := rows.Scan(
			&event.ID,
			&event.FactID,
			&event.Type,
			&event.OccurredAt,
			&event.Latitude,
			&event.Longitude,
			&event.CreatedAt,
		)
		if err != nil {
			return err
		}

		fact, ok := byID[event.FactID]
		if !ok {
			continue
		}
		switch event.Type {
		case attendance.EventCheckIn:
			fact.CheckIns = append(fact.CheckIns, event)
		case attendance.EventCheckOut:
			fact.CheckOuts = append(fact.CheckOuts, event)
		}
	}

	return rows.Err()
}

func scanFacts(rows pgx.Rows, withEmployeeName bool) ([]attendance.Fact, error) {
	var facts []attendance.Fact
	for rows.Next() {
		var f attendance.Fact
		dest := []interface{}{
			&f.ID,
			&f.EmployeeID,
			&f.CompanyID,
			&f.Date,
			&f.FirstCheckIn,
			&f.LastCheckOut,
			&f.HoursWorked,
			&f.HoursExpected,
			&f.RawStatus,
			&f.CreatedAt,
			&f.UpdatedAt,
		}
		if withEmployeeName {
			dest = append(dest, &f.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}

	return facts, rows.Err()
}
