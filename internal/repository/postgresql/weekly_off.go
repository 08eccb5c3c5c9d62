package postgresql

import (
	"context"
	"time"

	"github.com/worklens-hq/worklens-backend-go/internal/domain/schedule"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/database"
)

type weeklyOffRepositoryImpl struct {
	db *database.DB
}

func NewWeeklyOffRepository(db *database.DB) schedule.WeeklyOffRepository {
	return &weeklyOffRepositoryImpl{db: db}
}

// GetByEmployee implements schedule.WeeklyOffRepository.
func (r *weeklyOffRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string, companyID string) (schedule.WeeklyOffConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT day_of_week
		FROM weekly_off_days
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY day_of_week
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return schedule.WeeklyOffConfig{}, err
	}
	defer rows.Close()

	config := schedule.WeeklyOffConfig{
		EmployeeID: employeeID,
		CompanyID:  companyID,
	}
	for rows.Next() {
		var day int
		if err := rows.Scan(&day); err != nil {
			return schedule.WeeklyOffConfig{}, err
		}
		config.OffDays = append(config.OffDays, time.Weekday(day))
	}

	return config, rows.Err()
}

// Replace implements schedule.WeeklyOffRepository.
func (r *weeklyOffRepositoryImpl) Replace(ctx context.Context, config schedule.WeeklyOffConfig) error {
	q := GetQuerier(ctx, r.db)

	deleteQuery := `
		DELETE FROM weekly_off_days
		WHERE employee_id = $1 AND company_id = $2
	`

	if _, err := q.Exec(ctx, deleteQuery, config.EmployeeID, config.CompanyID); err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO weekly_off_days (employee_id, company_id, day_of_week)
		VALUES ($1, $2, $3)
	`

	for _, day := range config.OffDays {
		if _, err := q.Exec(ctx, insertQuery, config.EmployeeID, config.CompanyID, int(day)); err != nil {
			return err
		}
	}

	return nil
}

// GetForCompany implements schedule.WeeklyOffRepository.
func (r *weeklyOffRepositoryImpl) GetForCompany(ctx context.Context, companyID string) (map[string]schedule.WeeklyOffConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, day_of_week
		FROM weekly_off_days
		WHERE company_id = $1
		ORDER BY employee_id, day_of_week
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configs := make(map[string]schedule.WeeklyOffConfig)
	for rows.Next() {
		var employeeID string
		var day int
		if err := rows.Scan(&employeeID, &day); err != nil {
			return nil, err
		}
		config, ok := configs[employeeID]
		if !ok {
			config = schedule.WeeklyOffConfig{
				EmployeeID: employeeID,
				CompanyID:  companyID,
			}
		}
		config.OffDays = append(config.OffDays, time.Weekday(day))
		configs[employeeID] = config
	}

	return configs, rows.Err()
}
