package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/user"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, company_id, employee_id, email, password_hash, role, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, company_id, employee_id, email, password_hash, role, is_active,
				  created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		newUser.ID,
		newUser.CompanyID,
		newUser.EmployeeID,
		newUser.Email,
		newUser.PasswordHash,
		string(newUser.Role),
		newUser.IsActive,
	).Scan(
		&created.ID,
		&created.CompanyID,
		&created.EmployeeID,
		&created.Email,
		&created.PasswordHash,
		&created.Role,
		&created.IsActive,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, email, password_hash, role, is_active,
			   created_at, updated_at
		FROM users
		WHERE id = $1 AND company_id = $2
	`

	var found user.User
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&found.ID,
		&found.CompanyID,
		&found.EmployeeID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.IsActive,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string, companyID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, email, password_hash, role, is_active,
			   created_at, updated_at
		FROM users
		WHERE email = $1 AND company_id = $2
	`

	var found user.User
	err := q.QueryRow(ctx, query, email, companyID).Scan(
		&found.ID,
		&found.CompanyID,
		&found.EmployeeID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.IsActive,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// GetByEmailAny implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmailAny(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, email, password_hash, role, is_active,
			   created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&found.ID,
		&found.CompanyID,
		&found.EmployeeID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.IsActive,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// GetByIDAny implements user.UserRepository.
func (r *userRepositoryImpl) GetByIDAny(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, email, password_hash, role, is_active,
			   created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.CompanyID,
		&found.EmployeeID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.IsActive,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// SetActive implements user.UserRepository.
func (r *userRepositoryImpl) SetActive(ctx context.Context, id string, companyID string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3
	`

	tag, err := q.Exec(ctx, query, active, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
