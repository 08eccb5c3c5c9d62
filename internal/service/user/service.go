package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/worklens-hq/worklens-backend-go/internal/domain/employee"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/user"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/database"
	"github.com/worklens-hq/worklens-backend-go/internal/repository/postgresql"
)

// defaultDailyHours seeds new employee records when the request does not
// link an existing one.
var defaultDailyHours = decimal.NewFromInt(8)

type UserServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	db *database.DB
}

func NewUserService(
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	db *database.DB,
) user.UserService {
	return &UserServiceImpl{
		UserRepository:     userRepo,
		EmployeeRepository: employeeRepo,
		db:                 db,
	}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return user.UserResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	if _, err := s.UserRepository.GetByEmail(ctx, req.Email, companyID); err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, fmt.Errorf("failed to check email availability: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		employeeID := req.EmployeeID
		if employeeID != nil {
			if _, err := s.EmployeeRepository.GetByID(txCtx, *employeeID, companyID); err != nil {
				if errors.Is(err, employee.ErrEmployeeNotFound) {
					return employee.ErrEmployeeNotFound
				}
				return fmt.Errorf("failed to get employee: %w", err)
			}
		}

		created, err = s.UserRepository.Create(txCtx, user.User{
			ID:           uuid.New().String(),
			CompanyID:    companyID,
			EmployeeID:   employeeID,
			Email:        req.Email,
			PasswordHash: string(passwordHash),
			Role:         user.Role(req.Role),
			IsActive:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		if employeeID == nil {
			newEmployee, err := s.EmployeeRepository.Create(txCtx, employee.Employee{
				ID:               uuid.New().String(),
				CompanyID:        companyID,
				UserID:           &created.ID,
				FullName:         req.FullName,
				Position:         req.Position,
				EmploymentStatus: employee.EmploymentStatusActive,
				DailyHours:       defaultDailyHours,
			})
			if err != nil {
				return fmt.Errorf("failed to create employee: %w", err)
			}
			created.EmployeeID = &newEmployee.ID
		}

		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return mapUserToResponse(created), nil
}

// DeactivateUser implements user.UserService.
func (s *UserServiceImpl) DeactivateUser(ctx context.Context, id string) (user.UserResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return user.UserResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	account, err := s.UserRepository.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if !account.IsActive {
		return user.UserResponse{}, user.ErrUserInactive
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.UserRepository.SetActive(txCtx, id, companyID, false); err != nil {
			return fmt.Errorf("failed to deactivate user: %w", err)
		}

		// Historical attendance stays intact; only employment status flips.
		if account.EmployeeID != nil {
			if err := s.EmployeeRepository.SetEmploymentStatus(txCtx, *account.EmployeeID, companyID, employee.EmploymentStatusInactive); err != nil {
				return fmt.Errorf("failed to deactivate employee: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	account.IsActive = false
	return mapUserToResponse(account), nil
}

func mapUserToResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:         u.ID,
		CompanyID:  u.CompanyID,
		EmployeeID: u.EmployeeID,
		Email:      u.Email,
		Role:       string(u.Role),
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}
