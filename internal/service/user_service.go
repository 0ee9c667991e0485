package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/devNevtis/salesToolsAdminSpace/internal/mapper"
	"github.com/devNevtis/salesToolsAdminSpace/internal/repository"
	"github.com/devNevtis/salesToolsAdminSpace/internal/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	userRepo    *repository.UserRepository
	companyRepo *repository.CompanyRepository
	validator   *validation.Validator
	logger      *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repository.UserRepository, companyRepo *repository.CompanyRepository, validator *validation.Validator, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		validator:   validator,
		logger:      logger,
	}
}

// List returns a page of users matching the filter
func (s *UserService) List(ctx context.Context, page, pageSize int, filter repository.UserFilter) (*domain.PaginatedResponse, error) {
	users, total, err := s.userRepo.List(ctx, page, pageSize, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return paginate(mapper.ToUserDTOs(users), total, page, pageSize), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	dto := mapper.ToUserDTO(user)
	return &dto, nil
}

// ListManagers returns manager users for the salesperson form's manager picker
func (s *UserService) ListManagers(ctx context.Context, companyID *uuid.UUID) ([]domain.UserDTO, error) {
	managers, err := s.userRepo.ListManagers(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}
	return mapper.ToUserDTOs(managers), nil
}

// Create validates and persists a new user. endpointRole is the role implied
// by a role-scoped endpoint; when set, the payload's own role tag must agree.
func (s *UserService) Create(ctx context.Context, in *domain.UserInput, endpointRole domain.UserRole) (*domain.UserDTO, error) {
	if endpointRole != "" && strings.TrimSpace(in.Role) != string(endpointRole) {
		return nil, fieldError("role", fmt.Sprintf("Role must be %s for this endpoint", endpointRole))
	}

	normalized, fieldErrs := s.validator.ValidateUser(in, validation.ModeCreate)
	if fieldErrs != nil {
		return nil, newValidationError(fieldErrs)
	}

	companyID, managerID, err := s.checkReferences(ctx, normalized, nil)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, normalized.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(normalized.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{}
	applyUser(user, normalized, companyID, managerID)
	user.PasswordHash = string(hash)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created",
		zap.String("userId", user.ID.String()),
		zap.String("role", string(user.Role)),
		zap.String("companyId", user.CompanyID.String()))

	created, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	dto := mapper.ToUserDTO(created)
	return &dto, nil
}

// Update validates and saves changes to an existing user. The role tag is
// immutable; an owner cannot be turned into a salesperson by edit.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, in *domain.UserInput) (*domain.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if strings.TrimSpace(in.Role) != string(user.Role) {
		return nil, fieldError("role", "Role cannot be changed")
	}

	normalized, fieldErrs := s.validator.ValidateUser(in, validation.ModeEdit)
	if fieldErrs != nil {
		return nil, newValidationError(fieldErrs)
	}

	companyID, managerID, err := s.checkReferences(ctx, normalized, &id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.GetByEmail(ctx, normalized.Email); err == nil {
		if existing.ID != id {
			return nil, ErrDuplicateEmail
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	applyUser(user, normalized, companyID, managerID)

	if normalized.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(normalized.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("user updated", zap.String("userId", id.String()))

	updated, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	dto := mapper.ToUserDTO(updated)
	return &dto, nil
}

// Delete removes a user. A manager with salespeople still assigned cannot
// be deleted; the reports must be reassigned first.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role == domain.RoleManager {
		reports, err := s.userRepo.CountReports(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count reports: %w", err)
		}
		if reports > 0 {
			return ErrManagerHasReports
		}
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", zap.String("userId", id.String()))
	return nil
}

// checkReferences resolves the companyId and, for salespeople, the managerId
// of a normalized record. Broken references come back as field errors so the
// console can flag the offending form control. selfID excludes the record
// being edited from the manager check.
func (s *UserService) checkReferences(ctx context.Context, n *domain.NormalizedUser, selfID *uuid.UUID) (uuid.UUID, *uuid.UUID, error) {
	companyID, err := uuid.Parse(n.CompanyID)
	if err != nil {
		return uuid.Nil, nil, fieldError("companyId", "Invalid company")
	}
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil, fieldError("companyId", "Company not found")
		}
		return uuid.Nil, nil, fmt.Errorf("failed to get company: %w", err)
	}

	if n.Role != domain.RoleSale {
		return companyID, nil, nil
	}

	managerID, err := uuid.Parse(n.ManagerID)
	if err != nil {
		return uuid.Nil, nil, fieldError("managerId", "Invalid manager")
	}
	if selfID != nil && managerID == *selfID {
		return uuid.Nil, nil, fieldError("managerId", "A user cannot be their own manager")
	}

	manager, err := s.userRepo.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil, fieldError("managerId", "Manager not found")
		}
		return uuid.Nil, nil, fmt.Errorf("failed to get manager: %w", err)
	}
	if manager.Role != domain.RoleManager {
		return uuid.Nil, nil, fieldError("managerId", "Selected user is not a manager")
	}
	if manager.CompanyID != companyID {
		return uuid.Nil, nil, fieldError("managerId", "Manager must belong to the same company")
	}

	return companyID, &managerID, nil
}

// applyUser copies a normalized record onto the model. Role-specific columns
// of other roles are reset to their zero values.
func applyUser(user *domain.User, n *domain.NormalizedUser, companyID uuid.UUID, managerID *uuid.UUID) {
	user.Role = n.Role
	user.HighLevelID = n.ID
	user.Name = n.Name
	user.FirstName = n.FirstName
	user.LastName = n.LastName
	user.Email = n.Email
	user.Phone = n.Phone
	user.Extension = n.Extension
	user.ProfilePhoto = n.ProfilePhoto
	user.Position = n.Position
	user.VText = domain.VTextList(n.VText)
	user.CompanyID = companyID

	// Drop preloaded associations so a save never writes them back
	user.Company = nil
	user.Manager = nil

	user.GlobalSettings = nil
	user.MetricAccess = false
	user.Permissions = nil
	user.CommissionRate = 0
	user.ManagerID = nil

	switch n.Role {
	case domain.RoleOwner:
		user.GlobalSettings = n.GlobalSettings
		user.MetricAccess = n.MetricAccess
	case domain.RoleManager:
		user.Permissions = n.Permissions
	case domain.RoleSale:
		user.CommissionRate = n.CommissionRate
		user.ManagerID = managerID
	}
}
