package repository

import (
	"context"
	"strings"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFilter narrows a user listing
type UserFilter struct {
	Search    string
	Role      domain.UserRole
	CompanyID *uuid.UUID
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID with company and manager preloaded
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Manager").
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "LOWER(email) = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns a page of users matching the filter with the total count.
// Search matches name or email, case-insensitively.
func (r *UserRepository) List(ctx context.Context, page, pageSize int, filter UserFilter) ([]domain.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.User{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []domain.User
	offset := (page - 1) * pageSize
	err := query.
		Preload("Company").
		Preload("Manager").
		Offset(offset).Limit(pageSize).
		Order("name ASC").
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListByCompany returns all users of one company
func (r *UserRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListManagers returns manager users, optionally scoped to one company.
// Used to populate the manager picker on the salesperson form.
func (r *UserRepository) ListManagers(ctx context.Context, companyID *uuid.UUID) ([]domain.User, error) {
	query := r.db.WithContext(ctx).Where("role = ?", domain.RoleManager)
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}

	var managers []domain.User
	err := query.Order("name ASC").Find(&managers).Error
	if err != nil {
		return nil, err
	}
	return managers, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update saves a user's fields
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.User{}, "id = ?", id).Error
}

// CountReports returns how many salespeople report to the given manager
func (r *UserRepository) CountReports(ctx context.Context, managerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("manager_id = ?", managerID).
		Count(&count).Error
	return count, err
}
