package repository

import (
	"context"
	"strings"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// GetByID retrieves a company by its ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// List returns a page of companies with the total count. Search matches
// name or email, case-insensitively.
func (r *CompanyRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.Company, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Company{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companies []domain.Company
	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("name ASC").Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

// Create inserts a new company
func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// Update saves a company's fields
func (r *CompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// UpdateConfiguration replaces only the configuration column
func (r *CompanyRepository) UpdateConfiguration(ctx context.Context, id uuid.UUID, cfg domain.CompanyConfiguration) error {
	return r.db.WithContext(ctx).
		Model(&domain.Company{}).
		Where("id = ?", id).
		Update("configuration", cfg).Error
}

// Delete removes a company. Users cascade at the database level.
func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Company{}, "id = ?", id).Error
}

// UserCount returns the number of users belonging to a company
func (r *CompanyRepository) UserCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("company_id = ?", id).
		Count(&count).Error
	return count, err
}
