package repository

import (
	"context"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PBXDomainRepository handles database operations for mirrored PBX domains
type PBXDomainRepository struct {
	db *gorm.DB
}

// NewPBXDomainRepository creates a new PBXDomainRepository
func NewPBXDomainRepository(db *gorm.DB) *PBXDomainRepository {
	return &PBXDomainRepository{db: db}
}

// GetByUUID retrieves one mirrored domain
func (r *PBXDomainRepository) GetByUUID(ctx context.Context, domainUUID string) (*domain.PBXDomain, error) {
	var d domain.PBXDomain
	err := r.db.WithContext(ctx).First(&d, "domain_uuid = ?", domainUUID).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns mirrored domains, optionally only enabled ones
func (r *PBXDomainRepository) List(ctx context.Context, enabledOnly bool) ([]domain.PBXDomain, error) {
	query := r.db.WithContext(ctx)
	if enabledOnly {
		query = query.Where("enabled = ?", true)
	}

	var domains []domain.PBXDomain
	err := query.Order("domain_name ASC").Find(&domains).Error
	if err != nil {
		return nil, err
	}
	return domains, nil
}

// UpsertAll writes a batch of domains, replacing existing rows by UUID.
// Called from the sync job with the full upstream directory.
func (r *PBXDomainRepository) UpsertAll(ctx context.Context, domains []domain.PBXDomain) error {
	if len(domains) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "domain_uuid"}},
			UpdateAll: true,
		}).
		Create(&domains).Error
}

// Count returns the number of mirrored domains
func (r *PBXDomainRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.PBXDomain{}).Count(&count).Error
	return count, err
}
