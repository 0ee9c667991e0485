package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/devNevtis/salesToolsAdminSpace/internal/mapper"
	"github.com/devNevtis/salesToolsAdminSpace/internal/repository"
	"github.com/devNevtis/salesToolsAdminSpace/internal/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	companyRepo *repository.CompanyRepository
	userRepo    *repository.UserRepository
	validator   *validation.Validator
	logger      *zap.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo *repository.CompanyRepository, userRepo *repository.UserRepository, validator *validation.Validator, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		validator:   validator,
		logger:      logger,
	}
}

// List returns a page of companies
func (s *CompanyService) List(ctx context.Context, page, pageSize int, search string) (*domain.PaginatedResponse, error) {
	companies, total, err := s.companyRepo.List(ctx, page, pageSize, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return paginate(mapper.ToCompanyDTOs(companies), total, page, pageSize), nil
}

// GetByID retrieves a company with its user count
func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CompanyDTO, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	count, err := s.companyRepo.UserCount(ctx, id)
	if err != nil {
		s.logger.Warn("failed to count company users", zap.String("companyId", id.String()), zap.Error(err))
	}

	dto := mapper.ToCompanyDTO(company, int(count))
	return &dto, nil
}

// Create validates and persists a new company
func (s *CompanyService) Create(ctx context.Context, in *domain.CompanyInput) (*domain.CompanyDTO, error) {
	normalized, fieldErrs := s.validator.ValidateCompany(in)
	if fieldErrs != nil {
		return nil, newValidationError(fieldErrs)
	}

	company := &domain.Company{}
	applyCompany(company, normalized)

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	s.logger.Info("company created",
		zap.String("companyId", company.ID.String()),
		zap.String("name", company.Name))

	dto := mapper.ToCompanyDTO(company, 0)
	return &dto, nil
}

// Update validates and saves changes to an existing company
func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, in *domain.CompanyInput) (*domain.CompanyDTO, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	normalized, fieldErrs := s.validator.ValidateCompany(in)
	if fieldErrs != nil {
		return nil, newValidationError(fieldErrs)
	}

	applyCompany(company, normalized)

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	s.logger.Info("company updated", zap.String("companyId", id.String()))

	count, _ := s.companyRepo.UserCount(ctx, id)
	dto := mapper.ToCompanyDTO(company, int(count))
	return &dto, nil
}

// UpdateStages replaces a company's pipeline stages
func (s *CompanyService) UpdateStages(ctx context.Context, id uuid.UUID, req *domain.UpdateStagesRequest) (*domain.CompanyDTO, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	stages, fieldErrs := s.validator.ValidateStages(req.Stages)
	if fieldErrs != nil {
		return nil, newValidationError(fieldErrs)
	}

	company.Configuration.Stages = make([]domain.Stage, len(stages))
	for i, st := range stages {
		company.Configuration.Stages[i] = domain.Stage(st)
	}

	if err := s.companyRepo.UpdateConfiguration(ctx, id, company.Configuration); err != nil {
		return nil, fmt.Errorf("failed to update stages: %w", err)
	}

	s.logger.Info("company stages updated",
		zap.String("companyId", id.String()),
		zap.Int("stageCount", len(stages)))

	dto := mapper.ToCompanyDTO(company, 0)
	return &dto, nil
}

// Delete removes a company and all its users
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.companyRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to get company: %w", err)
	}

	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	s.logger.Info("company deleted", zap.String("companyId", id.String()))
	return nil
}

// ListUsers returns all users belonging to a company
func (s *CompanyService) ListUsers(ctx context.Context, id uuid.UUID) ([]domain.UserDTO, error) {
	if _, err := s.companyRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	users, err := s.userRepo.ListByCompany(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list company users: %w", err)
	}
	return mapper.ToUserDTOs(users), nil
}

// applyCompany copies a normalized record onto the model
func applyCompany(company *domain.Company, n *domain.NormalizedCompany) {
	company.Name = n.Name
	company.Phone = n.Phone
	company.Email = n.Email
	company.Website = n.Website
	company.Address = n.Address
	company.City = n.City
	company.State = n.State
	company.PostalCode = n.PostalCode
	company.Country = n.Country
	company.Description = n.Description

	company.PBXDomain = domain.PBXDomainRef{}
	if n.PBXURL != nil {
		company.PBXDomain = *n.PBXURL
	}

	company.Configuration.Theme = domain.Theme(n.Configuration.Theme)
	company.Configuration.Stages = make([]domain.Stage, len(n.Configuration.Stages))
	for i, st := range n.Configuration.Stages {
		company.Configuration.Stages[i] = domain.Stage(st)
	}
}

// paginate wraps a data page with paging metadata
func paginate(data interface{}, total int64, page, pageSize int) *domain.PaginatedResponse {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return &domain.PaginatedResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
