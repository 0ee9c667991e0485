package service

import (
	"context"
	"fmt"
	"time"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/devNevtis/salesToolsAdminSpace/internal/mapper"
	"github.com/devNevtis/salesToolsAdminSpace/internal/pbx"
	"github.com/devNevtis/salesToolsAdminSpace/internal/repository"
	"go.uber.org/zap"
)

// DomainFetcher is the slice of the PBX client the service needs
type DomainFetcher interface {
	GetDomains(ctx context.Context) ([]pbx.Domain, error)
}

// PBXService mirrors the upstream PBX domain directory into the local
// database so the company form can offer a domain picker without hitting
// the PBX on every request.
type PBXService struct {
	domainRepo *repository.PBXDomainRepository
	client     DomainFetcher
	logger     *zap.Logger
}

// NewPBXService creates a new PBXService. client may be nil when the
// integration is disabled; listing then serves whatever was mirrored last.
func NewPBXService(domainRepo *repository.PBXDomainRepository, client DomainFetcher, logger *zap.Logger) *PBXService {
	return &PBXService{
		domainRepo: domainRepo,
		client:     client,
		logger:     logger,
	}
}

// ListDomains returns mirrored PBX domains
func (s *PBXService) ListDomains(ctx context.Context, enabledOnly bool) ([]domain.PBXDomainDTO, error) {
	domains, err := s.domainRepo.List(ctx, enabledOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list pbx domains: %w", err)
	}
	return mapper.ToPBXDomainDTOs(domains), nil
}

// Sync fetches the upstream directory and upserts it locally.
// Returns the number of domains written.
func (s *PBXService) Sync(ctx context.Context) (int, error) {
	if s.client == nil {
		return 0, ErrPBXDisabled
	}

	upstream, err := s.client.GetDomains(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch pbx domains: %w", err)
	}

	now := time.Now().UTC()
	mirrored := make([]domain.PBXDomain, 0, len(upstream))
	for _, d := range upstream {
		if d.DomainUUID == "" {
			s.logger.Warn("skipping pbx domain without uuid", zap.String("name", d.DomainName))
			continue
		}
		record := domain.PBXDomain{
			DomainUUID: d.DomainUUID,
			ParentUUID: d.DomainParentUUID,
			DomainName: d.DomainName,
			Enabled:    d.Enabled(),
			InsertDate: d.InsertDate,
			InsertUser: d.InsertUser,
			UpdateDate: d.UpdateDate,
			UpdateUser: d.UpdateUser,
			SyncedAt:   now,
		}
		if d.DomainDescription != nil {
			record.Description = *d.DomainDescription
		}
		mirrored = append(mirrored, record)
	}

	if err := s.domainRepo.UpsertAll(ctx, mirrored); err != nil {
		return 0, fmt.Errorf("failed to store pbx domains: %w", err)
	}

	s.logger.Info("pbx domains synced", zap.Int("count", len(mirrored)))
	return len(mirrored), nil
}
