package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// PBXSyncJobName is the name of the PBX domain directory sync job
const PBXSyncJobName = "pbx_domain_sync"

// DomainSyncService is the slice of the PBX service the job needs.
// Keeping it as an interface avoids importing the service package.
type DomainSyncService interface {
	Sync(ctx context.Context) (int, error)
}

// PBXSyncJob refreshes the local mirror of the PBX domain directory
type PBXSyncJob struct {
	service DomainSyncService
	logger  *zap.Logger
	timeout time.Duration
}

// NewPBXSyncJob creates a new PBX sync job. The timeout bounds one full
// fetch-and-upsert cycle.
func NewPBXSyncJob(service DomainSyncService, logger *zap.Logger, timeout time.Duration) *PBXSyncJob {
	return &PBXSyncJob{
		service: service,
		logger:  logger,
		timeout: timeout,
	}
}

// Run executes one sync cycle. Called by the scheduler.
func (j *PBXSyncJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	count, err := j.service.Sync(ctx)
	if err != nil {
		j.logger.Error("pbx domain sync failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("pbx domain sync completed",
		zap.Int("domains", count),
		zap.Duration("duration", time.Since(start)))
}
