package jobs

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"contract-hub.backend/internal/domain/repositories"
	"contract-hub.backend/pkg/logger"
)

var registryRecordsTotal = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "registry_records_total",
	Help: "Number of records currently stored in the registry.",
})

func init() {
	prometheus.MustRegister(registryRecordsTotal)
}

// RegistryStatsJob periodically refreshes registry-level metrics.
type RegistryStatsJob struct {
	repo     repositories.RecordRepository
	interval time.Duration
	stop     chan struct{}
}

func NewRegistryStatsJob(repo repositories.RecordRepository) *RegistryStatsJob {
	return &RegistryStatsJob{
		repo:     repo,
		interval: 30 * time.Second,
		stop:     make(chan struct{}),
	}
}

func (j *RegistryStatsJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting registry stats job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(context.Background(), "registry stats job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "registry stats job stopped")
			return
		case <-ticker.C:
			j.collect(ctx)
		}
	}
}

func (j *RegistryStatsJob) Stop() {
	close(j.stop)
}

func (j *RegistryStatsJob) collect(ctx context.Context) {
	count, err := j.repo.Count(ctx)
	if err != nil {
		logger.Error(ctx, "registry stats: counting records failed", zap.Error(err))
		return
	}
	registryRecordsTotal.Set(float64(count))
}
