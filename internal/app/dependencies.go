package app

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/lunchly/internal/health"
	"github.com/vladislavdragonenkov/lunchly/internal/domain"
	"github.com/vladislavdragonenkov/lunchly/internal/storage/memory"
	"github.com/vladislavdragonenkov/lunchly/internal/storage/postgres"
)

// runtimeDependencies собирает репозитории выбранного хранилища и его проверку здоровья.
type runtimeDependencies struct {
	customers      domain.CustomerRepository
	reservations   domain.ReservationRepository
	storageChecker healthcheck.Checker
	closeFn        func() error
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.StorageDriver))

	switch driver {
	case "", StorageDriverMemory:
		store := memory.NewStore()
		logger.Info("using in-memory storage")
		return &runtimeDependencies{
			customers:    memory.NewCustomerRepository(store),
			reservations: memory.NewReservationRepository(store),
		}, nil

	case StorageDriverPostgres:
		dsn := strings.TrimSpace(cfg.PostgresDSN)
		if dsn == "" {
			return nil, fmt.Errorf("postgres storage requires a DSN")
		}

		store, err := postgres.Open(ctx, dsn)
		if err != nil {
			return nil, err
		}
		logger.Info("using postgres storage")

		return &runtimeDependencies{
			customers:      postgres.NewCustomerRepository(store),
			reservations:   postgres.NewReservationRepository(store),
			storageChecker: healthcheck.NewPingChecker(store),
			closeFn:        store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func (d *runtimeDependencies) close(logger *log.Entry) {
	if d == nil || d.closeFn == nil {
		return
	}
	if err := d.closeFn(); err != nil {
		logger.WithError(err).Warn("failed to close storage")
	}
}
