package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lushstays/staygo/internal/domain"
	"github.com/lushstays/staygo/internal/repository"
	postgresrepo "github.com/lushstays/staygo/internal/repository/postgres"
	redisrepo "github.com/lushstays/staygo/internal/repository/redis"
)

type Config struct {
	LocationsTTL time.Duration
}

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.LocationsTTL <= 0 {
		cfg.LocationsTTL = 60 * time.Second
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// List returns the full catalog, served from cache when warm.
//
// Returns:
//   - []domain.Location: every bookable location.
//   - error: catalog.ErrUnavailable when the catalog cannot be fetched.
func (s *Service) List(ctx context.Context) ([]domain.Location, error) {
	const op = "service.catalog.List"

	locations, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyLocations(),
		s.cfg.LocationsTTL,
		func(ctx context.Context) ([]domain.Location, error) {
			return s.store.Locations().List(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}

	return locations, nil
}

// GetByName looks up one location for draft selection.
//
// Returns:
//   - *domain.Location: the catalog entry.
//   - error: catalog.ErrUnavailable when the lookup fails; wraps
//     repository.ErrNotFound for unknown names.
func (s *Service) GetByName(ctx context.Context, name string) (*domain.Location, error) {
	const op = "service.catalog.GetByName"

	loc, err := s.store.Locations().GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}

	return loc, nil
}
