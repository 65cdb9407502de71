// Package seed populates an empty brewery store from the upstream directory.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"droscher.com/BreweryDirectory/pkg/integrations"
	"droscher.com/BreweryDirectory/pkg/model"
)

var ErrUpstreamFetch = errors.New("upstream fetch failed")

var seededBreweries = promauto.NewCounter(prometheus.CounterOpts{
	Name: "brewery_seeded_total",
	Help: "Number of breweries inserted by the seed loader.",
})

// Store is the part of the repository the loader needs.
type Store interface {
	Migrate() error
	CountBreweries(ctx context.Context) (int64, error)
	SeedBreweries(ctx context.Context, breweries []model.Brewery) error
}

type Loader struct {
	store       Store
	integration integrations.BreweryIntegration
	logger      *zap.Logger
}

func NewLoader(store Store, integration integrations.BreweryIntegration, logger *zap.Logger) *Loader {
	return &Loader{store: store, integration: integration, logger: logger}
}

// Run ensures the schema exists and, only when the store is empty, inserts one page
// of upstream breweries as a single transaction. A populated store is left alone.
func (l *Loader) Run(ctx context.Context) error {
	if err := l.store.Migrate(); err != nil {
		l.logger.Error("error creating schema", zap.Error(err))

		return err
	}

	count, err := l.store.CountBreweries(ctx)
	if err != nil {
		l.logger.Error("error counting breweries", zap.Error(err))

		return err
	}

	if count > 0 {
		l.logger.Info("database already contains breweries", zap.Int64("count", count))

		return nil
	}

	l.logger.Info("no breweries found in database, fetching from upstream")

	externals, err := l.integration.FetchBreweries(ctx)
	if err != nil {
		l.logger.Error("error fetching breweries", zap.Error(err))

		return fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}

	breweries, err := model.BreweriesFromExternal(externals)
	if err != nil {
		l.logger.Error("error converting breweries", zap.Int("fetched", len(externals)), zap.Error(err))

		return err
	}

	if err := l.store.SeedBreweries(ctx, breweries); err != nil {
		l.logger.Error("error saving breweries", zap.Int("fetched", len(externals)), zap.Error(err))

		return err
	}

	seededBreweries.Add(float64(len(breweries)))
	l.logger.Info("saved breweries to database", zap.Int("count", len(breweries)))

	return nil
}
