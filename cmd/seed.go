package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BreweryDirectory/configs"
	"droscher.com/BreweryDirectory/pkg/integrations"
	"droscher.com/BreweryDirectory/pkg/repository"
	"droscher.com/BreweryDirectory/pkg/seed"
)

type SeedCmd struct {
	ConfigFile string `default:".BreweryDirectory.toml" help:"Path to config file" short:"c"`
}

func (s *SeedCmd) Run(cmdContext *Context) error {
	logger := newCommandLogger(cmdContext.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	loader, err := newLoader(conf, repo, logger)
	if err != nil {
		return err
	}

	return loader.Run(context.Background())
}

func newLoader(conf *configs.Config, repo *repository.Repository, logger *zap.Logger) (*seed.Loader, error) {
	integration, err := integrations.GetIntegration(conf.Upstream, logger)
	if err != nil {
		logger.Error("error configuring upstream integration", zap.Error(err))

		return nil, err
	}

	return seed.NewLoader(repo, integration, logger), nil
}
