package cmd

import (
	"go.uber.org/zap"

	"droscher.com/BreweryDirectory/configs"
	"droscher.com/BreweryDirectory/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".BreweryDirectory.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(cmdContext *Context) error {
	logger := newCommandLogger(cmdContext.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
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

	return repo.Migrate()
}
