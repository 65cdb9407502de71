package cmd

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1"                              help:"Seed the database if empty, then run the server"`
	Migrate MigrateCmd `cmd:"" help:"Create the database schema"`
	Seed    SeedCmd    `cmd:"" help:"Seed an empty database from the upstream directory"`
}

func newCommandLogger(debug bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if !debug {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}
