package openbrewerydb

import (
	"time"

	"go.uber.org/zap"
)

const IntegrationName = "openbrewerydb"

type OpenBreweryDBIntegration struct {
	baseURL string
	perPage int
	timeout time.Duration
	logger  *zap.Logger
}

func NewOpenBreweryDBIntegration(baseURL string, perPage int, timeout time.Duration, logger *zap.Logger) *OpenBreweryDBIntegration {
	return &OpenBreweryDBIntegration{baseURL: baseURL, perPage: perPage, timeout: timeout, logger: logger}
}
