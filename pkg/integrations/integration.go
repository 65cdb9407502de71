package integrations

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/BreweryDirectory/configs"
	"droscher.com/BreweryDirectory/pkg/integrations/openbrewerydb"
	"droscher.com/BreweryDirectory/pkg/model"
)

var ErrUnknownIntegration = errors.New("unknown integration")

type BreweryIntegration interface {
	FetchBreweries(ctx context.Context) ([]model.ExternalBrewery, error)
}

func GetIntegration(conf configs.Upstream, logger *zap.Logger) (BreweryIntegration, error) {
	if conf.Integration == openbrewerydb.IntegrationName {
		return openbrewerydb.NewOpenBreweryDBIntegration(conf.URL, conf.PerPage, conf.Timeout, logger), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownIntegration, conf.Integration)
}
