package openbrewerydb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BreweryDirectory/pkg/model"
)

const userAgent = "BreweryDirectory/1.0"

// FetchBreweries requests a single page of the directory listing.
func (o *OpenBreweryDBIntegration) FetchBreweries(ctx context.Context) ([]model.ExternalBrewery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	listURL, err := o.listURL()
	if err != nil {
		return nil, err
	}

	collector := colly.NewCollector(colly.UserAgent(userAgent))
	if o.timeout > 0 {
		collector.SetRequestTimeout(o.timeout)
	}

	var (
		errs    error
		results []model.ExternalBrewery
		decoded bool
	)

	collector.OnRequest(func(request *colly.Request) {
		request.Headers.Set("Accept", "application/json")
	})

	collector.OnResponse(func(response *colly.Response) {
		if multierr.AppendInto(&errs, json.Unmarshal(response.Body, &results)) {
			o.logger.Error("failed to decode brewery listing", zap.String("url", listURL), zap.Int("bytes", len(response.Body)))

			return
		}

		decoded = true
	})

	multierr.AppendInto(&errs, collector.Visit(listURL))

	if errs == nil && !decoded {
		errs = fmt.Errorf("no response from %s", listURL)
	}

	if errs != nil {
		return nil, errs
	}

	o.logger.Info("fetched breweries", zap.String("url", listURL), zap.Int("count", len(results)))

	return results, nil
}

func (o *OpenBreweryDBIntegration) listURL() (string, error) {
	parsed, err := url.Parse(o.baseURL)
	if err != nil {
		return "", err
	}

	query := parsed.Query()
	query.Set("per_page", strconv.Itoa(o.perPage))
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}
