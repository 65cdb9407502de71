package server

import (
	"net/url"
	"strings"

	"droscher.com/BreweryDirectory/pkg/model"
)

const (
	paramFavoritesOnly = "favorites_only"
	paramByType        = "by_type"
	paramByCountry     = "by_country"
	paramQuery         = "query"
)

// ParseBreweryFilter reads the search parameters of a listing request. Values are
// passed through untrimmed; only favorites_only is interpreted.
func ParseBreweryFilter(values url.Values) model.BreweryFilter {
	return model.BreweryFilter{
		FavoritesOnly: strings.ToLower(values.Get(paramFavoritesOnly)) == "true",
		ByType:        optionalParam(values, paramByType),
		ByCountry:     optionalParam(values, paramByCountry),
		Query:         optionalParam(values, paramQuery),
	}
}

func optionalParam(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}

	value := values.Get(key)

	return &value
}
