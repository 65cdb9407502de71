package model

// BreweryFilter is the normalized search intent of a brewery listing request.
// A nil string field imposes no restriction.
type BreweryFilter struct {
	FavoritesOnly bool
	ByType        *string
	ByCountry     *string
	Query         *string
}

func (f BreweryFilter) IsEmpty() bool {
	return !f.FavoritesOnly && f.ByType == nil && f.ByCountry == nil && f.Query == nil
}
