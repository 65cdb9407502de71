package server

import (
	"slices"

	"droscher.com/BreweryDirectory/pkg/model"
)

const (
	unitedStates  = "United States"
	unknownLabel  = "Unknown"
	maxStateCount = 10
)

// SummarizeFavorites builds the favorites dashboard from favorite breweries in
// storage order.
func SummarizeFavorites(favorites []*model.Brewery) model.FavoritesAnalytics {
	byType := newTally()
	byCountry := newTally()
	byState := newTally()

	for _, brewery := range favorites {
		byType.add(labelOf(brewery.BreweryType))
		byCountry.add(labelOf(brewery.Country))

		if brewery.Country != nil && *brewery.Country == unitedStates {
			byState.add(labelOf(brewery.State))
		}
	}

	return model.FavoritesAnalytics{
		TotalFavorites: len(favorites),
		ByType:         byType.points(),
		ByCountry:      byCountry.points(),
		ByState:        byState.top(maxStateCount),
	}
}

func labelOf(value *string) string {
	if value == nil || *value == "" {
		return unknownLabel
	}

	return *value
}

// tally counts names and remembers the order in which each was first seen.
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: map[string]int{}}
}

func (t *tally) add(name string) {
	if _, seen := t.counts[name]; !seen {
		t.order = append(t.order, name)
	}

	t.counts[name]++
}

func (t *tally) points() []model.ChartDataPoint {
	points := make([]model.ChartDataPoint, 0, len(t.order))

	for _, name := range t.order {
		points = append(points, model.ChartDataPoint{Name: name, Value: t.counts[name]})
	}

	return points
}

// top returns at most limit entries by descending count; ties keep first-seen order.
func (t *tally) top(limit int) []model.ChartDataPoint {
	points := t.points()

	slices.SortStableFunc(points, func(a, b model.ChartDataPoint) int {
		return b.Value - a.Value
	})

	if len(points) > limit {
		points = points[:limit]
	}

	return points
}
