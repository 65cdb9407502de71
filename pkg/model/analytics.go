package model

type ChartDataPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type FavoritesAnalytics struct {
	TotalFavorites int              `json:"total_favorites"`
	ByType         []ChartDataPoint `json:"by_type"`
	ByCountry      []ChartDataPoint `json:"by_country"`
	ByState        []ChartDataPoint `json:"by_state"`
}
