package domain

type RankedItem struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type UsageStats struct {
	Totals       map[string]int64 `json:"totals"`
	Today        map[string]int64 `json:"today"`
	TopTemplates []RankedItem     `json:"top_templates"`
	TopLocations []RankedItem     `json:"top_locations"`
}

func EmptyUsageStats() UsageStats {
	return UsageStats{
		Totals:       map[string]int64{},
		Today:        map[string]int64{},
		TopTemplates: []RankedItem{},
		TopLocations: []RankedItem{},
	}
}
