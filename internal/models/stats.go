package models

// StatsDistribution counts activities per content category.
type StatsDistribution struct {
	File       int64 `json:"file"`
	Video      int64 `json:"video"`
	Forum      int64 `json:"forum"`
	Quiz       int64 `json:"quiz"`
	Assignment int64 `json:"assignment"`
	URL        int64 `json:"url"`
}

// StatsSummary is the fixed-shape aggregate shown on the SAS summary cards.
type StatsSummary struct {
	TotalActivities int64             `json:"total_activities"`
	AverageScore    float64           `json:"average_score"`
	ActiveUsers     int64             `json:"active_users"`
	CompletionRate  float64           `json:"completion_rate"`
	Distribution    StatsDistribution `json:"distribution"`
}

// StatsResponse is the envelope of the summary stats route.
type StatsResponse struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message,omitempty"`
	Data    StatsSummary           `json:"data"`
	Filters map[string]interface{} `json:"filters"`
}

// StatsFallbackMessage is reported when the upstream stats could not be fetched.
const StatsFallbackMessage = "failed to fetch summary stats"

// FallbackStatsResponse is the degraded payload returned when the upstream call fails.
func FallbackStatsResponse() StatsResponse {
	return StatsResponse{
		Status:  false,
		Message: StatsFallbackMessage,
		Filters: map[string]interface{}{},
	}
}
