package model

// DailyCount is one day of a monthly statistic, 1-based day of month.
type DailyCount struct {
	Day   int     `json:"day"`
	Count float64 `json:"count"`
}
