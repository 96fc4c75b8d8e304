package models

// LabelCount is one bucket of an aggregate, e.g. a district and the
// number of reports filed in it.
type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// CrimeStats summarizes the report table for the feed filters and the
// home page, so clients no longer derive these over the full feed.
type CrimeStats struct {
	TotalReports   int64        `json:"total_reports"`
	Districts      []LabelCount `json:"districts"`
	SeverityLevels []LabelCount `json:"severity_levels"`
}
