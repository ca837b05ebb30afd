package entry

// TimeEntry represents a single recorded span of work on a project
type TimeEntry struct {
	ID              string `json:"id"`
	ProjectID       int    `json:"projectId"`
	ProjectName     string `json:"projectName,omitempty"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime,omitempty"`
	EndTime         string `json:"endTime,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
	Notes           string `json:"notes,omitempty"`
}

// HasClockRange reports whether the entry carries an explicit start/end
// time pair. Timer-derived entries only have a duration.
func (e TimeEntry) HasClockRange() bool {
	return e.StartTime != "" && e.EndTime != ""
}
