package config

import "textstat/internal/utils"

// Run describes one fetch-and-analyze execution. The ID tags every
// structured log entry the run produces.
type Run struct {
	ID    string
	URL   string
	Force bool
}

func NewRun(url string, force bool) *Run {
	id, _ := utils.GenerateID()

	return &Run{
		ID:    id,
		URL:   url,
		Force: force,
	}
}
