package model

import "time"

// RunStatus tracks the lifecycle of a merge run.
type RunStatus string

// Run statuses.
const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run is one recorded execution of the merge pipeline.
type Run struct {
	ID        string     `json:"id"`
	Status    RunStatus  `json:"status"`
	Result    *RunResult `json:"result,omitempty"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RunResult summarizes what a completed run produced.
type RunResult struct {
	RawRows         int            `json:"raw_rows"`
	OutputRows      int            `json:"output_rows"`
	Dropped         int            `json:"dropped"`
	ExactDuplicates int            `json:"exact_duplicates"`
	SourceCounts    map[string]int `json:"source_counts,omitempty"`
	MissingCodes    []string       `json:"missing_codes,omitempty"`
	OutputPath      string         `json:"output_path,omitempty"`
}
