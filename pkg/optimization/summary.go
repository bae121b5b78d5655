// Package optimization provides shared data structures for optimization results.
package optimization

import "github.com/iwvelando/aqi-planner/internal/catalog"

// Candidate is one (intervention type, unit count) option considered by the optimizer.
type Candidate struct {
	Key         string             `json:"key"`
	Units       int                `json:"units"`
	Cost        int64              `json:"cost"`
	Improvement float64            `json:"improvement"`
	Ratio       float64            `json:"ratio"`
	Index       int                `json:"-"`
	Definition  catalog.Definition `json:"-"`
}

// Portfolio captures the selection produced by a single optimizer run.
type Portfolio struct {
	Budget           int64       `json:"budget"`
	CurrentAQI       int         `json:"currentAqi"`
	Selected         []Candidate `json:"selected"`
	Allocated        int64       `json:"allocated"`
	Remaining        int64       `json:"remaining"`
	TotalImprovement float64     `json:"totalImprovement"`
	Considered       int         `json:"considered"`
}

// Empty indicates whether nothing was selected.
func (p Portfolio) Empty() bool {
	return len(p.Selected) == 0
}
