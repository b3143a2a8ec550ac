package models

import (
	"time"
)

// One puzzle part's output
type PartResult struct {
	Name     string        `json:"name"`
	Knots    int           `json:"knots"`
	Visited  int           `json:"visited"`
	Steps    int           `json:"steps"`
	Duration time.Duration `json:"duration_ns"`
}
