package domain

import (
	"time"

	"github.com/segmentio/ksuid"
)

const ReportEntity = "REPORT"

// Report is the persisted record of one finished game: the effective
// configuration (seed included), the terminal result and the full
// round history. Wall clock fields live here and not in the result so
// that seeded runs stay byte for byte reproducible.
type Report struct {
	ID             string        `json:"id"`
	CreatedAt      time.Time     `json:"created_at"`
	ElapsedSeconds float64       `json:"elapsed_seconds"`
	Config         GameConfig    `json:"config"`
	Result         GameResult    `json:"result"`
	Rounds         []RoundRecord `json:"rounds"`
}

// ReportSummary is the listing view of a stored report.
type ReportSummary struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Players    int       `json:"players"`
	Rounds     int       `json:"rounds"`
	Finished   int       `json:"finished"`
	Eliminated int       `json:"eliminated"`
	Active     int       `json:"active"`
	Seed       int64     `json:"seed"`
}

// NewReport wraps a finished game into a report with a fresh id.
func NewReport(cfg GameConfig, result GameResult, rounds []RoundRecord, elapsed time.Duration) *Report {
	return &Report{
		ID:             ksuid.New().String(),
		CreatedAt:      time.Now(),
		ElapsedSeconds: elapsed.Seconds(),
		Config:         cfg,
		Result:         result,
		Rounds:         rounds,
	}
}

// Summary reduces the report to its listing view.
func (r *Report) Summary() ReportSummary {
	return ReportSummary{
		ID:         r.ID,
		CreatedAt:  r.CreatedAt,
		Players:    len(r.Result.Players),
		Rounds:     r.Result.Stats.Rounds,
		Finished:   r.Result.Finished,
		Eliminated: r.Result.Eliminated,
		Active:     r.Result.Active,
		Seed:       r.Config.Seed,
	}
}
