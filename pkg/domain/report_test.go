package domain

import (
	"testing"
	"time"
)

func TestNewReportSummary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	result := GameResult{
		Players: []PlayerResult{
			{ID: "001", Status: StatusFinished},
			{ID: "002", Status: StatusEliminated},
			{ID: "003", Status: StatusActive},
		},
		Finished:   1,
		Eliminated: 1,
		Active:     1,
		Stats:      GameStats{Rounds: 7},
	}

	report := NewReport(cfg, result, nil, 1500*time.Millisecond)
	if report.ID == "" {
		t.Fatal("report must get a fresh id")
	}
	if report.ElapsedSeconds != 1.5 {
		t.Errorf("elapsed seconds = %v, want 1.5", report.ElapsedSeconds)
	}

	s := report.Summary()
	if s.ID != report.ID {
		t.Errorf("summary id = %q, want %q", s.ID, report.ID)
	}
	if s.Players != 3 || s.Rounds != 7 || s.Finished != 1 || s.Eliminated != 1 || s.Active != 1 {
		t.Errorf("summary counts off: %+v", s)
	}
	if s.Seed != 42 {
		t.Errorf("summary seed = %d, want 42", s.Seed)
	}
}

func TestNewReportUniqueIDs(t *testing.T) {
	a := NewReport(DefaultConfig(), GameResult{}, nil, 0)
	b := NewReport(DefaultConfig(), GameResult{}, nil, 0)
	if a.ID == b.ID {
		t.Errorf("reports share id %q", a.ID)
	}
}
