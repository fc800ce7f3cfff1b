package games

import (
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v3"

	"github.com/MrSolution07/SquidGame/pkg/domain"
)

func testService(t *testing.T) *Service {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	if err != nil {
		t.Fatalf("failed to open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewService(db)
}

func testGameConfig(seed int64) domain.GameConfig {
	cfg := domain.DefaultConfig()
	cfg.Players = 5
	cfg.MaxRounds = 30
	cfg.Seed = seed
	return cfg
}

func TestServiceRunPersistsReport(t *testing.T) {
	s := testService(t)

	report, err := s.Run(testGameConfig(21))
	if err != nil {
		t.Fatalf("failed to run game: %v", err)
	}
	if report.ID == "" {
		t.Fatal("report has no id")
	}
	if report.Config.Seed != 21 {
		t.Errorf("report seed = %d, want 21", report.Config.Seed)
	}

	stored, err := s.Report(report.ID)
	if err != nil {
		t.Fatalf("failed to load stored report: %v", err)
	}
	if stored.ID != report.ID {
		t.Errorf("stored id = %q, want %q", stored.ID, report.ID)
	}
	res := stored.Result
	if res.Finished+res.Eliminated+res.Active != 5 {
		t.Errorf("stored result counts %d/%d/%d do not cover 5 players",
			res.Finished, res.Eliminated, res.Active)
	}
}

func TestServiceRunInvalidConfig(t *testing.T) {
	s := testService(t)

	cfg := testGameConfig(1)
	cfg.Players = -1

	if _, err := s.Run(cfg); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestServiceSummaries(t *testing.T) {
	s := testService(t)

	for seed := int64(1); seed <= 2; seed++ {
		if _, err := s.Run(testGameConfig(seed)); err != nil {
			t.Fatal(err)
		}
	}

	summaries, err := s.Summaries()
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 2 {
		t.Fatalf("listed %d summaries, want 2", len(summaries))
	}
	for _, sum := range summaries {
		if sum.Players != 5 {
			t.Errorf("summary %s lists %d players, want 5", sum.ID, sum.Players)
		}
		if sum.Finished+sum.Eliminated+sum.Active != sum.Players {
			t.Errorf("summary %s counts do not cover the roster: %+v", sum.ID, sum)
		}
	}
}

func TestServiceSummariesLimited(t *testing.T) {
	s := testService(t)
	s.ListLimit = 2

	for seed := int64(1); seed <= 4; seed++ {
		if _, err := s.Run(testGameConfig(seed)); err != nil {
			t.Fatal(err)
		}
	}

	summaries, err := s.Summaries()
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 2 {
		t.Errorf("listed %d summaries, want the configured limit of 2", len(summaries))
	}
}
