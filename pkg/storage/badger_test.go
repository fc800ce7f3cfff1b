package storage

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/MrSolution07/SquidGame/pkg/domain"
	"github.com/MrSolution07/SquidGame/pkg/sim"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	if err != nil {
		t.Fatalf("failed to open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testReport(t *testing.T, seed int64) *domain.Report {
	t.Helper()
	cfg := domain.DefaultConfig()
	cfg.Players = 5
	cfg.MaxRounds = 30
	cfg.Seed = seed

	eng, err := sim.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	out := eng.Run()
	return domain.NewReport(eng.Config(), out.Result, out.Rounds, time.Millisecond)
}

func TestCreateAndGetReport(t *testing.T) {
	db := openTestDB(t)
	reports := NewStorage(domain.ReportEntity, db)
	report := testReport(t, 11)

	if err := reports.Create(report.ID, report); err != nil {
		t.Fatalf("failed to store report: %v", err)
	}

	got, err := reports.GetReport(report.ID)
	if err != nil {
		t.Fatalf("failed to load report: %v", err)
	}
	if got.ID != report.ID {
		t.Errorf("id = %q, want %q", got.ID, report.ID)
	}
	if !got.CreatedAt.Equal(report.CreatedAt) {
		t.Errorf("created at = %v, want %v", got.CreatedAt, report.CreatedAt)
	}
	if !reflect.DeepEqual(got.Config, report.Config) {
		t.Errorf("config = %+v, want %+v", got.Config, report.Config)
	}
	if !reflect.DeepEqual(got.Result, report.Result) {
		t.Errorf("result = %+v, want %+v", got.Result, report.Result)
	}
	if len(got.Rounds) != len(report.Rounds) {
		t.Errorf("rounds = %d, want %d", len(got.Rounds), len(report.Rounds))
	}
}

func TestGetReportMissing(t *testing.T) {
	db := openTestDB(t)
	reports := NewStorage(domain.ReportEntity, db)

	_, err := reports.GetReport("no-such-report")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestListReports(t *testing.T) {
	db := openTestDB(t)
	reports := NewStorage(domain.ReportEntity, db)

	stored := map[string]bool{}
	for seed := int64(1); seed <= 3; seed++ {
		r := testReport(t, seed)
		if err := reports.Create(r.ID, r); err != nil {
			t.Fatal(err)
		}
		stored[r.ID] = true
	}

	list, err := reports.ListReports(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != len(stored) {
		t.Fatalf("listed %d reports, want %d", len(list), len(stored))
	}
	for _, r := range list {
		if !stored[r.ID] {
			t.Errorf("listed unknown report %q", r.ID)
		}
	}
}

func TestListReportsFiltered(t *testing.T) {
	db := openTestDB(t)
	reports := NewStorage(domain.ReportEntity, db)

	for seed := int64(1); seed <= 3; seed++ {
		r := testReport(t, seed)
		if err := reports.Create(r.ID, r); err != nil {
			t.Fatal(err)
		}
	}

	list, err := reports.ListReports(func(r domain.Report) bool {
		return r.Config.Seed == 2
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("filter matched %d reports, want 1", len(list))
	}
	if list[0].Config.Seed != 2 {
		t.Errorf("filtered report has seed %d, want 2", list[0].Config.Seed)
	}
}

func TestListReportsWrongEntity(t *testing.T) {
	db := openTestDB(t)

	if _, err := NewStorage("PLAYER", db).ListReports(nil); err == nil {
		t.Error("expected an entity mismatch error")
	}
}
