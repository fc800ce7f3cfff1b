package games

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/rs/zerolog/log"

	"github.com/MrSolution07/SquidGame/pkg/domain"
	"github.com/MrSolution07/SquidGame/pkg/sim"
	"github.com/MrSolution07/SquidGame/pkg/storage"
)

// DefaultListLimit caps how many summaries a listing returns unless
// the service is configured otherwise.
const DefaultListLimit = 100

// Service runs simulations and keeps their reports in the store. The
// database is owned by the caller, the service only writes through it.
type Service struct {
	reports *storage.BadgerStorage

	// ListLimit bounds Summaries, zero means unbounded.
	ListLimit int
}

func NewService(db *badger.DB) *Service {
	return &Service{
		reports:   storage.NewStorage(domain.ReportEntity, db),
		ListLimit: DefaultListLimit,
	}
}

// Run plays one game from cfg, persists the report and returns it.
func (s *Service) Run(cfg domain.GameConfig) (*domain.Report, error) {
	eng, err := sim.New(cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out := eng.Run()
	report := domain.NewReport(eng.Config(), out.Result, out.Rounds, time.Since(start))

	if err := s.reports.Create(report.ID, report); err != nil {
		return nil, fmt.Errorf("failed to store report %s: %w", report.ID, err)
	}

	log.Info().
		Str("report", report.ID).
		Int64("seed", out.Seed).
		Int("rounds", out.Result.Stats.Rounds).
		Int("finished", out.Result.Finished).
		Int("eliminated", out.Result.Eliminated).
		Int("active", out.Result.Active).
		Msg("game complete")

	return report, nil
}

// Report loads one stored report by id.
func (s *Service) Report(id string) (domain.Report, error) {
	return s.reports.GetReport(id)
}

// Summaries lists stored reports in their listing view, at most
// ListLimit of them. Report keys are ksuids, so the store iterates in
// creation order and the limit keeps the newest ones.
func (s *Service) Summaries() ([]domain.ReportSummary, error) {
	reports, err := s.reports.ListReports(nil)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ReportSummary, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, r.Summary())
	}
	if s.ListLimit > 0 && len(summaries) > s.ListLimit {
		summaries = summaries[len(summaries)-s.ListLimit:]
	}

	return summaries, nil
}
