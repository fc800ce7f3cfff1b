// Package render prints finished game reports for humans. It only
// consumes the structured report, the engine knows nothing about it.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MrSolution07/SquidGame/pkg/domain"
)

const listLimit = 10

// Console renders reports as plain text.
type Console struct {
	out     io.Writer
	verbose bool
}

// NewConsole renders to out. With verbose set every round gets its own
// line, otherwise only the final summary is printed.
func NewConsole(out io.Writer, verbose bool) *Console {
	return &Console{out: out, verbose: verbose}
}

// Render prints the report.
func (c *Console) Render(report *domain.Report) {
	c.header(report)
	if c.verbose {
		for _, round := range report.Rounds {
			c.round(round)
		}
	}
	c.summary(report)
}

func (c *Console) header(report *domain.Report) {
	cfg := report.Config
	fmt.Fprintf(c.out, "game %s (seed %d)\n", report.ID, cfg.Seed)
	fmt.Fprintf(c.out, "players: %d, max rounds: %d, light cycle: %d\n",
		cfg.Players, cfg.MaxRounds, cfg.LightCycle)
	fmt.Fprintf(c.out, "average speed: %.2f units/round, average track: %.2f units\n",
		report.Result.Stats.AverageSpeed, report.Result.Stats.AverageTrackLength)
}

func (c *Console) round(rec domain.RoundRecord) {
	var finished, eliminated []string
	for _, m := range rec.Movements {
		switch m.Status {
		case domain.StatusFinished:
			finished = append(finished, m.PlayerID)
		case domain.StatusEliminated:
			eliminated = append(eliminated, m.PlayerID)
		}
	}

	fmt.Fprintf(c.out, "round %3d [%-5s] moved %d, finished %d%s, eliminated %d%s\n",
		rec.Round,
		rec.Light,
		len(rec.Movements),
		len(finished), names(finished),
		len(eliminated), names(eliminated),
	)
}

// names lists up to five ids in parentheses, empty for an empty list.
func names(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	if len(ids) > 5 {
		return fmt.Sprintf(" (%s, ...)", strings.Join(ids[:5], ", "))
	}
	return fmt.Sprintf(" (%s)", strings.Join(ids, ", "))
}

func (c *Console) summary(report *domain.Report) {
	res := report.Result
	total := len(res.Players)

	fmt.Fprintln(c.out, strings.Repeat("=", 60))
	fmt.Fprintln(c.out, "GAME SUMMARY")
	fmt.Fprintln(c.out, strings.Repeat("=", 60))
	fmt.Fprintf(c.out, "rounds played: %d (duration %.2fs)\n", res.Stats.Rounds, report.ElapsedSeconds)
	fmt.Fprintf(c.out, "players: %d, finished: %d, eliminated: %d, still active: %d\n",
		total, res.Finished, res.Eliminated, res.Active)
	if total > 0 {
		fmt.Fprintf(c.out, "finish rate: %.1f%%, survival rate: %.1f%%\n",
			rate(res.Finished, total), rate(res.Active, total))
	}

	c.winners(res)
	c.leaders(res)

	fmt.Fprintf(c.out, "movement: green moves %d, red moves %d, red eliminations %d\n",
		res.Stats.GreenLightMoves, res.Stats.RedLightMoves, res.Stats.RedLightEliminations)
}

// winners lists finished players, earliest finish first.
func (c *Console) winners(res domain.GameResult) {
	var finished []domain.PlayerResult
	for _, p := range res.Players {
		if p.Status == domain.StatusFinished {
			finished = append(finished, p)
		}
	}
	if len(finished) == 0 {
		return
	}

	sort.Slice(finished, func(i, j int) bool {
		if finished[i].FinishRound != finished[j].FinishRound {
			return finished[i].FinishRound < finished[j].FinishRound
		}
		return finished[i].ID < finished[j].ID
	})

	fmt.Fprintln(c.out, "winners:")
	for i, p := range finished {
		if i == listLimit {
			fmt.Fprintf(c.out, "  ... and %d more\n", len(finished)-listLimit)
			break
		}
		fmt.Fprintf(c.out, "  %d. %s - finished round %d (speed %.2f, track %.1f)\n",
			i+1, p.ID, p.FinishRound, p.Speed, p.TrackLength)
	}
}

// leaders lists still active players, furthest along first.
func (c *Console) leaders(res domain.GameResult) {
	var active []domain.PlayerResult
	for _, p := range res.Players {
		if p.Status == domain.StatusActive {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return
	}

	sort.Slice(active, func(i, j int) bool {
		if active[i].Completion != active[j].Completion {
			return active[i].Completion > active[j].Completion
		}
		return active[i].ID < active[j].ID
	})

	fmt.Fprintln(c.out, "leaders:")
	for i, p := range active {
		if i == listLimit {
			fmt.Fprintf(c.out, "  ... and %d more\n", len(active)-listLimit)
			break
		}
		fmt.Fprintf(c.out, "  %d. %s - %.1f/%.1f (%.1f%%) (speed %.2f)\n",
			i+1, p.ID, p.Position, p.TrackLength, p.Completion*100, p.Speed)
	}
}

func rate(part, total int) float64 {
	return float64(part) / float64(total) * 100
}
