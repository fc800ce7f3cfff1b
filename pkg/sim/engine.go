// Package sim runs the red light, green light elimination game: a
// roster of players with randomized speed and track length advances
// through discrete rounds under an alternating light until everyone
// has finished or been eliminated, or the round cap is reached.
package sim

import (
	"fmt"
	"time"

	"github.com/MrSolution07/SquidGame/pkg/domain"
)

type runState int

const (
	running runState = iota
	complete
)

// Engine drives one game. Engines are single use: Run plays the game
// to completion once and later calls return the same outcome.
//
// # Determinism
//
// A nonzero Seed in the configuration makes the whole game
// reproducible: roster traits and every per-round decision are drawn
// from one source seeded with it, with players processed in roster
// order. Two engines built from identical configurations produce
// identical outcomes. A zero Seed is replaced by the current time at
// construction and echoed back through Config, so even an unseeded
// game can be replayed afterwards.
type Engine struct {
	cfg  domain.GameConfig
	rule domain.MoveRule
	gen  *generator

	players []*domain.Player
	rounds  []domain.RoundRecord
	stats   domain.GameStats

	state   runState
	outcome Outcome
}

// Outcome is the terminal snapshot of a finished game.
type Outcome struct {
	Seed   int64                `json:"seed"`
	Result domain.GameResult    `json:"result"`
	Rounds []domain.RoundRecord `json:"rounds"`
}

// New validates the configuration and builds an engine with a
// generated roster.
func New(cfg domain.GameConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Seed = effectiveSeed(cfg.Seed)
	gen := newGenerator(cfg.Seed)

	return &Engine{
		cfg:     cfg,
		rule:    cfg.MoveRule(),
		gen:     gen,
		players: gen.generatePlayers(cfg),
	}, nil
}

// NewWithPlayers builds an engine around a caller supplied roster,
// bypassing trait generation. Player traits are validated the same way
// configured ranges are: a non-positive speed or track length is an
// invalid configuration.
func NewWithPlayers(cfg domain.GameConfig, players []*domain.Player) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, p := range players {
		if p.Speed <= 0 {
			return nil, fmt.Errorf("%w: player %s speed must be positive, has %v", domain.ErrInvalidConfig, p.ID, p.Speed)
		}
		if p.TrackLength <= 0 {
			return nil, fmt.Errorf("%w: player %s track length must be positive, has %v", domain.ErrInvalidConfig, p.ID, p.TrackLength)
		}
	}

	cfg.Players = len(players)
	cfg.Seed = effectiveSeed(cfg.Seed)

	return &Engine{
		cfg:     cfg,
		rule:    cfg.MoveRule(),
		gen:     newGenerator(cfg.Seed),
		players: players,
	}, nil
}

// Config returns the effective configuration, with the drawn seed
// filled in.
func (e *Engine) Config() domain.GameConfig {
	return e.cfg
}

// Run plays rounds until no player remains active or MaxRounds is
// reached, then returns the outcome. An empty roster completes
// immediately with an empty result. Once complete the engine processes
// no further rounds.
func (e *Engine) Run() Outcome {
	if e.state == complete {
		return e.outcome
	}

	e.stats.AverageSpeed, e.stats.AverageTrackLength = e.rosterAverages()

	for round := 1; round <= e.cfg.MaxRounds; round++ {
		if e.activeCount() == 0 {
			break
		}
		e.rounds = append(e.rounds, e.playRound(round))
		e.stats.Rounds = round
	}

	e.state = complete
	e.outcome = Outcome{
		Seed:   e.cfg.Seed,
		Result: e.result(),
		Rounds: e.rounds,
	}

	return e.outcome
}

// lightFor computes the light of a round from the fixed duration
// policy: phases of LightCycle rounds, starting with InitialLight.
func (e *Engine) lightFor(round int) domain.LightState {
	phase := (round - 1) / e.cfg.LightCycle
	if phase%2 == 0 {
		return e.cfg.InitialLight
	}
	return e.cfg.InitialLight.Other()
}

func (e *Engine) playRound(round int) domain.RoundRecord {
	light := e.lightFor(round)
	rec := domain.RoundRecord{Round: round, Light: light}

	for _, p := range e.players {
		if p.Status != domain.StatusActive {
			continue
		}

		m, attempted := p.Move(light, round, e.rule, e.gen.rand)
		if !attempted {
			continue
		}

		if light == domain.LightGreen {
			e.stats.GreenLightMoves++
		} else {
			e.stats.RedLightMoves++
		}

		switch m.Status {
		case domain.StatusEliminated:
			e.stats.TotalEliminations++
			if light == domain.LightRed {
				e.stats.RedLightEliminations++
			}
		case domain.StatusFinished:
			e.stats.TotalFinishers++
		}

		if m.Delta != 0 || m.Status != domain.StatusActive {
			rec.Movements = append(rec.Movements, m)
		}
	}

	return rec
}

func (e *Engine) activeCount() int {
	n := 0
	for _, p := range e.players {
		if p.Status == domain.StatusActive {
			n++
		}
	}
	return n
}

func (e *Engine) rosterAverages() (speed, track float64) {
	if len(e.players) == 0 {
		return 0, 0
	}
	for _, p := range e.players {
		speed += p.Speed
		track += p.TrackLength
	}
	n := float64(len(e.players))
	return speed / n, track / n
}

func (e *Engine) result() domain.GameResult {
	res := domain.GameResult{
		Players: make([]domain.PlayerResult, 0, len(e.players)),
	}

	for _, p := range e.players {
		res.Players = append(res.Players, domain.PlayerResult{
			ID:               p.ID,
			Status:           p.Status,
			Position:         p.Position,
			TrackLength:      p.TrackLength,
			Speed:            p.Speed,
			Completion:       p.Completion(),
			FinishRound:      p.FinishRound,
			EliminationRound: p.EliminationRound,
			TotalMoves:       p.TotalMoves,
			SuccessfulMoves:  p.SuccessfulMoves,
		})

		switch p.Status {
		case domain.StatusFinished:
			res.Finished++
		case domain.StatusEliminated:
			res.Eliminated++
		default:
			res.Active++
		}
	}

	res.Stats = e.stats
	return res
}

func effectiveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
