package domain

import (
	"fmt"
	"math/rand"
)

// Status is the lifecycle state of a player within one game.
// Eliminated and Finished are terminal, a player never leaves them.
type Status string

const (
	StatusActive     Status = "Active"
	StatusEliminated Status = "Eliminated"
	StatusFinished   Status = "Finished"
)

// Terminal reports whether the status is a terminal one.
func (s Status) Terminal() bool {
	return s == StatusEliminated || s == StatusFinished
}

// Player is one participant. Speed and TrackLength are drawn once at
// game start and never change, the rest is per-round state.
type Player struct {
	ID          string  `json:"id"`
	Speed       float64 `json:"speed"`
	TrackLength float64 `json:"track_length"`

	Position         float64 `json:"position"`
	Status           Status  `json:"status"`
	TotalMoves       int     `json:"total_moves"`
	SuccessfulMoves  int     `json:"successful_moves"`
	FinishRound      int     `json:"finish_round,omitempty"`
	EliminationRound int     `json:"elimination_round,omitempty"`
}

// NewPlayer returns an active player at the start line. Sequential ids
// are zero padded to keep reports sortable ("001", "002", ...).
func NewPlayer(number int, speed, trackLength float64) *Player {
	return &Player{
		ID:          fmt.Sprintf("%03d", number),
		Speed:       speed,
		TrackLength: trackLength,
		Status:      StatusActive,
	}
}

// Completion is the fraction of the track covered, in [0, 1].
func (p *Player) Completion() float64 {
	if p.TrackLength <= 0 {
		return 0
	}
	return p.Position / p.TrackLength
}

// MoveRule holds the per-round movement parameters taken from the game
// configuration.
type MoveRule struct {
	GreenMoveChance      float64
	RedMoveChance        float64
	RedEliminationChance float64
	MoveFractionMin      float64
	MoveFractionMax      float64
}

// Movement is the outcome of one player's step in one round, recorded
// only when the step changed player state. Delta is the credited
// distance, zero for an eliminated player and clamped at the finish
// line for a finishing one.
type Movement struct {
	PlayerID string  `json:"player_id"`
	Delta    float64 `json:"delta"`
	Position float64 `json:"position"`
	Status   Status  `json:"status"`
}

// Move applies one round of movement to an active player and reports
// whether a move was attempted. The rng draws happen in a fixed order
// (attempt, distance, catch) so that a seeded source replays the exact
// same game.
//
// The player attempts a move with the per-light chance from rule. An
// attempted distance is Speed scaled by a uniform draw from the
// configured fraction bounds. Crossing the finish line always wins:
// the position is clamped to TrackLength and the player finishes even
// when the same step would have been a red light violation. A caught
// red light move eliminates the player and credits no distance.
// Calling Move on a non-active player is a no-op.
func (p *Player) Move(light LightState, round int, rule MoveRule, rng *rand.Rand) (Movement, bool) {
	if p.Status != StatusActive {
		return Movement{}, false
	}

	chance := rule.GreenMoveChance
	if light == LightRed {
		chance = rule.RedMoveChance
	}
	if rng.Float64() >= chance {
		return Movement{}, false
	}

	fraction := rule.MoveFractionMin + (rule.MoveFractionMax-rule.MoveFractionMin)*rng.Float64()
	distance := p.Speed * fraction
	p.TotalMoves++

	if p.Position+distance >= p.TrackLength {
		credited := p.TrackLength - p.Position
		p.Position = p.TrackLength
		p.Status = StatusFinished
		p.FinishRound = round
		p.SuccessfulMoves++
		return p.movement(credited), true
	}

	if light == LightRed && rng.Float64() < rule.RedEliminationChance {
		p.Status = StatusEliminated
		p.EliminationRound = round
		return p.movement(0), true
	}

	p.Position += distance
	p.SuccessfulMoves++
	return p.movement(distance), true
}

func (p *Player) movement(delta float64) Movement {
	return Movement{
		PlayerID: p.ID,
		Delta:    delta,
		Position: p.Position,
		Status:   p.Status,
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("player: %v, pos: %.1f/%.1f, speed: %.2f, status: %v",
		p.ID,
		p.Position,
		p.TrackLength,
		p.Speed,
		p.Status,
	)
}
