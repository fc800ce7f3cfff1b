package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks a configuration that violates a game
// invariant. All validation failures wrap it.
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig holds everything needed to run one game. A zero Seed asks
// the engine to draw one at start, the drawn value is echoed back in
// the report so any run can be replayed.
type GameConfig struct {
	Players int `json:"players"`

	// trait ranges, drawn uniformly per player
	SpeedMin float64 `json:"speed_min"`
	SpeedMax float64 `json:"speed_max"`
	TrackMin float64 `json:"track_min"`
	TrackMax float64 `json:"track_max"`

	// light policy: each phase lasts LightCycle rounds, starting with
	// InitialLight on round one
	LightCycle   int        `json:"light_cycle"`
	InitialLight LightState `json:"initial_light"`

	MaxRounds int `json:"max_rounds"`

	GreenMoveChance      float64 `json:"green_move_chance"`
	RedMoveChance        float64 `json:"red_move_chance"`
	RedEliminationChance float64 `json:"red_elimination_chance"`
	MoveFractionMin      float64 `json:"move_fraction_min"`
	MoveFractionMax      float64 `json:"move_fraction_max"`

	Seed int64 `json:"seed"`
}

// DefaultConfig returns the classic game setup: 20 players, speeds in
// [0.5, 2.0], tracks in [8, 15], the light toggling every round and a
// red light violation always caught.
func DefaultConfig() GameConfig {
	return GameConfig{
		Players:              20,
		SpeedMin:             0.5,
		SpeedMax:             2.0,
		TrackMin:             8.0,
		TrackMax:             15.0,
		LightCycle:           1,
		InitialLight:         LightGreen,
		MaxRounds:            100,
		GreenMoveChance:      0.8,
		RedMoveChance:        0.05,
		RedEliminationChance: 1.0,
		MoveFractionMin:      0.0,
		MoveFractionMax:      1.0,
	}
}

// Validate rejects configurations that would produce undefined
// movement. It returns the first violation found, wrapped around
// ErrInvalidConfig.
func (c GameConfig) Validate() error {
	switch {
	case c.Players < 0:
		return fmt.Errorf("%w: player count must not be negative, has %d", ErrInvalidConfig, c.Players)
	case c.SpeedMin <= 0:
		return fmt.Errorf("%w: speed range must be positive, has min %v", ErrInvalidConfig, c.SpeedMin)
	case c.SpeedMax < c.SpeedMin:
		return fmt.Errorf("%w: speed range inverted, [%v, %v]", ErrInvalidConfig, c.SpeedMin, c.SpeedMax)
	case c.TrackMin <= 0:
		return fmt.Errorf("%w: track length range must be positive, has min %v", ErrInvalidConfig, c.TrackMin)
	case c.TrackMax < c.TrackMin:
		return fmt.Errorf("%w: track length range inverted, [%v, %v]", ErrInvalidConfig, c.TrackMin, c.TrackMax)
	case c.LightCycle < 1:
		return fmt.Errorf("%w: light cycle must last at least one round, has %d", ErrInvalidConfig, c.LightCycle)
	case !c.InitialLight.Valid():
		return fmt.Errorf("%w: unknown initial light state %q", ErrInvalidConfig, c.InitialLight)
	case c.MaxRounds < 1:
		return fmt.Errorf("%w: max rounds must be at least one, has %d", ErrInvalidConfig, c.MaxRounds)
	case !validChance(c.GreenMoveChance):
		return fmt.Errorf("%w: green move chance must be between 0 and 1, has %v", ErrInvalidConfig, c.GreenMoveChance)
	case !validChance(c.RedMoveChance):
		return fmt.Errorf("%w: red move chance must be between 0 and 1, has %v", ErrInvalidConfig, c.RedMoveChance)
	case !validChance(c.RedEliminationChance):
		return fmt.Errorf("%w: red elimination chance must be between 0 and 1, has %v", ErrInvalidConfig, c.RedEliminationChance)
	case c.MoveFractionMin < 0 || c.MoveFractionMax > 1:
		return fmt.Errorf("%w: move fraction bounds must stay within [0, 1], has [%v, %v]", ErrInvalidConfig, c.MoveFractionMin, c.MoveFractionMax)
	case c.MoveFractionMax < c.MoveFractionMin:
		return fmt.Errorf("%w: move fraction bounds inverted, [%v, %v]", ErrInvalidConfig, c.MoveFractionMin, c.MoveFractionMax)
	}

	return nil
}

// MoveRule extracts the per-round movement parameters.
func (c GameConfig) MoveRule() MoveRule {
	return MoveRule{
		GreenMoveChance:      c.GreenMoveChance,
		RedMoveChance:        c.RedMoveChance,
		RedEliminationChance: c.RedEliminationChance,
		MoveFractionMin:      c.MoveFractionMin,
		MoveFractionMax:      c.MoveFractionMax,
	}
}

func validChance(c float64) bool {
	return c >= 0 && c <= 1
}
