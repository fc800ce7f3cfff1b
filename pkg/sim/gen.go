package sim

import (
	"math/rand"

	"github.com/MrSolution07/SquidGame/pkg/domain"
)

// generator wraps a single seeded source. Every random draw of a game,
// roster traits and per-round decisions alike, goes through it.
type generator struct{ rand *rand.Rand }

func newGenerator(seed int64) *generator {
	return &generator{rand.New(rand.NewSource(seed))}
}

func (g *generator) betweenFloat(min, max float64) float64 {
	return min + (max-min)*g.rand.Float64()
}

// generatePlayers draws the roster: sequential zero padded ids with
// speed and track length uniform within the configured ranges.
func (g *generator) generatePlayers(cfg domain.GameConfig) []*domain.Player {
	players := make([]*domain.Player, 0, cfg.Players)
	for i := 0; i < cfg.Players; i++ {
		speed := g.betweenFloat(cfg.SpeedMin, cfg.SpeedMax)
		track := g.betweenFloat(cfg.TrackMin, cfg.TrackMax)
		players = append(players, domain.NewPlayer(i+1, speed, track))
	}

	return players
}
