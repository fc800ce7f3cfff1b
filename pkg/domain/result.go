package domain

// PlayerResult is the terminal snapshot of one player.
type PlayerResult struct {
	ID               string  `json:"id"`
	Status           Status  `json:"status"`
	Position         float64 `json:"position"`
	TrackLength      float64 `json:"track_length"`
	Speed            float64 `json:"speed"`
	Completion       float64 `json:"completion"`
	FinishRound      int     `json:"finish_round,omitempty"`
	EliminationRound int     `json:"elimination_round,omitempty"`
	TotalMoves       int     `json:"total_moves"`
	SuccessfulMoves  int     `json:"successful_moves"`
}

// GameStats aggregates movement bookkeeping across all rounds.
type GameStats struct {
	Rounds               int     `json:"rounds"`
	GreenLightMoves      int     `json:"green_light_moves"`
	RedLightMoves        int     `json:"red_light_moves"`
	RedLightEliminations int     `json:"red_light_eliminations"`
	TotalEliminations    int     `json:"total_eliminations"`
	TotalFinishers       int     `json:"total_finishers"`
	AverageSpeed         float64 `json:"average_speed"`
	AverageTrackLength   float64 `json:"average_track_length"`
}

// GameResult is the terminal snapshot of a whole game: every player in
// roster order plus the aggregate counts. Finished + Eliminated +
// Active always equals len(Players).
type GameResult struct {
	Players    []PlayerResult `json:"players"`
	Finished   int            `json:"finished"`
	Eliminated int            `json:"eliminated"`
	Active     int            `json:"active"`
	Stats      GameStats      `json:"stats"`
}
