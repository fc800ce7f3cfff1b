package domain

// RoundRecord captures one simulation round: which light was shown and
// every player state change it caused. Rounds where nobody moved still
// produce a record with an empty movement list, so the history always
// covers rounds 1..N without gaps.
type RoundRecord struct {
	Round     int        `json:"round"`
	Light     LightState `json:"light"`
	Movements []Movement `json:"movements,omitempty"`
}
