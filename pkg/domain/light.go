package domain

// LightState is the traffic light governing a round. Movement is free
// under green, movement under red risks elimination.
type LightState string

const (
	LightGreen LightState = "Green"
	LightRed   LightState = "Red"
)

// Other returns the opposite light state.
func (l LightState) Other() LightState {
	if l == LightGreen {
		return LightRed
	}
	return LightGreen
}

// Valid reports whether l is one of the two known light states.
func (l LightState) Valid() bool {
	return l == LightGreen || l == LightRed
}
