package models

const ChampionPending = "Pendiente"

// CrossPairing is a semifinal slot. A and B stay nil until the
// corresponding rank position exists.
type CrossPairing struct {
	Label string  `json:"label"`
	A     *string `json:"a"`
	B     *string `json:"b"`
}

// Resolved reports whether both sides of the pairing are known.
func (p CrossPairing) Resolved() bool {
	return p.A != nil && p.B != nil
}

type FinalResult struct {
	Champion string `json:"champion"`
}

type Crosses struct {
	Semifinals []CrossPairing `json:"semifinals"`
	Final      FinalResult    `json:"final"`
}
