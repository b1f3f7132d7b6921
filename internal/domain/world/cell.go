package world

// Cell holds the static hazards of one grid position and the percepts derived
// from them. Breeze and Stench are only ever written by the recompute passes.
type Cell struct {
	Pit     bool `json:"pit"`
	Wumpus  bool `json:"wumpus"`
	Gold    bool `json:"gold"`
	Breeze  bool `json:"breeze"`
	Stench  bool `json:"stench"`
	Glitter bool `json:"glitter"`
	Visited bool `json:"visited"`
}
