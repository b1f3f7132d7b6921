package game

type Rules struct {
	MovePenalty    int `json:"move_penalty"`
	ArrowPenalty   int `json:"arrow_penalty"`
	DeathPenalty   int `json:"death_penalty"`
	GoldReward     int `json:"gold_reward"`
	ClimbGoldBonus int `json:"climb_gold_bonus"`
	KillReward     int `json:"kill_reward"`
	InitialArrows  int `json:"initial_arrows"`
	// MaxActions ends a game that is still running after this many actions.
	// Zero disables the limit.
	MaxActions int `json:"max_actions"`
}

func DefaultRules() Rules {
	return Rules{
		MovePenalty:    -1,
		ArrowPenalty:   -10,
		DeathPenalty:   -1000,
		GoldReward:     1000,
		ClimbGoldBonus: 1000,
		KillReward:     500,
		InitialArrows:  1,
		MaxActions:     1000,
	}
}
