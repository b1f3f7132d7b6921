package environment

import (
	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
	"wumpusworld/internal/domain/world"
)

type LoadRequest struct {
	SessionID  string
	Placements world.Placements
	View       game.View
}

type RandomRequest struct {
	SessionID string
	Size      int
	// Seed makes the layout reproducible. Nil draws a fresh seed.
	Seed *uint64
	View game.View
}

type PresetRequest struct {
	SessionID string
	Name      string
	View      game.View
}

type ResetRequest struct {
	SessionID string
	View      game.View
}

type Response struct {
	Snapshot   game.Snapshot     `json:"snapshot"`
	Placements *world.Placements `json:"placements,omitempty"`
}

type PresetsResponse struct {
	Presets []ports.Preset `json:"presets"`
}
