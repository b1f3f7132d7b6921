package ports

import (
	"context"
	"time"

	"wumpusworld/internal/domain/game"
	"wumpusworld/internal/domain/world"
)

type ActionResult struct {
	Outcome  game.Outcome  `json:"outcome"`
	Snapshot game.Snapshot `json:"snapshot"`
}

type ActionExecutionRecord struct {
	SessionID      string
	IdempotencyKey string
	Action         string
	Direction      string
	Result         ActionResult
	AppliedAt      time.Time
}

type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (game.Session, error)
	SaveWithVersion(ctx context.Context, session game.Session, expectedVersion int64) error
}

type ActionExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, sessionID, key string) (*ActionExecutionRecord, error)
	SaveExecution(ctx context.Context, execution ActionExecutionRecord) error
	// DeleteBySessionID drops every key recorded for the session so a new
	// game can reuse them.
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

// HistoryRecord is one entry of a session's move history. Environment loads
// and resets are recorded with an empty Outcome.Action and a Kind.
type HistoryRecord struct {
	SessionID  string       `json:"session_id"`
	Kind       string       `json:"kind"`
	Outcome    game.Outcome `json:"outcome"`
	Score      int          `json:"score"`
	OccurredAt time.Time    `json:"occurred_at"`
}

const (
	HistoryKindAction      = "action"
	HistoryKindEnvironment = "environment_loaded"
	HistoryKindReset       = "reset"
)

type HistoryRepository interface {
	Append(ctx context.Context, sessionID string, records []HistoryRecord) error
	ListBySessionID(ctx context.Context, sessionID string, limit int) ([]HistoryRecord, error)
}

type CredentialRecord struct {
	SessionID string
	KeySalt   []byte
	KeyHash   []byte
	Status    string
	CreatedAt time.Time
}

type CredentialRepository interface {
	Create(ctx context.Context, credential CredentialRecord) error
	GetBySessionID(ctx context.Context, sessionID string) (CredentialRecord, error)
}

type Preset struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Difficulty  string           `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Placements  world.Placements `json:"placements" yaml:"placements"`
}

type PresetProvider interface {
	List(ctx context.Context) ([]Preset, error)
	Get(ctx context.Context, name string) (Preset, error)
}
