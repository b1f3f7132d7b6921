package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"wumpusworld/internal/adapter/repo/gorm/model"
	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"

	"gorm.io/gorm"
)

// SessionRepo stores the whole session as JSON next to a few columns that
// are useful for querying.
type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return SessionRepo{db: db}
}

func (r SessionRepo) Get(ctx context.Context, sessionID string) (game.Session, error) {
	var m model.GameSession
	if err := getDBFromCtx(ctx, r.db).Where("session_id = ?", sessionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.Session{}, ports.ErrNotFound
		}
		return game.Session{}, err
	}
	var s game.Session
	if err := json.Unmarshal(m.State, &s); err != nil {
		return game.Session{}, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	s.ID = m.SessionID
	s.Version = m.Version
	return s, nil
}

func (r SessionRepo) SaveWithVersion(ctx context.Context, session game.Session, expectedVersion int64) error {
	state, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		m := model.GameSession{
			SessionID:   session.ID,
			Size:        int32(session.Env.Size),
			Status:      string(session.Status),
			Score:       int32(session.Score),
			ActionCount: int32(session.ActionCount),
			State:       state,
			Version:     session.Version,
			CreatedAt:   session.CreatedAt,
			UpdatedAt:   session.UpdatedAt,
		}
		if err := db.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return ports.ErrConflict
			}
			return err
		}
		return nil
	}

	updates := map[string]any{
		"size":         int32(session.Env.Size),
		"status":       string(session.Status),
		"score":        int32(session.Score),
		"action_count": int32(session.ActionCount),
		"state":        state,
		"version":      session.Version,
		"updated_at":   session.UpdatedAt,
	}
	res := db.Model(&model.GameSession{}).
		Where("session_id = ? AND version = ?", session.ID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
