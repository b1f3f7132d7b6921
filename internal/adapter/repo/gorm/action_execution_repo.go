package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"wumpusworld/internal/adapter/repo/gorm/model"
	"wumpusworld/internal/app/ports"

	"gorm.io/gorm"
)

type ActionExecutionRepo struct {
	db *gorm.DB
}

func NewActionExecutionRepo(db *gorm.DB) ActionExecutionRepo {
	return ActionExecutionRepo{db: db}
}

func (r ActionExecutionRepo) GetByIdempotencyKey(ctx context.Context, sessionID, key string) (*ports.ActionExecutionRecord, error) {
	var m model.ActionExecution
	err := getDBFromCtx(ctx, r.db).
		Where(&model.ActionExecution{SessionID: sessionID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &ports.ActionExecutionRecord{
		SessionID:      m.SessionID,
		IdempotencyKey: m.IdempotencyKey,
		Action:         m.Action,
		Direction:      m.Direction,
		Result:         decodeResult(m),
		AppliedAt:      m.AppliedAt,
	}, nil
}

func (r ActionExecutionRepo) SaveExecution(ctx context.Context, execution ports.ActionExecutionRecord) error {
	outcomeJSON, _ := json.Marshal(execution.Result.Outcome)
	snapshotJSON, _ := json.Marshal(execution.Result.Snapshot)
	m := model.ActionExecution{
		SessionID:      execution.SessionID,
		IdempotencyKey: execution.IdempotencyKey,
		Action:         execution.Action,
		Direction:      execution.Direction,
		Outcome:        outcomeJSON,
		Snapshot:       snapshotJSON,
		AppliedAt:      execution.AppliedAt,
	}
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r ActionExecutionRepo) DeleteBySessionID(ctx context.Context, sessionID string) error {
	return getDBFromCtx(ctx, r.db).
		Where(&model.ActionExecution{SessionID: sessionID}).
		Delete(&model.ActionExecution{}).Error
}

func decodeResult(m model.ActionExecution) ports.ActionResult {
	var out ports.ActionResult
	_ = json.Unmarshal(m.Outcome, &out.Outcome)
	_ = json.Unmarshal(m.Snapshot, &out.Snapshot)
	return out
}
