package gormrepo

import (
	"context"
	"encoding/json"

	"wumpusworld/internal/adapter/repo/gorm/model"
	"wumpusworld/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HistoryRepo struct {
	db *gorm.DB
}

func NewHistoryRepo(db *gorm.DB) HistoryRepo {
	return HistoryRepo{db: db}
}

func (r HistoryRepo) Append(ctx context.Context, sessionID string, records []ports.HistoryRecord) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]model.HistoryEntry, 0, len(records))
	for _, rec := range records {
		b, _ := json.Marshal(rec.Outcome)
		rows = append(rows, model.HistoryEntry{
			SessionID:  sessionID,
			Kind:       rec.Kind,
			Action:     string(rec.Outcome.Action),
			Success:    rec.Outcome.Success,
			Score:      int32(rec.Score),
			Outcome:    b,
			OccurredAt: rec.OccurredAt,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

// ListBySessionID returns up to limit records, newest first.
func (r HistoryRepo) ListBySessionID(ctx context.Context, sessionID string, limit int) ([]ports.HistoryRecord, error) {
	rows := []model.HistoryEntry{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.HistoryEntry{SessionID: sessionID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "occurred_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		rec := ports.HistoryRecord{
			SessionID:  row.SessionID,
			Kind:       row.Kind,
			Score:      int(row.Score),
			OccurredAt: row.OccurredAt,
		}
		if len(row.Outcome) > 0 {
			_ = json.Unmarshal(row.Outcome, &rec.Outcome)
		}
		out = append(out, rec)
	}
	return out, nil
}
