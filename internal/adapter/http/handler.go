package httpadapter

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"
	"strings"

	"wumpusworld/internal/app/action"
	"wumpusworld/internal/app/auth"
	"wumpusworld/internal/app/environment"
	"wumpusworld/internal/app/observe"
	"wumpusworld/internal/app/replay"
	"wumpusworld/internal/app/status"
	"wumpusworld/internal/domain/game"
	"wumpusworld/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	sessionIDHeader     = "X-Session-ID"
	sessionKeyHeader    = "X-Session-Key"
	operatorTokenHeader = "X-Operator-Token"
)

type Handler struct {
	RegisterUC    auth.RegisterUseCase
	AuthUC        auth.VerifyUseCase
	EnvironmentUC environment.UseCase
	ActionUC      action.UseCase
	ObserveUC     observe.UseCase
	StatusUC      status.UseCase
	ReplayUC      replay.UseCase
	KPI           kpiSnapshotProvider

	// OperatorToken unlocks the unmasked view. Empty disables it.
	OperatorToken  string
	AllowedOrigins []string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.AllowedOrigins))

	g := s.Group("/api/game")
	g.POST("/session", h.register)
	g.POST("/environment", h.loadEnvironment)
	g.POST("/environment/random", h.randomEnvironment)
	g.POST("/environment/preset", h.presetEnvironment)
	g.GET("/presets", h.presets)
	g.POST("/reset", h.reset)
	g.POST("/action", h.action)
	g.GET("/snapshot", h.snapshot)
	g.GET("/stats", h.stats)
	g.GET("/history", h.history)

	s.GET("/ops/kpi", h.kpi)
}

type registerRequest struct {
	Size int `json:"size"`
}

type randomRequest struct {
	Size int     `json:"size"`
	Seed *uint64 `json:"seed"`
}

type presetRequest struct {
	Name string `json:"name"`
}

type actionRequest struct {
	Action         string `json:"action"`
	Direction      string `json:"direction,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

func (h Handler) register(c context.Context, ctx *app.RequestContext) {
	var body registerRequest
	if err := decodeValidated(ctx.Request.Body(), sessionSchema, &body); err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.RegisterUC.Execute(c, auth.RegisterRequest{Size: body.Size})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) loadEnvironment(c context.Context, ctx *app.RequestContext) {
	sessionID, view, err := h.authorize(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body world.Placements
	if err := decodeValidated(ctx.Request.Body(), environmentSchema, &body); err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.EnvironmentUC.Load(c, environment.LoadRequest{SessionID: sessionID, Placements: body, View: view})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) randomEnvironment(c context.Context, ctx *app.RequestContext) {
	sessionID, view, err := h.authorize(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body randomRequest
	if err := decodeValidated(ctx.Request.Body(), randomSchema, &body); err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.EnvironmentUC.Random(c, environment.RandomRequest{SessionID: sessionID, Size: body.Size, Seed: body.Seed, View: view})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) presetEnvironment(c context.Context, ctx *app.RequestContext) {
	sessionID, view, err := h.authorize(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body presetRequest
	if err := decodeValidated(ctx.Request.Body(), presetSchema, &body); err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.EnvironmentUC.Preset(c, environment.PresetRequest{SessionID: sessionID, Name: body.Name, View: view})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) presets(c context.Context, ctx *app.RequestContext) {
	resp, err := h.EnvironmentUC.ListPresets(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	sessionID, view, err := h.authorize(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.EnvironmentUC.Reset(c, environment.ResetRequest{SessionID: sessionID, View: view})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	sessionID, view, err := h.authorize(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body actionRequest
	if err := decodeValidated(ctx.Request.Body(), actionSchema, &body); err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.ActionUC.Execute(c, action.Request{
		SessionID:      sessionID,
		IdempotencyKey: body.IdempotencyKey,
		Action:         game.ActionName(body.Action),
		Direction:      body.Direction,
		View:           view,
	})
	if err != nil {
		if writeActionRejectedFromErr(ctx, err) {
			return
		}
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) snapshot(c context.Context, ctx *app.RequestContext) {
	sessionID, view, err := h.authorize(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.ObserveUC.Execute(c, observe.Request{SessionID: sessionID, View: view})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) stats(c context.Context, ctx *app.RequestContext) {
	sessionID, _, err := h.authorize(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.StatusUC.Execute(c, status.Request{SessionID: sessionID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	sessionID, _, err := h.authorize(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	occurredFrom, _ := strconv.ParseInt(ctx.Query("occurred_from"), 10, 64)
	occurredTo, _ := strconv.ParseInt(ctx.Query("occurred_to"), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		SessionID:    sessionID,
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

var ErrMissingSessionIDHeader = errors.New("missing x-session-id header")
var ErrMissingSessionKeyHeader = errors.New("missing x-session-key header")
var ErrMissingSessionCredentials = errors.New("missing session credentials")
var ErrInvalidOperatorToken = errors.New("invalid operator token")

// authorize verifies the session headers and picks the view: operator when a
// matching X-Operator-Token is sent, player otherwise.
func (h Handler) authorize(c context.Context, ctx *app.RequestContext) (string, game.View, error) {
	sessionID, err := h.requireAuthenticatedSession(c, ctx)
	if err != nil {
		return "", "", err
	}
	view, err := h.viewFor(ctx)
	if err != nil {
		return "", "", err
	}
	return sessionID, view, nil
}

func (h Handler) requireAuthenticatedSession(c context.Context, ctx *app.RequestContext) (string, error) {
	sessionID := strings.TrimSpace(string(ctx.GetHeader(sessionIDHeader)))
	sessionKey := strings.TrimSpace(string(ctx.GetHeader(sessionKeyHeader)))
	if sessionID == "" && sessionKey == "" {
		return "", ErrMissingSessionCredentials
	}
	if sessionID == "" {
		return "", ErrMissingSessionIDHeader
	}
	if sessionKey == "" {
		return "", ErrMissingSessionKeyHeader
	}
	if err := h.AuthUC.Execute(c, auth.VerifyRequest{
		SessionID:  sessionID,
		SessionKey: sessionKey,
	}); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (h Handler) viewFor(ctx *app.RequestContext) (game.View, error) {
	token := strings.TrimSpace(string(ctx.GetHeader(operatorTokenHeader)))
	if token == "" {
		return game.ViewPlayer, nil
	}
	if h.OperatorToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.OperatorToken)) != 1 {
		return "", ErrInvalidOperatorToken
	}
	return game.ViewOperator, nil
}
