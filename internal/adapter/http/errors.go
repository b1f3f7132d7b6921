package httpadapter

import (
	"errors"

	"wumpusworld/internal/app/action"
	"wumpusworld/internal/app/auth"
	"wumpusworld/internal/app/environment"
	"wumpusworld/internal/app/observe"
	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/app/replay"
	"wumpusworld/internal/app/status"
	"wumpusworld/internal/domain/game"
	"wumpusworld/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func writeError(ctx *app.RequestContext, err error) {
	var cfgErr *world.ConfigError
	switch {
	case errors.Is(err, ErrMissingSessionCredentials):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_session_credentials", err.Error())
	case errors.Is(err, ErrMissingSessionIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_session_id", err.Error())
	case errors.Is(err, ErrMissingSessionKeyHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_session_key", err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_session_credentials", err.Error())
	case errors.Is(err, ErrInvalidOperatorToken):
		writeErrorBody(ctx, consts.StatusForbidden, "invalid_operator_token", err.Error())
	case errors.Is(err, ErrInvalidPayload):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_payload", err.Error())
	case errors.As(err, &cfgErr):
		writeErrorBody(ctx, consts.StatusBadRequest, "config_error", err.Error())
	case errors.Is(err, game.ErrNoArrowsRemaining):
		writeErrorBody(ctx, consts.StatusConflict, "no_arrows_remaining", err.Error())
	case errors.Is(err, game.ErrInvalidAction):
		writeErrorBody(ctx, consts.StatusConflict, "invalid_action", err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, auth.ErrInvalidRequest),
		errors.Is(err, environment.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// writeActionRejectedFromErr answers a refused action with the session as it
// stands, so a client can redraw without a second request.
func writeActionRejectedFromErr(ctx *app.RequestContext, err error) bool {
	var rejected *action.RejectedError
	if !errors.As(err, &rejected) {
		return false
	}
	code := "invalid_action"
	if errors.Is(err, game.ErrNoArrowsRemaining) {
		code = "no_arrows_remaining"
	}
	ctx.JSON(consts.StatusConflict, map[string]any{
		"result_code": "REJECTED",
		"error": map[string]string{
			"code":    code,
			"message": err.Error(),
		},
		"snapshot": rejected.Snapshot,
	})
	return true
}
