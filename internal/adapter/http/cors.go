package httpadapter

import (
	"context"
	"slices"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const corsAllowMethods = "GET,POST,OPTIONS"
const corsAllowHeaders = "Content-Type,X-Session-ID,X-Session-Key,X-Operator-Token"

// applyCORSHeaders allows every origin when allowed is empty or holds "*";
// otherwise only a listed request origin is echoed back.
func applyCORSHeaders(ctx *app.RequestContext, allowed []string) {
	origin := "*"
	if len(allowed) > 0 && !slices.Contains(allowed, "*") {
		reqOrigin := string(ctx.Request.Header.Peek("Origin"))
		if reqOrigin == "" || !slices.Contains(allowed, reqOrigin) {
			return
		}
		origin = reqOrigin
		ctx.Response.Header.Set("Vary", "Origin")
	}
	ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
	ctx.Response.Header.Set("Access-Control-Allow-Methods", corsAllowMethods)
	ctx.Response.Header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	ctx.Response.Header.Set("Access-Control-Max-Age", "600")
}

func corsMiddleware(allowed []string) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		applyCORSHeaders(ctx, allowed)
		if string(ctx.Method()) == consts.MethodOptions {
			ctx.AbortWithStatus(consts.StatusNoContent)
			return
		}
		ctx.Next(c)
	}
}
