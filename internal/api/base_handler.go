package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/country-gallery-api/internal/utils"
)

type BaseHandler struct{}

// RequestCtx carries values set by middleware, such as the session claims,
// into the request context under typed keys.
func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		ctx = context.WithValue(ctx, utils.ContextKey(k), v)
	}
	return ctx
}
