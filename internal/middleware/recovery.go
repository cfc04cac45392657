package middleware

import (
	"io"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/pr_reviewer/internal/apierror"
)

// Recovery turns a handler panic into 500 INTERNAL_ERROR and logs the stack through zap.
// gin's own recovery output is discarded.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Errorw("panic recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c),
			"stack", string(debug.Stack()),
		)
		apierror.Internal(c)
	})
}
