package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"user-directory-service/internal/adapter/gin/handler"
	"user-directory-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery is the top-level error boundary for every route. A panic in a
// handler, or an error attached with c.Error that the handler did not answer,
// becomes a 500 response whose "error" field carries the failure text.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			// Aborted connections are not ours to answer
			if r == http.ErrAbortHandler {
				panic(r)
			}

			err := panicError(r)
			logger.WithContext(c.Request.Context(), log).Error("panic recovered",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)

			if !c.Writer.Written() {
				handler.InternalError(c, err)
			}
			c.Abort()
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		handler.InternalError(c, c.Errors.Last().Err)
	}
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.New(fmt.Sprint(r))
}
