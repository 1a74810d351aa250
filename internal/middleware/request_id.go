package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"emergency-triage/pkg/log"
)

// HeaderRequestID carries the request ID in and out.
const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an ID, reusing the caller's if it sent
// one, and puts it on the context so log lines carry it.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog writes one line per request once it has been served.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		format := "%s %s %d %s"
		args := []any{c.Request.Method, c.FullPath(), status, time.Since(start)}

		switch {
		case status >= 500:
			mw.l.Errorf(ctx, format, args...)
		case status >= 400:
			mw.l.Warnf(ctx, format, args...)
		default:
			mw.l.Debugf(ctx, format, args...)
		}
	}
}
