package v1

import (
	"net/http"
	"time"

	"github.com/MGTheTrain/aes-workbench/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation ID
const RequestIDHeader = "X-Request-ID"

// RequestID reuses an incoming X-Request-ID or assigns a fresh UUID and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx.Set(RequestIDHeader, requestID)
		ctx.Header(RequestIDHeader, requestID)
		ctx.Next()
	}
}

// MaxBodySize caps the size of request bodies.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)
		ctx.Next()
	}
}

// RequestLogger logs method, path, status and latency. Bodies are never logged
// since they carry keys and plaintext.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		log.Info(
			ctx.Request.Method, " ", ctx.Request.URL.Path,
			" status=", ctx.Writer.Status(),
			" latency=", time.Since(start),
			" request_id=", ctx.GetString(RequestIDHeader),
		)
	}
}
