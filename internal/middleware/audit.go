package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/pkg/middleware/requestid"
)

// Audit writes one structured entry per successful write so staff changes can be traced to an
// actor. Failed requests are already covered by the request logger.
func Audit(logger *zap.Logger, action models.AuditAction) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("audit")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		actor := ""
		if principal := PrincipalFrom(c); principal != nil {
			actor = principal.UserID
		}

		fields := []zap.Field{
			zap.String("action", string(action)),
			zap.String("actor", actor),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestid.Value(c)),
		}
		if id := c.Param("id"); id != "" {
			fields = append(fields, zap.String("resource_id", id))
		}
		logger.Info("write accepted", fields...)
	}
}
