package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger логирует каждый запрос: метод, путь, статус и длительность.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := l.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"clientIP": c.ClientIP(),
		})

		// приватные ошибки попадают только в лог, клиенту уходит непрозрачный ответ.
		for _, ginErr := range c.Errors {
			entry = entry.WithError(ginErr.Err)
		}

		if c.Writer.Status() >= 500 { //nolint:mnd
			entry.Error("request")
		} else {
			entry.Info("request")
		}
	}
}
