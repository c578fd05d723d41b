// Package logging configures the process-wide logrus logger and provides the
// request logging middleware.
package logging

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/user/fitfusion-go/config"
)

// Setup applies cfg to the standard logrus logger. Production gets JSON;
// everything else gets human-readable text.
func Setup(cfg *config.LogConfig) {
	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)
	logrus.WithField("level", level.String()).Info("logger initialized")
}

// RequestLogger logs one entry per request once the response is written.
func RequestLogger(logger logrus.FieldLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path += "?" + r.URL.RawQuery
			}

			entry := logger.WithFields(logrus.Fields{
				"status_code": status,
				"latency_ms":  time.Since(start).Milliseconds(),
				"client_ip":   r.RemoteAddr,
				"method":      r.Method,
				"path":        path,
				"bytes":       ww.BytesWritten(),
				"request_id":  middleware.GetReqID(r.Context()),
			})
			switch {
			case status >= http.StatusInternalServerError:
				entry.Error("Server error")
			case status >= http.StatusBadRequest:
				entry.Warn("Client error")
			default:
				entry.Info("Request handled")
			}
		})
	}
}
