package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"bandbook/internal/logger"
	"bandbook/internal/view"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// requestLogger tags every request with a uuid and emits one access-log
// line when it completes.
func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.New().String()
			w.Header().Set("X-Request-Id", requestID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)

			log.LogAPI(r.Method, r.URL.Path, fmt.Sprintf("%d [%s]", rec.status, requestID), time.Since(start).String())
		})
	}
}

// recoverer turns a handler panic into the rendered 500 page instead of
// a dropped connection.
func recoverer(log *logger.Logger, renderer *view.Renderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Error("HTTP", fmt.Sprintf("panic serving %s %s: %v", r.Method, r.URL.Path, rvr))
					renderer.RenderServerError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
