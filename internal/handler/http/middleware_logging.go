// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/shell-preferences/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access-log line per request through the logger
// placed in the context by withTraceID. Server errors are logged at error
// level and client errors at warn level.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			// nothing written: net/http answers 200 with an empty body
			status = http.StatusOK
		}

		event := log.WithLevel(accessLogLevel(status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int("size", rw.size).
			Dur("duration", time.Since(start))
		if ua := r.UserAgent(); ua != "" {
			event = event.Str("user_agent", ua)
		}
		if enc := rw.Header().Get("Content-Encoding"); enc != "" {
			event = event.Str("encoding", enc)
		}
		event.Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
