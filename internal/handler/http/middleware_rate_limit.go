// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/shell-preferences/internal/app"
	"github.com/MKhiriev/shell-preferences/internal/logger"
	"golang.org/x/time/rate"
)

type rateLimiter interface {
	Allow() bool
}

type limiterAdapter struct {
	limiter *rate.Limiter
}

// newTokenBucketLimiter builds a limiter shared by all clients. Non-positive
// arguments fall back to one request per second with a burst of one.
func newTokenBucketLimiter(ratePerSecond float64, burst int) rateLimiter {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}

	return &limiterAdapter{
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst),
	}
}

func (l *limiterAdapter) Allow() bool {
	if l == nil || l.limiter == nil {
		return true
	}
	return l.limiter.Allow()
}

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter.Allow() {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("rate limit exceeded")
		w.Header().Set("Retry-After", "1")
		http.Error(w, app.MsgRateLimitExceeded, http.StatusTooManyRequests)
	})
}
