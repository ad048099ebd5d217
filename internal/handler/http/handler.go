// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/shell-preferences/internal/config"
	"github.com/MKhiriev/shell-preferences/internal/logger"
	"github.com/MKhiriev/shell-preferences/internal/service"
)

type Handler struct {
	services *service.Services

	limiter        rateLimiter
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A zero cfg.RateLimitRPS disables
// rate limiting and a zero cfg.RequestTimeout disables the per-request
// deadline.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		requestTimeout: config.Value(cfg.RequestTimeout),
		logger:         logger,
	}

	rps := config.Value(cfg.RateLimitRPS)
	if rps > 0 {
		h.limiter = newTokenBucketLimiter(rps, cfg.RateLimitBurst)
	}

	logger.Info().
		Float64("rate_limit_rps", rps).
		Int("rate_limit_burst", cfg.RateLimitBurst).
		Dur("request_timeout", h.requestTimeout).
		Msg("http handler created")
	return h
}
