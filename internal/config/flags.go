// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the service configuration flags from args.
//
// Flags:
//
//	-a, --address          server address in format [host]:port
//	    --request-timeout  request timeout (e.g., "30s", "1m"), 0 disables it
//	    --rate-limit-rps   sustained requests per second, 0 disables limiting
//	    --rate-limit-burst token bucket size
//	    --app-title        shell title assigned to app.name
//	    --override-file    additional JSON/YAML override layer
//	-c, --config           json file path with configs
//	    --version-string   version reported by /api/version
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var rateLimitRPS float64
	var rateLimitBurst int
	var appTitle string
	var overrideFile string
	var jsonConfigPath string
	var version string

	fs := pflag.NewFlagSet("prefs-server", pflag.ContinueOnError)
	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&rateLimitRPS, "rate-limit-rps", 0, "Sustained requests per second")
	fs.IntVar(&rateLimitBurst, "rate-limit-burst", 0, "Rate limiter burst size")
	fs.StringVar(&appTitle, "app-title", "", "Shell title assigned to app.name")
	fs.StringVar(&overrideFile, "override-file", "", "Additional JSON or YAML override layer")
	fs.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&version, "version-string", "", "Version reported by the service")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: version,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RateLimitBurst: rateLimitBurst,
		},
		Preferences: Preferences{
			AppTitle:     appTitle,
			OverrideFile: overrideFile,
		},
		JSONFilePath: jsonConfigPath,
	}

	// only flags given on the command line may override other layers
	if fs.Changed("request-timeout") {
		cfg.Server.RequestTimeout = &requestTimeout
	}
	if fs.Changed("rate-limit-rps") {
		cfg.Server.RateLimitRPS = &rateLimitRPS
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Any host other than "localhost"
// must be an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type names the value kind in pflag usage output.
func (a *NetAddress) Type() string {
	return "address"
}
