package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Auth holds CLI flags for session and token configuration
type Auth struct {
	jwtSecret  string `masq:"secret"`
	sessionTTL time.Duration
}

// Flags returns CLI flags for authentication configuration
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwt-secret",
			Usage:       "Secret key for signing session tokens (random per process if omitted)",
			Sources:     cli.EnvVars("MAHAM_JWT_SECRET"),
			Destination: &a.jwtSecret,
		},
		&cli.DurationFlag{
			Name:        "session-ttl",
			Usage:       "Session lifetime",
			Value:       24 * time.Hour,
			Sources:     cli.EnvVars("MAHAM_SESSION_TTL"),
			Destination: &a.sessionTTL,
		},
	}
}

// Options converts the flags into use case options
func (a *Auth) Options() ([]usecase.Option, error) {
	if a.sessionTTL <= 0 {
		return nil, goerr.New("session-ttl must be positive", goerr.V("ttl", a.sessionTTL))
	}

	opts := []usecase.Option{
		usecase.WithSessionTTL(a.sessionTTL),
	}
	if a.jwtSecret != "" {
		opts = append(opts, usecase.WithJWTSecret([]byte(a.jwtSecret)))
	}

	return opts, nil
}
