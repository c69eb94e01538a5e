package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/maham-hq/maham/pkg/cli/config"
	"github.com/maham-hq/maham/pkg/repository/memory"
	"github.com/maham-hq/maham/pkg/service/storage"
	"github.com/urfave/cli/v3"
)

// runFlags parses the given args against cfg's flags and invokes action.
func runFlags(t *testing.T, flags []cli.Flag, args []string, action func(ctx context.Context) error) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return action(ctx)
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestRepositoryConfig(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		var cfg config.Repository
		runFlags(t, cfg.Flags(), []string{"--repository-backend", "memory"}, func(ctx context.Context) error {
			repo, err := cfg.Configure(ctx)
			gt.NoError(t, err).Required()
			gt.Cast[*memory.Memory](t, repo)
			return repo.Close()
		})
	})

	t.Run("firestore requires project ID", func(t *testing.T) {
		var cfg config.Repository
		runFlags(t, cfg.Flags(), []string{"--repository-backend", "firestore"}, func(ctx context.Context) error {
			_, err := cfg.Configure(ctx)
			gt.Error(t, err)
			return nil
		})
	})

	t.Run("unknown backend rejected", func(t *testing.T) {
		var cfg config.Repository
		runFlags(t, cfg.Flags(), []string{"--repository-backend", "mysql"}, func(ctx context.Context) error {
			_, err := cfg.Configure(ctx)
			gt.Error(t, err)
			return nil
		})
	})

	t.Run("env var source", func(t *testing.T) {
		t.Setenv("MAHAM_REPOSITORY_BACKEND", "memory")
		var cfg config.Repository
		runFlags(t, cfg.Flags(), nil, func(ctx context.Context) error {
			gt.Value(t, cfg.Backend()).Equal("memory")
			return nil
		})
	})
}

func TestStorageConfig(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		var cfg config.Storage
		runFlags(t, cfg.Flags(), []string{"--storage-backend", "memory"}, func(ctx context.Context) error {
			client, err := cfg.Configure(ctx)
			gt.NoError(t, err).Required()
			gt.Cast[*storage.Memory](t, client)
			return client.Close()
		})
	})

	t.Run("gcs requires bucket", func(t *testing.T) {
		var cfg config.Storage
		runFlags(t, cfg.Flags(), []string{"--storage-backend", "gcs"}, func(ctx context.Context) error {
			_, err := cfg.Configure(ctx)
			gt.Error(t, err)
			return nil
		})
	})
}

func TestAuthConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg config.Auth
		runFlags(t, cfg.Flags(), nil, func(ctx context.Context) error {
			opts, err := cfg.Options()
			gt.NoError(t, err).Required()
			gt.Array(t, opts).Length(1)
			return nil
		})
	})

	t.Run("with secret", func(t *testing.T) {
		var cfg config.Auth
		runFlags(t, cfg.Flags(), []string{"--jwt-secret", "test-secret", "--session-ttl", "1h"}, func(ctx context.Context) error {
			opts, err := cfg.Options()
			gt.NoError(t, err).Required()
			gt.Array(t, opts).Length(2)
			return nil
		})
	})

	t.Run("non-positive TTL rejected", func(t *testing.T) {
		var cfg config.Auth
		runFlags(t, cfg.Flags(), []string{"--session-ttl", "-1s"}, func(ctx context.Context) error {
			_, err := cfg.Options()
			gt.Error(t, err)
			return nil
		})
	})
}

func TestLoggerConfig(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		var cfg config.Logger
		runFlags(t, cfg.Flags(), []string{"--log-level", "debug", "--log-format", "json"}, func(ctx context.Context) error {
			closer, err := cfg.Configure()
			gt.NoError(t, err).Required()
			closer()
			return nil
		})
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		var cfg config.Logger
		runFlags(t, cfg.Flags(), []string{"--log-level", "verbose"}, func(ctx context.Context) error {
			_, err := cfg.Configure()
			gt.Error(t, err)
			return nil
		})
	})

	t.Run("invalid format rejected", func(t *testing.T) {
		var cfg config.Logger
		runFlags(t, cfg.Flags(), []string{"--log-format", "xml"}, func(ctx context.Context) error {
			_, err := cfg.Configure()
			gt.Error(t, err)
			return nil
		})
	})
}
