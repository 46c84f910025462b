package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "0.0.0.0:3000", cfg.ServerAddr())
	require.Equal(t, 5*time.Second, cfg.Lark.Timeout)
	require.False(t, cfg.Lark.ReviewRequests)
	require.Equal(t, "db/migrations", cfg.Postgres.MigrationsDir)
	require.Contains(t, cfg.Postgres.DSN(), "dbname=review_score_db")
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LARK_BOT_URL", "https://open.larksuite.com/open-apis/bot/v2/hook/abc")
	t.Setenv("LARK_REVIEW_REQUESTS", "true")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/scores?sslmode=disable")
	t.Setenv("GITHUB_WEBHOOK_SECRET", "s3cret")

	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "https://open.larksuite.com/open-apis/bot/v2/hook/abc", cfg.Lark.BotURL)
	require.True(t, cfg.Lark.ReviewRequests)
	require.Equal(t, "postgres://u:p@db:5432/scores?sslmode=disable", cfg.Postgres.DSN())
	require.Equal(t, "s3cret", cfg.GitHub.WebhookSecret)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:   ServerConfig{Port: 3000},
		Postgres: PostgresConfig{Host: "localhost", User: "postgres", DBName: "db"},
		Lark:     LarkConfig{Timeout: time.Second},
	}
	require.NoError(t, valid.Validate())

	noPort := valid
	noPort.Server.Port = 0
	require.Error(t, noPort.Validate())

	noHost := valid
	noHost.Postgres.Host = ""
	require.Error(t, noHost.Validate())

	urlOnly := valid
	urlOnly.Postgres = PostgresConfig{URL: "postgres://localhost/db"}
	require.NoError(t, urlOnly.Validate())

	noTimeout := valid
	noTimeout.Lark.Timeout = 0
	require.Error(t, noTimeout.Validate())
}
