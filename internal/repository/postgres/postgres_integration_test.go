package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/miscs-test/nextjs-learn-dashboard/config"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScoresIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	require.NoError(t, repo.UpsertReviewer(ctx, entities.ReviewerScore{GithubID: "alice", DisplayName: "Alice", BaseScore: 10}))
	require.NoError(t, repo.UpsertReviewer(ctx, entities.ReviewerScore{GithubID: "bob", DisplayName: "Bob", BaseScore: 8}))
	require.NoError(t, repo.UpsertReviewer(ctx, entities.ReviewerScore{GithubID: "carol", DisplayName: "Carol", BaseScore: 9}))

	require.NoError(t, repo.SetExtraScore(ctx, "bob", 3))

	scores, err := repo.FetchAllScoresSorted(ctx)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	require.Equal(t, []string{"carol", "alice", "bob"}, []string{scores[0].GithubID, scores[1].GithubID, scores[2].GithubID})
	require.Equal(t, 11.0, scores[2].TotalScore())

	r, err := repo.GetReviewer(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, "Bob", r.DisplayName)
	require.Equal(t, 3.0, r.ExtraScore)

	// re-registering keeps the derived extra score
	require.NoError(t, repo.UpsertReviewer(ctx, entities.ReviewerScore{GithubID: "bob", DisplayName: "Robert", BaseScore: 7}))
	r, err = repo.GetReviewer(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, "Robert", r.DisplayName)
	require.Equal(t, 7.0, r.BaseScore)
	require.Equal(t, 3.0, r.ExtraScore)

	_, err = repo.GetReviewer(ctx, "mallory")
	require.ErrorIs(t, err, entities.ErrReviewerNotFound)
	require.ErrorIs(t, repo.SetExtraScore(ctx, "mallory", 1), entities.ErrReviewerNotFound)
}

func TestReviewsIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	review := entities.Review{
		PullRequestURL: "https://github.com/acme/api/pull/1",
		Title:          "Add login",
		Labels:         []string{"story"},
		Score:          2,
		AuthorID:       "bob",
		ReviewerID:     "alice",
	}
	first, err := repo.UpsertReview(ctx, review)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	review.Title = "Add login page"
	review.Labels = []string{"epic", "frontend"}
	review.Score = 3
	second, err := repo.UpsertReview(ctx, review)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.False(t, second.UpdatedAt.Before(first.UpdatedAt))

	var cnt int
	require.NoError(t, repo.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE pr_url = $1 AND pr_reviewer = $2`, review.PullRequestURL, "alice").Scan(&cnt))
	require.Equal(t, 1, cnt)

	_, err = repo.UpsertReview(ctx, entities.Review{
		PullRequestURL: "https://github.com/acme/api/pull/2",
		Title:          "Fix typo",
		Labels:         []string{"task", "no-ct"},
		Score:          0.5,
		AuthorID:       "carol",
		ReviewerID:     "alice",
	})
	require.NoError(t, err)

	sum, err := repo.SumExtraScore(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 3.5, sum)

	none, err := repo.SumExtraScore(ctx, "nobody")
	require.NoError(t, err)
	require.Zero(t, none)

	page, err := repo.FetchFilteredReviews(ctx, "LOGIN", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Reviews, 1)
	require.Equal(t, "Add login page", page.Reviews[0].Title)
	require.Equal(t, []string{"epic", "frontend"}, page.Reviews[0].Labels)

	all, err := repo.FetchFilteredReviews(ctx, "", 1, 1)
	require.NoError(t, err)
	require.Equal(t, 2, all.TotalPages)
	require.Len(t, all.Reviews, 1)
	require.Equal(t, "https://github.com/acme/api/pull/2", all.Reviews[0].PullRequestURL)

	empty, err := repo.FetchFilteredReviews(ctx, "no-such-thing", 1, 10)
	require.NoError(t, err)
	require.Zero(t, empty.TotalPages)
	require.Empty(t, empty.Reviews)

	wildcard, err := repo.FetchFilteredReviews(ctx, "%", 1, 10)
	require.NoError(t, err)
	require.Zero(t, wildcard.TotalPages)
}

func startRepo(t *testing.T) *Postgres {
	t.Helper()
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	return repo
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=review_score_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 3000, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "review_score_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", fmt.Sprintf("host=localhost port=%s user=postgres password=postgres dbname=review_score_db sslmode=disable", hostPort))
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
