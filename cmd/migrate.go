package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/repository"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var reviewers []string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and register reviewers",
		Example: `  scorebot migrate
  scorebot migrate --reviewer octocat:Mona:10 --reviewer hubot:Hubot:8.5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed := make([]entities.ReviewerScore, 0, len(reviewers))
			for _, raw := range reviewers {
				r, err := parseReviewer(raw)
				if err != nil {
					return err
				}
				parsed = append(parsed, r)
			}
			return runMigrate(contextOrBackground(cmd.Context()), parsed)
		},
	}
	cmd.Flags().StringArrayVar(&reviewers, "reviewer", nil,
		"register a reviewer as github_id:name:base_score (repeatable)")
	return cmd
}

func runMigrate(ctx context.Context, reviewers []entities.ReviewerScore) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		return err
	}
	// OnStart applies pending migrations before opening the pool.
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("migration failed", "error", err)
		return err
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	for _, r := range reviewers {
		if err := repo.UpsertReviewer(ctx, r); err != nil {
			log.Errorw("register reviewer failed", "github_id", r.GithubID, "error", err)
			return err
		}
		log.Infow("reviewer registered", "github_id", r.GithubID, "name", r.DisplayName, "base_score", r.BaseScore)
	}
	return nil
}

// parseReviewer reads "github_id:name:base_score". The name may itself contain colons.
func parseReviewer(raw string) (entities.ReviewerScore, error) {
	first := strings.Index(raw, ":")
	last := strings.LastIndex(raw, ":")
	if first <= 0 || first == last {
		return entities.ReviewerScore{}, fmt.Errorf("%w: reviewer %q: want github_id:name:base_score",
			entities.ErrInvalidArgument, raw)
	}

	name := strings.TrimSpace(raw[first+1 : last])
	if name == "" {
		return entities.ReviewerScore{}, fmt.Errorf("%w: reviewer %q: empty name", entities.ErrInvalidArgument, raw)
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(raw[last+1:]), 64)
	if err != nil {
		return entities.ReviewerScore{}, fmt.Errorf("%w: reviewer %q: base score: %w", entities.ErrInvalidArgument, raw, err)
	}

	return entities.ReviewerScore{
		GithubID:    strings.TrimSpace(raw[:first]),
		DisplayName: name,
		BaseScore:   score,
	}, nil
}
