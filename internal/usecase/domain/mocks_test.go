package domain

import (
	"context"
	"sort"
	"strings"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/repository"

	"github.com/stretchr/testify/mock"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) FetchAllScoresSorted(ctx context.Context) ([]entities.ReviewerScore, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ReviewerScore), args.Error(1)
}

func (m *repoMock) GetReviewer(ctx context.Context, githubID string) (*entities.ReviewerScore, error) {
	args := m.Called(ctx, githubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ReviewerScore), args.Error(1)
}

func (m *repoMock) UpsertReviewer(ctx context.Context, reviewer entities.ReviewerScore) error {
	return m.Called(ctx, reviewer).Error(0)
}

func (m *repoMock) SetExtraScore(ctx context.Context, githubID string, value float64) error {
	return m.Called(ctx, githubID, value).Error(0)
}

func (m *repoMock) UpsertReview(ctx context.Context, review entities.Review) (*entities.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *repoMock) SumExtraScore(ctx context.Context, reviewerID string) (float64, error) {
	args := m.Called(ctx, reviewerID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *repoMock) FetchFilteredReviews(ctx context.Context, query string, page, pageSize int) (entities.ReviewPage, error) {
	args := m.Called(ctx, query, page, pageSize)
	return args.Get(0).(entities.ReviewPage), args.Error(1)
}

type notifierMock struct{ mock.Mock }

func (m *notifierMock) Send(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}

// memRepo is an in-memory score store with the same upsert and recompute semantics as the
// Postgres implementation.
type memRepo struct {
	scores  map[string]entities.ReviewerScore
	reviews map[[2]string]entities.Review
	writes  int
}

var _ repository.Repository = (*memRepo)(nil)

func newMemRepo(reviewers ...entities.ReviewerScore) *memRepo {
	r := &memRepo{scores: map[string]entities.ReviewerScore{}, reviews: map[[2]string]entities.Review{}}
	for _, s := range reviewers {
		r.scores[s.GithubID] = s
	}
	return r
}

func (r *memRepo) OnStart(_ context.Context) error { return nil }
func (r *memRepo) OnStop(_ context.Context) error  { return nil }

func (r *memRepo) FetchAllScoresSorted(_ context.Context) ([]entities.ReviewerScore, error) {
	res := make([]entities.ReviewerScore, 0, len(r.scores))
	for _, s := range r.scores {
		res = append(res, s)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].TotalScore() != res[j].TotalScore() {
			return res[i].TotalScore() < res[j].TotalScore()
		}
		return res[i].GithubID < res[j].GithubID
	})
	return res, nil
}

func (r *memRepo) GetReviewer(_ context.Context, githubID string) (*entities.ReviewerScore, error) {
	s, ok := r.scores[githubID]
	if !ok {
		return nil, entities.ErrReviewerNotFound
	}
	return &s, nil
}

func (r *memRepo) UpsertReviewer(_ context.Context, reviewer entities.ReviewerScore) error {
	r.scores[reviewer.GithubID] = reviewer
	return nil
}

func (r *memRepo) SetExtraScore(_ context.Context, githubID string, value float64) error {
	s, ok := r.scores[githubID]
	if !ok {
		return entities.ErrReviewerNotFound
	}
	s.ExtraScore = value
	r.scores[githubID] = s
	r.writes++
	return nil
}

func (r *memRepo) UpsertReview(_ context.Context, review entities.Review) (*entities.Review, error) {
	r.reviews[[2]string{review.PullRequestURL, review.ReviewerID}] = review
	r.writes++
	return &review, nil
}

func (r *memRepo) SumExtraScore(_ context.Context, reviewerID string) (float64, error) {
	var sum float64
	for _, rv := range r.reviews {
		if rv.ReviewerID == reviewerID {
			sum += rv.Score
		}
	}
	return sum, nil
}

func (r *memRepo) FetchFilteredReviews(_ context.Context, query string, page, pageSize int) (entities.ReviewPage, error) {
	res := entities.ReviewPage{Query: query, Page: page, PageSize: pageSize}
	q := strings.ToLower(query)
	for _, rv := range r.reviews {
		if strings.Contains(strings.ToLower(rv.AuthorID+"\x00"+rv.ReviewerID+"\x00"+rv.Title), q) {
			res.Reviews = append(res.Reviews, rv)
		}
	}
	res.TotalPages = (len(res.Reviews) + pageSize - 1) / pageSize
	return res, nil
}
