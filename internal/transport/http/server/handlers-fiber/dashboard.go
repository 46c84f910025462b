package handlers_fiber

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/mapper"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/message"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/transport/http/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"score":   message.FormatScore,
	"pageURL": pageURL,
}).ParseFS(templateFS, "templates/*.html"))

// reviewsQuery holds query parameters of review history routes.
type reviewsQuery struct {
	Query    string `query:"query"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

type rankView struct {
	Scores []dto.Score
}

type reviewsView struct {
	dto.ReviewPage
	Prev int
	Next int
}

// GetRankPage renders the leaderboard.
func (h *Handler) GetRankPage(c *fiber.Ctx) error {
	scores, err := h.uc.Rank(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to get rank", "error", err.Error())
		return writeError(c, err)
	}
	return render(c, "rank.html", rankView{Scores: mapper.ToDTOScoreList(scores)})
}

// GetReviewsPage renders one page of review history.
func (h *Handler) GetReviewsPage(c *fiber.Ctx) error {
	page, err := h.reviews(c)
	if err != nil {
		return writeError(c, err)
	}

	view := reviewsView{ReviewPage: mapper.ToDTOReviewPage(page)}
	if page.Page > 1 {
		view.Prev = page.Page - 1
	}
	if page.Page < page.TotalPages {
		view.Next = page.Page + 1
	}
	return render(c, "reviews.html", view)
}

// GetScores returns the leaderboard as JSON.
func (h *Handler) GetScores(c *fiber.Ctx) error {
	scores, err := h.uc.Rank(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to get scores", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOScoreList(scores))
}

// GetReviews returns one page of review history as JSON.
func (h *Handler) GetReviews(c *fiber.Ctx) error {
	page, err := h.reviews(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOReviewPage(page))
}

func (h *Handler) reviews(c *fiber.Ctx) (entities.ReviewPage, error) {
	var q reviewsQuery
	if err := c.QueryParser(&q); err != nil {
		return entities.ReviewPage{}, entities.ErrInvalidArgument
	}

	page, err := h.uc.Reviews(c.UserContext(), q.Query, q.Page, q.PageSize)
	if err != nil {
		h.log.Errorw("failed to get reviews", "query", q.Query, "error", err.Error())
		return entities.ReviewPage{}, err
	}
	return page, nil
}

func render(c *fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func pageURL(query string, page, pageSize int) string {
	v := url.Values{}
	if query != "" {
		v.Set("query", query)
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("page_size", strconv.Itoa(pageSize))
	return "/dashboard/reviews?" + v.Encode()
}
