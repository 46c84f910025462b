package handlers_fiber

import "github.com/gofiber/fiber/v2"

// RegisterHandlers mounts the webhook endpoint, dashboard pages and JSON API on router.
func RegisterHandlers(router fiber.Router, h *Handler) {
	router.Post("/api/pr-event", h.PostPREvent)
	router.Get("/api/scores", h.GetScores)
	router.Get("/api/reviews", h.GetReviews)

	router.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard/rank")
	})
	router.Get("/dashboard/rank", h.GetRankPage)
	router.Get("/dashboard/reviews", h.GetReviewsPage)
}
