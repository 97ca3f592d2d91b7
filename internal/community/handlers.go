package community

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ukuku360/RK-explore-sub000/internal/auth"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		userID := auth.UserID(c)
		posts, err := svc.ListPosts(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		filtered := FilterPosts(posts, FilterOptions{
			Tab:           ParseTab(c.Query("tab")),
			CurrentUserID: userID,
			SearchText:    c.Query("q"),
			Category:      c.Query("category"),
		})
		return c.JSON(SortPosts(filtered, ParseSortOption(c.Query("sort"))))
	})

	r.Get("/overview", authMiddleware, func(c *fiber.Ctx) error {
		userID := auth.UserID(c)
		posts, err := svc.ListPosts(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(BuildOverview(posts, userID))
	})
}
