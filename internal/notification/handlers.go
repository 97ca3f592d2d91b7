package notification

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ukuku360/RK-explore-sub000/internal/auth"
)

type listResponse struct {
	Items  []Item `json:"items"`
	Unread int    `json:"unread"`
}

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		var since time.Time
		if raw := c.Query("since"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "since must be an RFC 3339 timestamp")
			}
			since = parsed
		}

		items, err := svc.Notifications(c.Context(), auth.UserID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(listResponse{Items: items, Unread: UnreadCount(items, since)})
	})
}
