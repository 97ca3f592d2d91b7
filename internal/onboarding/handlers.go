package onboarding

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ukuku360/RK-explore-sub000/internal/auth"
)

type shownRequest struct {
	IsReshow bool `json:"is_reshow"`
}

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		status, err := svc.Status(c.Context(), auth.UserID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(status)
	})

	r.Post("/shown", authMiddleware, func(c *fiber.Ctx) error {
		var req shownRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid body")
			}
		}
		state, err := svc.Shown(c.Context(), auth.UserID(c), req.IsReshow)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(state)
	})

	r.Post("/skip", authMiddleware, func(c *fiber.Ctx) error {
		state, err := svc.Skip(c.Context(), auth.UserID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(state)
	})

	r.Post("/complete", authMiddleware, func(c *fiber.Ctx) error {
		state, err := svc.Complete(c.Context(), auth.UserID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(state)
	})
}
