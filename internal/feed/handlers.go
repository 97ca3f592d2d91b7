package feed

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ukuku360/RK-explore-sub000/internal/auth"
)

type rsvpResponse struct {
	PostID    string       `json:"post_id"`
	Capacity  int          `json:"capacity"`
	SeatsLeft int          `json:"seats_left"`
	Closed    bool         `json:"closed"`
	Snapshot  RsvpSnapshot `json:"snapshot"`
}

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/recommended", authMiddleware, func(c *fiber.Ctx) error {
		posts, err := svc.ListPosts(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		userID := auth.UserID(c)
		ranking := RankRecommendedPosts(posts, userID, HasPersonalizationData(posts, userID), svc.Now())
		return c.JSON(ranking)
	})

	r.Get("/mine", authMiddleware, func(c *fiber.Ctx) error {
		posts, err := svc.ListPosts(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(MyActivityPosts(posts, auth.UserID(c)))
	})

	r.Get("/:id/rsvp", authMiddleware, func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
		}
		post, err := svc.GetPost(c.Context(), id)
		if errors.Is(err, ErrPostNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		snap := BuildRsvpSnapshot(post, auth.UserID(c))
		return c.JSON(rsvpResponse{
			PostID:    post.ID,
			Capacity:  post.Capacity,
			SeatsLeft: SeatsLeft(snap, post.Capacity),
			Closed:    IsRsvpClosed(post, svc.Now()),
			Snapshot:  snap,
		})
	})
}
