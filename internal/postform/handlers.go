package postform

import (
	"errors"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/ukuku360/RK-explore-sub000/internal/auth"
)

type validateResponse struct {
	Errors        FieldErrors `json:"errors"`
	EstimatedCost *int        `json:"estimated_cost,omitempty"`
	RsvpDeadline  string      `json:"rsvp_deadline,omitempty"`
}

type saveRequest struct {
	Step int           `json:"step"`
	Form PostFormState `json:"form"`
}

func RegisterRoutes(r fiber.Router, drafts *DraftRepository, authMiddleware fiber.Handler) {
	r.Post("/validate", authMiddleware, func(c *fiber.Ctx) error {
		var form PostFormState
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body")
		}

		now, err := callerNow(drafts.Now(), c.Query("tz"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "tz must be an IANA time zone name")
		}
		var resp validateResponse
		switch c.Query("step", "all") {
		case "1":
			resp.Errors = ValidateStep1(form, now)
		case "all":
			resp = validateAll(form, now)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "step must be 1 or all")
		}

		if len(resp.Errors) > 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(resp)
		}
		return c.JSON(resp)
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		draft, err := drafts.Load(c.Context(), auth.UserID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if draft == nil {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(draft)
	})

	r.Put("/", authMiddleware, func(c *fiber.Ctx) error {
		var req saveRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body")
		}
		draft, err := drafts.Save(c.Context(), auth.UserID(c), req.Step, req.Form)
		if errors.Is(err, ErrInvalidStep) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if draft == nil {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(draft)
	})

	r.Delete("/", authMiddleware, func(c *fiber.Ctx) error {
		if err := drafts.Clear(c.Context(), auth.UserID(c)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// callerNow returns now in the caller's zone. An empty tz keeps the server
// zone.
func callerNow(now time.Time, tz string) (time.Time, error) {
	if tz == "" {
		return now, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, err
	}
	return now.In(loc), nil
}

func validateAll(form PostFormState, now time.Time) validateResponse {
	opt := ValidateOptionalFields(form, now)
	return validateResponse{Errors: Validate(form, now), EstimatedCost: opt.EstimatedCost, RsvpDeadline: opt.RsvpDeadlineISO}
}
