package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/saathi-app/saathi/internal/database"
	"github.com/saathi-app/saathi/internal/middleware"
	"github.com/saathi-app/saathi/internal/models"
	"github.com/saathi-app/saathi/internal/recommend"
)

// GetRecommendations ranks suppliers for the authenticated vendor using
// their stored profile. ?max= overrides the default result cap.
func (h *Handler) GetRecommendations(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	vendor, err := h.db.GetVendorByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, database.ErrVendorNotFound) {
			return Error(c, fiber.StatusNotFound, "set up your vendor profile to get recommendations")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get vendor profile")
	}

	max := c.QueryInt("max", recommend.DefaultMaxRecommendations)

	result := h.engine.Recommend(recommend.Request{
		Needs:              vendor.Needs,
		Location:           vendor.Location,
		MaxRecommendations: max,
	})

	return Success(c, result)
}

// PreviewRecommendations ranks suppliers for an explicit needs/location
// payload instead of the stored profile, so vendors can explore before
// saving changes.
func (h *Handler) PreviewRecommendations(c *fiber.Ctx) error {
	var req models.RecommendationQuery
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if len(req.Needs) == 0 {
		return Error(c, fiber.StatusBadRequest, "needs must not be empty")
	}
	if req.Location == "" {
		return Error(c, fiber.StatusBadRequest, "location is required")
	}

	max := recommend.DefaultMaxRecommendations
	if req.MaxRecommendations != nil {
		max = *req.MaxRecommendations
	}

	result := h.engine.Recommend(recommend.Request{
		Needs:              req.Needs,
		Location:           req.Location,
		MaxRecommendations: max,
	})

	return Success(c, result)
}
