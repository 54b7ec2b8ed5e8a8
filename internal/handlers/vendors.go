package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/saathi-app/saathi/internal/database"
	"github.com/saathi-app/saathi/internal/middleware"
	"github.com/saathi-app/saathi/internal/models"
)

// GetMyVendorProfile returns the authenticated vendor's business profile.
func (h *Handler) GetMyVendorProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	vendor, err := h.db.GetVendorByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, database.ErrVendorNotFound) {
			return Error(c, fiber.StatusNotFound, "vendor profile not set up yet")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get vendor profile")
	}

	return Success(c, vendor)
}

// UpdateMyVendorProfile creates or replaces the authenticated vendor's
// business profile.
func (h *Handler) UpdateMyVendorProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.UpdateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.BusinessName == "" {
		return Error(c, fiber.StatusBadRequest, "business_name is required")
	}
	if req.Location == "" {
		return Error(c, fiber.StatusBadRequest, "location is required")
	}
	if req.Needs == nil {
		req.Needs = []string{}
	}

	vendor, err := h.db.UpsertVendor(c.Context(), userID, &req)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to save vendor profile")
	}

	return Success(c, vendor)
}
