package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/saathi-app/saathi/internal/database"
	"github.com/saathi-app/saathi/internal/middleware"
	"github.com/saathi-app/saathi/internal/models"
)

// ListSuppliers returns catalog suppliers, optionally filtered by ?location=
// or ?item=. With both present the item filter is applied within the
// location.
func (h *Handler) ListSuppliers(c *fiber.Ctx) error {
	location := c.Query("location")
	item := c.Query("item")

	var suppliers []models.Supplier
	switch {
	case item != "" && location != "":
		suppliers = []models.Supplier{}
		for _, sup := range h.engine.SuppliersByItem(item) {
			if strings.EqualFold(strings.TrimSpace(sup.Location), strings.TrimSpace(location)) {
				suppliers = append(suppliers, sup)
			}
		}
	case item != "":
		suppliers = h.engine.SuppliersByItem(item)
	case location != "":
		suppliers = h.engine.SuppliersByLocation(location)
	default:
		all, err := h.db.FetchAllSuppliers(c.Context())
		if err != nil {
			return Error(c, fiber.StatusInternalServerError, "failed to list suppliers")
		}
		suppliers = all
		if suppliers == nil {
			suppliers = []models.Supplier{}
		}
	}

	return Success(c, fiber.Map{
		"suppliers": suppliers,
		"total":     len(suppliers),
	})
}

// TopRatedSuppliers returns the best-rated suppliers for ?item= in
// ?location=, capped at three.
func (h *Handler) TopRatedSuppliers(c *fiber.Ctx) error {
	item := c.Query("item")
	location := c.Query("location")
	if item == "" || location == "" {
		return Error(c, fiber.StatusBadRequest, "item and location query parameters are required")
	}

	suppliers := h.engine.TopRatedByItem(item, location)
	return Success(c, fiber.Map{
		"suppliers": suppliers,
		"total":     len(suppliers),
	})
}

// PriceTiers buckets the suppliers stocking ?item= in ?location= by price
// range. A 404 means no supplier there carries the item.
func (h *Handler) PriceTiers(c *fiber.Ctx) error {
	item := c.Query("item")
	location := c.Query("location")
	if item == "" || location == "" {
		return Error(c, fiber.StatusBadRequest, "item and location query parameters are required")
	}

	tiers := h.engine.PriceTiers(item, location)
	if tiers == nil {
		return Error(c, fiber.StatusNotFound, "no suppliers carry that item in that location")
	}

	return Success(c, tiers)
}

// GetMySupplierProfile returns the authenticated supplier's business profile.
func (h *Handler) GetMySupplierProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	sup, err := h.db.GetSupplierByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, database.ErrSupplierNotFound) {
			return Error(c, fiber.StatusNotFound, "supplier profile not set up yet")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get supplier profile")
	}

	return Success(c, sup)
}

// UpdateMySupplierProfile creates or replaces the authenticated supplier's
// business profile, then refreshes the recommendation catalog so the change
// is visible to vendors immediately.
func (h *Handler) UpdateMySupplierProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.UpdateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.BusinessName == "" {
		return Error(c, fiber.StatusBadRequest, "business_name is required")
	}
	if len(req.Items) == 0 {
		return Error(c, fiber.StatusBadRequest, "at least one item is required")
	}
	if !validPriceRange(req.PriceRange) {
		return Error(c, fiber.StatusBadRequest, "price_range must be low, medium or high")
	}
	if !validDeliveryTime(req.DeliveryTime) {
		return Error(c, fiber.StatusBadRequest, "delivery_time must be same_day, next_day or within_week")
	}

	sup, err := h.db.UpsertSupplier(c.Context(), userID, &req)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to save supplier profile")
	}

	// The profile is saved either way; on refresh failure the catalog lags
	// until the next successful refresh.
	if err := h.engine.Refresh(c.Context()); err != nil {
		log.Printf("catalog refresh after supplier update failed: %v", err)
	}

	return Success(c, sup)
}

func validPriceRange(p models.PriceRange) bool {
	return p == models.PriceRangeLow || p == models.PriceRangeMedium || p == models.PriceRangeHigh
}

func validDeliveryTime(d models.DeliveryTime) bool {
	return d == models.DeliverySameDay || d == models.DeliveryNextDay || d == models.DeliveryWithinWeek
}

