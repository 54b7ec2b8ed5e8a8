package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/saathi-app/saathi/internal/middleware"
	"github.com/saathi-app/saathi/internal/models"
	"github.com/saathi-app/saathi/internal/services"
)

// chatHistoryLimit caps how many past exchanges the history endpoint
// returns.
const chatHistoryLimit = 50

// Chat answers a vendor question and records the exchange.
func (h *Handler) Chat(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Message) == "" {
		return Error(c, fiber.StatusBadRequest, "message is required")
	}

	response := h.assistant.Respond(req.Message)

	// History is best-effort; the answer still goes back if the insert
	// fails.
	if _, err := h.db.CreateChat(c.Context(), userID, req.Message, response); err != nil {
		log.Printf("Warning: Failed to record chat for user %d: %v", userID, err)
	}

	return Success(c, models.ChatResponse{Response: response})
}

// ChatHistory returns the authenticated user's recent exchanges.
func (h *Handler) ChatHistory(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	chats, err := h.db.ListChatsByUser(c.Context(), userID, chatHistoryLimit)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to get chat history")
	}

	return Success(c, fiber.Map{
		"chats": chats,
		"total": len(chats),
	})
}

// BusinessTips returns general and seasonal advice for vendors.
func (h *Handler) BusinessTips(c *fiber.Ctx) error {
	return Success(c, fiber.Map{
		"tips":            services.BusinessTips,
		"seasonal_advice": h.assistant.SeasonalAdvice(),
	})
}
