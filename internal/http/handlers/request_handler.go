package handlers

import (
	"fmt"

	applog "rewear/internal/log"
	"rewear/internal/services"
	"rewear/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type RequestHandler struct {
	Requests *services.RequestService
}

type createRequestRequest struct {
	ItemID string `json:"itemId"`
}

type resolveRequestRequest struct {
	Status string `json:"status"`
}

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var req createRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	view, err := h.Requests.Create(req.ItemID, currentUserID(c))
	if err != nil {
		return failErr(c, err, "requests.create.fail", "Failed to create request")
	}

	applog.Audit(c, "requests.create", map[string]any{"request": view.ID, "item": view.ItemID})
	return respond(c, fiber.StatusCreated, "Request created successfully", view)
}

func (h *RequestHandler) Resolve(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusNotFound, "Request not found")
	}
	var req resolveRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	view, err := h.Requests.Resolve(id, currentUserID(c), req.Status)
	if err != nil {
		return failErr(c, err, "requests.resolve.fail", "Failed to update request")
	}

	applog.Audit(c, "requests.resolve", map[string]any{"request": view.ID, "decision": view.Status})
	return respond(c, fiber.StatusOK, fmt.Sprintf("Request %s successfully", view.Status), view)
}

func (h *RequestHandler) Mine(c *fiber.Ctx) error {
	overview, err := h.Requests.ListMine(currentUserID(c))
	if err != nil {
		return failErr(c, err, "requests.mine.fail", "Failed to retrieve requests")
	}
	return respond(c, fiber.StatusOK, "Requests retrieved successfully", overview)
}
