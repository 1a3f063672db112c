package handlers

import (
	"fmt"

	applog "rewear/internal/log"
	"rewear/internal/services"
	"rewear/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	Items *services.ItemService
}

type createItemRequest struct {
	Title     string `json:"title"`
	Category  string `json:"category"`
	Condition string `json:"condition"`
	ImageURL  string `json:"imageUrl"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var req createItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.Items.Create(currentUserID(c), req.Title, req.Category, req.Condition, req.ImageURL)
	if err != nil {
		return failErr(c, err, "items.create.fail", "Failed to create item")
	}

	applog.Audit(c, "items.create", map[string]any{"item": item.ID})
	return respond(c, fiber.StatusCreated, "Item created successfully", item)
}

func (h *ItemHandler) SetStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusNotFound, "Item not found")
	}
	var req setStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.Items.SetStatus(id, currentUserID(c), req.Status)
	if err != nil {
		return failErr(c, err, "items.status.fail", "Failed to update item status")
	}

	applog.Audit(c, "items.status", map[string]any{"item": item.ID, "status": item.Status})
	return respond(c, fiber.StatusOK, fmt.Sprintf("Item status updated to %s", item.Status), item)
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.Items.List()
	if err != nil {
		return failErr(c, err, "items.list.fail", "Failed to retrieve items")
	}
	return respond(c, fiber.StatusOK, "Items retrieved successfully", items)
}

func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusNotFound, "Item not found")
	}
	item, err := h.Items.Get(id)
	if err != nil {
		return failErr(c, err, "items.get.fail", "Failed to retrieve item")
	}
	return respond(c, fiber.StatusOK, "Item retrieved successfully", item)
}
