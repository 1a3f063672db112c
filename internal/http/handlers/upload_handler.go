package handlers

import (
	"io"
	"strings"

	applog "rewear/internal/log"
	"rewear/internal/media"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	Storage media.Storage
}

// Upload validates the multipart image, processes it, and forwards the result
// to object storage. Validation happens before any bytes leave the process.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("image")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "No image file provided")
	}
	if header.Size > media.MaxUploadBytes {
		return fail(c, fiber.StatusBadRequest, "Image exceeds the 5 MB size limit")
	}
	if !strings.HasPrefix(header.Header.Get(fiber.HeaderContentType), "image/") {
		return fail(c, fiber.StatusBadRequest, "Only image files (jpg, png, gif, etc.) are allowed")
	}

	f, err := header.Open()
	if err != nil {
		applog.Error(c, "upload.open.fail", err, nil)
		return fail(c, fiber.StatusInternalServerError, "Failed to upload image")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		applog.Error(c, "upload.read.fail", err, nil)
		return fail(c, fiber.StatusInternalServerError, "Failed to upload image")
	}

	processed, err := media.Process(data)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Only image files (jpg, png, gif, etc.) are allowed")
	}

	result, err := h.Storage.Upload(c.Context(), header.Filename, processed.Data, processed.MIME)
	if err != nil {
		applog.Error(c, "upload.forward.fail", err, map[string]any{"file": header.Filename})
		return fail(c, fiber.StatusInternalServerError, "Failed to upload image")
	}

	applog.Audit(c, "upload.success", map[string]any{"public_id": result.PublicID})
	return respond(c, fiber.StatusOK, "Image uploaded successfully", fiber.Map{
		"imageUrl": result.URL,
		"publicId": result.PublicID,
	})
}
