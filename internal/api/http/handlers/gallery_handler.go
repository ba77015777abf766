package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-directory/internal/api/dto"
	"github.com/spec-kit/staff-directory/internal/auth"
	"github.com/spec-kit/staff-directory/internal/service"
	apperrors "github.com/spec-kit/staff-directory/pkg/util/errorutil"
)

// GalleryHandler exposes the group-photo gallery endpoints.
type GalleryHandler struct {
	service *service.GalleryService
}

// NewGalleryHandler constructs handler.
func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: galleryService}
}

// List GET /gallery/photos.
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	photos, err := h.service.ListPhotos(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": photos})
}

// Add POST /gallery/photos.
func (h *GalleryHandler) Add(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Account == nil {
		return apperrors.NewUnauthorized("account required")
	}
	var req dto.PhotoCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.Image == "" || req.TakenOn == "" {
		return apperrors.NewValidationError("title, image, taken_on required", nil)
	}
	photo, err := req.ToPhoto()
	if err != nil {
		return apperrors.NewValidationError("taken_on must be a YYYY-MM-DD date", nil)
	}

	if err := h.service.AddPhoto(c.Context(), principal.Account, &photo); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": photo})
}

// Delete DELETE /gallery/photos/:id.
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Account == nil {
		return apperrors.NewUnauthorized("account required")
	}
	if err := h.service.DeletePhoto(c.Context(), principal.Account, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "photo deleted"}})
}
