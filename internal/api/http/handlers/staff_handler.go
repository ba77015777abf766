package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/api/dto"
	"github.com/spec-kit/staff-directory/internal/auth"
	"github.com/spec-kit/staff-directory/internal/cache"
	"github.com/spec-kit/staff-directory/internal/directory"
	"github.com/spec-kit/staff-directory/internal/domain"
	apperrors "github.com/spec-kit/staff-directory/pkg/util/errorutil"
)

// StaffHandler exposes the per-category staff directories over HTTP.
type StaffHandler struct {
	manager *directory.Manager
	cache   *cache.ListingCache
	logger  *zap.Logger
}

// NewStaffHandler constructs handler.
func NewStaffHandler(manager *directory.Manager, listingCache *cache.ListingCache, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{manager: manager, cache: listingCache, logger: logger}
}

// ListCategories GET /staff/categories.
func (h *StaffHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": domain.Categories()})
}

// ListAll GET /staff. Returns every category's listing keyed by category,
// the shape the editor dashboard renders.
func (h *StaffHandler) ListAll(c *fiber.Ctx) error {
	grouped := make(map[domain.Category][]domain.StaffRecord, len(domain.Categories()))
	for _, category := range domain.Categories() {
		if records, ok := h.cache.Get(c.Context(), category); ok {
			grouped[category] = records
			continue
		}
		dir := h.manager.Directory(category)
		if err := dir.Refresh(c.Context()); err != nil {
			return directoryError(err)
		}
		records := dir.Records()
		h.cache.Set(c.Context(), category, records)
		grouped[category] = records
	}
	return c.JSON(fiber.Map{"data": grouped})
}

// List GET /staff/:category.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	category, err := parseCategory(c)
	if err != nil {
		return err
	}

	if records, ok := h.cache.Get(c.Context(), category); ok {
		return c.JSON(fiber.Map{"data": records})
	}

	dir := h.manager.Directory(category)
	if err := dir.Refresh(c.Context()); err != nil {
		return directoryError(err)
	}
	records := dir.Records()
	h.cache.Set(c.Context(), category, records)
	return c.JSON(fiber.Map{"data": records})
}

// Add POST /staff/:category.
func (h *StaffHandler) Add(c *fiber.Ctx) error {
	category, err := parseCategory(c)
	if err != nil {
		return err
	}
	var req dto.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Position == "" {
		return apperrors.NewValidationError("name, position required", nil)
	}

	dir, err := h.readyDirectory(c, category)
	if err != nil {
		return err
	}
	record, err := dir.Add(c.Context(), sessionFromContext(c), req.ToRecord())
	if err != nil {
		return directoryError(err)
	}
	h.cache.Invalidate(c.Context(), category)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": record})
}

// Update PATCH /staff/:category/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	category, err := parseCategory(c)
	if err != nil {
		return err
	}
	var req dto.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	changes := req.Changes()
	if changes.Empty() {
		return apperrors.NewValidationError("no fields to update", nil)
	}

	dir, err := h.readyDirectory(c, category)
	if err != nil {
		return err
	}
	if err := dir.Update(c.Context(), sessionFromContext(c), c.Params("id"), changes); err != nil {
		return directoryError(err)
	}
	h.cache.Invalidate(c.Context(), category)
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "staff member updated"}})
}

// Delete DELETE /staff/:category/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	category, err := parseCategory(c)
	if err != nil {
		return err
	}
	dir, err := h.readyDirectory(c, category)
	if err != nil {
		return err
	}
	if err := dir.Delete(c.Context(), sessionFromContext(c), c.Params("id")); err != nil {
		return directoryError(err)
	}
	h.cache.Invalidate(c.Context(), category)
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "staff member deleted"}})
}

// readyDirectory returns the category directory, loading it first when it has
// not been fetched yet. Mutations operate on the loaded listing.
func (h *StaffHandler) readyDirectory(c *fiber.Ctx, category domain.Category) (*directory.Directory, error) {
	dir := h.manager.Directory(category)
	if dir.State() != directory.StateReady {
		if err := dir.Refresh(c.Context()); err != nil {
			return nil, directoryError(err)
		}
	}
	return dir, nil
}

func parseCategory(c *fiber.Ctx) (domain.Category, error) {
	category := domain.Category(c.Params("category"))
	if !category.Valid() {
		return "", apperrors.NewValidationError("unknown staff category", map[string]any{"category": string(category)})
	}
	return category, nil
}

func sessionFromContext(c *fiber.Ctx) directory.Session {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Account == nil {
		return directory.Session{}
	}
	return directory.Session{
		Authenticated: true,
		Editor:        principal.Account.Editor(),
	}
}

// directoryError maps directory failures onto transport errors.
func directoryError(err error) error {
	var dirErr *directory.Error
	if !errors.As(err, &dirErr) {
		return apperrors.NewInternalError(err)
	}
	switch dirErr.Kind {
	case directory.KindPermissionDenied:
		return apperrors.NewForbidden(dirErr.Message)
	case directory.KindLocalInconsistency:
		return apperrors.NewNotFound("staff member", map[string]any{"reason": dirErr.Message})
	case directory.KindRemoteFailure:
		details := map[string]any{}
		if dirErr.Code != "" {
			details["code"] = dirErr.Code
		}
		if dirErr.Details != "" {
			details["details"] = dirErr.Details
		}
		return apperrors.NewUpstreamError(dirErr.Message, details)
	default:
		return apperrors.NewInternalError(dirErr)
	}
}
