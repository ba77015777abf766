package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staff-directory/internal/domain"
	"github.com/spec-kit/staff-directory/internal/events"
	"github.com/spec-kit/staff-directory/internal/repository"
	apperrors "github.com/spec-kit/staff-directory/pkg/util/errorutil"
)

// GalleryService manages the group-photo gallery.
type GalleryService struct {
	photos     repository.GroupPhotoRepository
	dispatcher events.Dispatcher
}

// NewGalleryService constructs the service.
func NewGalleryService(photos repository.GroupPhotoRepository, dispatcher events.Dispatcher) *GalleryService {
	return &GalleryService{photos: photos, dispatcher: dispatcher}
}

func requireEditor(actor *domain.Account) error {
	if !actor.Editor() {
		return apperrors.NewForbidden("editor role required")
	}
	return nil
}

// ListPhotos returns all gallery entries, newest event first.
func (s *GalleryService) ListPhotos(ctx context.Context) ([]domain.GroupPhoto, error) {
	return s.photos.List(ctx)
}

// AddPhoto stores a new gallery entry.
func (s *GalleryService) AddPhoto(ctx context.Context, actor *domain.Account, photo *domain.GroupPhoto) error {
	if err := requireEditor(actor); err != nil {
		return err
	}
	if err := s.photos.Create(ctx, photo); err != nil {
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventPhotoAdded, photo)
	return nil
}

// DeletePhoto removes a gallery entry.
func (s *GalleryService) DeletePhoto(ctx context.Context, actor *domain.Account, id string) error {
	if err := requireEditor(actor); err != nil {
		return err
	}
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("photo", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	if err := s.photos.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventPhotoDeleted, photo)
	return nil
}

func (s *GalleryService) publish(ctx context.Context, eventType events.EventType, photo *domain.GroupPhoto) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   events.PhotoPayload{PhotoID: photo.ID, Title: photo.Title},
	})
}
