package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/config"
	"github.com/spec-kit/staff-directory/internal/events"
)

// NotificationService forwards domain events to the configured notification
// stubs and keeps an audit trail of directory notices in the logs.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventDirectoryNotice, n.handleDirectoryNotice)
	n.dispatcher.Subscribe(events.EventPhotoAdded, n.handlePhotoEvent)
	n.dispatcher.Subscribe(events.EventPhotoDeleted, n.handlePhotoEvent)
	n.dispatcher.Subscribe(events.EventAccountRegistered, n.handleAccountRegistered)
}

func (n *NotificationService) handleDirectoryNotice(ctx context.Context, event events.Event) error {
	notice, ok := event.Payload.(events.DirectoryNoticePayload)
	if !ok {
		return nil
	}
	switch notice.Level {
	case events.NoticeLevelError:
		n.logger.Warn("DirectoryNotice",
			zap.String("category", event.Category),
			zap.String("message", notice.Message))
	default:
		n.logger.Info("DirectoryNotice",
			zap.String("category", event.Category),
			zap.String("message", notice.Message))
	}
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePhotoEvent(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAccountRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("AccountRegistered", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
