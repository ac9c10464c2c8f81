package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/config"
	"github.com/spec-kit/attendance-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotifyConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotifyConfig) *NotificationService {
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
	n.dispatcher.Subscribe(events.EventSessionRecorded, n.handleEvent("SessionRecorded"))
	n.dispatcher.Subscribe(events.EventTimeAdjusted, n.handleEvent("TimeAdjusted"))
	n.dispatcher.Subscribe(events.EventStrikeIssued, n.handleEvent("StrikeIssued"))
	n.dispatcher.Subscribe(events.EventStrikeRevoked, n.handleEvent("StrikeRevoked"))
	n.dispatcher.Subscribe(events.EventStaffDemoted, n.handleEvent("StaffDemoted"))
	n.dispatcher.Subscribe(events.EventQuotaSettingsUpdated, n.handleEvent("QuotaSettingsUpdated"))
}

func (n *NotificationService) handleEvent(name string) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		n.logger.Info(name,
			zap.String("staff_id", event.StaffID),
			zap.Any("payload", event.Payload),
		)
		n.sendWebhookNotificationStub(ctx, event)
		return nil
	}
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)),
	)
}
