package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-training-be/internal/model"
	"ai-training-be/internal/pkg/logger"
	"ai-training-be/internal/repository"
	"ai-training-be/internal/repository/specification"
	"ai-training-be/internal/repository/unitofwork"
	"ai-training-be/pkg/events"
	pktNats "ai-training-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type notificationTemplate struct {
	Title    string
	Template string
}

// Static registry of event types this service turns into inbox entries.
var notificationTemplates = map[string]notificationTemplate{
	events.TypeSessionCompleted: {
		Title:    "Training session completed",
		Template: "Your {mode} session has been saved.",
	},
	events.TypeAssessmentCompleted: {
		Title:    "Assessment ready",
		Template: "Your session assessment is ready to review.",
	},
	events.TypeAssessmentFailed: {
		Title:    "Assessment pending",
		Template: "We could not score your session yet, please try again later.",
	},
	events.TypeRecordingLinked: {
		Title:    "Recording available",
		Template: "The audio recording of your session is now available.",
	},
	events.TypeScenarioAssigned: {
		Title:    "New training assigned",
		Template: "You have been assigned the scenario \"{title}\".",
	},
	events.TypeTopicMastered: {
		Title:    "Topic mastered",
		Template: "Congratulations, you mastered a topic!",
	},
}

type NotificationService struct {
	repo       repository.NotificationRepository
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(
	repo repository.NotificationRepository,
	uowFactory unitofwork.RepositoryFactory,
	sub *pktNats.Subscriber,
	delivery NotificationDelivery,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		repo:       repo,
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("training.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to training.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "training.")

	tmpl, ok := notificationTemplates[typeCode]
	if !ok {
		s.logger.Info("NotificationService", fmt.Sprintf("No template for event type %s, skipping", typeCode), nil)
		return nil
	}

	userID, err := s.resolveRecipient(ctx, event)
	if err != nil {
		s.logger.Error("NotificationService", "Error resolving recipient", map[string]interface{}{"error": err, "type": typeCode})
		return err
	}
	if userID == uuid.Nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("No recipient for event %s", typeCode), nil)
		return nil
	}

	notif := s.buildNotification(userID, typeCode, tmpl, event)

	if err := s.repo.CreateNotification(ctx, &notif); err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userID), map[string]interface{}{"error": err})
		return err
	}

	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}

	return nil
}

// resolveRecipient maps the employee named in the event payload to their
// user account.
func (s *NotificationService) resolveRecipient(ctx context.Context, event events.Event) (uuid.UUID, error) {
	payload := event.Payload()

	employeeStr, ok := payload["employee_id"].(string)
	if !ok {
		return uuid.Nil, nil
	}
	employeeId, err := uuid.Parse(employeeStr)
	if err != nil {
		return uuid.Nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: employeeId})
	if err != nil {
		return uuid.Nil, err
	}
	if employee == nil {
		return uuid.Nil, nil
	}

	return employee.UserId, nil
}

func (s *NotificationService) buildNotification(userID uuid.UUID, typeCode string, tmpl notificationTemplate, event events.Event) model.Notification {
	payload := event.Payload()

	msg := tmpl.Template
	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		msg = strings.ReplaceAll(msg, placeholder, fmt.Sprintf("%v", v))
	}

	var entityID *uuid.UUID
	entityType := ""
	if sidStr, ok := payload["session_id"].(string); ok {
		if sid, err := uuid.Parse(sidStr); err == nil {
			entityID = &sid
			entityType = "session"
		}
	} else if aidStr, ok := payload["assignment_id"].(string); ok {
		if aid, err := uuid.Parse(aidStr); err == nil {
			entityID = &aid
			entityType = "assignment"
		}
	}

	metaJSON, _ := json.Marshal(payload)

	return model.Notification{
		ID:         uuid.New(),
		UserID:     userID,
		TypeCode:   typeCode,
		Title:      tmpl.Title,
		Message:    msg,
		Metadata:   datatypes.JSON(metaJSON),
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now(),
		IsRead:     false,
	}
}

// GetNotifications fetches notifications for a user.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// MarkAsRead marks a notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all notifications as read for a user.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
