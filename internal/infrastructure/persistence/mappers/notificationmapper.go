package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"amlak/internal/domain/notification"
	vo "amlak/internal/domain/notification/valueobjects"
	"amlak/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	model := &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		Link:      n.Link(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt().UnixMilli(),
	}

	if len(n.Metadata()) > 0 {
		raw, _ := json.Marshal(n.Metadata())
		model.Metadata = datatypes.JSON(raw)
	}

	if n.ReadAt() != nil {
		at := n.ReadAt().UnixMilli()
		model.ReadAt = &at
	}

	return model
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	notificationType, err := vo.NewNotificationType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to map notification (id=%d): %w", model.ID, err)
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification metadata (id=%d): %w", model.ID, err)
		}
	}

	var readAt *time.Time
	if model.ReadAt != nil {
		t := millisToTime(*model.ReadAt)
		readAt = &t
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		notificationType,
		model.Title,
		model.Message,
		model.Link,
		metadata,
		model.IsRead,
		readAt,
		millisToTime(model.CreatedAt),
	)
}
