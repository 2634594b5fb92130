package notification

import (
	"fmt"
	"time"

	vo "amlak/internal/domain/notification/valueobjects"
)

// Notification is the durable side of the notification sink: one row per
// delivered message, owned by the receiving user.
type Notification struct {
	id               uint
	userID           uint
	notificationType vo.NotificationType
	title            string
	message          string
	link             string
	metadata         map[string]interface{}
	read             bool
	readAt           *time.Time
	createdAt        time.Time
}

func NewNotification(
	userID uint,
	notificationType vo.NotificationType,
	title string,
	message string,
	link string,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}

	return &Notification{
		userID:           userID,
		notificationType: notificationType,
		title:            title,
		message:          message,
		link:             link,
		createdAt:        time.Now(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	notificationType vo.NotificationType,
	title string,
	message string,
	link string,
	metadata map[string]interface{},
	read bool,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}

	return &Notification{
		id:               id,
		userID:           userID,
		notificationType: notificationType,
		title:            title,
		message:          message,
		link:             link,
		metadata:         metadata,
		read:             read,
		readAt:           readAt,
		createdAt:        createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) Type() vo.NotificationType {
	return n.notificationType
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Link() string {
	return n.link
}

func (n *Notification) Metadata() map[string]interface{} {
	return n.metadata
}

// SetMetadata attaches structured context carried alongside the message,
// such as the permit number or the previous assignee.
func (n *Notification) SetMetadata(metadata map[string]interface{}) {
	n.metadata = metadata
}

func (n *Notification) IsRead() bool {
	return n.read
}

func (n *Notification) ReadAt() *time.Time {
	return n.readAt
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkRead marks the notification as read. Idempotent.
func (n *Notification) MarkRead() {
	if n.read {
		return
	}
	now := time.Now()
	n.read = true
	n.readAt = &now
}
