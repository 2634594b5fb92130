package notify

import (
	"context"
	"fmt"
	"time"

	"amlak/internal/domain/notification"
	vo "amlak/internal/domain/notification/valueobjects"
	"amlak/internal/domain/permit"
	"amlak/internal/domain/user"
	"amlak/internal/shared/logger"
)

// EmailSender mirrors the workflow emails the SMTP service can deliver.
type EmailSender interface {
	SendPermitAssignedEmail(to, permitNumber, permitTitle string, deadline time.Time) error
	SendApprovalRedirectedEmail(to, permitNumber, permitTitle string) error
	SendApprovalOverdueEmail(to, permitNumber, permitTitle string, deadline time.Time) error
	SendPermitDecidedEmail(to, permitNumber, permitTitle, status, reason string) error
}

// WorkflowNotifier persists in-app notifications and mirrors them over
// email when an email sender is configured. Email delivery is best-effort:
// a failed send is logged and never fails the notification.
type WorkflowNotifier struct {
	notificationRepo notification.Repository
	userRepo         user.Repository
	email            EmailSender // nil when email delivery is disabled
	logger           logger.Interface
}

func NewWorkflowNotifier(
	notificationRepo notification.Repository,
	userRepo user.Repository,
	email EmailSender,
	logger logger.Interface,
) *WorkflowNotifier {
	return &WorkflowNotifier{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		email:            email,
		logger:           logger,
	}
}

// PermitAssigned tells an approver a new permit is waiting on them.
func (n *WorkflowNotifier) PermitAssigned(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval) error {
	title := fmt.Sprintf("Permit %s awaiting approval", p.Number())
	message := fmt.Sprintf("Permit %s (%s) has been assigned to you for approval. Deadline: %s.",
		p.Number(), p.Title(), pa.Deadline().Format("2006-01-02 15:04"))

	if err := n.saveNotification(ctx, pa.AssignedToID(), vo.NotificationTypePermit, title, message, p, pa); err != nil {
		return err
	}

	n.sendEmail(ctx, pa.AssignedToID(), func(addr string) error {
		return n.email.SendPermitAssignedEmail(addr, p.Number(), p.Title(), pa.Deadline())
	})
	return nil
}

// ApprovalRedirected tells the backup approver an overdue permit was moved
// to their queue.
func (n *WorkflowNotifier) ApprovalRedirected(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval, previousAssigneeID uint) error {
	title := fmt.Sprintf("Permit %s redirected to you", p.Number())
	message := fmt.Sprintf("Permit %s (%s) passed its approval deadline and was redirected to your queue.",
		p.Number(), p.Title())

	if err := n.saveNotification(ctx, pa.AssignedToID(), vo.NotificationTypeWarning, title, message, p, pa); err != nil {
		return err
	}

	n.sendEmail(ctx, pa.AssignedToID(), func(addr string) error {
		return n.email.SendApprovalRedirectedEmail(addr, p.Number(), p.Title())
	})
	return nil
}

// ApprovalOverdue warns an admin that a permit blew its deadline.
func (n *WorkflowNotifier) ApprovalOverdue(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval, adminID uint) error {
	title := fmt.Sprintf("Permit %s is overdue", p.Number())
	message := fmt.Sprintf("Permit %s (%s) was not reviewed before its deadline of %s.",
		p.Number(), p.Title(), pa.Deadline().Format("2006-01-02 15:04"))

	if err := n.saveNotification(ctx, adminID, vo.NotificationTypeError, title, message, p, pa); err != nil {
		return err
	}

	n.sendEmail(ctx, adminID, func(addr string) error {
		return n.email.SendApprovalOverdueEmail(addr, p.Number(), p.Title(), pa.Deadline())
	})
	return nil
}

// PermitDecided tells the requester the outcome.
func (n *WorkflowNotifier) PermitDecided(ctx context.Context, p *permit.Permit, recipientID uint) error {
	notificationType := vo.NotificationTypeSuccess
	if p.Status().IsRejected() {
		notificationType = vo.NotificationTypeError
	}

	title := fmt.Sprintf("Permit %s %s", p.Number(), p.Status().String())
	message := fmt.Sprintf("Permit %s (%s) has been %s.", p.Number(), p.Title(), p.Status().String())
	if p.RejectionReason() != "" {
		message = fmt.Sprintf("%s Reason: %s", message, p.RejectionReason())
	}

	if err := n.saveNotification(ctx, recipientID, notificationType, title, message, p, nil); err != nil {
		return err
	}

	n.sendEmail(ctx, recipientID, func(addr string) error {
		return n.email.SendPermitDecidedEmail(addr, p.Number(), p.Title(), p.Status().String(), p.RejectionReason())
	})
	return nil
}

func (n *WorkflowNotifier) saveNotification(
	ctx context.Context,
	userID uint,
	notificationType vo.NotificationType,
	title, message string,
	p *permit.Permit,
	pa *permit.PendingApproval,
) error {
	notif, err := notification.NewNotification(userID, notificationType, title, message, fmt.Sprintf("/permits/%d", p.ID()))
	if err != nil {
		return fmt.Errorf("failed to build notification: %w", err)
	}

	metadata := map[string]interface{}{
		"permit_id":     p.ID(),
		"permit_number": p.Number(),
	}
	if pa != nil {
		metadata["pending_approval_id"] = pa.ID()
	}
	notif.SetMetadata(metadata)

	if err := n.notificationRepo.Save(ctx, notif); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

// sendEmail resolves the recipient's address and delivers through the
// configured sender. Failures are logged and swallowed.
func (n *WorkflowNotifier) sendEmail(ctx context.Context, userID uint, send func(addr string) error) {
	if n.email == nil {
		return
	}

	recipient, err := n.userRepo.FindByID(ctx, userID)
	if err != nil {
		n.logger.Warnw("failed to load email recipient", "user_id", userID, "error", err)
		return
	}
	if recipient == nil || recipient.Email() == "" {
		return
	}

	if err := send(recipient.Email()); err != nil {
		n.logger.Warnw("failed to send notification email",
			"user_id", userID,
			"email", recipient.Email(),
			"error", err)
	}
}
