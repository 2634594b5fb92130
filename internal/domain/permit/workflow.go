package permit

import (
	"fmt"
	"time"

	vo "amlak/internal/domain/permit/valueobjects"
)

const DefaultDeadlineHours = 24

// ApprovalWorkflow is the static routing configuration mapping a permit
// type to its responsible approver, backup approver and deadline policy.
// It is configured by administrators and read-only for the escalation
// engine at runtime.
type ApprovalWorkflow struct {
	id               uint
	name             string
	permitType       *vo.PermitType
	approverID       uint
	backupApproverID *uint
	deadlineHours    int
	autoRedirect     bool
	notifyAdmin      bool
	active           bool
	createdAt        time.Time
}

func NewApprovalWorkflow(
	name string,
	permitType *vo.PermitType,
	approverID uint,
	backupApproverID *uint,
	deadlineHours int,
) (*ApprovalWorkflow, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("workflow name is required")
	}
	if permitType != nil && !permitType.IsValid() {
		return nil, fmt.Errorf("invalid permit type filter")
	}
	if approverID == 0 {
		return nil, fmt.Errorf("approver ID is required")
	}
	if backupApproverID != nil && *backupApproverID == 0 {
		return nil, fmt.Errorf("backup approver ID cannot be zero")
	}
	if deadlineHours <= 0 {
		deadlineHours = DefaultDeadlineHours
	}

	return &ApprovalWorkflow{
		name:             name,
		permitType:       permitType,
		approverID:       approverID,
		backupApproverID: backupApproverID,
		deadlineHours:    deadlineHours,
		autoRedirect:     true,
		notifyAdmin:      true,
		active:           true,
		createdAt:        time.Now(),
	}, nil
}

func ReconstructApprovalWorkflow(
	id uint,
	name string,
	permitType *vo.PermitType,
	approverID uint,
	backupApproverID *uint,
	deadlineHours int,
	autoRedirect bool,
	notifyAdmin bool,
	active bool,
	createdAt time.Time,
) (*ApprovalWorkflow, error) {
	if id == 0 {
		return nil, fmt.Errorf("workflow ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("workflow name is required")
	}
	if approverID == 0 {
		return nil, fmt.Errorf("approver ID is required")
	}
	if deadlineHours <= 0 {
		return nil, fmt.Errorf("deadline hours must be positive")
	}

	return &ApprovalWorkflow{
		id:               id,
		name:             name,
		permitType:       permitType,
		approverID:       approverID,
		backupApproverID: backupApproverID,
		deadlineHours:    deadlineHours,
		autoRedirect:     autoRedirect,
		notifyAdmin:      notifyAdmin,
		active:           active,
		createdAt:        createdAt,
	}, nil
}

func (w *ApprovalWorkflow) ID() uint {
	return w.id
}

func (w *ApprovalWorkflow) Name() string {
	return w.name
}

// PermitType returns the permit-type filter, nil meaning wildcard.
func (w *ApprovalWorkflow) PermitType() *vo.PermitType {
	return w.permitType
}

func (w *ApprovalWorkflow) ApproverID() uint {
	return w.approverID
}

func (w *ApprovalWorkflow) BackupApproverID() *uint {
	return w.backupApproverID
}

func (w *ApprovalWorkflow) DeadlineHours() int {
	return w.deadlineHours
}

func (w *ApprovalWorkflow) AutoRedirect() bool {
	return w.autoRedirect
}

func (w *ApprovalWorkflow) NotifyAdmin() bool {
	return w.notifyAdmin
}

func (w *ApprovalWorkflow) IsActive() bool {
	return w.active
}

func (w *ApprovalWorkflow) CreatedAt() time.Time {
	return w.createdAt
}

func (w *ApprovalWorkflow) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("workflow ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("workflow ID cannot be zero")
	}
	w.id = id
	return nil
}

func (w *ApprovalWorkflow) SetAutoRedirect(enabled bool) {
	w.autoRedirect = enabled
}

func (w *ApprovalWorkflow) SetNotifyAdmin(enabled bool) {
	w.notifyAdmin = enabled
}

func (w *ApprovalWorkflow) Deactivate() {
	w.active = false
}

// Matches reports whether this workflow routes the given permit type.
// A nil permit-type filter matches every type.
func (w *ApprovalWorkflow) Matches(t vo.PermitType) bool {
	if !w.active {
		return false
	}
	if w.permitType == nil {
		return true
	}
	return *w.permitType == t
}

// Deadline computes the absolute deadline for an assignment created now.
// Hours are wall-clock, not business hours.
func (w *ApprovalWorkflow) Deadline(from time.Time) time.Time {
	return from.Add(time.Duration(w.deadlineHours) * time.Hour)
}

// CanRedirect reports whether an overdue assignment routed by this
// workflow may be handed to a backup approver.
func (w *ApprovalWorkflow) CanRedirect() bool {
	return w.autoRedirect && w.backupApproverID != nil
}
