package permit

import (
	"errors"
	"fmt"
	"time"
)

// ErrTransitionLost is reported when a guarded state transition finds the
// row already completed or redirected by a concurrent caller. The loser
// must treat the record as handled and make no further writes.
var ErrTransitionLost = errors.New("pending approval transition lost to a concurrent update")

// PendingApproval tracks one outstanding approval assignment: who owns it,
// when it is due, and whether it escalated. Open means neither completed
// nor redirected. Completed is terminal. Redirected rows remain actionable
// by the backup approver but are never deadline-checked again (single-hop
// escalation).
type PendingApproval struct {
	id             uint
	permitID       uint
	workflowID     uint
	assignedToID   uint
	deadline       time.Time
	overdue        bool
	redirected     bool
	redirectedAt   *time.Time
	redirectedToID *uint
	adminNotified  bool
	completed      bool
	completedAt    *time.Time
	createdAt      time.Time
}

// NewPendingApproval opens an assignment for a pending permit against a
// matching active workflow. The deadline is fixed at creation and never
// extended.
func NewPendingApproval(p *Permit, w *ApprovalWorkflow) (*PendingApproval, error) {
	if p == nil {
		return nil, fmt.Errorf("permit is required")
	}
	if w == nil {
		return nil, fmt.Errorf("workflow is required")
	}
	if p.ID() == 0 {
		return nil, fmt.Errorf("permit must be persisted before tracking")
	}
	if w.ID() == 0 {
		return nil, fmt.Errorf("workflow must be persisted before tracking")
	}
	if !p.Status().IsPending() {
		return nil, fmt.Errorf("cannot track a %s permit", p.Status())
	}
	if !w.Matches(p.Type()) {
		return nil, fmt.Errorf("workflow %q does not route permit type %s", w.Name(), p.Type())
	}

	now := time.Now()

	return &PendingApproval{
		permitID:     p.ID(),
		workflowID:   w.ID(),
		assignedToID: w.ApproverID(),
		deadline:     w.Deadline(now),
		createdAt:    now,
	}, nil
}

func ReconstructPendingApproval(
	id uint,
	permitID uint,
	workflowID uint,
	assignedToID uint,
	deadline time.Time,
	overdue bool,
	redirected bool,
	redirectedAt *time.Time,
	redirectedToID *uint,
	adminNotified bool,
	completed bool,
	completedAt *time.Time,
	createdAt time.Time,
) (*PendingApproval, error) {
	if id == 0 {
		return nil, fmt.Errorf("pending approval ID cannot be zero")
	}
	if permitID == 0 {
		return nil, fmt.Errorf("permit ID is required")
	}
	if workflowID == 0 {
		return nil, fmt.Errorf("workflow ID is required")
	}
	if assignedToID == 0 {
		return nil, fmt.Errorf("assignee ID is required")
	}
	if deadline.IsZero() {
		return nil, fmt.Errorf("deadline is required")
	}

	return &PendingApproval{
		id:             id,
		permitID:       permitID,
		workflowID:     workflowID,
		assignedToID:   assignedToID,
		deadline:       deadline,
		overdue:        overdue,
		redirected:     redirected,
		redirectedAt:   redirectedAt,
		redirectedToID: redirectedToID,
		adminNotified:  adminNotified,
		completed:      completed,
		completedAt:    completedAt,
		createdAt:      createdAt,
	}, nil
}

func (pa *PendingApproval) ID() uint {
	return pa.id
}

func (pa *PendingApproval) PermitID() uint {
	return pa.permitID
}

func (pa *PendingApproval) WorkflowID() uint {
	return pa.workflowID
}

func (pa *PendingApproval) AssignedToID() uint {
	return pa.assignedToID
}

func (pa *PendingApproval) Deadline() time.Time {
	return pa.deadline
}

func (pa *PendingApproval) IsOverdue() bool {
	return pa.overdue
}

func (pa *PendingApproval) IsRedirected() bool {
	return pa.redirected
}

func (pa *PendingApproval) RedirectedAt() *time.Time {
	return pa.redirectedAt
}

func (pa *PendingApproval) RedirectedToID() *uint {
	return pa.redirectedToID
}

func (pa *PendingApproval) AdminNotified() bool {
	return pa.adminNotified
}

func (pa *PendingApproval) IsCompleted() bool {
	return pa.completed
}

func (pa *PendingApproval) CompletedAt() *time.Time {
	return pa.completedAt
}

func (pa *PendingApproval) CreatedAt() time.Time {
	return pa.createdAt
}

func (pa *PendingApproval) SetID(id uint) error {
	if pa.id != 0 {
		return fmt.Errorf("pending approval ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("pending approval ID cannot be zero")
	}
	pa.id = id
	return nil
}

// IsOpen reports whether the assignment is still eligible for deadline
// checks: neither completed nor redirected.
func (pa *PendingApproval) IsOpen() bool {
	return !pa.completed && !pa.redirected
}

// IsActionable reports whether the current assignee can still decide the
// permit. A redirected assignment stays actionable for the backup
// approver until completed.
func (pa *PendingApproval) IsActionable() bool {
	return !pa.completed
}

// DeadlineCheck describes the effect of one CheckDeadline call so the
// caller knows which persistence/notification work is owed.
type DeadlineCheck struct {
	Overdue        bool
	Redirected     bool
	RedirectedToID uint
	NotifyAdmin    bool
}

// CheckDeadline evaluates the assignment against its workflow policy.
// It is a no-op on completed or redirected records, which makes repeated
// calls idempotent. Past the deadline the record is marked overdue; if
// the workflow allows auto-redirect and names a backup approver, ownership
// moves to the backup in the same step. NotifyAdmin is set at most once
// per record.
func (pa *PendingApproval) CheckDeadline(w *ApprovalWorkflow) (DeadlineCheck, error) {
	var check DeadlineCheck

	if w == nil {
		return check, fmt.Errorf("workflow is required")
	}
	if w.ID() != pa.workflowID {
		return check, fmt.Errorf("workflow %d does not own pending approval %d", w.ID(), pa.id)
	}

	if pa.completed || pa.redirected {
		return check, nil
	}

	now := time.Now()
	if !now.After(pa.deadline) {
		return check, nil
	}

	pa.overdue = true
	check.Overdue = true

	if !w.CanRedirect() {
		return check, nil
	}

	backupID := *w.BackupApproverID()
	pa.redirected = true
	pa.redirectedAt = &now
	pa.redirectedToID = &backupID
	pa.assignedToID = backupID
	check.Redirected = true
	check.RedirectedToID = backupID

	if w.NotifyAdmin() && !pa.adminNotified {
		pa.adminNotified = true
		check.NotifyAdmin = true
	}

	return check, nil
}

// Complete settles the assignment after a decision was recorded. Allowed
// on redirected records: the backup approver still owns the decision.
func (pa *PendingApproval) Complete() error {
	if pa.completed {
		return fmt.Errorf("pending approval is already completed")
	}
	now := time.Now()
	pa.completed = true
	pa.completedAt = &now
	return nil
}
