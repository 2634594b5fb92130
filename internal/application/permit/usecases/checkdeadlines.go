package usecases

import (
	"context"
	stderrors "errors"

	"amlak/internal/domain/permit"
	"amlak/internal/domain/shared/events"
	"amlak/internal/domain/user"
	"amlak/internal/shared/logger"
)

type CheckDeadlinesResult struct {
	Examined   int
	Redirected int
}

// CheckDeadlinesUseCase is the deadline sweep. It runs periodically (and on
// demand from the CLI) to escalate overdue approvals. Each row is processed
// independently so one bad row never stalls the sweep.
type CheckDeadlinesUseCase struct {
	approvalRepo permit.PendingApprovalRepository
	workflowRepo permit.WorkflowRepository
	permitRepo   permit.PermitRepository
	userRepo     user.Repository
	notifier     Notifier
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewCheckDeadlinesUseCase(
	approvalRepo permit.PendingApprovalRepository,
	workflowRepo permit.WorkflowRepository,
	permitRepo permit.PermitRepository,
	userRepo user.Repository,
	notifier Notifier,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CheckDeadlinesUseCase {
	return &CheckDeadlinesUseCase{
		approvalRepo: approvalRepo,
		workflowRepo: workflowRepo,
		permitRepo:   permitRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *CheckDeadlinesUseCase) Execute(ctx context.Context) (*CheckDeadlinesResult, error) {
	open, err := uc.approvalRepo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}

	result := &CheckDeadlinesResult{}
	if len(open) == 0 {
		return result, nil
	}

	uc.logger.Debugw("sweeping pending approvals", "count", len(open))

	workflows := make(map[uint]*permit.ApprovalWorkflow)

	for _, pa := range open {
		result.Examined++

		w, ok := workflows[pa.WorkflowID()]
		if !ok {
			w, err = uc.workflowRepo.FindByID(ctx, pa.WorkflowID())
			if err != nil || w == nil {
				uc.logger.Errorw("failed to load workflow for pending approval",
					"error", err,
					"pending_approval_id", pa.ID(),
					"workflow_id", pa.WorkflowID(),
				)
				continue
			}
			workflows[pa.WorkflowID()] = w
		}

		redirected, err := uc.CheckRow(ctx, pa, w)
		if err != nil {
			uc.logger.Errorw("failed to process pending approval",
				"error", err,
				"pending_approval_id", pa.ID(),
			)
			continue
		}
		if redirected {
			result.Redirected++
		}
	}

	uc.logger.Infow("deadline sweep finished",
		"examined", result.Examined,
		"redirected", result.Redirected,
	)

	return result, nil
}

// CheckRow applies the deadline policy to a single pending approval and
// persists the resulting transition. It reports whether the row was
// redirected. Shared with the lazy check done when approvers list their
// queue.
func (uc *CheckDeadlinesUseCase) CheckRow(ctx context.Context, pa *permit.PendingApproval, w *permit.ApprovalWorkflow) (bool, error) {
	previousAssigneeID := pa.AssignedToID()

	check, err := pa.CheckDeadline(w)
	if err != nil {
		return false, err
	}
	if !check.Overdue {
		return false, nil
	}

	if !check.Redirected {
		if err := uc.approvalRepo.MarkOverdue(ctx, pa); err != nil {
			if stderrors.Is(err, permit.ErrTransitionLost) {
				// Another worker settled or redirected the row first.
				return false, nil
			}
			return false, err
		}
		return false, nil
	}

	// The ownership change must be durable before anyone is told about it.
	// Losing the guarded update means another sweep won the transition and
	// its winner sends the notifications.
	if err := uc.approvalRepo.ApplyRedirect(ctx, pa); err != nil {
		if stderrors.Is(err, permit.ErrTransitionLost) {
			uc.logger.Debugw("redirect lost to concurrent update",
				"pending_approval_id", pa.ID(),
			)
			return false, nil
		}
		return false, err
	}

	uc.logger.Infow("pending approval redirected to backup",
		"pending_approval_id", pa.ID(),
		"permit_id", pa.PermitID(),
		"from_user_id", previousAssigneeID,
		"to_user_id", check.RedirectedToID,
	)

	p, err := uc.permitRepo.FindByID(ctx, pa.PermitID())
	if err != nil || p == nil {
		uc.logger.Errorw("failed to load permit for redirect notifications",
			"error", err,
			"permit_id", pa.PermitID(),
		)
		return true, nil
	}

	if err := uc.notifier.ApprovalRedirected(ctx, p, pa, previousAssigneeID); err != nil {
		uc.logger.Warnw("failed to notify backup approver",
			"error", err,
			"pending_approval_id", pa.ID(),
			"to_user_id", check.RedirectedToID,
		)
	}

	if check.NotifyAdmin {
		uc.notifyAdmins(ctx, p, pa)
	}

	event := permit.NewApprovalRedirectedEvent(p.ID(), pa.ID(), previousAssigneeID, check.RedirectedToID)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish approval redirected event", "error", err)
	}

	return true, nil
}

func (uc *CheckDeadlinesUseCase) notifyAdmins(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval) {
	admins, err := uc.userRepo.ListAdmins(ctx)
	if err != nil {
		uc.logger.Errorw("failed to enumerate admins for overdue warning",
			"error", err,
			"pending_approval_id", pa.ID(),
		)
		return
	}

	for _, admin := range admins {
		if err := uc.notifier.ApprovalOverdue(ctx, p, pa, admin.ID()); err != nil {
			uc.logger.Warnw("failed to notify admin of overdue approval",
				"error", err,
				"admin_id", admin.ID(),
				"pending_approval_id", pa.ID(),
			)
		}
	}
}
