package usecases

import (
	"context"

	"amlak/internal/application/permit/dto"
	"amlak/internal/domain/permit"
	"amlak/internal/shared/errors"
	"amlak/internal/shared/logger"
)

type ListPendingApprovalsCommand struct {
	AssigneeID uint
}

type ListPendingApprovalsResult struct {
	Approvals []*dto.PendingApprovalDTO
}

// ListPendingApprovalsUseCase returns an approver's actionable queue. Rows
// past their deadline are escalated on read through the same guarded
// transition the background sweep uses, so a stopped scheduler never shows
// stale ownership.
type ListPendingApprovalsUseCase struct {
	approvalRepo permit.PendingApprovalRepository
	workflowRepo permit.WorkflowRepository
	permitRepo   permit.PermitRepository
	deadlines    *CheckDeadlinesUseCase
	logger       logger.Interface
}

func NewListPendingApprovalsUseCase(
	approvalRepo permit.PendingApprovalRepository,
	workflowRepo permit.WorkflowRepository,
	permitRepo permit.PermitRepository,
	deadlines *CheckDeadlinesUseCase,
	logger logger.Interface,
) *ListPendingApprovalsUseCase {
	return &ListPendingApprovalsUseCase{
		approvalRepo: approvalRepo,
		workflowRepo: workflowRepo,
		permitRepo:   permitRepo,
		deadlines:    deadlines,
		logger:       logger,
	}
}

func (uc *ListPendingApprovalsUseCase) Execute(ctx context.Context, cmd ListPendingApprovalsCommand) (*ListPendingApprovalsResult, error) {
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID is required")
	}

	rows, err := uc.approvalRepo.FindActionableByAssignee(ctx, cmd.AssigneeID)
	if err != nil {
		return nil, err
	}

	approvals := make([]*dto.PendingApprovalDTO, 0, len(rows))
	for _, pa := range rows {
		if pa.IsOpen() {
			w, err := uc.workflowRepo.FindByID(ctx, pa.WorkflowID())
			if err != nil || w == nil {
				uc.logger.Errorw("failed to load workflow for lazy deadline check",
					"error", err,
					"pending_approval_id", pa.ID(),
				)
			} else {
				redirected, err := uc.deadlines.CheckRow(ctx, pa, w)
				if err != nil {
					uc.logger.Errorw("lazy deadline check failed",
						"error", err,
						"pending_approval_id", pa.ID(),
					)
				}
				// The row moved to the backup approver's queue.
				if redirected && pa.AssignedToID() != cmd.AssigneeID {
					continue
				}
			}
		}

		p, err := uc.permitRepo.FindByID(ctx, pa.PermitID())
		if err != nil {
			uc.logger.Errorw("failed to load permit for pending approval",
				"error", err,
				"permit_id", pa.PermitID(),
			)
		}

		approvals = append(approvals, dto.ToPendingApprovalDTO(pa, p))
	}

	return &ListPendingApprovalsResult{Approvals: approvals}, nil
}
