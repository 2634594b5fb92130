package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"amlak/internal/domain/permit"
	vo "amlak/internal/domain/permit/valueobjects"
	"amlak/internal/domain/shared/events"
	"amlak/internal/shared/errors"
	"amlak/internal/shared/logger"
)

type DecidePermitCommand struct {
	PermitID uint
	ActorID  uint
	// StaffOverride lets admins and staff decide approvals assigned to
	// someone else, and settle permits that have no tracked approval.
	StaffOverride bool
	Action        string
	Comments      string
}

type DecidePermitResult struct {
	PermitID  uint
	Number    string
	Status    string
	Action    string
	DecidedAt time.Time
}

type DecidePermitUseCase struct {
	permitRepo   permit.PermitRepository
	approvalRepo permit.PendingApprovalRepository
	recordRepo   permit.ApprovalRecordRepository
	txManager    TransactionManager
	notifier     Notifier
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewDecidePermitUseCase(
	permitRepo permit.PermitRepository,
	approvalRepo permit.PendingApprovalRepository,
	recordRepo permit.ApprovalRecordRepository,
	txManager TransactionManager,
	notifier Notifier,
	publisher events.EventPublisher,
	logger logger.Interface,
) *DecidePermitUseCase {
	return &DecidePermitUseCase{
		permitRepo:   permitRepo,
		approvalRepo: approvalRepo,
		recordRepo:   recordRepo,
		txManager:    txManager,
		notifier:     notifier,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *DecidePermitUseCase) Execute(ctx context.Context, cmd DecidePermitCommand) (*DecidePermitResult, error) {
	uc.logger.Infow("executing decide permit use case",
		"permit_id", cmd.PermitID,
		"actor_id", cmd.ActorID,
		"action", cmd.Action,
	)

	action := vo.ApprovalAction(cmd.Action)
	if !action.IsDecision() {
		return nil, errors.NewValidationError("action must be approved or rejected")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	if action == vo.ActionRejected && len(cmd.Comments) == 0 {
		return nil, errors.NewValidationError("rejection requires comments")
	}

	p, err := uc.permitRepo.FindByID(ctx, cmd.PermitID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("permit not found")
	}

	if p.Status().IsTerminal() {
		return nil, errors.NewInvalidTransitionError("permit is already settled")
	}

	pending, err := uc.approvalRepo.FindActionableByPermitID(ctx, cmd.PermitID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorize(cmd, pending); err != nil {
		uc.logger.Warnw("decision rejected by authorization",
			"permit_id", cmd.PermitID,
			"actor_id", cmd.ActorID,
		)
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		switch action {
		case vo.ActionApproved:
			if err := p.Approve(); err != nil {
				return errors.NewInvalidTransitionError(err.Error())
			}
		case vo.ActionRejected:
			if err := p.Reject(cmd.Comments); err != nil {
				return errors.NewInvalidTransitionError(err.Error())
			}
		}

		if err := uc.permitRepo.Update(txCtx, p); err != nil {
			return err
		}

		record, err := permit.NewApprovalRecord(p.ID(), cmd.ActorID, action, cmd.Comments, nil)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.recordRepo.Save(txCtx, record); err != nil {
			return err
		}

		if pending != nil {
			if err := pending.Complete(); err != nil {
				return errors.NewInvalidTransitionError(err.Error())
			}
			if err := uc.approvalRepo.Complete(txCtx, pending); err != nil {
				if stderrors.Is(err, permit.ErrTransitionLost) {
					return errors.NewConflictError("approval was completed concurrently")
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to record permit decision",
			"error", err,
			"permit_id", cmd.PermitID,
		)
		return nil, err
	}

	if recipient := p.CreatedByID(); recipient != nil {
		if err := uc.notifier.PermitDecided(ctx, p, *recipient); err != nil {
			uc.logger.Warnw("failed to notify requester of decision",
				"error", err,
				"permit_id", p.ID(),
			)
		}
	}

	event := permit.NewPermitDecidedEvent(p.ID(), p.Number(), action.String(), cmd.ActorID)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish permit decided event", "error", err)
	}

	uc.logger.Infow("permit decided",
		"permit_id", p.ID(),
		"number", p.Number(),
		"status", p.Status().String(),
		"actor_id", cmd.ActorID,
	)

	return &DecidePermitResult{
		PermitID:  p.ID(),
		Number:    p.Number(),
		Status:    p.Status().String(),
		Action:    action.String(),
		DecidedAt: p.UpdatedAt(),
	}, nil
}

func (uc *DecidePermitUseCase) authorize(cmd DecidePermitCommand, pending *permit.PendingApproval) error {
	if cmd.StaffOverride {
		return nil
	}
	if pending == nil {
		return errors.NewAuthorizationError("permit has no tracked approval, staff access required")
	}
	if pending.AssignedToID() != cmd.ActorID {
		return errors.NewAuthorizationError("permit approval is assigned to another user")
	}
	return nil
}
