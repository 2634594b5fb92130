package usecases

import (
	"context"
	"time"

	"amlak/internal/domain/permit"
	vo "amlak/internal/domain/permit/valueobjects"
	"amlak/internal/domain/shared/events"
	"amlak/internal/shared/errors"
	"amlak/internal/shared/logger"
)

type CreatePermitCommand struct {
	Type          string
	Direction     string
	Title         string
	Description   string
	CompanyName   string
	ContactPerson string
	ContactPhone  string
	TenantID      uint
	CreatedByID   *uint
	RequestedDate time.Time
	StartDate     *time.Time
	EndDate       *time.Time
	Notes         string
}

type CreatePermitResult struct {
	PermitID uint
	Number   string
	Status   string
	// Tracked is false when no active workflow routes this permit type and
	// the permit is left for manual handling.
	Tracked           bool
	PendingApprovalID uint
	AssignedToID      uint
	Deadline          *time.Time
	CreatedAt         time.Time
}

type CreatePermitUseCase struct {
	permitRepo   permit.PermitRepository
	workflowRepo permit.WorkflowRepository
	approvalRepo permit.PendingApprovalRepository
	numberGen    permit.NumberGenerator
	txManager    TransactionManager
	notifier     Notifier
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewCreatePermitUseCase(
	permitRepo permit.PermitRepository,
	workflowRepo permit.WorkflowRepository,
	approvalRepo permit.PendingApprovalRepository,
	numberGen permit.NumberGenerator,
	txManager TransactionManager,
	notifier Notifier,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CreatePermitUseCase {
	return &CreatePermitUseCase{
		permitRepo:   permitRepo,
		workflowRepo: workflowRepo,
		approvalRepo: approvalRepo,
		numberGen:    numberGen,
		txManager:    txManager,
		notifier:     notifier,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *CreatePermitUseCase) Execute(ctx context.Context, cmd CreatePermitCommand) (*CreatePermitResult, error) {
	uc.logger.Infow("executing create permit use case",
		"title", cmd.Title,
		"type", cmd.Type,
		"tenant_id", cmd.TenantID,
	)

	permitType := vo.PermitType(cmd.Type)
	direction := vo.Direction(cmd.Direction)

	newPermit, err := permit.NewPermit(
		cmd.Title,
		cmd.Description,
		permitType,
		direction,
		cmd.TenantID,
		cmd.CreatedByID,
		cmd.RequestedDate,
	)
	if err != nil {
		uc.logger.Warnw("invalid create permit command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	newPermit.SetContact(cmd.CompanyName, cmd.ContactPerson, cmd.ContactPhone)
	newPermit.SetNotes(cmd.Notes)
	if err := newPermit.SetValidityWindow(cmd.StartDate, cmd.EndDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate permit number", "error", err)
		return nil, err
	}
	if err := newPermit.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	workflow, err := uc.workflowRepo.FindRouteForType(ctx, permitType)
	if err != nil {
		uc.logger.Errorw("failed to resolve approval workflow", "error", err, "type", cmd.Type)
		return nil, err
	}

	var pending *permit.PendingApproval

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.permitRepo.Save(txCtx, newPermit); err != nil {
			return err
		}

		if workflow == nil {
			return nil
		}

		pa, err := permit.NewPendingApproval(newPermit, workflow)
		if err != nil {
			return err
		}
		if err := uc.approvalRepo.Save(txCtx, pa); err != nil {
			return err
		}
		pending = pa
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to save permit", "error", err, "number", number)
		return nil, err
	}

	result := &CreatePermitResult{
		PermitID:  newPermit.ID(),
		Number:    newPermit.Number(),
		Status:    newPermit.Status().String(),
		Tracked:   pending != nil,
		CreatedAt: newPermit.CreatedAt(),
	}

	if pending == nil {
		// No route for this type: the permit still exists but nobody is
		// assigned, so it waits for manual approval.
		uc.logger.Warnw("no active workflow routes permit type, skipping approval tracking",
			"number", newPermit.Number(),
			"type", cmd.Type,
		)
	} else {
		deadline := pending.Deadline()
		result.PendingApprovalID = pending.ID()
		result.AssignedToID = pending.AssignedToID()
		result.Deadline = &deadline

		if err := uc.notifier.PermitAssigned(ctx, newPermit, pending); err != nil {
			uc.logger.Warnw("failed to notify assigned approver",
				"error", err,
				"number", newPermit.Number(),
				"assigned_to_id", pending.AssignedToID(),
			)
		}
	}

	event := permit.NewPermitCreatedEvent(
		newPermit.ID(),
		newPermit.Number(),
		newPermit.Type().String(),
		newPermit.TenantID(),
		pending != nil,
	)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish permit created event", "error", err)
	}

	uc.logger.Infow("permit created",
		"permit_id", newPermit.ID(),
		"number", newPermit.Number(),
		"tracked", pending != nil,
	)

	return result, nil
}
