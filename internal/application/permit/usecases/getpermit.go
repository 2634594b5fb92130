package usecases

import (
	"context"

	"amlak/internal/application/permit/dto"
	"amlak/internal/domain/permit"
	"amlak/internal/shared/errors"
	"amlak/internal/shared/logger"
)

type GetPermitCommand struct {
	PermitID uint
}

type GetPermitResult struct {
	Permit          *dto.PermitDTO
	PendingApproval *dto.PendingApprovalDTO
	History         []*dto.ApprovalRecordDTO
}

type GetPermitUseCase struct {
	permitRepo   permit.PermitRepository
	approvalRepo permit.PendingApprovalRepository
	recordRepo   permit.ApprovalRecordRepository
	logger       logger.Interface
}

func NewGetPermitUseCase(
	permitRepo permit.PermitRepository,
	approvalRepo permit.PendingApprovalRepository,
	recordRepo permit.ApprovalRecordRepository,
	logger logger.Interface,
) *GetPermitUseCase {
	return &GetPermitUseCase{
		permitRepo:   permitRepo,
		approvalRepo: approvalRepo,
		recordRepo:   recordRepo,
		logger:       logger,
	}
}

func (uc *GetPermitUseCase) Execute(ctx context.Context, cmd GetPermitCommand) (*GetPermitResult, error) {
	p, err := uc.permitRepo.FindByID(ctx, cmd.PermitID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("permit not found")
	}

	pending, err := uc.approvalRepo.FindActionableByPermitID(ctx, cmd.PermitID)
	if err != nil {
		uc.logger.Errorw("failed to load pending approval", "error", err, "permit_id", cmd.PermitID)
	}

	records, err := uc.recordRepo.FindByPermitID(ctx, cmd.PermitID)
	if err != nil {
		uc.logger.Errorw("failed to load approval history", "error", err, "permit_id", cmd.PermitID)
	}

	history := make([]*dto.ApprovalRecordDTO, 0, len(records))
	for _, r := range records {
		history = append(history, dto.ToApprovalRecordDTO(r))
	}

	return &GetPermitResult{
		Permit:          dto.ToPermitDTO(p),
		PendingApproval: dto.ToPendingApprovalDTO(pending, nil),
		History:         history,
	}, nil
}
