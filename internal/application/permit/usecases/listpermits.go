package usecases

import (
	"context"

	"amlak/internal/application/permit/dto"
	"amlak/internal/domain/permit"
	vo "amlak/internal/domain/permit/valueobjects"
	"amlak/internal/shared/constants"
	"amlak/internal/shared/errors"
	"amlak/internal/shared/logger"
)

type ListPermitsCommand struct {
	Type      string
	Status    string
	Direction string
	TenantID  *uint
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListPermitsResult struct {
	Permits  []*dto.PermitListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListPermitsUseCase struct {
	permitRepo permit.PermitRepository
	logger     logger.Interface
}

func NewListPermitsUseCase(permitRepo permit.PermitRepository, logger logger.Interface) *ListPermitsUseCase {
	return &ListPermitsUseCase{permitRepo: permitRepo, logger: logger}
}

func (uc *ListPermitsUseCase) Execute(ctx context.Context, cmd ListPermitsCommand) (*ListPermitsResult, error) {
	filter, err := uc.buildFilter(cmd)
	if err != nil {
		return nil, err
	}

	permits, total, err := uc.permitRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list permits", "error", err)
		return nil, err
	}

	items := make([]*dto.PermitListItemDTO, 0, len(permits))
	for _, p := range permits {
		items = append(items, dto.ToPermitListItemDTO(p))
	}

	return &ListPermitsResult{
		Permits:  items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListPermitsUseCase) buildFilter(cmd ListPermitsCommand) (permit.PermitFilter, error) {
	filter := permit.PermitFilter{
		TenantID:  cmd.TenantID,
		Search:    cmd.Search,
		Page:      cmd.Page,
		PageSize:  cmd.PageSize,
		SortBy:    cmd.SortBy,
		SortOrder: cmd.SortOrder,
	}

	if cmd.Type != "" {
		t := vo.PermitType(cmd.Type)
		if !t.IsValid() {
			return filter, errors.NewValidationError("invalid permit type filter")
		}
		filter.Type = &t
	}
	if cmd.Status != "" {
		s := vo.PermitStatus(cmd.Status)
		if !s.IsValid() {
			return filter, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &s
	}
	if cmd.Direction != "" {
		d := vo.Direction(cmd.Direction)
		if !d.IsValid() {
			return filter, errors.NewValidationError("invalid direction filter")
		}
		filter.Direction = &d
	}

	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}

	return filter, nil
}
