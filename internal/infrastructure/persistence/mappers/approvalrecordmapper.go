package mappers

import (
	"fmt"

	"amlak/internal/domain/permit"
	vo "amlak/internal/domain/permit/valueobjects"
	"amlak/internal/infrastructure/persistence/models"
)

type ApprovalRecordMapper interface {
	ToModel(r *permit.ApprovalRecord) *models.ApprovalRecordModel
	ToDomain(model *models.ApprovalRecordModel) (*permit.ApprovalRecord, error)
}

type ApprovalRecordMapperImpl struct{}

func NewApprovalRecordMapper() ApprovalRecordMapper {
	return &ApprovalRecordMapperImpl{}
}

func (m *ApprovalRecordMapperImpl) ToModel(r *permit.ApprovalRecord) *models.ApprovalRecordModel {
	return &models.ApprovalRecordModel{
		ID:             r.ID(),
		PermitID:       r.PermitID(),
		ActorID:        r.ActorID(),
		Action:         r.Action().String(),
		Comments:       r.Comments(),
		RedirectedToID: r.RedirectedToID(),
		CreatedAt:      r.CreatedAt().UnixMilli(),
	}
}

func (m *ApprovalRecordMapperImpl) ToDomain(model *models.ApprovalRecordModel) (*permit.ApprovalRecord, error) {
	action, err := vo.NewApprovalAction(model.Action)
	if err != nil {
		return nil, fmt.Errorf("failed to map approval record (id=%d): %w", model.ID, err)
	}

	return permit.ReconstructApprovalRecord(
		model.ID,
		model.PermitID,
		model.ActorID,
		action,
		model.Comments,
		model.RedirectedToID,
		millisToTime(model.CreatedAt),
	)
}
