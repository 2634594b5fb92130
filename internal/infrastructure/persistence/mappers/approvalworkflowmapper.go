package mappers

import (
	"fmt"

	"amlak/internal/domain/permit"
	vo "amlak/internal/domain/permit/valueobjects"
	"amlak/internal/infrastructure/persistence/models"
)

type ApprovalWorkflowMapper interface {
	ToModel(w *permit.ApprovalWorkflow) *models.ApprovalWorkflowModel
	ToDomain(model *models.ApprovalWorkflowModel) (*permit.ApprovalWorkflow, error)
}

type ApprovalWorkflowMapperImpl struct{}

func NewApprovalWorkflowMapper() ApprovalWorkflowMapper {
	return &ApprovalWorkflowMapperImpl{}
}

func (m *ApprovalWorkflowMapperImpl) ToModel(w *permit.ApprovalWorkflow) *models.ApprovalWorkflowModel {
	model := &models.ApprovalWorkflowModel{
		ID:               w.ID(),
		Name:             w.Name(),
		ApproverID:       w.ApproverID(),
		BackupApproverID: w.BackupApproverID(),
		DeadlineHours:    w.DeadlineHours(),
		AutoRedirect:     w.AutoRedirect(),
		NotifyAdmin:      w.NotifyAdmin(),
		IsActive:         w.IsActive(),
		CreatedAt:        w.CreatedAt().UnixMilli(),
	}

	// NULL permit_type means the workflow matches every type.
	if w.PermitType() != nil {
		t := w.PermitType().String()
		model.PermitType = &t
	}

	return model
}

func (m *ApprovalWorkflowMapperImpl) ToDomain(model *models.ApprovalWorkflowModel) (*permit.ApprovalWorkflow, error) {
	var permitType *vo.PermitType
	if model.PermitType != nil {
		t, err := vo.NewPermitType(*model.PermitType)
		if err != nil {
			return nil, fmt.Errorf("failed to map approval workflow (id=%d): %w", model.ID, err)
		}
		permitType = &t
	}

	return permit.ReconstructApprovalWorkflow(
		model.ID,
		model.Name,
		permitType,
		model.ApproverID,
		model.BackupApproverID,
		model.DeadlineHours,
		model.AutoRedirect,
		model.NotifyAdmin,
		model.IsActive,
		millisToTime(model.CreatedAt),
	)
}
