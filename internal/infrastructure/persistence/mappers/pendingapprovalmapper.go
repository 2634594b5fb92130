package mappers

import (
	"time"

	"amlak/internal/domain/permit"
	"amlak/internal/infrastructure/persistence/models"
)

type PendingApprovalMapper interface {
	ToModel(pa *permit.PendingApproval) *models.PendingApprovalModel
	ToDomain(model *models.PendingApprovalModel) (*permit.PendingApproval, error)
}

type PendingApprovalMapperImpl struct{}

func NewPendingApprovalMapper() PendingApprovalMapper {
	return &PendingApprovalMapperImpl{}
}

func (m *PendingApprovalMapperImpl) ToModel(pa *permit.PendingApproval) *models.PendingApprovalModel {
	model := &models.PendingApprovalModel{
		ID:            pa.ID(),
		PermitID:      pa.PermitID(),
		WorkflowID:    pa.WorkflowID(),
		AssignedToID:  pa.AssignedToID(),
		Deadline:      pa.Deadline().UnixMilli(),
		IsOverdue:     pa.IsOverdue(),
		Redirected:    pa.IsRedirected(),
		AdminNotified: pa.AdminNotified(),
		Completed:     pa.IsCompleted(),
		CreatedAt:     pa.CreatedAt().UnixMilli(),
	}

	if pa.RedirectedAt() != nil {
		at := pa.RedirectedAt().UnixMilli()
		model.RedirectedAt = &at
	}
	model.RedirectedToID = pa.RedirectedToID()

	if pa.CompletedAt() != nil {
		at := pa.CompletedAt().UnixMilli()
		model.CompletedAt = &at
	}

	return model
}

func (m *PendingApprovalMapperImpl) ToDomain(model *models.PendingApprovalModel) (*permit.PendingApproval, error) {
	var redirectedAt, completedAt *time.Time
	if model.RedirectedAt != nil {
		t := millisToTime(*model.RedirectedAt)
		redirectedAt = &t
	}
	if model.CompletedAt != nil {
		t := millisToTime(*model.CompletedAt)
		completedAt = &t
	}

	return permit.ReconstructPendingApproval(
		model.ID,
		model.PermitID,
		model.WorkflowID,
		model.AssignedToID,
		millisToTime(model.Deadline),
		model.IsOverdue,
		model.Redirected,
		redirectedAt,
		model.RedirectedToID,
		model.AdminNotified,
		model.Completed,
		completedAt,
		millisToTime(model.CreatedAt),
	)
}
