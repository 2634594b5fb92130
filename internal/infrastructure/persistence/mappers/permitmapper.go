package mappers

import (
	"fmt"
	"time"

	"amlak/internal/domain/permit"
	vo "amlak/internal/domain/permit/valueobjects"
	"amlak/internal/infrastructure/persistence/models"
)

// PermitMapper handles the conversion between Permit domain entities and
// persistence models.
type PermitMapper interface {
	ToModel(p *permit.Permit) *models.PermitModel
	ToDomain(model *models.PermitModel) (*permit.Permit, error)
}

type PermitMapperImpl struct{}

func NewPermitMapper() PermitMapper {
	return &PermitMapperImpl{}
}

func (m *PermitMapperImpl) ToModel(p *permit.Permit) *models.PermitModel {
	model := &models.PermitModel{
		ID:              p.ID(),
		Number:          p.Number(),
		Title:           p.Title(),
		Description:     p.Description(),
		PermitType:      p.Type().String(),
		Direction:       p.Direction().String(),
		Status:          p.Status().String(),
		TenantID:        p.TenantID(),
		CreatedByID:     p.CreatedByID(),
		CompanyName:     p.CompanyName(),
		ContactPerson:   p.ContactPerson(),
		ContactPhone:    p.ContactPhone(),
		RequestedDate:   p.RequestedDate().UnixMilli(),
		Notes:           p.Notes(),
		RejectionReason: p.RejectionReason(),
		CreatedAt:       p.CreatedAt().UnixMilli(),
		UpdatedAt:       p.UpdatedAt().UnixMilli(),
	}

	if p.StartDate() != nil {
		start := p.StartDate().UnixMilli()
		model.StartDate = &start
	}
	if p.EndDate() != nil {
		end := p.EndDate().UnixMilli()
		model.EndDate = &end
	}

	return model
}

func (m *PermitMapperImpl) ToDomain(model *models.PermitModel) (*permit.Permit, error) {
	permitType, err := vo.NewPermitType(model.PermitType)
	if err != nil {
		return nil, fmt.Errorf("failed to map permit (id=%d): %w", model.ID, err)
	}
	direction, err := vo.NewDirection(model.Direction)
	if err != nil {
		return nil, fmt.Errorf("failed to map permit (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewPermitStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map permit (id=%d): %w", model.ID, err)
	}

	var startDate, endDate *time.Time
	if model.StartDate != nil {
		t := millisToTime(*model.StartDate)
		startDate = &t
	}
	if model.EndDate != nil {
		t := millisToTime(*model.EndDate)
		endDate = &t
	}

	return permit.ReconstructPermit(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		permitType,
		direction,
		status,
		model.TenantID,
		model.CreatedByID,
		model.CompanyName,
		model.ContactPerson,
		model.ContactPhone,
		millisToTime(model.RequestedDate),
		startDate,
		endDate,
		model.Notes,
		model.RejectionReason,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
