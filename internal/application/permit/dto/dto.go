package dto

import (
	"time"

	"amlak/internal/domain/permit"
)

type PermitDTO struct {
	ID              uint       `json:"id"`
	Number          string     `json:"number"`
	Type            string     `json:"type"`
	Direction       string     `json:"direction"`
	Status          string     `json:"status"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	CompanyName     string     `json:"company_name"`
	ContactPerson   string     `json:"contact_person"`
	ContactPhone    string     `json:"contact_phone"`
	TenantID        uint       `json:"tenant_id"`
	CreatedByID     *uint      `json:"created_by_id"`
	RequestedDate   time.Time  `json:"requested_date"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Notes           string     `json:"notes"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type PermitListItemDTO struct {
	ID            uint   `json:"id"`
	Number        string `json:"number"`
	Type          string `json:"type"`
	Direction     string `json:"direction"`
	Status        string `json:"status"`
	Title         string `json:"title"`
	CompanyName   string `json:"company_name"`
	TenantID      uint   `json:"tenant_id"`
	RequestedDate string `json:"requested_date"`
	CreatedAt     string `json:"created_at"`
}

type PendingApprovalDTO struct {
	ID             uint       `json:"id"`
	PermitID       uint       `json:"permit_id"`
	WorkflowID     uint       `json:"workflow_id"`
	AssignedToID   uint       `json:"assigned_to_id"`
	Deadline       time.Time  `json:"deadline"`
	Overdue        bool       `json:"overdue"`
	Redirected     bool       `json:"redirected"`
	RedirectedAt   *time.Time `json:"redirected_at"`
	RedirectedToID *uint      `json:"redirected_to_id"`
	Completed      bool       `json:"completed"`
	CompletedAt    *time.Time `json:"completed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	Permit         *PermitDTO `json:"permit,omitempty"`
}

type ApprovalRecordDTO struct {
	ID             uint      `json:"id"`
	PermitID       uint      `json:"permit_id"`
	ActorID        uint      `json:"actor_id"`
	Action         string    `json:"action"`
	Comments       string    `json:"comments"`
	RedirectedToID *uint     `json:"redirected_to_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToPermitDTO(p *permit.Permit) *PermitDTO {
	if p == nil {
		return nil
	}

	return &PermitDTO{
		ID:              p.ID(),
		Number:          p.Number(),
		Type:            p.Type().String(),
		Direction:       p.Direction().String(),
		Status:          p.Status().String(),
		Title:           p.Title(),
		Description:     p.Description(),
		CompanyName:     p.CompanyName(),
		ContactPerson:   p.ContactPerson(),
		ContactPhone:    p.ContactPhone(),
		TenantID:        p.TenantID(),
		CreatedByID:     p.CreatedByID(),
		RequestedDate:   p.RequestedDate(),
		StartDate:       p.StartDate(),
		EndDate:         p.EndDate(),
		Notes:           p.Notes(),
		RejectionReason: p.RejectionReason(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

func ToPermitListItemDTO(p *permit.Permit) *PermitListItemDTO {
	if p == nil {
		return nil
	}

	return &PermitListItemDTO{
		ID:            p.ID(),
		Number:        p.Number(),
		Type:          p.Type().String(),
		Direction:     p.Direction().String(),
		Status:        p.Status().String(),
		Title:         p.Title(),
		CompanyName:   p.CompanyName(),
		TenantID:      p.TenantID(),
		RequestedDate: p.RequestedDate().Format(time.RFC3339),
		CreatedAt:     p.CreatedAt().Format(time.RFC3339),
	}
}

func ToPendingApprovalDTO(pa *permit.PendingApproval, p *permit.Permit) *PendingApprovalDTO {
	if pa == nil {
		return nil
	}

	return &PendingApprovalDTO{
		ID:             pa.ID(),
		PermitID:       pa.PermitID(),
		WorkflowID:     pa.WorkflowID(),
		AssignedToID:   pa.AssignedToID(),
		Deadline:       pa.Deadline(),
		Overdue:        pa.IsOverdue(),
		Redirected:     pa.IsRedirected(),
		RedirectedAt:   pa.RedirectedAt(),
		RedirectedToID: pa.RedirectedToID(),
		Completed:      pa.IsCompleted(),
		CompletedAt:    pa.CompletedAt(),
		CreatedAt:      pa.CreatedAt(),
		Permit:         ToPermitDTO(p),
	}
}

func ToApprovalRecordDTO(r *permit.ApprovalRecord) *ApprovalRecordDTO {
	if r == nil {
		return nil
	}

	return &ApprovalRecordDTO{
		ID:             r.ID(),
		PermitID:       r.PermitID(),
		ActorID:        r.ActorID(),
		Action:         r.Action().String(),
		Comments:       r.Comments(),
		RedirectedToID: r.RedirectedToID(),
		CreatedAt:      r.CreatedAt(),
	}
}
