package permit

import (
	"context"

	vo "amlak/internal/domain/permit/valueobjects"
)

type PermitRepository interface {
	Save(ctx context.Context, p *Permit) error
	Update(ctx context.Context, p *Permit) error
	FindByID(ctx context.Context, permitID uint) (*Permit, error)
	FindByNumber(ctx context.Context, number string) (*Permit, error)
	List(ctx context.Context, filter PermitFilter) ([]*Permit, int64, error)
}

type PermitFilter struct {
	Type      *vo.PermitType
	Status    *vo.PermitStatus
	Direction *vo.Direction
	TenantID  *uint
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type WorkflowRepository interface {
	Save(ctx context.Context, w *ApprovalWorkflow) error
	FindByID(ctx context.Context, workflowID uint) (*ApprovalWorkflow, error)
	// FindRouteForType selects the workflow that routes the given permit
	// type: the active exact-type match with the smallest ID, falling back
	// to the active wildcard workflow with the smallest ID. Returns nil
	// (no error) when nothing matches.
	FindRouteForType(ctx context.Context, t vo.PermitType) (*ApprovalWorkflow, error)
	ListActive(ctx context.Context) ([]*ApprovalWorkflow, error)
}

type PendingApprovalRepository interface {
	Save(ctx context.Context, pa *PendingApproval) error
	FindByID(ctx context.Context, id uint) (*PendingApproval, error)
	// FindOpen returns all rows the sweep must examine:
	// completed = false AND redirected = false.
	FindOpen(ctx context.Context) ([]*PendingApproval, error)
	FindActionableByAssignee(ctx context.Context, assigneeID uint) ([]*PendingApproval, error)
	FindActionableByPermitID(ctx context.Context, permitID uint) (*PendingApproval, error)

	// ApplyRedirect persists the redirect transition carried by pa as a
	// single guarded update (open rows only). It returns ErrTransitionLost
	// when a concurrent update already closed or redirected the row.
	ApplyRedirect(ctx context.Context, pa *PendingApproval) error

	// MarkOverdue persists the overdue and admin-notified flags for an open
	// row that cannot be redirected, under the same guard as ApplyRedirect.
	// ErrTransitionLost means another worker already handled the row.
	MarkOverdue(ctx context.Context, pa *PendingApproval) error

	// Complete persists the completion transition under the same guard as
	// ApplyRedirect, but allows completing redirected rows.
	Complete(ctx context.Context, pa *PendingApproval) error
}

type ApprovalRecordRepository interface {
	Save(ctx context.Context, r *ApprovalRecord) error
	FindByPermitID(ctx context.Context, permitID uint) ([]*ApprovalRecord, error)
}
