package usecases

import (
	"context"

	"amlak/internal/domain/permit"
)

type CreatePermitExecutor interface {
	Execute(ctx context.Context, cmd CreatePermitCommand) (*CreatePermitResult, error)
}

type DecidePermitExecutor interface {
	Execute(ctx context.Context, cmd DecidePermitCommand) (*DecidePermitResult, error)
}

type GetPermitExecutor interface {
	Execute(ctx context.Context, cmd GetPermitCommand) (*GetPermitResult, error)
}

type ListPermitsExecutor interface {
	Execute(ctx context.Context, cmd ListPermitsCommand) (*ListPermitsResult, error)
}

type ListPendingApprovalsExecutor interface {
	Execute(ctx context.Context, cmd ListPendingApprovalsCommand) (*ListPendingApprovalsResult, error)
}

type CheckDeadlinesExecutor interface {
	Execute(ctx context.Context) (*CheckDeadlinesResult, error)
}

// TransactionManager runs a function inside a database transaction. The
// repositories pick the transaction up from the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers workflow notifications. Implementations must be
// best-effort: a delivery failure is logged by the caller and never rolls
// back the state transition that triggered it.
type Notifier interface {
	// PermitAssigned tells an approver a new permit is waiting on them.
	PermitAssigned(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval) error
	// ApprovalRedirected tells the backup approver an overdue permit was
	// moved to their queue.
	ApprovalRedirected(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval, previousAssigneeID uint) error
	// ApprovalOverdue warns an admin that a permit blew its deadline.
	ApprovalOverdue(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval, adminID uint) error
	// PermitDecided tells the tenant-side requester the outcome.
	PermitDecided(ctx context.Context, p *permit.Permit, recipientID uint) error
}
