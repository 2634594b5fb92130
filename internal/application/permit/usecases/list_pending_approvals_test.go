package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amlak/internal/domain/permit"
	vo "amlak/internal/domain/permit/valueobjects"
)

func newListPendingUseCase(
	approvalRepo *mockPendingApprovalRepository,
	workflowRepo *mockWorkflowRepository,
	permitRepo *mockPermitRepository,
	userRepo *mockUserRepository,
	notifier *mockNotifier,
) *ListPendingApprovalsUseCase {
	sweep := NewCheckDeadlinesUseCase(
		approvalRepo, workflowRepo, permitRepo, userRepo, notifier, &mockEventPublisher{}, &mockLogger{},
	)
	return NewListPendingApprovalsUseCase(
		approvalRepo, workflowRepo, permitRepo, sweep, &mockLogger{},
	)
}

func TestListPendingApprovalsUseCase_ReturnsQueue(t *testing.T) {
	w := buildWorkflow(t, 7)
	pa := buildApproval(t, 11, 3, 7, time.Now().Add(time.Hour))
	p := buildPermit(t, 3, vo.StatusPending)

	approvalRepo := &mockPendingApprovalRepository{
		FindActionableByAssigneeFunc: func(ctx context.Context, assigneeID uint) ([]*permit.PendingApproval, error) {
			assert.Equal(t, uint(1), assigneeID)
			return []*permit.PendingApproval{pa}, nil
		},
	}
	workflowRepo := &mockWorkflowRepository{
		FindByIDFunc: func(ctx context.Context, workflowID uint) (*permit.ApprovalWorkflow, error) {
			return w, nil
		},
	}
	permitRepo := &mockPermitRepository{
		FindByIDFunc: func(ctx context.Context, permitID uint) (*permit.Permit, error) {
			return p, nil
		},
	}

	uc := newListPendingUseCase(approvalRepo, workflowRepo, permitRepo, &mockUserRepository{}, &mockNotifier{})
	result, err := uc.Execute(context.Background(), ListPendingApprovalsCommand{AssigneeID: 1})

	require.NoError(t, err)
	require.Len(t, result.Approvals, 1)
	got := result.Approvals[0]
	assert.Equal(t, uint(11), got.ID)
	assert.False(t, got.Overdue)
	require.NotNil(t, got.Permit)
	assert.Equal(t, "PRM-003", got.Permit.Number)
}

func TestListPendingApprovalsUseCase_ExpiredRowLeavesQueueOnRead(t *testing.T) {
	w := buildWorkflow(t, 7)
	expired := buildApproval(t, 11, 3, 7, time.Now().Add(-time.Hour))
	current := buildApproval(t, 12, 4, 7, time.Now().Add(time.Hour))
	p := buildPermit(t, 4, vo.StatusPending)

	var redirectPersisted bool
	approvalRepo := &mockPendingApprovalRepository{
		FindActionableByAssigneeFunc: func(ctx context.Context, assigneeID uint) ([]*permit.PendingApproval, error) {
			return []*permit.PendingApproval{expired, current}, nil
		},
		ApplyRedirectFunc: func(ctx context.Context, pa *permit.PendingApproval) error {
			redirectPersisted = true
			assert.Equal(t, uint(11), pa.ID())
			return nil
		},
	}
	workflowRepo := &mockWorkflowRepository{
		FindByIDFunc: func(ctx context.Context, workflowID uint) (*permit.ApprovalWorkflow, error) {
			return w, nil
		},
	}
	permitRepo := &mockPermitRepository{
		FindByIDFunc: func(ctx context.Context, permitID uint) (*permit.Permit, error) {
			return p, nil
		},
	}

	uc := newListPendingUseCase(approvalRepo, workflowRepo, permitRepo, &mockUserRepository{}, &mockNotifier{})
	result, err := uc.Execute(context.Background(), ListPendingApprovalsCommand{AssigneeID: 1})

	require.NoError(t, err)
	assert.True(t, redirectPersisted)
	// The expired row now belongs to the backup approver's queue.
	require.Len(t, result.Approvals, 1)
	assert.Equal(t, uint(12), result.Approvals[0].ID)
}

func TestListPendingApprovalsUseCase_BackupSeesRedirectedRow(t *testing.T) {
	now := time.Now()
	redirectedAt := now.Add(-30 * time.Minute)
	pa, err := permit.ReconstructPendingApproval(
		11, 3, 7, 2,
		now.Add(-time.Hour),
		true, true, &redirectedAt, uintPtr(2),
		true,
		false, nil,
		now.Add(-2*time.Hour),
	)
	require.NoError(t, err)
	p := buildPermit(t, 3, vo.StatusPending)

	approvalRepo := &mockPendingApprovalRepository{
		FindActionableByAssigneeFunc: func(ctx context.Context, assigneeID uint) ([]*permit.PendingApproval, error) {
			return []*permit.PendingApproval{pa}, nil
		},
		ApplyRedirectFunc: func(ctx context.Context, _ *permit.PendingApproval) error {
			t.Fatal("redirected rows are final, no second hop")
			return nil
		},
	}
	permitRepo := &mockPermitRepository{
		FindByIDFunc: func(ctx context.Context, permitID uint) (*permit.Permit, error) {
			return p, nil
		},
	}

	uc := newListPendingUseCase(approvalRepo, &mockWorkflowRepository{}, permitRepo, &mockUserRepository{}, &mockNotifier{})
	result, err := uc.Execute(context.Background(), ListPendingApprovalsCommand{AssigneeID: 2})

	require.NoError(t, err)
	require.Len(t, result.Approvals, 1)
	assert.True(t, result.Approvals[0].Redirected)
	assert.Equal(t, uint(2), result.Approvals[0].AssignedToID)
}

func TestListPendingApprovalsUseCase_RequiresAssignee(t *testing.T) {
	uc := newListPendingUseCase(&mockPendingApprovalRepository{}, &mockWorkflowRepository{}, &mockPermitRepository{}, &mockUserRepository{}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), ListPendingApprovalsCommand{})
	require.Error(t, err)
}
