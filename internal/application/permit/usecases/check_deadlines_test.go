package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amlak/internal/domain/permit"
	vo "amlak/internal/domain/permit/valueobjects"
	"amlak/internal/domain/user"
)

// ---------------------------------------------------------------------------
// Builders shared by the use case tests in this package
// ---------------------------------------------------------------------------

func uintPtr(v uint) *uint {
	return &v
}

func buildPermit(t *testing.T, id uint, status vo.PermitStatus) *permit.Permit {
	t.Helper()
	now := time.Now()
	p, err := permit.ReconstructPermit(
		id, permit.FormatNumber(int(id)),
		"Elevator maintenance access", "Contractor needs service access",
		vo.TypeMaintenance, vo.DirectionReceive, status,
		5, uintPtr(9),
		"Vertex Lifts", "Sami Haddad", "+96550001122",
		now, nil, nil,
		"", "",
		now.Add(-time.Hour), now.Add(-time.Hour),
	)
	require.NoError(t, err)
	return p
}

type workflowOpts struct {
	autoRedirect bool
	notifyAdmin  bool
	backupID     *uint
}

func buildWorkflow(t *testing.T, id uint, modify ...func(*workflowOpts)) *permit.ApprovalWorkflow {
	t.Helper()
	opts := &workflowOpts{autoRedirect: true, notifyAdmin: true, backupID: uintPtr(2)}
	for _, m := range modify {
		m(opts)
	}
	pt := vo.TypeMaintenance
	w, err := permit.ReconstructApprovalWorkflow(
		id, "maintenance approvals", &pt,
		1, opts.backupID,
		1,
		opts.autoRedirect, opts.notifyAdmin,
		true,
		time.Now().Add(-24*time.Hour),
	)
	require.NoError(t, err)
	return w
}

func buildApproval(t *testing.T, id, permitID, workflowID uint, deadline time.Time) *permit.PendingApproval {
	t.Helper()
	pa, err := permit.ReconstructPendingApproval(
		id, permitID, workflowID, 1,
		deadline,
		false, false, nil, nil,
		false,
		false, nil,
		time.Now().Add(-2*time.Hour),
	)
	require.NoError(t, err)
	return pa
}

func buildAdmins(t *testing.T, ids ...uint) []*user.User {
	t.Helper()
	admins := make([]*user.User, 0, len(ids))
	for _, id := range ids {
		u, err := user.ReconstructUser(id, "Admin", "admin@example.com", user.RoleAdmin, true, time.Now())
		require.NoError(t, err)
		admins = append(admins, u)
	}
	return admins
}

func newSweepUseCase(
	approvalRepo *mockPendingApprovalRepository,
	workflowRepo *mockWorkflowRepository,
	permitRepo *mockPermitRepository,
	userRepo *mockUserRepository,
	notifier *mockNotifier,
	publisher *mockEventPublisher,
) *CheckDeadlinesUseCase {
	return NewCheckDeadlinesUseCase(
		approvalRepo, workflowRepo, permitRepo, userRepo, notifier, publisher, &mockLogger{},
	)
}

// ---------------------------------------------------------------------------
// Sweep
// ---------------------------------------------------------------------------

func TestCheckDeadlinesUseCase_RedirectsExpiredApproval(t *testing.T) {
	w := buildWorkflow(t, 7)
	pa := buildApproval(t, 11, 3, 7, time.Now().Add(-time.Hour))
	p := buildPermit(t, 3, vo.StatusPending)

	var redirectPersisted bool
	approvalRepo := &mockPendingApprovalRepository{
		FindOpenFunc: func(ctx context.Context) ([]*permit.PendingApproval, error) {
			return []*permit.PendingApproval{pa}, nil
		},
		ApplyRedirectFunc: func(ctx context.Context, got *permit.PendingApproval) error {
			redirectPersisted = true
			assert.True(t, got.IsRedirected())
			assert.Equal(t, uint(2), got.AssignedToID())
			assert.True(t, got.AdminNotified())
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
	userRepo := &mockUserRepository{
		ListAdminsFunc: func(ctx context.Context) ([]*user.User, error) {
			return buildAdmins(t, 100, 101), nil
		},
	}

	backupNotified := 0
	adminNotified := []uint{}
	notifier := &mockNotifier{
		ApprovalRedirectedFunc: func(ctx context.Context, _ *permit.Permit, got *permit.PendingApproval, previousAssigneeID uint) error {
			backupNotified++
			assert.Equal(t, uint(1), previousAssigneeID)
			assert.Equal(t, uint(2), got.AssignedToID())
			return nil
		},
		ApprovalOverdueFunc: func(ctx context.Context, _ *permit.Permit, _ *permit.PendingApproval, adminID uint) error {
			adminNotified = append(adminNotified, adminID)
			return nil
		},
	}
	publisher := &mockEventPublisher{}

	uc := newSweepUseCase(approvalRepo, workflowRepo, permitRepo, userRepo, notifier, publisher)
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Examined)
	assert.Equal(t, 1, result.Redirected)
	assert.True(t, redirectPersisted)
	assert.Equal(t, 1, backupNotified)
	assert.Equal(t, []uint{100, 101}, adminNotified)
	require.Len(t, publisher.Published, 1)
	assert.Equal(t, permit.EventApprovalRedirected, publisher.Published[0].GetEventType())
}

func TestCheckDeadlinesUseCase_NotYetDueIsOnlyExamined(t *testing.T) {
	w := buildWorkflow(t, 7)
	pa := buildApproval(t, 11, 3, 7, time.Now().Add(time.Hour))

	approvalRepo := &mockPendingApprovalRepository{
		FindOpenFunc: func(ctx context.Context) ([]*permit.PendingApproval, error) {
			return []*permit.PendingApproval{pa}, nil
		},
		ApplyRedirectFunc: func(ctx context.Context, _ *permit.PendingApproval) error {
			t.Fatal("must not persist a transition for a row that is not due")
			return nil
		},
		MarkOverdueFunc: func(ctx context.Context, _ *permit.PendingApproval) error {
			t.Fatal("must not mark a row overdue before its deadline")
			return nil
		},
	}
	workflowRepo := &mockWorkflowRepository{
		FindByIDFunc: func(ctx context.Context, workflowID uint) (*permit.ApprovalWorkflow, error) {
			return w, nil
		},
	}

	uc := newSweepUseCase(approvalRepo, workflowRepo, &mockPermitRepository{}, &mockUserRepository{}, &mockNotifier{}, &mockEventPublisher{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Examined)
	assert.Equal(t, 0, result.Redirected)
	assert.False(t, pa.IsRedirected())
}

func TestCheckDeadlinesUseCase_MarksOverdueWithoutRedirectPolicy(t *testing.T) {
	w := buildWorkflow(t, 7, func(o *workflowOpts) { o.autoRedirect = false })
	pa := buildApproval(t, 11, 3, 7, time.Now().Add(-time.Hour))

	var overduePersisted bool
	approvalRepo := &mockPendingApprovalRepository{
		FindOpenFunc: func(ctx context.Context) ([]*permit.PendingApproval, error) {
			return []*permit.PendingApproval{pa}, nil
		},
		MarkOverdueFunc: func(ctx context.Context, got *permit.PendingApproval) error {
			overduePersisted = true
			assert.True(t, got.IsOverdue())
			assert.False(t, got.IsRedirected())
			return nil
		},
	}
	workflowRepo := &mockWorkflowRepository{
		FindByIDFunc: func(ctx context.Context, workflowID uint) (*permit.ApprovalWorkflow, error) {
			return w, nil
		},
	}
	notifier := &mockNotifier{
		ApprovalRedirectedFunc: func(ctx context.Context, _ *permit.Permit, _ *permit.PendingApproval, _ uint) error {
			t.Fatal("no redirect notification without a redirect")
			return nil
		},
	}

	uc := newSweepUseCase(approvalRepo, workflowRepo, &mockPermitRepository{}, &mockUserRepository{}, notifier, &mockEventPublisher{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Examined)
	assert.Equal(t, 0, result.Redirected)
	assert.True(t, overduePersisted)
	// Assignment stays with the primary approver.
	assert.Equal(t, uint(1), pa.AssignedToID())
}

func TestCheckDeadlinesUseCase_LostRedirectRaceSendsNothing(t *testing.T) {
	w := buildWorkflow(t, 7)
	pa := buildApproval(t, 11, 3, 7, time.Now().Add(-time.Hour))

	approvalRepo := &mockPendingApprovalRepository{
		FindOpenFunc: func(ctx context.Context) ([]*permit.PendingApproval, error) {
			return []*permit.PendingApproval{pa}, nil
		},
		ApplyRedirectFunc: func(ctx context.Context, _ *permit.PendingApproval) error {
			return permit.ErrTransitionLost
		},
	}
	workflowRepo := &mockWorkflowRepository{
		FindByIDFunc: func(ctx context.Context, workflowID uint) (*permit.ApprovalWorkflow, error) {
			return w, nil
		},
	}
	notifier := &mockNotifier{
		ApprovalRedirectedFunc: func(ctx context.Context, _ *permit.Permit, _ *permit.PendingApproval, _ uint) error {
			t.Fatal("loser of the guarded update must not notify")
			return nil
		},
		ApprovalOverdueFunc: func(ctx context.Context, _ *permit.Permit, _ *permit.PendingApproval, _ uint) error {
			t.Fatal("loser of the guarded update must not notify admins")
			return nil
		},
	}
	publisher := &mockEventPublisher{}

	uc := newSweepUseCase(approvalRepo, workflowRepo, &mockPermitRepository{}, &mockUserRepository{}, notifier, publisher)
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Examined)
	assert.Equal(t, 0, result.Redirected)
	assert.Empty(t, publisher.Published)
}

func TestCheckDeadlinesUseCase_NotificationFailureKeepsOwnershipChange(t *testing.T) {
	w := buildWorkflow(t, 7)
	pa := buildApproval(t, 11, 3, 7, time.Now().Add(-time.Hour))
	p := buildPermit(t, 3, vo.StatusPending)

	var redirectPersisted bool
	approvalRepo := &mockPendingApprovalRepository{
		FindOpenFunc: func(ctx context.Context) ([]*permit.PendingApproval, error) {
			return []*permit.PendingApproval{pa}, nil
		},
		ApplyRedirectFunc: func(ctx context.Context, _ *permit.PendingApproval) error {
			redirectPersisted = true
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
	userRepo := &mockUserRepository{
		ListAdminsFunc: func(ctx context.Context) ([]*user.User, error) {
			return buildAdmins(t, 100, 101), nil
		},
	}

	adminNotified := []uint{}
	notifier := &mockNotifier{
		ApprovalRedirectedFunc: func(ctx context.Context, _ *permit.Permit, _ *permit.PendingApproval, _ uint) error {
			return errors.New("smtp connection refused")
		},
		ApprovalOverdueFunc: func(ctx context.Context, _ *permit.Permit, _ *permit.PendingApproval, adminID uint) error {
			if adminID == 100 {
				return errors.New("smtp connection refused")
			}
			adminNotified = append(adminNotified, adminID)
			return nil
		},
	}

	uc := newSweepUseCase(approvalRepo, workflowRepo, permitRepo, userRepo, notifier, &mockEventPublisher{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Redirected)
	assert.True(t, redirectPersisted)
	assert.Equal(t, uint(2), pa.AssignedToID())
	// One failing admin delivery must not block the next admin.
	assert.Equal(t, []uint{101}, adminNotified)
}

func TestCheckDeadlinesUseCase_RowFailureDoesNotStallSweep(t *testing.T) {
	w := buildWorkflow(t, 7)
	broken := buildApproval(t, 11, 3, 99, time.Now().Add(-time.Hour))
	healthy := buildApproval(t, 12, 4, 7, time.Now().Add(-time.Hour))
	p := buildPermit(t, 4, vo.StatusPending)

	approvalRepo := &mockPendingApprovalRepository{
		FindOpenFunc: func(ctx context.Context) ([]*permit.PendingApproval, error) {
			return []*permit.PendingApproval{broken, healthy}, nil
		},
	}
	workflowRepo := &mockWorkflowRepository{
		FindByIDFunc: func(ctx context.Context, workflowID uint) (*permit.ApprovalWorkflow, error) {
			if workflowID == 99 {
				return nil, errors.New("connection reset")
			}
			return w, nil
		},
	}
	permitRepo := &mockPermitRepository{
		FindByIDFunc: func(ctx context.Context, permitID uint) (*permit.Permit, error) {
			return p, nil
		},
	}

	uc := newSweepUseCase(approvalRepo, workflowRepo, permitRepo, &mockUserRepository{}, &mockNotifier{}, &mockEventPublisher{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Examined)
	assert.Equal(t, 1, result.Redirected)
}

func TestCheckDeadlinesUseCase_EmptySweep(t *testing.T) {
	approvalRepo := &mockPendingApprovalRepository{}

	uc := newSweepUseCase(approvalRepo, &mockWorkflowRepository{}, &mockPermitRepository{}, &mockUserRepository{}, &mockNotifier{}, &mockEventPublisher{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.Examined)
	assert.Equal(t, 0, result.Redirected)
}
