package notify

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amlak/internal/domain/notification"
	"amlak/internal/domain/permit"
	vo "amlak/internal/domain/permit/valueobjects"
	"amlak/internal/domain/user"
	"amlak/internal/shared/logger"
)

type mockNotificationRepo struct {
	saved []*notification.Notification
	err   error
}

func (m *mockNotificationRepo) Save(_ context.Context, n *notification.Notification) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, n)
	return nil
}

func (m *mockNotificationRepo) FindByID(_ context.Context, _ uint) (*notification.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepo) FindByUserID(_ context.Context, _ uint, _ bool, _, _ int) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, _, _ uint) error { return nil }

func (m *mockNotificationRepo) MarkAllRead(_ context.Context, _ uint) error { return nil }

func (m *mockNotificationRepo) CountUnread(_ context.Context, _ uint) (int64, error) { return 0, nil }

type mockUserRepo struct {
	users map[uint]*user.User
}

func (m *mockUserRepo) Save(_ context.Context, _ *user.User) error { return nil }

func (m *mockUserRepo) FindByID(_ context.Context, id uint) (*user.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepo) ListAdmins(_ context.Context) ([]*user.User, error) { return nil, nil }

type mockEmailSender struct {
	assigned   []string
	redirected []string
	overdue    []string
	decided    []string
	err        error
}

func (m *mockEmailSender) SendPermitAssignedEmail(to, _, _ string, _ time.Time) error {
	m.assigned = append(m.assigned, to)
	return m.err
}

func (m *mockEmailSender) SendApprovalRedirectedEmail(to, _, _ string) error {
	m.redirected = append(m.redirected, to)
	return m.err
}

func (m *mockEmailSender) SendApprovalOverdueEmail(to, _, _ string, _ time.Time) error {
	m.overdue = append(m.overdue, to)
	return m.err
}

func (m *mockEmailSender) SendPermitDecidedEmail(to, _, _, _, _ string) error {
	m.decided = append(m.decided, to)
	return m.err
}

func buildTestPermit(t *testing.T) *permit.Permit {
	t.Helper()
	createdBy := uint(9)
	now := time.Now()
	p, err := permit.ReconstructPermit(
		3, "PRM-003", "Elevator maintenance", "",
		vo.TypeMaintenance, vo.DirectionReceive, vo.StatusPending,
		5, &createdBy, "", "", "", now, nil, nil, "", "", now, now,
	)
	require.NoError(t, err)
	return p
}

func buildTestApproval(t *testing.T, p *permit.Permit) *permit.PendingApproval {
	t.Helper()
	maintenance := vo.TypeMaintenance
	w, err := permit.NewApprovalWorkflow("Maintenance approvals", &maintenance, 1, nil, 24)
	require.NoError(t, err)
	require.NoError(t, w.SetID(7))
	pa, err := permit.NewPendingApproval(p, w)
	require.NoError(t, err)
	require.NoError(t, pa.SetID(11))
	return pa
}

func buildApprover(t *testing.T, id uint, email string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "Approver", email, user.RoleApprover, true, time.Now())
	require.NoError(t, err)
	return u
}

func TestWorkflowNotifier_PermitAssigned_StoresRowAndSendsEmail(t *testing.T) {
	p := buildTestPermit(t)
	pa := buildTestApproval(t, p)

	notifRepo := &mockNotificationRepo{}
	userRepo := &mockUserRepo{users: map[uint]*user.User{
		1: buildApprover(t, 1, "approver@example.com"),
	}}
	sender := &mockEmailSender{}

	n := NewWorkflowNotifier(notifRepo, userRepo, sender, logger.NewLogger())

	err := n.PermitAssigned(context.Background(), p, pa)
	require.NoError(t, err)

	require.Len(t, notifRepo.saved, 1)
	saved := notifRepo.saved[0]
	assert.Equal(t, uint(1), saved.UserID())
	assert.Contains(t, saved.Title(), "PRM-003")
	assert.Equal(t, "/permits/3", saved.Link())
	assert.Equal(t, uint(3), saved.Metadata()["permit_id"])
	assert.Equal(t, uint(11), saved.Metadata()["pending_approval_id"])

	assert.Equal(t, []string{"approver@example.com"}, sender.assigned)
}

func TestWorkflowNotifier_NilSenderSkipsEmail(t *testing.T) {
	p := buildTestPermit(t)
	pa := buildTestApproval(t, p)

	notifRepo := &mockNotificationRepo{}
	userRepo := &mockUserRepo{users: map[uint]*user.User{}}

	n := NewWorkflowNotifier(notifRepo, userRepo, nil, logger.NewLogger())

	err := n.PermitAssigned(context.Background(), p, pa)
	require.NoError(t, err)
	require.Len(t, notifRepo.saved, 1)
}

func TestWorkflowNotifier_EmailFailureIsSwallowed(t *testing.T) {
	p := buildTestPermit(t)
	pa := buildTestApproval(t, p)

	notifRepo := &mockNotificationRepo{}
	userRepo := &mockUserRepo{users: map[uint]*user.User{
		1: buildApprover(t, 1, "approver@example.com"),
	}}
	sender := &mockEmailSender{err: fmt.Errorf("smtp connect refused")}

	n := NewWorkflowNotifier(notifRepo, userRepo, sender, logger.NewLogger())

	err := n.ApprovalRedirected(context.Background(), p, pa, 1)
	require.NoError(t, err)
	require.Len(t, notifRepo.saved, 1)
}

func TestWorkflowNotifier_SaveFailurePropagates(t *testing.T) {
	p := buildTestPermit(t)
	pa := buildTestApproval(t, p)

	notifRepo := &mockNotificationRepo{err: fmt.Errorf("insert failed")}
	userRepo := &mockUserRepo{users: map[uint]*user.User{}}

	n := NewWorkflowNotifier(notifRepo, userRepo, nil, logger.NewLogger())

	err := n.ApprovalOverdue(context.Background(), p, pa, 100)
	require.Error(t, err)
}

func TestWorkflowNotifier_PermitDecided_RejectionCarriesReason(t *testing.T) {
	createdBy := uint(9)
	now := time.Now()
	p, err := permit.ReconstructPermit(
		4, "PRM-004", "Marketing booth", "",
		vo.TypeMarketing, vo.DirectionSend, vo.StatusRejected,
		5, &createdBy, "", "", "", now, nil, nil, "", "booth blocks the fire exit", now, now,
	)
	require.NoError(t, err)

	notifRepo := &mockNotificationRepo{}
	userRepo := &mockUserRepo{users: map[uint]*user.User{}}

	n := NewWorkflowNotifier(notifRepo, userRepo, nil, logger.NewLogger())

	require.NoError(t, n.PermitDecided(context.Background(), p, 9))

	require.Len(t, notifRepo.saved, 1)
	saved := notifRepo.saved[0]
	assert.Equal(t, "error", saved.Type().String())
	assert.Contains(t, saved.Message(), "booth blocks the fire exit")
}