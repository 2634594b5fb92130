package permit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "amlak/internal/domain/permit/valueobjects"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func testWorkflow(t *testing.T, opts ...func(*workflowParams)) *ApprovalWorkflow {
	t.Helper()

	params := &workflowParams{
		autoRedirect: true,
		notifyAdmin:  true,
		backupID:     uintPtr(2),
	}
	for _, opt := range opts {
		opt(params)
	}

	pt := vo.TypeMaintenance
	w, err := ReconstructApprovalWorkflow(
		7, "maintenance approvals", &pt,
		1, params.backupID,
		1,
		params.autoRedirect, params.notifyAdmin,
		true,
		time.Now(),
	)
	require.NoError(t, err)
	return w
}

type workflowParams struct {
	autoRedirect bool
	notifyAdmin  bool
	backupID     *uint
}

func withoutAutoRedirect() func(*workflowParams) {
	return func(p *workflowParams) { p.autoRedirect = false }
}

func withoutBackup() func(*workflowParams) {
	return func(p *workflowParams) { p.backupID = nil }
}

func withoutAdminNotify() func(*workflowParams) {
	return func(p *workflowParams) { p.notifyAdmin = false }
}

// expiredApproval builds a persisted-style pending approval whose deadline
// passed an hour ago.
func expiredApproval(t *testing.T, w *ApprovalWorkflow) *PendingApproval {
	t.Helper()
	return approvalWithDeadline(t, w, time.Now().Add(-time.Hour))
}

func approvalWithDeadline(t *testing.T, w *ApprovalWorkflow, deadline time.Time) *PendingApproval {
	t.Helper()
	pa, err := ReconstructPendingApproval(
		11, 3, w.ID(), w.ApproverID(),
		deadline,
		false, false, nil, nil,
		false,
		false, nil,
		time.Now().Add(-2*time.Hour),
	)
	require.NoError(t, err)
	return pa
}

func uintPtr(v uint) *uint {
	return &v
}

// ---------------------------------------------------------------------------
// Creation
// ---------------------------------------------------------------------------

func TestNewPendingApproval(t *testing.T) {
	w := testWorkflow(t)

	p, err := NewPermit("AC unit replacement", "", vo.TypeMaintenance, vo.DirectionReceive, 5, nil, time.Now())
	require.NoError(t, err)
	require.NoError(t, p.SetID(3))

	before := time.Now()
	pa, err := NewPendingApproval(p, w)
	require.NoError(t, err)

	assert.Equal(t, p.ID(), pa.PermitID())
	assert.Equal(t, w.ID(), pa.WorkflowID())
	assert.Equal(t, w.ApproverID(), pa.AssignedToID())
	assert.True(t, pa.IsOpen())
	assert.False(t, pa.IsOverdue())

	// deadline = now + deadline_hours (wall clock)
	wantDeadline := before.Add(time.Duration(w.DeadlineHours()) * time.Hour)
	assert.WithinDuration(t, wantDeadline, pa.Deadline(), 2*time.Second)
}

func TestNewPendingApproval_RejectsSettledPermit(t *testing.T) {
	w := testWorkflow(t)

	p, err := NewPermit("Banner install", "", vo.TypeMaintenance, vo.DirectionSend, 5, nil, time.Now())
	require.NoError(t, err)
	require.NoError(t, p.SetID(3))
	require.NoError(t, p.Approve())

	_, err = NewPendingApproval(p, w)
	assert.Error(t, err)
}

func TestNewPendingApproval_RejectsTypeMismatch(t *testing.T) {
	w := testWorkflow(t)

	p, err := NewPermit("Visitor pass", "", vo.TypeVisitor, vo.DirectionReceive, 5, nil, time.Now())
	require.NoError(t, err)
	require.NoError(t, p.SetID(3))

	_, err = NewPendingApproval(p, w)
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// CheckDeadline
// ---------------------------------------------------------------------------

func TestCheckDeadline_NotYetDue(t *testing.T) {
	w := testWorkflow(t)
	pa := approvalWithDeadline(t, w, time.Now().Add(time.Hour))

	check, err := pa.CheckDeadline(w)
	require.NoError(t, err)

	assert.False(t, check.Overdue)
	assert.False(t, check.Redirected)
	assert.False(t, pa.IsOverdue())
	assert.False(t, pa.IsRedirected())
	assert.Equal(t, w.ApproverID(), pa.AssignedToID())
}

func TestCheckDeadline_OverdueRedirects(t *testing.T) {
	w := testWorkflow(t)
	pa := expiredApproval(t, w)

	check, err := pa.CheckDeadline(w)
	require.NoError(t, err)

	assert.True(t, check.Overdue)
	assert.True(t, check.Redirected)
	assert.True(t, check.NotifyAdmin)
	assert.Equal(t, *w.BackupApproverID(), check.RedirectedToID)

	assert.True(t, pa.IsOverdue())
	assert.True(t, pa.IsRedirected())
	assert.True(t, pa.AdminNotified())
	assert.Equal(t, *w.BackupApproverID(), pa.AssignedToID())
	require.NotNil(t, pa.RedirectedToID())
	assert.Equal(t, *w.BackupApproverID(), *pa.RedirectedToID())
	assert.NotNil(t, pa.RedirectedAt())
	assert.False(t, pa.IsOpen())
	assert.True(t, pa.IsActionable(), "redirected approvals stay actionable for the backup")
}

func TestCheckDeadline_NoAutoRedirectMarksOverdueOnly(t *testing.T) {
	w := testWorkflow(t, withoutAutoRedirect())
	pa := expiredApproval(t, w)

	check, err := pa.CheckDeadline(w)
	require.NoError(t, err)

	assert.True(t, check.Overdue)
	assert.False(t, check.Redirected)
	assert.False(t, check.NotifyAdmin)

	assert.True(t, pa.IsOverdue())
	assert.False(t, pa.IsRedirected())
	assert.Equal(t, w.ApproverID(), pa.AssignedToID(), "ownership must not change without redirect")
}

func TestCheckDeadline_NoBackupBehavesLikeNoAutoRedirect(t *testing.T) {
	w := testWorkflow(t, withoutBackup())
	pa := expiredApproval(t, w)

	check, err := pa.CheckDeadline(w)
	require.NoError(t, err)

	assert.True(t, check.Overdue)
	assert.False(t, check.Redirected)
	assert.False(t, pa.IsRedirected())
	assert.Equal(t, w.ApproverID(), pa.AssignedToID())
}

func TestCheckDeadline_NoAdminNotifyWhenDisabled(t *testing.T) {
	w := testWorkflow(t, withoutAdminNotify())
	pa := expiredApproval(t, w)

	check, err := pa.CheckDeadline(w)
	require.NoError(t, err)

	assert.True(t, check.Redirected)
	assert.False(t, check.NotifyAdmin)
	assert.False(t, pa.AdminNotified())
}

func TestCheckDeadline_IdempotentAfterRedirect(t *testing.T) {
	w := testWorkflow(t)
	pa := expiredApproval(t, w)

	first, err := pa.CheckDeadline(w)
	require.NoError(t, err)
	require.True(t, first.Redirected)

	assignee := pa.AssignedToID()
	redirectedAt := pa.RedirectedAt()

	second, err := pa.CheckDeadline(w)
	require.NoError(t, err)

	assert.False(t, second.Overdue)
	assert.False(t, second.Redirected)
	assert.False(t, second.NotifyAdmin, "admin batch must fire at most once")
	assert.Equal(t, assignee, pa.AssignedToID())
	assert.Equal(t, redirectedAt, pa.RedirectedAt())
}

func TestCheckDeadline_NoopWhenCompleted(t *testing.T) {
	w := testWorkflow(t)
	pa := expiredApproval(t, w)
	require.NoError(t, pa.Complete())

	check, err := pa.CheckDeadline(w)
	require.NoError(t, err)

	assert.False(t, check.Overdue)
	assert.False(t, check.Redirected)
	assert.False(t, pa.IsOverdue())
	assert.False(t, pa.IsRedirected())
}

func TestCheckDeadline_WrongWorkflow(t *testing.T) {
	w := testWorkflow(t)
	pa := expiredApproval(t, w)

	pt := vo.TypeGoods
	other, err := ReconstructApprovalWorkflow(99, "goods approvals", &pt, 4, nil, 24, true, true, true, time.Now())
	require.NoError(t, err)

	_, err = pa.CheckDeadline(other)
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// Complete
// ---------------------------------------------------------------------------

func TestComplete(t *testing.T) {
	w := testWorkflow(t)
	pa := approvalWithDeadline(t, w, time.Now().Add(time.Hour))

	require.NoError(t, pa.Complete())
	assert.True(t, pa.IsCompleted())
	assert.NotNil(t, pa.CompletedAt())
	assert.False(t, pa.IsOpen())
	assert.False(t, pa.IsActionable())

	assert.Error(t, pa.Complete(), "double completion must fail")
}

func TestComplete_AllowedAfterRedirect(t *testing.T) {
	w := testWorkflow(t)
	pa := expiredApproval(t, w)

	_, err := pa.CheckDeadline(w)
	require.NoError(t, err)
	require.True(t, pa.IsRedirected())

	require.NoError(t, pa.Complete())
	assert.True(t, pa.IsCompleted())
}
