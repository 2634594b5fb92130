package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPermitStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected", "cancelled"} {
		got, err := NewPermitStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}

	_, err := NewPermitStatus("archived")
	assert.Error(t, err)
}

func TestPermitStatus_Transitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusApproved))
	assert.True(t, StatusPending.CanTransitionTo(StatusRejected))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))

	for _, terminal := range []PermitStatus{StatusApproved, StatusRejected, StatusCancelled} {
		assert.False(t, terminal.CanTransitionTo(StatusPending), "%s must not reopen", terminal)
		assert.False(t, terminal.CanTransitionTo(StatusApproved))
		assert.True(t, terminal.IsTerminal())
	}

	assert.False(t, StatusPending.IsTerminal())
}

func TestNewPermitType(t *testing.T) {
	for _, s := range []string{"goods", "maintenance", "marketing", "visitor", "vehicle", "other"} {
		got, err := NewPermitType(s)
		require.NoError(t, err)
		assert.True(t, got.IsValid())
	}

	_, err := NewPermitType("renovation")
	assert.Error(t, err)
}

func TestNewDirection(t *testing.T) {
	send, err := NewDirection("send")
	require.NoError(t, err)
	assert.Equal(t, DirectionSend, send)

	_, err = NewDirection("outbound")
	assert.Error(t, err)
}

func TestApprovalAction(t *testing.T) {
	approved, err := NewApprovalAction("approved")
	require.NoError(t, err)
	assert.True(t, approved.IsDecision())

	redirected, err := NewApprovalAction("redirected")
	require.NoError(t, err)
	assert.False(t, redirected.IsDecision())

	_, err = NewApprovalAction("escalated")
	assert.Error(t, err)
}
