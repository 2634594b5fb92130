package permit

import (
	"strconv"
	"time"

	"amlak/internal/domain/shared/events"
)

const (
	EventPermitCreated      = "permit.created"
	EventPermitDecided      = "permit.decided"
	EventApprovalRedirected = "permit.approval_redirected"
)

type PermitCreatedEvent struct {
	events.BaseEvent
	PermitID   uint
	Number     string
	PermitType string
	TenantID   uint
	Tracked    bool
}

func NewPermitCreatedEvent(permitID uint, number, permitType string, tenantID uint, tracked bool) PermitCreatedEvent {
	return PermitCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(permitID), 10),
			EventType:   EventPermitCreated,
			OccurredAt:  time.Now(),
		},
		PermitID:   permitID,
		Number:     number,
		PermitType: permitType,
		TenantID:   tenantID,
		Tracked:    tracked,
	}
}

type PermitDecidedEvent struct {
	events.BaseEvent
	PermitID uint
	Number   string
	Action   string
	ActorID  uint
}

func NewPermitDecidedEvent(permitID uint, number, action string, actorID uint) PermitDecidedEvent {
	return PermitDecidedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(permitID), 10),
			EventType:   EventPermitDecided,
			OccurredAt:  time.Now(),
		},
		PermitID: permitID,
		Number:   number,
		Action:   action,
		ActorID:  actorID,
	}
}

type ApprovalRedirectedEvent struct {
	events.BaseEvent
	PermitID          uint
	PendingApprovalID uint
	FromApproverID    uint
	ToApproverID      uint
}

func NewApprovalRedirectedEvent(permitID, pendingApprovalID, fromApproverID, toApproverID uint) ApprovalRedirectedEvent {
	return ApprovalRedirectedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(permitID), 10),
			EventType:   EventApprovalRedirected,
			OccurredAt:  time.Now(),
		},
		PermitID:          permitID,
		PendingApprovalID: pendingApprovalID,
		FromApproverID:    fromApproverID,
		ToApproverID:      toApproverID,
	}
}
