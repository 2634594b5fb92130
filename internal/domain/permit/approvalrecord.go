package permit

import (
	"fmt"
	"time"

	vo "amlak/internal/domain/permit/valueobjects"
)

// ApprovalRecord is one immutable row of a permit's approval audit trail.
// A permit accumulates one record per decision event: intermediate
// redirects and the final approve/reject.
type ApprovalRecord struct {
	id             uint
	permitID       uint
	actorID        uint
	action         vo.ApprovalAction
	comments       string
	redirectedToID *uint
	createdAt      time.Time
}

func NewApprovalRecord(
	permitID uint,
	actorID uint,
	action vo.ApprovalAction,
	comments string,
	redirectedToID *uint,
) (*ApprovalRecord, error) {
	if permitID == 0 {
		return nil, fmt.Errorf("permit ID is required")
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid approval action")
	}
	if action == vo.ActionRedirected && redirectedToID == nil {
		return nil, fmt.Errorf("redirect record requires a redirect target")
	}

	return &ApprovalRecord{
		permitID:       permitID,
		actorID:        actorID,
		action:         action,
		comments:       comments,
		redirectedToID: redirectedToID,
		createdAt:      time.Now(),
	}, nil
}

func ReconstructApprovalRecord(
	id uint,
	permitID uint,
	actorID uint,
	action vo.ApprovalAction,
	comments string,
	redirectedToID *uint,
	createdAt time.Time,
) (*ApprovalRecord, error) {
	if id == 0 {
		return nil, fmt.Errorf("approval record ID cannot be zero")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid approval action")
	}

	return &ApprovalRecord{
		id:             id,
		permitID:       permitID,
		actorID:        actorID,
		action:         action,
		comments:       comments,
		redirectedToID: redirectedToID,
		createdAt:      createdAt,
	}, nil
}

func (r *ApprovalRecord) ID() uint {
	return r.id
}

func (r *ApprovalRecord) PermitID() uint {
	return r.permitID
}

func (r *ApprovalRecord) ActorID() uint {
	return r.actorID
}

func (r *ApprovalRecord) Action() vo.ApprovalAction {
	return r.action
}

func (r *ApprovalRecord) Comments() string {
	return r.comments
}

func (r *ApprovalRecord) RedirectedToID() *uint {
	return r.redirectedToID
}

func (r *ApprovalRecord) CreatedAt() time.Time {
	return r.createdAt
}

func (r *ApprovalRecord) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("approval record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("approval record ID cannot be zero")
	}
	r.id = id
	return nil
}
