package valueobjects

import "fmt"

type PermitStatus string

const (
	StatusPending   PermitStatus = "pending"
	StatusApproved  PermitStatus = "approved"
	StatusRejected  PermitStatus = "rejected"
	StatusCancelled PermitStatus = "cancelled"
)

var validPermitStatuses = map[PermitStatus]bool{
	StatusPending:   true,
	StatusApproved:  true,
	StatusRejected:  true,
	StatusCancelled: true,
}

// Only pending permits can change state. Approved, rejected and cancelled
// are terminal; reopening is not supported.
var permitStatusTransitions = map[PermitStatus][]PermitStatus{
	StatusPending: {
		StatusApproved,
		StatusRejected,
		StatusCancelled,
	},
}

func (s PermitStatus) String() string {
	return string(s)
}

func (s PermitStatus) IsValid() bool {
	return validPermitStatuses[s]
}

func (s PermitStatus) CanTransitionTo(newStatus PermitStatus) bool {
	allowed, ok := permitStatusTransitions[s]
	if !ok {
		return false
	}

	for _, candidate := range allowed {
		if candidate == newStatus {
			return true
		}
	}
	return false
}

func (s PermitStatus) IsPending() bool {
	return s == StatusPending
}

func (s PermitStatus) IsApproved() bool {
	return s == StatusApproved
}

func (s PermitStatus) IsRejected() bool {
	return s == StatusRejected
}

func (s PermitStatus) IsCancelled() bool {
	return s == StatusCancelled
}

// IsTerminal reports whether no further transition is possible.
func (s PermitStatus) IsTerminal() bool {
	return !s.IsPending()
}

func NewPermitStatus(s string) (PermitStatus, error) {
	ps := PermitStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid permit status: %s", s)
	}
	return ps, nil
}
