package valueobjects

import "fmt"

// ApprovalAction is the action recorded in a permit's approval audit trail.
type ApprovalAction string

const (
	ActionApproved   ApprovalAction = "approved"
	ActionRejected   ApprovalAction = "rejected"
	ActionRedirected ApprovalAction = "redirected"
)

var validApprovalActions = map[ApprovalAction]bool{
	ActionApproved:   true,
	ActionRejected:   true,
	ActionRedirected: true,
}

func (a ApprovalAction) String() string {
	return string(a)
}

func (a ApprovalAction) IsValid() bool {
	return validApprovalActions[a]
}

// IsDecision reports whether the action settles the permit. Redirects are
// audit entries only and leave the permit pending.
func (a ApprovalAction) IsDecision() bool {
	return a == ActionApproved || a == ActionRejected
}

func NewApprovalAction(s string) (ApprovalAction, error) {
	a := ApprovalAction(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid approval action: %s", s)
	}
	return a, nil
}
