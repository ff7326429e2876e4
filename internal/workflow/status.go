package workflow

import "fmt"

// Status is the editorial state of an article.
type Status string

const (
	StatusDraft          Status = "DRAFT"
	StatusInReview       Status = "IN_REVIEW"
	StatusNeedsRevisions Status = "NEEDS_REVISIONS"
	StatusApproved       Status = "APPROVED"
	StatusPublished      Status = "PUBLISHED"
	StatusScheduled      Status = "SCHEDULED"
)

// Role is the permission tier of an actor.
type Role string

const (
	RoleContributor Role = "CONTRIBUTOR"
	RoleEditor      Role = "EDITOR"
	RoleAdmin       Role = "ADMIN"
)

// ParseStatus validates a client-supplied status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusInReview, StatusNeedsRevisions, StatusApproved, StatusPublished, StatusScheduled:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// ParseRole validates a role value.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleContributor, RoleEditor, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Elevated reports whether the role carries editorial override rights.
func (r Role) Elevated() bool {
	return r == RoleEditor || r == RoleAdmin
}

// transitions is the intended editorial graph. The SCHEDULED -> PUBLISHED
// edge is flipped by an external time-based trigger, not by this service;
// it is listed here so the trigger's write passes validation too.
var transitions = map[Status][]Status{
	StatusDraft:          {StatusInReview},
	StatusInReview:       {StatusApproved, StatusNeedsRevisions, StatusPublished},
	StatusNeedsRevisions: {StatusInReview},
	StatusApproved:       {StatusPublished, StatusScheduled},
	StatusScheduled:      {StatusPublished},
	StatusPublished:      {},
}

// ValidateTransition rejects status changes outside the editorial graph.
// Elevated roles bypass the graph entirely: unpublishing, rescheduling and
// pulling an article back to any state is their escape hatch.
func ValidateTransition(from, to Status, elevated bool) error {
	if from == to {
		return nil
	}
	if elevated {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("transition %s -> %s is not allowed", from, to)
}
