package workflow

// Op is the kind of action an actor requests on an article.
type Op string

const (
	OpView         Op = "view"
	OpEditContent  Op = "edit-content"
	OpChangeStatus Op = "change-status"
	OpDelete       Op = "delete"
)

// Request carries everything the evaluator needs to decide an action.
// TargetStatus is only meaningful for OpChangeStatus.
type Request struct {
	Role          Role
	IsAuthor      bool
	Op            Op
	CurrentStatus Status
	TargetStatus  Status
}

// Decision is an allow/deny verdict with a human-readable reason on deny.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// Evaluate applies the permission rules in order; the first matching rule
// decides, and the default is deny. It is a pure function so every branch
// can be exercised without HTTP plumbing or a database.
func Evaluate(req Request) Decision {
	switch req.Op {
	case OpView:
		if req.IsAuthor || req.Role.Elevated() {
			return allow()
		}
		return deny("you do not have access to this article")

	case OpEditContent:
		if req.Role.Elevated() {
			return allow()
		}
		if req.Role == RoleContributor && !req.IsAuthor {
			return deny("contributors can only edit their own articles")
		}
		if req.IsAuthor {
			// Contributors may only rework content while the article is
			// theirs to rework; once it enters review the text is frozen
			// for them.
			if req.Role == RoleContributor &&
				req.CurrentStatus != StatusDraft && req.CurrentStatus != StatusNeedsRevisions {
				return deny("article is in review and cannot be edited")
			}
			return allow()
		}
		return deny("you cannot edit this article")

	case OpChangeStatus:
		if req.Role == RoleContributor {
			return deny("contributors cannot change article status")
		}
		if req.Role.Elevated() {
			return allow()
		}
		if req.IsAuthor {
			// A non-elevated author may only move their own article into
			// or back out of the review queue.
			if req.TargetStatus == StatusDraft || req.TargetStatus == StatusInReview {
				return allow()
			}
			return deny("only editors can set this status")
		}
		return deny("you cannot change the status of this article")

	case OpDelete:
		if req.Role == RoleAdmin {
			return allow()
		}
		if req.IsAuthor {
			if req.CurrentStatus == StatusDraft {
				return allow()
			}
			return deny("only draft articles can be deleted by their author")
		}
		return deny("you cannot delete this article")
	}

	return deny("unknown operation")
}
