package workflow

import "testing"

func TestContributorCannotChangeStatus(t *testing.T) {
	// Contributors are locked out of status changes entirely, even on
	// their own articles and for every target.
	targets := []Status{StatusDraft, StatusInReview, StatusNeedsRevisions, StatusApproved, StatusPublished, StatusScheduled}
	for _, target := range targets {
		for _, isAuthor := range []bool{true, false} {
			d := Evaluate(Request{
				Role:          RoleContributor,
				IsAuthor:      isAuthor,
				Op:            OpChangeStatus,
				CurrentStatus: StatusDraft,
				TargetStatus:  target,
			})
			if d.Allowed {
				t.Errorf("contributor (author=%v) allowed to set status %s", isAuthor, target)
			}
			if d.Reason == "" {
				t.Error("denial must carry a reason")
			}
		}
	}
}

func TestAuthorCannotPublish(t *testing.T) {
	d := Evaluate(Request{
		Role:          Role("AUTHOR"),
		IsAuthor:      true,
		Op:            OpChangeStatus,
		CurrentStatus: StatusApproved,
		TargetStatus:  StatusPublished,
	})
	if d.Allowed {
		t.Fatal("non-elevated author must not publish")
	}

	for _, role := range []Role{RoleEditor, RoleAdmin} {
		d := Evaluate(Request{
			Role:          role,
			IsAuthor:      false,
			Op:            OpChangeStatus,
			CurrentStatus: StatusApproved,
			TargetStatus:  StatusPublished,
		})
		if !d.Allowed {
			t.Errorf("%s must be allowed to publish: %s", role, d.Reason)
		}
	}
}

func TestPlainAuthorStatusTargets(t *testing.T) {
	// A non-elevated, non-contributor author may only move their article
	// into or out of the review queue.
	cases := []struct {
		target Status
		want   bool
	}{
		{StatusDraft, true},
		{StatusInReview, true},
		{StatusApproved, false},
		{StatusPublished, false},
		{StatusScheduled, false},
	}
	for _, tc := range cases {
		d := Evaluate(Request{
			Role:         Role("AUTHOR"),
			IsAuthor:     true,
			Op:           OpChangeStatus,
			TargetStatus: tc.target,
		})
		if d.Allowed != tc.want {
			t.Errorf("plain author -> %s: got allowed=%v, want %v", tc.target, d.Allowed, tc.want)
		}
	}
}

func TestViewPermission(t *testing.T) {
	cases := []struct {
		role     Role
		isAuthor bool
		want     bool
	}{
		{RoleContributor, true, true},
		{RoleContributor, false, false},
		{RoleEditor, false, true},
		{RoleAdmin, false, true},
	}
	for _, tc := range cases {
		d := Evaluate(Request{Role: tc.role, IsAuthor: tc.isAuthor, Op: OpView})
		if d.Allowed != tc.want {
			t.Errorf("view role=%s author=%v: got %v, want %v", tc.role, tc.isAuthor, d.Allowed, tc.want)
		}
	}
}

func TestEditContentPermission(t *testing.T) {
	cases := []struct {
		name    string
		role    Role
		author  bool
		current Status
		want    bool
	}{
		{"editor edits anything", RoleEditor, false, StatusPublished, true},
		{"admin edits anything", RoleAdmin, false, StatusInReview, true},
		{"contributor edits own draft", RoleContributor, true, StatusDraft, true},
		{"contributor edits own needs-revisions", RoleContributor, true, StatusNeedsRevisions, true},
		{"contributor blocked once in review", RoleContributor, true, StatusInReview, false},
		{"contributor blocked on published", RoleContributor, true, StatusPublished, false},
		{"contributor blocked on others", RoleContributor, false, StatusDraft, false},
	}
	for _, tc := range cases {
		d := Evaluate(Request{Role: tc.role, IsAuthor: tc.author, Op: OpEditContent, CurrentStatus: tc.current})
		if d.Allowed != tc.want {
			t.Errorf("%s: got allowed=%v, want %v (%s)", tc.name, d.Allowed, tc.want, d.Reason)
		}
	}
}

func TestDeletePermission(t *testing.T) {
	statuses := []Status{StatusDraft, StatusInReview, StatusNeedsRevisions, StatusApproved, StatusPublished, StatusScheduled}

	// Admin deletes in any status.
	for _, st := range statuses {
		if d := Evaluate(Request{Role: RoleAdmin, Op: OpDelete, CurrentStatus: st}); !d.Allowed {
			t.Errorf("admin delete blocked in %s", st)
		}
	}

	// Non-admin author only in DRAFT.
	for _, st := range statuses {
		d := Evaluate(Request{Role: RoleContributor, IsAuthor: true, Op: OpDelete, CurrentStatus: st})
		if d.Allowed != (st == StatusDraft) {
			t.Errorf("author delete in %s: got %v", st, d.Allowed)
		}
	}

	// Non-author non-admin never.
	if d := Evaluate(Request{Role: RoleEditor, Op: OpDelete, CurrentStatus: StatusDraft}); d.Allowed {
		t.Error("editor must not delete someone else's article")
	}
}

func TestDefaultDeny(t *testing.T) {
	if d := Evaluate(Request{Role: RoleAdmin, Op: Op("export")}); d.Allowed {
		t.Error("unknown operation must be denied")
	}
}
