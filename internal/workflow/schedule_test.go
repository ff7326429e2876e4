package workflow

import (
	"testing"
	"time"
)

func tp(t time.Time) *time.Time { return &t }

func TestScheduledAtOverridesStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)

	res, err := ResolveSchedule(ScheduleInput{
		Previous:    StatusApproved,
		Requested:   StatusPublished, // explicitly asked for, must lose
		ScheduledAt: tp(future),
		Now:         now,
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Status != StatusScheduled {
		t.Fatalf("got status %s, want SCHEDULED", res.Status)
	}
	if res.ScheduledAt == nil || !res.ScheduledAt.Equal(future) {
		t.Fatal("scheduledAt not carried through")
	}
}

func TestScheduledAtValidation(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if _, err := ResolveSchedule(ScheduleInput{ScheduledAt: tp(now.Add(-time.Minute)), Now: now}); err == nil {
		t.Error("past scheduledAt accepted")
	}
	if _, err := ResolveSchedule(ScheduleInput{ScheduledAt: tp(now), Now: now}); err == nil {
		t.Error("scheduledAt equal to now accepted")
	}
	if _, err := ResolveSchedule(ScheduleInput{ScheduledAt: tp(now.AddDate(1, 0, 1)), Now: now}); err == nil {
		t.Error("scheduledAt more than a year ahead accepted")
	}
	if _, err := ResolveSchedule(ScheduleInput{ScheduledAt: tp(now.Add(24 * time.Hour)), Now: now}); err != nil {
		t.Errorf("valid scheduledAt rejected: %v", err)
	}
}

func TestPublishStampsPublishedAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// No client value, no existing stamp: now wins.
	res, err := ResolveSchedule(ScheduleInput{Previous: StatusApproved, Requested: StatusPublished, Now: now})
	if err != nil {
		t.Fatal(err)
	}
	if res.PublishedAt == nil || !res.PublishedAt.Equal(now) {
		t.Fatal("publishedAt not stamped with now")
	}

	// Client-supplied value wins over now.
	supplied := now.Add(-time.Hour)
	res, err = ResolveSchedule(ScheduleInput{Previous: StatusApproved, Requested: StatusPublished, PublishedAt: tp(supplied), Now: now})
	if err != nil {
		t.Fatal(err)
	}
	if !res.PublishedAt.Equal(supplied) {
		t.Fatal("client publishedAt ignored")
	}

	// Already published: existing stamp preserved.
	existing := now.Add(-24 * time.Hour)
	res, err = ResolveSchedule(ScheduleInput{Previous: StatusPublished, Requested: StatusPublished, CurrentPub: tp(existing), Now: now})
	if err != nil {
		t.Fatal(err)
	}
	if !res.PublishedAt.Equal(existing) {
		t.Fatal("existing publishedAt overwritten")
	}
}

func TestUnpublishClearsPublishedAt(t *testing.T) {
	now := time.Now()
	res, err := ResolveSchedule(ScheduleInput{
		Previous:   StatusPublished,
		Requested:  StatusDraft,
		CurrentPub: tp(now.Add(-time.Hour)),
		Now:        now,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusDraft {
		t.Fatalf("got %s, want DRAFT", res.Status)
	}
	if res.PublishedAt != nil {
		t.Fatal("publishedAt must be cleared on unpublish")
	}
}

func TestAbsentStatusKeepsCurrent(t *testing.T) {
	now := time.Now()

	res, err := ResolveSchedule(ScheduleInput{Previous: StatusNeedsRevisions, Now: now})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusNeedsRevisions {
		t.Fatalf("got %s, want NEEDS_REVISIONS", res.Status)
	}

	// A published article is not unpublished by an edit that says nothing
	// about status.
	pub := now.Add(-time.Hour)
	res, err = ResolveSchedule(ScheduleInput{Previous: StatusPublished, CurrentPub: tp(pub), Now: now})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusPublished {
		t.Fatalf("got %s, want PUBLISHED", res.Status)
	}
	if res.PublishedAt == nil || !res.PublishedAt.Equal(pub) {
		t.Fatal("publishedAt lost on a status-less update")
	}

	// No stored status either: a fresh article starts as DRAFT.
	res, err = ResolveSchedule(ScheduleInput{Now: now})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusDraft {
		t.Fatalf("got %s, want DRAFT", res.Status)
	}
}

func TestScheduledRequiresTimestamp(t *testing.T) {
	now := time.Now()

	if _, err := ResolveSchedule(ScheduleInput{Previous: StatusApproved, Requested: StatusScheduled, Now: now}); err == nil {
		t.Error("SCHEDULED accepted without any scheduledAt")
	}

	// An already scheduled article keeps its stored timestamp.
	sched := now.Add(48 * time.Hour)
	res, err := ResolveSchedule(ScheduleInput{
		Previous:     StatusScheduled,
		Requested:    StatusScheduled,
		CurrentSched: tp(sched),
		Now:          now,
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Status != StatusScheduled {
		t.Fatalf("got %s, want SCHEDULED", res.Status)
	}
	if res.ScheduledAt == nil || !res.ScheduledAt.Equal(sched) {
		t.Fatal("stored scheduledAt not carried through")
	}

	// Status-less edit of a scheduled article keeps it scheduled.
	res, err = ResolveSchedule(ScheduleInput{Previous: StatusScheduled, CurrentSched: tp(sched), Now: now})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Status != StatusScheduled || res.ScheduledAt == nil {
		t.Fatal("scheduled article degraded by a status-less update")
	}
}
