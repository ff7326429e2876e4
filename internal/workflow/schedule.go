package workflow

import (
	"fmt"
	"time"
)

// MaxScheduleAhead bounds how far in the future an article may be scheduled.
const MaxScheduleAhead = 365 * 24 * time.Hour

// ScheduleInput is a full-update request reduced to the fields that decide
// the effective status.
type ScheduleInput struct {
	Previous     Status
	Requested    Status // "" when the request carries no status
	ScheduledAt  *time.Time
	PublishedAt  *time.Time // publishedAt supplied by the client, if any
	CurrentPub   *time.Time // publishedAt currently stored on the article
	CurrentSched *time.Time // scheduledAt currently stored on the article
	Now          time.Time
}

// ScheduleResult is the resolved workflow state to persist.
type ScheduleResult struct {
	Status      Status
	PublishedAt *time.Time
	ScheduledAt *time.Time
}

// ResolveSchedule decides the effective status of an update. A non-empty
// scheduledAt forces SCHEDULED and overrides any explicit status in the
// request; SCHEDULED without a timestamp from either the request or the
// stored article is rejected. A request with no status keeps the article
// where it is. Moving into PUBLISHED stamps publishedAt (client value wins,
// otherwise the existing stamp, otherwise now); moving away from PUBLISHED
// clears it, which is how unpublish is expressed. The actual flip of a
// SCHEDULED article at its due time is driven by an external trigger.
func ResolveSchedule(in ScheduleInput) (ScheduleResult, error) {
	if in.ScheduledAt != nil {
		if !in.ScheduledAt.After(in.Now) {
			return ScheduleResult{}, fmt.Errorf("scheduledAt must be in the future")
		}
		if in.ScheduledAt.After(in.Now.Add(MaxScheduleAhead)) {
			return ScheduleResult{}, fmt.Errorf("scheduledAt cannot be more than one year ahead")
		}
		return ScheduleResult{
			Status:      StatusScheduled,
			PublishedAt: in.CurrentPub,
			ScheduledAt: in.ScheduledAt,
		}, nil
	}

	effective := in.Requested
	if effective == "" {
		effective = in.Previous
		if effective == "" {
			effective = StatusDraft
		}
	}

	if effective == StatusScheduled {
		// SCHEDULED is only meaningful with a timestamp. An already
		// scheduled article may stay as it is, but nothing can become
		// SCHEDULED without saying when.
		if in.CurrentSched == nil {
			return ScheduleResult{}, fmt.Errorf("scheduledAt is required to schedule an article")
		}
		return ScheduleResult{
			Status:      StatusScheduled,
			PublishedAt: in.CurrentPub,
			ScheduledAt: in.CurrentSched,
		}, nil
	}

	if effective == StatusPublished {
		pub := in.PublishedAt
		if pub == nil {
			pub = in.CurrentPub
		}
		if pub == nil {
			now := in.Now
			pub = &now
		}
		return ScheduleResult{Status: StatusPublished, PublishedAt: pub}, nil
	}

	if in.Previous == StatusPublished {
		return ScheduleResult{Status: effective, PublishedAt: nil}, nil
	}

	return ScheduleResult{Status: effective, PublishedAt: in.CurrentPub}, nil
}
