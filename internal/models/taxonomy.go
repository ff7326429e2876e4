package models

import "time"

// Section is the single editorial rubric an article belongs to.
type Section struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SectionWithCount struct {
	Section       Section `json:"section"`
	ArticlesCount int     `json:"articles_count"`
}

// Tag is a shared label referenced by many articles. The slug is derived
// deterministically from the name on first use; tags are never deleted by
// the editorial workflow.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
