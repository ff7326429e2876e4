package models

import "time"

// EditorialComment is reviewer feedback attached to an article. External
// comments (is_internal=false) are the revision requests shown to the
// author; internal ones are reviewer-to-reviewer notes and survive the
// purge that happens when the author resubmits.
type EditorialComment struct {
	ID         int64     `json:"id"`
	ArticleID  int64     `json:"article_id"`
	AuthorID   int64     `json:"author_id"`
	Body       string    `json:"body"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	Body       string `json:"body"`
	IsInternal bool   `json:"is_internal"`
}
