package models

import (
	"time"

	"jurisight/internal/workflow"
)

type Article struct {
	ID            int64           `db:"id"             json:"id"`
	Slug          string          `db:"slug"           json:"slug"`
	Title         string          `db:"title"          json:"title"`
	Dek           *string         `db:"dek"            json:"dek,omitempty"`
	Body          string          `db:"body"           json:"body"`
	FeaturedImage *string         `db:"featured_image" json:"featuredImage,omitempty"`
	ReadingTime   int             `db:"reading_time"   json:"readingTime"`
	SectionID     int64           `db:"section_id"     json:"sectionId"`
	Tags          []string        `db:"-"              json:"tags"`
	Status        workflow.Status `db:"status"         json:"status"`
	PublishedAt   *time.Time      `db:"published_at"   json:"publishedAt,omitempty"`
	ScheduledAt   *time.Time      `db:"scheduled_at"   json:"scheduledAt,omitempty"`
	IsFeatured    bool            `db:"is_featured"    json:"isFeatured"`
	FeaturedAt    *time.Time      `db:"featured_at"    json:"featuredAt,omitempty"`
	IsTopNews     bool            `db:"is_top_news"    json:"isTopNews"`
	TopNewsAt     *time.Time      `db:"top_news_at"    json:"topNewsAt,omitempty"`
	AuthorID      int64           `db:"author_id"      json:"authorId"`
	Views         int64           `db:"views"          json:"views"`
	CreatedAt     time.Time       `db:"created_at"     json:"createdAt"`
	UpdatedAt     time.Time       `db:"updated_at"     json:"updatedAt"`
}

// ArticleDetail is the dashboard view of an article with its author and
// section joined in.
type ArticleDetail struct {
	Article
	Author  UserSummary `json:"author"`
	Section Section     `json:"section"`
}

// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	Title         string   `json:"title"`
	Dek           string   `json:"dek,omitempty"`
	Body          string   `json:"body"`
	SectionID     int64    `json:"sectionId"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Slug          string   `json:"slug,omitempty"`
}

// UpdateArticleRequest is the full-update shape. The status-only shape (a
// body whose JSON object holds exactly the status key) is detected
// structurally by the handler before decoding into this.
type UpdateArticleRequest struct {
	Title         string     `json:"title"`
	Dek           *string    `json:"dek,omitempty"`
	Body          string     `json:"body"`
	SectionID     int64      `json:"sectionId"`
	FeaturedImage *string    `json:"featuredImage,omitempty"`
	Status        *string    `json:"status,omitempty"`
	ReadingTime   *int       `json:"readingTime,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	Slug          *string    `json:"slug,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	IsFeatured    *bool      `json:"isFeatured,omitempty"`
	IsTopNews     *bool      `json:"isTopNews,omitempty"`
	FeaturedAt    *time.Time `json:"featuredAt,omitempty"`
	TopNewsAt     *time.Time `json:"topNewsAt,omitempty"`
	ScheduledAt   *time.Time `json:"scheduledAt,omitempty"`
}
