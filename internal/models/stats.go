package models

type DashboardStats struct {
	TotalArticles  int `json:"total_articles"`
	Drafts         int `json:"drafts"`
	InReview       int `json:"in_review"`
	NeedsRevisions int `json:"needs_revisions"`
	Approved       int `json:"approved"`
	Scheduled      int `json:"scheduled"`
	Published      int `json:"published"`

	TotalUsers   int `json:"total_users"`
	Contributors int `json:"contributors"`
	Editors      int `json:"editors"`
	Admins       int `json:"admins"`

	TotalViews  int64 `json:"total_views"`
	Subscribers int   `json:"subscribers"`
}
