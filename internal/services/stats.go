package services

import (
	"context"

	"jurisight/internal/models"
	"jurisight/internal/repository"
	"jurisight/internal/workflow"
)

type StatsService struct {
	articles   repository.ArticleRepo
	users      repository.UserRepo
	newsletter repository.NewsletterRepo
}

func NewStatsService(articles repository.ArticleRepo, users repository.UserRepo, newsletter repository.NewsletterRepo) *StatsService {
	return &StatsService{articles: articles, users: users, newsletter: newsletter}
}

func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	byStatus, err := s.articles.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	views, err := s.articles.TotalViews(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.newsletter.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		Drafts:         byStatus[workflow.StatusDraft],
		InReview:       byStatus[workflow.StatusInReview],
		NeedsRevisions: byStatus[workflow.StatusNeedsRevisions],
		Approved:       byStatus[workflow.StatusApproved],
		Scheduled:      byStatus[workflow.StatusScheduled],
		Published:      byStatus[workflow.StatusPublished],

		Contributors: byRole[workflow.RoleContributor],
		Editors:      byRole[workflow.RoleEditor],
		Admins:       byRole[workflow.RoleAdmin],

		TotalViews:  views,
		Subscribers: subs,
	}
	for _, n := range byStatus {
		stats.TotalArticles += n
	}
	for _, n := range byRole {
		stats.TotalUsers += n
	}
	return stats, nil
}
