package services

import (
	"context"
	"strings"

	"jurisight/internal/logger"
	"jurisight/internal/repository"

	"go.uber.org/zap"
)

type NewsletterService struct {
	repo repository.NewsletterRepo
}

func NewNewsletterService(repo repository.NewsletterRepo) *NewsletterService {
	return &NewsletterService{repo: repo}
}

func (s *NewsletterService) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Reason: "a valid email is required"}
	}
	if err := s.repo.Subscribe(ctx, email); err != nil {
		logger.WithCtx(ctx).Error("newsletter subscribe failed (repo)", zap.Error(err))
		return err
	}
	logger.WithCtx(ctx).Info("newsletter subscription added")
	return nil
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	return s.repo.Unsubscribe(ctx, email)
}
