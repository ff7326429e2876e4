package services

import (
	"context"
	"strings"

	"jurisight/internal/logger"
	"jurisight/internal/models"
	"jurisight/internal/repository"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

type TaxonomyService struct {
	repo *repository.TaxonomyRepo
	tags repository.TagRepo
}

func NewTaxonomyService(repo *repository.TaxonomyRepo, tags repository.TagRepo) *TaxonomyService {
	return &TaxonomyService{repo: repo, tags: tags}
}

func (s *TaxonomyService) CreateSection(ctx context.Context, sec *models.Section) (int64, error) {
	if strings.TrimSpace(sec.Title) == "" {
		return 0, &ValidationError{Field: "title", Reason: "is required"}
	}
	if sec.Slug == "" {
		sec.Slug = slug.Make(sec.Title)
	}

	id, err := s.repo.CreateSection(ctx, sec)
	if err != nil {
		logger.WithCtx(ctx).Error("section create failed (repo)", zap.Error(err))
		return 0, err
	}
	logger.WithCtx(ctx).Info("section created", zap.Int64("id", id), zap.String("slug", sec.Slug))
	return id, nil
}

func (s *TaxonomyService) UpdateSection(ctx context.Context, sec *models.Section) error {
	if strings.TrimSpace(sec.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if sec.Slug == "" {
		sec.Slug = slug.Make(sec.Title)
	}
	return s.repo.UpdateSection(ctx, sec)
}

func (s *TaxonomyService) DeleteSection(ctx context.Context, id int64) error {
	return s.repo.DeleteSection(ctx, id)
}

func (s *TaxonomyService) ListSections(ctx context.Context) ([]models.SectionWithCount, error) {
	return s.repo.ListSections(ctx)
}

func (s *TaxonomyService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return s.tags.List(ctx)
}
