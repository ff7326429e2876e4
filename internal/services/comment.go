package services

import (
	"context"
	"errors"
	"strings"

	"jurisight/internal/logger"
	"jurisight/internal/models"
	"jurisight/internal/repository"
	"jurisight/internal/workflow"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CommentService struct {
	repo     repository.CommentRepo
	articles repository.ArticleRepo
}

func NewCommentService(repo repository.CommentRepo, articles repository.ArticleRepo) *CommentService {
	return &CommentService{repo: repo, articles: articles}
}

// Create attaches reviewer feedback to an article. Only elevated roles
// leave editorial comments; the role guard on the route enforces that,
// this just validates the payload.
func (s *CommentService) Create(ctx context.Context, articleID, authorID int64, req models.CreateCommentRequest) (*models.EditorialComment, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, &ValidationError{Field: "body", Reason: "is required"}
	}

	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c := &models.EditorialComment{
		ArticleID:  articleID,
		AuthorID:   authorID,
		Body:       strings.TrimSpace(req.Body),
		IsInternal: req.IsInternal,
	}
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		logger.WithCtx(ctx).Error("comment create failed (repo)", zap.Int64("article_id", articleID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// List returns an article's comments. Internal reviewer notes are only
// included for elevated roles; authors see just the revision requests
// addressed to them.
func (s *CommentService) List(ctx context.Context, actorID int64, role workflow.Role, articleID int64) ([]*models.EditorialComment, error) {
	a, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	decision := workflow.Evaluate(workflow.Request{
		Role:          role,
		IsAuthor:      a.AuthorID == actorID,
		Op:            workflow.OpView,
		CurrentStatus: a.Status,
	})
	if !decision.Allowed {
		return nil, &PermissionError{Reason: decision.Reason}
	}

	return s.repo.ListByArticle(ctx, articleID, role.Elevated())
}
