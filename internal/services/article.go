package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"jurisight/internal/logger"
	"jurisight/internal/models"
	"jurisight/internal/repository"
	"jurisight/internal/workflow"

	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// readingWordsPerMinute is used to derive readingTime when the client does
// not supply one.
const readingWordsPerMinute = 200

type ArticleService interface {
	Create(ctx context.Context, authorID int64, role workflow.Role, req models.CreateArticleRequest) (*models.Article, error)
	GetDashboard(ctx context.Context, actorID int64, role workflow.Role, id int64) (*models.ArticleDetail, error)
	ListDashboard(ctx context.Context, actorID int64, role workflow.Role, limit, offset int) ([]*models.Article, error)
	UpdateStatus(ctx context.Context, actorID int64, role workflow.Role, id int64, target string) (*models.Article, error)
	UpdateFull(ctx context.Context, actorID int64, role workflow.Role, id int64, req models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, actorID int64, role workflow.Role, id int64) error
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	ListPublished(ctx context.Context, sectionID *int64, tagSlug string, limit, offset int) ([]*models.Article, error)
}

type articleService struct {
	repo     repository.ArticleRepo
	comments repository.CommentRepo
	tags     repository.TagRepo
	cache    *CacheService
	notifier *Notifier
	policy   *bluemonday.Policy
}

func NewArticleService(
	repo repository.ArticleRepo,
	comments repository.CommentRepo,
	tags repository.TagRepo,
	cache *CacheService,
	notifier *Notifier,
) ArticleService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &articleService{
		repo:     repo,
		comments: comments,
		tags:     tags,
		cache:    cache,
		notifier: notifier,
		policy:   p,
	}
}

func (s *articleService) Create(ctx context.Context, authorID int64, role workflow.Role, req models.CreateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("creating article",
		zap.Int64("author_id", authorID),
		zap.String("title", strings.TrimSpace(req.Title)),
	)

	title := strings.TrimSpace(req.Title)
	if l := utf8.RuneCountInString(title); l < 3 || l > 255 {
		return nil, &ValidationError{Field: "title", Reason: "must be between 3 and 255 characters"}
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, &ValidationError{Field: "body", Reason: "is required"}
	}
	if req.SectionID <= 0 {
		return nil, &ValidationError{Field: "sectionId", Reason: "is required"}
	}

	artSlug := req.Slug
	if artSlug == "" {
		artSlug = title
	}
	safe := s.policy.Sanitize(req.Body)

	a := &models.Article{
		Slug:          slug.Make(artSlug),
		Title:         title,
		Dek:           strPtr(req.Dek),
		Body:          safe,
		FeaturedImage: strPtr(req.FeaturedImage),
		ReadingTime:   estimateReadingTime(safe),
		SectionID:     req.SectionID,
		Status:        workflow.StatusDraft,
		AuthorID:      authorID,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		log.Error("article create failed (repo)", zap.Error(err))
		return nil, err
	}

	if len(req.Tags) > 0 {
		created.Tags = s.saveTags(ctx, created.ID, req.Tags)
	}

	log.Info("article created", zap.Int64("id", created.ID), zap.String("slug", created.Slug))
	return created, nil
}

func (s *articleService) GetDashboard(ctx context.Context, actorID int64, role workflow.Role, id int64) (*models.ArticleDetail, error) {
	d, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	decision := workflow.Evaluate(workflow.Request{
		Role:          role,
		IsAuthor:      d.AuthorID == actorID,
		Op:            workflow.OpView,
		CurrentStatus: d.Status,
	})
	if !decision.Allowed {
		return nil, &PermissionError{Reason: decision.Reason}
	}
	return d, nil
}

func (s *articleService) ListDashboard(ctx context.Context, actorID int64, role workflow.Role, limit, offset int) ([]*models.Article, error) {
	// Contributors only see their own work on the dashboard.
	var authorID *int64
	if !role.Elevated() {
		authorID = &actorID
	}
	return s.repo.ListDashboard(ctx, authorID, limit, offset)
}

func (s *articleService) UpdateStatus(ctx context.Context, actorID int64, role workflow.Role, id int64, targetRaw string) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	target, err := workflow.ParseStatus(targetRaw)
	if err != nil {
		return nil, &ValidationError{Field: "status", Reason: err.Error()}
	}

	decision := workflow.Evaluate(workflow.Request{
		Role:          role,
		IsAuthor:      a.AuthorID == actorID,
		Op:            workflow.OpChangeStatus,
		CurrentStatus: a.Status,
		TargetStatus:  target,
	})
	if !decision.Allowed {
		log.Warn("status change denied",
			zap.Int64("article_id", id),
			zap.String("role", string(role)),
			zap.String("target", string(target)),
			zap.String("reason", decision.Reason),
		)
		return nil, &PermissionError{Reason: decision.Reason}
	}

	if err := workflow.ValidateTransition(a.Status, target, role.Elevated()); err != nil {
		return nil, &ValidationError{Field: "status", Reason: err.Error()}
	}

	res, err := workflow.ResolveSchedule(workflow.ScheduleInput{
		Previous:     a.Status,
		Requested:    target,
		CurrentPub:   a.PublishedAt,
		CurrentSched: a.ScheduledAt,
		Now:          time.Now(),
	})
	if err != nil {
		return nil, &ValidationError{Field: "status", Reason: err.Error()}
	}

	wasPublished := a.Status == workflow.StatusPublished
	a.Status = res.Status
	a.PublishedAt = res.PublishedAt
	a.ScheduledAt = res.ScheduledAt

	if err := s.repo.Update(ctx, a); err != nil {
		log.Error("status update failed (repo)", zap.Int64("article_id", id), zap.Error(err))
		return nil, err
	}

	log.Info("article status changed",
		zap.Int64("article_id", id),
		zap.String("status", string(a.Status)),
	)

	if a.Status == workflow.StatusPublished && !wasPublished {
		s.onPublished(ctx, a)
	} else if wasPublished && a.Status != workflow.StatusPublished {
		s.cache.InvalidateListings(ctx)
	}

	return a, nil
}

func (s *articleService) UpdateFull(ctx context.Context, actorID int64, role workflow.Role, id int64, req models.UpdateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// All validation happens before any write.
	title := strings.TrimSpace(req.Title)
	if l := utf8.RuneCountInString(title); l < 3 || l > 255 {
		return nil, &ValidationError{Field: "title", Reason: "must be between 3 and 255 characters"}
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, &ValidationError{Field: "body", Reason: "is required"}
	}
	if req.SectionID <= 0 {
		return nil, &ValidationError{Field: "sectionId", Reason: "is required"}
	}

	decision := workflow.Evaluate(workflow.Request{
		Role:          role,
		IsAuthor:      a.AuthorID == actorID,
		Op:            workflow.OpEditContent,
		CurrentStatus: a.Status,
	})
	if !decision.Allowed {
		return nil, &PermissionError{Reason: decision.Reason}
	}

	// An absent status is passed through empty; the resolver keeps the
	// article where it is.
	var requested workflow.Status
	if req.Status != nil {
		requested, err = workflow.ParseStatus(*req.Status)
		if err != nil {
			return nil, &ValidationError{Field: "status", Reason: err.Error()}
		}
	}

	res, err := workflow.ResolveSchedule(workflow.ScheduleInput{
		Previous:     a.Status,
		Requested:    requested,
		ScheduledAt:  req.ScheduledAt,
		PublishedAt:  req.PublishedAt,
		CurrentPub:   a.PublishedAt,
		CurrentSched: a.ScheduledAt,
		Now:          time.Now(),
	})
	if err != nil {
		return nil, &ValidationError{Field: "scheduledAt", Reason: err.Error()}
	}

	if res.Status != a.Status {
		decision := workflow.Evaluate(workflow.Request{
			Role:          role,
			IsAuthor:      a.AuthorID == actorID,
			Op:            workflow.OpChangeStatus,
			CurrentStatus: a.Status,
			TargetStatus:  res.Status,
		})
		if !decision.Allowed {
			return nil, &PermissionError{Reason: decision.Reason}
		}
		if err := workflow.ValidateTransition(a.Status, res.Status, role.Elevated()); err != nil {
			return nil, &ValidationError{Field: "status", Reason: err.Error()}
		}
	}

	prevStatus := a.Status
	wasPublished := a.Status == workflow.StatusPublished

	a.Title = title
	a.Dek = req.Dek
	a.Body = s.policy.Sanitize(req.Body)
	a.SectionID = req.SectionID
	a.FeaturedImage = req.FeaturedImage
	if req.Slug != nil && *req.Slug != "" {
		a.Slug = slug.Make(*req.Slug)
	}
	if req.ReadingTime != nil {
		a.ReadingTime = *req.ReadingTime
	} else {
		a.ReadingTime = estimateReadingTime(a.Body)
	}
	if req.IsFeatured != nil {
		a.IsFeatured = *req.IsFeatured
		a.FeaturedAt = req.FeaturedAt
	}
	if req.IsTopNews != nil {
		a.IsTopNews = *req.IsTopNews
		a.TopNewsAt = req.TopNewsAt
	}
	a.Status = res.Status
	a.PublishedAt = res.PublishedAt
	a.ScheduledAt = res.ScheduledAt

	if err := s.repo.Update(ctx, a); err != nil {
		log.Error("article update failed (repo)", zap.Int64("article_id", id), zap.Error(err))
		return nil, err
	}

	// Resubmission after revisions were requested: the external revision
	// notes are consumed. Best-effort, runs only once the update itself
	// has landed so a failed write never destroys the author's feedback.
	if prevStatus == workflow.StatusNeedsRevisions {
		if n, err := s.comments.DeleteExternalByArticle(ctx, id); err != nil {
			log.Warn("revision-note purge failed", zap.Int64("article_id", id), zap.Error(err))
		} else if n > 0 {
			log.Info("revision notes purged", zap.Int64("article_id", id), zap.Int64("count", n))
		}
	}

	if req.Tags != nil {
		a.Tags = s.saveTags(ctx, a.ID, req.Tags)
	} else {
		a.Tags, _ = s.repo.GetTagNames(ctx, a.ID)
	}

	log.Info("article updated",
		zap.Int64("article_id", id),
		zap.String("status", string(a.Status)),
	)

	if a.Status == workflow.StatusPublished && !wasPublished {
		s.onPublished(ctx, a)
	} else if wasPublished && a.Status != workflow.StatusPublished {
		s.cache.InvalidateListings(ctx)
	}

	return a, nil
}

func (s *articleService) Delete(ctx context.Context, actorID int64, role workflow.Role, id int64) error {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	decision := workflow.Evaluate(workflow.Request{
		Role:          role,
		IsAuthor:      a.AuthorID == actorID,
		Op:            workflow.OpDelete,
		CurrentStatus: a.Status,
	})
	if !decision.Allowed {
		return &PermissionError{Reason: decision.Reason}
	}

	// Dependent rows are cleaned up concurrently and best-effort; a failed
	// step is logged and does not block the final delete.
	steps := []struct {
		name string
		fn   func(context.Context, int64) error
	}{
		{"tags", s.repo.DeleteTagLinks},
		{"comments", func(ctx context.Context, id int64) error { return s.comments.DeleteByArticle(ctx, id) }},
		{"citations", s.repo.DeleteCitations},
		{"source_links", s.repo.DeleteSourceLinks},
	}

	var wg sync.WaitGroup
	for _, step := range steps {
		wg.Add(1)
		go func(name string, fn func(context.Context, int64) error) {
			defer wg.Done()
			if err := fn(ctx, id); err != nil {
				log.Warn("cascade step failed", zap.String("step", name), zap.Int64("article_id", id), zap.Error(err))
			}
		}(step.name, step.fn)
	}
	wg.Wait()

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("article delete failed (repo)", zap.Int64("article_id", id), zap.Error(err))
		return err
	}

	log.Info("article deleted", zap.Int64("article_id", id))

	if a.Status == workflow.StatusPublished {
		s.cache.InvalidateListings(ctx)
	}
	return nil
}

func (s *articleService) GetPublishedBySlug(ctx context.Context, artSlug string) (*models.Article, error) {
	a, err := s.repo.GetPublishedBySlug(ctx, artSlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	a.Tags, _ = s.repo.GetTagNames(ctx, a.ID)

	RecordView(a.ID)
	return a, nil
}

func (s *articleService) ListPublished(ctx context.Context, sectionID *int64, tagSlug string, limit, offset int) ([]*models.Article, error) {
	key := fmt.Sprintf("%s:%v:%s:%d:%d", listingKeyPrefix, ptrVal(sectionID), tagSlug, limit, offset)

	if data, ok := s.cache.Get(ctx, key); ok {
		var cached []*models.Article
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	list, err := s.repo.ListPublished(ctx, sectionID, tagSlug, limit, offset)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(list); err == nil {
		s.cache.Set(ctx, key, data)
	}
	return list, nil
}

// onPublished runs the side effects of an article going live: listing
// cache invalidation and the subscriber notification. Both best-effort.
func (s *articleService) onPublished(ctx context.Context, a *models.Article) {
	s.cache.InvalidateListings(ctx)
	s.notifier.NotifyArticlePublished(ctx, a.Slug, a.Title)
}

// saveTags upserts tags by derived slug and rewrites the join rows. Tag
// trouble never fails the article write; the outcome is logged instead.
func (s *articleService) saveTags(ctx context.Context, articleID int64, names []string) []string {
	log := logger.WithCtx(ctx)

	var tagIDs []int64
	var tagNames []string
	seen := map[string]struct{}{}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tagSlug := slug.Make(name)
		if _, ok := seen[tagSlug]; ok {
			continue
		}
		seen[tagSlug] = struct{}{}

		t, err := s.tags.GetBySlug(ctx, tagSlug)
		if errors.Is(err, pgx.ErrNoRows) {
			t, err = s.tags.Create(ctx, name, tagSlug)
			if isUniqueViolation(err) {
				// Lost a race with a concurrent save of the same new tag;
				// re-read the winner's row.
				t, err = s.tags.GetBySlug(ctx, tagSlug)
			}
		}
		if err != nil {
			log.Warn("tag upsert failed", zap.String("slug", tagSlug), zap.Error(err))
			continue
		}
		tagIDs = append(tagIDs, t.ID)
		tagNames = append(tagNames, t.Name)
	}

	if err := s.repo.SetTags(ctx, articleID, tagIDs); err != nil {
		log.Warn("tag links rewrite failed", zap.Int64("article_id", articleID), zap.Error(err))
	}
	return tagNames
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func estimateReadingTime(body string) int {
	words := len(strings.Fields(body))
	minutes := (words + readingWordsPerMinute - 1) / readingWordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func strPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func ptrVal(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
