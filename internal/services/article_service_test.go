package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"jurisight/internal/models"
	"jurisight/internal/workflow"

	"github.com/jackc/pgx/v5"
)

type mockArticleRepo struct {
	articles    map[int64]*models.Article
	updateCalls int
	updateErr   error
	deleted     []int64
	tagLinks    map[int64][]int64
}

func newMockArticleRepo(articles ...*models.Article) *mockArticleRepo {
	m := &mockArticleRepo{
		articles: make(map[int64]*models.Article),
		tagLinks: make(map[int64][]int64),
	}
	for _, a := range articles {
		m.articles[a.ID] = a
	}
	return m
}

func (m *mockArticleRepo) Create(_ context.Context, a *models.Article) (*models.Article, error) {
	a.ID = int64(len(m.articles) + 1)
	m.articles[a.ID] = a
	return a, nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id int64) (*models.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *a
	return &cp, nil
}

func (m *mockArticleRepo) GetDetail(_ context.Context, id int64) (*models.ArticleDetail, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &models.ArticleDetail{Article: *a}, nil
}

func (m *mockArticleRepo) GetPublishedBySlug(_ context.Context, slug string) (*models.Article, error) {
	for _, a := range m.articles {
		if a.Slug == slug && a.Status == workflow.StatusPublished {
			return a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *mockArticleRepo) ListDashboard(_ context.Context, authorID *int64, _, _ int) ([]*models.Article, error) {
	var out []*models.Article
	for _, a := range m.articles {
		if authorID == nil || a.AuthorID == *authorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockArticleRepo) ListPublished(_ context.Context, _ *int64, _ string, _, _ int) ([]*models.Article, error) {
	return nil, nil
}

func (m *mockArticleRepo) Update(_ context.Context, a *models.Article) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	cp := *a
	m.articles[a.ID] = &cp
	return nil
}

func (m *mockArticleRepo) Delete(_ context.Context, id int64) error {
	delete(m.articles, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockArticleRepo) SetTags(_ context.Context, articleID int64, tagIDs []int64) error {
	m.tagLinks[articleID] = tagIDs
	return nil
}

func (m *mockArticleRepo) GetTagNames(_ context.Context, _ int64) ([]string, error) { return nil, nil }
func (m *mockArticleRepo) DeleteTagLinks(_ context.Context, _ int64) error         { return nil }
func (m *mockArticleRepo) DeleteCitations(_ context.Context, _ int64) error        { return nil }
func (m *mockArticleRepo) DeleteSourceLinks(_ context.Context, _ int64) error      { return nil }
func (m *mockArticleRepo) AddViews(_ context.Context, _ int64, _ int64) error      { return nil }
func (m *mockArticleRepo) CountByStatus(_ context.Context) (map[workflow.Status]int, error) {
	return nil, nil
}
func (m *mockArticleRepo) TotalViews(_ context.Context) (int64, error) { return 0, nil }

type mockCommentRepo struct {
	external    map[int64]int64 // articleID -> external comment count
	internal    map[int64]int64
	purgedCalls int
}

func (m *mockCommentRepo) Create(_ context.Context, c *models.EditorialComment) (*models.EditorialComment, error) {
	return c, nil
}

func (m *mockCommentRepo) ListByArticle(_ context.Context, _ int64, _ bool) ([]*models.EditorialComment, error) {
	return nil, nil
}

func (m *mockCommentRepo) DeleteExternalByArticle(_ context.Context, articleID int64) (int64, error) {
	m.purgedCalls++
	n := m.external[articleID]
	m.external[articleID] = 0
	return n, nil
}

func (m *mockCommentRepo) DeleteByArticle(_ context.Context, articleID int64) error {
	m.external[articleID] = 0
	m.internal[articleID] = 0
	return nil
}

type mockTagRepo struct {
	bySlug  map[string]*models.Tag
	created int
}

func (m *mockTagRepo) GetBySlug(_ context.Context, slug string) (*models.Tag, error) {
	t, ok := m.bySlug[slug]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return t, nil
}

func (m *mockTagRepo) Create(_ context.Context, name, slug string) (*models.Tag, error) {
	m.created++
	t := &models.Tag{ID: int64(m.created), Name: name, Slug: slug}
	m.bySlug[slug] = t
	return t, nil
}

func (m *mockTagRepo) List(_ context.Context) ([]*models.Tag, error) { return nil, nil }

func newTestArticleService(repo *mockArticleRepo, comments *mockCommentRepo, tags *mockTagRepo) ArticleService {
	if comments == nil {
		comments = &mockCommentRepo{external: map[int64]int64{}, internal: map[int64]int64{}}
	}
	if tags == nil {
		tags = &mockTagRepo{bySlug: map[string]*models.Tag{}}
	}
	return NewArticleService(repo, comments, tags, NewCacheService(nil), nil)
}

func draftArticle(id, authorID int64, status workflow.Status) *models.Article {
	return &models.Article{
		ID:        id,
		Slug:      "some-case-note",
		Title:     "Some case note",
		Body:      "<p>Analysis of the ruling.</p>",
		SectionID: 1,
		Status:    status,
		AuthorID:  authorID,
	}
}

func TestUpdateStatus_ContributorAlwaysDenied(t *testing.T) {
	statuses := []workflow.Status{
		workflow.StatusDraft, workflow.StatusInReview, workflow.StatusNeedsRevisions,
		workflow.StatusApproved, workflow.StatusPublished, workflow.StatusScheduled,
	}
	for _, st := range statuses {
		repo := newMockArticleRepo(draftArticle(1, 7, st))
		svc := newTestArticleService(repo, nil, nil)

		_, err := svc.UpdateStatus(context.Background(), 7, workflow.RoleContributor, 1, string(workflow.StatusPublished))
		if _, ok := err.(*PermissionError); !ok {
			t.Fatalf("status %s: expected PermissionError, got %v", st, err)
		}
		if repo.updateCalls != 0 {
			t.Fatalf("status %s: article was persisted despite denial", st)
		}
	}
}

func TestUpdateStatus_PublishStampsPublishedAt(t *testing.T) {
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusApproved))
	svc := newTestArticleService(repo, nil, nil)

	a, err := svc.UpdateStatus(context.Background(), 2, workflow.RoleEditor, 1, string(workflow.StatusPublished))
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if a.Status != workflow.StatusPublished {
		t.Fatalf("expected PUBLISHED, got %s", a.Status)
	}
	if a.PublishedAt == nil {
		t.Fatal("publishedAt was not stamped")
	}
	if repo.updateCalls != 1 {
		t.Fatalf("expected one persisted update, got %d", repo.updateCalls)
	}
}

func TestUpdateStatus_UnpublishClearsPublishedAt(t *testing.T) {
	pub := time.Now().Add(-24 * time.Hour)
	a := draftArticle(1, 7, workflow.StatusPublished)
	a.PublishedAt = &pub
	repo := newMockArticleRepo(a)
	svc := newTestArticleService(repo, nil, nil)

	// Outside the editorial graph, so only elevated roles can do it.
	updated, err := svc.UpdateStatus(context.Background(), 3, workflow.RoleAdmin, 1, string(workflow.StatusDraft))
	if err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	if updated.Status != workflow.StatusDraft {
		t.Fatalf("expected DRAFT, got %s", updated.Status)
	}
	if updated.PublishedAt != nil {
		t.Fatal("publishedAt survived an unpublish")
	}
}

func TestUpdateStatus_RepublishKeepsOriginalStamp(t *testing.T) {
	pub := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	a := draftArticle(1, 7, workflow.StatusApproved)
	a.PublishedAt = &pub
	repo := newMockArticleRepo(a)
	svc := newTestArticleService(repo, nil, nil)

	updated, err := svc.UpdateStatus(context.Background(), 2, workflow.RoleEditor, 1, string(workflow.StatusPublished))
	if err != nil {
		t.Fatalf("republish failed: %v", err)
	}
	if updated.PublishedAt == nil || !updated.PublishedAt.Equal(pub) {
		t.Fatalf("expected original stamp %v, got %v", pub, updated.PublishedAt)
	}
}

func TestUpdateStatus_ElevatedBypassesGraph(t *testing.T) {
	// DRAFT -> PUBLISHED is outside the editorial graph, but editors are
	// elevated and the graph never binds them.
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusDraft))
	svc := newTestArticleService(repo, nil, nil)

	a, err := svc.UpdateStatus(context.Background(), 2, workflow.RoleEditor, 1, string(workflow.StatusPublished))
	if err != nil {
		t.Fatalf("elevated publish from DRAFT failed: %v", err)
	}
	if a.Status != workflow.StatusPublished {
		t.Fatalf("expected PUBLISHED, got %s", a.Status)
	}
}

func TestUpdateStatus_ScheduleWithoutTimestampRejected(t *testing.T) {
	// A status-only patch carries no timestamp, so SCHEDULED is only valid
	// when the article already has one.
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusApproved))
	svc := newTestArticleService(repo, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), 2, workflow.RoleEditor, 1, string(workflow.StatusScheduled))
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("SCHEDULED without a scheduledAt was persisted")
	}
}

func TestUpdateStatus_ScheduledArticleKeepsItsTimestamp(t *testing.T) {
	sched := time.Now().Add(48 * time.Hour)
	a := draftArticle(1, 7, workflow.StatusScheduled)
	a.ScheduledAt = &sched
	repo := newMockArticleRepo(a)
	svc := newTestArticleService(repo, nil, nil)

	updated, err := svc.UpdateStatus(context.Background(), 2, workflow.RoleEditor, 1, string(workflow.StatusScheduled))
	if err != nil {
		t.Fatalf("no-op reschedule failed: %v", err)
	}
	if updated.ScheduledAt == nil || !updated.ScheduledAt.Equal(sched) {
		t.Fatalf("stored scheduledAt lost: %v", updated.ScheduledAt)
	}
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusDraft))
	svc := newTestArticleService(repo, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), 2, workflow.RoleEditor, 1, "LIVE")
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected ValidationError for unknown status, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("article was persisted despite invalid status")
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := newMockArticleRepo()
	svc := newTestArticleService(repo, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), 2, workflow.RoleEditor, 99, string(workflow.StatusInReview))
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func fullUpdateReq() models.UpdateArticleRequest {
	return models.UpdateArticleRequest{
		Title:     "Some case note, revised",
		Body:      "<p>Updated analysis.</p>",
		SectionID: 1,
	}
}

func TestUpdateFull_ScheduleTooFarAheadRejectedBeforePersist(t *testing.T) {
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusApproved))
	svc := newTestArticleService(repo, nil, nil)

	req := fullUpdateReq()
	at := time.Now().Add(2 * 365 * 24 * time.Hour)
	req.ScheduledAt = &at

	_, err := svc.UpdateFull(context.Background(), 2, workflow.RoleEditor, 1, req)
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("invalid schedule was persisted")
	}
}

func TestUpdateFull_ScheduledAtOverridesStatus(t *testing.T) {
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusApproved))
	svc := newTestArticleService(repo, nil, nil)

	req := fullUpdateReq()
	at := time.Now().Add(48 * time.Hour)
	req.ScheduledAt = &at
	published := string(workflow.StatusPublished)
	req.Status = &published

	a, err := svc.UpdateFull(context.Background(), 2, workflow.RoleEditor, 1, req)
	if err != nil {
		t.Fatalf("scheduled update failed: %v", err)
	}
	if a.Status != workflow.StatusScheduled {
		t.Fatalf("scheduledAt should force SCHEDULED, got %s", a.Status)
	}
	if a.ScheduledAt == nil || !a.ScheduledAt.Equal(at) {
		t.Fatalf("scheduledAt not persisted: %v", a.ScheduledAt)
	}
}

func TestUpdateFull_ResubmissionPurgesExternalNotes(t *testing.T) {
	comments := &mockCommentRepo{
		external: map[int64]int64{1: 2},
		internal: map[int64]int64{1: 1},
	}
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusNeedsRevisions))
	svc := newTestArticleService(repo, comments, nil)

	_, err := svc.UpdateFull(context.Background(), 7, workflow.RoleContributor, 1, fullUpdateReq())
	if err != nil {
		t.Fatalf("author update in NEEDS_REVISIONS failed: %v", err)
	}
	if comments.purgedCalls != 1 {
		t.Fatalf("expected one purge call, got %d", comments.purgedCalls)
	}
	if comments.external[1] != 0 {
		t.Fatal("external revision notes survived the resubmission")
	}
	if comments.internal[1] != 1 {
		t.Fatal("internal notes must survive the purge")
	}
}

func TestUpdateFull_NoPurgeOutsideNeedsRevisions(t *testing.T) {
	comments := &mockCommentRepo{
		external: map[int64]int64{1: 2},
		internal: map[int64]int64{},
	}
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusDraft))
	svc := newTestArticleService(repo, comments, nil)

	_, err := svc.UpdateFull(context.Background(), 7, workflow.RoleContributor, 1, fullUpdateReq())
	if err != nil {
		t.Fatalf("draft update failed: %v", err)
	}
	if comments.purgedCalls != 0 {
		t.Fatal("purge must only run when leaving NEEDS_REVISIONS")
	}
}

func TestUpdateFull_AbsentStatusKeepsPublished(t *testing.T) {
	pub := time.Now().Add(-24 * time.Hour)
	a := draftArticle(1, 7, workflow.StatusPublished)
	a.PublishedAt = &pub
	repo := newMockArticleRepo(a)
	svc := newTestArticleService(repo, nil, nil)

	updated, err := svc.UpdateFull(context.Background(), 2, workflow.RoleEditor, 1, fullUpdateReq())
	if err != nil {
		t.Fatalf("status-less update failed: %v", err)
	}
	if updated.Status != workflow.StatusPublished {
		t.Fatalf("a status-less edit must not change status, got %s", updated.Status)
	}
	if updated.PublishedAt == nil || !updated.PublishedAt.Equal(pub) {
		t.Fatalf("publishedAt lost on a status-less edit: %v", updated.PublishedAt)
	}
}

func TestUpdateFull_FailedWriteKeepsRevisionNotes(t *testing.T) {
	comments := &mockCommentRepo{
		external: map[int64]int64{1: 2},
		internal: map[int64]int64{},
	}
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusNeedsRevisions))
	repo.updateErr = errors.New("connection reset")
	svc := newTestArticleService(repo, comments, nil)

	_, err := svc.UpdateFull(context.Background(), 7, workflow.RoleContributor, 1, fullUpdateReq())
	if err == nil {
		t.Fatal("expected the repo failure to surface")
	}
	if comments.purgedCalls != 0 {
		t.Fatal("revision notes were purged although the update never landed")
	}
	if comments.external[1] != 2 {
		t.Fatal("external revision notes lost on a failed update")
	}
}

func TestUpdateFull_ContributorCannotEditInReview(t *testing.T) {
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusInReview))
	svc := newTestArticleService(repo, nil, nil)

	_, err := svc.UpdateFull(context.Background(), 7, workflow.RoleContributor, 1, fullUpdateReq())
	if _, ok := err.(*PermissionError); !ok {
		t.Fatalf("expected PermissionError, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("denied edit was persisted")
	}
}

func TestUpdateFull_ValidationBeforePermission(t *testing.T) {
	// A malformed payload is a 400 even when the actor would also be denied.
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusInReview))
	svc := newTestArticleService(repo, nil, nil)

	req := fullUpdateReq()
	req.Title = "ab"
	_, err := svc.UpdateFull(context.Background(), 7, workflow.RoleContributor, 1, req)
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreate_TitleValidation(t *testing.T) {
	repo := newMockArticleRepo()
	svc := newTestArticleService(repo, nil, nil)

	_, err := svc.Create(context.Background(), 7, workflow.RoleContributor, models.CreateArticleRequest{
		Title:     "ab",
		Body:      "text",
		SectionID: 1,
	})
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreate_StartsAsDraftWithDerivedSlug(t *testing.T) {
	repo := newMockArticleRepo()
	svc := newTestArticleService(repo, nil, nil)

	a, err := svc.Create(context.Background(), 7, workflow.RoleContributor, models.CreateArticleRequest{
		Title:     "GDPR Fines in 2026",
		Body:      "<p>body</p>",
		SectionID: 3,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if a.Status != workflow.StatusDraft {
		t.Fatalf("new articles must start as DRAFT, got %s", a.Status)
	}
	if a.Slug != "gdpr-fines-in-2026" {
		t.Fatalf("unexpected slug %q", a.Slug)
	}
}

func TestCreate_TagsDedupedBySlug(t *testing.T) {
	repo := newMockArticleRepo()
	tags := &mockTagRepo{bySlug: map[string]*models.Tag{}}
	svc := newTestArticleService(repo, nil, tags)

	a, err := svc.Create(context.Background(), 7, workflow.RoleContributor, models.CreateArticleRequest{
		Title:     "Tagged piece",
		Body:      "<p>body</p>",
		SectionID: 1,
		Tags:      []string{"Data Protection", "data protection", " Data Protection "},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if tags.created != 1 {
		t.Fatalf("expected one tag row, got %d", tags.created)
	}
	if len(a.Tags) != 1 {
		t.Fatalf("expected one tag on the article, got %v", a.Tags)
	}
	if len(repo.tagLinks[a.ID]) != 1 {
		t.Fatalf("expected one tag link, got %v", repo.tagLinks[a.ID])
	}
}

func TestDelete_AuthorOnlyInDraft(t *testing.T) {
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusInReview))
	svc := newTestArticleService(repo, nil, nil)

	err := svc.Delete(context.Background(), 7, workflow.RoleContributor, 1)
	if _, ok := err.(*PermissionError); !ok {
		t.Fatalf("expected PermissionError, got %v", err)
	}

	repo = newMockArticleRepo(draftArticle(1, 7, workflow.StatusDraft))
	svc = newTestArticleService(repo, nil, nil)
	if err := svc.Delete(context.Background(), 7, workflow.RoleContributor, 1); err != nil {
		t.Fatalf("author delete of own draft failed: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatal("article row was not deleted")
	}
}

func TestGetDashboard_ContributorCannotViewForeignArticle(t *testing.T) {
	repo := newMockArticleRepo(draftArticle(1, 7, workflow.StatusDraft))
	svc := newTestArticleService(repo, nil, nil)

	_, err := svc.GetDashboard(context.Background(), 8, workflow.RoleContributor, 1)
	if _, ok := err.(*PermissionError); !ok {
		t.Fatalf("expected PermissionError, got %v", err)
	}
}
