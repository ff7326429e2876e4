package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jurisight/internal/models"
	"jurisight/internal/reqctx"
	"jurisight/internal/services"
	"jurisight/internal/workflow"

	"github.com/gorilla/mux"
)

// stubArticleService records which update path the handler chose.
type stubArticleService struct {
	statusCalls int
	fullCalls   int
	lastTarget  string
	lastReq     models.UpdateArticleRequest
	err         error
}

func (s *stubArticleService) Create(_ context.Context, _ int64, _ workflow.Role, _ models.CreateArticleRequest) (*models.Article, error) {
	return &models.Article{ID: 1}, nil
}

func (s *stubArticleService) GetDashboard(_ context.Context, _ int64, _ workflow.Role, _ int64) (*models.ArticleDetail, error) {
	return &models.ArticleDetail{}, nil
}

func (s *stubArticleService) ListDashboard(_ context.Context, _ int64, _ workflow.Role, _, _ int) ([]*models.Article, error) {
	return nil, nil
}

func (s *stubArticleService) UpdateStatus(_ context.Context, _ int64, _ workflow.Role, _ int64, target string) (*models.Article, error) {
	s.statusCalls++
	s.lastTarget = target
	if s.err != nil {
		return nil, s.err
	}
	return &models.Article{ID: 1, Status: workflow.Status(target)}, nil
}

func (s *stubArticleService) UpdateFull(_ context.Context, _ int64, _ workflow.Role, _ int64, req models.UpdateArticleRequest) (*models.Article, error) {
	s.fullCalls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.Article{ID: 1}, nil
}

func (s *stubArticleService) Delete(_ context.Context, _ int64, _ workflow.Role, _ int64) error {
	return s.err
}

func (s *stubArticleService) GetPublishedBySlug(_ context.Context, _ string) (*models.Article, error) {
	return nil, services.ErrNotFound
}

func (s *stubArticleService) ListPublished(_ context.Context, _ *int64, _ string, _, _ int) ([]*models.Article, error) {
	return nil, nil
}

func putArticle(t *testing.T, svc *stubArticleService, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewArticleHandler(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/dashboard/articles/1", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "1"})

	ctx := reqctx.WithUserID(req.Context(), 7)
	ctx = reqctx.WithRole(ctx, workflow.RoleEditor)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	h.UpdateArticle(rec, req)
	return rec
}

func TestUpdateArticle_StatusOnlyBodyRoutesToTransition(t *testing.T) {
	svc := &stubArticleService{}

	rec := putArticle(t, svc, `{"status":"IN_REVIEW"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.statusCalls != 1 || svc.fullCalls != 0 {
		t.Fatalf("expected the transition path, got status=%d full=%d", svc.statusCalls, svc.fullCalls)
	}
	if svc.lastTarget != "IN_REVIEW" {
		t.Fatalf("unexpected target %q", svc.lastTarget)
	}
}

func TestUpdateArticle_StatusWithOtherKeysIsFullUpdate(t *testing.T) {
	svc := &stubArticleService{}

	rec := putArticle(t, svc, `{"status":"PUBLISHED","title":"New title","body":"text","sectionId":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.statusCalls != 0 || svc.fullCalls != 1 {
		t.Fatalf("expected the full-update path, got status=%d full=%d", svc.statusCalls, svc.fullCalls)
	}
	if svc.lastReq.Status == nil || *svc.lastReq.Status != "PUBLISHED" {
		t.Fatal("status field was lost on the full-update path")
	}
}

func TestUpdateArticle_NonStringStatusRejected(t *testing.T) {
	svc := &stubArticleService{}

	rec := putArticle(t, svc, `{"status":42}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.statusCalls != 0 && svc.fullCalls != 0 {
		t.Fatal("service must not be called for a malformed body")
	}
}

func TestUpdateArticle_ServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"forbidden", &services.PermissionError{Reason: "denied"}, http.StatusForbidden},
		{"validation", &services.ValidationError{Field: "status", Reason: "bad"}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubArticleService{err: tc.err}
			rec := putArticle(t, svc, `{"status":"PUBLISHED"}`)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestUpdateArticle_MissingActorIsUnauthorized(t *testing.T) {
	svc := &stubArticleService{}
	h := NewArticleHandler(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/dashboard/articles/1", strings.NewReader(`{"status":"DRAFT"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "1"})

	rec := httptest.NewRecorder()
	h.UpdateArticle(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
