package services

import (
	"context"
	"fmt"
	"strings"

	"jurisight/internal/logger"
	"jurisight/internal/repository"

	"go.uber.org/zap"
)

// Notifier emails newsletter subscribers when an article goes live. All of
// it is best-effort: a failed notification never fails the publish.
type Notifier struct {
	subsRepo repository.NewsletterRepo
	baseURL  string
}

func NewNotifier(subsRepo repository.NewsletterRepo, baseURL string) *Notifier {
	return &Notifier{
		subsRepo: subsRepo,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func chunkStrings(all []string, n int) [][]string {
	if n <= 0 {
		n = 50
	}
	var out [][]string
	for i := 0; i < len(all); i += n {
		j := i + n
		if j > len(all) {
			j = len(all)
		}
		out = append(out, all[i:j])
	}
	return out
}

func (n *Notifier) sendToAll(ctx context.Context, subject, htmlBody string) {
	// Detach from the HTTP request lifetime.
	ctx = context.WithoutCancel(ctx)

	emails, err := n.subsRepo.GetAllSubscribedEmails(ctx)
	if err != nil {
		logger.Log.Error("could not load newsletter subscribers", zap.Error(err))
		return
	}
	for _, batch := range chunkStrings(emails, 50) {
		EmailQueue <- EmailJob{
			To:      batch,
			Subject: subject,
			Body:    htmlBody,
			IsHTML:  true,
		}
	}
}

// NotifyArticlePublished announces a freshly published article.
func (n *Notifier) NotifyArticlePublished(ctx context.Context, slug, title string) {
	if n == nil {
		return
	}
	link := fmt.Sprintf("%s/articles/%s", n.baseURL, slug)
	subject := "New on Jurisight: " + title

	body := fmt.Sprintf(`
      <p style="font-size:16px;color:#222;margin:0 0 16px 0;"><strong>%s</strong></p>
      <p><a href="%s" style="display:inline-block;padding:12px 24px;background:#1f3a93;color:#fff;text-decoration:none;border-radius:6px;font-weight:600;">Read the article</a></p>
      <p style="font-size:12px;color:#999;margin-top:16px;">If the button does not work, copy this link: %s</p>
    `, title, link, link)

	n.sendToAll(ctx, subject, body)
}
