package services

import (
	"context"

	"jurisight/internal/logger"
	"jurisight/internal/repository"

	"go.uber.org/zap"
)

// viewQueue is the detached channel for view-count increments. Public reads
// enqueue without blocking; when the queue is full the increment is simply
// dropped. Views are an eventually-consistent metric and may under-count
// under load.
var viewQueue = make(chan int64, 1024)

// RecordView registers a view for an article without touching the response
// path.
func RecordView(articleID int64) {
	select {
	case viewQueue <- articleID:
	default:
		// queue full, drop
	}
}

// StartViewWorker drains the view queue into Postgres.
func StartViewWorker(repo repository.ArticleRepo) {
	for articleID := range viewQueue {
		if err := repo.AddViews(context.Background(), articleID, 1); err != nil {
			logger.Log.Warn("view increment failed",
				zap.Int64("article_id", articleID),
				zap.Error(err),
			)
		}
	}
}
