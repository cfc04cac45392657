// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/pr_reviewer/internal/statistics/handler"
	"github.com/festy23/pr_reviewer/internal/statistics/repository"
	"github.com/festy23/pr_reviewer/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes under /statistics.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	stats := r.Group("/statistics")
	stats.GET("/reviewers", h.ReviewerLoad)
	stats.GET("/pullrequests", h.PullRequestSummary)
}
