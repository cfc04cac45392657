// Package router provides pullrequest module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/pr_reviewer/internal/pullrequest/handler"
	"github.com/festy23/pr_reviewer/internal/pullrequest/service"
)

// RegisterRoutes registers pullrequest module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(db, logger)
	h := handler.New(svc, logger)

	r.POST("/pullRequest/create", h.CreatePullRequest)
	r.POST("/pullRequest/merge", h.MergePullRequest)
	r.POST("/pullRequest/reassign", h.ReassignReviewer)
}
