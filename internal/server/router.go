// Package server assembles the HTTP engine from the feature routers.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/pr_reviewer/internal/health"
	"github.com/festy23/pr_reviewer/internal/middleware"
	pullrequestRouter "github.com/festy23/pr_reviewer/internal/pullrequest/router"
	statisticsRouter "github.com/festy23/pr_reviewer/internal/statistics/router"
	teamRouter "github.com/festy23/pr_reviewer/internal/team/router"
	userRouter "github.com/festy23/pr_reviewer/internal/user/router"
)

// NewRouter returns a gin engine with middleware and every route registered.
func NewRouter(db *gorm.DB, logger *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)

	health.RegisterRoutes(r, db, logger)
	teamRouter.RegisterRoutes(r, db, logger)
	userRouter.RegisterRoutes(r, db, logger)
	pullrequestRouter.RegisterRoutes(r, db, logger)
	statisticsRouter.RegisterRoutes(r, db, logger)

	return r
}
