package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/festy23/pr_reviewer/internal/database/testdb"
	"github.com/festy23/pr_reviewer/internal/middleware"
)

func TestNewRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testdb.New(t), zap.NewNop().Sugar())

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"POST /team/add",
		"GET /team/get",
		"POST /users/setIsActive",
		"GET /users/getReview",
		"POST /pullRequest/create",
		"POST /pullRequest/merge",
		"POST /pullRequest/reassign",
		"GET /statistics/reviewers",
		"GET /statistics/pullrequests",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestNewRouter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testdb.New(t), zap.NewNop().Sugar())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
