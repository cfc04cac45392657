package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/festy23/pr_reviewer/internal/statistics/model"
	"github.com/festy23/pr_reviewer/internal/statistics/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ReviewerLoad(ctx context.Context, teamName string) (*model.ReviewerLoadReport, error) {
	args := m.Called(ctx, teamName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReviewerLoadReport), args.Error(1)
}

func (m *mockService) PullRequestSummary(ctx context.Context) (*model.PullRequestSummaryReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PullRequestSummaryReport), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func serve(svc service.Service, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	h := New(svc, zap.NewNop().Sugar())
	r := gin.New()
	r.GET("/statistics/reviewers", h.ReviewerLoad)
	r.GET("/statistics/pullrequests", h.PullRequestSummary)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_ReviewerLoad(t *testing.T) {
	t.Run("passes team filter", func(t *testing.T) {
		svc := new(mockService)
		svc.On("ReviewerLoad", mock.Anything, "backend").Return(&model.ReviewerLoadReport{
			Reviewers: []model.ReviewerLoad{{UserID: "u1", Username: "Alice", TeamName: "backend", IsActive: true, Assigned: 2, Open: 1}},
			Total:     1,
		}, nil)

		w := serve(svc, "/statistics/reviewers?team_name=backend")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"reviewers":[{"user_id":"u1","username":"Alice","team_name":"backend",
			"is_active":true,"assignment_count":2,"open_assignments":1}],"total":1}`, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("internal error", func(t *testing.T) {
		svc := new(mockService)
		svc.On("ReviewerLoad", mock.Anything, "").Return(nil, errors.New("db down"))

		w := serve(svc, "/statistics/reviewers")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"INTERNAL_ERROR"`)
	})
}

func TestHandler_PullRequestSummary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockService)
		svc.On("PullRequestSummary", mock.Anything).Return(&model.PullRequestSummaryReport{
			Statistics: model.PullRequestSummary{Total: 2, Open: 1, Merged: 1, TwoReviewers: 2, AverageReviewers: 2},
		}, nil)

		w := serve(svc, "/statistics/pullrequests")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"statistics":{"total_prs":2,"open_prs":1,"merged_prs":1,"average_reviewers_per_pr":2,
			"prs_with_0_reviewers":0,"prs_with_1_reviewer":0,"prs_with_2_reviewers":2}}`, w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		svc := new(mockService)
		svc.On("PullRequestSummary", mock.Anything).Return(nil, errors.New("db down"))

		w := serve(svc, "/statistics/pullrequests")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
