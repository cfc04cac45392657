package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/pr_reviewer/internal/database/testdb"
	pullrequestModel "github.com/festy23/pr_reviewer/internal/pullrequest/model"
	"github.com/festy23/pr_reviewer/internal/statistics/model"
)

// seed builds two teams and three pull requests with 2, 1 and 0 reviewers; pr-2 is merged.
func seed(t *testing.T) *gorm.DB {
	db := testdb.New(t)
	testdb.SeedTeam(t, db, "backend")
	testdb.SeedTeam(t, db, "frontend")
	testdb.SeedUser(t, db, "u1", "backend", true)
	testdb.SeedUser(t, db, "u2", "backend", true)
	testdb.SeedUser(t, db, "u3", "backend", false)
	testdb.SeedUser(t, db, "f1", "frontend", true)

	testdb.SeedPullRequest(t, db, "pr-1", "u1", "u2", "u3")
	testdb.SeedPullRequest(t, db, "pr-2", "u1", "u2")
	testdb.SeedPullRequest(t, db, "pr-3", "f1")
	require.NoError(t, db.Model(&pullrequestModel.PullRequest{}).
		Where("pull_request_id = ?", "pr-2").
		Update("status", pullrequestModel.StatusMerged).Error)
	return db
}

func TestRepository_ListUsers(t *testing.T) {
	ctx := context.Background()
	repo := New(seed(t), zap.NewNop().Sugar())

	users, err := repo.ListUsers(ctx, "")
	require.NoError(t, err)
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}
	assert.Equal(t, []string{"f1", "u1", "u2", "u3"}, ids)

	users, err = repo.ListUsers(ctx, "frontend")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "f1", users[0].UserID)

	users, err = repo.ListUsers(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRepository_CountAssignments(t *testing.T) {
	repo := New(seed(t), zap.NewNop().Sugar())

	counts, err := repo.CountAssignments(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, []model.AssignmentCount{
		{ReviewerID: "u2", Assigned: 2, OpenCount: 1},
		{ReviewerID: "u3", Assigned: 1, OpenCount: 1},
	}, counts)
}

func TestRepository_CountByStatus(t *testing.T) {
	ctx := context.Background()

	byStatus, err := New(seed(t), zap.NewNop().Sugar()).CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		pullrequestModel.StatusOpen:   2,
		pullrequestModel.StatusMerged: 1,
	}, byStatus)

	byStatus, err = New(testdb.New(t), zap.NewNop().Sugar()).CountByStatus(ctx)
	require.NoError(t, err)
	assert.Empty(t, byStatus)
}

func TestRepository_CountByReviewers(t *testing.T) {
	ctx := context.Background()

	byReviewers, err := New(seed(t), zap.NewNop().Sugar()).CountByReviewers(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, byReviewers)

	byReviewers, err = New(testdb.New(t), zap.NewNop().Sugar()).CountByReviewers(ctx)
	require.NoError(t, err)
	assert.Empty(t, byReviewers)
}
