package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/festy23/pr_reviewer/internal/database/testdb"
	pullrequestModel "github.com/festy23/pr_reviewer/internal/pullrequest/model"
)

// setupBackend seeds team "backend" with active u1..u4 and inactive u5,
// plus team "frontend" with active f1.
func setupBackend(t *testing.T) (*service, *gorm.DB) {
	db := testdb.New(t)
	testdb.SeedTeam(t, db, "backend")
	testdb.SeedTeam(t, db, "frontend")
	for _, id := range []string{"u1", "u2", "u3", "u4"} {
		testdb.SeedUser(t, db, id, "backend", true)
	}
	testdb.SeedUser(t, db, "u5", "backend", false)
	testdb.SeedUser(t, db, "f1", "frontend", true)

	svc := New(db, zaptest.NewLogger(t).Sugar()).(*service)
	return svc, db
}

func createReq(prID, authorID string) *pullrequestModel.CreatePullRequestRequest {
	return &pullrequestModel.CreatePullRequestRequest{
		PullRequestID:   prID,
		PullRequestName: "name " + prID,
		AuthorID:        authorID,
	}
}

func TestService_CreatePullRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns two active teammates", func(t *testing.T) {
		svc, _ := setupBackend(t)

		for i := range 20 {
			prID := "pr-" + string(rune('a'+i))
			resp, err := svc.CreatePullRequest(ctx, createReq(prID, "u1"))

			require.NoError(t, err)
			assert.Equal(t, pullrequestModel.StatusOpen, resp.Status)
			assert.Len(t, resp.AssignedReviewers, 2)
			assert.Subset(t, []string{"u2", "u3", "u4"}, resp.AssignedReviewers)
			assert.NotNil(t, resp.CreatedAt)
			assert.Nil(t, resp.MergedAt)
		}
	})

	t.Run("timestamps stored at microsecond precision", func(t *testing.T) {
		svc, _ := setupBackend(t)
		created := time.Date(2025, 11, 3, 10, 15, 30, 123456789, time.UTC)
		svc.now = func() time.Time { return created }

		resp, err := svc.CreatePullRequest(ctx, createReq("pr-precise", "u1"))
		require.NoError(t, err)
		require.NotNil(t, resp.CreatedAt)
		assert.True(t, resp.CreatedAt.Equal(created.Truncate(time.Microsecond)), "got %s", resp.CreatedAt)
		assert.Zero(t, resp.CreatedAt.Nanosecond()%int(time.Microsecond))

		svc.now = func() time.Time { return created.Add(time.Minute) }
		merged, err := svc.MergePullRequest(ctx, &pullrequestModel.MergePullRequestRequest{PullRequestID: "pr-precise"})
		require.NoError(t, err)
		assert.True(t, merged.CreatedAt.Equal(*resp.CreatedAt), "got %s", merged.CreatedAt)
		require.NotNil(t, merged.MergedAt)
		assert.True(t, merged.MergedAt.Equal(created.Add(time.Minute).Truncate(time.Microsecond)), "got %s", merged.MergedAt)
	})

	t.Run("fewer candidates than slots", func(t *testing.T) {
		svc, db := setupBackend(t)
		testdb.SeedTeam(t, db, "pair")
		testdb.SeedUser(t, db, "p1", "pair", true)
		testdb.SeedUser(t, db, "p2", "pair", true)
		testdb.SeedTeam(t, db, "solo")
		testdb.SeedUser(t, db, "s1", "solo", true)

		resp, err := svc.CreatePullRequest(ctx, createReq("pr-pair", "p1"))
		require.NoError(t, err)
		assert.Equal(t, []string{"p2"}, resp.AssignedReviewers)

		resp, err = svc.CreatePullRequest(ctx, createReq("pr-solo", "s1"))
		require.NoError(t, err)
		assert.NotNil(t, resp.AssignedReviewers)
		assert.Empty(t, resp.AssignedReviewers)
	})

	t.Run("inactive author can still open a pull request", func(t *testing.T) {
		svc, _ := setupBackend(t)

		resp, err := svc.CreatePullRequest(ctx, createReq("pr-1", "u5"))

		require.NoError(t, err)
		assert.Len(t, resp.AssignedReviewers, 2)
		assert.NotContains(t, resp.AssignedReviewers, "u5")
	})

	t.Run("duplicate id keeps original reviewers", func(t *testing.T) {
		svc, db := setupBackend(t)
		testdb.SeedPullRequest(t, db, "pr-1", "u1", "u2")

		resp, err := svc.CreatePullRequest(ctx, createReq("pr-1", "f1"))

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, pullrequestModel.ErrPullRequestExists)

		var reviewers []string
		db.Model(&pullrequestModel.PullRequestReviewer{}).Where("pull_request_id = ?", "pr-1").Pluck("reviewer_id", &reviewers)
		assert.Equal(t, []string{"u2"}, reviewers)
	})

	t.Run("existence precedes author check", func(t *testing.T) {
		svc, db := setupBackend(t)
		testdb.SeedPullRequest(t, db, "pr-1", "u1")

		_, err := svc.CreatePullRequest(ctx, createReq("pr-1", "ghost"))

		assert.ErrorIs(t, err, pullrequestModel.ErrPullRequestExists)
	})

	t.Run("author not found", func(t *testing.T) {
		svc, db := setupBackend(t)

		_, err := svc.CreatePullRequest(ctx, createReq("pr-1", "ghost"))

		assert.ErrorIs(t, err, pullrequestModel.ErrAuthorNotFound)
		var count int64
		db.Model(&pullrequestModel.PullRequest{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("author team missing", func(t *testing.T) {
		svc, db := setupBackend(t)
		require.NoError(t, db.Exec(
			"INSERT INTO users (user_id, username, team_name, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			"orphan", "Orphan", "vanished", true, time.Now().UTC(), time.Now().UTC(),
		).Error)

		_, err := svc.CreatePullRequest(ctx, createReq("pr-1", "orphan"))

		assert.ErrorIs(t, err, pullrequestModel.ErrTeamNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := setupBackend(t)

		_, err := svc.CreatePullRequest(ctx, createReq("", "u1"))
		assert.ErrorIs(t, err, pullrequestModel.ErrInvalidPullRequestID)

		_, err = svc.CreatePullRequest(ctx, createReq(strings.Repeat("x", 256), "u1"))
		assert.ErrorIs(t, err, pullrequestModel.ErrInvalidPullRequestID)

		_, err = svc.CreatePullRequest(ctx, &pullrequestModel.CreatePullRequestRequest{PullRequestID: "pr-1", AuthorID: "u1"})
		assert.ErrorIs(t, err, pullrequestModel.ErrInvalidPullRequestName)

		_, err = svc.CreatePullRequest(ctx, createReq("pr-1", ""))
		assert.ErrorIs(t, err, pullrequestModel.ErrInvalidAuthorID)
	})
}

func TestService_MergePullRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent", func(t *testing.T) {
		svc, db := setupBackend(t)
		testdb.SeedPullRequest(t, db, "pr-1", "u1", "u2", "u3")

		first, err := svc.MergePullRequest(ctx, &pullrequestModel.MergePullRequestRequest{PullRequestID: "pr-1"})
		require.NoError(t, err)
		assert.Equal(t, pullrequestModel.StatusMerged, first.Status)
		require.NotNil(t, first.MergedAt)
		assert.Equal(t, []string{"u2", "u3"}, first.AssignedReviewers)

		svc.now = func() time.Time { return time.Now().UTC().Add(time.Hour) }
		second, err := svc.MergePullRequest(ctx, &pullrequestModel.MergePullRequestRequest{PullRequestID: "pr-1"})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _ := setupBackend(t)

		_, err := svc.MergePullRequest(ctx, &pullrequestModel.MergePullRequestRequest{PullRequestID: "ghost"})

		assert.ErrorIs(t, err, pullrequestModel.ErrPullRequestNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		svc, _ := setupBackend(t)

		_, err := svc.MergePullRequest(ctx, &pullrequestModel.MergePullRequestRequest{})

		assert.ErrorIs(t, err, pullrequestModel.ErrInvalidPullRequestID)
	})
}

func reassignReq(prID, oldUserID string) *pullrequestModel.ReassignReviewerRequest {
	return &pullrequestModel.ReassignReviewerRequest{PullRequestID: prID, OldUserID: oldUserID}
}

func TestService_ReassignReviewer(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces with remaining teammate", func(t *testing.T) {
		svc, db := setupBackend(t)
		testdb.SeedPullRequest(t, db, "pr-1", "u1", "u2", "u3")

		resp, err := svc.ReassignReviewer(ctx, reassignReq("pr-1", "u2"))

		require.NoError(t, err)
		assert.Equal(t, "u4", resp.ReplacedBy)
		assert.Equal(t, []string{"u3", "u4"}, resp.PR.AssignedReviewers)
	})

	t.Run("pool comes from old reviewer's team", func(t *testing.T) {
		svc, db := setupBackend(t)
		testdb.SeedUser(t, db, "f2", "frontend", true)
		testdb.SeedPullRequest(t, db, "pr-1", "u1", "f1", "u2")

		resp, err := svc.ReassignReviewer(ctx, reassignReq("pr-1", "f1"))

		require.NoError(t, err)
		assert.Equal(t, "f2", resp.ReplacedBy)
		assert.ElementsMatch(t, []string{"f2", "u2"}, resp.PR.AssignedReviewers)
	})

	t.Run("author is never picked", func(t *testing.T) {
		svc, db := setupBackend(t)
		require.NoError(t, db.Table("users").Where("user_id = ?", "u4").Update("is_active", false).Error)
		testdb.SeedPullRequest(t, db, "pr-1", "u1", "u2")

		resp, err := svc.ReassignReviewer(ctx, reassignReq("pr-1", "u2"))

		require.NoError(t, err)
		assert.Equal(t, "u3", resp.ReplacedBy)
	})

	t.Run("no candidate", func(t *testing.T) {
		svc, db := setupBackend(t)
		testdb.SeedPullRequest(t, db, "pr-1", "u1", "u2", "u3")
		require.NoError(t, db.Table("users").Where("user_id = ?", "u4").Update("is_active", false).Error)

		_, err := svc.ReassignReviewer(ctx, reassignReq("pr-1", "u2"))

		assert.ErrorIs(t, err, pullrequestModel.ErrNoCandidate)
	})

	t.Run("not assigned", func(t *testing.T) {
		svc, db := setupBackend(t)
		testdb.SeedPullRequest(t, db, "pr-1", "u1", "u2")

		_, err := svc.ReassignReviewer(ctx, reassignReq("pr-1", "u4"))

		assert.ErrorIs(t, err, pullrequestModel.ErrReviewerNotAssigned)
	})

	t.Run("merged pull request is frozen", func(t *testing.T) {
		svc, db := setupBackend(t)
		testdb.SeedPullRequest(t, db, "pr-1", "u1", "u2")
		_, err := svc.MergePullRequest(ctx, &pullrequestModel.MergePullRequestRequest{PullRequestID: "pr-1"})
		require.NoError(t, err)

		_, err = svc.ReassignReviewer(ctx, reassignReq("pr-1", "u2"))
		assert.ErrorIs(t, err, pullrequestModel.ErrPullRequestMerged)

		_, err = svc.ReassignReviewer(ctx, reassignReq("pr-1", "ghost"))
		assert.ErrorIs(t, err, pullrequestModel.ErrUserNotFound)

		var reviewers []string
		db.Model(&pullrequestModel.PullRequestReviewer{}).Where("pull_request_id = ?", "pr-1").Pluck("reviewer_id", &reviewers)
		assert.Equal(t, []string{"u2"}, reviewers)
	})

	t.Run("pull request not found", func(t *testing.T) {
		svc, _ := setupBackend(t)

		_, err := svc.ReassignReviewer(ctx, reassignReq("ghost", "ghost"))

		assert.ErrorIs(t, err, pullrequestModel.ErrPullRequestNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := setupBackend(t)

		_, err := svc.ReassignReviewer(ctx, reassignReq("", "u1"))
		assert.ErrorIs(t, err, pullrequestModel.ErrInvalidPullRequestID)

		_, err = svc.ReassignReviewer(ctx, reassignReq("pr-1", ""))
		assert.ErrorIs(t, err, pullrequestModel.ErrInvalidOldUserID)
	})
}
