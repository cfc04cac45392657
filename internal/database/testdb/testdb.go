// Package testdb opens throwaway SQLite databases carrying the service schema for unit tests.
package testdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/pr_reviewer/internal/database/database"
	prModel "github.com/festy23/pr_reviewer/internal/pullrequest/model"
	teamModel "github.com/festy23/pr_reviewer/internal/team/model"
	userModel "github.com/festy23/pr_reviewer/internal/user/model"
)

// New returns an in-memory database migrated with every service model.
// A single connection is kept so the whole test shares one memory store.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&teamModel.Team{},
		&userModel.User{},
		&prModel.PullRequest{},
		&prModel.PullRequestReviewer{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// SeedTeam inserts a team row.
func SeedTeam(t testing.TB, db *gorm.DB, teamName string) {
	t.Helper()
	require.NoError(t, db.Create(&teamModel.Team{TeamName: teamName}).Error)
}

// SeedUser inserts a user row. The team is expected to exist.
func SeedUser(t testing.TB, db *gorm.DB, userID, teamName string, isActive bool) {
	t.Helper()
	user := &userModel.User{
		UserID:   userID,
		Username: "name-" + userID,
		TeamName: teamName,
		IsActive: isActive,
	}
	require.NoError(t, db.Create(user).Error)
}

// SeedPullRequest inserts an OPEN pull request with the given reviewers.
func SeedPullRequest(t testing.TB, db *gorm.DB, prID, authorID string, reviewerIDs ...string) {
	t.Helper()
	now := db.NowFunc()
	pr := &prModel.PullRequest{
		PullRequestID:   prID,
		PullRequestName: "pr " + prID,
		AuthorID:        authorID,
		Status:          prModel.StatusOpen,
		CreatedAt:       &now,
	}
	require.NoError(t, db.Create(pr).Error)
	for _, id := range reviewerIDs {
		require.NoError(t, db.Create(&prModel.PullRequestReviewer{PullRequestID: prID, ReviewerID: id}).Error)
	}
}
