// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	teamModel "github.com/festy23/pr_reviewer/internal/team/model"
	userModel "github.com/festy23/pr_reviewer/internal/user/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create creates a new team.
	Create(ctx context.Context, teamName string) (*teamModel.Team, error)

	// GetByName finds team by team_name.
	GetByName(ctx context.Context, teamName string) (*teamModel.Team, error)

	// UpsertMember creates the user or overwrites its username, team and activity flag.
	UpsertMember(ctx context.Context, teamName string, member teamModel.TeamMember) error

	// GetMembers returns all users of a team ordered by user_id.
	GetMembers(ctx context.Context, teamName string) ([]userModel.User, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create creates a new team.
func (r *repository) Create(ctx context.Context, teamName string) (*teamModel.Team, error) {
	team := &teamModel.Team{TeamName: teamName}

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, teamModel.ErrTeamExists
		}
		r.logger.Debugw("failed to create team", "team_name", teamName, "error", err)
		return nil, err
	}

	return team, nil
}

// GetByName finds team by team_name.
func (r *repository) GetByName(ctx context.Context, teamName string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("team_name = ?", teamName).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// UpsertMember runs INSERT ... ON CONFLICT (user_id) DO UPDATE so that
// existing users move to the team and keep their created_at.
func (r *repository) UpsertMember(ctx context.Context, teamName string, member teamModel.TeamMember) error {
	user := &userModel.User{
		UserID:   member.UserID,
		Username: member.Username,
		TeamName: teamName,
		IsActive: member.Active(),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "team_name", "is_active", "updated_at"}),
		}).
		Create(user).Error
	if err != nil {
		r.logger.Debugw("failed to upsert team member",
			"team_name", teamName,
			"user_id", member.UserID,
			"error", err,
		)
		return err
	}

	return nil
}

// GetMembers returns all users of a team ordered by user_id.
func (r *repository) GetMembers(ctx context.Context, teamName string) ([]userModel.User, error) {
	var users []userModel.User

	err := r.db.WithContext(ctx).
		Where("team_name = ?", teamName).
		Order("user_id ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}
