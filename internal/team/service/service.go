// Package service provides business logic layer for team module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/festy23/pr_reviewer/internal/team/model"
	"github.com/festy23/pr_reviewer/internal/team/repository"
)

const maxIDLength = 255

// Service defines the interface for team business logic operations.
type Service interface {
	// AddTeam creates a new team and upserts its members.
	AddTeam(ctx context.Context, req *teamModel.AddTeamRequest) (*teamModel.TeamResponse, error)

	// GetTeam returns a team with its members.
	GetTeam(ctx context.Context, teamName string) (*teamModel.TeamResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// AddTeam creates a new team with members in a transaction.
func (s *service) AddTeam(ctx context.Context, req *teamModel.AddTeamRequest) (*teamModel.TeamResponse, error) {
	if req.TeamName == "" || len(req.TeamName) > maxIDLength {
		return nil, teamModel.ErrInvalidTeamName
	}
	for _, member := range req.Members {
		if !validMember(member) {
			return nil, teamModel.ErrInvalidMember
		}
	}

	var result *teamModel.TeamResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		_, err := txRepo.GetByName(ctx, req.TeamName)
		if err == nil {
			return teamModel.ErrTeamExists
		}
		if !errors.Is(err, teamModel.ErrTeamNotFound) {
			return err
		}

		if _, err = txRepo.Create(ctx, req.TeamName); err != nil {
			return err
		}

		for _, member := range req.Members {
			if err = txRepo.UpsertMember(ctx, req.TeamName, member); err != nil {
				return err
			}
		}

		users, err := txRepo.GetMembers(ctx, req.TeamName)
		if err != nil {
			return err
		}

		result = teamModel.NewTeamResponse(req.TeamName, users)
		return nil
	})
	if err != nil {
		if !errors.Is(err, teamModel.ErrTeamExists) {
			s.logger.Errorw("failed to add team", "team_name", req.TeamName, "error", err)
		}
		return nil, err
	}

	s.logger.Infow("team created", "team_name", req.TeamName, "members", len(result.Members))
	return result, nil
}

// GetTeam returns a team with its members.
func (s *service) GetTeam(ctx context.Context, teamName string) (*teamModel.TeamResponse, error) {
	if teamName == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	if _, err := s.repo.GetByName(ctx, teamName); err != nil {
		return nil, err
	}

	users, err := s.repo.GetMembers(ctx, teamName)
	if err != nil {
		return nil, err
	}

	return teamModel.NewTeamResponse(teamName, users), nil
}

func validMember(m teamModel.TeamMember) bool {
	return m.UserID != "" && len(m.UserID) <= maxIDLength &&
		m.Username != "" && len(m.Username) <= maxIDLength &&
		m.IsActive != nil
}
