// Package model provides domain models and DTOs for team module.
package model

import userModel "github.com/festy23/pr_reviewer/internal/user/model"

// TeamMember represents a team member in API requests and responses.
// IsActive is a pointer so that an omitted flag fails binding instead of reading as false.
type TeamMember struct {
	UserID   string `json:"user_id"   binding:"required,max=255"`
	Username string `json:"username"  binding:"required,max=255"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// Active reports the member's flag; an unset flag counts as inactive.
func (m TeamMember) Active() bool {
	return m.IsActive != nil && *m.IsActive
}

// AddTeamRequest represents the request to create a team with members.
type AddTeamRequest struct {
	TeamName string       `json:"team_name" binding:"required,max=255"`
	Members  []TeamMember `json:"members"   binding:"required,dive"`
}

// TeamResponse represents a team with its current members ordered by user_id.
type TeamResponse struct {
	TeamName string       `json:"team_name"`
	Members  []TeamMember `json:"members"`
}

// AddTeamResponse wraps the created team.
type AddTeamResponse struct {
	Team *TeamResponse `json:"team"`
}

// NewMember builds a member with every field set.
func NewMember(userID, username string, isActive bool) TeamMember {
	return TeamMember{
		UserID:   userID,
		Username: username,
		IsActive: &isActive,
	}
}

// NewTeamMember projects a stored user onto the member DTO.
func NewTeamMember(u userModel.User) TeamMember {
	return NewMember(u.UserID, u.Username, u.IsActive)
}

// NewTeamResponse builds the team DTO from stored users.
func NewTeamResponse(teamName string, users []userModel.User) *TeamResponse {
	members := make([]TeamMember, 0, len(users))
	for _, u := range users {
		members = append(members, NewTeamMember(u))
	}
	return &TeamResponse{
		TeamName: teamName,
		Members:  members,
	}
}
