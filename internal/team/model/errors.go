package model

import "errors"

var (
	// ErrTeamExists indicates that a team with the given name already exists.
	ErrTeamExists = errors.New("team already exists")
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamName indicates that the provided team name is empty or too long.
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrInvalidMember indicates a member without user_id, username or is_active.
	ErrInvalidMember = errors.New("member requires user_id, username and is_active")
)
