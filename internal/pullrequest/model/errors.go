package model

import "errors"

var (
	// ErrPullRequestExists indicates that a pull request with the given ID already exists.
	ErrPullRequestExists = errors.New("pull request already exists")
	// ErrPullRequestNotFound indicates that the requested pull request does not exist.
	ErrPullRequestNotFound = errors.New("pull request not found")
	// ErrPullRequestMerged indicates that the pull request is merged and can no longer change.
	ErrPullRequestMerged = errors.New("pull request is merged")
	// ErrReviewerNotAssigned indicates that the user is not a reviewer of the pull request.
	ErrReviewerNotAssigned = errors.New("reviewer is not assigned to this PR")
	// ErrNoCandidate indicates that no eligible replacement reviewer exists.
	ErrNoCandidate = errors.New("no active replacement candidate in team")
	// ErrAuthorNotFound indicates that the author user does not exist.
	ErrAuthorNotFound = errors.New("author not found")
	// ErrTeamNotFound indicates that the author has no resolvable team.
	ErrTeamNotFound = errors.New("author team not found")
	// ErrUserNotFound indicates that the reviewer being replaced does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPullRequestID indicates an empty or too long pull request ID.
	ErrInvalidPullRequestID = errors.New("pull_request_id must be between 1 and 255 characters")
	// ErrInvalidPullRequestName indicates an empty or too long pull request name.
	ErrInvalidPullRequestName = errors.New("pull_request_name must be between 1 and 255 characters")
	// ErrInvalidAuthorID indicates an empty or too long author ID.
	ErrInvalidAuthorID = errors.New("author_id must be between 1 and 255 characters")
	// ErrInvalidOldUserID indicates an empty or too long old_user_id.
	ErrInvalidOldUserID = errors.New("old_user_id must be between 1 and 255 characters")
)
