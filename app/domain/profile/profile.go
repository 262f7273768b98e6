package profile

import (
	"context"
	"errors"
)

// Profile is the normalized record the resolver produces for a username.
// The gateway stores and returns it as one atomic value and does not
// interpret individual fields.
type Profile struct {
	Username          string `json:"username"`
	FullName          string `json:"full_name,omitempty"`
	Biography         string `json:"biography,omitempty"`
	Website           string `json:"website,omitempty"`
	FollowersCount    int64  `json:"followers_count"`
	FollowsCount      int64  `json:"follows_count"`
	MediaCount        int64  `json:"media_count"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

var (
	// ErrNotFound means the upstream has no profile for the username.
	ErrNotFound = errors.New("profile not found")

	// ErrUpstreamTimeout means the upstream call exceeded its budget.
	// Surfaced separately from generic failure so callers can message
	// "try again" instead of "not found".
	ErrUpstreamTimeout = errors.New("upstream timed out")
)

// Resolver fetches a profile from the upstream system. Implementations
// enforce their own call timeout and translate upstream failures into the
// sentinel errors above where they apply.
type Resolver interface {
	Resolve(ctx context.Context, username string) (*Profile, error)
}
